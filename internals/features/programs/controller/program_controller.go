package controller

import (
	"errors"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	helper "gymclub_backend/internals/helpers"

	"gymclub_backend/internals/features/programs/dto"
	"gymclub_backend/internals/features/programs/model"
)

type ProgramController struct {
	DB *gorm.DB
}

func NewProgramController(db *gorm.DB) *ProgramController {
	return &ProgramController{DB: db}
}

func getIDParam(c *fiber.Ctx) (uint, error) {
	raw := strings.TrimSpace(c.Params("id"))
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return 0, fiber.NewError(fiber.StatusBadRequest, "invalid id")
	}
	return uint(id), nil
}

// List serves the public page, so only active programs unless the caller
// asks for everything (admin table does).
func (ctl *ProgramController) List(c *fiber.Ctx) error {
	db := ctl.DB.WithContext(c.UserContext()).Model(&model.Program{})
	if !c.QueryBool("include_inactive") {
		db = db.Where("program_active = ?", true)
	}

	var rows []model.Program
	if err := db.Order("program_name").Find(&rows).Error; err != nil {
		return helper.Fail(c, fiber.StatusInternalServerError, "db error: "+err.Error())
	}
	return helper.Success(c, rows)
}

func (ctl *ProgramController) Create(c *fiber.Ctx) error {
	var req dto.CreateProgramRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Fail(c, fiber.StatusBadRequest, "invalid payload")
	}
	m, err := req.ToModel()
	if err != nil {
		return helper.FromError(c, err)
	}
	if err := ctl.DB.WithContext(c.UserContext()).Create(m).Error; err != nil {
		return helper.Fail(c, fiber.StatusInternalServerError, "db error: "+err.Error())
	}
	return helper.Success(c, m)
}

func (ctl *ProgramController) Update(c *fiber.Ctx) error {
	id, err := getIDParam(c)
	if err != nil {
		return helper.FromError(c, err)
	}

	var m model.Program
	if err := ctl.DB.WithContext(c.UserContext()).First(&m, "program_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Fail(c, fiber.StatusNotFound, "program not found")
		}
		return helper.Fail(c, fiber.StatusInternalServerError, "db error: "+err.Error())
	}

	var req dto.UpdateProgramRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Fail(c, fiber.StatusBadRequest, "invalid payload")
	}
	if err := req.Apply(&m); err != nil {
		return helper.FromError(c, err)
	}
	if err := ctl.DB.WithContext(c.UserContext()).Save(&m).Error; err != nil {
		return helper.Fail(c, fiber.StatusInternalServerError, "db error: "+err.Error())
	}
	return helper.Success(c, m)
}

func (ctl *ProgramController) Delete(c *fiber.Ctx) error {
	id, err := getIDParam(c)
	if err != nil {
		return helper.FromError(c, err)
	}
	res := ctl.DB.WithContext(c.UserContext()).Delete(&model.Program{}, "program_id = ?", id)
	if res.Error != nil {
		return helper.Fail(c, fiber.StatusInternalServerError, "db error: "+res.Error.Error())
	}
	if res.RowsAffected == 0 {
		return helper.Fail(c, fiber.StatusNotFound, "program not found")
	}
	return helper.Success(c, fiber.Map{"id": id})
}
