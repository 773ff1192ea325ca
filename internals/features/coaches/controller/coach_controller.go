package controller

import (
	"errors"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	helper "gymclub_backend/internals/helpers"

	"gymclub_backend/internals/features/coaches/dto"
	"gymclub_backend/internals/features/coaches/model"
)

type CoachController struct {
	DB *gorm.DB
}

func NewCoachController(db *gorm.DB) *CoachController {
	return &CoachController{DB: db}
}

func getIDParam(c *fiber.Ctx) (uint, error) {
	raw := strings.TrimSpace(c.Params("id"))
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return 0, fiber.NewError(fiber.StatusBadRequest, "invalid id")
	}
	return uint(id), nil
}

func (ctl *CoachController) List(c *fiber.Ctx) error {
	var rows []model.Coach
	if err := ctl.DB.WithContext(c.UserContext()).
		Order("coach_order, coach_name").
		Find(&rows).Error; err != nil {
		return helper.Fail(c, fiber.StatusInternalServerError, "db error: "+err.Error())
	}
	return helper.Success(c, rows)
}

func (ctl *CoachController) Create(c *fiber.Ctx) error {
	var req dto.CreateCoachRequest
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

func (ctl *CoachController) Update(c *fiber.Ctx) error {
	id, err := getIDParam(c)
	if err != nil {
		return helper.FromError(c, err)
	}

	var m model.Coach
	if err := ctl.DB.WithContext(c.UserContext()).First(&m, "coach_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Fail(c, fiber.StatusNotFound, "coach not found")
		}
		return helper.Fail(c, fiber.StatusInternalServerError, "db error: "+err.Error())
	}

	var req dto.UpdateCoachRequest
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

func (ctl *CoachController) Delete(c *fiber.Ctx) error {
	id, err := getIDParam(c)
	if err != nil {
		return helper.FromError(c, err)
	}
	res := ctl.DB.WithContext(c.UserContext()).Delete(&model.Coach{}, "coach_id = ?", id)
	if res.Error != nil {
		return helper.Fail(c, fiber.StatusInternalServerError, "db error: "+res.Error.Error())
	}
	if res.RowsAffected == 0 {
		return helper.Fail(c, fiber.StatusNotFound, "coach not found")
	}
	return helper.Success(c, fiber.Map{"id": id})
}
