package controller

import (
	"errors"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	helper "gymclub_backend/internals/helpers"

	"gymclub_backend/internals/features/athletes/dto"
	"gymclub_backend/internals/features/athletes/model"
)

type AthleteController struct {
	DB *gorm.DB
}

func NewAthleteController(db *gorm.DB) *AthleteController {
	return &AthleteController{DB: db}
}

func getIDParam(c *fiber.Ctx) (uint, error) {
	raw := strings.TrimSpace(c.Params("id"))
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return 0, fiber.NewError(fiber.StatusBadRequest, "invalid id")
	}
	return uint(id), nil
}

// List returns the roster in competition-level order, optionally filtered
// by squad year.
func (ctl *AthleteController) List(c *fiber.Ctx) error {
	db := ctl.DB.WithContext(c.UserContext()).Model(&model.Athlete{})
	if y := c.QueryInt("squad_year"); y > 0 {
		db = db.Where("athlete_squad_year = ?", y)
	}

	var rows []model.Athlete
	if err := db.Find(&rows).Error; err != nil {
		return helper.Fail(c, fiber.StatusInternalServerError, "db error: "+err.Error())
	}
	model.SortByLevel(rows)
	return helper.Success(c, rows)
}

func (ctl *AthleteController) Create(c *fiber.Ctx) error {
	var req dto.CreateAthleteRequest
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

func (ctl *AthleteController) Update(c *fiber.Ctx) error {
	id, err := getIDParam(c)
	if err != nil {
		return helper.FromError(c, err)
	}

	var m model.Athlete
	if err := ctl.DB.WithContext(c.UserContext()).First(&m, "athlete_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Fail(c, fiber.StatusNotFound, "athlete not found")
		}
		return helper.Fail(c, fiber.StatusInternalServerError, "db error: "+err.Error())
	}

	var req dto.UpdateAthleteRequest
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

func (ctl *AthleteController) Delete(c *fiber.Ctx) error {
	id, err := getIDParam(c)
	if err != nil {
		return helper.FromError(c, err)
	}
	res := ctl.DB.WithContext(c.UserContext()).Delete(&model.Athlete{}, "athlete_id = ?", id)
	if res.Error != nil {
		return helper.Fail(c, fiber.StatusInternalServerError, "db error: "+res.Error.Error())
	}
	if res.RowsAffected == 0 {
		return helper.Fail(c, fiber.StatusNotFound, "athlete not found")
	}
	return helper.Success(c, fiber.Map{"id": id})
}
