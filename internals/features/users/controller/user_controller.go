package controller

import (
	"errors"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	helper "gymclub_backend/internals/helpers"
	"gymclub_backend/internals/helpers/apperr"

	"gymclub_backend/internals/features/users/dto"
	"gymclub_backend/internals/features/users/model"
)

type UserController struct {
	DB *gorm.DB
}

func NewUserController(db *gorm.DB) *UserController {
	return &UserController{DB: db}
}

func getIDParam(c *fiber.Ctx) (uint, error) {
	raw := strings.TrimSpace(c.Params("id"))
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return 0, fiber.NewError(fiber.StatusBadRequest, "invalid id")
	}
	return uint(id), nil
}

func (ctl *UserController) List(c *fiber.Ctx) error {
	var rows []model.User
	if err := ctl.DB.WithContext(c.UserContext()).
		Order("user_full_name").
		Find(&rows).Error; err != nil {
		return helper.Fail(c, fiber.StatusInternalServerError, "db error: "+err.Error())
	}
	return helper.Success(c, rows)
}

func (ctl *UserController) Create(c *fiber.Ctx) error {
	var req dto.CreateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Fail(c, fiber.StatusBadRequest, "invalid payload")
	}
	m, err := req.ToModel()
	if err != nil {
		return helper.FromError(c, err)
	}
	if err := ctl.DB.WithContext(c.UserContext()).Create(m).Error; err != nil {
		if apperr.IsUniqueViolation(err) {
			return helper.Fail(c, fiber.StatusBadRequest, "email already registered")
		}
		return helper.Fail(c, fiber.StatusInternalServerError, "db error: "+err.Error())
	}
	return helper.Success(c, m)
}

func (ctl *UserController) Update(c *fiber.Ctx) error {
	id, err := getIDParam(c)
	if err != nil {
		return helper.FromError(c, err)
	}

	var m model.User
	if err := ctl.DB.WithContext(c.UserContext()).First(&m, "user_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Fail(c, fiber.StatusNotFound, "user not found")
		}
		return helper.Fail(c, fiber.StatusInternalServerError, "db error: "+err.Error())
	}

	var req dto.UpdateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Fail(c, fiber.StatusBadRequest, "invalid payload")
	}
	if err := req.Apply(&m); err != nil {
		return helper.FromError(c, err)
	}
	if err := ctl.DB.WithContext(c.UserContext()).Save(&m).Error; err != nil {
		if apperr.IsUniqueViolation(err) {
			return helper.Fail(c, fiber.StatusBadRequest, "email already registered")
		}
		return helper.Fail(c, fiber.StatusInternalServerError, "db error: "+err.Error())
	}
	return helper.Success(c, m)
}

func (ctl *UserController) Delete(c *fiber.Ctx) error {
	id, err := getIDParam(c)
	if err != nil {
		return helper.FromError(c, err)
	}
	res := ctl.DB.WithContext(c.UserContext()).Delete(&model.User{}, "user_id = ?", id)
	if res.Error != nil {
		return helper.Fail(c, fiber.StatusInternalServerError, "db error: "+res.Error.Error())
	}
	if res.RowsAffected == 0 {
		return helper.Fail(c, fiber.StatusNotFound, "user not found")
	}
	return helper.Success(c, fiber.Map{"id": id})
}
