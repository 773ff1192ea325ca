package controller

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	helper "gymclub_backend/internals/helpers"

	"gymclub_backend/internals/features/announcements/model"
)

type AnnouncementController struct {
	DB *gorm.DB
}

func NewAnnouncementController(db *gorm.DB) *AnnouncementController {
	return &AnnouncementController{DB: db}
}

type upsertAnnouncementRequest struct {
	Message string  `json:"message" form:"message" validate:"required,max=500"`
	Link    *string `json:"link" form:"link" validate:"omitempty,url"`
	Active  *bool   `json:"active" form:"active"`
}

// GetActive serves the public banner; an inactive or absent banner is a
// null body, not an error.
func (ctl *AnnouncementController) GetActive(c *fiber.Ctx) error {
	var m model.Announcement
	err := ctl.DB.WithContext(c.UserContext()).First(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.Success(c, nil)
	}
	if err != nil {
		return helper.Fail(c, fiber.StatusInternalServerError, "db error: "+err.Error())
	}
	if !m.AnnouncementActive {
		return helper.Success(c, nil)
	}
	return helper.Success(c, m)
}

// Get returns the banner row regardless of active state (admin view).
func (ctl *AnnouncementController) Get(c *fiber.Ctx) error {
	var m model.Announcement
	err := ctl.DB.WithContext(c.UserContext()).First(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.Success(c, nil)
	}
	if err != nil {
		return helper.Fail(c, fiber.StatusInternalServerError, "db error: "+err.Error())
	}
	return helper.Success(c, m)
}

// Upsert inserts the banner row when none exists, otherwise updates it in
// place. Single-row semantics keep the public lookup trivial.
func (ctl *AnnouncementController) Upsert(c *fiber.Ctx) error {
	var req upsertAnnouncementRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Fail(c, fiber.StatusBadRequest, "invalid payload")
	}
	if err := helper.Validate.Struct(&req); err != nil {
		return helper.ValidationFail(c, err)
	}

	db := ctl.DB.WithContext(c.UserContext())

	var m model.Announcement
	err := db.First(&m).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		m = model.Announcement{}
	case err != nil:
		return helper.Fail(c, fiber.StatusInternalServerError, "db error: "+err.Error())
	}

	m.AnnouncementMessage = strings.TrimSpace(req.Message)
	m.AnnouncementLink = req.Link
	if req.Active != nil {
		m.AnnouncementActive = *req.Active
	}

	if err := db.Save(&m).Error; err != nil {
		return helper.Fail(c, fiber.StatusInternalServerError, "db error: "+err.Error())
	}
	return helper.Success(c, m)
}
