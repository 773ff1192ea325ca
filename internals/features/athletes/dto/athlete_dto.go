package dto

import (
	"strings"
	"time"

	helper "gymclub_backend/internals/helpers"
	"gymclub_backend/internals/helpers/apperr"

	"gymclub_backend/internals/features/athletes/model"
)

type CreateAthleteRequest struct {
	Name      string `json:"name" form:"name" validate:"required,max=120"`
	Level     string `json:"level" form:"level" validate:"required"`
	SquadYear int    `json:"squad_year" form:"squad_year"`
}

func (r *CreateAthleteRequest) ToModel() (*model.Athlete, error) {
	if err := helper.Validate.Struct(r); err != nil {
		return nil, apperr.Validation("invalid athlete payload: %v", err)
	}
	level := strings.ToLower(strings.TrimSpace(r.Level))
	if !model.IsValidLevel(level) {
		return nil, apperr.Validation("unknown level %q", level)
	}
	year := r.SquadYear
	if year == 0 {
		year = time.Now().Year()
	}
	return &model.Athlete{
		AthleteName:      strings.TrimSpace(r.Name),
		AthleteLevel:     level,
		AthleteSquadYear: year,
	}, nil
}

type UpdateAthleteRequest struct {
	Name      *string `json:"name" form:"name" validate:"omitempty,max=120"`
	Level     *string `json:"level" form:"level"`
	SquadYear *int    `json:"squad_year" form:"squad_year"`
}

func (r *UpdateAthleteRequest) Apply(m *model.Athlete) error {
	if err := helper.Validate.Struct(r); err != nil {
		return apperr.Validation("invalid athlete payload: %v", err)
	}
	if r.Name != nil {
		if strings.TrimSpace(*r.Name) == "" {
			return apperr.Validation("name cannot be empty")
		}
		m.AthleteName = strings.TrimSpace(*r.Name)
	}
	if r.Level != nil {
		level := strings.ToLower(strings.TrimSpace(*r.Level))
		if !model.IsValidLevel(level) {
			return apperr.Validation("unknown level %q", level)
		}
		m.AthleteLevel = level
	}
	if r.SquadYear != nil {
		m.AthleteSquadYear = *r.SquadYear
	}
	return nil
}
