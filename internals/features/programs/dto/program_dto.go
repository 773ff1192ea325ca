package dto

import (
	"strings"

	helper "gymclub_backend/internals/helpers"
	"gymclub_backend/internals/helpers/apperr"

	"gymclub_backend/internals/features/programs/model"
)

type CreateProgramRequest struct {
	Name        string  `json:"name" form:"name" validate:"required,max=120"`
	Description *string `json:"description" form:"description"`
	AgeRange    string  `json:"age_range" form:"age_range" validate:"required,max=40"`
	Active      *bool   `json:"active" form:"active"`
}

func (r *CreateProgramRequest) ToModel() (*model.Program, error) {
	if err := helper.Validate.Struct(r); err != nil {
		return nil, apperr.Validation("invalid program payload: %v", err)
	}
	active := true
	if r.Active != nil {
		active = *r.Active
	}
	return &model.Program{
		ProgramName:        strings.TrimSpace(r.Name),
		ProgramDescription: r.Description,
		ProgramAgeRange:    strings.TrimSpace(r.AgeRange),
		ProgramActive:      active,
	}, nil
}

type UpdateProgramRequest struct {
	Name        *string `json:"name" form:"name" validate:"omitempty,max=120"`
	Description *string `json:"description" form:"description"`
	AgeRange    *string `json:"age_range" form:"age_range" validate:"omitempty,max=40"`
	Active      *bool   `json:"active" form:"active"`
}

func (r *UpdateProgramRequest) Apply(m *model.Program) error {
	if err := helper.Validate.Struct(r); err != nil {
		return apperr.Validation("invalid program payload: %v", err)
	}
	if r.Name != nil {
		if strings.TrimSpace(*r.Name) == "" {
			return apperr.Validation("name cannot be empty")
		}
		m.ProgramName = strings.TrimSpace(*r.Name)
	}
	if r.Description != nil {
		m.ProgramDescription = r.Description
	}
	if r.AgeRange != nil && strings.TrimSpace(*r.AgeRange) != "" {
		m.ProgramAgeRange = strings.TrimSpace(*r.AgeRange)
	}
	if r.Active != nil {
		m.ProgramActive = *r.Active
	}
	return nil
}
