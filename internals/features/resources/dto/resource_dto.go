package dto

import (
	"strings"

	helper "gymclub_backend/internals/helpers"
	"gymclub_backend/internals/helpers/apperr"

	"gymclub_backend/internals/features/resources/model"
)

type CreateResourceRequest struct {
	Title       string  `json:"title" form:"title" validate:"required,max=160"`
	Category    string  `json:"category" form:"category" validate:"omitempty,max=60"`
	Description *string `json:"description" form:"description"`
}

func (r *CreateResourceRequest) ToModel() (*model.Resource, error) {
	if err := helper.Validate.Struct(r); err != nil {
		return nil, apperr.Validation("invalid resource payload: %v", err)
	}
	category := strings.TrimSpace(r.Category)
	if category == "" {
		category = "general"
	}
	return &model.Resource{
		ResourceTitle:       strings.TrimSpace(r.Title),
		ResourceCategory:    category,
		ResourceDescription: r.Description,
	}, nil
}

type UpdateResourceRequest struct {
	Title       *string `json:"title" form:"title" validate:"omitempty,max=160"`
	Category    *string `json:"category" form:"category" validate:"omitempty,max=60"`
	Description *string `json:"description" form:"description"`

	ClearMedia bool `json:"clear_media" form:"clear_media"`
}

func (r *UpdateResourceRequest) Apply(m *model.Resource) error {
	if err := helper.Validate.Struct(r); err != nil {
		return apperr.Validation("invalid resource payload: %v", err)
	}
	if r.Title != nil {
		if strings.TrimSpace(*r.Title) == "" {
			return apperr.Validation("title cannot be empty")
		}
		m.ResourceTitle = strings.TrimSpace(*r.Title)
	}
	if r.Category != nil && strings.TrimSpace(*r.Category) != "" {
		m.ResourceCategory = strings.TrimSpace(*r.Category)
	}
	if r.Description != nil {
		m.ResourceDescription = r.Description
	}
	return nil
}
