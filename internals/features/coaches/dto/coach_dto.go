package dto

import (
	"strings"

	helper "gymclub_backend/internals/helpers"
	"gymclub_backend/internals/helpers/apperr"

	"gymclub_backend/internals/features/coaches/model"
)

type CreateCoachRequest struct {
	Name  string  `json:"name" form:"name" validate:"required,max=120"`
	Title string  `json:"title" form:"title" validate:"required,max=120"`
	Bio   *string `json:"bio" form:"bio"`
	Order int     `json:"order" form:"order"`
}

func (r *CreateCoachRequest) ToModel() (*model.Coach, error) {
	if err := helper.Validate.Struct(r); err != nil {
		return nil, apperr.Validation("invalid coach payload: %v", err)
	}
	return &model.Coach{
		CoachName:  strings.TrimSpace(r.Name),
		CoachTitle: strings.TrimSpace(r.Title),
		CoachBio:   r.Bio,
		CoachOrder: r.Order,
	}, nil
}

type UpdateCoachRequest struct {
	Name  *string `json:"name" form:"name" validate:"omitempty,max=120"`
	Title *string `json:"title" form:"title" validate:"omitempty,max=120"`
	Bio   *string `json:"bio" form:"bio"`
	Order *int    `json:"order" form:"order"`
}

func (r *UpdateCoachRequest) Apply(m *model.Coach) error {
	if err := helper.Validate.Struct(r); err != nil {
		return apperr.Validation("invalid coach payload: %v", err)
	}
	if r.Name != nil {
		if strings.TrimSpace(*r.Name) == "" {
			return apperr.Validation("name cannot be empty")
		}
		m.CoachName = strings.TrimSpace(*r.Name)
	}
	if r.Title != nil && strings.TrimSpace(*r.Title) != "" {
		m.CoachTitle = strings.TrimSpace(*r.Title)
	}
	if r.Bio != nil {
		m.CoachBio = r.Bio
	}
	if r.Order != nil {
		m.CoachOrder = *r.Order
	}
	return nil
}
