package dto

import (
	"strings"

	helper "gymclub_backend/internals/helpers"
	"gymclub_backend/internals/helpers/apperr"

	"gymclub_backend/internals/features/users/model"
)

type CreateUserRequest struct {
	Email    string `json:"email" form:"email" validate:"required,email"`
	FullName string `json:"full_name" form:"full_name" validate:"required,max=120"`
	Role     string `json:"role" form:"role"`
}

func (r *CreateUserRequest) ToModel() (*model.User, error) {
	if err := helper.Validate.Struct(r); err != nil {
		return nil, apperr.Validation("invalid user payload: %v", err)
	}
	role := strings.ToLower(strings.TrimSpace(r.Role))
	if role == "" {
		role = model.RoleMember
	}
	if role != model.RoleAdmin && role != model.RoleMember {
		return nil, apperr.Validation("unknown role %q", role)
	}
	return &model.User{
		UserEmail:    strings.ToLower(strings.TrimSpace(r.Email)),
		UserFullName: strings.TrimSpace(r.FullName),
		UserRole:     role,
	}, nil
}

type UpdateUserRequest struct {
	Email    *string `json:"email" form:"email" validate:"omitempty,email"`
	FullName *string `json:"full_name" form:"full_name" validate:"omitempty,max=120"`
	Role     *string `json:"role" form:"role"`
}

func (r *UpdateUserRequest) Apply(m *model.User) error {
	if err := helper.Validate.Struct(r); err != nil {
		return apperr.Validation("invalid user payload: %v", err)
	}
	if r.Email != nil {
		m.UserEmail = strings.ToLower(strings.TrimSpace(*r.Email))
	}
	if r.FullName != nil && strings.TrimSpace(*r.FullName) != "" {
		m.UserFullName = strings.TrimSpace(*r.FullName)
	}
	if r.Role != nil {
		role := strings.ToLower(strings.TrimSpace(*r.Role))
		if role != model.RoleAdmin && role != model.RoleMember {
			return apperr.Validation("unknown role %q", role)
		}
		m.UserRole = role
	}
	return nil
}
