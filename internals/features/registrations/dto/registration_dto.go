package dto

import (
	"strings"
	"time"

	helper "gymclub_backend/internals/helpers"
	"gymclub_backend/internals/helpers/apperr"

	"gymclub_backend/internals/features/registrations/model"
)

type CreateRegistrationRequest struct {
	AthleteName   string  `json:"athlete_name" form:"athlete_name" validate:"required,max=120"`
	Birthdate     string  `json:"birthdate" form:"birthdate" validate:"required"`
	Level         string  `json:"level" form:"level" validate:"required,max=40"`
	GuardianName  string  `json:"guardian_name" form:"guardian_name" validate:"required,max=120"`
	GuardianEmail string  `json:"guardian_email" form:"guardian_email" validate:"required,email"`
	GuardianPhone *string `json:"guardian_phone" form:"guardian_phone" validate:"omitempty,max=30"`
	Note          *string `json:"note" form:"note"`
}

func (r *CreateRegistrationRequest) ToModel() (*model.Registration, error) {
	if err := helper.Validate.Struct(r); err != nil {
		return nil, apperr.Validation("invalid registration payload: %v", err)
	}
	birthdate := strings.TrimSpace(r.Birthdate)
	if _, err := time.Parse("2006-01-02", birthdate); err != nil {
		return nil, apperr.Validation("birthdate %q must be YYYY-MM-DD", birthdate)
	}
	return &model.Registration{
		RegistrationAthleteName:   strings.TrimSpace(r.AthleteName),
		RegistrationBirthdate:     birthdate,
		RegistrationLevel:         strings.TrimSpace(r.Level),
		RegistrationGuardianName:  strings.TrimSpace(r.GuardianName),
		RegistrationGuardianEmail: strings.TrimSpace(r.GuardianEmail),
		RegistrationGuardianPhone: r.GuardianPhone,
		RegistrationNote:          r.Note,
		RegistrationStatus:        model.StatusPending,
	}, nil
}

// Admin-side amendments: status review plus fixes to typed-in contact data.
type UpdateRegistrationRequest struct {
	AthleteName   *string `json:"athlete_name" form:"athlete_name" validate:"omitempty,max=120"`
	Level         *string `json:"level" form:"level" validate:"omitempty,max=40"`
	GuardianName  *string `json:"guardian_name" form:"guardian_name" validate:"omitempty,max=120"`
	GuardianEmail *string `json:"guardian_email" form:"guardian_email" validate:"omitempty,email"`
	GuardianPhone *string `json:"guardian_phone" form:"guardian_phone" validate:"omitempty,max=30"`
	Note          *string `json:"note" form:"note"`
	Status        *string `json:"status" form:"status"`

	ClearMedia bool `json:"clear_media" form:"clear_media"`
}

func (r *UpdateRegistrationRequest) Apply(m *model.Registration) error {
	if err := helper.Validate.Struct(r); err != nil {
		return apperr.Validation("invalid registration payload: %v", err)
	}
	if r.AthleteName != nil {
		if strings.TrimSpace(*r.AthleteName) == "" {
			return apperr.Validation("athlete_name cannot be empty")
		}
		m.RegistrationAthleteName = strings.TrimSpace(*r.AthleteName)
	}
	if r.Level != nil && strings.TrimSpace(*r.Level) != "" {
		m.RegistrationLevel = strings.TrimSpace(*r.Level)
	}
	if r.GuardianName != nil && strings.TrimSpace(*r.GuardianName) != "" {
		m.RegistrationGuardianName = strings.TrimSpace(*r.GuardianName)
	}
	if r.GuardianEmail != nil {
		m.RegistrationGuardianEmail = strings.TrimSpace(*r.GuardianEmail)
	}
	if r.GuardianPhone != nil {
		m.RegistrationGuardianPhone = r.GuardianPhone
	}
	if r.Note != nil {
		m.RegistrationNote = r.Note
	}
	if r.Status != nil {
		status := strings.ToLower(strings.TrimSpace(*r.Status))
		if status != model.StatusPending && status != model.StatusReviewed {
			return apperr.Validation("unknown status %q", status)
		}
		m.RegistrationStatus = status
	}
	return nil
}
