package dto

import (
	"strings"

	helper "gymclub_backend/internals/helpers"
	"gymclub_backend/internals/helpers/apperr"

	"gymclub_backend/internals/features/sponsors/model"
)

/* =========================================================
   CREATE (JSON & multipart via form tags)
========================================================= */

type CreateSponsorRequest struct {
	Organization string  `json:"organization" form:"organization" validate:"required,max=120"`
	Description  *string `json:"description" form:"description"`
	Tier         string  `json:"tier" form:"tier"`
	Website      *string `json:"website" form:"website" validate:"omitempty,url"`
}

func (r *CreateSponsorRequest) ToModel() (*model.Sponsor, error) {
	if err := helper.Validate.Struct(r); err != nil {
		return nil, apperr.Validation("invalid sponsor payload: %v", err)
	}
	tier := strings.ToLower(strings.TrimSpace(r.Tier))
	if tier == "" {
		tier = "bronze"
	}
	if !model.IsValidTier(tier) {
		return nil, apperr.Validation("unknown sponsor tier %q", tier)
	}
	return &model.Sponsor{
		SponsorOrganization: strings.TrimSpace(r.Organization),
		SponsorDescription:  r.Description,
		SponsorTier:         tier,
		SponsorWebsite:      r.Website,
	}, nil
}

/* =========================================================
   UPDATE (partial; nil = leave untouched)
========================================================= */

type UpdateSponsorRequest struct {
	Organization *string `json:"organization" form:"organization" validate:"omitempty,max=120"`
	Description  *string `json:"description" form:"description"`
	Tier         *string `json:"tier" form:"tier"`
	Website      *string `json:"website" form:"website" validate:"omitempty,url"`

	// ClearMedia selects the Clear branch of the asset change.
	ClearMedia bool `json:"clear_media" form:"clear_media"`
}

func (r *UpdateSponsorRequest) Apply(m *model.Sponsor) error {
	if err := helper.Validate.Struct(r); err != nil {
		return apperr.Validation("invalid sponsor payload: %v", err)
	}
	if r.Organization != nil {
		if strings.TrimSpace(*r.Organization) == "" {
			return apperr.Validation("organization cannot be empty")
		}
		m.SponsorOrganization = strings.TrimSpace(*r.Organization)
	}
	if r.Description != nil {
		m.SponsorDescription = r.Description
	}
	if r.Tier != nil {
		tier := strings.ToLower(strings.TrimSpace(*r.Tier))
		if !model.IsValidTier(tier) {
			return apperr.Validation("unknown sponsor tier %q", tier)
		}
		m.SponsorTier = tier
	}
	if r.Website != nil {
		m.SponsorWebsite = r.Website
	}
	return nil
}
