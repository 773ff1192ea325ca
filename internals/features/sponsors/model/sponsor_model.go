package model

import (
	"sort"
	"time"
)

type Sponsor struct {
	SponsorID uint `gorm:"column:sponsor_id;primaryKey;autoIncrement" json:"sponsor_id"`

	SponsorOrganization string  `gorm:"column:sponsor_organization;size:120;not null" json:"sponsor_organization"`
	SponsorDescription  *string `gorm:"column:sponsor_description" json:"sponsor_description,omitempty"`
	SponsorTier         string  `gorm:"column:sponsor_tier;size:20;not null;default:bronze" json:"sponsor_tier"`
	SponsorWebsite      *string `gorm:"column:sponsor_website;size:255" json:"sponsor_website,omitempty"`

	// Public locator of the logo object, or null when no logo is attached.
	// Only the media lifecycle manager writes this column.
	SponsorImgURL *string `gorm:"column:sponsor_img_url;size:512" json:"sponsor_img_url,omitempty"`

	SponsorCreatedAt time.Time `gorm:"column:sponsor_created_at;autoCreateTime" json:"sponsor_created_at"`
	SponsorUpdatedAt time.Time `gorm:"column:sponsor_updated_at;autoUpdateTime" json:"sponsor_updated_at"`
}

func (Sponsor) TableName() string { return "sponsors" }

func (s *Sponsor) AssetLocator() *string     { return s.SponsorImgURL }
func (s *Sponsor) SetAssetLocator(v *string) { s.SponsorImgURL = v }

/* =========================================================
   Tier ordering (fixed lookup table)
========================================================= */

var TierRank = map[string]int{
	"platinum": 0,
	"gold":     1,
	"silver":   2,
	"bronze":   3,
}

func IsValidTier(t string) bool {
	_, ok := TierRank[t]
	return ok
}

// SortByTier orders platinum first; unknown tiers sink to the end, ties
// break alphabetically by organization.
func SortByTier(rows []Sponsor) {
	sort.SliceStable(rows, func(i, j int) bool {
		ri, ok := TierRank[rows[i].SponsorTier]
		if !ok {
			ri = len(TierRank)
		}
		rj, ok := TierRank[rows[j].SponsorTier]
		if !ok {
			rj = len(TierRank)
		}
		if ri != rj {
			return ri < rj
		}
		return rows[i].SponsorOrganization < rows[j].SponsorOrganization
	})
}
