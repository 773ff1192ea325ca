package model

import "time"

const (
	StatusPending  = "pending"
	StatusReviewed = "reviewed"
)

// Registration is a tryout submission from the public form. The optional
// photo lives in the object store; its locator is the asset column below.
type Registration struct {
	RegistrationID uint `gorm:"column:registration_id;primaryKey;autoIncrement" json:"registration_id"`

	RegistrationAthleteName   string  `gorm:"column:registration_athlete_name;size:120;not null" json:"registration_athlete_name"`
	RegistrationBirthdate     string  `gorm:"column:registration_birthdate;size:10;not null" json:"registration_birthdate"`
	RegistrationLevel         string  `gorm:"column:registration_level;size:40;not null" json:"registration_level"`
	RegistrationGuardianName  string  `gorm:"column:registration_guardian_name;size:120;not null" json:"registration_guardian_name"`
	RegistrationGuardianEmail string  `gorm:"column:registration_guardian_email;size:160;not null" json:"registration_guardian_email"`
	RegistrationGuardianPhone *string `gorm:"column:registration_guardian_phone;size:30" json:"registration_guardian_phone,omitempty"`
	RegistrationNote          *string `gorm:"column:registration_note" json:"registration_note,omitempty"`
	RegistrationStatus        string  `gorm:"column:registration_status;size:20;not null;default:pending" json:"registration_status"`

	RegistrationImgURL *string `gorm:"column:registration_img_url;size:512" json:"registration_img_url,omitempty"`

	RegistrationCreatedAt time.Time `gorm:"column:registration_created_at;autoCreateTime" json:"registration_created_at"`
	RegistrationUpdatedAt time.Time `gorm:"column:registration_updated_at;autoUpdateTime" json:"registration_updated_at"`
}

func (Registration) TableName() string { return "registrations" }

func (r *Registration) AssetLocator() *string     { return r.RegistrationImgURL }
func (r *Registration) SetAssetLocator(v *string) { r.RegistrationImgURL = v }
