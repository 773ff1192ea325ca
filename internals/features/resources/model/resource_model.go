package model

import "time"

// Resource is a downloadable document (handbook, schedule, waiver form).
type Resource struct {
	ResourceID uint `gorm:"column:resource_id;primaryKey;autoIncrement" json:"resource_id"`

	ResourceTitle       string  `gorm:"column:resource_title;size:160;not null" json:"resource_title"`
	ResourceCategory    string  `gorm:"column:resource_category;size:60;not null;default:general" json:"resource_category"`
	ResourceDescription *string `gorm:"column:resource_description" json:"resource_description,omitempty"`

	ResourceFileURL *string `gorm:"column:resource_file_url;size:512" json:"resource_file_url,omitempty"`

	ResourceCreatedAt time.Time `gorm:"column:resource_created_at;autoCreateTime" json:"resource_created_at"`
	ResourceUpdatedAt time.Time `gorm:"column:resource_updated_at;autoUpdateTime" json:"resource_updated_at"`
}

func (Resource) TableName() string { return "resources" }

func (r *Resource) AssetLocator() *string     { return r.ResourceFileURL }
func (r *Resource) SetAssetLocator(v *string) { r.ResourceFileURL = v }
