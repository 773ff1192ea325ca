package model

import (
	"time"

	"gorm.io/gorm"
)

type Coach struct {
	CoachID uint `gorm:"column:coach_id;primaryKey;autoIncrement" json:"coach_id"`

	CoachName  string  `gorm:"column:coach_name;size:120;not null" json:"coach_name"`
	CoachTitle string  `gorm:"column:coach_title;size:120;not null" json:"coach_title"`
	CoachBio   *string `gorm:"column:coach_bio" json:"coach_bio,omitempty"`
	// Manual display order on the staff page; lower comes first.
	CoachOrder int `gorm:"column:coach_order;not null;default:0" json:"coach_order"`

	CoachCreatedAt time.Time      `gorm:"column:coach_created_at;autoCreateTime" json:"coach_created_at"`
	CoachUpdatedAt time.Time      `gorm:"column:coach_updated_at;autoUpdateTime" json:"coach_updated_at"`
	CoachDeletedAt gorm.DeletedAt `gorm:"column:coach_deleted_at;index" json:"-"`
}

func (Coach) TableName() string { return "coaches" }
