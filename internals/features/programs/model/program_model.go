package model

import (
	"time"

	"gorm.io/gorm"
)

type Program struct {
	ProgramID uint `gorm:"column:program_id;primaryKey;autoIncrement" json:"program_id"`

	ProgramName        string  `gorm:"column:program_name;size:120;not null" json:"program_name"`
	ProgramDescription *string `gorm:"column:program_description" json:"program_description,omitempty"`
	ProgramAgeRange    string  `gorm:"column:program_age_range;size:40;not null" json:"program_age_range"`
	ProgramActive      bool    `gorm:"column:program_active;not null;default:true" json:"program_active"`

	ProgramCreatedAt time.Time      `gorm:"column:program_created_at;autoCreateTime" json:"program_created_at"`
	ProgramUpdatedAt time.Time      `gorm:"column:program_updated_at;autoUpdateTime" json:"program_updated_at"`
	ProgramDeletedAt gorm.DeletedAt `gorm:"column:program_deleted_at;index" json:"-"`
}

func (Program) TableName() string { return "programs" }
