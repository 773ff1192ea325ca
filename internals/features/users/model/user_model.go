package model

import (
	"time"

	"gorm.io/gorm"
)

const (
	RoleAdmin  = "admin"
	RoleMember = "member"
)

// User mirrors the account roster held by the external identity provider;
// no credentials live here, only who may see the admin area.
type User struct {
	UserID uint `gorm:"column:user_id;primaryKey;autoIncrement" json:"user_id"`

	UserEmail    string `gorm:"column:user_email;size:160;unique;not null" json:"user_email"`
	UserFullName string `gorm:"column:user_full_name;size:120;not null" json:"user_full_name"`
	UserRole     string `gorm:"column:user_role;size:20;not null;default:member" json:"user_role"`

	UserCreatedAt time.Time      `gorm:"column:user_created_at;autoCreateTime" json:"user_created_at"`
	UserUpdatedAt time.Time      `gorm:"column:user_updated_at;autoUpdateTime" json:"user_updated_at"`
	UserDeletedAt gorm.DeletedAt `gorm:"column:user_deleted_at;index" json:"-"`
}

func (User) TableName() string { return "users" }
