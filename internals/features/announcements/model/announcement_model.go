package model

import "time"

// Announcement is the site-wide banner. The table holds at most one row;
// the PUT handler does a conditional insert-or-update against it.
type Announcement struct {
	AnnouncementID uint `gorm:"column:announcement_id;primaryKey;autoIncrement" json:"announcement_id"`

	AnnouncementMessage string  `gorm:"column:announcement_message;size:500;not null" json:"announcement_message"`
	AnnouncementLink    *string `gorm:"column:announcement_link;size:255" json:"announcement_link,omitempty"`
	AnnouncementActive  bool    `gorm:"column:announcement_active;not null;default:false" json:"announcement_active"`

	AnnouncementUpdatedAt time.Time `gorm:"column:announcement_updated_at;autoUpdateTime" json:"announcement_updated_at"`
}

func (Announcement) TableName() string { return "announcements" }
