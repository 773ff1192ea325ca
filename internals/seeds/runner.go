package seeds

import (
	"log"
	"os"

	"gorm.io/gorm"

	annModel "gymclub_backend/internals/features/announcements/model"
	userModel "gymclub_backend/internals/features/users/model"
)

// RunAllSeeds fills the handful of rows the site cannot run without. Every
// seed is idempotent: existing rows are left alone.
func RunAllSeeds(db *gorm.DB) {
	seedAdminUser(db)
	seedAnnouncement(db)
}

// seedAdminUser guarantees at least one account can pass the admin gate.
// The email comes from SEED_ADMIN_EMAIL so no real address lives in code.
func seedAdminUser(db *gorm.DB) {
	email := os.Getenv("SEED_ADMIN_EMAIL")
	if email == "" {
		return
	}

	var count int64
	if err := db.Model(&userModel.User{}).
		Where("user_role = ?", userModel.RoleAdmin).
		Count(&count).Error; err != nil {
		log.Printf("seed admin: %v", err)
		return
	}
	if count > 0 {
		return
	}

	u := userModel.User{
		UserEmail:    email,
		UserFullName: "Site Admin",
		UserRole:     userModel.RoleAdmin,
	}
	if err := db.Create(&u).Error; err != nil {
		log.Printf("seed admin: %v", err)
		return
	}
	log.Printf("seeded admin user %s", email)
}

// seedAnnouncement creates the single (inactive) banner row so the public
// endpoint always has something to answer with.
func seedAnnouncement(db *gorm.DB) {
	var count int64
	if err := db.Model(&annModel.Announcement{}).Count(&count).Error; err != nil {
		log.Printf("seed announcement: %v", err)
		return
	}
	if count > 0 {
		return
	}
	if err := db.Create(&annModel.Announcement{
		AnnouncementMessage: "",
		AnnouncementActive:  false,
	}).Error; err != nil {
		log.Printf("seed announcement: %v", err)
	}
}
