package database

import (
	"log"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"gymclub_backend/internals/configs"

	annModel "gymclub_backend/internals/features/announcements/model"
	athModel "gymclub_backend/internals/features/athletes/model"
	coachModel "gymclub_backend/internals/features/coaches/model"
	progModel "gymclub_backend/internals/features/programs/model"
	regModel "gymclub_backend/internals/features/registrations/model"
	resModel "gymclub_backend/internals/features/resources/model"
	spModel "gymclub_backend/internals/features/sponsors/model"
	prodModel "gymclub_backend/internals/features/store/model"
	userModel "gymclub_backend/internals/features/users/model"
)

// Connect opens the pool against PostgreSQL. PreferSimpleProtocol keeps us
// compatible with transaction-pooling PgBouncer setups.
func Connect(cfg configs.DBConfig) *gorm.DB {
	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  cfg.DSN(),
		PreferSimpleProtocol: true,
	}), &gorm.Config{})
	if err != nil {
		log.Fatalf("db connect: %v", err)
	}
	log.Println("db connected")
	return db
}

// Migrate keeps the schema in step with the models. Column renames and
// destructive changes still need hand-written SQL; AutoMigrate only adds.
func Migrate(db *gorm.DB) {
	err := db.AutoMigrate(
		&userModel.User{},
		&spModel.Sponsor{},
		&prodModel.Product{},
		&resModel.Resource{},
		&regModel.Registration{},
		&athModel.Athlete{},
		&coachModel.Coach{},
		&progModel.Program{},
		&annModel.Announcement{},
	)
	if err != nil {
		log.Fatalf("db migrate: %v", err)
	}
}

func TunePool(db *gorm.DB) {
	sqlDB, err := db.DB()
	if err != nil {
		log.Printf("pool tune err: %v", err)
		return
	}
	sqlDB.SetMaxOpenConns(20)
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetConnMaxIdleTime(60 * time.Second)
	sqlDB.SetConnMaxLifetime(10 * time.Minute)
}

// WarmUp pings in the background so the first real request does not pay for
// connection establishment.
func WarmUp(db *gorm.DB) {
	go func() {
		time.Sleep(500 * time.Millisecond)
		if sqlDB, err := db.DB(); err == nil {
			if err := sqlDB.Ping(); err != nil {
				log.Printf("warm-up ping err: %v", err)
			}
		}
	}()
}
