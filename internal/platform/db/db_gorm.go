// Package db opens the application's database connection.
package db

import (
	"log"
	"time"

	gpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"

	authentity "trackapp/internal/feature/auth/domain/entity"
	trackadapters "trackapp/internal/feature/tracks/adapters"
)

// OpenDB connects to Postgres with the given connection string and registers
// the user and track schemas. It retries for up to a minute before giving up,
// logging each failed attempt; both record collections are migrated on every
// start.
func OpenDB(dsn string) *gorm.DB {
	var (
		db  *gorm.DB
		err error
	)

	deadline := time.Now().Add(60 * time.Second)
	for {
		db, err = gorm.Open(gpostgres.Open(dsn), &gorm.Config{})
		if err == nil {
			break
		}
		if time.Now().After(deadline) {
			log.Fatalf("DB connect failed after 60s: %v", err)
		}
		log.Printf("DB connect failed, retrying...: %v", err)
		time.Sleep(3 * time.Second)
	}

	if err := db.AutoMigrate(
		&authentity.User{},
		&trackadapters.TrackModel{},
	); err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}

	log.Println("Connected to database")
	return db
}
