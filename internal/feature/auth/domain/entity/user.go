// Package entity defines the domain entities for the auth feature.
package entity

import "time"

// User is a registered account. Accounts are created on signup and never
// updated or deleted afterwards.
type User struct {
	// ID is the unique identifier for the user.
	ID uint `gorm:"primaryKey"`

	// Email identifies the account at signin. Unique across all users.
	Email string `gorm:"uniqueIndex;size:255;not null"`

	// Password holds the bcrypt hash of the user's password.
	// A plaintext password must never reach this field.
	Password string `gorm:"size:255;not null"`

	CreatedAt time.Time
	UpdatedAt time.Time
}
