// Package entity defines the domain entities for the auth feature.
package entity

import "time"

// User represents a registered user in the system.
// Users are created once at registration and never updated or deleted.
type User struct {
	// ID is the unique identifier for the user.
	ID uint `gorm:"primaryKey"`

	// Name is the display name chosen at registration.
	Name string `gorm:"size:64;not null"`

	// Email is the user's login identifier, stored trimmed and lower-cased.
	// The unique index is what enforces one account per address.
	Email string `gorm:"uniqueIndex;size:255;not null"`

	// Phone is optional; when set it is exactly ten digits.
	Phone string `gorm:"size:10"`

	// PasswordHash is the bcrypt hash of the user's password.
	PasswordHash string `gorm:"column:password_hash;size:255;not null"`

	// CreatedAt is the timestamp when the user was created.
	CreatedAt time.Time
}
