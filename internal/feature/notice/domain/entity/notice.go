// Package entity defines the domain models for the notice feature.
package entity

import "time"

// Notice is a titled text post shown on the board.
type Notice struct {
	ID      uint      `gorm:"primaryKey"`
	Title   string    `gorm:"size:200;not null"`
	Message string    `gorm:"type:text;not null"`
	Date    time.Time `gorm:"not null"` // display timestamp, client supplied or the creation time

	// UserID is a lookup key for the author, not a foreign key. Nil when
	// the author is unknown.
	UserID *uint `gorm:"index"`

	CreatedAt time.Time `gorm:"index"`
}
