package models

import "time"

// Session is a server-side login session keyed by an opaque ID
// handed to the browser in a cookie.
type Session struct {
	ID        string `gorm:"primaryKey;size:36"`
	UserID    uint   `gorm:"not null"`
	User      User   `gorm:"foreignKey:UserID"`
	ExpiresAt time.Time
}

func (s *Session) TableName() string {
	return "sessions"
}
