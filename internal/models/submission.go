package models

import (
	"time"
)

// Submission represents one contact-form attempt persisted by the API.
// Rows are append-only: the endpoint creates them, nothing updates or
// deletes them.
type Submission struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"not null;size:255" json:"name"`
	Email     string    `gorm:"not null;size:255" json:"email"`
	Company   string    `gorm:"size:255" json:"company"`
	Phone     string    `gorm:"size:64" json:"phone"`
	Message   string    `gorm:"not null" json:"message"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

// TableName returns the table name for Submission
func (Submission) TableName() string {
	return "submissions"
}
