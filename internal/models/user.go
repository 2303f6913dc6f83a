package models

import "time"

const DefaultHourlyRate = 50.0

type User struct {
	ID           uint      `gorm:"primaryKey" json:"-"`
	UID          string    `gorm:"uniqueIndex;not null" json:"uid"`
	Name         string    `gorm:"not null" json:"name"`
	Email        string    `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string    `gorm:"not null" json:"-"`
	HourlyRate   float64   `gorm:"not null;default:50" json:"hourly_rate"`
	TeamID       string    `gorm:"index" json:"team_id,omitempty"`
	CreatedAt    time.Time `gorm:"not null" json:"created_at"`
}
