package models

import "time"

type Client struct {
	ID        uint      `gorm:"primaryKey" json:"-"`
	ClientID  string    `gorm:"uniqueIndex;not null" json:"id"`
	UID       string    `gorm:"index;not null" json:"uid"`
	Name      string    `gorm:"not null" json:"name"`
	Company   string    `json:"company,omitempty"`
	Email     string    `json:"email,omitempty"`
	Phone     string    `json:"phone,omitempty"`
	Address   string    `json:"address,omitempty"`
	Notes     string    `json:"notes,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"-"`
}
