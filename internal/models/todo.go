package models

import "time"

const (
	PriorityLow    = "low"
	PriorityNormal = "normal"
	PriorityHigh   = "high"
)

func IsTodoPriority(priority string) bool {
	switch priority {
	case PriorityLow, PriorityNormal, PriorityHigh:
		return true
	}
	return false
}

type Todo struct {
	ID          uint       `gorm:"primaryKey" json:"-"`
	TodoID      string     `gorm:"uniqueIndex;not null" json:"id"`
	UID         string     `gorm:"index;not null" json:"uid"`
	Title       string     `gorm:"not null" json:"title"`
	Description string     `json:"description,omitempty"`
	Priority    string     `gorm:"not null;default:normal" json:"priority"`
	DueDate     *time.Time `json:"due_date,omitempty"`
	Completed   bool       `gorm:"not null;default:false" json:"completed"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"-"`
}
