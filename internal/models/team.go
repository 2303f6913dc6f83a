package models

import "time"

type Team struct {
	ID        uint      `gorm:"primaryKey" json:"-"`
	TeamID    string    `gorm:"uniqueIndex;not null" json:"team_id"`
	Name      string    `gorm:"not null" json:"name"`
	CreatedBy string    `gorm:"index;not null" json:"created_by"`
	Members   []string  `gorm:"serializer:json" json:"members"`
	CreatedAt time.Time `json:"created_at"`
}

// HasMember reports whether uid is the creator or a listed member.
func (team Team) HasMember(uid string) bool {
	if team.CreatedBy == uid {
		return true
	}
	for _, member := range team.Members {
		if member == uid {
			return true
		}
	}
	return false
}
