package models

import "time"

const (
	StatusPaid      = "paid"
	StatusUnpaid    = "unpaid"
	StatusPending   = "pending"
	StatusNotWorked = "not_worked"
)

// WeekDays lists the day names accepted for events and task slots.
var WeekDays = []string{"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday"}

func IsWeekDay(day string) bool {
	for _, name := range WeekDays {
		if name == day {
			return true
		}
	}
	return false
}

func IsEventStatus(status string) bool {
	switch status {
	case StatusPaid, StatusUnpaid, StatusPending, StatusNotWorked:
		return true
	}
	return false
}

// PlanningEvent is one scheduled block of work inside an ISO week.
// HourlyRate of zero means "use the owner's default rate".
type PlanningEvent struct {
	ID          uint      `gorm:"primaryKey" json:"-"`
	EventID     string    `gorm:"uniqueIndex;not null" json:"id"`
	UID         string    `gorm:"index:idx_event_owner_week;not null" json:"uid"`
	Year        int       `gorm:"index:idx_event_owner_week;not null" json:"year"`
	Week        int       `gorm:"index:idx_event_owner_week;not null" json:"week"`
	Description string    `gorm:"not null" json:"description"`
	ClientID    string    `json:"client_id,omitempty"`
	ClientName  string    `json:"client_name,omitempty"`
	Day         string    `gorm:"not null" json:"day"`
	StartTime   string    `gorm:"not null" json:"start_time"`
	EndTime     string    `gorm:"not null" json:"end_time"`
	Status      string    `gorm:"not null;default:pending" json:"status"`
	HourlyRate  float64   `json:"hourly_rate,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"-"`
}

// TimeSlot pins one occurrence of a weekly task to a day and time range.
type TimeSlot struct {
	Day   string `json:"day"`
	Start string `json:"start"`
	End   string `json:"end"`
}

// WeeklyTask is a recurring billable activity. Price is charged per
// hour of slot duration; color and icon are opaque presentation data.
type WeeklyTask struct {
	ID        uint       `gorm:"primaryKey" json:"-"`
	TaskID    string     `gorm:"uniqueIndex;not null" json:"id"`
	UID       string     `gorm:"index:idx_task_owner_week;not null" json:"uid"`
	Year      int        `gorm:"index:idx_task_owner_week;not null" json:"year"`
	Week      int        `gorm:"index:idx_task_owner_week;not null" json:"week"`
	Name      string     `gorm:"not null" json:"name"`
	Price     float64    `gorm:"not null" json:"price"`
	Color     string     `json:"color"`
	Icon      string     `json:"icon"`
	TimeSlots []TimeSlot `gorm:"serializer:json" json:"time_slots"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"-"`
}
