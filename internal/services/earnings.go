package services

import (
	"strconv"
	"strings"

	"github.com/terraincognita07/fleemy/internal/models"
)

// EarningsSummary holds the categorized revenue for one week of
// records. NotWorked tracks scheduled-but-unbillable time and is
// deliberately left out of Total.
type EarningsSummary struct {
	Paid      float64 `json:"paid"`
	Unpaid    float64 `json:"unpaid"`
	Pending   float64 `json:"pending"`
	NotWorked float64 `json:"not_worked"`
	Total     float64 `json:"total"`
}

// ComputeEarnings sums event and task revenue into status buckets.
//
// Hours are derived from the hour component of HH:MM only; minutes are
// ignored. A record whose times cannot be parsed, or whose end precedes
// its start, still contributes: it is charged as one hour-equivalent at
// its rate. Events with an unrecognized status contribute to no bucket.
// Task slots are always booked as paid; recurring work is assumed
// pre-settled. The function never fails and is order-independent.
func ComputeEarnings(events []models.PlanningEvent, tasks []models.WeeklyTask, defaultHourlyRate float64) EarningsSummary {
	summary := EarningsSummary{}

	for _, event := range events {
		rate := event.HourlyRate
		if rate <= 0 {
			rate = defaultHourlyRate
		}

		amount := rate
		if hours, ok := wholeHoursBetween(event.StartTime, event.EndTime); ok {
			amount = float64(hours) * rate
		}

		switch event.Status {
		case models.StatusPaid:
			summary.Paid += amount
		case models.StatusUnpaid:
			summary.Unpaid += amount
		case models.StatusPending:
			summary.Pending += amount
		case models.StatusNotWorked:
			summary.NotWorked += amount
		}
	}

	for _, task := range tasks {
		for _, slot := range task.TimeSlots {
			amount := task.Price
			if hours, ok := wholeHoursBetween(slot.Start, slot.End); ok {
				amount = float64(hours) * task.Price
			}
			summary.Paid += amount
		}
	}

	summary.Total = summary.Paid + summary.Unpaid + summary.Pending
	return summary
}

// wholeHoursBetween returns end-start using only the hour component of
// HH:MM values. ok is false for malformed times or reversed ranges, in
// which case callers fall back to a one-hour-equivalent charge.
func wholeHoursBetween(start string, end string) (int, bool) {
	startHour, ok := hourComponent(start)
	if !ok {
		return 0, false
	}
	endHour, ok := hourComponent(end)
	if !ok {
		return 0, false
	}
	hours := endHour - startHour
	if hours < 0 {
		return 0, false
	}
	return hours, true
}

func hourComponent(value string) (int, bool) {
	raw, _, found := strings.Cut(strings.TrimSpace(value), ":")
	if !found {
		return 0, false
	}
	hour, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	return hour, true
}
