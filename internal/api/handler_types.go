package api

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const (
	defaultAuthTokenTTL = 7 * 24 * time.Hour

	contextUserKey = "current_user"
)

type authClaims struct {
	UID string `json:"uid"`
	jwt.RegisteredClaims
}

type registerInput struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type profileUpdateInput struct {
	Name       *string  `json:"name"`
	HourlyRate *float64 `json:"hourly_rate"`
}

type eventPayload struct {
	Description string  `json:"description"`
	ClientID    string  `json:"client_id"`
	ClientName  string  `json:"client_name"`
	Day         string  `json:"day"`
	StartTime   string  `json:"start_time"`
	EndTime     string  `json:"end_time"`
	Status      string  `json:"status"`
	HourlyRate  float64 `json:"hourly_rate"`
	Year        int     `json:"year"`
	Week        int     `json:"week"`
}

type taskSlotPayload struct {
	Day   string `json:"day"`
	Start string `json:"start"`
	End   string `json:"end"`
}

type taskPayload struct {
	Name      string            `json:"name"`
	Price     float64           `json:"price"`
	Color     string            `json:"color"`
	Icon      string            `json:"icon"`
	TimeSlots []taskSlotPayload `json:"time_slots"`
	Year      int               `json:"year"`
	Week      int               `json:"week"`
}

type teamPayload struct {
	Name string `json:"name"`
}

type teamMemberPayload struct {
	UID string `json:"uid"`
}

type clientPayload struct {
	Name    string `json:"name"`
	Company string `json:"company"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
	Notes   string `json:"notes"`
}

type lineItemPayload struct {
	Description string  `json:"description"`
	Quantity    float64 `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
}

type quotePayload struct {
	ClientID   string            `json:"client_id"`
	ClientName string            `json:"client_name"`
	Title      string            `json:"title"`
	Items      []lineItemPayload `json:"items"`
	TaxRate    *float64          `json:"tax_rate"`
	ValidUntil *time.Time        `json:"valid_until"`
}

type invoicePayload struct {
	QuoteID    string            `json:"quote_id"`
	ClientID   string            `json:"client_id"`
	ClientName string            `json:"client_name"`
	Title      string            `json:"title"`
	Items      []lineItemPayload `json:"items"`
	TaxRate    *float64          `json:"tax_rate"`
	DueDate    *time.Time        `json:"due_date"`
}

type statusUpdateInput struct {
	Status string `json:"status"`
}

type todoPayload struct {
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Priority    string     `json:"priority"`
	DueDate     *time.Time `json:"due_date"`
}
