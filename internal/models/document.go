package models

import "time"

const (
	QuoteStatusDraft    = "draft"
	QuoteStatusSent     = "sent"
	QuoteStatusAccepted = "accepted"
	QuoteStatusRejected = "rejected"

	InvoiceStatusDraft   = "draft"
	InvoiceStatusSent    = "sent"
	InvoiceStatusPaid    = "paid"
	InvoiceStatusOverdue = "overdue"
)

func IsQuoteStatus(status string) bool {
	switch status {
	case QuoteStatusDraft, QuoteStatusSent, QuoteStatusAccepted, QuoteStatusRejected:
		return true
	}
	return false
}

func IsInvoiceStatus(status string) bool {
	switch status {
	case InvoiceStatusDraft, InvoiceStatusSent, InvoiceStatusPaid, InvoiceStatusOverdue:
		return true
	}
	return false
}

// LineItem is one billable line on a quote or invoice. Total is always
// recomputed server-side as Quantity * UnitPrice.
type LineItem struct {
	Description string  `json:"description"`
	Quantity    float64 `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
	Total       float64 `json:"total"`
}

type Quote struct {
	ID          uint       `gorm:"primaryKey" json:"-"`
	QuoteID     string     `gorm:"uniqueIndex;not null" json:"id"`
	UID         string     `gorm:"index;not null" json:"uid"`
	QuoteNumber string     `gorm:"uniqueIndex;not null" json:"quote_number"`
	ClientID    string     `json:"client_id,omitempty"`
	ClientName  string     `json:"client_name,omitempty"`
	Title       string     `gorm:"not null" json:"title"`
	Items       []LineItem `gorm:"serializer:json" json:"items"`
	TaxRate     float64    `gorm:"not null;default:20" json:"tax_rate"`
	Subtotal    float64    `json:"subtotal"`
	TaxAmount   float64    `json:"tax_amount"`
	Total       float64    `json:"total"`
	Status      string     `gorm:"not null;default:draft" json:"status"`
	ValidUntil  *time.Time `json:"valid_until,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"-"`
}

type Invoice struct {
	ID            uint       `gorm:"primaryKey" json:"-"`
	InvoiceID     string     `gorm:"uniqueIndex;not null" json:"id"`
	UID           string     `gorm:"index;not null" json:"uid"`
	InvoiceNumber string     `gorm:"uniqueIndex;not null" json:"invoice_number"`
	QuoteID       string     `json:"quote_id,omitempty"`
	ClientID      string     `json:"client_id,omitempty"`
	ClientName    string     `json:"client_name,omitempty"`
	Title         string     `gorm:"not null" json:"title"`
	Items         []LineItem `gorm:"serializer:json" json:"items"`
	TaxRate       float64    `gorm:"not null;default:20" json:"tax_rate"`
	Subtotal      float64    `json:"subtotal"`
	TaxAmount     float64    `json:"tax_amount"`
	Total         float64    `json:"total"`
	Status        string     `gorm:"not null;default:draft" json:"status"`
	DueDate       *time.Time `json:"due_date,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"-"`
}
