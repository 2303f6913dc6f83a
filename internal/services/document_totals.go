package services

import "github.com/terraincognita07/fleemy/internal/models"

// ComputeDocumentTotals recomputes every line total from quantity and
// unit price and derives subtotal, tax and grand total. Client-supplied
// totals are discarded.
func ComputeDocumentTotals(items []models.LineItem, taxRate float64) ([]models.LineItem, float64, float64, float64) {
	recomputed := make([]models.LineItem, 0, len(items))
	subtotal := 0.0
	for _, item := range items {
		item.Total = item.Quantity * item.UnitPrice
		subtotal += item.Total
		recomputed = append(recomputed, item)
	}

	if taxRate < 0 {
		taxRate = 0
	}
	taxAmount := subtotal * taxRate / 100
	return recomputed, subtotal, taxAmount, subtotal + taxAmount
}
