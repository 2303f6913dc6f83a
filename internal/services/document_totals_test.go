package services

import (
	"math"
	"testing"

	"github.com/terraincognita07/fleemy/internal/models"
)

func TestComputeDocumentTotals(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name         string
		items        []models.LineItem
		taxRate      float64
		wantSubtotal float64
		wantTax      float64
		wantTotal    float64
	}{
		{
			name:    "two lines with default tax",
			taxRate: 20,
			items: []models.LineItem{
				{Description: "design", Quantity: 2, UnitPrice: 300},
				{Description: "integration", Quantity: 1.5, UnitPrice: 400},
			},
			wantSubtotal: 1200,
			wantTax:      240,
			wantTotal:    1440,
		},
		{
			name:         "empty items",
			taxRate:      20,
			items:        nil,
			wantSubtotal: 0,
			wantTax:      0,
			wantTotal:    0,
		},
		{
			name:    "negative tax clamped to zero",
			taxRate: -5,
			items: []models.LineItem{
				{Description: "audit", Quantity: 1, UnitPrice: 100},
			},
			wantSubtotal: 100,
			wantTax:      0,
			wantTotal:    100,
		},
	}

	for _, testCase := range cases {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			items, subtotal, taxAmount, total := ComputeDocumentTotals(testCase.items, testCase.taxRate)
			if subtotal != testCase.wantSubtotal {
				t.Fatalf("expected subtotal %v, got %v", testCase.wantSubtotal, subtotal)
			}
			if math.Abs(taxAmount-testCase.wantTax) > 1e-9 {
				t.Fatalf("expected tax %v, got %v", testCase.wantTax, taxAmount)
			}
			if math.Abs(total-testCase.wantTotal) > 1e-9 {
				t.Fatalf("expected total %v, got %v", testCase.wantTotal, total)
			}
			for _, item := range items {
				if item.Total != item.Quantity*item.UnitPrice {
					t.Fatalf("expected line total recomputed, got %+v", item)
				}
			}
		})
	}
}

func TestComputeDocumentTotalsOverridesClientSuppliedTotals(t *testing.T) {
	t.Parallel()

	items := []models.LineItem{
		{Description: "dev", Quantity: 3, UnitPrice: 100, Total: 999999},
	}

	recomputed, subtotal, _, _ := ComputeDocumentTotals(items, 0)
	if recomputed[0].Total != 300 {
		t.Fatalf("expected client total discarded, got %v", recomputed[0].Total)
	}
	if subtotal != 300 {
		t.Fatalf("expected subtotal 300, got %v", subtotal)
	}
}
