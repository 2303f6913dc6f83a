package api

import "strconv"

func formatMoney(amount float64) string {
	return strconv.FormatFloat(amount, 'f', 2, 64) + " €"
}
