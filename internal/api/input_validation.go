package api

import "strings"

func sanitizeName(raw string) string {
	return strings.TrimSpace(raw)
}

func sanitizeText(raw string) string {
	return strings.TrimSpace(raw)
}
