package services

import (
	"fmt"
	"math"
	"strings"
	"unicode"
	"unicode/utf8"
)

func round2(f float64) float64 {
	return math.Round(f*100) / 100
}

// formatRating renders an optional rating as "4.35/5".
func formatRating(r *float64) string {
	if r == nil {
		return "unrated"
	}
	return fmt.Sprintf("%.2f/5", *r)
}

func formatPct(p float64) string {
	return fmt.Sprintf("%.1f%%", p)
}

// capitalize upper-cases the first letter of a feature name.
func capitalize(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return s
	}
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(r)) + s[size:]
}

func truncate(s string, max int) string {
	if utf8.RuneCountInString(s) <= max {
		return s
	}
	runes := []rune(s)
	return string(runes[:max-3]) + "..."
}
