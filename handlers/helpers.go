package handlers

import (
	"fmt"
	"strconv"
	"strings"
)

// atoiOr converts s, falling back to def when empty or malformed.
func atoiOr(s string, def int) int {
	if s == "" {
		return def
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return n
}

func splitCSV(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

// monthKey zero-pads a 1-12 month for matching the "YYYY-MM-DD" columns.
func monthKey(month string) string {
	m := strings.TrimSpace(month)
	if len(m) == 1 {
		return "0" + m
	}
	return m
}

// yearMonthParams reads the year/month filters shared by the period
// views. Month is one-based; both fall back to defaults when absent.
func yearMonthParams(yearStr, monthStr string, defYear, defMonth int) (int, int, error) {
	year := atoiOr(yearStr, defYear)
	month := atoiOr(monthStr, defMonth)
	if month < 1 || month > 12 {
		return 0, 0, fmt.Errorf("month out of range: %d", month)
	}
	return year, month, nil
}
