package utils

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
)

func ParseInt64(s string) (int64, error) {
	return strconv.ParseInt(strings.TrimSpace(s), 10, 64)
}

// ParseYearWeek validates a (year, week) path pair.
func ParseYearWeek(yearStr, weekStr string) (int, int, bool) {
	year, err := strconv.Atoi(strings.TrimSpace(yearStr))
	if err != nil || year <= 0 {
		return 0, 0, false
	}
	week, err := strconv.Atoi(strings.TrimSpace(weekStr))
	if err != nil || week < 1 || week > 53 {
		return 0, 0, false
	}
	return year, week, true
}

func WriteJSONError(w http.ResponseWriter, message string, code int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}

// NormalizeEmail lowercases and trims an address before lookups.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
