package utils

import (
	"strings"
	"time"
)

// ParseDate interpreta datas no formato YYYY-MM-DD; string vazia devolve a data zero
func ParseDate(dateStr string) (time.Time, error) {
	dateStr = strings.TrimSpace(dateStr)
	if dateStr == "" {
		return time.Time{}, nil
	}

	return time.Parse(time.DateOnly, dateStr)
}
