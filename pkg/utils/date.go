package utils

import "time"

// ParseDate converte uma data "2006-01-02" vinda de query string. String
// vazia retorna nil (sem limite de período).
func ParseDate(dateStr string) (*time.Time, error) {
	if dateStr == "" {
		return nil, nil
	}

	date, err := time.Parse(time.DateOnly, dateStr)
	if err != nil {
		return nil, err
	}

	return &date, nil
}
