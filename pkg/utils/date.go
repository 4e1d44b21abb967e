package utils

import "time"

// DayLayout é o formato de data usado nas chaves de movimento de caixa.
const DayLayout = "2006-01-02"

func ParseDate(dateStr string) (*time.Time, error) {
	var date time.Time

	if dateStr != "" {
		incomingDate, err := time.Parse(DayLayout, dateStr)
		if err != nil {
			return nil, err
		}

		date = incomingDate
	}

	return &date, nil
}

// Today retorna a data de hoje no formato de chave de movimento.
func Today() string {
	return time.Now().Format(DayLayout)
}
