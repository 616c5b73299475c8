package utils

import "time"

// MonthLayout é o formato das chaves de mês (YYYY-MM)
const MonthLayout = "2006-01"

func ParseMonth(month string) (time.Time, error) {
	return time.Parse(MonthLayout, month)
}

// LastMonths devolve as chaves dos últimos n meses terminando em ref, em ordem crescente
func LastMonths(ref time.Time, n int) []string {
	months := make([]string, 0, n)
	first := time.Date(ref.Year(), ref.Month(), 1, 0, 0, 0, 0, time.UTC)
	for i := n - 1; i >= 0; i-- {
		months = append(months, first.AddDate(0, -i, 0).Format(MonthLayout))
	}
	return months
}
