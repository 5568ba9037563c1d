package domain

import "time"

// MetricsFilters delimita o período considerado na agregação. Ambas as datas
// são opcionais; ausência de período significa "todo o histórico". A ordem
// (start <= end) é responsabilidade de quem chama.
type MetricsFilters struct {
	StartDate *time.Time `json:"start_date,omitempty"`
	EndDate   *time.Time `json:"end_date,omitempty"`
}

// HasRange indica se existe um período completo para filtrar
func (f *MetricsFilters) HasRange() bool {
	return f != nil && f.StartDate != nil && f.EndDate != nil
}

// Contains verifica se o instante está dentro do período, inclusivo nas duas
// pontas. As bordas são normalizadas para início e fim do dia, de modo que um
// registro datado exatamente em StartDate ou EndDate sempre é incluído.
func (f *MetricsFilters) Contains(t time.Time) bool {
	if !f.HasRange() {
		return true
	}

	start := startOfDay(*f.StartDate)
	end := endOfDay(*f.EndDate)

	return !t.Before(start) && !t.After(end)
}

// PreviousPeriod retorna o período imediatamente anterior de mesma duração:
// previousStart = start − (end − start) e previousEnd = start − 1 dia.
// Retorna nil quando não há período definido.
func (f *MetricsFilters) PreviousPeriod() *MetricsFilters {
	if !f.HasRange() {
		return nil
	}

	start := startOfDay(*f.StartDate)
	end := startOfDay(*f.EndDate)

	length := end.Sub(start)
	previousStart := start.Add(-length)
	previousEnd := start.AddDate(0, 0, -1)

	return &MetricsFilters{
		StartDate: &previousStart,
		EndDate:   &previousEnd,
	}
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func endOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, 999999999, t.Location())
}
