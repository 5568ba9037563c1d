package domain

import "time"

// PivotCurrency é a moeda pela qual todas as conversões são roteadas.
// Todas as taxas do snapshot são relativas a ela (taxa do pivô = 1.0).
const PivotCurrency = "USD"

// ExchangeRateSnapshot representa uma tabela de câmbio vigente: código de
// moeda → taxa relativa ao pivô, mais o instante em que foi obtida.
// FetchedAt zerado indica a tabela estática de fallback, que nunca expira e
// não impede novas tentativas de busca.
type ExchangeRateSnapshot struct {
	Rates     map[string]float64 `json:"rates"`
	FetchedAt time.Time          `json:"fetched_at"`
}

// Rate retorna a taxa da moeda e se ela existe na tabela
func (s *ExchangeRateSnapshot) Rate(code string) (float64, bool) {
	if s == nil || s.Rates == nil {
		return 0, false
	}
	rate, ok := s.Rates[code]
	return rate, ok
}

// Expired indica se o snapshot já passou do TTL no instante informado.
// Um snapshot sem timestamp (fallback estático) é sempre considerado expirado
// para fins de nova busca.
func (s *ExchangeRateSnapshot) Expired(ttl time.Duration, now time.Time) bool {
	if s == nil || s.FetchedAt.IsZero() {
		return true
	}
	return now.Sub(s.FetchedAt) > ttl
}
