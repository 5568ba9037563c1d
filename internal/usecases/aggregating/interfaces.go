package aggregating

import (
	"context"

	"github.com/chasedndt/sneaker-inventory-api/internal/domain"
)

// Aggregator define a interface do motor de métricas financeiras
type Aggregator interface {
	// Aggregate filtra as coleções pelo período, converte tudo para a moeda
	// de exibição e computa um snapshot novo de métricas
	Aggregate(
		ctx context.Context,
		items []*domain.InventoryItem,
		sales []*domain.SaleRecord,
		expenses []*domain.ExpenseRecord,
		filters *domain.MetricsFilters,
		displayCurrency string,
	) (*domain.MetricsSnapshot, error)
}
