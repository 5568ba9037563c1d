package domain

import "time"

// InventoryMetrics agrega o estoque ativo (status != sold) do período
type InventoryMetrics struct {
	ActiveItemCount    int     `json:"active_item_count"`
	TotalInventoryCost float64 `json:"total_inventory_cost"`
	TotalMarketValue   float64 `json:"total_market_value"`
	PotentialProfit    float64 `json:"potential_profit"`
}

// SalesMetrics agrega apenas as vendas concluídas do período
type SalesMetrics struct {
	CompletedSalesCount int     `json:"completed_sales_count"`
	TotalSalesRevenue   float64 `json:"total_sales_revenue"`
	CostOfGoodsSold     float64 `json:"cost_of_goods_sold"`
	TotalPlatformFees   float64 `json:"total_platform_fees"`
	TotalSalesTax       float64 `json:"total_sales_tax"`
	GrossProfit         float64 `json:"gross_profit"`
}

// ExpenseMetrics agrega as despesas do período. ExpenseChange compara o total
// filtrado com o período imediatamente anterior de mesma duração, em
// porcentagem; sem período definido (ou período anterior zerado) o valor é 0.
type ExpenseMetrics struct {
	TotalExpenses float64            `json:"total_expenses"`
	ExpenseByType map[string]float64 `json:"expense_by_type"`
	ExpenseChange float64            `json:"expense_change"`
}

// ProfitMetrics reúne os indicadores derivados. Os percentuais chegam
// arredondados com uma casa decimal; a acumulação interna não arredonda.
type ProfitMetrics struct {
	NetProfitSold float64 `json:"net_profit_sold"`
	ROISold       float64 `json:"roi_sold"`
	ROIInventory  float64 `json:"roi_inventory"`
	OverallROI    float64 `json:"overall_roi"`
}

// MetricsSnapshot é a saída do agregador. Imutável depois de produzido: cada
// chamada de agregação computa um snapshot novo, sempre na moeda de exibição
// única indicada em DisplayCurrency.
type MetricsSnapshot struct {
	ID              string            `json:"id"`
	DisplayCurrency string            `json:"display_currency"`
	GeneratedAt     time.Time         `json:"generated_at"`
	Filters         *MetricsFilters   `json:"filters,omitempty"`
	Inventory       *InventoryMetrics `json:"inventory_metrics"`
	Sales           *SalesMetrics     `json:"sales_metrics"`
	Expenses        *ExpenseMetrics   `json:"expense_metrics"`
	Profit          *ProfitMetrics    `json:"profit_metrics"`

	// IDs de vendas cujo item de origem não foi encontrado (diagnóstico)
	UnreconciledSales []string `json:"unreconciled_sales,omitempty"`
}
