package domain

import "time"

type SaleStatus string

const (
	SaleStatusPending   SaleStatus = "pending"
	SaleStatusShipped   SaleStatus = "shipped"
	SaleStatusCompleted SaleStatus = "completed"
	SaleStatusRefunded  SaleStatus = "refunded"
)

// SaleRecord representa uma venda registrada no backend do dashboard.
// ItemID é uma referência ao item de origem e pode estar pendurada: vendas e
// itens vêm de chamadas independentes e podem estar transitoriamente
// inconsistentes.
type SaleRecord struct {
	ID            string     `json:"id"`
	ItemID        string     `json:"item_id"`
	SalePrice     float64    `json:"sale_price"`
	PlatformFees  float64    `json:"platform_fees"`
	SalesTax      float64    `json:"sales_tax"`
	ShippingPrice float64    `json:"shipping_price"`
	Currency      string     `json:"currency,omitempty"`
	Platform      string     `json:"platform,omitempty"`
	SaleDate      time.Time  `json:"sale_date"`
	Status        SaleStatus `json:"status"`

	// Profit pré-calculado pelo backend, usado apenas como fallback quando o
	// item de origem não é encontrado
	Profit *float64 `json:"profit,omitempty"`
}

// Completed indica se a venda conta para métricas realizadas
func (s *SaleRecord) Completed() bool {
	return s.Status == SaleStatusCompleted
}
