package domain

import "time"

type ItemStatus string

const (
	ItemStatusUnlisted ItemStatus = "unlisted"
	ItemStatusListed   ItemStatus = "listed"
	ItemStatusSold     ItemStatus = "sold"
)

// DefaultMarketMarkup é o fator aplicado sobre o preço de compra quando o
// item não possui preço de mercado informado. Regra única: qualquer lugar
// que precise do valor de mercado estimado deve passar por EstimatedMarketValue.
const DefaultMarketMarkup = 1.2

// InventoryItem representa um item de estoque recebido do backend do
// dashboard. O serviço trata esses registros como somente leitura.
type InventoryItem struct {
	ID            string     `json:"id"`
	Category      string     `json:"category"`
	Brand         string     `json:"brand,omitempty"`
	PurchasePrice float64    `json:"purchase_price"`
	ShippingPrice float64    `json:"shipping_price"`
	MarketPrice   *float64   `json:"market_price,omitempty"`
	Currency      string     `json:"currency,omitempty"`
	PurchaseDate  time.Time  `json:"purchase_date"`
	Status        ItemStatus `json:"status"`
}

// EstimatedMarketValue retorna o preço de mercado do item ou a estimativa
// padrão (preço de compra × DefaultMarketMarkup) quando ausente.
func (i *InventoryItem) EstimatedMarketValue() float64 {
	if i.MarketPrice != nil {
		return *i.MarketPrice
	}
	return i.PurchasePrice * DefaultMarketMarkup
}

// Active indica se o item ainda compõe o estoque ativo
func (i *InventoryItem) Active() bool {
	return i.Status != ItemStatusSold
}
