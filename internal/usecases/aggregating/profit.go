package aggregating

import (
	"github.com/chasedndt/sneaker-inventory-api/internal/domain"
	"github.com/sirupsen/logrus"
)

// ProfitResolution é o resultado do resolvedor para uma venda. Unreconciled
// marca vendas cujo item de origem não foi encontrado.
type ProfitResolution struct {
	Profit       float64
	Unreconciled bool
}

// ProfitResolver calcula o lucro realizado de uma venda individual.
// Vendas e itens vêm de chamadas independentes do backend e podem estar
// transitoriamente inconsistentes (item apagado depois da venda, por
// exemplo); uma referência pendurada nunca é fatal.
type ProfitResolver struct{}

func NewProfitResolver() *ProfitResolver {
	return &ProfitResolver{}
}

// IndexItems monta o índice id → item usado nas buscas do resolvedor
func IndexItems(items []*domain.InventoryItem) map[string]*domain.InventoryItem {
	index := make(map[string]*domain.InventoryItem, len(items))
	for _, item := range items {
		index[item.ID] = item
	}
	return index
}

// ResolveProfit calcula o lucro de uma venda:
//  1. Item encontrado: salePrice − purchasePrice − salesTax − platformFees −
//     shippingPrice do item.
//  2. Item não encontrado: usa o profit pré-calculado da venda, se houver;
//     senão salePrice − salesTax − platformFees (custo de aquisição
//     desconhecido, tratado como zero) e a venda é marcada como não
//     reconciliada para diagnóstico.
func (r *ProfitResolver) ResolveProfit(sale *domain.SaleRecord, index map[string]*domain.InventoryItem) ProfitResolution {
	if item, ok := index[sale.ItemID]; ok {
		return ProfitResolution{
			Profit: sale.SalePrice - item.PurchasePrice - sale.SalesTax - sale.PlatformFees - item.ShippingPrice,
		}
	}

	if sale.Profit != nil {
		logrus.WithFields(logrus.Fields{
			"sale_id": sale.ID,
			"item_id": sale.ItemID,
		}).Warn("profit: sale references missing item, using precomputed profit")

		return ProfitResolution{
			Profit:       *sale.Profit,
			Unreconciled: true,
		}
	}

	logrus.WithFields(logrus.Fields{
		"sale_id": sale.ID,
		"item_id": sale.ItemID,
	}).Warn("profit: sale references missing item, cost of goods treated as zero")

	return ProfitResolution{
		Profit:       sale.SalePrice - sale.SalesTax - sale.PlatformFees,
		Unreconciled: true,
	}
}
