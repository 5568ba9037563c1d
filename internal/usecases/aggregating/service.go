package aggregating

import (
	"context"
	"time"

	"github.com/chasedndt/sneaker-inventory-api/internal/config"
	"github.com/chasedndt/sneaker-inventory-api/internal/domain"
	"github.com/chasedndt/sneaker-inventory-api/internal/usecases/converting"
	"github.com/chasedndt/sneaker-inventory-api/pkg/utils"
	"github.com/sirupsen/logrus"
)

// Service implementa o Aggregator. Cada chamada produz um snapshot novo;
// não há estado incremental.
type Service struct {
	cfg       *config.Config
	converter converting.Converter
	resolver  *ProfitResolver
	now       func() time.Time
}

// NewService cria uma nova instância do agregador de métricas
func NewService(cfg *config.Config, converter converting.Converter) *Service {
	return &Service{
		cfg:       cfg,
		converter: converter,
		resolver:  NewProfitResolver(),
		now:       time.Now,
	}
}

// WithClock substitui o relógio do serviço (apenas testes)
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

// Aggregate computa o snapshot de métricas do período: filtra cada coleção
// pelas datas, converte todos os valores monetários para a moeda de
// exibição e deriva os agregados de estoque, vendas, despesas e lucro.
func (s *Service) Aggregate(
	ctx context.Context,
	items []*domain.InventoryItem,
	sales []*domain.SaleRecord,
	expenses []*domain.ExpenseRecord,
	filters *domain.MetricsFilters,
	displayCurrency string,
) (*domain.MetricsSnapshot, error) {
	if displayCurrency == "" {
		displayCurrency = s.cfg.Display.Currency
	}
	displayCurrency = s.converter.Normalize(displayCurrency)

	// Filtrar pelo período e converter tudo para a moeda de exibição antes
	// de qualquer soma: somar valores brutos de moedas distintas nunca é
	// permitido
	filteredItems := s.filterItems(ctx, items, filters, displayCurrency)
	filteredSales := s.filterSales(ctx, sales, filters, displayCurrency)
	filteredExpenses := s.filterExpenses(ctx, expenses, filters, displayCurrency)

	inventory := s.inventoryMetrics(filteredItems)

	// O índice de itens usa a coleção completa (convertida), não a filtrada:
	// uma venda dentro do período pode referenciar um item comprado fora dele
	index := IndexItems(s.convertItems(ctx, items, displayCurrency))

	salesMetrics, profitFromSales, unreconciled := s.salesMetrics(filteredSales, index)
	expenseMetrics := s.expenseMetrics(ctx, filteredExpenses, expenses, filters, displayCurrency)
	profit := s.profitMetrics(inventory, salesMetrics, expenseMetrics, profitFromSales)

	id, err := utils.GenerateID()
	if err != nil {
		logrus.WithError(err).Error("metrics: failed to generate snapshot ID")
		return nil, err
	}

	snapshot := &domain.MetricsSnapshot{
		ID:                id,
		DisplayCurrency:   displayCurrency,
		GeneratedAt:       s.now(),
		Filters:           filters,
		Inventory:         inventory,
		Sales:             salesMetrics,
		Expenses:          expenseMetrics,
		Profit:            profit,
		UnreconciledSales: unreconciled,
	}

	logrus.WithFields(logrus.Fields{
		"snapshot_id":        snapshot.ID,
		"display_currency":   displayCurrency,
		"item_count":         len(filteredItems),
		"sale_count":         len(filteredSales),
		"expense_count":      len(filteredExpenses),
		"unreconciled_sales": len(unreconciled),
	}).Info("metrics: snapshot computed")

	return snapshot, nil
}

// filterItems retém itens comprados dentro do período, já convertidos
func (s *Service) filterItems(ctx context.Context, items []*domain.InventoryItem, filters *domain.MetricsFilters, display string) []*domain.InventoryItem {
	filtered := make([]*domain.InventoryItem, 0, len(items))
	for _, item := range items {
		if filters.Contains(item.PurchaseDate) {
			filtered = append(filtered, s.convertItem(ctx, item, display))
		}
	}
	return filtered
}

func (s *Service) filterSales(ctx context.Context, sales []*domain.SaleRecord, filters *domain.MetricsFilters, display string) []*domain.SaleRecord {
	filtered := make([]*domain.SaleRecord, 0, len(sales))
	for _, sale := range sales {
		if filters.Contains(sale.SaleDate) {
			filtered = append(filtered, s.convertSale(ctx, sale, display))
		}
	}
	return filtered
}

func (s *Service) filterExpenses(ctx context.Context, expenses []*domain.ExpenseRecord, filters *domain.MetricsFilters, display string) []*domain.ExpenseRecord {
	filtered := make([]*domain.ExpenseRecord, 0, len(expenses))
	for _, expense := range expenses {
		if filters.Contains(expense.ExpenseDate) {
			filtered = append(filtered, s.convertExpense(ctx, expense, display))
		}
	}
	return filtered
}

func (s *Service) convertItems(ctx context.Context, items []*domain.InventoryItem, display string) []*domain.InventoryItem {
	converted := make([]*domain.InventoryItem, 0, len(items))
	for _, item := range items {
		converted = append(converted, s.convertItem(ctx, item, display))
	}
	return converted
}

// convertItem retorna uma cópia do item com os valores monetários na moeda
// de exibição. Moeda ausente no registro é tratada como a própria moeda de
// exibição (nenhuma conversão aplicada).
func (s *Service) convertItem(ctx context.Context, item *domain.InventoryItem, display string) *domain.InventoryItem {
	copied := *item
	copied.PurchasePrice = s.convertAmount(ctx, item.PurchasePrice, item.Currency, display)
	copied.ShippingPrice = s.convertAmount(ctx, item.ShippingPrice, item.Currency, display)

	if item.MarketPrice != nil {
		marketPrice := s.convertAmount(ctx, *item.MarketPrice, item.Currency, display)
		copied.MarketPrice = &marketPrice
	}

	copied.Currency = display
	return &copied
}

func (s *Service) convertSale(ctx context.Context, sale *domain.SaleRecord, display string) *domain.SaleRecord {
	copied := *sale
	copied.SalePrice = s.convertAmount(ctx, sale.SalePrice, sale.Currency, display)
	copied.PlatformFees = s.convertAmount(ctx, sale.PlatformFees, sale.Currency, display)
	copied.SalesTax = s.convertAmount(ctx, sale.SalesTax, sale.Currency, display)
	copied.ShippingPrice = s.convertAmount(ctx, sale.ShippingPrice, sale.Currency, display)

	if sale.Profit != nil {
		profit := s.convertAmount(ctx, *sale.Profit, sale.Currency, display)
		copied.Profit = &profit
	}

	copied.Currency = display
	return &copied
}

func (s *Service) convertExpense(ctx context.Context, expense *domain.ExpenseRecord, display string) *domain.ExpenseRecord {
	copied := *expense
	copied.Amount = s.convertAmount(ctx, expense.Amount, expense.Currency, display)
	copied.Currency = display
	return &copied
}

func (s *Service) convertAmount(ctx context.Context, amount float64, from, to string) float64 {
	if from == "" {
		// Registro sem moeda explícita: assume a moeda de exibição
		return utils.SanitizeAmount(amount)
	}
	return s.converter.Convert(ctx, amount, from, to)
}

// inventoryMetrics agrega o estoque ativo (status != sold)
func (s *Service) inventoryMetrics(items []*domain.InventoryItem) *domain.InventoryMetrics {
	metrics := &domain.InventoryMetrics{}

	for _, item := range items {
		if !item.Active() {
			continue
		}

		metrics.ActiveItemCount++
		metrics.TotalInventoryCost += item.PurchasePrice
		metrics.TotalMarketValue += item.EstimatedMarketValue()
	}

	metrics.PotentialProfit = metrics.TotalMarketValue - metrics.TotalInventoryCost

	metrics.TotalInventoryCost = utils.RoundWithTwoDecimalPlace(metrics.TotalInventoryCost)
	metrics.TotalMarketValue = utils.RoundWithTwoDecimalPlace(metrics.TotalMarketValue)
	metrics.PotentialProfit = utils.RoundWithTwoDecimalPlace(metrics.PotentialProfit)

	return metrics
}

// salesMetrics agrega apenas vendas concluídas e retorna também o lucro
// realizado acumulado (sem arredondamento) e os IDs não reconciliados
func (s *Service) salesMetrics(sales []*domain.SaleRecord, index map[string]*domain.InventoryItem) (*domain.SalesMetrics, float64, []string) {
	metrics := &domain.SalesMetrics{}

	var profitFromSales float64
	var unreconciled []string

	for _, sale := range sales {
		if !sale.Completed() {
			continue
		}

		metrics.CompletedSalesCount++
		metrics.TotalSalesRevenue += sale.SalePrice
		metrics.TotalPlatformFees += sale.PlatformFees
		metrics.TotalSalesTax += sale.SalesTax

		if item, ok := index[sale.ItemID]; ok {
			metrics.CostOfGoodsSold += item.PurchasePrice
		}

		resolution := s.resolver.ResolveProfit(sale, index)
		profitFromSales += resolution.Profit

		if resolution.Unreconciled {
			unreconciled = append(unreconciled, sale.ID)
		}
	}

	metrics.GrossProfit = metrics.TotalSalesRevenue - metrics.CostOfGoodsSold -
		metrics.TotalPlatformFees - metrics.TotalSalesTax

	metrics.TotalSalesRevenue = utils.RoundWithTwoDecimalPlace(metrics.TotalSalesRevenue)
	metrics.CostOfGoodsSold = utils.RoundWithTwoDecimalPlace(metrics.CostOfGoodsSold)
	metrics.TotalPlatformFees = utils.RoundWithTwoDecimalPlace(metrics.TotalPlatformFees)
	metrics.TotalSalesTax = utils.RoundWithTwoDecimalPlace(metrics.TotalSalesTax)
	metrics.GrossProfit = utils.RoundWithTwoDecimalPlace(metrics.GrossProfit)

	return metrics, profitFromSales, unreconciled
}

// expenseMetrics agrega despesas do período e a variação contra o período
// imediatamente anterior de mesma duração
func (s *Service) expenseMetrics(
	ctx context.Context,
	filtered []*domain.ExpenseRecord,
	all []*domain.ExpenseRecord,
	filters *domain.MetricsFilters,
	display string,
) *domain.ExpenseMetrics {
	metrics := &domain.ExpenseMetrics{
		ExpenseByType: make(map[string]float64),
	}

	for _, expense := range filtered {
		metrics.TotalExpenses += expense.Amount
		metrics.ExpenseByType[expense.ExpenseType] += expense.Amount
	}

	// Sem período definido não existe "período anterior"; variação fica 0.
	// Variação também é 0 quando o período anterior não tem despesas (nunca
	// divisão por zero).
	if previous := filters.PreviousPeriod(); previous != nil {
		var previousTotal float64
		for _, expense := range all {
			if previous.Contains(expense.ExpenseDate) {
				previousTotal += s.convertExpense(ctx, expense, display).Amount
			}
		}

		change := utils.SafeRatio(metrics.TotalExpenses-previousTotal, previousTotal) * 100
		metrics.ExpenseChange = utils.RoundWithOneDecimalPlace(change)
	}

	for expenseType, amount := range metrics.ExpenseByType {
		metrics.ExpenseByType[expenseType] = utils.RoundWithTwoDecimalPlace(amount)
	}
	metrics.TotalExpenses = utils.RoundWithTwoDecimalPlace(metrics.TotalExpenses)

	return metrics
}

// profitMetrics deriva os indicadores finais a partir dos agregados.
// A acumulação usa os valores sem arredondamento; só o resultado final é
// arredondado para exibição.
func (s *Service) profitMetrics(
	inventory *domain.InventoryMetrics,
	sales *domain.SalesMetrics,
	expenses *domain.ExpenseMetrics,
	profitFromSales float64,
) *domain.ProfitMetrics {
	netProfitSold := profitFromSales - expenses.TotalExpenses

	roiSold := utils.SafeRatio(netProfitSold, sales.CostOfGoodsSold) * 100
	roiInventory := utils.SafeRatio(inventory.PotentialProfit, inventory.TotalInventoryCost) * 100

	// ROI geral: lucro realizado + potencial sobre o gasto total (estoque
	// ativo + custo dos itens vendidos)
	totalSpend := inventory.TotalInventoryCost + sales.CostOfGoodsSold
	overallROI := utils.SafeRatio(netProfitSold+inventory.PotentialProfit, totalSpend) * 100

	return &domain.ProfitMetrics{
		NetProfitSold: utils.RoundWithTwoDecimalPlace(netProfitSold),
		ROISold:       utils.RoundWithOneDecimalPlace(roiSold),
		ROIInventory:  utils.RoundWithOneDecimalPlace(roiInventory),
		OverallROI:    utils.RoundWithOneDecimalPlace(overallROI),
	}
}
