package aggregating

import (
	"context"
	"testing"
	"time"

	"github.com/chasedndt/sneaker-inventory-api/infrastructure/integrator/openrates/mocks"
	"github.com/chasedndt/sneaker-inventory-api/internal/config"
	"github.com/chasedndt/sneaker-inventory-api/internal/domain"
	"github.com/chasedndt/sneaker-inventory-api/internal/usecases/converting"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func testConfig() *config.Config {
	return &config.Config{
		RateProvider: config.RateProvider{
			CacheTTLHours: 24,
		},
		Display: config.Display{
			Currency:   "USD",
			DateFormat: "MM/DD/YYYY",
		},
	}
}

// testAggregator monta o agregador com um conversor alimentado por taxas
// fixas (USD 1.0, GBP 0.8, EUR 0.9)
func testAggregator(t *testing.T) *Service {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	now := time.Date(2024, 2, 15, 12, 0, 0, 0, time.UTC)

	mockIntegrator := mocks.NewMockRatesIntegrator(ctrl)
	mockIntegrator.EXPECT().
		GetLatestSnapshot(gomock.Any()).
		Return(&domain.ExchangeRateSnapshot{
			Rates: map[string]float64{
				"USD": 1.0,
				"GBP": 0.8,
				"EUR": 0.9,
			},
			FetchedAt: now,
		}, nil).
		AnyTimes()

	cfg := testConfig()
	converter := converting.NewService(cfg, mockIntegrator, nil).
		WithClock(func() time.Time { return now })

	return NewService(cfg, converter).
		WithClock(func() time.Time { return now })
}

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func datePtr(year int, month time.Month, day int) *time.Time {
	d := date(year, month, day)
	return &d
}

func TestService_Aggregate_SingleCurrency(t *testing.T) {
	service := testAggregator(t)

	items := []*domain.InventoryItem{
		{
			ID:            "ITEM001",
			PurchasePrice: 100.0,
			ShippingPrice: 10.0,
			MarketPrice:   floatPtr(180.0),
			PurchaseDate:  date(2024, 1, 10),
			Status:        domain.ItemStatusListed,
		},
		{
			// Sem preço de mercado: vale a estimativa 50 × 1.2 = 60
			ID:            "ITEM002",
			PurchasePrice: 50.0,
			PurchaseDate:  date(2024, 1, 12),
			Status:        domain.ItemStatusUnlisted,
		},
		{
			ID:            "ITEM003",
			PurchasePrice: 80.0,
			PurchaseDate:  date(2024, 1, 5),
			Status:        domain.ItemStatusSold,
		},
	}

	sales := []*domain.SaleRecord{
		{
			ID:           "SALE001",
			ItemID:       "ITEM003",
			SalePrice:    200.0,
			PlatformFees: 15.0,
			SalesTax:     5.0,
			SaleDate:     date(2024, 1, 20),
			Status:       domain.SaleStatusCompleted,
		},
		{
			// Venda pendente não conta para métricas realizadas
			ID:        "SALE002",
			ItemID:    "ITEM001",
			SalePrice: 300.0,
			SaleDate:  date(2024, 1, 22),
			Status:    domain.SaleStatusPending,
		},
	}

	expenses := []*domain.ExpenseRecord{
		{
			ID:          "EXP001",
			ExpenseType: "storage",
			Amount:      50.0,
			ExpenseDate: date(2024, 1, 15),
		},
	}

	snapshot, err := service.Aggregate(context.Background(), items, sales, expenses, nil, "USD")
	assert.NoError(t, err)
	assert.NotEmpty(t, snapshot.ID)
	assert.Equal(t, "USD", snapshot.DisplayCurrency)

	// Estoque: ITEM001 e ITEM002 ativos, ITEM003 vendido fica fora
	assert.Equal(t, 2, snapshot.Inventory.ActiveItemCount)
	assert.Equal(t, 150.0, snapshot.Inventory.TotalInventoryCost)
	assert.Equal(t, 240.0, snapshot.Inventory.TotalMarketValue)
	assert.Equal(t, 90.0, snapshot.Inventory.PotentialProfit)

	// Vendas: apenas SALE001
	assert.Equal(t, 1, snapshot.Sales.CompletedSalesCount)
	assert.Equal(t, 200.0, snapshot.Sales.TotalSalesRevenue)
	assert.Equal(t, 80.0, snapshot.Sales.CostOfGoodsSold)
	assert.Equal(t, 15.0, snapshot.Sales.TotalPlatformFees)
	assert.Equal(t, 5.0, snapshot.Sales.TotalSalesTax)
	assert.Equal(t, 100.0, snapshot.Sales.GrossProfit)

	// Despesas
	assert.Equal(t, 50.0, snapshot.Expenses.TotalExpenses)
	assert.Equal(t, 50.0, snapshot.Expenses.ExpenseByType["storage"])
	assert.Equal(t, 0.0, snapshot.Expenses.ExpenseChange)

	// Lucro: resolvedor dá 200 − 80 − 5 − 15 = 100; líquido 100 − 50 = 50
	assert.Equal(t, 50.0, snapshot.Profit.NetProfitSold)
	assert.Equal(t, 62.5, snapshot.Profit.ROISold)
	assert.Equal(t, 60.0, snapshot.Profit.ROIInventory)
	// (50 + 90) / (150 + 80) × 100 = 60.869... → 60.9
	assert.Equal(t, 60.9, snapshot.Profit.OverallROI)

	assert.Empty(t, snapshot.UnreconciledSales)
}

func TestService_Aggregate_MixedCurrencies(t *testing.T) {
	service := testAggregator(t)

	// Item e venda em GBP, exibição em USD (taxa 0.8)
	items := []*domain.InventoryItem{
		{
			ID:            "ITEM001",
			PurchasePrice: 80.0, // → 100 USD
			Currency:      "GBP",
			PurchaseDate:  date(2024, 1, 5),
			Status:        domain.ItemStatusSold,
		},
	}

	sales := []*domain.SaleRecord{
		{
			ID:           "SALE001",
			ItemID:       "ITEM001",
			SalePrice:    160.0, // → 200 USD
			PlatformFees: 8.0,   // → 10 USD
			Currency:     "GBP",
			SaleDate:     date(2024, 1, 20),
			Status:       domain.SaleStatusCompleted,
		},
	}

	snapshot, err := service.Aggregate(context.Background(), items, sales, nil, nil, "USD")
	assert.NoError(t, err)

	assert.Equal(t, 200.0, snapshot.Sales.TotalSalesRevenue)
	assert.Equal(t, 100.0, snapshot.Sales.CostOfGoodsSold)
	assert.Equal(t, 10.0, snapshot.Sales.TotalPlatformFees)
	assert.Equal(t, 90.0, snapshot.Sales.GrossProfit)

	// 200 − 100 − 0 − 10 − 0 = 90; ROI = 90 / 100 × 100
	assert.Equal(t, 90.0, snapshot.Profit.NetProfitSold)
	assert.Equal(t, 90.0, snapshot.Profit.ROISold)
}

func TestService_Aggregate_DateBoundariesAreInclusive(t *testing.T) {
	service := testAggregator(t)

	filters := &domain.MetricsFilters{
		StartDate: datePtr(2024, 1, 1),
		EndDate:   datePtr(2024, 1, 31),
	}

	items := []*domain.InventoryItem{
		{ID: "ITEM001", PurchasePrice: 10.0, PurchaseDate: date(2024, 1, 1), Status: domain.ItemStatusListed},
		{ID: "ITEM002", PurchasePrice: 20.0, PurchaseDate: date(2024, 1, 31), Status: domain.ItemStatusListed},
		{ID: "ITEM003", PurchasePrice: 40.0, PurchaseDate: date(2024, 2, 1), Status: domain.ItemStatusListed},
		{ID: "ITEM004", PurchasePrice: 80.0, PurchaseDate: date(2023, 12, 31), Status: domain.ItemStatusListed},
	}

	snapshot, err := service.Aggregate(context.Background(), items, nil, nil, filters, "USD")
	assert.NoError(t, err)

	// Registros exatamente em StartDate e EndDate entram; fora do período não
	assert.Equal(t, 2, snapshot.Inventory.ActiveItemCount)
	assert.Equal(t, 30.0, snapshot.Inventory.TotalInventoryCost)
}

func TestService_Aggregate_EmptyCollections(t *testing.T) {
	service := testAggregator(t)

	snapshot, err := service.Aggregate(context.Background(), nil, nil, nil, nil, "USD")
	assert.NoError(t, err)

	// Nenhuma divisão por zero: tudo zera, nunca NaN
	assert.Equal(t, 0, snapshot.Inventory.ActiveItemCount)
	assert.Equal(t, 0.0, snapshot.Inventory.TotalInventoryCost)
	assert.Equal(t, 0.0, snapshot.Profit.NetProfitSold)
	assert.Equal(t, 0.0, snapshot.Profit.ROISold)
	assert.Equal(t, 0.0, snapshot.Profit.ROIInventory)
	assert.Equal(t, 0.0, snapshot.Profit.OverallROI)
}

func TestService_Aggregate_ExpenseChange(t *testing.T) {
	service := testAggregator(t)

	// Período: 16 a 31 de janeiro; período anterior: 1 a 15 de janeiro
	filters := &domain.MetricsFilters{
		StartDate: datePtr(2024, 1, 16),
		EndDate:   datePtr(2024, 1, 31),
	}

	expenses := []*domain.ExpenseRecord{
		{ID: "EXP001", ExpenseType: "storage", Amount: 150.0, ExpenseDate: date(2024, 1, 20)},
		{ID: "EXP002", ExpenseType: "storage", Amount: 100.0, ExpenseDate: date(2024, 1, 10)},
	}

	snapshot, err := service.Aggregate(context.Background(), nil, nil, expenses, filters, "USD")
	assert.NoError(t, err)

	assert.Equal(t, 150.0, snapshot.Expenses.TotalExpenses)
	// (150 − 100) / 100 × 100 = +50%
	assert.Equal(t, 50.0, snapshot.Expenses.ExpenseChange)
}

func TestService_Aggregate_UnreconciledSales(t *testing.T) {
	service := testAggregator(t)

	sales := []*domain.SaleRecord{
		{
			ID:        "SALE001",
			ItemID:    "ITEM_REMOVIDO",
			SalePrice: 100.0,
			Profit:    floatPtr(40.0),
			SaleDate:  date(2024, 1, 20),
			Status:    domain.SaleStatusCompleted,
		},
	}

	snapshot, err := service.Aggregate(context.Background(), nil, sales, nil, nil, "USD")
	assert.NoError(t, err)

	assert.Equal(t, []string{"SALE001"}, snapshot.UnreconciledSales)
	assert.Equal(t, 40.0, snapshot.Profit.NetProfitSold)
}
