package converting

import (
	"context"
	"testing"
	"time"

	"github.com/chasedndt/sneaker-inventory-api/infrastructure/integrator/openrates/mocks"
	repomocks "github.com/chasedndt/sneaker-inventory-api/infrastructure/repository/mocks"
	"github.com/chasedndt/sneaker-inventory-api/internal/config"
	"github.com/chasedndt/sneaker-inventory-api/internal/domain"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func testConfig() *config.Config {
	return &config.Config{
		RateProvider: config.RateProvider{
			URL:           "https://open.er-api.com/v6/latest/USD",
			CacheTTLHours: 24,
		},
		Display: config.Display{
			Currency:   "USD",
			DateFormat: "MM/DD/YYYY",
		},
	}
}

func testSnapshot(fetchedAt time.Time) *domain.ExchangeRateSnapshot {
	return &domain.ExchangeRateSnapshot{
		Rates: map[string]float64{
			"USD": 1.0,
			"GBP": 0.8,
			"EUR": 0.9,
			"JPY": 150.0,
		},
		FetchedAt: fetchedAt,
	}
}

func TestService_Normalize(t *testing.T) {
	service := &Service{cfg: testConfig(), now: time.Now}

	tests := []struct {
		name     string
		token    string
		expected string
	}{
		{name: "Código ISO em maiúsculas", token: "GBP", expected: "GBP"},
		{name: "Código ISO em minúsculas", token: "gbp", expected: "GBP"},
		{name: "Código com espaços ao redor", token: "  eur  ", expected: "EUR"},
		{name: "Símbolo de dólar resolve para USD", token: "$", expected: "USD"},
		{name: "Símbolo de libra", token: "£", expected: "GBP"},
		{name: "Símbolo de iene resolve para JPY", token: "¥", expected: "JPY"},
		{name: "Símbolo de coroa resolve para SEK", token: "kr", expected: "SEK"},
		{name: "Apelido em inglês", token: "pound", expected: "GBP"},
		{name: "Apelido com caixa mista", token: "Euros", expected: "EUR"},
		{name: "Token desconhecido degrada para USD", token: "zzz", expected: "USD"},
		{name: "String vazia degrada para USD", token: "", expected: "USD"},
		{name: "Só espaços degrada para USD", token: "   ", expected: "USD"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, service.Normalize(tt.token))
		})
	}
}

func TestService_Convert(t *testing.T) {
	now := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)

	service := &Service{
		cfg:    testConfig(),
		now:    func() time.Time { return now },
		cached: testSnapshot(now),
	}

	ctx := context.Background()

	t.Run("Conversão via pivô", func(t *testing.T) {
		// 100 GBP → USD: 100 / 0.8 = 125
		result := service.Convert(ctx, 100.0, "GBP", "USD")
		assert.InDelta(t, 125.0, result, 0.0001)

		// 100 USD → EUR: 100 * 0.9 = 90
		result = service.Convert(ctx, 100.0, "USD", "EUR")
		assert.InDelta(t, 90.0, result, 0.0001)
	})

	t.Run("Ida e volta preserva o valor", func(t *testing.T) {
		converted := service.Convert(ctx, 250.0, "USD", "GBP")
		back := service.Convert(ctx, converted, "GBP", "USD")
		assert.InDelta(t, 250.0, back, 0.0001)
	})

	t.Run("Mesma moeda é identidade", func(t *testing.T) {
		assert.Equal(t, 123.45, service.Convert(ctx, 123.45, "USD", "USD"))
		assert.Equal(t, 123.45, service.Convert(ctx, 123.45, "gbp", "GBP"))
	})

	t.Run("Valor zero retorna zero sem consultar taxas", func(t *testing.T) {
		assert.Equal(t, 0.0, service.Convert(ctx, 0.0, "GBP", "USD"))
	})

	t.Run("NaN é tratado como zero", func(t *testing.T) {
		nan := 0.0 / zero()
		assert.Equal(t, 0.0, service.Convert(ctx, nan, "GBP", "USD"))
	})

	t.Run("Taxa ausente degrada para identidade", func(t *testing.T) {
		// KES não está no snapshot de teste
		result := service.Convert(ctx, 500.0, "KES", "USD")
		assert.Equal(t, 500.0, result)
	})
}

// zero existe para impedir que o compilador rejeite a divisão 0/0 constante
func zero() float64 {
	return 0.0
}

func TestService_GetRates_CacheAndTTL(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockIntegrator := mocks.NewMockRatesIntegrator(ctrl)

	start := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)
	current := start

	service := &Service{
		cfg:        testConfig(),
		integrator: mockIntegrator,
		now:        func() time.Time { return current },
	}

	ctx := context.Background()

	// Primeira chamada: sem cache, busca no provedor
	mockIntegrator.EXPECT().
		GetLatestSnapshot(gomock.Any()).
		Return(testSnapshot(start), nil)

	snapshot := service.GetRates(ctx)
	assert.Equal(t, start, snapshot.FetchedAt)

	// Segunda chamada dentro do TTL: responde do cache, sem nova busca
	current = start.Add(12 * time.Hour)
	snapshot = service.GetRates(ctx)
	assert.Equal(t, start, snapshot.FetchedAt)

	// Depois do TTL: o snapshot expirou e o provedor é consultado de novo
	current = start.Add(25 * time.Hour)
	refreshed := testSnapshot(current)

	mockIntegrator.EXPECT().
		GetLatestSnapshot(gomock.Any()).
		Return(refreshed, nil)

	snapshot = service.GetRates(ctx)
	assert.Equal(t, current, snapshot.FetchedAt)
}

func TestService_GetRates_FallbackToStaticTable(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockIntegrator := mocks.NewMockRatesIntegrator(ctrl)

	service := &Service{
		cfg:        testConfig(),
		integrator: mockIntegrator,
		now:        time.Now,
	}

	ctx := context.Background()

	// Provedor fora do ar em todas as tentativas
	mockIntegrator.EXPECT().
		GetLatestSnapshot(gomock.Any()).
		Return(nil, errors.New("connection refused")).
		Times(2)

	snapshot := service.GetRates(ctx)

	// Degrada para a tabela estática, que contém o pivô
	rate, ok := snapshot.Rate("USD")
	assert.True(t, ok)
	assert.Equal(t, 1.0, rate)

	// FetchedAt zerado: o fallback nunca vira cache fresco e a próxima
	// chamada tenta o provedor novamente
	assert.True(t, snapshot.FetchedAt.IsZero())

	service.GetRates(ctx)
}

func TestService_GetRates_PersistsSnapshot(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockIntegrator := mocks.NewMockRatesIntegrator(ctrl)
	mockRepo := repomocks.NewMockRateSnapshotRepository(ctrl)

	now := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)
	snapshot := testSnapshot(now)

	mockIntegrator.EXPECT().
		GetLatestSnapshot(gomock.Any()).
		Return(snapshot, nil)

	mockRepo.EXPECT().
		Save(snapshot).
		Return(nil)

	service := &Service{
		cfg:        testConfig(),
		integrator: mockIntegrator,
		repo:       mockRepo,
		now:        func() time.Time { return now },
	}

	result := service.GetRates(context.Background())
	assert.Equal(t, snapshot, result)
}

func TestService_Refresh(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockIntegrator := mocks.NewMockRatesIntegrator(ctrl)

	start := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)

	service := &Service{
		cfg:        testConfig(),
		integrator: mockIntegrator,
		now:        func() time.Time { return start },
		cached:     testSnapshot(start.Add(-1 * time.Hour)),
	}

	// Refresh ignora o TTL: mesmo com cache fresco o provedor é consultado
	refreshed := testSnapshot(start)
	mockIntegrator.EXPECT().
		GetLatestSnapshot(gomock.Any()).
		Return(refreshed, nil)

	snapshot := service.Refresh(context.Background())
	assert.Equal(t, start, snapshot.FetchedAt)

	// Falha de busca mantém o cache atual
	mockIntegrator.EXPECT().
		GetLatestSnapshot(gomock.Any()).
		Return(nil, errors.New("timeout"))

	snapshot = service.Refresh(context.Background())
	assert.Equal(t, refreshed, snapshot)
}

func TestService_Format(t *testing.T) {
	service := &Service{cfg: testConfig(), now: time.Now}

	tests := []struct {
		name     string
		amount   float64
		code     string
		expected string
	}{
		{name: "USD com duas casas", amount: 1234.5, code: "USD", expected: "$1234.50"},
		{name: "GBP com duas casas", amount: 99.999, code: "GBP", expected: "£100.00"},
		{name: "Valor negativo com sinal antes do símbolo", amount: -42.5, code: "USD", expected: "-$42.50"},
		{name: "JPY sem casas decimais", amount: 1500.0, code: "JPY", expected: "¥1500"},
		{name: "Código desconhecido degrada para USD", amount: 10.0, code: "zzz", expected: "$10.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, service.Format(tt.amount, tt.code))
		})
	}
}

func TestService_Symbol(t *testing.T) {
	service := &Service{cfg: testConfig(), now: time.Now}

	assert.Equal(t, "$", service.Symbol("USD"))
	assert.Equal(t, "£", service.Symbol("GBP"))
	assert.Equal(t, "€", service.Symbol("EUR"))
}

func TestStaticSnapshot_IsACopy(t *testing.T) {
	first := StaticSnapshot()
	first.Rates["USD"] = 99.0

	second := StaticSnapshot()
	assert.Equal(t, 1.0, second.Rates["USD"])
}
