package formatting

import (
	"testing"
	"time"

	"github.com/chasedndt/sneaker-inventory-api/internal/config"
	"github.com/chasedndt/sneaker-inventory-api/internal/usecases/converting"
	"github.com/stretchr/testify/assert"
)

func testFacade(dateFormat string) *Facade {
	cfg := &config.Config{
		Display: config.Display{
			Currency:   "USD",
			DateFormat: dateFormat,
		},
	}

	return NewFacade(cfg, converting.NewService(cfg, nil, nil))
}

func TestFacade_Money(t *testing.T) {
	facade := testFacade("MM/DD/YYYY")

	assert.Equal(t, "$1234.50", facade.Money(1234.5, "USD"))
	assert.Equal(t, "£99.99", facade.Money(99.99, "GBP"))
	assert.Equal(t, "-$10.00", facade.Money(-10.0, "USD"))
	assert.Equal(t, "¥1500", facade.Money(1500.0, "JPY"))
}

func TestFacade_Percent(t *testing.T) {
	facade := testFacade("MM/DD/YYYY")

	tests := []struct {
		name     string
		value    float64
		expected string
	}{
		{name: "Positivo com sinal explícito", value: 12.5, expected: "+12.5%"},
		{name: "Negativo", value: -3.2, expected: "-3.2%"},
		{name: "Zero é positivo", value: 0.0, expected: "+0.0%"},
		{name: "Arredonda para uma casa", value: 33.333, expected: "+33.3%"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, facade.Percent(tt.value))
		})
	}
}

func TestFacade_Date(t *testing.T) {
	reference := time.Date(2024, 3, 9, 15, 30, 0, 0, time.UTC)

	tests := []struct {
		name     string
		pattern  string
		expected string
	}{
		{name: "Formato americano", pattern: "MM/DD/YYYY", expected: "03/09/2024"},
		{name: "Formato europeu", pattern: "DD/MM/YYYY", expected: "09/03/2024"},
		{name: "Ano de dois dígitos", pattern: "MM/DD/YY", expected: "03/09/24"},
		{name: "Padrão vazio cai no formato americano", pattern: "", expected: "03/09/2024"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, testFacade(tt.pattern).Date(reference))
		})
	}
}
