package formatting

import (
	"fmt"
	"strings"
	"time"

	"github.com/chasedndt/sneaker-inventory-api/internal/config"
	"github.com/chasedndt/sneaker-inventory-api/internal/usecases/converting"
)

// Formatter centraliza a apresentação de valores: dinheiro, percentual e
// data. Os handlers nunca formatam por conta própria.
type Formatter interface {
	Money(amount float64, code string) string
	Percent(value float64) string
	Date(t time.Time) string
}

type Facade struct {
	cfg       *config.Config
	converter converting.Converter
	layout    string
}

// NewFacade cria o formatador usando o padrão de data configurado
// (estilo MM/DD/YYYY, traduzido para o layout nativo do Go)
func NewFacade(cfg *config.Config, converter converting.Converter) *Facade {
	return &Facade{
		cfg:       cfg,
		converter: converter,
		layout:    dateLayout(cfg.Display.DateFormat),
	}
}

// Money delega ao conversor: símbolo da moeda + casas decimais corretas,
// com sinal negativo antes do símbolo
func (f *Facade) Money(amount float64, code string) string {
	return f.converter.Format(amount, code)
}

// Percent formata um percentual já calculado, com sinal explícito e uma
// casa decimal: "+12.5%", "-3.2%", "+0.0%"
func (f *Facade) Percent(value float64) string {
	sign := "+"
	if value < 0 {
		sign = "-"
	}
	return fmt.Sprintf("%s%.1f%%", sign, abs(value))
}

// Date formata a data no padrão de exibição configurado
func (f *Facade) Date(t time.Time) string {
	return t.Format(f.layout)
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

// dateLayout traduz padrões no estilo MM/DD/YYYY para o layout de referência
// do Go. Padrão desconhecido cai no formato americano.
func dateLayout(pattern string) string {
	if pattern == "" {
		return "01/02/2006"
	}

	replacer := strings.NewReplacer(
		"YYYY", "2006",
		"YY", "06",
		"MM", "01",
		"DD", "02",
	)

	return replacer.Replace(pattern)
}
