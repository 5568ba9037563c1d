package converting

import "github.com/chasedndt/sneaker-inventory-api/internal/domain"

// staticRates é a tabela estática de fallback, relativa ao pivô (USD).
// Usada quando o provedor de câmbio está indisponível e não há snapshot
// válido em cache: a conversão nunca falha por completo.
var staticRates = map[string]float64{
	"USD": 1.0,
	"EUR": 0.92,
	"GBP": 0.78,
	"JPY": 149.50,
	"CAD": 1.36,
	"AUD": 1.52,
	"CHF": 0.88,
	"CNY": 7.24,
	"SEK": 10.48,
	"NOK": 10.62,
	"DKK": 6.87,
	"PLN": 3.95,
	"BRL": 5.43,
	"MXN": 18.20,
	"INR": 83.10,
	"KRW": 1338.00,
	"SGD": 1.34,
	"HKD": 7.81,
	"NZD": 1.64,
}

// currencySymbols mapeia símbolos monetários para o código padrão.
// Símbolos ambíguos resolvem para um default documentado e arbitrário:
// "$" → USD (não CAD/AUD), "¥" → JPY (não CNY), "kr" → SEK (não NOK/DKK).
// Limitação conhecida: valores em ienes chineses ou coroas norueguesas
// escritos só com o símbolo serão classificados no default.
var currencySymbols = map[string]string{
	"$":   "USD",
	"£":   "GBP",
	"€":   "EUR",
	"¥":   "JPY",
	"kr":  "SEK",
	"C$":  "CAD",
	"A$":  "AUD",
	"NZ$": "NZD",
	"R$":  "BRL",
	"₹":   "INR",
	"₩":   "KRW",
	"Fr":  "CHF",
	"zł":  "PLN",
}

// currencyAliases mapeia nomes comuns (minúsculos) para o código padrão
var currencyAliases = map[string]string{
	"dollar":   "USD",
	"dollars":  "USD",
	"usd":      "USD",
	"pound":    "GBP",
	"pounds":   "GBP",
	"sterling": "GBP",
	"quid":     "GBP",
	"euro":     "EUR",
	"euros":    "EUR",
	"yen":      "JPY",
	"yuan":     "CNY",
	"renminbi": "CNY",
	"krona":    "SEK",
	"kronor":   "SEK",
	"krone":    "NOK",
	"franc":    "CHF",
	"francs":   "CHF",
	"real":     "BRL",
	"reais":    "BRL",
	"rupee":    "INR",
	"rupees":   "INR",
	"won":      "KRW",
}

// StaticSnapshot monta um snapshot a partir da tabela estática. FetchedAt
// fica zerado de propósito: o snapshot estático nunca é considerado fresco e
// a próxima chamada tenta o provedor de novo.
func StaticSnapshot() *domain.ExchangeRateSnapshot {
	rates := make(map[string]float64, len(staticRates))
	for code, rate := range staticRates {
		rates[code] = rate
	}

	return &domain.ExchangeRateSnapshot{
		Rates: rates,
	}
}
