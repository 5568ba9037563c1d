package converting

import (
	"context"
	"fmt"
	"math"
	"strings"
	"sync"
	"time"

	"github.com/Rhymond/go-money"
	"github.com/chasedndt/sneaker-inventory-api/infrastructure/integrator/openrates"
	"github.com/chasedndt/sneaker-inventory-api/infrastructure/repository"
	"github.com/chasedndt/sneaker-inventory-api/internal/config"
	"github.com/chasedndt/sneaker-inventory-api/internal/domain"
	"github.com/chasedndt/sneaker-inventory-api/pkg/utils"
	"github.com/sirupsen/logrus"
)

// Converter é a interface de conversão de moedas usada pelo agregador e
// pelos handlers. Nenhuma operação falha: entrada não reconhecida degrada
// para o fallback seguro mais próximo (cache → tabela estática → identidade).
type Converter interface {
	Normalize(token string) string
	GetRates(ctx context.Context) *domain.ExchangeRateSnapshot
	Refresh(ctx context.Context) *domain.ExchangeRateSnapshot
	Convert(ctx context.Context, amount float64, from, to string) float64
	Format(amount float64, code string) string
	Symbol(code string) string
}

// Service implementa Converter com cache de snapshot em memória, TTL e
// persistência durável via repositório
type Service struct {
	cfg        *config.Config
	integrator openrates.RatesIntegrator
	repo       repository.RateSnapshotRepository

	// relógio injetado para testes determinísticos de expiração
	now func() time.Time

	mu       sync.Mutex
	cached   *domain.ExchangeRateSnapshot
	inflight chan struct{}
}

// NewService cria o serviço de conversão e carrega o snapshot persistido,
// se houver. Falha de leitura do repositório não é fatal: o serviço começa
// sem cache e busca do provedor na primeira chamada.
func NewService(
	cfg *config.Config,
	integrator openrates.RatesIntegrator,
	repo repository.RateSnapshotRepository,
) *Service {
	s := &Service{
		cfg:        cfg,
		integrator: integrator,
		repo:       repo,
		now:        time.Now,
	}

	if repo != nil {
		snapshot, err := repo.Get()
		if err != nil {
			logrus.WithError(err).Warn("currency: failed to load persisted rate snapshot")
		} else if snapshot != nil {
			s.cached = snapshot
			logrus.WithFields(logrus.Fields{
				"rate_count": len(snapshot.Rates),
				"fetched_at": snapshot.FetchedAt.Format(time.RFC3339),
			}).Info("currency: loaded persisted rate snapshot")
		}
	}

	return s
}

// WithClock substitui o relógio do serviço (apenas testes)
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

// Normalize aceita um código ISO, um símbolo ("$", "£", "€", "¥", "kr", ...)
// ou um apelido comum ("dollar", "pound"), com trim e sem distinção de
// maiúsculas para códigos e apelidos. Token não reconhecido resolve para o
// pivô (USD) com um aviso no log; nunca retorna erro.
func (s *Service) Normalize(token string) string {
	trimmed := strings.TrimSpace(token)
	if trimmed == "" {
		return domain.PivotCurrency
	}

	// Símbolos são sensíveis a forma ("kr" vs "KR"), então são testados antes
	// da normalização de caixa
	if code, ok := currencySymbols[trimmed]; ok {
		return code
	}

	lower := strings.ToLower(trimmed)
	if code, ok := currencyAliases[lower]; ok {
		return code
	}

	upper := strings.ToUpper(trimmed)
	if money.GetCurrency(upper) != nil {
		return upper
	}

	logrus.WithField("currency_token", token).Warn("currency: unrecognized token, defaulting to USD")
	return domain.PivotCurrency
}

// GetRates retorna o snapshot ativo: o cache quando mais novo que o TTL,
// senão uma busca no provedor. Falha de busca degrada para a tabela estática
// sem registrar timestamp, de modo que a próxima chamada tenta de novo.
// Chamadas concorrentes compartilham uma única busca em andamento.
func (s *Service) GetRates(ctx context.Context) *domain.ExchangeRateSnapshot {
	ttl := s.cfg.RateProvider.CacheTTL()

	s.mu.Lock()
	if s.cached != nil && !s.cached.Expired(ttl, s.now()) {
		snapshot := s.cached
		s.mu.Unlock()
		return snapshot
	}

	// Se já existe uma busca em andamento, aguardar o resultado dela em vez
	// de disparar outra requisição ao provedor
	if s.inflight != nil {
		wait := s.inflight
		s.mu.Unlock()
		<-wait

		s.mu.Lock()
		cached := s.cached
		s.mu.Unlock()

		if cached != nil && !cached.Expired(ttl, s.now()) {
			return cached
		}
		return StaticSnapshot()
	}

	done := make(chan struct{})
	s.inflight = done
	s.mu.Unlock()

	snapshot, err := s.integrator.GetLatestSnapshot(ctx)

	s.mu.Lock()
	s.inflight = nil
	close(done)

	if err != nil {
		s.mu.Unlock()
		logrus.WithError(err).Warn("currency: rate fetch failed, falling back to static table")
		return StaticSnapshot()
	}

	s.cached = snapshot
	s.mu.Unlock()

	if s.repo != nil {
		if err := s.repo.Save(snapshot); err != nil {
			logrus.WithError(err).Warn("currency: failed to persist rate snapshot")
		}
	}

	return snapshot
}

// Refresh busca cotações novas no provedor ignorando o TTL e atualiza o
// cache e o repositório. Usado pelo agendador. Em caso de falha mantém o
// cache atual, ou a tabela estática quando não há cache.
func (s *Service) Refresh(ctx context.Context) *domain.ExchangeRateSnapshot {
	snapshot, err := s.integrator.GetLatestSnapshot(ctx)
	if err != nil {
		logrus.WithError(err).Warn("currency: scheduled rate refresh failed, keeping current snapshot")

		s.mu.Lock()
		cached := s.cached
		s.mu.Unlock()

		if cached != nil {
			return cached
		}
		return StaticSnapshot()
	}

	s.mu.Lock()
	s.cached = snapshot
	s.mu.Unlock()

	if s.repo != nil {
		if err := s.repo.Save(snapshot); err != nil {
			logrus.WithError(err).Warn("currency: failed to persist rate snapshot")
		}
	}

	return snapshot
}

// Convert converte um valor entre moedas roteando pelo pivô:
// amount / rate[from] * rate[to]. Valor zero e moedas iguais retornam o
// próprio valor; taxa ausente degrada para identidade com aviso no log.
func (s *Service) Convert(ctx context.Context, amount float64, from, to string) float64 {
	amount = utils.SanitizeAmount(amount)
	if amount == 0 {
		return 0
	}

	fromCode := s.Normalize(from)
	toCode := s.Normalize(to)
	if fromCode == toCode {
		return amount
	}

	snapshot := s.GetRates(ctx)

	fromRate, okFrom := snapshot.Rate(fromCode)
	toRate, okTo := snapshot.Rate(toCode)
	if !okFrom || !okTo || fromRate == 0 {
		logrus.WithFields(logrus.Fields{
			"currency_from": fromCode,
			"currency_to":   toCode,
		}).Warn("currency: missing rate for pair, returning amount unchanged")
		return amount
	}

	return amount / fromRate * toRate
}

// Format renderiza o valor como símbolo + duas casas decimais, exceto moedas
// sem subunidade (classe JPY), que ficam sem casas decimais
func (s *Service) Format(amount float64, code string) string {
	normalized := s.Normalize(code)
	symbol := s.Symbol(normalized)

	decimals := 2
	if currency := money.GetCurrency(normalized); currency != nil && currency.Fraction == 0 {
		decimals = 0
	}

	sign := ""
	if amount < 0 {
		sign = "-"
		amount = math.Abs(amount)
	}

	return fmt.Sprintf("%s%s%.*f", sign, symbol, decimals, amount)
}

// Symbol retorna o símbolo monetário do código, ou o próprio código quando
// não há símbolo conhecido
func (s *Service) Symbol(code string) string {
	if currency := money.GetCurrency(strings.ToUpper(code)); currency != nil && currency.Grapheme != "" {
		return currency.Grapheme
	}
	return code
}
