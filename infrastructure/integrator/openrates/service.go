package openrates

import (
	"context"
	"time"

	"github.com/chasedndt/sneaker-inventory-api/infrastructure/integrator/openrates/ratesclient"
	"github.com/chasedndt/sneaker-inventory-api/internal/config"
	"github.com/chasedndt/sneaker-inventory-api/internal/domain"
	"github.com/sirupsen/logrus"
)

// RatesIntegrator abstrai o provedor externo de câmbio para a camada de usecases
type RatesIntegrator interface {
	GetLatestSnapshot(ctx context.Context) (*domain.ExchangeRateSnapshot, error)
}

type Integrator struct {
	cfg    *config.Config
	Client ratesclient.Client
	now    func() time.Time
}

func New(cfg *config.Config, client ratesclient.Client) *Integrator {
	return &Integrator{
		cfg:    cfg,
		Client: client,
		now:    time.Now,
	}
}

// GetLatestSnapshot busca as taxas vigentes no provedor e monta o snapshot
// com o instante da busca. A taxa do pivô é forçada para 1.0: alguns
// provedores omitem a própria moeda base do mapa.
func (s *Integrator) GetLatestSnapshot(ctx context.Context) (*domain.ExchangeRateSnapshot, error) {
	rates, err := s.Client.GetLatestRates(ctx)
	if err != nil {
		logrus.WithError(err).Error("rates: failed to get latest rates from provider")
		return nil, err
	}

	rates[domain.PivotCurrency] = 1.0

	snapshot := &domain.ExchangeRateSnapshot{
		Rates:     rates,
		FetchedAt: s.now(),
	}

	logrus.WithFields(logrus.Fields{
		"rate_count": len(rates),
		"fetched_at": snapshot.FetchedAt.Format(time.RFC3339),
	}).Info("rates: successfully fetched exchange rate snapshot")

	return snapshot, nil
}
