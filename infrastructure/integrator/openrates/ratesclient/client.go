package ratesclient

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/chasedndt/sneaker-inventory-api/internal/config"
	"github.com/chasedndt/sneaker-inventory-api/pkg/utils"
	"github.com/sirupsen/logrus"
)

// ErrMissingRates indica resposta sem o campo "rates" (ou vazio); o provedor
// respondeu mas o corpo é inutilizável, tratado como falha de busca
var ErrMissingRates = errors.New("rate provider response has no rates")

type Client interface {
	GetLatestRates(ctx context.Context) (map[string]float64, error)
}

type OpenRatesClient struct {
	cfg *config.Config
}

func NewClient(cfg *config.Config) Client {
	return &OpenRatesClient{
		cfg: cfg,
	}
}

// responseLatestRates é o corpo esperado do provedor: taxas relativas a USD
type responseLatestRates struct {
	Rates map[string]float64 `json:"rates"`
}

// GetLatestRates faz um GET no endpoint público do provedor e retorna o mapa
// código → taxa relativa ao dólar
func (c *OpenRatesClient) GetLatestRates(ctx context.Context) (map[string]float64, error) {
	body, err := utils.MakeRequest(ctx, c.cfg.RateProvider.URL)
	if err != nil {
		logrus.WithError(err).Error("rates: failed to request exchange rates from provider")
		return nil, err
	}

	var response responseLatestRates
	if err := json.Unmarshal(body, &response); err != nil {
		logrus.WithError(err).Error("rates: failed to decode provider response")
		return nil, err
	}

	if len(response.Rates) == 0 {
		logrus.Warn("rates: provider response has no rates field")
		return nil, ErrMissingRates
	}

	return response.Rates, nil
}
