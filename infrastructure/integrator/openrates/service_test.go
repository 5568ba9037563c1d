package openrates

import (
	"context"
	"testing"
	"time"

	clientmocks "github.com/chasedndt/sneaker-inventory-api/infrastructure/integrator/openrates/ratesclient/mocks"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestIntegrator_GetLatestSnapshot(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := clientmocks.NewMockClient(ctrl)

	now := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)

	integrator := &Integrator{
		Client: mockClient,
		now:    func() time.Time { return now },
	}

	t.Run("Snapshot montado com o instante da busca", func(t *testing.T) {
		mockClient.EXPECT().
			GetLatestRates(gomock.Any()).
			Return(map[string]float64{"GBP": 0.78, "EUR": 0.92}, nil)

		snapshot, err := integrator.GetLatestSnapshot(context.Background())
		assert.NoError(t, err)
		assert.Equal(t, now, snapshot.FetchedAt)
		assert.Equal(t, 0.78, snapshot.Rates["GBP"])
	})

	t.Run("Taxa do pivô forçada para 1.0", func(t *testing.T) {
		// Alguns provedores omitem a própria moeda base do mapa
		mockClient.EXPECT().
			GetLatestRates(gomock.Any()).
			Return(map[string]float64{"GBP": 0.78}, nil)

		snapshot, err := integrator.GetLatestSnapshot(context.Background())
		assert.NoError(t, err)
		assert.Equal(t, 1.0, snapshot.Rates["USD"])
	})

	t.Run("Erro do cliente é propagado", func(t *testing.T) {
		mockClient.EXPECT().
			GetLatestRates(gomock.Any()).
			Return(nil, errors.New("connection refused"))

		snapshot, err := integrator.GetLatestSnapshot(context.Background())
		assert.Error(t, err)
		assert.Nil(t, snapshot)
	})
}
