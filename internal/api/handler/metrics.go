package handler

import (
	"encoding/json"
	"net/http"

	"github.com/chasedndt/sneaker-inventory-api/internal/domain"
	"github.com/chasedndt/sneaker-inventory-api/internal/usecases/aggregating"
	"github.com/chasedndt/sneaker-inventory-api/internal/usecases/formatting"
	"github.com/chasedndt/sneaker-inventory-api/pkg/apiErrors"
	"github.com/chasedndt/sneaker-inventory-api/pkg/log"
	"github.com/chasedndt/sneaker-inventory-api/pkg/utils"
	"github.com/pkg/errors"
)

// MetricsSnapshotRequest carrega as coleções de registros do dashboard e os
// parâmetros do período. Os registros chegam no corpo porque este serviço
// não persiste dados de negócio.
type MetricsSnapshotRequest struct {
	Items           []*domain.InventoryItem `json:"items"`
	Sales           []*domain.SaleRecord    `json:"sales"`
	Expenses        []*domain.ExpenseRecord `json:"expenses"`
	StartDate       string                  `json:"start_date,omitempty"`
	EndDate         string                  `json:"end_date,omitempty"`
	DisplayCurrency string                  `json:"display_currency,omitempty"`
}

// MetricsSnapshotResponse devolve o snapshot bruto e um bloco de valores já
// formatados para exibição direta
type MetricsSnapshotResponse struct {
	*domain.MetricsSnapshot
	Display map[string]string `json:"display"`
}

// ComputeMetricsSnapshot computa um snapshot de métricas para as coleções
// recebidas no corpo da requisição
func ComputeMetricsSnapshot(service aggregating.Aggregator, formatter formatting.Formatter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		var request MetricsSnapshotRequest
		if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
			logger.WithError(err).Warn("metrics: invalid request body")
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Corpo da requisição inválido", err.Error())
			return
		}

		filters, err := parseFilters(request.StartDate, request.EndDate)
		if err != nil {
			logger.WithFields(log.Fields{
				"start_date": request.StartDate,
				"end_date":   request.EndDate,
				"error":      err.Error(),
			}).Warn("metrics: invalid date filters")

			apiErrors.WriteError(w, apiErrors.ErrInvalidDateRange, err.Error(), nil)
			return
		}

		logger.WithFields(log.Fields{
			"item_count":    len(request.Items),
			"sale_count":    len(request.Sales),
			"expense_count": len(request.Expenses),
		}).Info("metrics: computing snapshot")

		snapshot, err := service.Aggregate(
			r.Context(),
			request.Items,
			request.Sales,
			request.Expenses,
			filters,
			request.DisplayCurrency,
		)
		if err != nil {
			logger.WithError(err).Error("metrics: failed to compute snapshot")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao computar snapshot de métricas", nil)
			return
		}

		response := MetricsSnapshotResponse{
			MetricsSnapshot: snapshot,
			Display:         displayBlock(snapshot, formatter),
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(response); err != nil {
			logger.WithError(err).Error("metrics: failed to encode response")
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}

// parseFilters converte as datas da requisição em filtros de período.
// Ambas as datas são opcionais, mas quando presentes a ordem é validada.
func parseFilters(startStr, endStr string) (*domain.MetricsFilters, error) {
	start, err := utils.ParseDate(startStr)
	if err != nil {
		return nil, errors.Wrap(err, "start_date inválida")
	}

	end, err := utils.ParseDate(endStr)
	if err != nil {
		return nil, errors.Wrap(err, "end_date inválida")
	}

	if start != nil && end != nil && end.Before(*start) {
		return nil, errors.New("start_date deve ser anterior ou igual a end_date")
	}

	return &domain.MetricsFilters{StartDate: start, EndDate: end}, nil
}

// displayBlock monta os valores formatados do snapshot: dinheiro com símbolo
// da moeda de exibição, percentuais com sinal e a data de geração
func displayBlock(snapshot *domain.MetricsSnapshot, formatter formatting.Formatter) map[string]string {
	code := snapshot.DisplayCurrency

	return map[string]string{
		"total_inventory_cost": formatter.Money(snapshot.Inventory.TotalInventoryCost, code),
		"total_market_value":   formatter.Money(snapshot.Inventory.TotalMarketValue, code),
		"potential_profit":     formatter.Money(snapshot.Inventory.PotentialProfit, code),
		"total_sales_revenue":  formatter.Money(snapshot.Sales.TotalSalesRevenue, code),
		"gross_profit":         formatter.Money(snapshot.Sales.GrossProfit, code),
		"total_expenses":       formatter.Money(snapshot.Expenses.TotalExpenses, code),
		"expense_change":       formatter.Percent(snapshot.Expenses.ExpenseChange),
		"net_profit_sold":      formatter.Money(snapshot.Profit.NetProfitSold, code),
		"roi_sold":             formatter.Percent(snapshot.Profit.ROISold),
		"roi_inventory":        formatter.Percent(snapshot.Profit.ROIInventory),
		"overall_roi":          formatter.Percent(snapshot.Profit.OverallROI),
		"generated_at":         formatter.Date(snapshot.GeneratedAt),
	}
}
