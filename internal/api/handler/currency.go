package handler

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/chasedndt/sneaker-inventory-api/internal/domain"
	"github.com/chasedndt/sneaker-inventory-api/internal/usecases/converting"
	"github.com/chasedndt/sneaker-inventory-api/pkg/apiErrors"
	"github.com/chasedndt/sneaker-inventory-api/pkg/log"
)

// RatesResponse expõe o snapshot de cotações ativo, com o pivô explícito
type RatesResponse struct {
	Base      string             `json:"base"`
	FetchedAt *time.Time         `json:"fetched_at,omitempty"`
	Rates     map[string]float64 `json:"rates"`
}

// ConversionResponse devolve o resultado de uma conversão pontual
type ConversionResponse struct {
	Amount    float64 `json:"amount"`
	From      string  `json:"from"`
	To        string  `json:"to"`
	Result    float64 `json:"result"`
	Formatted string  `json:"formatted"`
}

// GetRates retorna o snapshot de cotações ativo (cache, provedor ou tabela
// estática, nessa ordem de preferência)
func GetRates(service converting.Converter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		snapshot := service.GetRates(r.Context())

		response := RatesResponse{
			Base:  domain.PivotCurrency,
			Rates: snapshot.Rates,
		}
		if !snapshot.FetchedAt.IsZero() {
			response.FetchedAt = &snapshot.FetchedAt
		}

		logger.WithField("rate_count", len(snapshot.Rates)).Info("currency: returning active rate snapshot")

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(response); err != nil {
			logger.WithError(err).Error("currency: failed to encode rates response")
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}

// ConvertAmount converte um valor entre duas moedas via query string:
// amount, from e to. Tokens de moeda aceitam código, símbolo ou apelido.
func ConvertAmount(service converting.Converter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		rawAmount := r.URL.Query().Get("amount")
		amount, err := strconv.ParseFloat(rawAmount, 64)
		if err != nil {
			logger.WithFields(log.Fields{
				"amount": rawAmount,
				"error":  err.Error(),
			}).Warn("currency: invalid amount parameter")

			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Parâmetro amount inválido", nil)
			return
		}

		from := service.Normalize(r.URL.Query().Get("from"))
		to := service.Normalize(r.URL.Query().Get("to"))

		result := service.Convert(r.Context(), amount, from, to)

		response := ConversionResponse{
			Amount:    amount,
			From:      from,
			To:        to,
			Result:    result,
			Formatted: service.Format(result, to),
		}

		logger.WithFields(log.Fields{
			"currency_from": from,
			"currency_to":   to,
		}).Info("currency: conversion computed")

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(response); err != nil {
			logger.WithError(err).Error("currency: failed to encode conversion response")
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}
