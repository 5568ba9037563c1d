package utils

import (
	"math"

	"github.com/sirupsen/logrus"
)

func RoundWithTwoDecimalPlace(f float64) float64 {
	if f == 0 {
		return 0
	}

	return math.Round(f*100) / 100
}

func RoundWithOneDecimalPlace(f float64) float64 {
	if f == 0 {
		return 0
	}

	return math.Round(f*10) / 10
}

// SanitizeAmount converte valores numéricos inválidos (NaN, ±Inf) para 0.
// Entrada inválida nunca é propagada como erro: métricas de dashboard sempre
// retornam o melhor número possível.
func SanitizeAmount(f float64) float64 {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		logrus.WithField("amount", f).Warn("invalid numeric amount coerced to zero")
		return 0
	}

	return f
}

// SafeRatio retorna numerator/denominator, ou 0 quando o denominador é 0.
// Nunca produz NaN/Infinity.
func SafeRatio(numerator, denominator float64) float64 {
	if denominator == 0 {
		return 0
	}

	return numerator / denominator
}
