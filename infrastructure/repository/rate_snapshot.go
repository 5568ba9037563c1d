package repository

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/chasedndt/sneaker-inventory-api/infrastructure/database/postgres"
	"github.com/chasedndt/sneaker-inventory-api/internal/domain"
	"github.com/lib/pq"
)

const (
	rateSnapshotsTable = "exchange_rate_snapshots rs"

	// Chave fixa sob a qual o snapshot vigente é persistido
	rateSnapshotKey = "latest"
)

type RateSnapshotRepository interface {
	Get() (*domain.ExchangeRateSnapshot, error)
	Save(snapshot *domain.ExchangeRateSnapshot) error
}

type rateSnapshotRepository struct {
	conn *postgres.Connection
}

func NewRateSnapshotRepository(conn *postgres.Connection) RateSnapshotRepository {
	return &rateSnapshotRepository{
		conn: conn,
	}
}

// Get lê o snapshot persistido sob a chave fixa. Retorna nil (sem erro)
// quando ainda não existe snapshot salvo.
func (r *rateSnapshotRepository) Get() (*domain.ExchangeRateSnapshot, error) {
	query, args, err := squirrel.
		Select("rs.rates, rs.fetched_at").
		From(rateSnapshotsTable).
		Where(squirrel.Eq{"rs.key": rateSnapshotKey}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	row := r.conn.QueryRow(query, args...)

	snapshot := &domain.ExchangeRateSnapshot{}
	var ratesJSON []byte

	if err := row.Scan(&ratesJSON, &snapshot.FetchedAt); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear snapshot de câmbio: %w", err)
	}

	if ratesJSON != nil {
		if err := json.Unmarshal(ratesJSON, &snapshot.Rates); err != nil {
			return nil, fmt.Errorf("erro ao deserializar JSON de rates: %w", err)
		}
	}

	return snapshot, nil
}

// Save grava o snapshot sob a chave fixa, substituindo o anterior
func (r *rateSnapshotRepository) Save(snapshot *domain.ExchangeRateSnapshot) error {
	ratesJSON, err := json.Marshal(snapshot.Rates)
	if err != nil {
		return fmt.Errorf("erro ao serializar rates para JSON: %w", err)
	}

	query := squirrel.StatementBuilder.
		Insert("exchange_rate_snapshots").
		Columns("key", "rates", "fetched_at").
		Values(
			rateSnapshotKey,
			ratesJSON,
			snapshot.FetchedAt,
		).
		Suffix(`
			ON CONFLICT (key) DO UPDATE SET
				rates = EXCLUDED.rates,
				fetched_at = EXCLUDED.fetched_at,
				updated_at = NOW()
		`).
		PlaceholderFormat(squirrel.Dollar)

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	_, err = r.conn.Exec(sqlQuery, args...)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	return nil
}
