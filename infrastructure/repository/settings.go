package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/salon-manager-api/infrastructure/database/postgres"
	"github.com/vfg2006/salon-manager-api/internal/domain"
)

const settingsTable = "settings"

type SettingsRepository interface {
	GetByEstablishment(ctx context.Context, establishmentID string) (*domain.Settings, error)
	Upsert(ctx context.Context, settings *domain.Settings) error
}

type settingsRepository struct {
	conn *postgres.Connection
}

func NewSettingsRepository(conn *postgres.Connection) SettingsRepository {
	return &settingsRepository{
		conn: conn,
	}
}

// GetByEstablishment retorna nil quando não há configuração salva.
// Um limite nulo no banco é lido como o padrão.
func (r *settingsRepository) GetByEstablishment(ctx context.Context, establishmentID string) (*domain.Settings, error) {
	query, args, err := squirrel.
		Select("id", "establishment_id", "inactive_days_threshold").
		From(settingsTable).
		Where(squirrel.Eq{"establishment_id": establishmentID}).
		Limit(1).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var (
		settings  domain.Settings
		threshold sql.NullInt64
	)
	err = r.conn.QueryRowContext(ctx, query, args...).Scan(&settings.ID, &settings.EstablishmentID, &threshold)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear configurações: %w", err)
	}

	settings.InactiveDaysThreshold = domain.DefaultInactiveDaysThreshold
	if threshold.Valid {
		settings.InactiveDaysThreshold = int(threshold.Int64)
	}

	return &settings, nil
}

func (r *settingsRepository) Upsert(ctx context.Context, settings *domain.Settings) error {
	query, args, err := squirrel.
		Insert(settingsTable).
		Columns("establishment_id", "inactive_days_threshold").
		Values(settings.EstablishmentID, settings.InactiveDaysThreshold).
		Suffix(`
			ON CONFLICT (establishment_id) DO UPDATE SET
				inactive_days_threshold = EXCLUDED.inactive_days_threshold,
				updated_at = NOW()
			RETURNING id
		`).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if err := r.conn.QueryRowContext(ctx, query, args...).Scan(&settings.ID); err != nil {
		return fmt.Errorf("erro ao salvar configurações: %w", err)
	}

	return nil
}
