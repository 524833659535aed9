package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/salon-manager-api/infrastructure/database/postgres"
	"github.com/vfg2006/salon-manager-api/internal/domain"
)

const servicesTable = "services"

var serviceColumns = []string{
	"id", "establishment_id", "name", "description", "COALESCE(price, 0)",
	"COALESCE(duration_minutes, 0)", "COALESCE(active, true)",
}

type ServiceRepository interface {
	ListByEstablishment(ctx context.Context, establishmentID string) ([]*domain.Service, error)
	GetByID(ctx context.Context, establishmentID, serviceID string) (*domain.Service, error)
	Create(ctx context.Context, service *domain.Service) error
}

type serviceRepository struct {
	conn *postgres.Connection
}

func NewServiceRepository(conn *postgres.Connection) ServiceRepository {
	return &serviceRepository{
		conn: conn,
	}
}

// ListByEstablishment inclui serviços inativos, que ainda nomeiam vendas antigas
func (r *serviceRepository) ListByEstablishment(ctx context.Context, establishmentID string) ([]*domain.Service, error) {
	query, args, err := squirrel.
		Select(serviceColumns...).
		From(servicesTable).
		Where(squirrel.Eq{"establishment_id": establishmentID}).
		OrderBy("name ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query de serviços: %w", err)
	}
	defer rows.Close()

	services := make([]*domain.Service, 0)
	for rows.Next() {
		service, err := scanService(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear serviço: %w", err)
		}
		services = append(services, service)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return services, nil
}

func (r *serviceRepository) GetByID(ctx context.Context, establishmentID, serviceID string) (*domain.Service, error) {
	query, args, err := squirrel.
		Select(serviceColumns...).
		From(servicesTable).
		Where(squirrel.Eq{"establishment_id": establishmentID, "id": serviceID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	service, err := scanService(r.conn.QueryRowContext(ctx, query, args...))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear serviço: %w", err)
	}

	return service, nil
}

func (r *serviceRepository) Create(ctx context.Context, service *domain.Service) error {
	query, args, err := squirrel.
		Insert(servicesTable).
		Columns("establishment_id", "name", "description", "price", "duration_minutes", "active").
		Values(service.EstablishmentID, service.Name, service.Description, service.Price, service.DurationMinutes, service.Active).
		Suffix("RETURNING id").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if err := r.conn.QueryRowContext(ctx, query, args...).Scan(&service.ID); err != nil {
		return insertError("serviço", err)
	}

	return nil
}

func scanService(row rowScanner) (*domain.Service, error) {
	var service domain.Service
	if err := row.Scan(
		&service.ID,
		&service.EstablishmentID,
		&service.Name,
		&service.Description,
		&service.Price,
		&service.DurationMinutes,
		&service.Active,
	); err != nil {
		return nil, err
	}
	return &service, nil
}
