package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/salon-manager-api/infrastructure/database/postgres"
	"github.com/vfg2006/salon-manager-api/internal/domain"
)

// BookingRepository chama as funções públicas de agendamento do banco
type BookingRepository interface {
	GetPublicCatalog(ctx context.Context, establishmentID string) (*domain.Catalog, error)
	GetPublicAvailability(ctx context.Context, establishmentID, professionalID string, day time.Time) (*domain.BookedTimes, error)
	CreatePublicBooking(ctx context.Context, req *domain.BookingRequest, startTime time.Time) (string, error)
}

type bookingRepository struct {
	conn *postgres.Connection
}

func NewBookingRepository(conn *postgres.Connection) BookingRepository {
	return &bookingRepository{
		conn: conn,
	}
}

func (r *bookingRepository) GetPublicCatalog(ctx context.Context, establishmentID string) (*domain.Catalog, error) {
	query, args, err := squirrel.
		Select().
		Column(squirrel.Expr("get_public_catalog(?)", establishmentID)).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var payload []byte
	if err := r.conn.QueryRowContext(ctx, query, args...).Scan(&payload); err != nil {
		return nil, fmt.Errorf("erro ao executar get_public_catalog: %w", err)
	}

	catalog := &domain.Catalog{
		Services:      make([]domain.CatalogService, 0),
		Professionals: make([]domain.CatalogProfessional, 0),
	}
	if len(payload) == 0 {
		return catalog, nil
	}

	if err := json.Unmarshal(payload, catalog); err != nil {
		return nil, fmt.Errorf("erro ao decodificar catálogo: %w", err)
	}

	return catalog, nil
}

func (r *bookingRepository) GetPublicAvailability(ctx context.Context, establishmentID, professionalID string, day time.Time) (*domain.BookedTimes, error) {
	query, args, err := squirrel.
		Select().
		Column(squirrel.Expr("get_public_availability(?, ?, ?)", establishmentID, professionalID, day.Format(time.DateOnly))).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var payload []byte
	if err := r.conn.QueryRowContext(ctx, query, args...).Scan(&payload); err != nil {
		return nil, fmt.Errorf("erro ao executar get_public_availability: %w", err)
	}

	booked := &domain.BookedTimes{Booked: make([]string, 0)}
	if len(payload) == 0 {
		return booked, nil
	}

	if err := json.Unmarshal(payload, booked); err != nil {
		return nil, fmt.Errorf("erro ao decodificar disponibilidade: %w", err)
	}

	return booked, nil
}

// CreatePublicBooking retorna o código de confirmação gerado pelo banco
func (r *bookingRepository) CreatePublicBooking(ctx context.Context, req *domain.BookingRequest, startTime time.Time) (string, error) {
	query, args, err := squirrel.
		Select().
		Column(squirrel.Expr(
			"create_public_booking(?, ?, ?, ?, ?, ?, ?)",
			req.EstablishmentID,
			req.ClientName,
			req.Phone,
			req.ServiceID,
			req.ProfessionalID,
			startTime.Format(time.RFC3339),
			req.Notes,
		)).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return "", fmt.Errorf("erro ao construir a query: %w", err)
	}

	var code sql.NullString
	if err := r.conn.QueryRowContext(ctx, query, args...).Scan(&code); err != nil {
		return "", fmt.Errorf("erro ao executar create_public_booking: %w", err)
	}

	return code.String, nil
}
