package repository

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/salon-manager-api/infrastructure/database/postgres"
	"github.com/vfg2006/salon-manager-api/internal/domain"
)

const appointmentsTable = "appointments"

type AppointmentRepository interface {
	ListByPeriod(ctx context.Context, establishmentID string, period domain.Period) ([]*domain.Appointment, error)
	CountByPeriod(ctx context.Context, establishmentID string, period domain.Period) (int, error)
}

type appointmentRepository struct {
	conn *postgres.Connection
}

func NewAppointmentRepository(conn *postgres.Connection) AppointmentRepository {
	return &appointmentRepository{
		conn: conn,
	}
}

func (r *appointmentRepository) ListByPeriod(ctx context.Context, establishmentID string, period domain.Period) ([]*domain.Appointment, error) {
	query, args, err := squirrel.
		Select("id", "establishment_id", "client_id", "service_id", "professional_id", "appointment_date", "status").
		From(appointmentsTable).
		Where(squirrel.Eq{"establishment_id": establishmentID}).
		Where(squirrel.GtOrEq{"appointment_date": period.Start}).
		Where(squirrel.LtOrEq{"appointment_date": period.End}).
		OrderBy("appointment_date ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query de agendamentos: %w", err)
	}
	defer rows.Close()

	appointments := make([]*domain.Appointment, 0)
	for rows.Next() {
		var appointment domain.Appointment
		if err := rows.Scan(
			&appointment.ID,
			&appointment.EstablishmentID,
			&appointment.ClientID,
			&appointment.ServiceID,
			&appointment.ProfessionalID,
			&appointment.AppointmentDate,
			&appointment.Status,
		); err != nil {
			return nil, fmt.Errorf("erro ao escanear agendamento: %w", err)
		}
		appointments = append(appointments, &appointment)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return appointments, nil
}

func (r *appointmentRepository) CountByPeriod(ctx context.Context, establishmentID string, period domain.Period) (int, error) {
	query, args, err := squirrel.
		Select("COUNT(*)").
		From(appointmentsTable).
		Where(squirrel.Eq{"establishment_id": establishmentID}).
		Where(squirrel.GtOrEq{"appointment_date": period.Start}).
		Where(squirrel.LtOrEq{"appointment_date": period.End}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var count int
	if err := r.conn.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("erro ao contar agendamentos: %w", err)
	}

	return count, nil
}
