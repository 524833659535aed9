package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/salon-manager-api/infrastructure/database/postgres"
	"github.com/vfg2006/salon-manager-api/internal/domain"
)

const (
	professionalsTable        = "professionals"
	serviceProfessionalsTable = "service_professionals"
)

var professionalColumns = []string{"id", "establishment_id", "name", "COALESCE(active, true)"}

type ProfessionalRepository interface {
	ListByEstablishment(ctx context.Context, establishmentID string) ([]*domain.Professional, error)
	GetByID(ctx context.Context, establishmentID, professionalID string) (*domain.Professional, error)
	Create(ctx context.Context, professional *domain.Professional) error
	ListLinks(ctx context.Context, establishmentID string) ([]*domain.ServiceProfessional, error)
	Link(ctx context.Context, link *domain.ServiceProfessional) error
	Unlink(ctx context.Context, establishmentID, linkID string) error
}

type professionalRepository struct {
	conn *postgres.Connection
}

func NewProfessionalRepository(conn *postgres.Connection) ProfessionalRepository {
	return &professionalRepository{
		conn: conn,
	}
}

func (r *professionalRepository) ListByEstablishment(ctx context.Context, establishmentID string) ([]*domain.Professional, error) {
	query, args, err := squirrel.
		Select(professionalColumns...).
		From(professionalsTable).
		Where(squirrel.Eq{"establishment_id": establishmentID}).
		OrderBy("name ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query de profissionais: %w", err)
	}
	defer rows.Close()

	professionals := make([]*domain.Professional, 0)
	for rows.Next() {
		professional, err := scanProfessional(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear profissional: %w", err)
		}
		professionals = append(professionals, professional)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return professionals, nil
}

func (r *professionalRepository) GetByID(ctx context.Context, establishmentID, professionalID string) (*domain.Professional, error) {
	query, args, err := squirrel.
		Select(professionalColumns...).
		From(professionalsTable).
		Where(squirrel.Eq{"establishment_id": establishmentID, "id": professionalID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	professional, err := scanProfessional(r.conn.QueryRowContext(ctx, query, args...))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear profissional: %w", err)
	}

	return professional, nil
}

func (r *professionalRepository) Create(ctx context.Context, professional *domain.Professional) error {
	query, args, err := squirrel.
		Insert(professionalsTable).
		Columns("establishment_id", "name", "active").
		Values(professional.EstablishmentID, professional.Name, professional.Active).
		Suffix("RETURNING id").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if err := r.conn.QueryRowContext(ctx, query, args...).Scan(&professional.ID); err != nil {
		return insertError("profissional", err)
	}

	return nil
}

func (r *professionalRepository) ListLinks(ctx context.Context, establishmentID string) ([]*domain.ServiceProfessional, error) {
	query, args, err := squirrel.
		Select("id", "establishment_id", "service_id", "professional_id").
		From(serviceProfessionalsTable).
		Where(squirrel.Eq{"establishment_id": establishmentID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query de vínculos: %w", err)
	}
	defer rows.Close()

	links := make([]*domain.ServiceProfessional, 0)
	for rows.Next() {
		var link domain.ServiceProfessional
		if err := rows.Scan(&link.ID, &link.EstablishmentID, &link.ServiceID, &link.ProfessionalID); err != nil {
			return nil, fmt.Errorf("erro ao escanear vínculo: %w", err)
		}
		links = append(links, &link)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return links, nil
}

// Link retorna ErrAlreadyExists quando o par serviço/profissional já está vinculado
func (r *professionalRepository) Link(ctx context.Context, link *domain.ServiceProfessional) error {
	query, args, err := squirrel.
		Insert(serviceProfessionalsTable).
		Columns("establishment_id", "service_id", "professional_id").
		Values(link.EstablishmentID, link.ServiceID, link.ProfessionalID).
		Suffix("RETURNING id").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if err := r.conn.QueryRowContext(ctx, query, args...).Scan(&link.ID); err != nil {
		return insertError("vínculo", err)
	}

	return nil
}

// Unlink remove o vínculo apenas dentro do estabelecimento informado
func (r *professionalRepository) Unlink(ctx context.Context, establishmentID, linkID string) error {
	query, args, err := squirrel.
		Delete(serviceProfessionalsTable).
		Where(squirrel.Eq{"establishment_id": establishmentID, "id": linkID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	result, err := r.conn.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("erro ao remover vínculo: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("erro ao verificar linhas afetadas: %w", err)
	}
	if affected == 0 {
		return ErrNoRowsAffected
	}

	return nil
}

func scanProfessional(row rowScanner) (*domain.Professional, error) {
	var professional domain.Professional
	if err := row.Scan(
		&professional.ID,
		&professional.EstablishmentID,
		&professional.Name,
		&professional.Active,
	); err != nil {
		return nil, err
	}
	return &professional, nil
}
