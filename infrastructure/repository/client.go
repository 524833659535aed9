package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/shopspring/decimal"
	"github.com/vfg2006/salon-manager-api/infrastructure/database/postgres"
	"github.com/vfg2006/salon-manager-api/internal/domain"
)

const clientsTable = "clients"

var clientColumns = []string{
	"id", "establishment_id", "name", "COALESCE(phone, '')", "email", "birth_date", "notes",
	"created_at", "last_service_date", "COALESCE(visit_count, 0)", "COALESCE(total_spent, 0)",
}

type ClientRepository interface {
	ListByEstablishment(ctx context.Context, establishmentID string) ([]*domain.Client, error)
	GetByID(ctx context.Context, establishmentID, clientID string) (*domain.Client, error)
	AdvanceLastService(ctx context.Context, tx *sql.Tx, establishmentID, clientID string, at time.Time, amount decimal.Decimal) error
	Create(ctx context.Context, client *domain.Client) error
}

type clientRepository struct {
	conn *postgres.Connection
}

func NewClientRepository(conn *postgres.Connection) ClientRepository {
	return &clientRepository{
		conn: conn,
	}
}

// ListByEstablishment retorna o cadastro completo em ordem alfabética
func (r *clientRepository) ListByEstablishment(ctx context.Context, establishmentID string) ([]*domain.Client, error) {
	query, args, err := squirrel.
		Select(clientColumns...).
		From(clientsTable).
		Where(squirrel.Eq{"establishment_id": establishmentID}).
		OrderBy("name ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query de clientes: %w", err)
	}
	defer rows.Close()

	clients := make([]*domain.Client, 0)
	for rows.Next() {
		client, err := scanClient(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear cliente: %w", err)
		}
		clients = append(clients, client)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return clients, nil
}

func (r *clientRepository) GetByID(ctx context.Context, establishmentID, clientID string) (*domain.Client, error) {
	query, args, err := squirrel.
		Select(clientColumns...).
		From(clientsTable).
		Where(squirrel.Eq{"establishment_id": establishmentID, "id": clientID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	client, err := scanClient(r.conn.QueryRowContext(ctx, query, args...))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear cliente: %w", err)
	}

	return client, nil
}

// AdvanceLastService registra um atendimento no cliente. last_service_date nunca retrocede.
func (r *clientRepository) AdvanceLastService(ctx context.Context, tx *sql.Tx, establishmentID, clientID string, at time.Time, amount decimal.Decimal) error {
	query, args, err := squirrel.
		Update(clientsTable).
		Set("last_service_date", squirrel.Expr("GREATEST(COALESCE(last_service_date, ?), ?)", at, at)).
		Set("visit_count", squirrel.Expr("COALESCE(visit_count, 0) + 1")).
		Set("total_spent", squirrel.Expr("COALESCE(total_spent, 0) + ?", amount)).
		Where(squirrel.Eq{"establishment_id": establishmentID, "id": clientID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	result, err := tx.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("erro ao atualizar último atendimento: %w", err)
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

// Create cadastra o cliente sem histórico de atendimentos
func (r *clientRepository) Create(ctx context.Context, client *domain.Client) error {
	query, args, err := squirrel.
		Insert(clientsTable).
		Columns("establishment_id", "name", "phone", "email", "birth_date", "notes").
		Values(client.EstablishmentID, client.Name, client.Phone, client.Email, client.BirthDate, client.Notes).
		Suffix("RETURNING id, created_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if err := r.conn.QueryRowContext(ctx, query, args...).Scan(&client.ID, &client.CreatedAt); err != nil {
		return insertError("cliente", err)
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanClient(row rowScanner) (*domain.Client, error) {
	var client domain.Client
	if err := row.Scan(
		&client.ID,
		&client.EstablishmentID,
		&client.Name,
		&client.Phone,
		&client.Email,
		&client.BirthDate,
		&client.Notes,
		&client.CreatedAt,
		&client.LastServiceDate,
		&client.VisitCount,
		&client.TotalSpent,
	); err != nil {
		return nil, err
	}
	return &client, nil
}
