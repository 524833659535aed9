package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
	"github.com/vfg2006/salon-manager-api/infrastructure/database/postgres"
	"github.com/vfg2006/salon-manager-api/internal/domain"
)

const salesTable = "sales"

type SaleRepository interface {
	ListByPeriod(ctx context.Context, establishmentID string, period domain.Period) ([]*domain.Sale, error)
	SumByPeriod(ctx context.Context, establishmentID string, period domain.Period) (decimal.Decimal, error)
	Create(ctx context.Context, tx *sql.Tx, sale *domain.Sale) error
}

type saleRepository struct {
	conn *postgres.Connection
}

func NewSaleRepository(conn *postgres.Connection) SaleRepository {
	return &saleRepository{
		conn: conn,
	}
}

// ListByPeriod retorna as vendas com sale_date entre início e fim, inclusive
func (r *saleRepository) ListByPeriod(ctx context.Context, establishmentID string, period domain.Period) ([]*domain.Sale, error) {
	query, args, err := squirrel.
		Select("id", "establishment_id", "client_id", "service_id", "appointment_id",
			"COALESCE(amount, 0)", "sale_date", "payment_method", "notes", "created_at").
		From(salesTable).
		Where(squirrel.Eq{"establishment_id": establishmentID}).
		Where(squirrel.GtOrEq{"sale_date": period.Start}).
		Where(squirrel.LtOrEq{"sale_date": period.End}).
		OrderBy("sale_date ASC", "id ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query de vendas: %w", err)
	}
	defer rows.Close()

	sales := make([]*domain.Sale, 0)
	for rows.Next() {
		var sale domain.Sale
		if err := rows.Scan(
			&sale.ID,
			&sale.EstablishmentID,
			&sale.ClientID,
			&sale.ServiceID,
			&sale.AppointmentID,
			&sale.Amount,
			&sale.SaleDate,
			&sale.PaymentMethod,
			&sale.Notes,
			&sale.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("erro ao escanear venda: %w", err)
		}
		sales = append(sales, &sale)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return sales, nil
}

func (r *saleRepository) SumByPeriod(ctx context.Context, establishmentID string, period domain.Period) (decimal.Decimal, error) {
	query, args, err := squirrel.
		Select("COALESCE(SUM(amount), 0)").
		From(salesTable).
		Where(squirrel.Eq{"establishment_id": establishmentID}).
		Where(squirrel.GtOrEq{"sale_date": period.Start}).
		Where(squirrel.LtOrEq{"sale_date": period.End}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return decimal.Zero, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var total decimal.Decimal
	if err := r.conn.QueryRowContext(ctx, query, args...).Scan(&total); err != nil {
		return decimal.Zero, fmt.Errorf("erro ao somar vendas: %w", err)
	}

	return total, nil
}

// Create insere a venda dentro da transação informada
func (r *saleRepository) Create(ctx context.Context, tx *sql.Tx, sale *domain.Sale) error {
	query, args, err := squirrel.
		Insert(salesTable).
		Columns("establishment_id", "client_id", "service_id", "appointment_id",
			"amount", "sale_date", "payment_method", "notes").
		Values(sale.EstablishmentID, sale.ClientID, sale.ServiceID, sale.AppointmentID,
			sale.Amount, sale.SaleDate, sale.PaymentMethod, sale.Notes).
		Suffix("RETURNING id, created_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	err = tx.QueryRowContext(ctx, query, args...).Scan(&sale.ID, &sale.CreatedAt)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("erro ao inserir venda: %w", err)
	}

	return nil
}
