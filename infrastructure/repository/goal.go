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

const goalsTable = "goals"

var goalColumns = []string{
	"id", "establishment_id", "month", "year", "COALESCE(target_amount, 0)", "current_amount", "updated_at",
}

type GoalRepository interface {
	GetByMonth(ctx context.Context, establishmentID string, month, year int) (*domain.Goal, error)
	ListByMonth(ctx context.Context, month, year int) ([]*domain.Goal, error)
	Upsert(ctx context.Context, goal *domain.Goal) error
	UpdateCurrentAmount(ctx context.Context, goalID string, amount decimal.Decimal) error
}

type goalRepository struct {
	conn *postgres.Connection
}

func NewGoalRepository(conn *postgres.Connection) GoalRepository {
	return &goalRepository{
		conn: conn,
	}
}

// GetByMonth retorna nil quando o estabelecimento não tem meta no mês
func (r *goalRepository) GetByMonth(ctx context.Context, establishmentID string, month, year int) (*domain.Goal, error) {
	query, args, err := squirrel.
		Select(goalColumns...).
		From(goalsTable).
		Where(squirrel.Eq{"establishment_id": establishmentID, "month": month, "year": year}).
		Limit(1).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	goal, err := scanGoal(r.conn.QueryRowContext(ctx, query, args...))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear meta: %w", err)
	}

	return goal, nil
}

// ListByMonth retorna as metas de todos os estabelecimentos para o mês
func (r *goalRepository) ListByMonth(ctx context.Context, month, year int) ([]*domain.Goal, error) {
	query, args, err := squirrel.
		Select(goalColumns...).
		From(goalsTable).
		Where(squirrel.Eq{"month": month, "year": year}).
		OrderBy("establishment_id ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query de metas: %w", err)
	}
	defer rows.Close()

	goals := make([]*domain.Goal, 0)
	for rows.Next() {
		goal, err := scanGoal(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear meta: %w", err)
		}
		goals = append(goals, goal)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return goals, nil
}

// Upsert cria ou substitui o alvo da meta do mês, preservando o valor realizado
func (r *goalRepository) Upsert(ctx context.Context, goal *domain.Goal) error {
	query, args, err := squirrel.
		Insert(goalsTable).
		Columns("establishment_id", "month", "year", "target_amount").
		Values(goal.EstablishmentID, goal.Month, goal.Year, goal.TargetAmount).
		Suffix(`
			ON CONFLICT (establishment_id, month, year) DO UPDATE SET
				target_amount = EXCLUDED.target_amount,
				updated_at = NOW()
			RETURNING id, current_amount, updated_at
		`).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	err = r.conn.QueryRowContext(ctx, query, args...).Scan(&goal.ID, &goal.CurrentAmount, &goal.UpdatedAt)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("erro ao salvar meta: %w", err)
	}

	return nil
}

func (r *goalRepository) UpdateCurrentAmount(ctx context.Context, goalID string, amount decimal.Decimal) error {
	query, args, err := squirrel.
		Update(goalsTable).
		Set("current_amount", amount).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": goalID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := r.conn.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("erro ao atualizar valor realizado da meta: %w", err)
	}

	return nil
}

func scanGoal(row rowScanner) (*domain.Goal, error) {
	var goal domain.Goal
	if err := row.Scan(
		&goal.ID,
		&goal.EstablishmentID,
		&goal.Month,
		&goal.Year,
		&goal.TargetAmount,
		&goal.CurrentAmount,
		&goal.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &goal, nil
}
