package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Goal é a meta mensal de faturamento; existe no máximo uma por estabelecimento, mês e ano
type Goal struct {
	ID              string              `json:"id"`
	EstablishmentID string              `json:"establishment_id"`
	Month           int                 `json:"month"`
	Year            int                 `json:"year"`
	TargetAmount    decimal.Decimal     `json:"target_amount"`
	CurrentAmount   decimal.NullDecimal `json:"current_amount"`
	UpdatedAt       time.Time           `json:"updated_at"`
}

// Current retorna o valor realizado, tratando nulo como zero
func (g *Goal) Current() decimal.Decimal {
	if !g.CurrentAmount.Valid {
		return decimal.Zero
	}
	return g.CurrentAmount.Decimal
}

// Remaining nunca é negativo, mesmo com a meta superada
func (g *Goal) Remaining() decimal.Decimal {
	remaining := g.TargetAmount.Sub(g.Current())
	if remaining.IsNegative() {
		return decimal.Zero
	}
	return remaining
}

type SetGoalRequest struct {
	Month        int             `json:"month"`
	Year         int             `json:"year"`
	TargetAmount decimal.Decimal `json:"target_amount"`
}
