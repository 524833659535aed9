package records

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/salon-manager-api/infrastructure/repository/mocks"
	"github.com/vfg2006/salon-manager-api/internal/config"
	"github.com/vfg2006/salon-manager-api/internal/domain"
	"go.uber.org/mock/gomock"
)

// fakeTransactor executa a função sem banco e registra se houve rollback
type fakeTransactor struct {
	calls      int
	rolledBack bool
}

func (f *fakeTransactor) RunInTransaction(_ context.Context, fn func(*sql.Tx) error) error {
	f.calls++
	if err := fn(nil); err != nil {
		f.rolledBack = true
		return err
	}
	return nil
}

type recordsMocks struct {
	tx       *fakeTransactor
	sales    *mocks.MockSaleRepository
	clients  *mocks.MockClientRepository
	services *mocks.MockServiceRepository
	goals    *mocks.MockGoalRepository
	settings *mocks.MockSettingsRepository
}

func newTestService(t *testing.T) (*Service, recordsMocks) {
	ctrl := gomock.NewController(t)

	m := recordsMocks{
		tx:       &fakeTransactor{},
		sales:    mocks.NewMockSaleRepository(ctrl),
		clients:  mocks.NewMockClientRepository(ctrl),
		services: mocks.NewMockServiceRepository(ctrl),
		goals:    mocks.NewMockGoalRepository(ctrl),
		settings: mocks.NewMockSettingsRepository(ctrl),
	}

	cfg := &config.Config{Metrics: config.Metrics{DefaultInactiveDays: 20}}

	return NewService(cfg, m.tx, m.sales, m.clients, m.services, m.goals, m.settings), m
}

func validSaleRequest() *domain.RegisterSaleRequest {
	date := time.Date(2024, 3, 10, 15, 0, 0, 0, time.UTC)
	return &domain.RegisterSaleRequest{
		ClientID:      "c1",
		ServiceID:     "cut",
		Amount:        decimal.NewFromInt(60),
		SaleDate:      &date,
		PaymentMethod: "pix",
	}
}

func TestService_RegisterSale(t *testing.T) {
	ctx := context.Background()

	t.Run("grava a venda e avança o cliente", func(t *testing.T) {
		service, m := newTestService(t)
		req := validSaleRequest()

		m.clients.EXPECT().GetByID(ctx, "est-1", "c1").Return(&domain.Client{ID: "c1"}, nil)
		m.services.EXPECT().GetByID(ctx, "est-1", "cut").Return(&domain.Service{ID: "cut"}, nil)
		m.sales.EXPECT().Create(ctx, gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, _ *sql.Tx, sale *domain.Sale) error {
				sale.ID = "sale-1"
				return nil
			})
		m.clients.EXPECT().AdvanceLastService(ctx, gomock.Any(), "est-1", "c1", *req.SaleDate, req.Amount).Return(nil)

		sale, err := service.RegisterSale(ctx, "est-1", req)
		require.NoError(t, err)
		assert.Equal(t, "sale-1", sale.ID)
		assert.Equal(t, "pix", *sale.PaymentMethod)
		assert.Equal(t, 1, m.tx.calls)
		assert.False(t, m.tx.rolledBack)
	})

	t.Run("falha ao avançar o cliente desfaz a transação", func(t *testing.T) {
		service, m := newTestService(t)
		req := validSaleRequest()

		m.clients.EXPECT().GetByID(ctx, "est-1", "c1").Return(&domain.Client{ID: "c1"}, nil)
		m.services.EXPECT().GetByID(ctx, "est-1", "cut").Return(&domain.Service{ID: "cut"}, nil)
		m.sales.EXPECT().Create(ctx, gomock.Any(), gomock.Any()).Return(nil)
		m.clients.EXPECT().AdvanceLastService(ctx, gomock.Any(), "est-1", "c1", gomock.Any(), gomock.Any()).
			Return(errors.New("deadlock"))

		sale, err := service.RegisterSale(ctx, "est-1", req)
		assert.Nil(t, sale)
		assert.Error(t, err)
		assert.True(t, m.tx.rolledBack)
	})

	t.Run("validações", func(t *testing.T) {
		tests := []struct {
			name   string
			mutate func(req *domain.RegisterSaleRequest)
			want   error
		}{
			{name: "sem cliente", mutate: func(r *domain.RegisterSaleRequest) { r.ClientID = "" }, want: ErrMissingRequiredData},
			{name: "sem serviço", mutate: func(r *domain.RegisterSaleRequest) { r.ServiceID = "" }, want: ErrMissingRequiredData},
			{name: "sem forma de pagamento", mutate: func(r *domain.RegisterSaleRequest) { r.PaymentMethod = "  " }, want: ErrMissingRequiredData},
			{name: "sem data", mutate: func(r *domain.RegisterSaleRequest) { r.SaleDate = nil }, want: ErrMissingRequiredData},
			{name: "valor zero", mutate: func(r *domain.RegisterSaleRequest) { r.Amount = decimal.Zero }, want: ErrInvalidAmount},
			{name: "valor negativo", mutate: func(r *domain.RegisterSaleRequest) { r.Amount = decimal.NewFromInt(-5) }, want: ErrInvalidAmount},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				service, m := newTestService(t)
				req := validSaleRequest()
				tt.mutate(req)

				_, err := service.RegisterSale(ctx, "est-1", req)
				assert.ErrorIs(t, err, tt.want)
				assert.Equal(t, 0, m.tx.calls)
			})
		}
	})

	t.Run("cliente de outro estabelecimento", func(t *testing.T) {
		service, m := newTestService(t)

		m.clients.EXPECT().GetByID(ctx, "est-1", "c1").Return(nil, nil)

		_, err := service.RegisterSale(ctx, "est-1", validSaleRequest())
		assert.ErrorIs(t, err, ErrClientNotFound)
	})
}

func TestService_SetMonthlyGoal(t *testing.T) {
	ctx := context.Background()

	t.Run("salva a meta", func(t *testing.T) {
		service, m := newTestService(t)

		m.goals.EXPECT().Upsert(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, goal *domain.Goal) error {
			goal.ID = "goal-1"
			return nil
		})

		goal, err := service.SetMonthlyGoal(ctx, "est-1", &domain.SetGoalRequest{Month: 3, Year: 2024, TargetAmount: decimal.NewFromInt(5000)})
		require.NoError(t, err)
		assert.Equal(t, "goal-1", goal.ID)
		assert.Equal(t, "est-1", goal.EstablishmentID)
	})

	t.Run("mês inválido", func(t *testing.T) {
		service, _ := newTestService(t)

		_, err := service.SetMonthlyGoal(ctx, "est-1", &domain.SetGoalRequest{Month: 13, Year: 2024})
		assert.ErrorIs(t, err, ErrInvalidMonth)
	})

	t.Run("meta negativa", func(t *testing.T) {
		service, _ := newTestService(t)

		_, err := service.SetMonthlyGoal(ctx, "est-1", &domain.SetGoalRequest{Month: 3, Year: 2024, TargetAmount: decimal.NewFromInt(-1)})
		assert.ErrorIs(t, err, ErrInvalidTarget)
	})
}

func TestService_Settings(t *testing.T) {
	ctx := context.Background()

	t.Run("padrão quando não há configuração", func(t *testing.T) {
		service, m := newTestService(t)

		m.settings.EXPECT().GetByEstablishment(ctx, "est-1").Return(nil, nil)

		settings, err := service.GetSettings(ctx, "est-1")
		require.NoError(t, err)
		assert.Equal(t, 20, settings.InactiveDaysThreshold)
	})

	t.Run("limite precisa ser positivo", func(t *testing.T) {
		service, _ := newTestService(t)

		_, err := service.SetInactiveDaysThreshold(ctx, "est-1", 0)
		assert.ErrorIs(t, err, ErrInvalidThreshold)
	})

	t.Run("salva o limite", func(t *testing.T) {
		service, m := newTestService(t)

		m.settings.EXPECT().Upsert(ctx, &domain.Settings{EstablishmentID: "est-1", InactiveDaysThreshold: 30}).Return(nil)

		settings, err := service.SetInactiveDaysThreshold(ctx, "est-1", 30)
		require.NoError(t, err)
		assert.Equal(t, 30, settings.InactiveDaysThreshold)
	})
}
