package roster

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/salon-manager-api/infrastructure/repository"
	"github.com/vfg2006/salon-manager-api/infrastructure/repository/mocks"
	"github.com/vfg2006/salon-manager-api/internal/config"
	"github.com/vfg2006/salon-manager-api/internal/domain"
	"go.uber.org/mock/gomock"
)

type rosterMocks struct {
	clients       *mocks.MockClientRepository
	services      *mocks.MockServiceRepository
	professionals *mocks.MockProfessionalRepository
	appointments  *mocks.MockAppointmentRepository
	settings      *mocks.MockSettingsRepository
}

func newTestService(t *testing.T, now time.Time) (*Service, rosterMocks) {
	ctrl := gomock.NewController(t)

	m := rosterMocks{
		clients:       mocks.NewMockClientRepository(ctrl),
		services:      mocks.NewMockServiceRepository(ctrl),
		professionals: mocks.NewMockProfessionalRepository(ctrl),
		appointments:  mocks.NewMockAppointmentRepository(ctrl),
		settings:      mocks.NewMockSettingsRepository(ctrl),
	}

	cfg := &config.Config{
		App:     config.App{Location: time.UTC},
		Metrics: config.Metrics{DefaultInactiveDays: 20},
	}

	service := NewService(cfg, m.clients, m.services, m.professionals, m.appointments, m.settings)
	service.now = func() time.Time { return now }

	return service, m
}

func day(d int) *time.Time {
	t := time.Date(2024, 3, d, 10, 0, 0, 0, time.UTC)
	return &t
}

func strPtr(s string) *string {
	return &s
}

func TestService_ListClients(t *testing.T) {
	now := time.Date(2024, 3, 31, 12, 0, 0, 0, time.UTC)
	roster := func() []*domain.Client {
		return []*domain.Client{
			{ID: "antigo", CreatedAt: time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC), LastServiceDate: day(5)},
			{ID: "novo", CreatedAt: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), LastServiceDate: day(20)},
			{ID: "nunca", CreatedAt: time.Date(2023, 6, 1, 0, 0, 0, 0, time.UTC)},
		}
	}

	t.Run("sem filtro ordena do cadastro mais recente", func(t *testing.T) {
		service, m := newTestService(t, now)
		m.clients.EXPECT().ListByEstablishment(gomock.Any(), "est-1").Return(roster(), nil)

		clients, err := service.ListClients(context.Background(), "est-1", "")
		require.NoError(t, err)

		ids := make([]string, 0, len(clients))
		for _, c := range clients {
			ids = append(ids, c.ID)
		}
		assert.Equal(t, []string{"novo", "nunca", "antigo"}, ids)
	})

	t.Run("inativos usam o limite padrão sem configuração", func(t *testing.T) {
		service, m := newTestService(t, now)
		m.clients.EXPECT().ListByEstablishment(gomock.Any(), "est-1").Return(roster(), nil)
		m.settings.EXPECT().GetByEstablishment(gomock.Any(), "est-1").Return(nil, nil)

		clients, err := service.ListClients(context.Background(), "est-1", domain.ClientFilterInactive)
		require.NoError(t, err)

		// corte em 11/03: quem veio em 05/03 e quem nunca veio
		require.Len(t, clients, 2)
		assert.Equal(t, "nunca", clients[0].ID)
		assert.Equal(t, "antigo", clients[1].ID)
	})

	t.Run("inativos respeitam o limite do estabelecimento", func(t *testing.T) {
		service, m := newTestService(t, now)
		m.clients.EXPECT().ListByEstablishment(gomock.Any(), "est-1").Return(roster(), nil)
		m.settings.EXPECT().GetByEstablishment(gomock.Any(), "est-1").
			Return(&domain.Settings{EstablishmentID: "est-1", InactiveDaysThreshold: 30}, nil)

		clients, err := service.ListClients(context.Background(), "est-1", domain.ClientFilterInactive)
		require.NoError(t, err)

		require.Len(t, clients, 1)
		assert.Equal(t, "nunca", clients[0].ID)
	})

	t.Run("filtro desconhecido", func(t *testing.T) {
		service, _ := newTestService(t, now)

		_, err := service.ListClients(context.Background(), "est-1", "vip")
		assert.ErrorIs(t, err, ErrInvalidFilter)
	})

	t.Run("erro do repositório", func(t *testing.T) {
		service, m := newTestService(t, now)
		m.clients.EXPECT().ListByEstablishment(gomock.Any(), "est-1").Return(nil, errors.New("conexão perdida"))

		_, err := service.ListClients(context.Background(), "est-1", "")
		assert.Error(t, err)
	})
}

func TestService_CreateClient(t *testing.T) {
	tests := []struct {
		name    string
		req     *domain.CreateClientRequest
		repoErr error
		wantErr error
	}{
		{name: "sem nome", req: &domain.CreateClientRequest{Name: "  ", Phone: "11999990000"}, wantErr: ErrMissingRequiredData},
		{name: "sem telefone", req: &domain.CreateClientRequest{Name: "Ana"}, wantErr: ErrMissingRequiredData},
		{name: "telefone duplicado", req: &domain.CreateClientRequest{Name: "Ana", Phone: "11999990000"}, repoErr: repository.ErrAlreadyExists, wantErr: ErrClientAlreadyExists},
		{name: "cadastro válido", req: &domain.CreateClientRequest{Name: " Ana ", Phone: "11999990000", Notes: strPtr("alergia a amônia")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, m := newTestService(t, time.Now())

			if tt.wantErr == nil || tt.repoErr != nil {
				m.clients.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, c *domain.Client) error {
					assert.Equal(t, "est-1", c.EstablishmentID)
					assert.Equal(t, "Ana", c.Name)
					c.ID = "c1"
					return tt.repoErr
				})
			}

			client, err := service.CreateClient(context.Background(), "est-1", tt.req)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, "c1", client.ID)
			assert.Equal(t, "alergia a amônia", *client.Notes)
		})
	}
}

func TestService_CreateService(t *testing.T) {
	t.Run("validações", func(t *testing.T) {
		service, _ := newTestService(t, time.Now())

		_, err := service.CreateService(context.Background(), "est-1", &domain.CreateServiceRequest{DurationMinutes: 30})
		assert.ErrorIs(t, err, ErrMissingRequiredData)

		_, err = service.CreateService(context.Background(), "est-1", &domain.CreateServiceRequest{
			Name: "Corte", Price: decimal.NewFromInt(-1), DurationMinutes: 30,
		})
		assert.ErrorIs(t, err, ErrInvalidPrice)

		_, err = service.CreateService(context.Background(), "est-1", &domain.CreateServiceRequest{
			Name: "Corte", Price: decimal.NewFromInt(50),
		})
		assert.ErrorIs(t, err, ErrInvalidDuration)
	})

	t.Run("ativo por padrão", func(t *testing.T) {
		service, m := newTestService(t, time.Now())
		m.services.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, s *domain.Service) error {
			s.ID = "svc-1"
			return nil
		})

		created, err := service.CreateService(context.Background(), "est-1", &domain.CreateServiceRequest{
			Name: "Corte", Price: decimal.NewFromInt(50), DurationMinutes: 30,
		})
		require.NoError(t, err)
		assert.Equal(t, "svc-1", created.ID)
		assert.True(t, created.Active)
	})
}

func TestService_CreateProfessional(t *testing.T) {
	service, m := newTestService(t, time.Now())

	_, err := service.CreateProfessional(context.Background(), "est-1", &domain.CreateProfessionalRequest{})
	assert.ErrorIs(t, err, ErrMissingRequiredData)

	inactive := false
	m.professionals.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, p *domain.Professional) error {
		p.ID = "pro-1"
		return nil
	})

	professional, err := service.CreateProfessional(context.Background(), "est-1", &domain.CreateProfessionalRequest{Name: "Bia", Active: &inactive})
	require.NoError(t, err)
	assert.Equal(t, "pro-1", professional.ID)
	assert.False(t, professional.Active)
}

func TestService_LinkProfessional(t *testing.T) {
	req := &domain.LinkProfessionalRequest{ServiceID: "svc-1", ProfessionalID: "pro-1"}

	t.Run("serviço de outro estabelecimento", func(t *testing.T) {
		service, m := newTestService(t, time.Now())
		m.services.EXPECT().GetByID(gomock.Any(), "est-1", "svc-1").Return(nil, nil)

		_, err := service.LinkProfessional(context.Background(), "est-1", req)
		assert.ErrorIs(t, err, ErrServiceNotFound)
	})

	t.Run("profissional inexistente", func(t *testing.T) {
		service, m := newTestService(t, time.Now())
		m.services.EXPECT().GetByID(gomock.Any(), "est-1", "svc-1").Return(&domain.Service{ID: "svc-1"}, nil)
		m.professionals.EXPECT().GetByID(gomock.Any(), "est-1", "pro-1").Return(nil, nil)

		_, err := service.LinkProfessional(context.Background(), "est-1", req)
		assert.ErrorIs(t, err, ErrProfessionalNotFound)
	})

	t.Run("vínculo repetido", func(t *testing.T) {
		service, m := newTestService(t, time.Now())
		m.services.EXPECT().GetByID(gomock.Any(), "est-1", "svc-1").Return(&domain.Service{ID: "svc-1"}, nil)
		m.professionals.EXPECT().GetByID(gomock.Any(), "est-1", "pro-1").Return(&domain.Professional{ID: "pro-1"}, nil)
		m.professionals.EXPECT().Link(gomock.Any(), gomock.Any()).Return(repository.ErrAlreadyExists)

		_, err := service.LinkProfessional(context.Background(), "est-1", req)
		assert.ErrorIs(t, err, ErrAlreadyLinked)
	})

	t.Run("vínculo criado", func(t *testing.T) {
		service, m := newTestService(t, time.Now())
		m.services.EXPECT().GetByID(gomock.Any(), "est-1", "svc-1").Return(&domain.Service{ID: "svc-1"}, nil)
		m.professionals.EXPECT().GetByID(gomock.Any(), "est-1", "pro-1").Return(&domain.Professional{ID: "pro-1"}, nil)
		m.professionals.EXPECT().Link(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, l *domain.ServiceProfessional) error {
			l.ID = "link-1"
			return nil
		})

		link, err := service.LinkProfessional(context.Background(), "est-1", req)
		require.NoError(t, err)
		assert.Equal(t, "link-1", link.ID)
		assert.Equal(t, "est-1", link.EstablishmentID)
	})

	t.Run("ids ausentes", func(t *testing.T) {
		service, _ := newTestService(t, time.Now())

		_, err := service.LinkProfessional(context.Background(), "est-1", &domain.LinkProfessionalRequest{ServiceID: "svc-1"})
		assert.ErrorIs(t, err, ErrMissingRequiredData)
	})
}

func TestService_UnlinkProfessional(t *testing.T) {
	service, m := newTestService(t, time.Now())

	m.professionals.EXPECT().Unlink(gomock.Any(), "est-1", "link-1").Return(nil)
	assert.NoError(t, service.UnlinkProfessional(context.Background(), "est-1", "link-1"))

	m.professionals.EXPECT().Unlink(gomock.Any(), "est-1", "link-2").Return(repository.ErrNoRowsAffected)
	assert.ErrorIs(t, service.UnlinkProfessional(context.Background(), "est-1", "link-2"), ErrLinkNotFound)

	assert.ErrorIs(t, service.UnlinkProfessional(context.Background(), "est-1", ""), ErrMissingRequiredData)
}

func TestService_Agenda(t *testing.T) {
	period := domain.DayPeriod(time.Date(2024, 3, 14, 12, 0, 0, 0, time.UTC), time.UTC)

	t.Run("resolve nomes e ordena por horário", func(t *testing.T) {
		service, m := newTestService(t, time.Now())

		m.appointments.EXPECT().ListByPeriod(gomock.Any(), "est-1", period).Return([]*domain.Appointment{
			{ID: "a2", ClientID: "c1", ServiceID: "cut", ProfessionalID: strPtr("pro-9"), AppointmentDate: time.Date(2024, 3, 14, 15, 0, 0, 0, time.UTC)},
			{ID: "a1", ClientID: "c9", ServiceID: "cut", ProfessionalID: strPtr("pro-1"), AppointmentDate: time.Date(2024, 3, 14, 9, 0, 0, 0, time.UTC)},
			{ID: "a3", ClientID: "c1", ServiceID: "gone", AppointmentDate: time.Date(2024, 3, 14, 18, 0, 0, 0, time.UTC)},
		}, nil)
		m.services.EXPECT().ListByEstablishment(gomock.Any(), "est-1").Return([]*domain.Service{{ID: "cut", Name: "Corte"}}, nil)
		m.professionals.EXPECT().ListByEstablishment(gomock.Any(), "est-1").Return([]*domain.Professional{{ID: "pro-1", Name: "Bia"}}, nil)
		m.clients.EXPECT().ListByEstablishment(gomock.Any(), "est-1").Return([]*domain.Client{{ID: "c1", Name: "Ana"}}, nil)

		agenda, err := service.Agenda(context.Background(), "est-1", period)
		require.NoError(t, err)
		require.Len(t, agenda.Entries, 3)

		first := agenda.Entries[0]
		assert.Equal(t, "a1", first.ID)
		assert.Equal(t, domain.UnknownName, first.ClientName)
		assert.Equal(t, "Corte", first.ServiceName)
		assert.Equal(t, "Bia", *first.ProfessionalName)

		assert.Equal(t, "Ana", agenda.Entries[1].ClientName)
		assert.Equal(t, domain.UnknownName, *agenda.Entries[1].ProfessionalName)

		last := agenda.Entries[2]
		assert.Equal(t, domain.UnknownName, last.ServiceName)
		assert.Nil(t, last.ProfessionalName)
	})

	t.Run("falha em qualquer leitura interrompe a agenda", func(t *testing.T) {
		service, m := newTestService(t, time.Now())

		m.appointments.EXPECT().ListByPeriod(gomock.Any(), "est-1", period).Return(nil, errors.New("timeout"))
		m.services.EXPECT().ListByEstablishment(gomock.Any(), "est-1").Return(nil, nil).AnyTimes()
		m.professionals.EXPECT().ListByEstablishment(gomock.Any(), "est-1").Return(nil, nil).AnyTimes()
		m.clients.EXPECT().ListByEstablishment(gomock.Any(), "est-1").Return(nil, nil).AnyTimes()

		_, err := service.Agenda(context.Background(), "est-1", period)
		assert.Error(t, err)
	})

	t.Run("período invertido", func(t *testing.T) {
		service, _ := newTestService(t, time.Now())

		_, err := service.Agenda(context.Background(), "est-1", domain.NewPeriod(period.End, period.Start))
		assert.ErrorIs(t, err, ErrInvalidPeriod)
	})
}
