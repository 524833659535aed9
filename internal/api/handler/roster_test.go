package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/salon-manager-api/internal/domain"
	"github.com/vfg2006/salon-manager-api/internal/usecases/roster"
	"github.com/vfg2006/salon-manager-api/pkg/apiErrors"
)

type fakeRoster struct {
	err        error
	filter     string
	period     domain.Period
	unlinkedID string
}

func (f *fakeRoster) ListClients(_ context.Context, est, filter string) ([]*domain.Client, error) {
	f.filter = filter
	return []*domain.Client{{ID: "c1", EstablishmentID: est, Name: "Ana"}}, f.err
}

func (f *fakeRoster) CreateClient(_ context.Context, est string, req *domain.CreateClientRequest) (*domain.Client, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &domain.Client{ID: "c2", EstablishmentID: est, Name: req.Name, Phone: req.Phone}, nil
}

func (f *fakeRoster) ListServices(context.Context, string) ([]*domain.Service, error) {
	return nil, f.err
}

func (f *fakeRoster) CreateService(_ context.Context, est string, req *domain.CreateServiceRequest) (*domain.Service, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &domain.Service{ID: "svc-1", EstablishmentID: est, Name: req.Name, Active: true}, nil
}

func (f *fakeRoster) ListProfessionals(context.Context, string) ([]*domain.Professional, error) {
	return nil, f.err
}

func (f *fakeRoster) CreateProfessional(_ context.Context, est string, req *domain.CreateProfessionalRequest) (*domain.Professional, error) {
	return &domain.Professional{ID: "pro-1", EstablishmentID: est, Name: req.Name}, f.err
}

func (f *fakeRoster) ListServiceProfessionals(context.Context, string) ([]*domain.ServiceProfessional, error) {
	return nil, f.err
}

func (f *fakeRoster) LinkProfessional(_ context.Context, est string, req *domain.LinkProfessionalRequest) (*domain.ServiceProfessional, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &domain.ServiceProfessional{ID: "link-1", EstablishmentID: est, ServiceID: req.ServiceID, ProfessionalID: req.ProfessionalID}, nil
}

func (f *fakeRoster) UnlinkProfessional(_ context.Context, _, linkID string) error {
	f.unlinkedID = linkID
	return f.err
}

func (f *fakeRoster) Agenda(_ context.Context, _ string, period domain.Period) (*domain.Agenda, error) {
	f.period = period
	if f.err != nil {
		return nil, f.err
	}
	return &domain.Agenda{Period: period, Entries: []domain.AgendaEntry{}}, nil
}

func TestRoster_Clients(t *testing.T) {
	t.Run("repassa o filtro de inativos", func(t *testing.T) {
		fake := &fakeRoster{}
		req := httptest.NewRequest(http.MethodGet, "/v1/clients?filter=inactive", nil)

		rec := serve(Roster(fake, time.UTC), req, ownerClaims)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, domain.ClientFilterInactive, fake.filter)
		assert.Contains(t, rec.Body.String(), `"establishment_id":"est-1"`)
	})

	t.Run("filtro desconhecido", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/v1/clients?filter=vip", nil)

		rec := serve(Roster(&fakeRoster{err: roster.ErrInvalidFilter}, time.UTC), req, ownerClaims)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, apiErrors.ErrInvalidFormat, decodeAPIError(t, rec).Code)
	})

	t.Run("cadastra cliente", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/v1/clients", strings.NewReader(`{"name":"Ana","phone":"11999990000"}`))

		rec := serve(Roster(&fakeRoster{}, time.UTC), req, ownerClaims)

		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.Contains(t, rec.Body.String(), `"phone":"11999990000"`)
	})

	t.Run("cliente sem telefone", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/v1/clients", strings.NewReader(`{"name":"Ana"}`))

		rec := serve(Roster(&fakeRoster{err: roster.ErrMissingRequiredData}, time.UTC), req, ownerClaims)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, apiErrors.ErrMissingRequiredData, decodeAPIError(t, rec).Code)
	})

	t.Run("sem autenticação", func(t *testing.T) {
		rec := serve(Roster(&fakeRoster{}, time.UTC), httptest.NewRequest(http.MethodGet, "/v1/clients", nil), nil)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestRoster_Catalog(t *testing.T) {
	t.Run("preço negativo", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/v1/services", strings.NewReader(`{"name":"Corte","price":"-1","duration_minutes":30}`))

		rec := serve(Roster(&fakeRoster{err: roster.ErrInvalidPrice}, time.UTC), req, ownerClaims)

		assert.Equal(t, apiErrors.ErrInvalidFormat, decodeAPIError(t, rec).Code)
	})

	t.Run("vínculo duplicado", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/v1/service-professionals", strings.NewReader(`{"service_id":"svc-1","professional_id":"pro-1"}`))

		rec := serve(Roster(&fakeRoster{err: roster.ErrAlreadyLinked}, time.UTC), req, ownerClaims)

		assert.Equal(t, http.StatusConflict, rec.Code)
		assert.Equal(t, apiErrors.ErrAlreadyExists, decodeAPIError(t, rec).Code)
	})

	t.Run("profissional de outro estabelecimento", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/v1/service-professionals", strings.NewReader(`{"service_id":"svc-1","professional_id":"pro-9"}`))

		rec := serve(Roster(&fakeRoster{err: roster.ErrProfessionalNotFound}, time.UTC), req, ownerClaims)

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, apiErrors.ErrNotFound, decodeAPIError(t, rec).Code)
	})

	t.Run("desvincula pelo id da rota", func(t *testing.T) {
		fake := &fakeRoster{}
		req := httptest.NewRequest(http.MethodDelete, "/v1/service-professionals/link-7", nil)

		rec := serve(Roster(fake, time.UTC), req, ownerClaims)

		assert.Equal(t, http.StatusNoContent, rec.Code)
		assert.Equal(t, "link-7", fake.unlinkedID)
		assert.Zero(t, rec.Body.Len())
	})

	t.Run("vínculo inexistente", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodDelete, "/v1/service-professionals/link-7", nil)

		rec := serve(Roster(&fakeRoster{err: roster.ErrLinkNotFound}, time.UTC), req, ownerClaims)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestRoster_Agenda(t *testing.T) {
	t.Run("período informado", func(t *testing.T) {
		fake := &fakeRoster{}
		req := httptest.NewRequest(http.MethodGet, "/v1/agenda?start_date=2024-03-14&end_date=2024-03-14", nil)

		rec := serve(Roster(fake, time.UTC), req, ownerClaims)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.True(t, fake.period.Start.Equal(time.Date(2024, 3, 14, 0, 0, 0, 0, time.UTC)))
		assert.True(t, fake.period.End.Equal(time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC).Add(-time.Nanosecond)))
	})

	t.Run("período inválido", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/v1/agenda?start_date=2024-03-20&end_date=2024-03-14", nil)

		rec := serve(Roster(&fakeRoster{}, time.UTC), req, ownerClaims)

		assert.Equal(t, apiErrors.ErrInvalidPeriod, decodeAPIError(t, rec).Code)
	})

	t.Run("sem datas usa a próxima semana", func(t *testing.T) {
		fake := &fakeRoster{}

		rec := serve(Roster(fake, time.UTC), httptest.NewRequest(http.MethodGet, "/v1/agenda", nil), ownerClaims)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.True(t, fake.period.IsValid())
		assert.Equal(t, 7*24*time.Hour-time.Nanosecond, fake.period.Length())
	})
}

func TestAgendaWindow(t *testing.T) {
	loc, err := time.LoadLocation("America/Sao_Paulo")
	require.NoError(t, err)

	// 01h UTC de 15/03 ainda é 14/03 em São Paulo
	window := agendaWindow(time.Date(2024, 3, 15, 1, 0, 0, 0, time.UTC), loc)

	assert.True(t, window.Start.Equal(time.Date(2024, 3, 14, 0, 0, 0, 0, loc)), window.Start)
	assert.True(t, window.End.Equal(time.Date(2024, 3, 21, 0, 0, 0, 0, loc).Add(-time.Nanosecond)), window.End)
}
