package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/salon-manager-api/internal/api/handler/router"
	"github.com/vfg2006/salon-manager-api/internal/domain"
	"github.com/vfg2006/salon-manager-api/internal/usecases/authenticating"
	"github.com/vfg2006/salon-manager-api/internal/usecases/booking"
	"github.com/vfg2006/salon-manager-api/internal/usecases/metrics"
	"github.com/vfg2006/salon-manager-api/internal/usecases/records"
	"github.com/vfg2006/salon-manager-api/pkg/apiErrors"
	"github.com/vfg2006/salon-manager-api/pkg/middleware"
)

type fakeAggregator struct {
	gotEstablishment string
	gotPeriod        domain.Period
	err              error
	// beforeReturn roda enquanto a faceta ainda está "buscando"
	beforeReturn func()
}

func (f *fakeAggregator) GetFinancialMetrics(_ context.Context, est string, p domain.Period) (*domain.FinancialMetrics, error) {
	f.gotEstablishment, f.gotPeriod = est, p
	if f.beforeReturn != nil {
		f.beforeReturn()
	}
	if f.err != nil {
		return nil, f.err
	}
	return &domain.FinancialMetrics{Period: p, Total: decimal.NewFromInt(300)}, nil
}

func (f *fakeAggregator) GetClientMetrics(_ context.Context, est string, p domain.Period) (*domain.ClientMetrics, error) {
	f.gotEstablishment, f.gotPeriod = est, p
	return nil, f.err
}

func (f *fakeAggregator) GetOperationalMetrics(_ context.Context, est string, p domain.Period) (*domain.OperationalMetrics, error) {
	f.gotEstablishment, f.gotPeriod = est, p
	return nil, f.err
}

func (f *fakeAggregator) GetInsights(_ context.Context, est string, p domain.Period) (*domain.InsightsMetrics, error) {
	f.gotEstablishment, f.gotPeriod = est, p
	return nil, f.err
}

type fakeBooker struct {
	err error
}

func (f fakeBooker) GetCatalog(context.Context, string) (*domain.Catalog, error) {
	return &domain.Catalog{}, f.err
}

func (f fakeBooker) GetAvailability(context.Context, string, string, string) (*domain.Availability, error) {
	return &domain.Availability{}, f.err
}

func (f fakeBooker) CreateBooking(_ context.Context, req *domain.BookingRequest) (*domain.BookingConfirmation, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &domain.BookingConfirmation{Code: "ABC-" + req.EstablishmentID}, nil
}

type fakeRecorder struct {
	err error
}

func (f fakeRecorder) RegisterSale(_ context.Context, est string, req *domain.RegisterSaleRequest) (*domain.Sale, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &domain.Sale{ID: "sale-1", EstablishmentID: est, Amount: req.Amount}, nil
}

func (f fakeRecorder) SetMonthlyGoal(context.Context, string, *domain.SetGoalRequest) (*domain.Goal, error) {
	return nil, f.err
}

func (f fakeRecorder) GetSettings(_ context.Context, est string) (*domain.Settings, error) {
	return &domain.Settings{EstablishmentID: est, InactiveDaysThreshold: 20}, f.err
}

func (f fakeRecorder) SetInactiveDaysThreshold(context.Context, string, int) (*domain.Settings, error) {
	return nil, f.err
}

type fakeAuthenticator struct {
	loginErr error
}

func (f fakeAuthenticator) CreateUser(context.Context, domain.Scope, *domain.User) (*domain.User, error) {
	return nil, nil
}

func (f fakeAuthenticator) ListUsers(context.Context, domain.Scope) ([]*domain.User, error) {
	return nil, nil
}

func (f fakeAuthenticator) LoginUser(context.Context, string, string) (string, error) {
	return "token", f.loginErr
}

func (f fakeAuthenticator) GetUserProfile(context.Context, string) (*domain.User, error) {
	return nil, nil
}

func (f fakeAuthenticator) ValidateToken(string) (*domain.Claims, error) {
	return nil, nil
}

type fakeCronJob struct {
	triggered int
}

func (f *fakeCronJob) TriggerManualSync() { f.triggered++ }

func (f *fakeCronJob) GetStatus() map[string]any { return map[string]any{"sync_enabled": true} }

func serve(routes []router.Route, req *http.Request, claims *domain.Claims) *httptest.ResponseRecorder {
	if claims != nil {
		req = req.WithContext(middleware.WithClaims(req.Context(), claims))
	}
	rec := httptest.NewRecorder()
	router.New(router.WithRoutes(routes...)).ServeHTTP(rec, req)
	return rec
}

func decodeAPIError(t *testing.T, rec *httptest.ResponseRecorder) apiErrors.APIError {
	var body apiErrors.APIError
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

var ownerClaims = &domain.Claims{UserID: "user-1", UserRole: domain.RoleEstablishment, EstablishmentID: "est-1"}

func TestMetrics_Financial(t *testing.T) {
	loc, err := time.LoadLocation("America/Sao_Paulo")
	require.NoError(t, err)

	t.Run("período inclusivo no fuso do estabelecimento", func(t *testing.T) {
		agg := &fakeAggregator{}
		req := httptest.NewRequest(http.MethodGet, "/v1/metrics/financial?start_date=2024-03-01&end_date=2024-03-31", nil)

		rec := serve(Metrics(agg, loc), req, ownerClaims)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "est-1", agg.gotEstablishment)
		assert.Equal(t, time.Date(2024, 3, 1, 0, 0, 0, 0, loc), agg.gotPeriod.Start)
		assert.Equal(t, time.Date(2024, 3, 31, 23, 59, 59, 999999999, loc), agg.gotPeriod.End)
		assert.Contains(t, rec.Body.String(), `"total":"300"`)
	})

	t.Run("falha de leitura responde MET_001 com a mensagem da faceta", func(t *testing.T) {
		agg := &fakeAggregator{err: &metrics.FetchError{Facet: domain.FacetFinancial, Err: errors.New("timeout")}}
		req := httptest.NewRequest(http.MethodGet, "/v1/metrics/financial?start_date=2024-03-01&end_date=2024-03-31", nil)

		rec := serve(Metrics(agg, loc), req, ownerClaims)

		assert.Equal(t, http.StatusBadGateway, rec.Code)
		body := decodeAPIError(t, rec)
		assert.Equal(t, apiErrors.ErrMetricsUnavailable, body.Code)
		assert.Equal(t, "Erro ao carregar métricas financeiras.", body.Message)
	})

	t.Run("requisição cancelada durante a busca não escreve resposta", func(t *testing.T) {
		for _, fetchErr := range []error{nil, &metrics.FetchError{Facet: domain.FacetFinancial, Err: context.Canceled}} {
			ctx, cancel := context.WithCancel(context.Background())
			agg := &fakeAggregator{err: fetchErr, beforeReturn: cancel}
			req := httptest.NewRequest(http.MethodGet, "/v1/metrics/financial?start_date=2024-03-01&end_date=2024-03-31", nil).WithContext(ctx)

			rec := serve(Metrics(agg, loc), req, ownerClaims)

			assert.Equal(t, "est-1", agg.gotEstablishment)
			assert.Zero(t, rec.Body.Len())
			assert.Empty(t, rec.Header().Get("Content-Type"))
			assert.False(t, rec.Flushed)
		}
	})

	t.Run("datas ausentes ou invertidas", func(t *testing.T) {
		agg := &fakeAggregator{}

		rec := serve(Metrics(agg, loc), httptest.NewRequest(http.MethodGet, "/v1/metrics/financial?start_date=2024-03-01", nil), ownerClaims)
		assert.Equal(t, http.StatusBadRequest, rec.Code)

		rec = serve(Metrics(agg, loc), httptest.NewRequest(http.MethodGet, "/v1/metrics/financial?start_date=2024-03-31&end_date=2024-03-01", nil), ownerClaims)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, apiErrors.ErrInvalidPeriod, decodeAPIError(t, rec).Code)
	})
}

func TestMetrics_FacetMessages(t *testing.T) {
	fetchErr := &metrics.FetchError{Facet: "x", Err: errors.New("timeout")}

	tests := []struct {
		path    string
		message string
	}{
		{"/v1/metrics/clients", "Erro ao carregar métricas de clientes."},
		{"/v1/metrics/operations", "Erro ao carregar métricas operacionais."},
		{"/v1/metrics/insights", "Erro ao carregar insights."},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.path+"?start_date=2024-03-01&end_date=2024-03-31", nil)

			rec := serve(Metrics(&fakeAggregator{err: fetchErr}, time.UTC), req, ownerClaims)

			assert.Equal(t, http.StatusBadGateway, rec.Code)
			assert.Equal(t, tt.message, decodeAPIError(t, rec).Message)
		})
	}
}

func TestResolveScope(t *testing.T) {
	path := "/v1/metrics/financial?start_date=2024-03-01&end_date=2024-03-31&establishment_id=est-9"

	t.Run("super admin escolhe o estabelecimento", func(t *testing.T) {
		agg := &fakeAggregator{}
		claims := &domain.Claims{UserID: "root", UserRole: domain.RoleSuperAdmin}

		rec := serve(Metrics(agg, time.UTC), httptest.NewRequest(http.MethodGet, path, nil), claims)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "est-9", agg.gotEstablishment)
	})

	t.Run("demais papéis não acessam outro estabelecimento", func(t *testing.T) {
		agg := &fakeAggregator{}

		rec := serve(Metrics(agg, time.UTC), httptest.NewRequest(http.MethodGet, path, nil), ownerClaims)

		assert.Equal(t, http.StatusForbidden, rec.Code)
		assert.Empty(t, agg.gotEstablishment)
	})

	t.Run("super admin sem estabelecimento", func(t *testing.T) {
		claims := &domain.Claims{UserID: "root", UserRole: domain.RoleSuperAdmin}
		req := httptest.NewRequest(http.MethodGet, "/v1/metrics/financial?start_date=2024-03-01&end_date=2024-03-31", nil)

		rec := serve(Metrics(&fakeAggregator{}, time.UTC), req, claims)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestRecords(t *testing.T) {
	t.Run("registra venda", func(t *testing.T) {
		body := `{"client_id":"c1","service_id":"cut","amount":"60","sale_date":"2024-03-10T15:00:00Z","payment_method":"pix"}`
		req := httptest.NewRequest(http.MethodPost, "/v1/sales", strings.NewReader(body))

		rec := serve(Records(fakeRecorder{}), req, ownerClaims)

		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.Contains(t, rec.Body.String(), `"establishment_id":"est-1"`)
	})

	t.Run("valor inválido", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/v1/sales", strings.NewReader(`{}`))

		rec := serve(Records(fakeRecorder{err: records.ErrInvalidAmount}), req, ownerClaims)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, apiErrors.ErrInvalidFormat, decodeAPIError(t, rec).Code)
	})

	t.Run("corpo malformado", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPut, "/v1/settings", strings.NewReader(`{`))

		rec := serve(Records(fakeRecorder{}), req, ownerClaims)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, apiErrors.ErrInvalidRequest, decodeAPIError(t, rec).Code)
	})

	t.Run("sem autenticação", func(t *testing.T) {
		rec := serve(Records(fakeRecorder{}), httptest.NewRequest(http.MethodGet, "/v1/settings", nil), nil)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestPublicBooking(t *testing.T) {
	t.Run("cria agendamento sem token", func(t *testing.T) {
		body := `{"client_name":"Ana","phone":"1199","service_id":"cut","professional_id":"p1","day":"2024-03-15","slot":"10:00"}`
		req := httptest.NewRequest(http.MethodPost, "/v1/public/est-1/bookings", strings.NewReader(body))

		rec := serve(PublicBooking(fakeBooker{}), req, nil)

		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.Contains(t, rec.Body.String(), `"code":"ABC-est-1"`)
	})

	t.Run("horário ocupado", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/v1/public/est-1/bookings", strings.NewReader(`{}`))

		rec := serve(PublicBooking(fakeBooker{err: booking.ErrSlotUnavailable}), req, nil)

		assert.Equal(t, http.StatusConflict, rec.Code)
		assert.Equal(t, apiErrors.ErrSlotUnavailable, decodeAPIError(t, rec).Code)
	})

	t.Run("disponibilidade com data inválida", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/v1/public/est-1/availability?professional=p1&day=x", nil)

		rec := serve(PublicBooking(fakeBooker{err: booking.ErrInvalidDay}), req, nil)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestLogin(t *testing.T) {
	t.Run("sucesso", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/v1/login", strings.NewReader(`{"email":"a@b.com","password":"x"}`))

		rec := serve(Authentication(fakeAuthenticator{}), req, nil)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"token":"token"`)
	})

	t.Run("credenciais inválidas", func(t *testing.T) {
		loginErr := authenticating.NewUserAuthError(authenticating.ErrInvalidCredentials, apiErrors.ErrInvalidCredentials, "user-1", "Senha incorreta")
		req := httptest.NewRequest(http.MethodPost, "/v1/login", strings.NewReader(`{"email":"a@b.com","password":"x"}`))

		rec := serve(Authentication(fakeAuthenticator{loginErr: loginErr}), req, nil)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, apiErrors.ErrInvalidCredentials, decodeAPIError(t, rec).Code)
	})
}

func TestCronJobs(t *testing.T) {
	job := &fakeCronJob{}
	services := CronJobServices{CronJobTypeGoalProgress: job}
	root := &domain.Claims{UserID: "root", UserRole: domain.RoleSuperAdmin}

	rec := serve(CronJobs(services), httptest.NewRequest(http.MethodPost, "/v1/cron/goal-progress/run", nil), root)
	assert.Equal(t, http.StatusAccepted, rec.Code)
	assert.Equal(t, 1, job.triggered)

	rec = serve(CronJobs(services), httptest.NewRequest(http.MethodPost, "/v1/cron/unknown/run", nil), root)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = serve(CronJobs(services), httptest.NewRequest(http.MethodGet, "/v1/cron/status", nil), ownerClaims)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = serve(CronJobs(services), httptest.NewRequest(http.MethodGet, "/v1/cron/status", nil), root)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"goal-progress"`)
}

type failingPinger struct{}

func (failingPinger) Ping(context.Context) error { return errors.New("down") }

func TestHealthcheck(t *testing.T) {
	rec := serve(Healthcheck(nil), httptest.NewRequest(http.MethodGet, "/healthcheck", nil), nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = serve(Healthcheck(failingPinger{}), httptest.NewRequest(http.MethodGet, "/healthcheck", nil), nil)
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}
