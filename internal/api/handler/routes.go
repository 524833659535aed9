package handler

import (
	"net/http"
	"time"

	"github.com/vfg2006/salon-manager-api/internal/api/handler/router"
	"github.com/vfg2006/salon-manager-api/internal/usecases/authenticating"
	"github.com/vfg2006/salon-manager-api/internal/usecases/booking"
	"github.com/vfg2006/salon-manager-api/internal/usecases/metrics"
	"github.com/vfg2006/salon-manager-api/internal/usecases/records"
	"github.com/vfg2006/salon-manager-api/internal/usecases/reporting"
	"github.com/vfg2006/salon-manager-api/internal/usecases/roster"
	"github.com/vfg2006/salon-manager-api/pkg/middleware"
)

func Healthcheck(db Pinger) []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(db),
		},
	}
}

func Authentication(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/login",
			Method:  http.MethodPost,
			Handler: Login(service),
		},
		{
			Path:        "/v1/me",
			Method:      http.MethodGet,
			Handler:     GetMe(service),
			Middlewares: Middlewares{middleware.AllRoles()},
		},
	}
}

func User(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/users",
			Method:      http.MethodGet,
			Handler:     ListUsers(service),
			Middlewares: Middlewares{middleware.ManagersOnly()},
		},
		{
			Path:        "/v1/users",
			Method:      http.MethodPost,
			Handler:     CreateUser(service),
			Middlewares: Middlewares{middleware.ManagersOnly()},
		},
	}
}

func Metrics(service metrics.Aggregator, loc *time.Location) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/metrics/financial",
			Method:      http.MethodGet,
			Handler:     GetFinancialMetrics(service, loc),
			Middlewares: Middlewares{middleware.AllRoles()},
		},
		{
			Path:        "/v1/metrics/clients",
			Method:      http.MethodGet,
			Handler:     GetClientMetrics(service, loc),
			Middlewares: Middlewares{middleware.AllRoles()},
		},
		{
			Path:        "/v1/metrics/operations",
			Method:      http.MethodGet,
			Handler:     GetOperationalMetrics(service, loc),
			Middlewares: Middlewares{middleware.AllRoles()},
		},
		{
			Path:        "/v1/metrics/insights",
			Method:      http.MethodGet,
			Handler:     GetInsights(service, loc),
			Middlewares: Middlewares{middleware.AllRoles()},
		},
	}
}

func Reports(service reporting.Reporter, loc *time.Location) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/reports/revenue",
			Method:      http.MethodGet,
			Handler:     GetRevenueReport(service, loc),
			Middlewares: Middlewares{middleware.AllRoles()},
		},
		{
			Path:        "/v1/reports/services",
			Method:      http.MethodGet,
			Handler:     GetServicesReport(service, loc),
			Middlewares: Middlewares{middleware.AllRoles()},
		},
		{
			Path:        "/v1/dashboard",
			Method:      http.MethodGet,
			Handler:     GetDashboard(service),
			Middlewares: Middlewares{middleware.AllRoles()},
		},
	}
}

func Records(service records.Recorder) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/sales",
			Method:      http.MethodPost,
			Handler:     RegisterSale(service),
			Middlewares: Middlewares{middleware.AllRoles()},
		},
		{
			Path:        "/v1/goals",
			Method:      http.MethodPut,
			Handler:     SetMonthlyGoal(service),
			Middlewares: Middlewares{middleware.AllRoles()},
		},
		{
			Path:        "/v1/settings",
			Method:      http.MethodGet,
			Handler:     GetSettings(service),
			Middlewares: Middlewares{middleware.AllRoles()},
		},
		{
			Path:        "/v1/settings",
			Method:      http.MethodPut,
			Handler:     UpdateSettings(service),
			Middlewares: Middlewares{middleware.AllRoles()},
		},
	}
}

// Roster cobre o cadastro de clientes, o catálogo de serviços e profissionais e a agenda
func Roster(service roster.Roster, loc *time.Location) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/clients",
			Method:      http.MethodGet,
			Handler:     ListClients(service),
			Middlewares: Middlewares{middleware.AllRoles()},
		},
		{
			Path:        "/v1/clients",
			Method:      http.MethodPost,
			Handler:     CreateClient(service),
			Middlewares: Middlewares{middleware.AllRoles()},
		},
		{
			Path:        "/v1/services",
			Method:      http.MethodGet,
			Handler:     ListServices(service),
			Middlewares: Middlewares{middleware.AllRoles()},
		},
		{
			Path:        "/v1/services",
			Method:      http.MethodPost,
			Handler:     CreateService(service),
			Middlewares: Middlewares{middleware.AllRoles()},
		},
		{
			Path:        "/v1/professionals",
			Method:      http.MethodGet,
			Handler:     ListProfessionals(service),
			Middlewares: Middlewares{middleware.AllRoles()},
		},
		{
			Path:        "/v1/professionals",
			Method:      http.MethodPost,
			Handler:     CreateProfessional(service),
			Middlewares: Middlewares{middleware.AllRoles()},
		},
		{
			Path:        "/v1/service-professionals",
			Method:      http.MethodGet,
			Handler:     ListServiceProfessionals(service),
			Middlewares: Middlewares{middleware.AllRoles()},
		},
		{
			Path:        "/v1/service-professionals",
			Method:      http.MethodPost,
			Handler:     LinkProfessional(service),
			Middlewares: Middlewares{middleware.AllRoles()},
		},
		{
			Path:        "/v1/service-professionals/:id",
			Method:      http.MethodDelete,
			Handler:     UnlinkProfessional(service),
			Middlewares: Middlewares{middleware.AllRoles()},
		},
		{
			Path:        "/v1/agenda",
			Method:      http.MethodGet,
			Handler:     GetAgenda(service, loc),
			Middlewares: Middlewares{middleware.AllRoles()},
		},
	}
}

// PublicBooking não passa pelo AuthMiddleware
func PublicBooking(service booking.Booker) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/public/:establishment/catalog",
			Method:  http.MethodGet,
			Handler: GetPublicCatalog(service),
		},
		{
			Path:    "/v1/public/:establishment/availability",
			Method:  http.MethodGet,
			Handler: GetPublicAvailability(service),
		},
		{
			Path:    "/v1/public/:establishment/bookings",
			Method:  http.MethodPost,
			Handler: CreatePublicBooking(service),
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/cron/:type/run",
			Method:      http.MethodPost,
			Handler:     RunCronJob(services),
			Middlewares: Middlewares{middleware.SuperAdminOnly()},
		},
		{
			Path:        "/v1/cron/status",
			Method:      http.MethodGet,
			Handler:     GetCronStatus(services),
			Middlewares: Middlewares{middleware.SuperAdminOnly()},
		},
	}
}
