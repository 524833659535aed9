package reporting

import (
	"context"
	"errors"
	"sort"
	"time"

	"github.com/shopspring/decimal"
	"github.com/vfg2006/salon-manager-api/infrastructure/repository"
	"github.com/vfg2006/salon-manager-api/internal/config"
	"github.com/vfg2006/salon-manager-api/internal/domain"
	"github.com/vfg2006/salon-manager-api/internal/usecases/metrics"
	"github.com/vfg2006/salon-manager-api/pkg/log"
	"github.com/vfg2006/salon-manager-api/pkg/utils"
	"golang.org/x/sync/errgroup"
)

var ErrReportFailure = errors.New("falha ao gerar relatório")

type Reporter interface {
	RevenueReport(ctx context.Context, establishmentID string, period domain.Period) (*domain.RevenueReport, error)
	ServicesReport(ctx context.Context, establishmentID string, period domain.Period) (*domain.ServicesReport, error)
	Dashboard(ctx context.Context, establishmentID string) (*domain.DashboardSummary, error)
}

type Service struct {
	saleRepo            repository.SaleRepository
	clientRepo          repository.ClientRepository
	serviceRepo         repository.ServiceRepository
	appointmentRepo     repository.AppointmentRepository
	goalRepo            repository.GoalRepository
	settingsRepo        repository.SettingsRepository
	location            *time.Location
	defaultInactiveDays int
	now                 func() time.Time
}

func NewService(
	cfg *config.Config,
	saleRepo repository.SaleRepository,
	clientRepo repository.ClientRepository,
	serviceRepo repository.ServiceRepository,
	appointmentRepo repository.AppointmentRepository,
	goalRepo repository.GoalRepository,
	settingsRepo repository.SettingsRepository,
) *Service {
	loc := cfg.App.Location
	if loc == nil {
		loc = time.UTC
	}

	return &Service{
		saleRepo:            saleRepo,
		clientRepo:          clientRepo,
		serviceRepo:         serviceRepo,
		appointmentRepo:     appointmentRepo,
		goalRepo:            goalRepo,
		settingsRepo:        settingsRepo,
		location:            loc,
		defaultInactiveDays: cfg.Metrics.DefaultInactiveDays,
		now:                 time.Now,
	}
}

var _ Reporter = (*Service)(nil)

// RevenueReport lista as vendas da janela da mais recente para a mais antiga
func (s *Service) RevenueReport(ctx context.Context, establishmentID string, period domain.Period) (*domain.RevenueReport, error) {
	if !period.IsValid() {
		return nil, metrics.ErrInvalidPeriod
	}

	var (
		sales    []*domain.Sale
		clients  []*domain.Client
		services []*domain.Service
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		sales, err = s.saleRepo.ListByPeriod(gctx, establishmentID, period)
		return err
	})
	g.Go(func() (err error) {
		clients, err = s.clientRepo.ListByEstablishment(gctx, establishmentID)
		return err
	})
	g.Go(func() (err error) {
		services, err = s.serviceRepo.ListByEstablishment(gctx, establishmentID)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, s.fail(ctx, "revenue", establishmentID, err)
	}

	clientNames := make(map[string]string, len(clients))
	for _, client := range clients {
		clientNames[client.ID] = client.Name
	}
	serviceNames := domain.NewServiceNames(services)

	ordered := make([]*domain.Sale, len(sales))
	copy(ordered, sales)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].SaleDate.After(ordered[j].SaleDate)
	})

	report := &domain.RevenueReport{
		Period:     period,
		Rows:       make([]domain.RevenueReportRow, 0, len(ordered)),
		SalesCount: len(ordered),
	}

	for _, sale := range ordered {
		clientName, ok := clientNames[sale.ClientID]
		if !ok {
			clientName = domain.UnknownName
		}

		paymentMethod := domain.UnknownName
		if sale.PaymentMethod != nil && *sale.PaymentMethod != "" {
			paymentMethod = *sale.PaymentMethod
		}

		report.Rows = append(report.Rows, domain.RevenueReportRow{
			SaleID:        sale.ID,
			SaleDate:      sale.SaleDate,
			ClientName:    clientName,
			ServiceName:   serviceNames.Lookup(sale.ServiceID),
			Amount:        sale.Amount,
			PaymentMethod: paymentMethod,
			Notes:         sale.Notes,
		})
		report.Total = report.Total.Add(sale.Amount)
	}

	return report, nil
}

func (s *Service) ServicesReport(ctx context.Context, establishmentID string, period domain.Period) (*domain.ServicesReport, error) {
	if !period.IsValid() {
		return nil, metrics.ErrInvalidPeriod
	}

	var (
		sales    []*domain.Sale
		services []*domain.Service
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		sales, err = s.saleRepo.ListByPeriod(gctx, establishmentID, period)
		return err
	})
	g.Go(func() (err error) {
		services, err = s.serviceRepo.ListByEstablishment(gctx, establishmentID)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, s.fail(ctx, "services", establishmentID, err)
	}

	report := &domain.ServicesReport{
		Period: period,
		Rows:   metrics.BreakdownByService(sales, domain.NewServiceNames(services)),
	}

	for _, row := range report.Rows {
		report.GrandTotal = report.GrandTotal.Add(row.Total)
		report.TotalQty += row.Qty
	}

	return report, nil
}

// Dashboard resume o mês corrente até agora
func (s *Service) Dashboard(ctx context.Context, establishmentID string) (*domain.DashboardSummary, error) {
	now := s.now().In(s.location)
	month := domain.MonthPeriod(now.Year(), now.Month(), s.location)
	monthToDate := domain.NewPeriod(month.Start, now)
	today := domain.DayPeriod(now, s.location)

	var (
		revenue           decimal.Decimal
		clients           []*domain.Client
		settings          *domain.Settings
		todayAppointments int
		goal              *domain.Goal
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		revenue, err = s.saleRepo.SumByPeriod(gctx, establishmentID, monthToDate)
		return err
	})
	g.Go(func() (err error) {
		clients, err = s.clientRepo.ListByEstablishment(gctx, establishmentID)
		return err
	})
	g.Go(func() (err error) {
		settings, err = s.settingsRepo.GetByEstablishment(gctx, establishmentID)
		return err
	})
	g.Go(func() (err error) {
		todayAppointments, err = s.appointmentRepo.CountByPeriod(gctx, establishmentID, today)
		return err
	})
	g.Go(func() (err error) {
		goal, err = s.goalRepo.GetByMonth(gctx, establishmentID, int(now.Month()), now.Year())
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, s.fail(ctx, "dashboard", establishmentID, err)
	}

	threshold := s.defaultInactiveDays
	if settings != nil && settings.InactiveDaysThreshold > 0 {
		threshold = settings.InactiveDaysThreshold
	}

	summary := &domain.DashboardSummary{
		MonthlyRevenue:        revenue,
		TotalClients:          len(clients),
		InactiveClients:       metrics.CountInactive(clients, metrics.InactivityCutoff(now, s.location, threshold)),
		InactiveDaysThreshold: threshold,
		TodayAppointments:     todayAppointments,
		GeneratedAt:           now,
	}

	if goal != nil {
		summary.GoalTarget = goal.TargetAmount
		summary.GoalCurrent = goal.Current()
		if pct, ok := metrics.ProgressPct(summary.GoalCurrent, goal.TargetAmount); ok {
			summary.GoalProgressPct = utils.RoundWithTwoDecimalPlace(pct)
		}
	}

	return summary, nil
}

func (s *Service) fail(ctx context.Context, report, establishmentID string, err error) error {
	log.ForContext(ctx).WithFields(log.Fields{
		"report":           report,
		"establishment_id": establishmentID,
		"error":            err.Error(),
	}).Error("reporting: falha ao buscar dados do relatório")

	return errors.Join(ErrReportFailure, err)
}
