package metrics

import (
	"context"
	"time"

	"github.com/vfg2006/salon-manager-api/infrastructure/repository"
	"github.com/vfg2006/salon-manager-api/internal/config"
	"github.com/vfg2006/salon-manager-api/internal/domain"
	"github.com/vfg2006/salon-manager-api/pkg/log"
	"golang.org/x/sync/errgroup"
)

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

type Option func(*Service)

// WithClock substitui o relógio usado para "hoje" (inatividade e projeção)
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

func NewService(
	cfg *config.Config,
	saleRepo repository.SaleRepository,
	clientRepo repository.ClientRepository,
	serviceRepo repository.ServiceRepository,
	appointmentRepo repository.AppointmentRepository,
	goalRepo repository.GoalRepository,
	settingsRepo repository.SettingsRepository,
	opts ...Option,
) *Service {
	s := &Service{
		saleRepo:            saleRepo,
		clientRepo:          clientRepo,
		serviceRepo:         serviceRepo,
		appointmentRepo:     appointmentRepo,
		goalRepo:            goalRepo,
		settingsRepo:        settingsRepo,
		location:            cfg.App.Location,
		defaultInactiveDays: cfg.Metrics.DefaultInactiveDays,
		now:                 time.Now,
	}

	if s.location == nil {
		s.location = time.UTC
	}
	if s.defaultInactiveDays <= 0 {
		s.defaultInactiveDays = domain.DefaultInactiveDaysThreshold
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

var _ Aggregator = (*Service)(nil)

func (s *Service) GetFinancialMetrics(ctx context.Context, establishmentID string, period domain.Period) (*domain.FinancialMetrics, error) {
	if err := validate(establishmentID, period); err != nil {
		return nil, err
	}

	var (
		sales      []*domain.Sale
		priorSales []*domain.Sale
		services   []*domain.Service
		goal       *domain.Goal
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		sales, err = s.saleRepo.ListByPeriod(gctx, establishmentID, period)
		return err
	})
	g.Go(func() (err error) {
		priorSales, err = s.saleRepo.ListByPeriod(gctx, establishmentID, period.Prior())
		return err
	})
	g.Go(func() (err error) {
		services, err = s.serviceRepo.ListByEstablishment(gctx, establishmentID)
		return err
	})
	if period.SpansSingleMonth(s.location) {
		g.Go(func() (err error) {
			goal, err = s.monthGoal(gctx, establishmentID, period)
			return err
		})
	}

	if err := g.Wait(); err != nil {
		return nil, s.fail(ctx, domain.FacetFinancial, establishmentID, err)
	}

	metrics := AggregateFinancial(FinancialInput{
		Period:     period,
		Sales:      sales,
		PriorSales: priorSales,
		Services:   domain.NewServiceNames(services),
		Goal:       goal,
		Now:        s.now(),
		Location:   s.location,
	})

	return &metrics, nil
}

func (s *Service) GetClientMetrics(ctx context.Context, establishmentID string, period domain.Period) (*domain.ClientMetrics, error) {
	if err := validate(establishmentID, period); err != nil {
		return nil, err
	}

	var (
		clients []*domain.Client
		sales   []*domain.Sale
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		clients, err = s.clientRepo.ListByEstablishment(gctx, establishmentID)
		return err
	})
	g.Go(func() (err error) {
		sales, err = s.saleRepo.ListByPeriod(gctx, establishmentID, period)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, s.fail(ctx, domain.FacetClients, establishmentID, err)
	}

	threshold, err := s.inactiveDaysThreshold(ctx, establishmentID)
	if err != nil {
		return nil, s.fail(ctx, domain.FacetClients, establishmentID, err)
	}

	metrics := AggregateClients(ClientInput{
		Period:                period,
		Clients:               clients,
		Sales:                 sales,
		InactiveDaysThreshold: threshold,
		Now:                   s.now(),
		Location:              s.location,
	})

	return &metrics, nil
}

func (s *Service) GetOperationalMetrics(ctx context.Context, establishmentID string, period domain.Period) (*domain.OperationalMetrics, error) {
	if err := validate(establishmentID, period); err != nil {
		return nil, err
	}

	var (
		sales        []*domain.Sale
		appointments []*domain.Appointment
		services     []*domain.Service
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		sales, err = s.saleRepo.ListByPeriod(gctx, establishmentID, period)
		return err
	})
	g.Go(func() (err error) {
		appointments, err = s.appointmentRepo.ListByPeriod(gctx, establishmentID, period)
		return err
	})
	g.Go(func() (err error) {
		services, err = s.serviceRepo.ListByEstablishment(gctx, establishmentID)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, s.fail(ctx, domain.FacetOperational, establishmentID, err)
	}

	metrics := AggregateOperations(OperationalInput{
		Period:       period,
		Sales:        sales,
		Appointments: appointments,
		Services:     domain.NewServiceNames(services),
		Location:     s.location,
	})

	return &metrics, nil
}

func (s *Service) GetInsights(ctx context.Context, establishmentID string, period domain.Period) (*domain.InsightsMetrics, error) {
	if err := validate(establishmentID, period); err != nil {
		return nil, err
	}

	var (
		sales    []*domain.Sale
		services []*domain.Service
		clients  []*domain.Client
		goal     *domain.Goal
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
	g.Go(func() (err error) {
		clients, err = s.clientRepo.ListByEstablishment(gctx, establishmentID)
		return err
	})
	if period.SpansSingleMonth(s.location) {
		g.Go(func() (err error) {
			goal, err = s.monthGoal(gctx, establishmentID, period)
			return err
		})
	}

	if err := g.Wait(); err != nil {
		return nil, s.fail(ctx, domain.FacetInsights, establishmentID, err)
	}

	threshold, err := s.inactiveDaysThreshold(ctx, establishmentID)
	if err != nil {
		return nil, s.fail(ctx, domain.FacetInsights, establishmentID, err)
	}

	metrics := AggregateInsights(InsightsInput{
		Period:                period,
		Sales:                 sales,
		Services:              domain.NewServiceNames(services),
		Goal:                  goal,
		Clients:               clients,
		InactiveDaysThreshold: threshold,
		Now:                   s.now(),
		Location:              s.location,
	})

	return &metrics, nil
}

func (s *Service) monthGoal(ctx context.Context, establishmentID string, period domain.Period) (*domain.Goal, error) {
	month, year := period.StartMonth(s.location)
	return s.goalRepo.GetByMonth(ctx, establishmentID, month, year)
}

// inactiveDaysThreshold usa o padrão configurado quando o estabelecimento não tem configuração válida
func (s *Service) inactiveDaysThreshold(ctx context.Context, establishmentID string) (int, error) {
	settings, err := s.settingsRepo.GetByEstablishment(ctx, establishmentID)
	if err != nil {
		return 0, err
	}
	if settings == nil || settings.InactiveDaysThreshold <= 0 {
		return s.defaultInactiveDays, nil
	}
	return settings.InactiveDaysThreshold, nil
}

func (s *Service) fail(ctx context.Context, facet, establishmentID string, err error) error {
	log.ForContext(ctx).WithFields(log.Fields{
		"facet":            facet,
		"establishment_id": establishmentID,
		"error":            err.Error(),
	}).Error("metrics: falha ao buscar dados da faceta")

	return newFetchError(facet, err)
}

func validate(establishmentID string, period domain.Period) error {
	if establishmentID == "" {
		return ErrMissingEstablishment
	}
	if !period.IsValid() {
		return ErrInvalidPeriod
	}
	return nil
}
