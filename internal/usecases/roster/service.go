package roster

import (
	"context"
	"time"

	"github.com/vfg2006/salon-manager-api/infrastructure/repository"
	"github.com/vfg2006/salon-manager-api/internal/config"
	"github.com/vfg2006/salon-manager-api/internal/domain"
)

// Roster cuida do cadastro de clientes, serviços e profissionais e da agenda do estabelecimento
type Roster interface {
	ListClients(ctx context.Context, establishmentID, filter string) ([]*domain.Client, error)
	CreateClient(ctx context.Context, establishmentID string, req *domain.CreateClientRequest) (*domain.Client, error)

	ListServices(ctx context.Context, establishmentID string) ([]*domain.Service, error)
	CreateService(ctx context.Context, establishmentID string, req *domain.CreateServiceRequest) (*domain.Service, error)
	ListProfessionals(ctx context.Context, establishmentID string) ([]*domain.Professional, error)
	CreateProfessional(ctx context.Context, establishmentID string, req *domain.CreateProfessionalRequest) (*domain.Professional, error)
	ListServiceProfessionals(ctx context.Context, establishmentID string) ([]*domain.ServiceProfessional, error)
	LinkProfessional(ctx context.Context, establishmentID string, req *domain.LinkProfessionalRequest) (*domain.ServiceProfessional, error)
	UnlinkProfessional(ctx context.Context, establishmentID, linkID string) error

	Agenda(ctx context.Context, establishmentID string, period domain.Period) (*domain.Agenda, error)
}

type Service struct {
	clientRepo          repository.ClientRepository
	serviceRepo         repository.ServiceRepository
	professionalRepo    repository.ProfessionalRepository
	appointmentRepo     repository.AppointmentRepository
	settingsRepo        repository.SettingsRepository
	location            *time.Location
	defaultInactiveDays int
	now                 func() time.Time
}

func NewService(
	cfg *config.Config,
	clientRepo repository.ClientRepository,
	serviceRepo repository.ServiceRepository,
	professionalRepo repository.ProfessionalRepository,
	appointmentRepo repository.AppointmentRepository,
	settingsRepo repository.SettingsRepository,
) *Service {
	loc := cfg.App.Location
	if loc == nil {
		loc = time.UTC
	}

	return &Service{
		clientRepo:          clientRepo,
		serviceRepo:         serviceRepo,
		professionalRepo:    professionalRepo,
		appointmentRepo:     appointmentRepo,
		settingsRepo:        settingsRepo,
		location:            loc,
		defaultInactiveDays: cfg.Metrics.DefaultInactiveDays,
		now:                 time.Now,
	}
}

var _ Roster = (*Service)(nil)
