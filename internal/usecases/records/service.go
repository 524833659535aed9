package records

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/vfg2006/salon-manager-api/infrastructure/database/postgres"
	"github.com/vfg2006/salon-manager-api/infrastructure/repository"
	"github.com/vfg2006/salon-manager-api/internal/config"
	"github.com/vfg2006/salon-manager-api/internal/domain"
	"github.com/vfg2006/salon-manager-api/pkg/log"
)

type Recorder interface {
	RegisterSale(ctx context.Context, establishmentID string, req *domain.RegisterSaleRequest) (*domain.Sale, error)
	SetMonthlyGoal(ctx context.Context, establishmentID string, req *domain.SetGoalRequest) (*domain.Goal, error)
	GetSettings(ctx context.Context, establishmentID string) (*domain.Settings, error)
	SetInactiveDaysThreshold(ctx context.Context, establishmentID string, days int) (*domain.Settings, error)
}

type Service struct {
	tx                  postgres.Transactor
	saleRepo            repository.SaleRepository
	clientRepo          repository.ClientRepository
	serviceRepo         repository.ServiceRepository
	goalRepo            repository.GoalRepository
	settingsRepo        repository.SettingsRepository
	defaultInactiveDays int
}

func NewService(
	cfg *config.Config,
	tx postgres.Transactor,
	saleRepo repository.SaleRepository,
	clientRepo repository.ClientRepository,
	serviceRepo repository.ServiceRepository,
	goalRepo repository.GoalRepository,
	settingsRepo repository.SettingsRepository,
) *Service {
	defaultInactiveDays := cfg.Metrics.DefaultInactiveDays
	if defaultInactiveDays <= 0 {
		defaultInactiveDays = domain.DefaultInactiveDaysThreshold
	}

	return &Service{
		tx:                  tx,
		saleRepo:            saleRepo,
		clientRepo:          clientRepo,
		serviceRepo:         serviceRepo,
		goalRepo:            goalRepo,
		settingsRepo:        settingsRepo,
		defaultInactiveDays: defaultInactiveDays,
	}
}

var _ Recorder = (*Service)(nil)

// RegisterSale grava a venda e avança o histórico do cliente na mesma transação
func (s *Service) RegisterSale(ctx context.Context, establishmentID string, req *domain.RegisterSaleRequest) (*domain.Sale, error) {
	if establishmentID == "" || req.ClientID == "" || req.ServiceID == "" ||
		strings.TrimSpace(req.PaymentMethod) == "" || req.SaleDate == nil || req.SaleDate.IsZero() {
		return nil, ErrMissingRequiredData
	}

	if !req.Amount.IsPositive() {
		return nil, ErrInvalidAmount
	}

	client, err := s.clientRepo.GetByID(ctx, establishmentID, req.ClientID)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar cliente: %w", err)
	}
	if client == nil {
		return nil, ErrClientNotFound
	}

	service, err := s.serviceRepo.GetByID(ctx, establishmentID, req.ServiceID)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar serviço: %w", err)
	}
	if service == nil {
		return nil, ErrServiceNotFound
	}

	paymentMethod := strings.TrimSpace(req.PaymentMethod)
	sale := &domain.Sale{
		EstablishmentID: establishmentID,
		ClientID:        req.ClientID,
		ServiceID:       req.ServiceID,
		AppointmentID:   req.AppointmentID,
		Amount:          req.Amount,
		SaleDate:        *req.SaleDate,
		PaymentMethod:   &paymentMethod,
		Notes:           req.Notes,
	}

	err = s.tx.RunInTransaction(ctx, func(tx *sql.Tx) error {
		if err := s.saleRepo.Create(ctx, tx, sale); err != nil {
			return err
		}
		return s.clientRepo.AdvanceLastService(ctx, tx, establishmentID, req.ClientID, sale.SaleDate, sale.Amount)
	})
	if err != nil {
		return nil, fmt.Errorf("erro ao registrar venda: %w", err)
	}

	log.ForContext(ctx).WithFields(log.Fields{
		"establishment_id": establishmentID,
		"sale_id":          sale.ID,
		"client_id":        sale.ClientID,
	}).Info("records: venda registrada")

	return sale, nil
}

func (s *Service) SetMonthlyGoal(ctx context.Context, establishmentID string, req *domain.SetGoalRequest) (*domain.Goal, error) {
	if establishmentID == "" {
		return nil, ErrMissingRequiredData
	}
	if req.Month < 1 || req.Month > 12 {
		return nil, ErrInvalidMonth
	}
	if req.Year < 2000 || req.Year > 9999 {
		return nil, ErrInvalidYear
	}
	if req.TargetAmount.IsNegative() {
		return nil, ErrInvalidTarget
	}

	goal := &domain.Goal{
		EstablishmentID: establishmentID,
		Month:           req.Month,
		Year:            req.Year,
		TargetAmount:    req.TargetAmount,
	}

	if err := s.goalRepo.Upsert(ctx, goal); err != nil {
		return nil, fmt.Errorf("erro ao salvar meta: %w", err)
	}

	return goal, nil
}

// GetSettings devolve o padrão quando o estabelecimento ainda não salvou configurações
func (s *Service) GetSettings(ctx context.Context, establishmentID string) (*domain.Settings, error) {
	if establishmentID == "" {
		return nil, ErrMissingRequiredData
	}

	settings, err := s.settingsRepo.GetByEstablishment(ctx, establishmentID)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar configurações: %w", err)
	}

	if settings == nil {
		return &domain.Settings{
			EstablishmentID:       establishmentID,
			InactiveDaysThreshold: s.defaultInactiveDays,
		}, nil
	}

	return settings, nil
}

func (s *Service) SetInactiveDaysThreshold(ctx context.Context, establishmentID string, days int) (*domain.Settings, error) {
	if establishmentID == "" {
		return nil, ErrMissingRequiredData
	}
	if days < 1 {
		return nil, ErrInvalidThreshold
	}

	settings := &domain.Settings{
		EstablishmentID:       establishmentID,
		InactiveDaysThreshold: days,
	}

	if err := s.settingsRepo.Upsert(ctx, settings); err != nil {
		return nil, fmt.Errorf("erro ao salvar configurações: %w", err)
	}

	return settings, nil
}
