package roster

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/vfg2006/salon-manager-api/infrastructure/repository"
	"github.com/vfg2006/salon-manager-api/internal/domain"
	"github.com/vfg2006/salon-manager-api/pkg/log"
)

func (s *Service) ListServices(ctx context.Context, establishmentID string) ([]*domain.Service, error) {
	if establishmentID == "" {
		return nil, ErrMissingRequiredData
	}

	services, err := s.serviceRepo.ListByEstablishment(ctx, establishmentID)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar serviços: %w", err)
	}
	return services, nil
}

func (s *Service) CreateService(ctx context.Context, establishmentID string, req *domain.CreateServiceRequest) (*domain.Service, error) {
	name := strings.TrimSpace(req.Name)
	if establishmentID == "" || name == "" {
		return nil, ErrMissingRequiredData
	}
	if req.Price.IsNegative() {
		return nil, ErrInvalidPrice
	}
	if req.DurationMinutes <= 0 {
		return nil, ErrInvalidDuration
	}

	service := &domain.Service{
		EstablishmentID: establishmentID,
		Name:            name,
		Description:     req.Description,
		Price:           req.Price,
		DurationMinutes: req.DurationMinutes,
		Active:          activeOrDefault(req.Active),
	}

	if err := s.serviceRepo.Create(ctx, service); err != nil {
		return nil, fmt.Errorf("erro ao cadastrar serviço: %w", err)
	}

	log.ForContext(ctx).WithField("service_id", service.ID).Info("roster: serviço cadastrado")
	return service, nil
}

func (s *Service) ListProfessionals(ctx context.Context, establishmentID string) ([]*domain.Professional, error) {
	if establishmentID == "" {
		return nil, ErrMissingRequiredData
	}

	professionals, err := s.professionalRepo.ListByEstablishment(ctx, establishmentID)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar profissionais: %w", err)
	}
	return professionals, nil
}

func (s *Service) CreateProfessional(ctx context.Context, establishmentID string, req *domain.CreateProfessionalRequest) (*domain.Professional, error) {
	name := strings.TrimSpace(req.Name)
	if establishmentID == "" || name == "" {
		return nil, ErrMissingRequiredData
	}

	professional := &domain.Professional{
		EstablishmentID: establishmentID,
		Name:            name,
		Active:          activeOrDefault(req.Active),
	}

	if err := s.professionalRepo.Create(ctx, professional); err != nil {
		return nil, fmt.Errorf("erro ao cadastrar profissional: %w", err)
	}

	log.ForContext(ctx).WithField("professional_id", professional.ID).Info("roster: profissional cadastrado")
	return professional, nil
}

func (s *Service) ListServiceProfessionals(ctx context.Context, establishmentID string) ([]*domain.ServiceProfessional, error) {
	if establishmentID == "" {
		return nil, ErrMissingRequiredData
	}

	links, err := s.professionalRepo.ListLinks(ctx, establishmentID)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar vínculos: %w", err)
	}
	return links, nil
}

// LinkProfessional só vincula serviço e profissional do próprio estabelecimento
func (s *Service) LinkProfessional(ctx context.Context, establishmentID string, req *domain.LinkProfessionalRequest) (*domain.ServiceProfessional, error) {
	if establishmentID == "" || req.ServiceID == "" || req.ProfessionalID == "" {
		return nil, ErrMissingRequiredData
	}

	service, err := s.serviceRepo.GetByID(ctx, establishmentID, req.ServiceID)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar serviço: %w", err)
	}
	if service == nil {
		return nil, ErrServiceNotFound
	}

	professional, err := s.professionalRepo.GetByID(ctx, establishmentID, req.ProfessionalID)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar profissional: %w", err)
	}
	if professional == nil {
		return nil, ErrProfessionalNotFound
	}

	link := &domain.ServiceProfessional{
		EstablishmentID: establishmentID,
		ServiceID:       service.ID,
		ProfessionalID:  professional.ID,
	}
	if err := s.professionalRepo.Link(ctx, link); err != nil {
		if errors.Is(err, repository.ErrAlreadyExists) {
			return nil, ErrAlreadyLinked
		}
		return nil, fmt.Errorf("erro ao vincular profissional: %w", err)
	}

	return link, nil
}

func (s *Service) UnlinkProfessional(ctx context.Context, establishmentID, linkID string) error {
	if establishmentID == "" || linkID == "" {
		return ErrMissingRequiredData
	}

	if err := s.professionalRepo.Unlink(ctx, establishmentID, linkID); err != nil {
		if errors.Is(err, repository.ErrNoRowsAffected) {
			return ErrLinkNotFound
		}
		return fmt.Errorf("erro ao desvincular profissional: %w", err)
	}

	return nil
}

func activeOrDefault(active *bool) bool {
	if active == nil {
		return true
	}
	return *active
}
