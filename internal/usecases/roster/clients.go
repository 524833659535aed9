package roster

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/vfg2006/salon-manager-api/infrastructure/repository"
	"github.com/vfg2006/salon-manager-api/internal/domain"
	"github.com/vfg2006/salon-manager-api/internal/usecases/metrics"
	"github.com/vfg2006/salon-manager-api/pkg/log"
)

// ListClients devolve os clientes do mais novo para o mais antigo.
// Com o filtro "inactive" usa o mesmo corte de inatividade das métricas.
func (s *Service) ListClients(ctx context.Context, establishmentID, filter string) ([]*domain.Client, error) {
	if establishmentID == "" {
		return nil, ErrMissingRequiredData
	}
	if filter != "" && filter != domain.ClientFilterInactive {
		return nil, ErrInvalidFilter
	}

	clients, err := s.clientRepo.ListByEstablishment(ctx, establishmentID)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar clientes: %w", err)
	}

	sort.SliceStable(clients, func(i, j int) bool {
		return clients[i].CreatedAt.After(clients[j].CreatedAt)
	})

	if filter != domain.ClientFilterInactive {
		return clients, nil
	}

	threshold, err := s.inactiveDaysThreshold(ctx, establishmentID)
	if err != nil {
		return nil, err
	}

	cutoff := metrics.InactivityCutoff(s.now(), s.location, threshold)
	inactive := make([]*domain.Client, 0, len(clients))
	for _, client := range clients {
		if client.IsInactiveAt(cutoff) {
			inactive = append(inactive, client)
		}
	}

	return inactive, nil
}

// CreateClient exige nome e telefone
func (s *Service) CreateClient(ctx context.Context, establishmentID string, req *domain.CreateClientRequest) (*domain.Client, error) {
	name := strings.TrimSpace(req.Name)
	phone := strings.TrimSpace(req.Phone)
	if establishmentID == "" || name == "" || phone == "" {
		return nil, ErrMissingRequiredData
	}

	client := &domain.Client{
		EstablishmentID: establishmentID,
		Name:            name,
		Phone:           phone,
		Email:           req.Email,
		BirthDate:       req.BirthDate,
		Notes:           req.Notes,
	}

	if err := s.clientRepo.Create(ctx, client); err != nil {
		if errors.Is(err, repository.ErrAlreadyExists) {
			return nil, ErrClientAlreadyExists
		}
		return nil, fmt.Errorf("erro ao cadastrar cliente: %w", err)
	}

	log.ForContext(ctx).WithFields(log.Fields{
		"establishment_id": establishmentID,
		"client_id":        client.ID,
	}).Info("roster: cliente cadastrado")

	return client, nil
}

func (s *Service) inactiveDaysThreshold(ctx context.Context, establishmentID string) (int, error) {
	settings, err := s.settingsRepo.GetByEstablishment(ctx, establishmentID)
	if err != nil {
		return 0, fmt.Errorf("erro ao buscar configurações: %w", err)
	}
	if settings == nil || settings.InactiveDaysThreshold <= 0 {
		return s.defaultInactiveDays, nil
	}
	return settings.InactiveDaysThreshold, nil
}
