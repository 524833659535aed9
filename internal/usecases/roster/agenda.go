package roster

import (
	"context"
	"fmt"
	"sort"

	"github.com/vfg2006/salon-manager-api/internal/domain"
	"golang.org/x/sync/errgroup"
)

// Agenda lista os agendamentos da janela em ordem de horário com os nomes de cliente, serviço e profissional
func (s *Service) Agenda(ctx context.Context, establishmentID string, period domain.Period) (*domain.Agenda, error) {
	if establishmentID == "" {
		return nil, ErrMissingRequiredData
	}
	if !period.IsValid() {
		return nil, ErrInvalidPeriod
	}

	var (
		appointments  []*domain.Appointment
		services      []*domain.Service
		professionals []*domain.Professional
		clients       []*domain.Client
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		appointments, err = s.appointmentRepo.ListByPeriod(gctx, establishmentID, period)
		return err
	})
	g.Go(func() (err error) {
		services, err = s.serviceRepo.ListByEstablishment(gctx, establishmentID)
		return err
	})
	g.Go(func() (err error) {
		professionals, err = s.professionalRepo.ListByEstablishment(gctx, establishmentID)
		return err
	})
	g.Go(func() (err error) {
		clients, err = s.clientRepo.ListByEstablishment(gctx, establishmentID)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("erro ao montar agenda: %w", err)
	}

	serviceNames := domain.NewServiceNames(services)
	clientNames := make(map[string]string, len(clients))
	for _, c := range clients {
		clientNames[c.ID] = c.Name
	}
	professionalNames := make(map[string]string, len(professionals))
	for _, p := range professionals {
		professionalNames[p.ID] = p.Name
	}

	entries := make([]domain.AgendaEntry, 0, len(appointments))
	for _, a := range appointments {
		entry := domain.AgendaEntry{
			ID:              a.ID,
			AppointmentDate: a.AppointmentDate.In(s.location),
			Status:          a.Status,
			ClientID:        a.ClientID,
			ClientName:      lookupName(clientNames, a.ClientID),
			ServiceID:       a.ServiceID,
			ServiceName:     serviceNames.Lookup(a.ServiceID),
			ProfessionalID:  a.ProfessionalID,
		}
		if a.ProfessionalID != nil {
			name := lookupName(professionalNames, *a.ProfessionalID)
			entry.ProfessionalName = &name
		}
		entries = append(entries, entry)
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].AppointmentDate.Before(entries[j].AppointmentDate)
	})

	return &domain.Agenda{Period: period, Entries: entries}, nil
}

func lookupName(names map[string]string, id string) string {
	if name, ok := names[id]; ok {
		return name
	}
	return domain.UnknownName
}
