package booking

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/vfg2006/salon-manager-api/infrastructure/repository"
	"github.com/vfg2006/salon-manager-api/internal/config"
	"github.com/vfg2006/salon-manager-api/internal/domain"
	"github.com/vfg2006/salon-manager-api/pkg/log"
)

type Booker interface {
	GetCatalog(ctx context.Context, establishmentID string) (*domain.Catalog, error)
	GetAvailability(ctx context.Context, establishmentID, professionalID, day string) (*domain.Availability, error)
	CreateBooking(ctx context.Context, req *domain.BookingRequest) (*domain.BookingConfirmation, error)
}

type Service struct {
	repo     repository.BookingRepository
	grid     grid
	location *time.Location
	now      func() time.Time
}

func NewService(cfg *config.Config, repo repository.BookingRepository) (*Service, error) {
	g, err := newGrid(cfg.Booking.OpeningTime, cfg.Booking.ClosingTime, cfg.Booking.SlotMinutes)
	if err != nil {
		return nil, err
	}

	loc := cfg.App.Location
	if loc == nil {
		loc = time.UTC
	}

	return &Service{
		repo:     repo,
		grid:     g,
		location: loc,
		now:      time.Now,
	}, nil
}

var _ Booker = (*Service)(nil)

func (s *Service) GetCatalog(ctx context.Context, establishmentID string) (*domain.Catalog, error) {
	if establishmentID == "" {
		return nil, ErrMissingRequiredData
	}

	catalog, err := s.repo.GetPublicCatalog(ctx, establishmentID)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar catálogo: %w", err)
	}

	return catalog, nil
}

// GetAvailability monta a grade do dia e marca os horários já reservados para o profissional
func (s *Service) GetAvailability(ctx context.Context, establishmentID, professionalID, day string) (*domain.Availability, error) {
	if establishmentID == "" || professionalID == "" {
		return nil, ErrMissingRequiredData
	}

	date, err := s.parseDay(day)
	if err != nil {
		return nil, err
	}

	booked, err := s.bookedStarts(ctx, establishmentID, professionalID, date)
	if err != nil {
		return nil, err
	}

	starts := s.grid.starts(date)
	slots := make([]domain.Slot, 0, len(starts))
	for _, start := range starts {
		slots = append(slots, domain.Slot{
			Time:   start.Format(clockLayout),
			Start:  start,
			Booked: isBooked(start, booked),
		})
	}

	return &domain.Availability{
		EstablishmentID: establishmentID,
		ProfessionalID:  professionalID,
		Day:             date.Format(time.DateOnly),
		Slots:           slots,
	}, nil
}

func (s *Service) CreateBooking(ctx context.Context, req *domain.BookingRequest) (*domain.BookingConfirmation, error) {
	logger := log.ForContext(ctx)

	req.ClientName = strings.TrimSpace(req.ClientName)
	req.Phone = strings.TrimSpace(req.Phone)

	if req.EstablishmentID == "" || req.ClientName == "" || req.Phone == "" ||
		req.ServiceID == "" || req.ProfessionalID == "" || req.Slot == "" {
		return nil, ErrMissingRequiredData
	}

	date, err := s.parseDay(req.Day)
	if err != nil {
		return nil, err
	}

	offset, err := parseClock(req.Slot)
	if err != nil {
		return nil, ErrInvalidSlot
	}

	start := date.Add(offset)
	if !s.grid.contains(date, start) {
		return nil, ErrInvalidSlot
	}

	if start.Before(s.now()) {
		return nil, ErrPastSlot
	}

	booked, err := s.bookedStarts(ctx, req.EstablishmentID, req.ProfessionalID, date)
	if err != nil {
		return nil, err
	}

	if isBooked(start, booked) {
		return nil, ErrSlotUnavailable
	}

	code, err := s.repo.CreatePublicBooking(ctx, req, start)
	if err != nil {
		return nil, fmt.Errorf("erro ao criar agendamento: %w", err)
	}

	if code == "" {
		return nil, ErrBookingRejected
	}

	logger.WithFields(log.Fields{
		"establishment_id": req.EstablishmentID,
		"professional_id":  req.ProfessionalID,
		"start_time":       start.Format(time.RFC3339),
	}).Info("booking: agendamento público criado")

	return &domain.BookingConfirmation{
		Code:      code,
		StartTime: start,
	}, nil
}

func (s *Service) parseDay(day string) (time.Time, error) {
	date, err := time.ParseInLocation(time.DateOnly, day, s.location)
	if err != nil {
		return time.Time{}, ErrInvalidDay
	}
	return date, nil
}

func (s *Service) bookedStarts(ctx context.Context, establishmentID, professionalID string, date time.Time) ([]time.Time, error) {
	result, err := s.repo.GetPublicAvailability(ctx, establishmentID, professionalID, date)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar horários reservados: %w", err)
	}

	starts := make([]time.Time, 0, len(result.Booked))
	for _, value := range result.Booked {
		t, ok := parseBooked(value, s.location)
		if !ok {
			log.ForContext(ctx).WithField("value", value).Warn("booking: horário reservado em formato desconhecido")
			continue
		}
		starts = append(starts, t)
	}

	return starts, nil
}

func isBooked(start time.Time, booked []time.Time) bool {
	for _, b := range booked {
		if sameSlot(start, b) {
			return true
		}
	}
	return false
}
