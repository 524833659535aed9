package booking

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/salon-manager-api/infrastructure/repository/mocks"
	"github.com/vfg2006/salon-manager-api/internal/config"
	"github.com/vfg2006/salon-manager-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func newTestService(t *testing.T) (*Service, *mocks.MockBookingRepository) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockBookingRepository(ctrl)

	loc, err := time.LoadLocation("America/Sao_Paulo")
	require.NoError(t, err)

	cfg := &config.Config{
		App:     config.App{Location: loc},
		Booking: config.Booking{OpeningTime: "09:00", ClosingTime: "18:00", SlotMinutes: 30},
	}

	service, err := NewService(cfg, repo)
	require.NoError(t, err)

	service.now = func() time.Time { return time.Date(2024, 3, 14, 12, 0, 0, 0, loc) }

	return service, repo
}

func TestNewService_InvalidGrid(t *testing.T) {
	cfg := &config.Config{Booking: config.Booking{OpeningTime: "18:00", ClosingTime: "09:00", SlotMinutes: 30}}

	_, err := NewService(cfg, nil)
	assert.Error(t, err)
}

func TestService_GetAvailability(t *testing.T) {
	ctx := context.Background()

	t.Run("grade de 09:00 a 18:00 com horários reservados", func(t *testing.T) {
		service, repo := newTestService(t)

		repo.EXPECT().GetPublicAvailability(ctx, "est-1", "pro-1", gomock.Any()).Return(&domain.BookedTimes{
			Booked: []string{
				"2024-03-15T10:30:00-03:00",
				"2024-03-15T17:00:00.000Z", // 14:00 local
				"2024-03-15 16:00:00",
				"not a date",
			},
		}, nil)

		availability, err := service.GetAvailability(ctx, "est-1", "pro-1", "2024-03-15")
		require.NoError(t, err)

		require.Len(t, availability.Slots, 19)
		assert.Equal(t, "09:00", availability.Slots[0].Time)
		assert.Equal(t, "18:00", availability.Slots[18].Time)

		booked := make([]string, 0)
		for _, slot := range availability.Slots {
			if slot.Booked {
				booked = append(booked, slot.Time)
			}
		}
		assert.Equal(t, []string{"10:30", "14:00", "16:00"}, booked)
	})

	t.Run("reservas de outro dia não marcam a grade", func(t *testing.T) {
		service, repo := newTestService(t)

		repo.EXPECT().GetPublicAvailability(ctx, "est-1", "pro-1", gomock.Any()).Return(&domain.BookedTimes{
			Booked: []string{"2024-03-16T10:30:00-03:00"},
		}, nil)

		availability, err := service.GetAvailability(ctx, "est-1", "pro-1", "2024-03-15")
		require.NoError(t, err)

		for _, slot := range availability.Slots {
			assert.False(t, slot.Booked, slot.Time)
		}
	})

	t.Run("data inválida", func(t *testing.T) {
		service, _ := newTestService(t)

		_, err := service.GetAvailability(ctx, "est-1", "pro-1", "15/03/2024")
		assert.ErrorIs(t, err, ErrInvalidDay)
	})
}

func TestService_CreateBooking(t *testing.T) {
	ctx := context.Background()

	request := func() *domain.BookingRequest {
		return &domain.BookingRequest{
			EstablishmentID: "est-1",
			ClientName:      " Ana ",
			Phone:           "11999990000",
			ServiceID:       "cut",
			ProfessionalID:  "pro-1",
			Day:             "2024-03-15",
			Slot:            "10:00",
		}
	}

	t.Run("confirma horário livre", func(t *testing.T) {
		service, repo := newTestService(t)

		repo.EXPECT().GetPublicAvailability(ctx, "est-1", "pro-1", gomock.Any()).
			Return(&domain.BookedTimes{Booked: []string{"2024-03-15T10:30:00-03:00"}}, nil)
		repo.EXPECT().CreatePublicBooking(ctx, gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, req *domain.BookingRequest, start time.Time) (string, error) {
				assert.Equal(t, "Ana", req.ClientName)
				assert.Equal(t, 10, start.Hour())
				return "ABC123", nil
			})

		confirmation, err := service.CreateBooking(ctx, request())
		require.NoError(t, err)
		assert.Equal(t, "ABC123", confirmation.Code)
	})

	t.Run("horário ocupado", func(t *testing.T) {
		service, repo := newTestService(t)

		repo.EXPECT().GetPublicAvailability(ctx, "est-1", "pro-1", gomock.Any()).
			Return(&domain.BookedTimes{Booked: []string{"2024-03-15T10:00:00-03:00"}}, nil)

		_, err := service.CreateBooking(ctx, request())
		assert.ErrorIs(t, err, ErrSlotUnavailable)
	})

	t.Run("horário fora da grade", func(t *testing.T) {
		service, _ := newTestService(t)

		req := request()
		req.Slot = "10:15"

		_, err := service.CreateBooking(ctx, req)
		assert.ErrorIs(t, err, ErrInvalidSlot)

		req.Slot = "18:30"
		_, err = service.CreateBooking(ctx, req)
		assert.ErrorIs(t, err, ErrInvalidSlot)
	})

	t.Run("horário no passado", func(t *testing.T) {
		service, _ := newTestService(t)

		req := request()
		req.Day = "2024-03-14"

		_, err := service.CreateBooking(ctx, req)
		assert.ErrorIs(t, err, ErrPastSlot)
	})

	t.Run("campos obrigatórios", func(t *testing.T) {
		service, _ := newTestService(t)

		req := request()
		req.Phone = " "

		_, err := service.CreateBooking(ctx, req)
		assert.ErrorIs(t, err, ErrMissingRequiredData)
	})

	t.Run("falha na função do banco", func(t *testing.T) {
		service, repo := newTestService(t)

		repo.EXPECT().GetPublicAvailability(ctx, "est-1", "pro-1", gomock.Any()).
			Return(&domain.BookedTimes{}, nil)
		repo.EXPECT().CreatePublicBooking(ctx, gomock.Any(), gomock.Any()).Return("", errors.New("timeout"))

		_, err := service.CreateBooking(ctx, request())
		assert.Error(t, err)
	})
}
