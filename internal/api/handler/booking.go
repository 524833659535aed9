package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"
	"github.com/vfg2006/salon-manager-api/internal/domain"
	"github.com/vfg2006/salon-manager-api/internal/usecases/booking"
	"github.com/vfg2006/salon-manager-api/pkg/apiErrors"
	"github.com/vfg2006/salon-manager-api/pkg/log"
)

func GetPublicCatalog(service booking.Booker) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		establishmentID := httprouter.ParamsFromContext(r.Context()).ByName("establishment")

		catalog, err := service.GetCatalog(r.Context(), establishmentID)
		if err != nil {
			log.ForContext(r.Context()).WithFields(log.Fields{
				"establishment_id": establishmentID,
				"error":            err.Error(),
			}).Error("booking: falha ao buscar catálogo")
			writeBookingError(w, err, "Erro ao carregar serviços")
			return
		}

		writeJSON(w, r, http.StatusOK, catalog)
	})
}

func GetPublicAvailability(service booking.Booker) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		establishmentID := httprouter.ParamsFromContext(r.Context()).ByName("establishment")
		query := r.URL.Query()

		availability, err := service.GetAvailability(r.Context(), establishmentID, query.Get("professional"), query.Get("day"))
		if requestGone(r) {
			return
		}
		if err != nil {
			log.ForContext(r.Context()).WithFields(log.Fields{
				"establishment_id": establishmentID,
				"error":            err.Error(),
			}).Warn("booking: falha ao buscar disponibilidade")
			writeBookingError(w, err, "Erro ao carregar horários")
			return
		}

		writeJSON(w, r, http.StatusOK, availability)
	})
}

func CreatePublicBooking(service booking.Booker) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		establishmentID := httprouter.ParamsFromContext(r.Context()).ByName("establishment")

		var req domain.BookingRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}
		req.EstablishmentID = establishmentID

		confirmation, err := service.CreateBooking(r.Context(), &req)
		if err != nil {
			log.ForContext(r.Context()).WithFields(log.Fields{
				"establishment_id": establishmentID,
				"error":            err.Error(),
			}).Warn("booking: agendamento recusado")
			writeBookingError(w, err, "Erro ao criar agendamento")
			return
		}

		writeJSON(w, r, http.StatusCreated, confirmation)
	})
}

func writeBookingError(w http.ResponseWriter, err error, fallback string) {
	switch {
	case errors.Is(err, booking.ErrMissingRequiredData):
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, err.Error(), nil)
	case errors.Is(err, booking.ErrInvalidDay):
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
	case errors.Is(err, booking.ErrInvalidSlot), errors.Is(err, booking.ErrPastSlot):
		apiErrors.WriteError(w, apiErrors.ErrSlotInvalid, err.Error(), nil)
	case errors.Is(err, booking.ErrSlotUnavailable), errors.Is(err, booking.ErrBookingRejected):
		apiErrors.WriteError(w, apiErrors.ErrSlotUnavailable, err.Error(), nil)
	default:
		apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, fallback, nil)
	}
}
