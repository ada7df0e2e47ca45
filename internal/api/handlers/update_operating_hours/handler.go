package update_operating_hours

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-AvailabilityService/internal/api/handlers"
	"github.com/m04kA/SMC-AvailabilityService/internal/service/hours"
)

const (
	msgInvalidBusinessID  = "некорректный ID бизнеса"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidData        = "некорректное расписание: "
	msgBusinessNotFound   = "бизнес не найден"
)

type Handler struct {
	service HoursService
	logger  Logger
}

func NewHandler(service HoursService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PUT /api/v1/businesses/{businessId}/operating-hours
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	businessID, err := strconv.ParseInt(vars["businessId"], 10, 64)
	if err != nil {
		h.logger.Warn("PUT /businesses/{id}/operating-hours - Invalid business ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBusinessID)
		return
	}

	var req UpdateOperatingHoursRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /businesses/{id}/operating-hours - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if err := handlers.ValidateStruct(&req); err != nil {
		h.logger.Warn("PUT /businesses/{id}/operating-hours - Validation failed: %v", err)
		handlers.RespondBadRequest(w, msgInvalidData+err.Error())
		return
	}

	result, err := h.service.Update(r.Context(), req.ToServiceRequest(businessID))
	if err != nil {
		switch {
		case errors.Is(err, hours.ErrBusinessNotFound):
			h.logger.Warn("PUT /businesses/{id}/operating-hours - Business not found: business_id=%d", businessID)
			handlers.RespondNotFound(w, msgBusinessNotFound)

		case errors.Is(err, hours.ErrInvalidInput):
			h.logger.Warn("PUT /businesses/{id}/operating-hours - Invalid hours: business_id=%d, error=%v", businessID, err)
			handlers.RespondBadRequest(w, msgInvalidData+err.Error())

		default:
			h.logger.Error("PUT /businesses/{id}/operating-hours - Failed to update hours: business_id=%d, error=%v",
				businessID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /businesses/{id}/operating-hours - Hours updated successfully: business_id=%d", businessID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
