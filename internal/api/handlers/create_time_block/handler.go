package create_time_block

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-AvailabilityService/internal/api/handlers"
	"github.com/m04kA/SMC-AvailabilityService/internal/service/timeblocks"
)

const (
	msgInvalidBusinessID  = "некорректный ID бизнеса"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidData        = "некорректные данные блокировки: "
	msgBusinessNotFound   = "бизнес не найден"
)

type Handler struct {
	service TimeBlockService
	logger  Logger
}

func NewHandler(service TimeBlockService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/businesses/{businessId}/time-blocks
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	businessID, err := strconv.ParseInt(vars["businessId"], 10, 64)
	if err != nil {
		h.logger.Warn("POST /businesses/{id}/time-blocks - Invalid business ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBusinessID)
		return
	}

	var req CreateTimeBlockRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /businesses/{id}/time-blocks - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if err := handlers.ValidateStruct(&req); err != nil {
		h.logger.Warn("POST /businesses/{id}/time-blocks - Validation failed: %v", err)
		handlers.RespondBadRequest(w, msgInvalidData+err.Error())
		return
	}

	serviceReq, err := req.ToServiceRequest(businessID)
	if err != nil {
		h.logger.Warn("POST /businesses/{id}/time-blocks - Invalid dates: %v", err)
		handlers.RespondBadRequest(w, msgInvalidData+err.Error())
		return
	}

	result, err := h.service.Create(r.Context(), serviceReq)
	if err != nil {
		switch {
		case errors.Is(err, timeblocks.ErrBusinessNotFound):
			h.logger.Warn("POST /businesses/{id}/time-blocks - Business not found: business_id=%d", businessID)
			handlers.RespondNotFound(w, msgBusinessNotFound)

		case errors.Is(err, timeblocks.ErrInvalidInput):
			h.logger.Warn("POST /businesses/{id}/time-blocks - Invalid time block: business_id=%d, error=%v", businessID, err)
			handlers.RespondBadRequest(w, msgInvalidData+err.Error())

		default:
			h.logger.Error("POST /businesses/{id}/time-blocks - Failed to create time block: business_id=%d, error=%v",
				businessID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /businesses/{id}/time-blocks - Time block created successfully: business_id=%d, block_id=%s",
		businessID, result.ID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
