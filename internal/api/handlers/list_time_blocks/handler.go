package list_time_blocks

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-AvailabilityService/internal/api/handlers"
	"github.com/m04kA/SMC-AvailabilityService/internal/service/timeblocks"
)

const (
	msgInvalidBusinessID = "некорректный ID бизнеса"
	msgBusinessNotFound  = "бизнес не найден"
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

// Handle GET /api/v1/businesses/{businessId}/time-blocks
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	businessID, err := strconv.ParseInt(vars["businessId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /businesses/{id}/time-blocks - Invalid business ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBusinessID)
		return
	}

	result, err := h.service.List(r.Context(), businessID)
	if err != nil {
		switch {
		case errors.Is(err, timeblocks.ErrBusinessNotFound):
			h.logger.Warn("GET /businesses/{id}/time-blocks - Business not found: business_id=%d", businessID)
			handlers.RespondNotFound(w, msgBusinessNotFound)

		default:
			h.logger.Error("GET /businesses/{id}/time-blocks - Failed to list time blocks: business_id=%d, error=%v",
				businessID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /businesses/{id}/time-blocks - Time blocks retrieved successfully: business_id=%d, count=%d",
		businessID, len(result.TimeBlocks))
	handlers.RespondJSON(w, http.StatusOK, result)
}
