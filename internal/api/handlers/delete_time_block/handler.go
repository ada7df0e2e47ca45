package delete_time_block

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-AvailabilityService/internal/api/handlers"
	"github.com/m04kA/SMC-AvailabilityService/internal/service/timeblocks"
)

const (
	msgInvalidBusinessID = "некорректный ID бизнеса"
	msgInvalidBlockID    = "некорректный ID блокировки"
	msgTimeBlockNotFound = "блокировка не найдена"
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

// Handle DELETE /api/v1/businesses/{businessId}/time-blocks/{blockId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	businessID, err := strconv.ParseInt(vars["businessId"], 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /businesses/{id}/time-blocks/{blockId} - Invalid business ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBusinessID)
		return
	}

	blockID, err := uuid.Parse(vars["blockId"])
	if err != nil {
		h.logger.Warn("DELETE /businesses/{id}/time-blocks/{blockId} - Invalid block ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBlockID)
		return
	}

	if err := h.service.Delete(r.Context(), businessID, blockID); err != nil {
		switch {
		case errors.Is(err, timeblocks.ErrTimeBlockNotFound):
			h.logger.Warn("DELETE /businesses/{id}/time-blocks/{blockId} - Time block not found: business_id=%d, block_id=%s",
				businessID, blockID)
			handlers.RespondNotFound(w, msgTimeBlockNotFound)

		default:
			h.logger.Error("DELETE /businesses/{id}/time-blocks/{blockId} - Failed to delete time block: business_id=%d, block_id=%s, error=%v",
				businessID, blockID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /businesses/{id}/time-blocks/{blockId} - Time block deleted successfully: business_id=%d, block_id=%s",
		businessID, blockID)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
