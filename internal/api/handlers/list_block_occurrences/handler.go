package list_block_occurrences

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-AvailabilityService/internal/api/handlers"
	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	"github.com/m04kA/SMC-AvailabilityService/internal/service/timeblocks"
)

const (
	msgInvalidBusinessID = "некорректный ID бизнеса"
	msgInvalidWindow     = "параметры from и to обязательны в формате YYYY-MM-DD"
	msgInvalidData       = "некорректное окно: "
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

// Handle GET /api/v1/businesses/{businessId}/time-blocks/occurrences?from=YYYY-MM-DD&to=YYYY-MM-DD
// Окно [from, to), вхождения отсортированы по началу
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	businessID, err := strconv.ParseInt(vars["businessId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /businesses/{id}/time-blocks/occurrences - Invalid business ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBusinessID)
		return
	}

	query := r.URL.Query()
	from, errFrom := time.Parse(domain.DateFormat, query.Get("from"))
	to, errTo := time.Parse(domain.DateFormat, query.Get("to"))
	if err := errors.Join(errFrom, errTo); err != nil {
		h.logger.Warn("GET /businesses/{id}/time-blocks/occurrences - Invalid window: %v", err)
		handlers.RespondBadRequest(w, msgInvalidWindow)
		return
	}

	result, err := h.service.ListOccurrences(r.Context(), businessID, from, to)
	if err != nil {
		switch {
		case errors.Is(err, timeblocks.ErrBusinessNotFound):
			h.logger.Warn("GET /businesses/{id}/time-blocks/occurrences - Business not found: business_id=%d", businessID)
			handlers.RespondNotFound(w, msgBusinessNotFound)

		case errors.Is(err, timeblocks.ErrInvalidInput):
			h.logger.Warn("GET /businesses/{id}/time-blocks/occurrences - Invalid window: business_id=%d, error=%v", businessID, err)
			handlers.RespondBadRequest(w, msgInvalidData+err.Error())

		default:
			h.logger.Error("GET /businesses/{id}/time-blocks/occurrences - Failed to list occurrences: business_id=%d, error=%v",
				businessID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /businesses/{id}/time-blocks/occurrences - Occurrences retrieved successfully: business_id=%d, count=%d",
		businessID, len(result.Occurrences))
	handlers.RespondJSON(w, http.StatusOK, result)
}
