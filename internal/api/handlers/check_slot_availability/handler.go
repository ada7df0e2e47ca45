package check_slot_availability

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-AvailabilityService/internal/api/handlers"
	checkSlotAvailability "github.com/m04kA/SMC-AvailabilityService/internal/usecase/check_slot_availability"
)

const (
	msgInvalidBusinessID = "некорректный ID бизнеса"
	msgMissingParams     = "параметры date, time и duration обязательны"
	msgInvalidDate       = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidDuration   = "длительность услуги должна быть целым числом минут от 1 до 1440"
	msgInvalidInput      = "некорректные параметры запроса, время ожидается в формате HH:MM"
	msgBusinessNotFound  = "бизнес не найден"
)

var (
	errInvalidDate     = errors.New("invalid date")
	errInvalidDuration = errors.New("invalid duration")
)

type Handler struct {
	useCase CheckSlotAvailabilityUseCase
	logger  Logger
}

func NewHandler(useCase CheckSlotAvailabilityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/businesses/{businessId}/slot-availability
// Query params: date, time (HH:MM), duration (required), email, phone (optional)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	businessID, err := strconv.ParseInt(vars["businessId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /businesses/{id}/slot-availability - Invalid business ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBusinessID)
		return
	}

	query := r.URL.Query()
	dateStr, timeStr, durationStr := query.Get("date"), query.Get("time"), query.Get("duration")
	if dateStr == "" || timeStr == "" || durationStr == "" {
		h.logger.Warn("GET /businesses/{id}/slot-availability - Missing required params")
		handlers.RespondBadRequest(w, msgMissingParams)
		return
	}

	useCaseReq, err := ToUseCaseRequest(businessID, dateStr, timeStr, durationStr, query.Get("email"), query.Get("phone"))
	if err != nil {
		h.logger.Warn("GET /businesses/{id}/slot-availability - Invalid query: %v", err)
		if errors.Is(err, errInvalidDuration) {
			handlers.RespondBadRequest(w, msgInvalidDuration)
		} else {
			handlers.RespondBadRequest(w, msgInvalidDate)
		}
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, checkSlotAvailability.ErrBusinessNotFound):
			h.logger.Warn("GET /businesses/{id}/slot-availability - Business not found: business_id=%d", businessID)
			handlers.RespondNotFound(w, msgBusinessNotFound)

		case errors.Is(err, checkSlotAvailability.ErrInvalidInput):
			h.logger.Warn("GET /businesses/{id}/slot-availability - Invalid input: business_id=%d, error=%v", businessID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("GET /businesses/{id}/slot-availability - Failed to check slot: business_id=%d, error=%v",
				businessID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /businesses/{id}/slot-availability - Slot checked: business_id=%d, date=%s, time=%s, available=%t",
		businessID, dateStr, timeStr, result.Available)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
