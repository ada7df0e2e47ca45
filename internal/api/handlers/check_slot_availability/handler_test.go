package check_slot_availability

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	checkSlotAvailability "github.com/m04kA/SMC-AvailabilityService/internal/usecase/check_slot_availability"
	"github.com/m04kA/SMC-AvailabilityService/pkg/logger"
)

type fakeUseCase struct {
	resp *checkSlotAvailability.Response
	err  error
	req  *checkSlotAvailability.Request
}

func (f *fakeUseCase) Execute(_ context.Context, req *checkSlotAvailability.Request) (*checkSlotAvailability.Response, error) {
	f.req = req
	return f.resp, f.err
}

func serve(h *Handler, query string) *httptest.ResponseRecorder {
	r := httptest.NewRequest(http.MethodGet, "/api/v1/businesses/7/slot-availability?"+query, nil)
	r = mux.SetURLVars(r, map[string]string{"businessId": "7"})
	w := httptest.NewRecorder()
	h.Handle(w, r)
	return w
}

func TestHandle(t *testing.T) {
	uc := &fakeUseCase{resp: &checkSlotAvailability.Response{
		Date:            time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC),
		Time:            "10:30",
		DurationMinutes: 60,
		Available:       true,
	}}

	w := serve(NewHandler(uc, logger.NewNop()), "date=2025-03-10&time=10:30&duration=60&phone=%2B79990001122")
	require.Equal(t, http.StatusOK, w.Code)

	var body SlotAvailabilityResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, SlotAvailabilityResponse{Date: "2025-03-10", Time: "10:30", DurationMinutes: 60, Available: true}, body)

	require.NotNil(t, uc.req.CustomerPhone)
	assert.Equal(t, "+79990001122", *uc.req.CustomerPhone)
}

func TestHandleErrors(t *testing.T) {
	tests := []struct {
		name  string
		query string
		err   error
		code  int
	}{
		{name: "missing time", query: "date=2025-03-10&duration=60", code: http.StatusBadRequest},
		{name: "bad date", query: "date=2025-13-10&time=10:00&duration=60", code: http.StatusBadRequest},
		{name: "bad duration", query: "date=2025-03-10&time=10:00&duration=1.5", code: http.StatusBadRequest},
		{name: "loose time", query: "date=2025-03-10&time=9:00&duration=60", err: checkSlotAvailability.ErrInvalidInput, code: http.StatusBadRequest},
		{name: "not found", query: "date=2025-03-10&time=09:00&duration=60", err: checkSlotAvailability.ErrBusinessNotFound, code: http.StatusNotFound},
		{name: "internal", query: "date=2025-03-10&time=09:00&duration=60", err: errors.New("boom"), code: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := serve(NewHandler(&fakeUseCase{err: tt.err}, logger.NewNop()), tt.query)
			assert.Equal(t, tt.code, w.Code)
		})
	}
}
