package get_available_slots

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

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	getAvailableSlots "github.com/m04kA/SMC-AvailabilityService/internal/usecase/get_available_slots"
	"github.com/m04kA/SMC-AvailabilityService/pkg/logger"
	"github.com/m04kA/SMC-AvailabilityService/pkg/types"
)

type fakeUseCase struct {
	resp *getAvailableSlots.Response
	err  error
	req  *getAvailableSlots.Request
}

func (f *fakeUseCase) Execute(_ context.Context, req *getAvailableSlots.Request) (*getAvailableSlots.Response, error) {
	f.req = req
	return f.resp, f.err
}

func serve(h *Handler, businessID, query string) *httptest.ResponseRecorder {
	r := httptest.NewRequest(http.MethodGet, "/api/v1/businesses/"+businessID+"/available-slots?"+query, nil)
	r = mux.SetURLVars(r, map[string]string{"businessId": businessID})
	w := httptest.NewRecorder()
	h.Handle(w, r)
	return w
}

func TestHandle(t *testing.T) {
	uc := &fakeUseCase{resp: &getAvailableSlots.Response{
		Date:            time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC),
		BusinessID:      7,
		DurationMinutes: 60,
		Segment:         domain.SegmentVIP,
		Slots:           []types.TimeString{"09:00", "09:30"},
	}}
	h := NewHandler(uc, logger.NewNop())

	w := serve(h, "7", "date=2025-03-10&duration=60&email=vip@example.com")
	require.Equal(t, http.StatusOK, w.Code)

	var body AvailableSlotsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "2025-03-10", body.Date)
	assert.Equal(t, []string{"09:00", "09:30"}, body.Slots)
	assert.Equal(t, "vip", body.Segment)

	assert.Equal(t, int64(7), uc.req.BusinessID)
	assert.Equal(t, 60, uc.req.DurationMinutes)
	require.NotNil(t, uc.req.CustomerEmail)
	assert.Equal(t, "vip@example.com", *uc.req.CustomerEmail)
	assert.Nil(t, uc.req.CustomerPhone)
}

func TestHandleEmptySlotsIsArray(t *testing.T) {
	uc := &fakeUseCase{resp: &getAvailableSlots.Response{
		Date:  time.Date(2025, time.March, 9, 0, 0, 0, 0, time.UTC),
		Slots: []types.TimeString{},
	}}
	w := serve(NewHandler(uc, logger.NewNop()), "7", "date=2025-03-09&duration=30")

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"slots":[]`)
}

func TestHandleBadRequests(t *testing.T) {
	tests := []struct {
		name       string
		businessID string
		query      string
		message    string
	}{
		{name: "business id", businessID: "abc", query: "date=2025-03-10&duration=60", message: msgInvalidBusinessID},
		{name: "missing date", businessID: "7", query: "duration=60", message: msgMissingDate},
		{name: "bad date", businessID: "7", query: "date=10.03.2025&duration=60", message: msgInvalidDate},
		{name: "missing duration", businessID: "7", query: "date=2025-03-10", message: msgMissingDuration},
		{name: "bad duration", businessID: "7", query: "date=2025-03-10&duration=hour", message: msgInvalidDuration},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &fakeUseCase{}
			w := serve(NewHandler(uc, logger.NewNop()), tt.businessID, tt.query)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Contains(t, w.Body.String(), tt.message)
			assert.Nil(t, uc.req)
		})
	}
}

func TestHandleUseCaseErrors(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code int
	}{
		{name: "not found", err: getAvailableSlots.ErrBusinessNotFound, code: http.StatusNotFound},
		{name: "invalid input", err: getAvailableSlots.ErrInvalidInput, code: http.StatusBadRequest},
		{name: "internal", err: errors.New("db down"), code: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := serve(NewHandler(&fakeUseCase{err: tt.err}, logger.NewNop()), "7", "date=2025-03-10&duration=0")
			assert.Equal(t, tt.code, w.Code)
		})
	}
}
