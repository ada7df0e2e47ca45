package update_operating_hours

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AvailabilityService/internal/service/hours"
	"github.com/m04kA/SMC-AvailabilityService/internal/service/hours/models"
	"github.com/m04kA/SMC-AvailabilityService/pkg/logger"
)

type fakeService struct {
	err error
	req *models.UpdateOperatingHoursRequest
}

func (f *fakeService) Update(_ context.Context, req *models.UpdateOperatingHoursRequest) (*models.OperatingHoursResponse, error) {
	f.req = req
	if f.err != nil {
		return nil, f.err
	}
	return &models.OperatingHoursResponse{BusinessID: req.BusinessID}, nil
}

func serve(h *Handler, body string) *httptest.ResponseRecorder {
	r := httptest.NewRequest(http.MethodPut, "/api/v1/businesses/7/operating-hours", strings.NewReader(body))
	r = mux.SetURLVars(r, map[string]string{"businessId": "7"})
	w := httptest.NewRecorder()
	h.Handle(w, r)
	return w
}

func TestHandle(t *testing.T) {
	svc := &fakeService{}
	w := serve(NewHandler(svc, logger.NewNop()),
		`{"monday":{"open":"08:00","close":"20:00"},"sunday":{"closed":true}}`)

	require.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, svc.req)
	assert.Equal(t, int64(7), svc.req.BusinessID)
	assert.Equal(t, &models.DayHoursRequest{Open: "08:00", Close: "20:00"}, svc.req.Monday)
	assert.Equal(t, &models.DayHoursRequest{Closed: true}, svc.req.Sunday)
	assert.Nil(t, svc.req.Tuesday)
}

func TestHandleValidation(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "broken json", body: `{"monday":`},
		{name: "unknown day", body: `{"funday":{"closed":true}}`},
		{name: "open day without close", body: `{"monday":{"open":"08:00"}}`},
		{name: "loose format", body: `{"monday":{"open":"8:00","close":"17:00"}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &fakeService{}
			w := serve(NewHandler(svc, logger.NewNop()), tt.body)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Nil(t, svc.req)
		})
	}
}

func TestHandleServiceErrors(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code int
	}{
		{name: "not found", err: hours.ErrBusinessNotFound, code: http.StatusNotFound},
		{name: "open after close", err: hours.ErrInvalidInput, code: http.StatusBadRequest},
		{name: "internal", err: errors.New("boom"), code: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := serve(NewHandler(&fakeService{err: tt.err}, logger.NewNop()), `{"friday":{"closed":true}}`)
			assert.Equal(t, tt.code, w.Code)
		})
	}
}
