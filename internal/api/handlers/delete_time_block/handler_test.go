package delete_time_block

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-AvailabilityService/internal/service/timeblocks"
	"github.com/m04kA/SMC-AvailabilityService/pkg/logger"
)

type fakeService struct {
	err     error
	deleted uuid.UUID
}

func (f *fakeService) Delete(_ context.Context, _ int64, id uuid.UUID) error {
	f.deleted = id
	return f.err
}

func serve(h *Handler, blockID string) *httptest.ResponseRecorder {
	r := httptest.NewRequest(http.MethodDelete, "/api/v1/businesses/7/time-blocks/"+blockID, nil)
	r = mux.SetURLVars(r, map[string]string{"businessId": "7", "blockId": blockID})
	w := httptest.NewRecorder()
	h.Handle(w, r)
	return w
}

func TestHandle(t *testing.T) {
	id := uuid.New()
	svc := &fakeService{}

	w := serve(NewHandler(svc, logger.NewNop()), id.String())

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Body.String())
	assert.Equal(t, id, svc.deleted)
}

func TestHandleErrors(t *testing.T) {
	tests := []struct {
		name    string
		blockID string
		err     error
		code    int
	}{
		{name: "bad block id", blockID: "not-a-uuid", code: http.StatusBadRequest},
		{name: "not found", blockID: uuid.NewString(), err: timeblocks.ErrTimeBlockNotFound, code: http.StatusNotFound},
		{name: "internal", blockID: uuid.NewString(), err: errors.New("boom"), code: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := serve(NewHandler(&fakeService{err: tt.err}, logger.NewNop()), tt.blockID)
			assert.Equal(t, tt.code, w.Code)
		})
	}
}
