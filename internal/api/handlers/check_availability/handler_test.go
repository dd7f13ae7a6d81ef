package check_availability

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-DoctorService/internal/api/handlers"
	"github.com/m04kA/SMC-DoctorService/internal/domain"
	checkAvailability "github.com/m04kA/SMC-DoctorService/internal/usecase/check_availability"
)

type fakeUseCase struct {
	resp *checkAvailability.Response
	err  error
}

func (f *fakeUseCase) Execute(_ context.Context, _ *checkAvailability.Request) (*checkAvailability.Response, error) {
	return f.resp, f.err
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

func doRequest(h *Handler, doctorID, date string) *httptest.ResponseRecorder {
	url := fmt.Sprintf("/v1/doctors/%s/availability", doctorID)
	if date != "" {
		url += "?date=" + date
	}

	req := httptest.NewRequest(http.MethodGet, url, nil)
	req = mux.SetURLVars(req, map[string]string{"doctorId": doctorID})

	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

func TestHandler_Handle(t *testing.T) {
	date := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)

	t.Run("Success Returns Slots", func(t *testing.T) {
		uc := &fakeUseCase{resp: &checkAvailability.Response{
			DoctorID: 1,
			Date:     date,
			Slots: []domain.Slot{
				{Start: time.Date(2025, 6, 10, 9, 0, 0, 0, time.UTC), End: time.Date(2025, 6, 10, 9, 30, 0, 0, time.UTC)},
				{Start: time.Date(2025, 6, 10, 9, 30, 0, 0, time.UTC), End: time.Date(2025, 6, 10, 10, 0, 0, 0, time.UTC)},
			},
			ClinicHours: domain.DefaultClinicHours(),
		}}
		h := NewHandler(uc, noopLogger{})

		rec := doRequest(h, "1", "2025-06-10")

		require.Equal(t, http.StatusOK, rec.Code)

		var resp AvailabilityResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, int64(1), resp.DoctorID)
		assert.Equal(t, "2025-06-10", resp.Date)
		require.Len(t, resp.AvailableSlots, 2)
		assert.Equal(t, "2025-06-10T09:00:00", resp.AvailableSlots[0].Start)
		assert.Equal(t, "2025-06-10T09:30:00", resp.AvailableSlots[0].End)
		assert.Equal(t, "9:00", resp.ClinicHours.Start)
		assert.Equal(t, "18:00", resp.ClinicHours.End)
	})

	t.Run("Missing Date Returns 400", func(t *testing.T) {
		h := NewHandler(&fakeUseCase{}, noopLogger{})

		rec := doRequest(h, "1", "")

		require.Equal(t, http.StatusBadRequest, rec.Code)

		var errResp handlers.ErrorResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &errResp))
		assert.Equal(t, "date query parameter is required", errResp.Message)
	})

	t.Run("Malformed Date Returns 400", func(t *testing.T) {
		h := NewHandler(&fakeUseCase{}, noopLogger{})

		rec := doRequest(h, "1", "10-06-2025")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("Invalid Doctor ID Returns 400", func(t *testing.T) {
		h := NewHandler(&fakeUseCase{}, noopLogger{})

		rec := doRequest(h, "abc", "2025-06-10")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("Doctor Not Found Returns 404", func(t *testing.T) {
		h := NewHandler(&fakeUseCase{err: checkAvailability.ErrDoctorNotFound}, noopLogger{})

		rec := doRequest(h, "999", "2025-06-10")

		require.Equal(t, http.StatusNotFound, rec.Code)

		var errResp handlers.ErrorResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &errResp))
		assert.Equal(t, "Doctor not found", errResp.Message)
	})

	t.Run("Past Date Returns 400", func(t *testing.T) {
		h := NewHandler(&fakeUseCase{err: checkAvailability.ErrDateInPast}, noopLogger{})

		rec := doRequest(h, "1", "2020-01-01")

		require.Equal(t, http.StatusBadRequest, rec.Code)

		var errResp handlers.ErrorResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &errResp))
		assert.Equal(t, "Cannot book in the past", errResp.Message)
	})

	t.Run("Internal Error Returns 500", func(t *testing.T) {
		h := NewHandler(&fakeUseCase{err: checkAvailability.ErrInternal}, noopLogger{})

		rec := doRequest(h, "1", "2025-06-10")

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}
