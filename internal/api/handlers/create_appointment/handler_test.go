package create_appointment

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/beepkz/BEEP-BookingService/internal/api/middleware"
	"github.com/beepkz/BEEP-BookingService/internal/domain"
	createAppointment "github.com/beepkz/BEEP-BookingService/internal/usecase/create_appointment"
)

type mockUseCase struct {
	result *domain.Appointment
	err    error
	gotReq *createAppointment.Request
}

func (m *mockUseCase) Execute(ctx context.Context, req *createAppointment.Request) (*domain.Appointment, error) {
	m.gotReq = req
	return m.result, m.err
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func doRequest(t *testing.T, uc *mockUseCase, body string, authenticated bool) *httptest.ResponseRecorder {
	t.Helper()
	handler := NewHandler(uc, nopLogger{})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/appointments", strings.NewReader(body))
	if authenticated {
		req = req.WithContext(middleware.WithUser(req.Context(), &domain.User{ID: 10}))
	}
	rec := httptest.NewRecorder()
	handler.Handle(rec, req)
	return rec
}

const validBody = `{"master_id": 7, "service_id": 3, "date": "2026-09-10", "time": "14:00", "comment": "стучит подвеска"}`

func TestHandle_Created(t *testing.T) {
	uc := &mockUseCase{
		result: &domain.Appointment{
			ID:       42,
			UserID:   10,
			MasterID: 7,
			Status:   domain.StatusPending,
			Time:     "14:00",
		},
	}

	rec := doRequest(t, uc, validBody, true)

	require.Equal(t, http.StatusCreated, rec.Code)
	require.NotNil(t, uc.gotReq)
	assert.Equal(t, int64(10), uc.gotReq.UserID)

	var resp AppointmentResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, int64(42), resp.ID)
	assert.Equal(t, "pending", resp.Status)
}

func TestHandle_Unauthorized(t *testing.T) {
	rec := doRequest(t, &mockUseCase{}, validBody, false)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestHandle_InvalidBody(t *testing.T) {
	rec := doRequest(t, &mockUseCase{}, `{"master_id": `, true)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandle_BadDateFormat(t *testing.T) {
	rec := doRequest(t, &mockUseCase{}, `{"master_id": 7, "service_id": 3, "date": "10.09.2026", "time": "14:00"}`, true)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), msgInvalidDateTime)
}

func TestHandle_ErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantMsg    string
	}{
		{"мастер не найден", createAppointment.ErrMasterNotFound, http.StatusNotFound, msgMasterNotFound},
		{"услуга не найдена", createAppointment.ErrServiceNotFound, http.StatusNotFound, msgServiceNotFound},
		{"время занято", createAppointment.ErrSlotTaken, http.StatusConflict, msgSlotTaken},
		{"прошедшая дата", createAppointment.ErrInvalidDate, http.StatusBadRequest, msgPastDate},
		{"некорректные данные", createAppointment.ErrInvalidInput, http.StatusBadRequest, msgInvalidInput},
		{"внутренняя ошибка", createAppointment.ErrInternal, http.StatusInternalServerError, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doRequest(t, &mockUseCase{err: tt.err}, validBody, true)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantMsg != "" {
				assert.Contains(t, rec.Body.String(), tt.wantMsg)
			}
		})
	}
}
