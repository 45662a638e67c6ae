package list_cars

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/beepkz/BEEP-BookingService/internal/domain"
)

type mockCatalogService struct {
	cars []domain.Car
	err  error
}

func (m *mockCatalogService) GetCars(ctx context.Context) ([]domain.Car, error) {
	return m.cars, m.err
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func doRequest(t *testing.T, service *mockCatalogService) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	NewHandler(service, nopLogger{}).Handle(rec, httptest.NewRequest(http.MethodGet, "/api/v1/cars", nil))
	return rec
}

func TestHandle_ReturnsCars(t *testing.T) {
	service := &mockCatalogService{
		cars: []domain.Car{
			{ID: 1, Brand: "Toyota", Model: "Camry", Year: 2012, Type: "Standard"},
			{ID: 2, Brand: "BMW", Model: "X5", Year: 2021, Type: "Premium"},
		},
	}

	rec := doRequest(t, service)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[
		{"id":1,"brand":"Toyota","model":"Camry","year":2012,"type":"Standard"},
		{"id":2,"brand":"BMW","model":"X5","year":2021,"type":"Premium"}
	]`, rec.Body.String())
}

func TestHandle_EmptyCatalogIsEmptyArray(t *testing.T) {
	rec := doRequest(t, &mockCatalogService{})

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestHandle_ServiceError(t *testing.T) {
	rec := doRequest(t, &mockCatalogService{err: context.DeadlineExceeded})

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error":"внутренняя ошибка сервера"}`, rec.Body.String())
}
