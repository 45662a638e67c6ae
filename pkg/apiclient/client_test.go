package apiclient

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return NewClient(server.URL, DefaultTimeout, nopLogger{})
}

func TestClient_SendsBearerTokenWhenSet(t *testing.T) {
	var gotAuth string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		json.NewEncoder(w).Encode([]Category{})
	})

	_, err := client.Categories(context.Background())
	require.NoError(t, err)
	assert.Empty(t, gotAuth)

	client.SetToken("abc-123")
	_, err = client.Categories(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Bearer abc-123", gotAuth)

	client.SetToken("")
	assert.False(t, client.HasToken())
}

func TestClient_CreateAppointmentBodyKeepsEmptyComment(t *testing.T) {
	var gotBody []byte
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotBody, _ = io.ReadAll(r.Body)
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(Appointment{ID: 1})
	})

	_, err := client.CreateAppointment(context.Background(), CreateAppointmentRequest{
		MasterID:  5,
		ServiceID: 9,
		Date:      "2026-09-10",
		Time:      "10:00",
	})

	require.NoError(t, err)
	// Ключ comment присутствует даже при пустом значении
	assert.JSONEq(t,
		`{"master_id":5,"service_id":9,"date":"2026-09-10","time":"10:00","comment":""}`,
		string(gotBody))
}

func TestClient_ErrorBodyParsedIntoAPIError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		json.NewEncoder(w).Encode(map[string]string{"error": "выбранное время уже занято"})
	})

	_, err := client.CreateAppointment(context.Background(), CreateAppointmentRequest{})

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusConflict, apiErr.StatusCode)
	assert.Equal(t, "выбранное время уже занято", apiErr.Message)
}

func TestClient_MalformedErrorBodyKeepsStatus(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte("<html>gateway error</html>"))
	})

	_, err := client.Masters(context.Background())

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusInternalServerError, apiErr.StatusCode)
	assert.Empty(t, apiErr.Message)
}

func TestClient_UnauthorizedHelper(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(map[string]string{"error": "требуется авторизация"})
	})

	_, err := client.Appointments(context.Background())

	assert.True(t, IsUnauthorized(err))
	assert.False(t, IsNotFound(err))
}

func TestClient_NetworkErrorWrapped(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // соединение заведомо оборвано

	client := NewClient(server.URL, DefaultTimeout, nopLogger{})
	_, err := client.Categories(context.Background())

	require.ErrorIs(t, err, ErrNetwork)
}

func TestClient_TimeoutIsNetworkError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	})
	client.httpClient.Timeout = 50 * time.Millisecond

	_, err := client.Cars(context.Background())

	require.ErrorIs(t, err, ErrNetwork)
}

func TestClient_BrokenSuccessBodyIsAPIError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"slots": [`))
	})

	_, err := client.AvailableSlots(context.Background(), 1, "2026-09-10")

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusOK, apiErr.StatusCode)
}

func TestClient_NoContentNeedsNoBody(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		w.WriteHeader(http.StatusNoContent)
	})
	client.SetToken("abc-123")

	require.NoError(t, client.DeleteAppointment(context.Background(), 5))
}
