package create_booking

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goatcricket/GCB-BookingService/internal/api/middleware"
	createBooking "github.com/goatcricket/GCB-BookingService/internal/usecase/create_booking"
)

type fakeUseCase struct {
	resp *createBooking.Response
	err  error

	gotReq *createBooking.Request
}

func (f *fakeUseCase) Execute(_ context.Context, req *createBooking.Request) (*createBooking.Response, error) {
	f.gotReq = req
	if f.err != nil {
		return nil, f.err
	}
	return f.resp, nil
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

func successResponse() *createBooking.Response {
	return &createBooking.Response{
		ID:              42,
		UserID:          10,
		CourtID:         1,
		Date:            time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC),
		StartTime:       "10:00",
		EndTime:         "11:30",
		NumberOfPlayers: 6,
		TotalPrice:      decimal.NewFromInt(2250),
		Status:          "confirmed",
		CreatedAt:       time.Date(2025, 10, 1, 12, 0, 0, 0, time.UTC),
		UpdatedAt:       time.Date(2025, 10, 1, 12, 0, 0, 0, time.UTC),
	}
}

// doRequest прогоняет запрос через Auth middleware и обработчик
func doRequest(t *testing.T, uc *fakeUseCase, body string, userID string) *httptest.ResponseRecorder {
	t.Helper()

	handler := NewHandler(uc, noopLogger{})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/bookings", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	if userID != "" {
		req.Header.Set("X-User-ID", userID)
	}

	recorder := httptest.NewRecorder()
	middleware.Auth(http.HandlerFunc(handler.Handle)).ServeHTTP(recorder, req)
	return recorder
}

func validBody() string {
	return `{"courtId":1,"bookingDate":"2025-10-15","startTime":"10:00","endTime":"11:30","numberOfPlayers":6}`
}

func TestHandler_Created(t *testing.T) {
	uc := &fakeUseCase{resp: successResponse()}

	recorder := doRequest(t, uc, validBody(), "10")

	assert.Equal(t, http.StatusCreated, recorder.Code)

	var resp BookingResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &resp))
	assert.Equal(t, int64(42), resp.ID)
	assert.Equal(t, "2250.00", resp.TotalPrice)
	assert.Equal(t, "2025-10-15", resp.BookingDate)
	assert.Equal(t, "confirmed", resp.Status)

	// X-User-ID прокинут в запрос use case
	require.NotNil(t, uc.gotReq)
	assert.Equal(t, int64(10), uc.gotReq.UserID)
}

func TestHandler_ValidationErrors(t *testing.T) {
	uc := &fakeUseCase{err: &createBooking.ValidationError{Messages: []string{
		"End time must be after start time.",
		"Court capacity is 8 players. You cannot book for 10 players.",
	}}}

	recorder := doRequest(t, uc, validBody(), "10")

	assert.Equal(t, http.StatusBadRequest, recorder.Code)

	var resp struct {
		Errors []string `json:"errors"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &resp))
	assert.Equal(t, []string{
		"End time must be after start time.",
		"Court capacity is 8 players. You cannot book for 10 players.",
	}, resp.Errors)
}

func TestHandler_CourtNotFound(t *testing.T) {
	uc := &fakeUseCase{err: createBooking.ErrCourtNotFound}

	recorder := doRequest(t, uc, validBody(), "10")
	assert.Equal(t, http.StatusNotFound, recorder.Code)
}

func TestHandler_CourtInactive(t *testing.T) {
	uc := &fakeUseCase{err: createBooking.ErrCourtInactive}

	recorder := doRequest(t, uc, validBody(), "10")
	assert.Equal(t, http.StatusBadRequest, recorder.Code)

	var resp struct {
		Error string `json:"error"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &resp))
	assert.Equal(t, "This court is not available for booking.", resp.Error)
}

func TestHandler_MissingUserID(t *testing.T) {
	recorder := doRequest(t, &fakeUseCase{}, validBody(), "")
	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
}

func TestHandler_BadPayload(t *testing.T) {
	// Невалидный JSON
	recorder := doRequest(t, &fakeUseCase{}, `{"courtId":`, "10")
	assert.Equal(t, http.StatusBadRequest, recorder.Code)

	// Невалидная дата
	recorder = doRequest(t, &fakeUseCase{},
		`{"courtId":1,"bookingDate":"15-10-2025","startTime":"10:00","endTime":"11:30","numberOfPlayers":6}`, "10")
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.Equal(t, "Invalid booking date format, expected YYYY-MM-DD.", errorMessage(t, recorder))

	// Дата правильной длины, но с несуществующим месяцем - это все еще ошибка даты
	recorder = doRequest(t, &fakeUseCase{},
		`{"courtId":1,"bookingDate":"2025-13-45","startTime":"10:00","endTime":"11:30","numberOfPlayers":6}`, "10")
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.Equal(t, "Invalid booking date format, expected YYYY-MM-DD.", errorMessage(t, recorder))

	// Невалидное время
	recorder = doRequest(t, &fakeUseCase{},
		`{"courtId":1,"bookingDate":"2025-10-15","startTime":"25:00","endTime":"11:30","numberOfPlayers":6}`, "10")
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.Equal(t, "Invalid time format, expected HH:MM.", errorMessage(t, recorder))
}

func errorMessage(t *testing.T, recorder *httptest.ResponseRecorder) string {
	t.Helper()

	var resp struct {
		Error string `json:"error"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &resp))
	return resp.Error
}

func TestHandler_InternalError(t *testing.T) {
	uc := &fakeUseCase{err: createBooking.ErrInternal}

	recorder := doRequest(t, uc, validBody(), "10")
	assert.Equal(t, http.StatusInternalServerError, recorder.Code)
}
