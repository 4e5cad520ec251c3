package get_user_bookings

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goatcricket/GCB-BookingService/internal/api/middleware"
	"github.com/goatcricket/GCB-BookingService/internal/service/bookings"
	"github.com/goatcricket/GCB-BookingService/internal/service/bookings/models"
)

type fakeService struct {
	resp *models.BookingListResponse
	err  error

	gotReq *models.GetUserBookingsRequest
}

func (f *fakeService) GetUserBookings(_ context.Context, req *models.GetUserBookingsRequest) (*models.BookingListResponse, error) {
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

func doRequest(t *testing.T, svc *fakeService, path, callerID string) *httptest.ResponseRecorder {
	t.Helper()

	handler := NewHandler(svc, noopLogger{})

	router := mux.NewRouter()
	router.Handle("/api/v1/users/{userId}/bookings",
		middleware.Auth(http.HandlerFunc(handler.Handle))).Methods(http.MethodGet)

	req := httptest.NewRequest(http.MethodGet, path, nil)
	if callerID != "" {
		req.Header.Set("X-User-ID", callerID)
	}

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	return recorder
}

func TestHandler_OwnerHistory(t *testing.T) {
	svc := &fakeService{resp: &models.BookingListResponse{Bookings: []models.BookingResponse{
		{ID: 1, UserID: 10, Status: "confirmed"},
	}}}

	recorder := doRequest(t, svc, "/api/v1/users/10/bookings?scope=upcoming", "10")

	assert.Equal(t, http.StatusOK, recorder.Code)

	var resp models.BookingListResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &resp))
	assert.Len(t, resp.Bookings, 1)

	require.NotNil(t, svc.gotReq)
	assert.Equal(t, int64(10), svc.gotReq.UserID)
	assert.Equal(t, int64(10), svc.gotReq.CallerID)
	require.NotNil(t, svc.gotReq.Scope)
	assert.Equal(t, "upcoming", *svc.gotReq.Scope)
}

func TestHandler_ForeignHistoryReachesService(t *testing.T) {
	// Запрос чужой истории доходит до сервиса: владелец или администратор -
	// решает сервис, а не обработчик
	svc := &fakeService{resp: &models.BookingListResponse{Bookings: []models.BookingResponse{}}}

	recorder := doRequest(t, svc, "/api/v1/users/10/bookings", "1")

	assert.Equal(t, http.StatusOK, recorder.Code)
	require.NotNil(t, svc.gotReq)
	assert.Equal(t, int64(10), svc.gotReq.UserID)
	assert.Equal(t, int64(1), svc.gotReq.CallerID)
}

func TestHandler_AccessDenied(t *testing.T) {
	svc := &fakeService{err: bookings.ErrAccessDenied}

	recorder := doRequest(t, svc, "/api/v1/users/10/bookings", "11")
	assert.Equal(t, http.StatusForbidden, recorder.Code)
}

func TestHandler_InvalidScope(t *testing.T) {
	svc := &fakeService{err: bookings.ErrInvalidInput}

	recorder := doRequest(t, svc, "/api/v1/users/10/bookings?scope=tomorrow", "10")
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestHandler_MissingCaller(t *testing.T) {
	recorder := doRequest(t, &fakeService{}, "/api/v1/users/10/bookings", "")
	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
}
