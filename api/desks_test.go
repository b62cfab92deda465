package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Domenick1991/deskbuddy/internal/apperrors"
	"github.com/Domenick1991/deskbuddy/internal/deskstore"
	"github.com/Domenick1991/deskbuddy/internal/domain"
	"github.com/Domenick1991/deskbuddy/internal/middleware"
	"github.com/Domenick1991/deskbuddy/internal/service/dashboard"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockDashboardUseCase is a mock implementation of dashboard.DashboardUseCase
type MockDashboardUseCase struct {
	mock.Mock
}

func (m *MockDashboardUseCase) ListDesks(ctx context.Context, filter deskstore.Filter) ([]domain.Desk, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Desk), args.Error(1)
}

func (m *MockDashboardUseCase) AvailableDesks(ctx context.Context) ([]domain.Desk, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Desk), args.Error(1)
}

func (m *MockDashboardUseCase) Stats(ctx context.Context) (deskstore.Stats, error) {
	args := m.Called(ctx)
	return args.Get(0).(deskstore.Stats), args.Error(1)
}

func (m *MockDashboardUseCase) FilterOptions(ctx context.Context) (dashboard.FilterOptions, error) {
	args := m.Called(ctx)
	return args.Get(0).(dashboard.FilterOptions), args.Error(1)
}

func (m *MockDashboardUseCase) ReserveDesk(ctx context.Context, deskID string, user domain.User) (*domain.Desk, error) {
	args := m.Called(ctx, deskID, user)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Desk), args.Error(1)
}

func (m *MockDashboardUseCase) BookDesk(ctx context.Context, input dashboard.BookDeskInput) (*dashboard.BookDeskResult, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dashboard.BookDeskResult), args.Error(1)
}

func (m *MockDashboardUseCase) BookingsForDate(ctx context.Context, date time.Time) ([]domain.Booking, error) {
	args := m.Called(ctx, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Booking), args.Error(1)
}

func (m *MockDashboardUseCase) Week(ctx context.Context, ref time.Time) ([]deskstore.DaySummary, error) {
	args := m.Called(ctx, ref)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]deskstore.DaySummary), args.Error(1)
}

func (m *MockDashboardUseCase) BookedDays(ctx context.Context, month time.Time) ([]time.Time, error) {
	args := m.Called(ctx, month)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]time.Time), args.Error(1)
}

var testUser = domain.User{ID: "current-user", Name: "You"}

func testDesk(id, number string, status domain.DeskStatus) domain.Desk {
	desk := domain.Desk{ID: id, Number: number, Status: status, Area: domain.StringPtr("North")}
	if status != domain.DeskStatusAvailable {
		desk.Occupant = domain.StringPtr("Sarah Chen")
	}
	return desk
}

func newDeskRouter(service dashboard.DashboardUseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(middleware.CurrentUser(testUser))
	NewDeskHandler(service).Register(router.Group("/api/v1/desks"))
	return router
}

func TestDeskHandler_list(t *testing.T) {
	mockService := &MockDashboardUseCase{}
	router := newDeskRouter(mockService)

	desks := []domain.Desk{testDesk("1", "A1", domain.DeskStatusAvailable)}
	mockService.On("ListDesks", mock.Anything, deskstore.Filter{Area: "North", Team: "All"}).Return(desks, nil)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/desks?area=North&team=All", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	var response []domain.Desk
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, desks, response)
	mockService.AssertExpectations(t)
}

func TestDeskHandler_stats(t *testing.T) {
	mockService := &MockDashboardUseCase{}
	handler := NewDeskHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/api/v1/desks/stats", nil)

	mockService.On("Stats", c.Request.Context()).Return(deskstore.Stats{Total: 12, Available: 7, Occupied: 3, Reserved: 2}, nil)

	handler.stats(c)

	assert.Equal(t, http.StatusOK, w.Code)
	var response statsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, 12, response.Total)
	assert.Equal(t, 58, response.AvailablePercent)
	assert.Equal(t, 25, response.OccupiedPercent)
	assert.Equal(t, 17, response.ReservedPercent)
}

func TestDeskHandler_filters(t *testing.T) {
	mockService := &MockDashboardUseCase{}
	router := newDeskRouter(mockService)

	options := dashboard.FilterOptions{Areas: []string{"All", "North"}, Teams: []string{"All", "Engineering"}}
	mockService.On("FilterOptions", mock.Anything).Return(options, nil)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/desks/filters", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"areas":["All","North"],"teams":["All","Engineering"]}`, w.Body.String())
}

func TestDeskHandler_available_Error(t *testing.T) {
	mockService := &MockDashboardUseCase{}
	router := newDeskRouter(mockService)
	mockService.On("AvailableDesks", mock.Anything).Return(nil, errors.New("connection refused"))

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/desks/available", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "connection refused")
}

func TestDeskHandler_reserve(t *testing.T) {
	mockService := &MockDashboardUseCase{}
	router := newDeskRouter(mockService)

	reserved := testDesk("1", "A1", domain.DeskStatusReserved)
	mockService.On("ReserveDesk", mock.Anything, "1", domain.User{ID: "u-9", Name: "Dana"}).Return(&reserved, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/desks/1/reserve", nil)
	req.Header.Set(middleware.UserIDHeader, "u-9")
	req.Header.Set(middleware.UserNameHeader, "Dana")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var response domain.Desk
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, domain.DeskStatusReserved, response.Status)
	mockService.AssertExpectations(t)
}

func TestDeskHandler_reserve_ErrorMapping(t *testing.T) {
	testCases := []struct {
		name     string
		err      error
		expected int
	}{
		{"Not found", fmt.Errorf("desk 9: %w", apperrors.ErrNotFound), http.StatusNotFound},
		{"Unavailable", fmt.Errorf("desk A2 is occupied: %w", apperrors.ErrDeskUnavailable), http.StatusConflict},
		{"Invalid", fmt.Errorf("%w: reserved desk needs an occupant", apperrors.ErrInvalidInput), http.StatusBadRequest},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			mockService := &MockDashboardUseCase{}
			router := newDeskRouter(mockService)
			mockService.On("ReserveDesk", mock.Anything, "9", testUser).Return(nil, tc.err)

			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/v1/desks/9/reserve", nil))

			assert.Equal(t, tc.expected, w.Code)
			assert.Contains(t, w.Body.String(), tc.err.Error())
		})
	}
}
