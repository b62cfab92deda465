package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Domenick1991/deskbuddy/internal/domain"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestRequestLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	router := gin.New()
	router.Use(RequestLogger(logger))
	router.GET("/ping", func(c *gin.Context) {
		assert.NotSame(t, slog.Default(), GetLoggerFromContext(c))
		c.Status(http.StatusTeapot)
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))

	_, err := uuid.Parse(w.Header().Get(RequestIDHeader))
	require.NoError(t, err)
	assert.Contains(t, buf.String(), `"status":418`)
	assert.Contains(t, buf.String(), `"level":"WARN"`)
	assert.Contains(t, buf.String(), `"path":"/ping"`)
}

func TestRequestLogger_ReusesRequestID(t *testing.T) {
	logger := slog.New(slog.NewJSONHandler(&bytes.Buffer{}, nil))
	router := gin.New()
	router.Use(RequestLogger(logger))
	router.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })

	id := uuid.NewString()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(RequestIDHeader, id)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, id, w.Header().Get(RequestIDHeader))

	req = httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(RequestIDHeader, "not-a-uuid")
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.NotEqual(t, "not-a-uuid", w.Header().Get(RequestIDHeader))
}

func TestGetLoggerFromContext_Fallback(t *testing.T) {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	assert.Same(t, slog.Default(), GetLoggerFromContext(c))
}

func TestCurrentUser(t *testing.T) {
	fallback := domain.User{ID: "current-user", Name: "You"}

	testCases := []struct {
		name     string
		headers  map[string]string
		expected domain.User
	}{
		{"No headers", nil, fallback},
		{"Id only", map[string]string{UserIDHeader: "u-7"}, domain.User{ID: "u-7", Name: "u-7"}},
		{"Id and name", map[string]string{UserIDHeader: "u-7", UserNameHeader: "Dana"}, domain.User{ID: "u-7", Name: "Dana"}},
		{"Name only", map[string]string{UserNameHeader: "Dana"}, domain.User{ID: "current-user", Name: "Dana"}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var got domain.User
			router := gin.New()
			router.Use(CurrentUser(fallback))
			router.GET("/", func(c *gin.Context) {
				got, _ = GetUserFromContext(c)
			})

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			for k, v := range tc.headers {
				req.Header.Set(k, v)
			}
			router.ServeHTTP(httptest.NewRecorder(), req)
			assert.Equal(t, tc.expected, got)
		})
	}
}
