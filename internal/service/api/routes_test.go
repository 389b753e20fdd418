package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/darkkaiser/pricewatch-server/internal/pkg/version"
	systemhandler "github.com/darkkaiser/pricewatch-server/internal/service/api/handler/system"
	"github.com/darkkaiser/pricewatch-server/internal/service/api/model/system"
	"github.com/darkkaiser/pricewatch-server/internal/service/contract"
	contractmocks "github.com/darkkaiser/pricewatch-server/internal/service/contract/mocks"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// =============================================================================
// Helper Functions
// =============================================================================

func setupTestEcho() *echo.Echo {
	return echo.New()
}

func setupTestSystemHandler() *systemhandler.Handler {
	mockStore := &contractmocks.MockProductStore{}
	mockStore.On("FindAll", mock.Anything).Return([]contract.TrackedProduct{}, nil)

	buildInfo := version.Info{
		Version:     "test-version",
		BuildDate:   "2026-08-01T14:00:00Z",
		BuildNumber: "1",
	}
	return systemhandler.NewHandler(mockStore, buildInfo)
}

// =============================================================================
// Unit Tests: Individual Route Registration Functions
// =============================================================================

func TestRegisterSystemRoutes(t *testing.T) {
	t.Parallel()

	t.Run("시스템 라우트 등록 확인", func(t *testing.T) {
		t.Parallel()
		e := setupTestEcho()
		h := setupTestSystemHandler()

		registerSystemRoutes(e, h)

		routes := e.Routes()
		expectedRoutes := map[string]string{
			"/health":  http.MethodGet,
			"/version": http.MethodGet,
		}

		for path, method := range expectedRoutes {
			found := false
			for _, r := range routes {
				if r.Path == path && r.Method == method {
					found = true
					break
				}
			}
			assert.True(t, found, "라우트 %s %s가 등록되어야 합니다", method, path)
		}
	})

	t.Run("Health 엔드포인트 동작 확인", func(t *testing.T) {
		t.Parallel()
		e := setupTestEcho()
		h := setupTestSystemHandler()
		registerSystemRoutes(e, h)

		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)

		var healthResp system.HealthResponse
		err := json.Unmarshal(rec.Body.Bytes(), &healthResp)
		require.NoError(t, err)
		assert.NotEmpty(t, healthResp.Status)
	})

	t.Run("Version 엔드포인트 동작 확인", func(t *testing.T) {
		t.Parallel()
		e := setupTestEcho()
		h := setupTestSystemHandler()
		registerSystemRoutes(e, h)

		req := httptest.NewRequest(http.MethodGet, "/version", nil)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)

		var versionResp system.VersionResponse
		err := json.Unmarshal(rec.Body.Bytes(), &versionResp)
		require.NoError(t, err)
		assert.Equal(t, "test-version", versionResp.Version)
	})
}

func TestRegisterSwaggerRoutes(t *testing.T) {
	t.Parallel()

	t.Run("Swagger 라우트 등록 확인", func(t *testing.T) {
		t.Parallel()
		e := setupTestEcho()

		registerSwaggerRoutes(e)

		routes := e.Routes()
		found := false
		for _, r := range routes {
			if r.Path == "/swagger/*" && r.Method == http.MethodGet {
				found = true
				break
			}
		}
		assert.True(t, found, "Swagger 라우트가 등록되어야 합니다")
	})

	t.Run("Swagger UI 접근 가능 확인", func(t *testing.T) {
		t.Parallel()
		e := setupTestEcho()
		registerSwaggerRoutes(e)

		req := httptest.NewRequest(http.MethodGet, "/swagger/index.html", nil)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Header().Get("Content-Type"), "text/html")
	})
}

// =============================================================================
// Integration Tests: Complete Route Setup
// =============================================================================

func TestRegisterRoutes(t *testing.T) {
	t.Parallel()

	t.Run("모든 라우트 등록 확인", func(t *testing.T) {
		t.Parallel()
		e := setupTestEcho()
		h := setupTestSystemHandler()

		RegisterRoutes(e, h)

		expectedRoutes := map[string]string{
			"/health":    http.MethodGet,
			"/version":   http.MethodGet,
			"/swagger/*": http.MethodGet,
		}

		routes := e.Routes()
		for path, method := range expectedRoutes {
			found := false
			for _, r := range routes {
				if r.Path == path && r.Method == method {
					found = true
					break
				}
			}
			assert.True(t, found, "라우트 %s %s가 등록되어야 합니다", method, path)
		}
	})

	t.Run("통합 엔드포인트 동작 검증", func(t *testing.T) {
		t.Parallel()
		e := setupTestEcho()
		h := setupTestSystemHandler()
		RegisterRoutes(e, h)

		tests := []struct {
			name           string
			method         string
			path           string
			expectedStatus int
			verifyResponse func(t *testing.T, rec *httptest.ResponseRecorder)
		}{
			{
				name:           "Health 체크",
				method:         http.MethodGet,
				path:           "/health",
				expectedStatus: http.StatusOK,
				verifyResponse: func(t *testing.T, rec *httptest.ResponseRecorder) {
					var healthResp system.HealthResponse
					err := json.Unmarshal(rec.Body.Bytes(), &healthResp)
					require.NoError(t, err)
					assert.NotEmpty(t, healthResp.Status)
					assert.GreaterOrEqual(t, healthResp.Uptime, int64(0))
				},
			},
			{
				name:           "Version 정보",
				method:         http.MethodGet,
				path:           "/version",
				expectedStatus: http.StatusOK,
				verifyResponse: func(t *testing.T, rec *httptest.ResponseRecorder) {
					var versionResp system.VersionResponse
					err := json.Unmarshal(rec.Body.Bytes(), &versionResp)
					require.NoError(t, err)
					assert.Equal(t, "test-version", versionResp.Version)
				},
			},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				req := httptest.NewRequest(tt.method, tt.path, nil)
				rec := httptest.NewRecorder()
				e.ServeHTTP(rec, req)

				assert.Equal(t, tt.expectedStatus, rec.Code)
				if tt.verifyResponse != nil {
					tt.verifyResponse(t, rec)
				}
			})
		}
	})
}
