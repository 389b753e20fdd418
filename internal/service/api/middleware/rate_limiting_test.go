package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRateLimiting(t *testing.T) {
	e := setupEcho(t)

	t.Run("버스트_이내_요청은_모두_허용", func(t *testing.T) {
		mw := RateLimiting(1, 3)

		for i := 0; i < 3; i++ {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.Header.Set(echo.HeaderXRealIP, "10.0.0.1")
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			err := mw(okHandler)(c)
			assert.NoError(t, err, "버스트 범위 내 %d번째 요청은 허용되어야 합니다", i+1)
		}
	})

	t.Run("버스트_초과_요청은_429", func(t *testing.T) {
		mw := RateLimiting(1, 2)

		var lastErr error
		var lastCtx echo.Context
		for i := 0; i < 3; i++ {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.Header.Set(echo.HeaderXRealIP, "10.0.0.2")
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			lastErr = mw(okHandler)(c)
			lastCtx = c
		}

		require.Error(t, lastErr)
		httpErr, ok := lastErr.(*echo.HTTPError)
		require.True(t, ok)
		assert.Equal(t, http.StatusTooManyRequests, httpErr.Code)
		assert.Equal(t, "1", lastCtx.Response().Header().Get("Retry-After"))
	})

	t.Run("IP별로_독립적인_제한_적용", func(t *testing.T) {
		mw := RateLimiting(1, 1)

		// 첫 번째 IP가 버스트를 소진
		req1 := httptest.NewRequest(http.MethodGet, "/", nil)
		req1.Header.Set(echo.HeaderXRealIP, "10.0.0.3")
		c1 := e.NewContext(req1, httptest.NewRecorder())
		assert.NoError(t, mw(okHandler)(c1))

		req2 := httptest.NewRequest(http.MethodGet, "/", nil)
		req2.Header.Set(echo.HeaderXRealIP, "10.0.0.3")
		c2 := e.NewContext(req2, httptest.NewRecorder())
		assert.Error(t, mw(okHandler)(c2), "같은 IP의 초과 요청은 거부되어야 합니다")

		// 다른 IP는 영향을 받지 않아야 함
		req3 := httptest.NewRequest(http.MethodGet, "/", nil)
		req3.Header.Set(echo.HeaderXRealIP, "10.0.0.4")
		c3 := e.NewContext(req3, httptest.NewRecorder())
		assert.NoError(t, mw(okHandler)(c3), "다른 IP의 요청은 허용되어야 합니다")
	})

	t.Run("패닉_잘못된_인자", func(t *testing.T) {
		assert.Panics(t, func() {
			RateLimiting(0, 10)
		})
		assert.Panics(t, func() {
			RateLimiting(10, 0)
		})
	})
}
