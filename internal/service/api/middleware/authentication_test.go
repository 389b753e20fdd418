package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/darkkaiser/pricewatch-server/internal/service/api/auth"
	"github.com/darkkaiser/pricewatch-server/internal/service/api/constants"
	applog "github.com/darkkaiser/pricewatch-server/pkg/log"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecretKey = "test-secret-key-0123456789"

// setupEcho 테스트용 Echo 인스턴스를 설정합니다.
func setupEcho(t *testing.T) *echo.Echo {
	t.Helper()
	e := echo.New()
	// 테스트 중 불필요한 로그 출력 방지
	applog.SetLevel(applog.FatalLevel)
	t.Cleanup(func() {
		applog.SetLevel(applog.InfoLevel)
	})
	return e
}

// okHandler 항상 200 OK를 반환하는 테스트용 핸들러입니다.
func okHandler(c echo.Context) error {
	return c.String(http.StatusOK, "ok")
}

func TestRequireAuthentication(t *testing.T) {
	e := setupEcho(t)
	authenticator := auth.NewAuthenticator(testSecretKey)
	mw := RequireAuthentication(authenticator)

	tests := []struct {
		name           string
		headerKey      string
		queryKey       string
		expectedStatus int
		expectedMsg    string
	}{
		{
			name:           "성공_헤더로_전달",
			headerKey:      testSecretKey,
			expectedStatus: http.StatusOK,
		},
		{
			name:           "성공_쿼리파라미터로_전달_레거시",
			queryKey:       testSecretKey,
			expectedStatus: http.StatusOK,
		},
		{
			name:           "성공_헤더가_쿼리보다_우선",
			headerKey:      testSecretKey,
			queryKey:       "wrong-key",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "실패_키_누락",
			expectedStatus: http.StatusUnauthorized,
			expectedMsg:    constants.ErrMsgUnauthorizedAppKeyRequired,
		},
		{
			name:           "실패_잘못된_키_헤더",
			headerKey:      "wrong-key",
			expectedStatus: http.StatusUnauthorized,
			expectedMsg:    constants.ErrMsgUnauthorizedInvalidAppKey,
		},
		{
			name:           "실패_잘못된_키_쿼리파라미터",
			queryKey:       "wrong-key",
			expectedStatus: http.StatusUnauthorized,
			expectedMsg:    constants.ErrMsgUnauthorizedInvalidAppKey,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			url := "/api/v1/cron/trigger"
			if tt.queryKey != "" {
				url += "?" + constants.QueryParamKey + "=" + tt.queryKey
			}

			req := httptest.NewRequest(http.MethodPost, url, nil)
			if tt.headerKey != "" {
				req.Header.Set(constants.HeaderXAppKey, tt.headerKey)
			}

			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			err := mw(okHandler)(c)

			if tt.expectedStatus == http.StatusOK {
				assert.NoError(t, err)
				assert.Equal(t, http.StatusOK, rec.Code)
				return
			}

			require.Error(t, err)
			httpErr, ok := err.(*echo.HTTPError)
			require.True(t, ok, "echo.HTTPError 타입이어야 합니다")
			assert.Equal(t, tt.expectedStatus, httpErr.Code)
		})
	}
}

func TestRequireAuthentication_NilAuthenticator(t *testing.T) {
	assert.PanicsWithValue(t, "Authenticator는 필수입니다", func() {
		RequireAuthentication(nil)
	})
}
