package middleware

import (
	"github.com/darkkaiser/pricewatch-server/internal/service/api/auth"
	"github.com/darkkaiser/pricewatch-server/internal/service/api/constants"
	applog "github.com/darkkaiser/pricewatch-server/pkg/log"
	"github.com/labstack/echo/v4"
)

// RequireAuthentication 배치 트리거 인증을 수행하는 미들웨어를 반환합니다.
//
// App Key 추출 우선순위:
//  1. X-App-Key 헤더 (권장)
//  2. key 쿼리 파라미터 (레거시, deprecated) - 사용 시 경고 로그 출력
//
// 인증 실패 시:
//   - 401 Unauthorized: App Key 누락 또는 키 불일치
//
// 사용 예시:
//
//	authMiddleware := middleware.RequireAuthentication(authenticator)
//	v1Group.POST("/cron/trigger", handler, authMiddleware)
//
// Panics:
//   - authenticator가 nil인 경우
func RequireAuthentication(authenticator *auth.Authenticator) echo.MiddlewareFunc {
	if authenticator == nil {
		panic("Authenticator는 필수입니다")
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			appKey := extractAppKey(c)

			if err := authenticator.Authenticate(appKey); err != nil {
				return err
			}

			return next(c)
		}
	}
}

// extractAppKey App Key를 추출합니다.
//
// 우선순위:
//  1. X-App-Key 헤더 (권장)
//  2. key 쿼리 파라미터 (레거시) - 사용 시 경고 로그 출력
func extractAppKey(c echo.Context) string {
	appKey := c.Request().Header.Get(constants.HeaderXAppKey)
	if appKey == "" {
		appKey = c.QueryParam(constants.QueryParamKey)

		// 레거시 방식 사용 시 경고 로그
		if appKey != "" {
			applog.WithComponentAndFields(constants.ComponentMiddlewareAuthentication, applog.Fields{
				"method":    c.Request().Method,
				"path":      c.Path(),
				"remote_ip": c.RealIP(),
			}).Warn("보안 경고: 쿼리 파라미터로 App Key 전달됨 (X-App-Key 헤더 사용 권장)")
		}
	}
	return appKey
}
