// Package v1 PriceWatch API의 v1 버전 라우트를 정의하고 설정합니다.
//
// 이 패키지는 /api/v1 경로 하위의 모든 엔드포인트를 관리합니다.
//
// 주요 엔드포인트:
//   - POST /api/v1/cron/trigger   - 가격 추적 배치 실행 (인증 필요)
//   - POST /api/v1/products       - 상품 추적 등록
//   - GET  /api/v1/products       - 추적 중인 상품 목록 조회
//   - GET  /api/v1/products/:id   - 추적 중인 상품 조회
//   - GET  /api/v1/unsubscribe    - 가격 알림 구독 해지 (메일 링크)
//   - POST /api/v1/unsubscribe    - 가격 알림 구독 해지
package v1

import (
	"github.com/darkkaiser/pricewatch-server/internal/service/api/auth"
	"github.com/darkkaiser/pricewatch-server/internal/service/api/middleware"
	"github.com/darkkaiser/pricewatch-server/internal/service/api/v1/handler"
	"github.com/labstack/echo/v4"
)

// RegisterRoutes Echo 인스턴스에 v1 API 라우트를 설정합니다.
//
// 배치 트리거 엔드포인트에만 인증 미들웨어가 적용되며,
// 상품 추적/구독 해지 엔드포인트는 공개 엔드포인트입니다.
// (구독 해지는 메일 본문의 링크로 호출되므로 인증을 요구할 수 없습니다)
func RegisterRoutes(e *echo.Echo, h *handler.Handler, authenticator *auth.Authenticator) {
	// 1. API v1 그룹 생성 (/api/v1 prefix)
	v1Group := e.Group("/api/v1")

	// 2. 인증 미들웨어 생성 (App Key 검증)
	authMiddleware := middleware.RequireAuthentication(authenticator)

	// 3. 배치 트리거 (인증 필요)
	v1Group.POST("/cron/trigger", h.TriggerBatchHandler, authMiddleware)

	// 4. 상품 추적 (Content-Type 검증 적용)
	v1Group.POST("/products", h.TrackProductHandler,
		middleware.ValidateContentType(echo.MIMEApplicationJSON),
	)
	v1Group.GET("/products", h.ListProductsHandler)
	v1Group.GET("/products/:id", h.GetProductHandler)

	// 5. 구독 해지 (메일 링크용 GET + 일반 POST)
	v1Group.GET("/unsubscribe", h.UnsubscribeHandler)
	v1Group.POST("/unsubscribe", h.UnsubscribeHandler,
		middleware.ValidateContentType(echo.MIMEApplicationJSON),
	)
}
