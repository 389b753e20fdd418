// Package handler v1 API의 HTTP 요청 핸들러를 제공합니다.
//
// 이 패키지는 HTTP 요청을 받아 검증하고, 비즈니스 로직을 호출한 후,
// 적절한 HTTP 응답을 반환하는 핸들러 함수들을 포함합니다.
package handler

import (
	"context"

	"github.com/darkkaiser/pricewatch-server/internal/service/api/constants"
	"github.com/darkkaiser/pricewatch-server/internal/service/contract"
	"github.com/darkkaiser/pricewatch-server/internal/service/tracker"
	applog "github.com/darkkaiser/pricewatch-server/pkg/log"
	"github.com/labstack/echo/v4"
)

// ProductTracker 상품 추적 비즈니스 로직 인터페이스입니다.
//
// 핸들러가 tracker 구현체에 직접 결합되지 않도록 분리되어 있으며,
// 테스트에서는 Mock 구현체를 주입합니다.
type ProductTracker interface {
	// Track 상품 추적을 시작하거나 기존 추적 상품에 구독자를 추가합니다.
	Track(ctx context.Context, rawURL, subscriberEmail string) (*tracker.TrackResult, error)

	// Unsubscribe 상품 가격 알림 구독을 해지합니다.
	Unsubscribe(ctx context.Context, id contract.ProductID, subscriberEmail string) (*tracker.UnsubscribeResult, error)

	// ListProducts 추적 중인 전체 상품 목록을 반환합니다.
	ListProducts(ctx context.Context) ([]contract.TrackedProduct, error)

	// GetProduct 상품 ID로 추적 중인 상품을 조회합니다.
	GetProduct(ctx context.Context, id contract.ProductID) (*contract.TrackedProduct, error)
}

// Handler v1 API 요청을 처리하고 비즈니스 로직을 연결하는 핸들러입니다.
//
// 이 구조체는 다음 역할을 수행합니다:
//   - HTTP 요청 바인딩 및 검증
//   - 비즈니스 로직(배치 실행, 상품 추적, 구독 해지) 호출
//   - HTTP 응답 생성
type Handler struct {
	// batchRunner 가격 추적 배치 작업의 실행을 담당하는 인터페이스
	batchRunner contract.BatchRunner

	// productTracker 상품 추적 및 구독 관리를 담당하는 인터페이스
	productTracker ProductTracker
}

// NewHandler Handler 인스턴스를 생성합니다.
//
// Panics:
//   - batchRunner 또는 productTracker가 nil인 경우
func NewHandler(batchRunner contract.BatchRunner, productTracker ProductTracker) *Handler {
	if batchRunner == nil {
		panic("BatchRunner는 필수입니다")
	}
	if productTracker == nil {
		panic("ProductTracker는 필수입니다")
	}

	return &Handler{
		batchRunner: batchRunner,

		productTracker: productTracker,
	}
}

// log 공통 로깅 필드가 설정된 로거 엔트리를 반환합니다.
func (h *Handler) log(c echo.Context) *applog.Entry {
	return applog.WithComponentAndFields(constants.ComponentHandler, applog.Fields{
		"endpoint": c.Path(),
	})
}
