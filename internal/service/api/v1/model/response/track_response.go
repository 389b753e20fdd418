// Package response v1 API의 응답 모델을 정의합니다.
package response

import (
	"github.com/darkkaiser/pricewatch-server/internal/service/contract"
)

// TrackResponse 상품 추적 등록 응답
type TrackResponse struct {
	// ResultCode 처리 결과 코드 (0: 성공)
	ResultCode int `json:"result_code" example:"0"`

	// NewlySubscribed 이번 요청으로 구독자가 새로 추가되었는지의 여부
	// 이미 구독 중인 이메일로 다시 요청한 경우 false입니다.
	NewlySubscribed bool `json:"newly_subscribed" example:"true"`

	// Product 추적 중인 상품 문서
	Product *contract.TrackedProduct `json:"product"`
}
