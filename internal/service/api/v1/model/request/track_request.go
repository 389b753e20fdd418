// Package request v1 API의 요청 모델을 정의합니다.
package request

// TrackRequest 상품 추적 등록 요청
type TrackRequest struct {
	// 추적할 상품 페이지의 URL
	URL string `json:"url" form:"url" validate:"required,url" korean:"상품 URL" example:"https://www.amazon.com/dp/B0863TXGM3"`
	// 가격 알림을 수신할 이메일 주소
	Email string `json:"email" form:"email" validate:"required,email" korean:"이메일" example:"subscriber@example.com"`
}
