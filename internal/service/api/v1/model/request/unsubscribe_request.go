package request

// UnsubscribeRequest 가격 알림 구독 해지 요청
//
// GET 요청(메일 본문의 해지 링크)에서는 쿼리 파라미터로,
// POST 요청에서는 JSON 본문으로 바인딩됩니다.
type UnsubscribeRequest struct {
	// 구독을 해지할 상품의 ID
	ProductID string `json:"productId" form:"productId" query:"productId" validate:"required" korean:"상품 ID" example:"f25b8bfa93c00e1c"`
	// 구독을 해지할 이메일 주소
	Email string `json:"email" form:"email" query:"email" validate:"required,email" korean:"이메일" example:"subscriber@example.com"`
}
