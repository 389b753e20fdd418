package constants

// URL 쿼리 파라미터 키 상수입니다.
const (
	// QueryParamKey 배치 트리거 인증용 쿼리 파라미터 키 (레거시, deprecated)
	QueryParamKey = "key"

	// QueryParamStream 배치 트리거 시 진행 상황 스트리밍(ndjson) 여부를 지정하는 쿼리 파라미터 키
	QueryParamStream = "stream"

	// QueryParamProductID 구독 해지 대상 상품 ID 쿼리 파라미터 키
	QueryParamProductID = "productId"

	// QueryParamEmail 구독 해지 대상 이메일 쿼리 파라미터 키
	QueryParamEmail = "email"
)

// HTTP 헤더 키 상수입니다.
const (
	// HeaderXAppKey 배치 트리거 인증용 HTTP 헤더 키 (권장 방식)
	HeaderXAppKey = "X-App-Key"
)

// MIME 타입 상수입니다.
const (
	// MIMEApplicationNDJSON 배치 진행 상황 스트리밍 응답의 Content-Type
	MIMEApplicationNDJSON = "application/x-ndjson"
)
