package errors

// ErrorType 에러의 종류를 나타내는 타입입니다.
type ErrorType int

// 에러 타입 상수
const (
	// Unknown 알 수 없는 에러
	Unknown ErrorType = iota

	// Internal 내부 로직 오류 (버그 등)
	Internal

	// Unauthorized 인증 실패 (비밀 키 불일치 등)
	Unauthorized

	// InvalidInput 잘못된 입력값 (유효성 검사 실패)
	InvalidInput

	// Conflict 리소스 충돌 (중복 생성 등)
	Conflict

	// NotFound 리소스를 찾을 수 없음
	NotFound

	// ExtractionFailed 상품 페이지에서 필드 추출 실패
	ExtractionFailed

	// Transport 외부 HTTP 통신 실패 (네트워크, 상태 코드 오류 등)
	Transport

	// Persistence 문서 저장소 입출력 실패
	Persistence

	// NotificationSend 알림(이메일 등) 발송 실패
	NotificationSend

	// Timeout 작업 시간 초과
	Timeout
)

// String ErrorType의 문자열 표현을 반환합니다.
func (t ErrorType) String() string {
	switch t {
	case Internal:
		return "Internal"
	case Unauthorized:
		return "Unauthorized"
	case InvalidInput:
		return "InvalidInput"
	case Conflict:
		return "Conflict"
	case NotFound:
		return "NotFound"
	case ExtractionFailed:
		return "ExtractionFailed"
	case Transport:
		return "Transport"
	case Persistence:
		return "Persistence"
	case NotificationSend:
		return "NotificationSend"
	case Timeout:
		return "Timeout"
	default:
		return "Unknown"
	}
}
