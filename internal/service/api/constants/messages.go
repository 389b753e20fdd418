package constants

// 클라이언트에게 반환되는 에러 메시지 상수입니다.
const (
	// ------------------------------------------------------------------------------------------------
	// 일반 HTTP 에러 (상태 코드 순)
	// ------------------------------------------------------------------------------------------------

	// 400 Bad Request
	ErrMsgBadRequest            = "잘못된 요청입니다"
	ErrMsgBadRequestInvalidBody = "요청 본문을 파싱할 수 없습니다. JSON 형식을 확인해주세요"

	// 401 Unauthorized
	ErrMsgUnauthorizedAppKeyRequired = "app_key는 필수입니다 (X-App-Key 헤더 또는 key 쿼리 파라미터)"
	ErrMsgUnauthorizedInvalidAppKey  = "app_key가 유효하지 않습니다"

	// 404 Not Found
	ErrMsgNotFound        = "요청한 리소스를 찾을 수 없습니다"
	ErrMsgNotFoundProduct = "추적 중인 상품을 찾을 수 없습니다"

	// 409 Conflict
	ErrMsgConflictBatchRunning = "이전 배치 작업이 아직 실행중입니다. 잠시 후 다시 시도해주세요"

	// 415 Unsupported Media Type
	ErrMsgUnsupportedMediaType = "지원하지 않는 미디어 타입입니다"

	// 429 Too Many Requests
	ErrMsgTooManyRequests = "요청이 너무 많습니다. 잠시 후 다시 시도해주세요"

	// 500 Internal Server Error
	ErrMsgInternalServer = "내부 서버 오류가 발생했습니다"

	// 502 Bad Gateway
	ErrMsgBadGateway = "상품 페이지를 가져오는 중에 오류가 발생했습니다. 잠시 후 다시 시도해주세요"
)

// 내부 로깅을 위한 메시지 상수입니다.
const (
	// ------------------------------------------------------------------------------------------------
	// 서비스 생명주기
	// ------------------------------------------------------------------------------------------------

	LogMsgServiceStarting       = "API 서비스 시작중..."
	LogMsgServiceStarted        = "API 서비스 시작됨"
	LogMsgServiceAlreadyStarted = "API 서비스가 이미 시작됨!!!"
	LogMsgServiceStopping       = "API 서비스 중지중..."
	LogMsgServiceStopped        = "API 서비스 중지됨"

	LogMsgServiceUnexpectedExit = "API 서비스 > http 서버가 예기치 않게 종료됨"

	LogMsgServiceHTTPServerStarting      = "API 서비스 > http 서버 시작"
	LogMsgServiceHTTPServerStopped       = "API 서비스 > http 서버 중지됨"
	LogMsgServiceHTTPServerShutdownError = "API 서비스 > http 서버 종료 중 오류 발생"
	LogMsgServiceHTTPServerFatalError    = "API 서비스 > http 서버를 구성하는 중에 치명적인 오류가 발생하였습니다."

	// ------------------------------------------------------------------------------------------------
	// HTTP 요청 처리
	// ------------------------------------------------------------------------------------------------

	LogMsgHTTP4xxClientError     = "HTTP 4xx 클라이언트 오류"
	LogMsgHTTP5xxServerError     = "HTTP 5xx 서버 오류"
	LogMsgUnsupportedContentType = "지원하지 않는 Content-Type 요청 수신"
)

// 서비스 초기화 시 필수 의존성 누락을 알리는 panic 메시지 상수입니다.
const (
	PanicMsgAppConfigRequired      = "AppConfig는 필수입니다"
	PanicMsgProductStoreRequired   = "ProductStore는 필수입니다"
	PanicMsgBatchRunnerRequired    = "BatchRunner는 필수입니다"
	PanicMsgProductTrackerRequired = "ProductTracker는 필수입니다"
	PanicMsgAdminNotifierRequired  = "AdminNotifier는 필수입니다"
)
