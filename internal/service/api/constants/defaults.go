package constants

import "time"

// 서버 설정 기본값 상수입니다.
const (
	// DefaultRequestTimeout HTTP 요청 처리의 기본 타임아웃 시간 (60초)
	// 별도의 타임아웃 설정이 없는 경우 이 값이 적용되며, 요청 처리가 이 시간을 초과하면
	// 자동으로 취소되어 서버 리소스를 보호합니다.
	DefaultRequestTimeout = 60 * time.Second

	// DefaultReadTimeout HTTP 요청 본문 읽기 최대 대기 시간
	DefaultReadTimeout = 30 * time.Second

	// DefaultReadHeaderTimeout HTTP 헤더 읽기 최대 대기 시간
	// Slowloris DoS 공격을 방어하기 위해 헤더를 매우 느리게 전송하는
	// 악의적인 클라이언트의 연결 고갈 공격을 방지합니다.
	DefaultReadHeaderTimeout = 10 * time.Second

	// DefaultWriteTimeout HTTP 응답 쓰기 최대 대기 시간
	//
	// 배치 트리거(ndjson 스트리밍)는 전체 상품 처리가 끝날 때까지 응답을 쓰므로
	// 일반적인 API 서버보다 긴 값을 사용합니다.
	DefaultWriteTimeout = 10 * time.Minute

	// DefaultIdleTimeout Keep-Alive 연결 유휴 제한 시간
	DefaultIdleTimeout = 90 * time.Second

	// DefaultMaxBodySize 요청 본문의 최대 크기 (128KB)
	// DoS 공격 방지 및 메모리 보호를 위해 제한합니다.
	DefaultMaxBodySize = "128K"

	// DefaultRateLimitPerSecond IP당 초당 허용 요청 수 기본값
	DefaultRateLimitPerSecond = 20

	// DefaultRateLimitBurst IP당 버스트 허용량 기본값
	DefaultRateLimitBurst = 40
)

// SensitiveQueryParams 로그 기록 시 마스킹 처리해야 할 쿼리 파라미터 목록입니다.
var SensitiveQueryParams = []string{
	QueryParamKey,
	"app_key",
	"api_key",
	"password",
	"token",
	"secret",
}
