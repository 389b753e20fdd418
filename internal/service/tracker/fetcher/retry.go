package fetcher

import (
	"context"
	"errors"
	"math/rand/v2"
	"net"
	"net/http"
	"time"

	apperrors "github.com/darkkaiser/pricewatch-server/internal/pkg/errors"
	applog "github.com/darkkaiser/pricewatch-server/pkg/log"
)

const (
	// maxAllowedRetries 허용 가능한 최대 재시도 횟수입니다.
	maxAllowedRetries = 10

	// defaultMinRetryDelay 지수 백오프의 기본 시작 대기 시간입니다.
	defaultMinRetryDelay = 1 * time.Second

	// defaultMaxRetryDelay 재시도 대기 시간의 기본 상한값입니다.
	defaultMaxRetryDelay = 30 * time.Second
)

// RetryFetcher HTTP 요청 실패 시 자동으로 재시도를 수행하는 미들웨어입니다.
//
//   - 지수 백오프(Exponential Backoff)로 재시도 간격을 증가시켜 서버 부하를 분산합니다.
//   - Full Jitter로 무작위 지연을 추가하여 동시 다발적인 재시도를 분산합니다.
//   - 비멱등 메서드(POST, PATCH)는 재시도하지 않습니다.
//   - 컨텍스트가 취소되면 즉시 재시도를 중단합니다.
type RetryFetcher struct {
	delegate Fetcher

	maxRetries    int
	minRetryDelay time.Duration
	maxRetryDelay time.Duration
}

// 컴파일 타임에 인터페이스 구현 여부를 검증합니다.
var _ Fetcher = (*RetryFetcher)(nil)

// NewRetryFetcher 새로운 RetryFetcher 인스턴스를 생성합니다.
// 범위를 벗어난 설정값은 허용 범위로 보정됩니다.
func NewRetryFetcher(delegate Fetcher, maxRetries int, minRetryDelay, maxRetryDelay time.Duration) *RetryFetcher {
	if maxRetries < 0 {
		maxRetries = 0
	}
	if maxRetries > maxAllowedRetries {
		maxRetries = maxAllowedRetries
	}
	if minRetryDelay <= 0 {
		minRetryDelay = defaultMinRetryDelay
	}
	if maxRetryDelay < minRetryDelay {
		maxRetryDelay = defaultMaxRetryDelay
	}

	return &RetryFetcher{
		delegate:      delegate,
		maxRetries:    maxRetries,
		minRetryDelay: minRetryDelay,
		maxRetryDelay: maxRetryDelay,
	}
}

// Do HTTP 요청을 수행하며, 실패 시 설정된 정책에 따라 자동으로 재시도합니다.
//
// 재시도 대상은 네트워크 오류, 5xx 서버 에러(501/505/511 제외),
// 429 Too Many Requests, 408 Request Timeout이며, 컨텍스트 취소와
// 4xx 클라이언트 에러는 재시도하지 않습니다.
func (f *RetryFetcher) Do(req *http.Request) (*http.Response, error) {
	effectiveMaxRetries := f.maxRetries

	// 비멱등 메서드는 데이터 중복 생성/수정 위험이 있으므로 재시도하지 않는다.
	if !isIdempotentMethod(req.Method) {
		effectiveMaxRetries = 0
	}

	// 재시도 시 요청 본문을 다시 읽어야 하므로 GetBody가 없으면 재시도를 비활성화한다.
	if req.Body != nil && req.GetBody == nil {
		effectiveMaxRetries = 0
	}

	var lastErr error

	for attempt := 0; attempt <= effectiveMaxRetries; attempt++ {
		if attempt > 0 {
			delay := f.backoffDelay(attempt)

			applog.WithComponentAndFields(component, applog.Fields{
				"url":     redactURL(req.URL),
				"attempt": attempt,
				"delay":   delay.String(),
			}).Warn("HTTP 요청 재시도 대기중...")

			select {
			case <-req.Context().Done():
				return nil, req.Context().Err()
			case <-time.After(delay):
			}

			if req.Body != nil && req.GetBody != nil {
				body, err := req.GetBody()
				if err != nil {
					return nil, apperrors.Wrap(err, apperrors.Internal, "재시도를 위한 요청 본문 재생성이 실패하였습니다.")
				}
				req.Body = body
			}
		}

		resp, err := f.delegate.Do(req)
		if err == nil && !isRetryableStatusCode(resp.StatusCode) {
			return resp, nil
		}

		if err != nil {
			lastErr = err

			if !isRetryableError(err) {
				return nil, err
			}
		} else {
			lastErr = apperrors.Newf(apperrors.Transport, "재시도 대상 HTTP 상태 코드가 수신되었습니다. (StatusCode: %d)", resp.StatusCode)
			drainAndCloseBody(resp.Body)
		}
	}

	return nil, lastErr
}

// backoffDelay 지수 백오프에 Full Jitter를 적용한 재시도 대기 시간을 계산합니다.
func (f *RetryFetcher) backoffDelay(attempt int) time.Duration {
	delay := f.minRetryDelay << (attempt - 1)
	if delay > f.maxRetryDelay || delay <= 0 {
		delay = f.maxRetryDelay
	}

	return time.Duration(rand.Int64N(int64(delay))) + 1
}

// isIdempotentMethod 재시도해도 안전한 HTTP 메서드인지 확인합니다.
func isIdempotentMethod(method string) bool {
	switch method {
	case http.MethodGet, http.MethodHead, http.MethodPut, http.MethodDelete, http.MethodOptions, http.MethodTrace:
		return true
	}
	return false
}

// isRetryableStatusCode 재시도 대상 HTTP 상태 코드인지 확인합니다.
func isRetryableStatusCode(statusCode int) bool {
	switch statusCode {
	case http.StatusRequestTimeout, http.StatusTooManyRequests:
		return true
	case http.StatusNotImplemented, http.StatusHTTPVersionNotSupported, http.StatusNetworkAuthenticationRequired:
		return false
	}
	return statusCode >= 500
}

// isRetryableError 재시도해도 되는 에러인지 확인합니다.
// 컨텍스트 취소는 사용자의 의도이므로 재시도하지 않습니다.
func isRetryableError(err error) bool {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}

	// 하위 미들웨어의 상태 코드 검증에서 발생한 에러는 상태 코드로 판단한다.
	var statusErr *StatusError
	if errors.As(err, &statusErr) {
		return isRetryableStatusCode(statusErr.StatusCode)
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		return true
	}

	// url.Error 등으로 감싸진 연결 실패도 재시도 대상으로 처리한다.
	var opErr *net.OpError
	return errors.As(err, &opErr)
}
