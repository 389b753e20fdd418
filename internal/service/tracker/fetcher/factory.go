package fetcher

import (
	"time"

	"github.com/darkkaiser/pricewatch-server/internal/config"
)

// NewFromConfig 애플리케이션 설정으로부터 전체 미들웨어 체인이 구성된
// Fetcher를 생성합니다.
//
// 체인 구성 (바깥쪽부터):
//
//	Logging → UserAgent → Retry → StatusCode → MaxBytes → HTTP
//
// User-Agent는 재시도 시에도 동일한 값이 유지되도록 Retry보다 상위에
// 배치됩니다.
func NewFromConfig(appConfig *config.AppConfig) Fetcher {
	requestTimeout, err := time.ParseDuration(appConfig.Tracker.RequestTimeout)
	if err != nil {
		requestTimeout = defaultTimeout
	}

	retryDelay, err := time.ParseDuration(appConfig.HTTPRetry.RetryDelay)
	if err != nil {
		retryDelay = defaultMinRetryDelay
	}

	var f Fetcher = NewHTTPFetcher(requestTimeout)
	f = NewMaxBytesFetcher(f, int64(appConfig.Tracker.MaxBodySizeMB)*1024*1024)
	f = NewStatusCodeFetcher(f)
	f = NewRetryFetcher(f, appConfig.HTTPRetry.MaxRetries, retryDelay, defaultMaxRetryDelay)
	f = NewUserAgentFetcher(f, appConfig.Tracker.UserAgent)
	f = NewLoggingFetcher(f)

	return f
}
