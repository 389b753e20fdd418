package fetcher

import (
	"net/http"
	"time"
)

const (
	// defaultTimeout HTTP 요청 전체에 대한 기본 타임아웃입니다.
	defaultTimeout = 30 * time.Second

	// defaultMaxRedirects 기본 최대 리다이렉트 허용 횟수입니다.
	defaultMaxRedirects = 10
)

// HTTPFetcher net/http 클라이언트를 감싸는 기본 Fetcher 구현체입니다.
// 미들웨어 체인의 가장 안쪽에서 실제 네트워크 요청을 수행합니다.
type HTTPFetcher struct {
	client *http.Client
}

// 컴파일 타임에 인터페이스 구현 여부를 검증합니다.
var _ Fetcher = (*HTTPFetcher)(nil)

// NewHTTPFetcher 새로운 HTTPFetcher 인스턴스를 생성합니다.
// timeout이 0 이하인 경우 기본값으로 보정됩니다.
func NewHTTPFetcher(timeout time.Duration) *HTTPFetcher {
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	transport := &http.Transport{
		Proxy:               http.ProxyFromEnvironment,
		MaxIdleConns:        100,
		MaxIdleConnsPerHost: 10,
		IdleConnTimeout:     90 * time.Second,
		TLSHandshakeTimeout: 10 * time.Second,
	}

	return &HTTPFetcher{
		client: &http.Client{
			Timeout:   timeout,
			Transport: transport,
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				if len(via) >= defaultMaxRedirects {
					return http.ErrUseLastResponse
				}
				return nil
			},
		},
	}
}

// Do HTTP 요청을 수행합니다.
func (f *HTTPFetcher) Do(req *http.Request) (*http.Response, error) {
	return f.client.Do(req)
}

// CloseIdleConnections 유휴 상태의 커넥션을 모두 닫습니다.
func (f *HTTPFetcher) CloseIdleConnections() {
	f.client.CloseIdleConnections()
}
