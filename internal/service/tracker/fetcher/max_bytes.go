package fetcher

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	apperrors "github.com/darkkaiser/pricewatch-server/internal/pkg/errors"
)

const (
	// defaultMaxBytes 응답 본문의 기본 크기 제한값입니다 (10MB).
	defaultMaxBytes = 10 * 1024 * 1024

	// NoLimit 응답 본문에 대한 크기 제한을 적용하지 않음을 나타내는 특수 상수입니다.
	NoLimit = -1
)

// maxBytesReader http.MaxBytesReader를 래핑하여 타입이 지정된 에러를 반환하는 내부 헬퍼입니다.
type maxBytesReader struct {
	rc    io.ReadCloser
	limit int64
}

func (r *maxBytesReader) Read(p []byte) (n int, err error) {
	n, err = r.rc.Read(p)
	if err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			return n, apperrors.New(apperrors.Transport, fmt.Sprintf("응답 본문의 크기가 제한값(%d바이트)을 초과하였습니다.", r.limit))
		}
	}
	return n, err
}

func (r *maxBytesReader) Close() error {
	return r.rc.Close()
}

// MaxBytesFetcher HTTP 응답 본문의 크기를 제한하는 미들웨어입니다.
//
//   - Content-Length 헤더 기반 조기 차단
//   - 실제 읽기 시점의 바이트 수 제한 (조작된 Content-Length 방어)
type MaxBytesFetcher struct {
	delegate Fetcher
	limit    int64
}

// 컴파일 타임에 인터페이스 구현 여부를 검증합니다.
var _ Fetcher = (*MaxBytesFetcher)(nil)

// NewMaxBytesFetcher 새로운 MaxBytesFetcher 인스턴스를 생성합니다.
// limit이 NoLimit인 경우 delegate를 그대로 반환하며, 0 이하인 경우 기본값으로 보정됩니다.
func NewMaxBytesFetcher(delegate Fetcher, limit int64) Fetcher {
	if limit == NoLimit {
		return delegate
	}
	if limit <= 0 {
		limit = defaultMaxBytes
	}

	return &MaxBytesFetcher{
		delegate: delegate,
		limit:    limit,
	}
}

// Do HTTP 요청을 수행하고 응답 본문에 크기 제한을 적용합니다.
// Body를 읽는 도중 제한을 초과하면 Read()에서 에러가 반환됩니다.
func (f *MaxBytesFetcher) Do(req *http.Request) (*http.Response, error) {
	resp, err := f.delegate.Do(req)
	if err != nil {
		if resp != nil {
			drainAndCloseBody(resp.Body)
		}
		return nil, err
	}

	// 1차 방어: Content-Length 헤더 기반 조기 차단
	if resp.ContentLength > f.limit {
		drainAndCloseBody(resp.Body)
		return nil, apperrors.New(apperrors.Transport, fmt.Sprintf("응답 본문의 크기(%d바이트)가 제한값(%d바이트)을 초과하였습니다.", resp.ContentLength, f.limit))
	}

	// 2차 방어: 실제 읽기 시점의 바이트 수 제한
	if resp.Body != nil {
		resp.Body = &maxBytesReader{
			rc:    http.MaxBytesReader(nil, resp.Body, f.limit),
			limit: f.limit,
		}
	}

	return resp, nil
}
