package fetcher

import (
	"fmt"
	"io"
	"net/http"
	"strings"

	apperrors "github.com/darkkaiser/pricewatch-server/internal/pkg/errors"
)

// bodySnippetMaxBytes 상태 코드 에러 메시지에 포함되는 응답 본문의 최대 길이입니다.
const bodySnippetMaxBytes = 256

// StatusError 허용되지 않은 HTTP 상태 코드가 수신되었음을 나타내는 에러입니다.
// 재시도 미들웨어가 상태 코드를 확인할 수 있도록 에러 체인에 포함됩니다.
//
// 에러 메시지에는 요청 URL을 포함하지 않습니다. 배치 응답이나 로그로
// 전파되는 에러 텍스트에 상품 URL이 노출되지 않아야 하기 때문입니다.
type StatusError struct {
	StatusCode  int
	BodySnippet string
}

func (e *StatusError) Error() string {
	message := fmt.Sprintf("허용되지 않은 HTTP 상태 코드가 수신되었습니다. (StatusCode: %d)", e.StatusCode)
	if e.BodySnippet != "" {
		message += fmt.Sprintf(" (Body: %s)", e.BodySnippet)
	}
	return message
}

// CheckResponseStatus 응답 상태 코드가 허용 목록에 포함되는지 검증합니다.
// allowedStatusCodes가 비어있는 경우 200 OK만 허용하며, 허용되지 않은
// 상태 코드인 경우 응답 본문 일부가 포함된 Transport 타입의 에러를 반환합니다.
func CheckResponseStatus(resp *http.Response, allowedStatusCodes ...int) error {
	if len(allowedStatusCodes) == 0 {
		allowedStatusCodes = []int{http.StatusOK}
	}

	for _, code := range allowedStatusCodes {
		if resp.StatusCode == code {
			return nil
		}
	}

	statusErr := &StatusError{
		StatusCode:  resp.StatusCode,
		BodySnippet: readBodySnippet(resp.Body),
	}

	return apperrors.Wrap(statusErr, apperrors.Transport, statusErr.Error())
}

// readBodySnippet 에러 메시지에 포함할 응답 본문 일부를 읽습니다.
func readBodySnippet(body io.Reader) string {
	if body == nil {
		return ""
	}

	data, err := io.ReadAll(io.LimitReader(body, bodySnippetMaxBytes))
	if err != nil {
		return ""
	}

	return strings.TrimSpace(string(data))
}

// StatusCodeFetcher HTTP 응답의 상태 코드를 검증하는 미들웨어입니다.
//
// 허용되지 않은 상태 코드가 수신되면 응답 객체의 Body를 정리한 뒤
// nil Response와 함께 에러를 반환합니다.
type StatusCodeFetcher struct {
	delegate Fetcher

	// allowedStatusCodes 허용할 HTTP 상태 코드 목록입니다.
	// nil 또는 빈 슬라이스인 경우 200 OK만 허용합니다.
	allowedStatusCodes []int
}

// 컴파일 타임에 인터페이스 구현 여부를 검증합니다.
var _ Fetcher = (*StatusCodeFetcher)(nil)

// NewStatusCodeFetcher 200 OK만 허용하는 StatusCodeFetcher 인스턴스를 생성합니다.
func NewStatusCodeFetcher(delegate Fetcher) *StatusCodeFetcher {
	return &StatusCodeFetcher{
		delegate: delegate,
	}
}

// NewStatusCodeFetcherWithOptions 특정 HTTP 상태 코드들을 허용하는 StatusCodeFetcher 인스턴스를 생성합니다.
func NewStatusCodeFetcherWithOptions(delegate Fetcher, allowedStatusCodes ...int) *StatusCodeFetcher {
	return &StatusCodeFetcher{
		delegate:           delegate,
		allowedStatusCodes: allowedStatusCodes,
	}
}

// Do HTTP 요청을 수행하고 응답 상태 코드를 검증합니다.
//
// 에러 발생 시 응답 객체의 Body는 내부에서 정리되므로 호출자가 별도로
// 닫을 필요가 없으며, 성공 시에는 호출자가 반드시 Body를 닫아야 합니다.
func (f *StatusCodeFetcher) Do(req *http.Request) (*http.Response, error) {
	resp, err := f.delegate.Do(req)
	if err != nil {
		if resp != nil {
			drainAndCloseBody(resp.Body)
		}
		return nil, err
	}

	if statusErr := CheckResponseStatus(resp, f.allowedStatusCodes...); statusErr != nil {
		drainAndCloseBody(resp.Body)
		return nil, statusErr
	}

	return resp, nil
}
