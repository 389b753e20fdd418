// Package fetcher 상품 페이지 및 외부 API 호출에 사용되는 HTTP 클라이언트를 제공합니다.
//
// 핵심 타입은 Fetcher 인터페이스이며, 재시도, 로깅, User-Agent 주입,
// 상태 코드 검증, 응답 크기 제한 등의 기능은 데코레이터 패턴으로 조합됩니다.
package fetcher

import (
	"context"
	"encoding/json"
	"io"
	"net/http"

	"github.com/PuerkitoBio/goquery"
	apperrors "github.com/darkkaiser/pricewatch-server/internal/pkg/errors"
	"golang.org/x/net/html/charset"
)

// component Fetcher 로깅용 컴포넌트 이름
const component = "tracker.fetcher"

// Fetcher HTTP 요청을 수행하는 핵심 인터페이스입니다.
//
// 구현 시 주의사항:
//   - 반환된 응답 객체의 Body는 반드시 호출자가 닫아야 합니다.
//   - Context 취소 시 즉시 요청을 중단하고 적절한 에러를 반환해야 합니다.
type Fetcher interface {
	Do(req *http.Request) (*http.Response, error)
}

// Get 지정된 URL로 HTTP GET 요청을 전송하는 헬퍼 함수입니다.
func Get(ctx context.Context, f Fetcher, url string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := f.Do(req)
	if err != nil {
		if resp != nil {
			// 커넥션 재사용을 위해 응답 객체의 Body를 안전하게 비우고 닫음
			drainAndCloseBody(resp.Body)
		}
		return nil, err
	}

	return resp, nil
}

// FetchHTMLDocument 지정된 URL의 HTML 문서를 가져와 goquery.Document로 파싱합니다.
// 응답 헤더의 Content-Type을 분석하여 비 UTF-8 인코딩 페이지도 UTF-8로 변환하여 처리합니다.
func FetchHTMLDocument(ctx context.Context, f Fetcher, url string) (*goquery.Document, error) {
	resp, err := Get(ctx, f, url)
	if err != nil {
		if isAppError(err) {
			return nil, err
		}
		return nil, apperrors.Wrap(stripRequestURL(err), apperrors.Transport, "HTML 페이지 요청 중 네트워크 에러가 발생했습니다.")
	}
	defer resp.Body.Close()

	utf8Reader, err := charset.NewReader(resp.Body, resp.Header.Get("Content-Type"))
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.Transport, "페이지의 인코딩 변환이 실패하였습니다.")
	}

	doc, err := goquery.NewDocumentFromReader(utf8Reader)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.Transport, "불러온 페이지의 데이터 파싱이 실패하였습니다.")
	}

	return doc, nil
}

// FetchJSON HTTP 요청을 수행하고 응답 본문(JSON)을 지정된 구조체(v)로 디코딩합니다.
func FetchJSON(ctx context.Context, f Fetcher, method, url string, header map[string]string, body io.Reader, v any) error {
	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return apperrors.Wrap(err, apperrors.Internal, "JSON 요청 생성에 실패했습니다.")
	}
	for key, value := range header {
		req.Header.Set(key, value)
	}

	resp, err := f.Do(req)
	if err != nil {
		if resp != nil {
			drainAndCloseBody(resp.Body)
		}
		if isAppError(err) {
			return err
		}
		return apperrors.Wrap(stripRequestURL(err), apperrors.Transport, "JSON API 요청 전송 중 에러가 발생했습니다.")
	}
	defer resp.Body.Close()

	// json.Decoder를 사용하여 스트림 방식으로 JSON 파싱
	if err = json.NewDecoder(resp.Body).Decode(v); err != nil {
		return apperrors.Wrap(err, apperrors.Transport, "JSON API 응답 데이터의 JSON 변환이 실패하였습니다.")
	}

	return nil
}

// FetchBytes HTTP GET 요청을 수행하고 응답 본문 전체를 읽어 반환합니다.
func FetchBytes(ctx context.Context, f Fetcher, url string) ([]byte, error) {
	resp, err := Get(ctx, f, url)
	if err != nil {
		if isAppError(err) {
			return nil, err
		}
		return nil, apperrors.Wrap(stripRequestURL(err), apperrors.Transport, "페이지 요청 중 네트워크 에러가 발생했습니다.")
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.Transport, "페이지의 응답 본문을 읽는 중 에러가 발생했습니다.")
	}

	return data, nil
}

// isAppError 이미 타입이 지정된 에러인지 확인합니다.
// 미들웨어 체인에서 타입이 지정된 에러를 이중으로 감싸지 않기 위해 사용됩니다.
func isAppError(err error) bool {
	var appErr *apperrors.AppError
	return apperrors.As(err, &appErr)
}

// drainAndCloseBody 응답 객체의 Body를 비우고 닫아 커넥션이 재사용될 수 있도록 합니다.
func drainAndCloseBody(body io.ReadCloser) {
	if body == nil {
		return
	}

	// 과도한 데이터 소비를 막기 위해 일부만 읽고 닫는다.
	_, _ = io.Copy(io.Discard, io.LimitReader(body, 4*1024))
	_ = body.Close()
}
