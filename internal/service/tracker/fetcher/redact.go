package fetcher

import (
	"errors"
	"net/url"
)

// redactURL 로그에 남겨도 안전한 형태로 URL을 변환합니다.
// 사용자 정보(비밀번호)는 마스킹하고 쿼리 문자열은 제거합니다.
func redactURL(u *url.URL) string {
	if u == nil {
		return ""
	}

	redacted := *u
	redacted.RawQuery = ""
	redacted.Fragment = ""
	redacted.RawFragment = ""

	return redacted.Redacted()
}

// stripRequestURL 에러 체인에 포함된 url.Error를 내부 에러로 교체합니다.
// net/http가 반환하는 url.Error는 에러 메시지에 요청 URL 전체를 포함하므로,
// 배치 응답이나 로그로 전파되는 에러 텍스트에 상품 URL이 노출되지 않도록 제거합니다.
func stripRequestURL(err error) error {
	var urlErr *url.Error
	if errors.As(err, &urlErr) && urlErr.Err != nil {
		return urlErr.Err
	}
	return err
}
