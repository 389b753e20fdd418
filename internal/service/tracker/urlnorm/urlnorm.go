// Package urlnorm 상품 페이지 URL을 추적 파라미터가 제거된 정규화 URL로 변환합니다.
//
// 정규화 URL은 동일 상품을 가리키는 여러 형태의 URL을 하나의 문서 키로
// 묶는 데 사용되므로, 같은 상품을 가리키는 입력은 항상 같은 결과를
// 반환하여야 하며 Normalize(Normalize(u)) == Normalize(u)가 성립하여야 합니다.
package urlnorm

import (
	"net/url"
	"regexp"
	"strings"
)

// trackingParams 상품 식별과 무관한 추적용 쿼리 파라미터 목록입니다.
// 소문자로 변환된 파라미터명으로 비교합니다.
var trackingParams = map[string]struct{}{
	"ref":          {},
	"ref_":         {},
	"tag":          {},
	"linkcode":     {},
	"linkid":       {},
	"camp":         {},
	"creative":     {},
	"creativeasin": {},
	"psc":          {},
	"pd_rd_i":      {},
	"pd_rd_r":      {},
	"pd_rd_w":      {},
	"pd_rd_wg":     {},
	"pf_rd_i":      {},
	"pf_rd_m":      {},
	"pf_rd_p":      {},
	"pf_rd_r":      {},
	"pf_rd_s":      {},
	"pf_rd_t":      {},
	"qid":          {},
	"sr":           {},
	"keywords":     {},
	"dib":          {},
	"dib_tag":      {},
	"sprefix":      {},
	"crid":         {},
	"th":           {},
	"encoding":     {},
	"_encoding":    {},
	"smid":         {},
	"spla":         {},
}

var (
	// productIDPathRegexps 상품 ID가 포함되는 URL 경로 패턴 목록입니다.
	productIDPathRegexps = []*regexp.Regexp{
		regexp.MustCompile(`(?i)/dp/([A-Z0-9]{10})(?:[/?#]|$)`),
		regexp.MustCompile(`(?i)/gp/product/([A-Z0-9]{10})(?:[/?#]|$)`),
		regexp.MustCompile(`(?i)/gp/aw/d/([A-Z0-9]{10})(?:[/?#]|$)`),
		regexp.MustCompile(`(?i)/product/([A-Z0-9]{10})(?:[/?#]|$)`),
	}

	productIDRegexp = regexp.MustCompile(`(?i)^[A-Z0-9]{10}$`)

	// retailerHostRegexp 정규화 대상 쇼핑몰의 호스트명 패턴입니다.
	// 마지막 서브매치로 서브도메인이 제거된 기본 도메인이 추출됩니다.
	retailerHostRegexp = regexp.MustCompile(`(?i)^(?:[a-z0-9-]+\.)*(amazon\.(?:com|co\.[a-z]{2}|[a-z]{2,3}))$`)
)

// Normalize 상품 페이지 URL을 정규화 URL로 변환합니다.
//
// 지원하는 쇼핑몰 URL에서 상품 ID가 추출되면 https://www.<도메인>/dp/<ID>
// 형태의 대표 URL로 변환하며, 그 외의 URL은 프래그먼트 및 추적용 쿼리
// 파라미터만 제거합니다. 파싱할 수 없는 입력은 오류 없이 그대로 반환합니다.
func Normalize(rawURL string) string {
	u, err := url.Parse(strings.TrimSpace(rawURL))
	if err != nil || u.Host == "" {
		return rawURL
	}

	host := strings.ToLower(u.Hostname())

	if m := retailerHostRegexp.FindStringSubmatch(host); m != nil {
		baseDomain := strings.ToLower(m[1])

		if id := extractProductID(u); id != "" {
			return "https://www." + baseDomain + "/dp/" + id
		}

		// 상품 ID를 찾지 못한 경우에도 호스트는 대표 형태로 맞춘다.
		u.Host = "www." + baseDomain
	} else {
		// 지원 목록 밖의 쇼핑몰도 www. 접두사가 붙은 대표 호스트로 통일한다.
		u.Host = forceWWWHost(u)
	}

	u.Fragment = ""
	u.RawFragment = ""
	u.RawQuery = stripTrackingParams(u.Query())
	u.Path = strings.TrimSuffix(u.Path, "/")
	u.RawPath = ""

	return u.String()
}

// extractProductID URL의 경로 또는 ASIN 쿼리 파라미터에서 상품 ID를
// 추출합니다. 추출된 ID는 대문자로 변환되며, 찾지 못한 경우 빈 문자열을
// 반환합니다.
func extractProductID(u *url.URL) string {
	for _, re := range productIDPathRegexps {
		if m := re.FindStringSubmatch(u.Path); m != nil {
			return strings.ToUpper(m[1])
		}
	}

	if asin := u.Query().Get("ASIN"); productIDRegexp.MatchString(asin) {
		return strings.ToUpper(asin)
	}

	return ""
}

// forceWWWHost 호스트명을 소문자로 변환하고 www. 접두사를 강제합니다.
// 포트가 포함된 호스트는 포트를 유지합니다.
func forceWWWHost(u *url.URL) string {
	hostname := strings.ToLower(u.Hostname())
	if !strings.HasPrefix(hostname, "www.") {
		hostname = "www." + hostname
	}

	if port := u.Port(); port != "" {
		return hostname + ":" + port
	}
	return hostname
}

func stripTrackingParams(query url.Values) string {
	for name := range query {
		if _, ok := trackingParams[strings.ToLower(name)]; ok {
			query.Del(name)
		}
	}
	return query.Encode()
}
