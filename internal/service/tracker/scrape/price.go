package scrape

import (
	"regexp"
	"strconv"
	"strings"
)

// maxSanePrice 파싱된 가격으로 허용되는 상한값입니다.
// 셀렉터가 가격이 아닌 다른 숫자(상품 번호 등)를 가리키는 경우를 걸러냅니다.
const maxSanePrice = 1e7

var (
	nonNumericCharsRegexp = regexp.MustCompile(`[^\d.,]`)
	priceTokenRegexp      = regexp.MustCompile(`\d+(\.\d+)?`)
)

// parsePrice 가격 표기 문자열을 숫자로 변환합니다.
//
// 통화 기호와 공백을 제거한 뒤, 미국식("1,234.56")과 유럽식("1.234,56")
// 표기를 모두 지원하도록 끝에서 3자리 이내에 위치한 가장 오른쪽의 구분자를
// 소수점으로 판단합니다. 0 이하의 값과 상한값을 초과하는 값은 실패로
// 처리합니다.
func parsePrice(text string) (float64, bool) {
	// 숫자와 구분자 이외의 문자(통화 기호, 공백 등)를 먼저 제거한다.
	cleaned := nonNumericCharsRegexp.ReplaceAllString(text, "")
	if cleaned == "" {
		return 0, false
	}

	lastComma := strings.LastIndex(cleaned, ",")
	lastDot := strings.LastIndex(cleaned, ".")

	if lastComma > lastDot && lastComma > len(cleaned)-4 {
		// 유럽식 표기: 마침표 제거 후 쉼표를 소수점으로 변환
		cleaned = strings.ReplaceAll(cleaned, ".", "")
		cleaned = strings.Replace(cleaned, ",", ".", 1)
	} else if lastDot > lastComma && lastDot > len(cleaned)-4 {
		// 미국식 표기: 쉼표만 제거
		cleaned = strings.ReplaceAll(cleaned, ",", "")
	} else {
		// 소수점으로 판단되는 구분자가 없는 경우 쉼표만 제거한다.
		cleaned = strings.ReplaceAll(cleaned, ",", "")
	}

	// 마침표가 여러개 남은 경우 마지막 마침표만 소수점으로 취급한다.
	if parts := strings.Split(cleaned, "."); len(parts) > 2 {
		cleaned = strings.Join(parts[:len(parts)-1], "") + "." + parts[len(parts)-1]
	}

	token := priceTokenRegexp.FindString(cleaned)
	if token == "" {
		return 0, false
	}

	price, err := strconv.ParseFloat(token, 64)
	if err != nil || price <= 0 || price > maxSanePrice {
		return 0, false
	}

	return price, true
}

// parseLeadingInt 문자열 맨 앞의 정수 표기를 파싱합니다.
// 천 단위 구분 쉼표는 무시하며, 숫자로 시작하지 않는 경우 0을 반환합니다.
func parseLeadingInt(text string) int {
	token := priceTokenRegexp.FindString(strings.ReplaceAll(strings.TrimSpace(text), ",", ""))
	if token == "" {
		return 0
	}

	value, err := strconv.Atoi(strings.Split(token, ".")[0])
	if err != nil {
		return 0
	}
	return value
}

// parseLeadingFloat 문자열 맨 앞의 실수 표기를 파싱합니다.
func parseLeadingFloat(text string) float64 {
	token := priceTokenRegexp.FindString(strings.TrimSpace(text))
	if token == "" {
		return 0
	}

	value, err := strconv.ParseFloat(token, 64)
	if err != nil {
		return 0
	}
	return value
}

// parseDiscountLabel 할인율 안내 문구에서 "(NN%)" 형태의 백분율을 추출합니다.
// 찾지 못한 경우 0을 반환합니다.
func parseDiscountLabel(text string) int {
	start := strings.Index(text, " (")
	end := strings.Index(text, "%)")
	if start == -1 || end == -1 || start >= end {
		return 0
	}

	percentage, err := strconv.ParseFloat(strings.TrimSpace(text[start+2:end]), 64)
	if err != nil {
		return 0
	}

	return int(percentage)
}

// parseDiscountRate 할인율 전용 노드의 텍스트에서 백분율 숫자를 추출합니다.
// "-35%" 형태의 표기에서 부호와 백분율 기호를 제거한 값을 사용합니다.
func parseDiscountRate(text string) int {
	cleaned := strings.NewReplacer("-", "", "%", "").Replace(strings.TrimSpace(text))
	if cleaned == "" {
		return 0
	}

	rate, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0
	}

	return int(rate)
}
