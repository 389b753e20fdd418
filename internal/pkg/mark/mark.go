// Package mark 애플리케이션 전반에서 사용되는 이모지 상수를 중앙 관리하는 패키지입니다.
package mark

import "fmt"

// Mark 이모지 상수를 위한 타입입니다.
type Mark string

const (
	// 환영
	Welcome Mark = "🎉"

	// 재입고
	Restocked Mark = "🔔"

	// 최저가
	BestPrice Mark = "🔥"

	// 할인
	Discount Mark = "💰"

	// 품절/종료
	Unavailable Mark = "🚫"

	// 긴급/오류
	Alert Mark = "🚨"
)

// all 정의된 모든 마크 상수의 목록입니다.
// 새로운 마크를 추가할 때는 반드시 이 목록에도 등록해야 합니다.
var all = []Mark{Welcome, Restocked, BestPrice, Discount, Unavailable, Alert}

// Values 정의된 모든 마크 상수의 복사본을 반환합니다.
// 반환된 슬라이스를 수정해도 내부 상태에는 영향을 주지 않습니다.
func Values() []Mark {
	values := make([]Mark, len(all))
	copy(values, all)
	return values
}

// Parse 문자열을 정의된 Mark 상수로 변환합니다.
// 정의되지 않은 값은 에러를 반환합니다.
func Parse(s string) (Mark, error) {
	for _, m := range all {
		if string(m) == s {
			return m, nil
		}
	}
	return "", fmt.Errorf("정의되지 않은 마크입니다: %q", s)
}

// IsValid 정의된 마크 상수인지 확인합니다.
func (m Mark) IsValid() bool {
	for _, v := range all {
		if v == m {
			return true
		}
	}
	return false
}

// WithSpace 마크(이모지) 뒤에 구분용 공백을 추가하여 반환합니다.
// 이메일 제목 등에서 "🔥 제목" 형태로 사용하기 위한 헬퍼입니다.
func (m Mark) WithSpace() string {
	if m == "" {
		return ""
	}
	return string(m) + " "
}

// String 마크의 순수 이모지 값을 문자열로 반환합니다.
func (m Mark) String() string {
	return string(m)
}
