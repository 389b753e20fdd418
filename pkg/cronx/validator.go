package cronx

import (
	"fmt"
	"strings"
)

// Validate 주어진 Cron 표현식이 애플리케이션 표준 형식에 부합하는지 검증합니다.
//
// 검증 규칙:
//  1. Descriptor(@daily, @every ... 등)는 그대로 허용합니다.
//  2. 일반 표현식은 초 단위를 포함한 6필드 형식이어야 합니다.
//  3. 형식이 맞더라도 파서가 해석할 수 없는 값(범위 초과 등)은 에러로 처리합니다.
func Validate(spec string) error {
	trimmed := strings.TrimSpace(spec)

	if trimmed == "" {
		return fmt.Errorf("empty spec string")
	}

	// Descriptor 형식은 필드 개수 검사 대상이 아닙니다.
	if !strings.HasPrefix(trimmed, "@") {
		if fields := strings.Fields(trimmed); len(fields) != 6 {
			return fmt.Errorf("expected exactly 6 fields, found %d: %q", len(fields), trimmed)
		}
	}

	if _, err := StandardParser().Parse(trimmed); err != nil {
		return fmt.Errorf("Cron 표현식 파싱 실패: %w", err)
	}

	return nil
}
