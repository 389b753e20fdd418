package store

import (
	"fmt"
	"hash/fnv"
	"strings"
	"unicode/utf8"

	"github.com/iancoleman/strcase"
)

// filenameReplacer 파일명 생성 시 파일 시스템에서 문제를 일으킬 수 있는
// 특수문자를 안전한 문자로 치환합니다. 경로 이탈 방지 문자("..", "/",
// "\")와 Windows 예약 문자가 대상입니다.
var filenameReplacer = strings.NewReplacer(
	"..", "--",
	"/", "-",
	"\\", "-",
	"|", "-",
	"<", "-",
	">", "-",
	":", "-",
	"\"", "-",
	"?", "-",
	"*", "-",
)

// productFilename 상품 문서의 조회 키(정규화 URL)로부터 파일명을 생성합니다.
//
// 사람이 읽을 수 있는 Kebab-Case 힌트와 원본 키의 64비트 해시를 결합하여,
// 서로 다른 키가 정제 과정에서 같은 이름이 되는 충돌을 방지합니다.
//
// 생성 패턴: "product-{정제된키힌트}-{16자리해시}.json"
func productFilename(key string) string {
	hint := sanitizeName(strings.TrimPrefix(strings.TrimPrefix(key, "https://"), "http://"))
	hint = truncateByBytes(hint, 50)

	// 길이 접두사를 포함하여 해싱해 서로 다른 키의 해시 충돌 가능성을 낮춘다.
	hasher := fnv.New64a()
	_, _ = fmt.Fprintf(hasher, "%d:%s", len(key), key)

	return fmt.Sprintf("product-%s-%016x.json", hint, hasher.Sum64())
}

// productIDFromKey 상품 문서의 조회 키로부터 고유한 상품 ID를 생성합니다.
// 같은 키는 항상 같은 ID를 가지므로 재등록 시에도 ID가 유지됩니다.
func productIDFromKey(key string) string {
	hasher := fnv.New64a()
	_, _ = fmt.Fprintf(hasher, "%d:%s", len(key), key)

	return fmt.Sprintf("%016x", hasher.Sum64())
}

// sanitizeName 파일명으로 안전하게 사용할 수 있도록 문자열을 정제합니다.
func sanitizeName(s string) string {
	kebab := strcase.ToKebab(s)

	// Kebab 변환 후에도 남아있을 수 있는 제어 문자를 안전한 문자로 치환한다.
	kebab = strings.Map(func(r rune) rune {
		if r < 0x20 || r == 0x7F {
			return '-'
		}
		return r
	}, kebab)

	return filenameReplacer.Replace(kebab)
}

// truncateByBytes 문자열을 UTF-8 바이트 길이 기준으로 안전하게 자릅니다.
// 문자가 중간에 잘려 깨진 문자가 생성되지 않도록 Rune 단위로 순회합니다.
func truncateByBytes(s string, limit int) string {
	if len(s) <= limit {
		return s
	}

	var totalBytes int
	for i := 0; i < len(s); {
		_, size := utf8.DecodeRuneInString(s[i:])

		if totalBytes+size > limit {
			return s[:totalBytes]
		}

		totalBytes += size
		i += size
	}

	return s[:totalBytes]
}
