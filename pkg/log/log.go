// Package log 애플리케이션 전역 로깅 시스템을 제공합니다.
//
// logrus를 기반으로 파일 로테이션(lumberjack), 레벨별 파일 분리,
// 콘솔 출력을 통합 관리합니다. 애플리케이션 시작 시 Setup()을 한 번
// 호출하여 초기화하고, 반환된 Closer를 종료 시점에 해제합니다.
package log

import (
	"io"

	log "github.com/sirupsen/logrus"
)

// SetDebugMode Debug 모드에 따라 로그 레벨을 설정합니다.
//   - Debug 모드: Trace 레벨 (모든 로그 출력)
//   - 운영 모드: Info 레벨 (Info, Warn, Error, Fatal만 출력)
func SetDebugMode(debug bool) {
	if debug {
		log.SetLevel(log.TraceLevel)
	} else {
		log.SetLevel(log.InfoLevel)
	}
}

// MaskSensitiveData 민감한 정보를 마스킹합니다.
// 비밀 키, 구독자 이메일 등의 민감 정보를 안전하게 로깅하기 위해 사용합니다.
func MaskSensitiveData(data string) string {
	if data == "" {
		return ""
	}

	// 3자 이하는 전체 마스킹
	if len(data) <= 3 {
		return "***"
	}

	// 앞 4자만 표시하고 나머지는 마스킹
	if len(data) <= 12 {
		return data[:4] + "***"
	}

	// 긴 값은 앞 4자 + 마스킹 + 뒤 4자
	return data[:4] + "***" + data[len(data)-4:]
}

// SetLevel 전역 로거의 로그 레벨을 설정합니다.
func SetLevel(level Level) {
	log.SetLevel(level)
}

// SetOutput 전역 로거의 출력 대상을 설정합니다.
func SetOutput(out io.Writer) {
	log.SetOutput(out)
}

// SetFormatter 전역 로거의 출력 포맷을 설정합니다.
func SetFormatter(formatter Formatter) {
	log.SetFormatter(formatter)
}

// StandardLogger 전역 표준 로거 인스턴스를 반환합니다.
// Echo, cron 등 *Logger 타입을 요구하는 외부 라이브러리와의 통합에 사용합니다.
func StandardLogger() *log.Logger {
	return log.StandardLogger()
}

// WithFields 추가 필드를 포함한 로그 Entry를 반환합니다.
func WithFields(fields log.Fields) *log.Entry {
	return log.WithFields(fields)
}

// WithComponent component 필드를 포함한 로그 Entry를 반환합니다.
// 모든 로그에 component 필드를 일관되게 추가하기 위해 사용합니다.
func WithComponent(component string) *log.Entry {
	return log.WithFields(log.Fields{
		"component": component,
	})
}

// WithComponentAndFields component 필드와 추가 필드를 포함한 로그 Entry를 반환합니다.
func WithComponentAndFields(component string, fields log.Fields) *log.Entry {
	newFields := make(log.Fields, len(fields)+1)
	for k, v := range fields {
		newFields[k] = v
	}
	newFields["component"] = component
	return log.WithFields(newFields)
}
