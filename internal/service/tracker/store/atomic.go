package store

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	applog "github.com/darkkaiser/pricewatch-server/pkg/log"
)

// component Tracker 서비스의 Store 로깅용 컴포넌트 이름
const component = "tracker.store"

// tempFilePattern 임시 파일 저장 시 사용되는 임시 파일의 이름 패턴입니다.
const tempFilePattern = "pricewatch-*.tmp"

// resolveSafePath baseDir 하위의 안전하게 검증된 파일 경로를 생성합니다.
//
// filepath.Rel을 사용하여 생성된 경로가 baseDir를 벗어나지 않는지 검증하며,
// 상대 경로가 ".."으로 시작하면 Path Traversal 시도로 간주하여 차단합니다.
func resolveSafePath(baseDir, filename string) (string, error) {
	cleanPath := filepath.Clean(filepath.Join(baseDir, filename))

	rel, err := filepath.Rel(baseDir, cleanPath)
	if err != nil {
		return "", ErrPathTraversalDetected
	}

	if strings.HasPrefix(rel, "..") {
		applog.WithComponentAndFields(component, applog.Fields{
			"filename": filename,
			"base_dir": baseDir,
			"path":     cleanPath,
		}).Error("파일 경로 생성 차단: 경로 이탈 시도 감지")

		return "", ErrPathTraversalDetected
	}

	return cleanPath, nil
}

// writeAtomic 데이터를 파일에 원자적으로 저장합니다.
//
// 파일 저장 중 시스템 장애가 발생해도 데이터 무결성이 보장되도록
// "임시 파일 쓰기 → 디스크 동기화(fsync) → 원자적 이름 변경(rename)"
// 3단계 전략을 사용합니다. 임시 파일은 크로스 파일시스템 rename을 피하기
// 위해 같은 디렉토리 내에 생성합니다.
func writeAtomic(filename string, data []byte) error {
	dir := filepath.Dir(filename)

	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	tmpFile, err := os.CreateTemp(dir, tempFilePattern)
	if err != nil {
		return err
	}
	tmpPath := tmpFile.Name()

	// Windows에서는 열려있는 파일을 삭제할 수 없으므로 Close가 Remove보다 먼저 실행되어야 한다.
	defer os.Remove(tmpPath)
	defer tmpFile.Close()

	if _, err := tmpFile.Write(data); err != nil {
		return err
	}

	// 운영체제 버퍼 캐시에만 있는 상태에서 전원이 차단되는 것을 방지한다.
	if err := tmpFile.Sync(); err != nil {
		return err
	}

	if err := tmpFile.Close(); err != nil {
		return err
	}

	if err := renameWithRetry(tmpPath, filename); err != nil {
		return err
	}

	// 파일명 변경 사항을 디스크에 기록하기 위해 부모 디렉토리를 fsync한다.
	// 실패해도 치명적이지 않으므로 에러는 무시한다.
	if dirFile, err := os.Open(dir); err == nil {
		_ = dirFile.Sync()
		dirFile.Close()
	}

	return nil
}

// renameWithRetry 파일 이름 변경을 재시도 로직과 함께 수행합니다.
// Windows에서 바이러스 백신 등이 파일을 일시적으로 잠그는 경우를 우회합니다.
func renameWithRetry(oldPath, newPath string) error {
	const maxRetries = 5
	const retryDelay = 10 * time.Millisecond

	var lastErr error
	for range maxRetries {
		err := os.Rename(oldPath, newPath)
		if err == nil {
			return nil
		}

		lastErr = err
		time.Sleep(retryDelay)
	}

	return lastErr
}

// cleanupStaleTempFiles 이전 실행의 비정상 종료로 남겨진 오래된 임시 파일을 정리합니다.
// 최근 1시간 이내에 수정된 파일은 다른 프로세스가 사용 중일 수 있으므로 보호합니다.
func cleanupStaleTempFiles(baseDir string) {
	entries, err := os.ReadDir(baseDir)
	if err != nil {
		applog.WithComponentAndFields(component, applog.Fields{
			"dir":   baseDir,
			"error": err,
		}).Warn("임시 파일 정리 중단: 디렉토리 조회 실패")

		return
	}

	threshold := time.Now().Add(-1 * time.Hour)

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		name := entry.Name()
		matched, _ := filepath.Match(tempFilePattern, name)
		if !matched {
			continue
		}

		info, err := entry.Info()
		if err != nil {
			continue
		}

		if info.ModTime().After(threshold) {
			continue
		}

		fullPath := filepath.Join(baseDir, name)
		if err := os.Remove(fullPath); err != nil {
			applog.WithComponentAndFields(component, applog.Fields{
				"file":  fullPath,
				"error": err,
			}).Warn("임시 파일 삭제 실패: 파일 제거 오류")
		} else {
			applog.WithComponentAndFields(component, applog.Fields{
				"file": fullPath,
			}).Info("임시 파일 삭제 완료: 이전 실행 잔존 파일 정리")
		}
	}
}
