package store

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/darkkaiser/pricewatch-server/internal/service/contract"
	"github.com/darkkaiser/pricewatch-server/pkg/concurrency"
)

// ratesFilename 환율 스냅샷이 저장되는 파일 이름입니다.
const ratesFilename = "rates.json"

// fileRateStore 파일 시스템을 기반으로 환율 스냅샷을 저장하는 저장소 구현체입니다.
type fileRateStore struct {
	filename string

	locks *concurrency.KeyedMutex
}

var _ contract.RateStore = (*fileRateStore)(nil)

// NewFileRateStore 파일 시스템 기반의 환율 스냅샷 저장소를 생성합니다.
// dir이 빈 문자열이면 "data"를 사용합니다.
func NewFileRateStore(dir string) (contract.RateStore, error) {
	if dir == "" {
		dir = "data"
	}

	absDir, err := filepath.Abs(dir)
	if err != nil {
		return nil, NewErrStoreInitFailed(err, dir)
	}

	if err := os.MkdirAll(absDir, 0755); err != nil {
		return nil, NewErrStoreInitFailed(err, absDir)
	}

	return &fileRateStore{
		filename: filepath.Join(absDir, ratesFilename),

		locks: concurrency.NewKeyedMutex(),
	}, nil
}

// LoadSnapshot 저장된 환율 스냅샷을 조회합니다.
// 스냅샷이 없는 경우 contract.ErrRateSnapshotNotFound를 반환합니다.
func (s *fileRateStore) LoadSnapshot(ctx context.Context) (*contract.ExchangeRateSnapshot, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var data []byte
	err := s.locks.WithLock(strings.ToLower(s.filename), func() error {
		var readErr error
		data, readErr = os.ReadFile(s.filename)
		if readErr != nil {
			if os.IsNotExist(readErr) {
				return contract.ErrRateSnapshotNotFound
			}
			return NewErrDocumentReadFailed(readErr)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	snapshot := &contract.ExchangeRateSnapshot{}
	if err := json.Unmarshal(data, snapshot); err != nil {
		return nil, NewErrJSONUnmarshalFailed(err)
	}

	return snapshot, nil
}

// SaveSnapshot 환율 스냅샷을 저장합니다.
func (s *fileRateStore) SaveSnapshot(ctx context.Context, snapshot *contract.ExchangeRateSnapshot) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	data, err := json.MarshalIndent(snapshot, "", "\t")
	if err != nil {
		return NewErrJSONMarshalFailed(err)
	}

	err = s.locks.WithLock(strings.ToLower(s.filename), func() error {
		return writeAtomic(s.filename, data)
	})
	if err != nil {
		return NewErrDocumentWriteFailed(err)
	}

	return nil
}
