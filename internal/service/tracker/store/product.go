// Package store 상품 문서와 환율 스냅샷을 파일 시스템에 저장하는 저장소 구현체를 제공합니다.
//
// [파일 구조]
//   - product-{키힌트}-{해시}.json: 상품 문서가 JSON 형식으로 저장됩니다.
//   - product-index.json: 상품 ID → 조회 키(정규화 URL) 매핑입니다.
//   - rates.json: 환율 스냅샷입니다.
//   - pricewatch-*.tmp: 파일 저장 중 생성되는 임시 파일입니다.
package store

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"sort"
	"strings"

	applog "github.com/darkkaiser/pricewatch-server/pkg/log"

	"github.com/darkkaiser/pricewatch-server/internal/service/contract"
	"github.com/darkkaiser/pricewatch-server/pkg/concurrency"
)

// indexFilename 상품 ID → 조회 키 매핑이 저장되는 파일 이름입니다.
const indexFilename = "product-index.json"

// fileProductStore 파일 시스템을 기반으로 상품 문서를 저장하는 저장소 구현체입니다.
//
// 문서는 조회 키(정규화 URL)별로 하나의 JSON 파일에 저장되며, ID 기반
// 조회를 위해 별도의 인덱스 파일을 함께 관리합니다. 모든 쓰기는 파일별
// 뮤텍스(KeyedMutex)로 보호되는 원자적 쓰기로 수행됩니다.
type fileProductStore struct {
	baseDir string

	// locks 동일한 파일에 대한 동시 쓰기를 방지하기 위한 파일별 뮤텍스입니다.
	locks *concurrency.KeyedMutex
}

// 컴파일 타임에 인터페이스 구현 여부를 검증합니다.
var _ contract.ProductStore = (*fileProductStore)(nil)

// NewFileProductStore 파일 시스템 기반의 상품 문서 저장소를 생성합니다.
//
// 초기화 과정에서 저장 디렉토리를 생성하고, 이전 실행에서 남은 임시
// 파일을 백그라운드에서 정리합니다. dir이 빈 문자열이면 "data"를 사용합니다.
func NewFileProductStore(dir string) (contract.ProductStore, error) {
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

	s := &fileProductStore{
		baseDir: absDir,

		locks: concurrency.NewKeyedMutex(),
	}

	// 서버 시작 속도에 영향을 주지 않도록 임시 파일 정리는 비동기로 수행한다.
	go func() {
		defer func() {
			if r := recover(); r != nil {
				applog.WithComponentAndFields(component, applog.Fields{
					"baseDir": s.baseDir,
					"panic":   r,
				}).Error("임시 파일 정리 중단: 백그라운드 작업 패닉 발생")
			}
		}()

		cleanupStaleTempFiles(s.baseDir)
	}()

	return s, nil
}

// FindAll 저장된 모든 상품 문서를 조회합니다.
// 반환 순서는 조회 키(정규화 URL)의 사전순으로 고정됩니다.
func (s *fileProductStore) FindAll(ctx context.Context) ([]contract.TrackedProduct, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		return nil, NewErrDocumentReadFailed(err)
	}

	products := make([]contract.TrackedProduct, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		matched, _ := filepath.Match("product-*.json", entry.Name())
		if !matched || entry.Name() == indexFilename {
			continue
		}

		product, err := s.readProductFile(filepath.Join(s.baseDir, entry.Name()))
		if err != nil {
			// 깨진 문서 하나가 전체 목록 조회를 막지 않도록 건너뛴다.
			applog.WithComponentAndFields(component, applog.Fields{
				"file":  entry.Name(),
				"error": err,
			}).Warn("상품 문서 읽기 실패: 목록 조회에서 제외")

			continue
		}

		products = append(products, *product)
	}

	sort.Slice(products, func(i, j int) bool {
		return products[i].NormalizedURL < products[j].NormalizedURL
	})

	return products, nil
}

// FindByKey 조회 키(정규화 URL)로 상품 문서를 조회합니다.
// 문서가 없는 경우 contract.ErrProductNotFound를 반환합니다.
func (s *fileProductStore) FindByKey(ctx context.Context, normalizedURL string) (*contract.TrackedProduct, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if strings.TrimSpace(normalizedURL) == "" {
		return nil, ErrEmptyProductKey
	}

	filename, err := resolveSafePath(s.baseDir, productFilename(normalizedURL))
	if err != nil {
		return nil, err
	}

	return s.readProductFile(filename)
}

// FindByID 상품 ID로 상품 문서를 조회합니다.
// 인덱스 파일에서 조회 키를 찾은 뒤 FindByKey로 위임합니다.
func (s *fileProductStore) FindByID(ctx context.Context, id contract.ProductID) (*contract.TrackedProduct, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	index, err := s.readIndex()
	if err != nil {
		return nil, err
	}

	key, ok := index[string(id)]
	if !ok {
		return nil, contract.ErrProductNotFound
	}

	return s.FindByKey(ctx, key)
}

// Upsert 상품 문서를 저장합니다.
//
// 문서는 조회 키(정규화 URL) 기준으로 저장되며, 신규 문서인 경우 조회
// 키로부터 생성된 ID가 부여되어 인자로 전달된 문서에 반영됩니다.
func (s *fileProductStore) Upsert(ctx context.Context, product *contract.TrackedProduct) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if strings.TrimSpace(product.NormalizedURL) == "" {
		return ErrEmptyProductKey
	}

	filename, err := resolveSafePath(s.baseDir, productFilename(product.NormalizedURL))
	if err != nil {
		return err
	}

	if product.ID == "" {
		product.ID = contract.ProductID(productIDFromKey(product.NormalizedURL))
	}

	data, err := json.MarshalIndent(product, "", "\t")
	if err != nil {
		return NewErrJSONMarshalFailed(err)
	}

	// Windows 등 대소문자를 구분하지 않는 파일 시스템을 위해 Lock 키는 소문자로 정규화한다.
	err = s.locks.WithLock(strings.ToLower(filename), func() error {
		return writeAtomic(filename, data)
	})
	if err != nil {
		return NewErrDocumentWriteFailed(err)
	}

	return s.updateIndex(string(product.ID), product.NormalizedURL)
}

// readProductFile 상품 문서 파일을 읽어 역직렬화합니다.
// 쓰기 작업과의 경합을 방지하기 위해 읽기에도 파일별 Lock을 적용합니다.
func (s *fileProductStore) readProductFile(filename string) (*contract.TrackedProduct, error) {
	var data []byte
	err := s.locks.WithLock(strings.ToLower(filename), func() error {
		var readErr error
		data, readErr = os.ReadFile(filename)
		if readErr != nil {
			if os.IsNotExist(readErr) {
				return contract.ErrProductNotFound
			}
			return NewErrDocumentReadFailed(readErr)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	product := &contract.TrackedProduct{}
	if err := json.Unmarshal(data, product); err != nil {
		return nil, NewErrJSONUnmarshalFailed(err)
	}

	return product, nil
}

// readIndex 상품 ID → 조회 키 인덱스 파일을 읽습니다.
// 인덱스 파일이 아직 없는 경우 빈 인덱스를 반환합니다.
func (s *fileProductStore) readIndex() (map[string]string, error) {
	filename := filepath.Join(s.baseDir, indexFilename)

	var data []byte
	err := s.locks.WithLock(strings.ToLower(filename), func() error {
		var readErr error
		data, readErr = os.ReadFile(filename)
		if readErr != nil {
			if os.IsNotExist(readErr) {
				data = nil
				return nil
			}
			return NewErrDocumentReadFailed(readErr)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	index := map[string]string{}
	if len(data) > 0 {
		if err := json.Unmarshal(data, &index); err != nil {
			return nil, NewErrJSONUnmarshalFailed(err)
		}
	}

	return index, nil
}

// updateIndex 인덱스 파일에 상품 ID → 조회 키 매핑을 반영합니다.
func (s *fileProductStore) updateIndex(id, key string) error {
	filename := filepath.Join(s.baseDir, indexFilename)

	return s.locks.WithLock(strings.ToLower(filename), func() error {
		index := map[string]string{}

		data, err := os.ReadFile(filename)
		if err != nil && !os.IsNotExist(err) {
			return NewErrDocumentReadFailed(err)
		}
		if len(data) > 0 {
			if err := json.Unmarshal(data, &index); err != nil {
				// 깨진 인덱스는 버리고 새로 생성한다.
				index = map[string]string{}
			}
		}

		if index[id] == key {
			return nil
		}
		index[id] = key

		updated, err := json.MarshalIndent(index, "", "\t")
		if err != nil {
			return NewErrJSONMarshalFailed(err)
		}

		if err := writeAtomic(filename, updated); err != nil {
			return NewErrDocumentWriteFailed(err)
		}

		return nil
	})
}
