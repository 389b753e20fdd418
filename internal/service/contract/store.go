package contract

import (
	"context"

	apperrors "github.com/darkkaiser/pricewatch-server/internal/pkg/errors"
)

// ErrProductNotFound 저장된 상품 문서를 찾을 수 없을 때 반환하는 에러입니다.
var ErrProductNotFound = apperrors.New(apperrors.NotFound, "조회 실패: 저장된 상품 문서 없음")

// ErrRateSnapshotNotFound 저장된 환율 스냅샷이 없을 때 반환하는 에러입니다.
var ErrRateSnapshotNotFound = apperrors.New(apperrors.NotFound, "조회 실패: 저장된 환율 스냅샷 없음")

// ProductStore 상품 문서를 저장하고 조회하는 저장소 인터페이스입니다.
//
// 문서의 조회 키는 정규화된 상품 URL(NormalizedURL)입니다.
// 추적 배치는 이 저장소를 통해 이전 관측 상태를 읽어 변경 사항을 감지합니다.
type ProductStore interface {
	// FindAll 저장된 모든 상품 문서를 반환합니다.
	// 저장된 문서가 하나도 없으면 빈 슬라이스를 반환합니다.
	FindAll(ctx context.Context) ([]TrackedProduct, error)

	// FindByKey 정규화된 URL로 상품 문서를 조회합니다.
	// 문서가 없는 경우 ErrProductNotFound 에러를 반환합니다.
	FindByKey(ctx context.Context, normalizedURL string) (*TrackedProduct, error)

	// FindByID 상품 ID로 상품 문서를 조회합니다.
	// 문서가 없는 경우 ErrProductNotFound 에러를 반환합니다.
	FindByID(ctx context.Context, id ProductID) (*TrackedProduct, error)

	// Upsert 상품 문서를 저장합니다.
	//
	// NormalizedURL이 동일한 문서가 이미 존재하면 덮어쓰고,
	// 존재하지 않으면 새 ID를 부여하여 생성합니다.
	// 저장 후의 문서(부여된 ID 포함)가 인자에 반영됩니다.
	Upsert(ctx context.Context, product *TrackedProduct) error
}

// RateStore 환율 스냅샷을 저장하고 불러오는 저장소 인터페이스입니다.
type RateStore interface {
	// LoadSnapshot 저장된 환율 스냅샷을 불러옵니다.
	// 저장된 스냅샷이 없는 경우 ErrRateSnapshotNotFound 에러를 반환합니다.
	LoadSnapshot(ctx context.Context) (*ExchangeRateSnapshot, error)

	// SaveSnapshot 환율 스냅샷을 저장합니다. 기존 스냅샷은 덮어씁니다.
	SaveSnapshot(ctx context.Context, snapshot *ExchangeRateSnapshot) error
}
