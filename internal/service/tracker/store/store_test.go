package store

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/darkkaiser/pricewatch-server/internal/service/contract"
	"github.com/darkkaiser/pricewatch-server/internal/service/tracker/pricing"
)

// setupTestProductStore 임시 디렉토리에 상품 저장소를 생성하는 테스트 헬퍼입니다.
func setupTestProductStore(t *testing.T) (contract.ProductStore, string) {
	t.Helper()
	tempDir := t.TempDir()
	s, err := NewFileProductStore(tempDir)
	require.NoError(t, err)
	return s, tempDir
}

func newTestProduct(normalizedURL, title string) *contract.TrackedProduct {
	now := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)

	return &contract.TrackedProduct{
		NormalizedURL: normalizedURL,
		SourceURL:     normalizedURL + "?tag=someaffiliate",
		Title:         title,
		Category:      "Headphones",
		Currency:      "$",
		CurrentPrice:  248,
		OriginalPrice: 399.99,
		BasePrice:     227.52,
		LowestPrice:   248,
		HighestPrice:  399.99,
		AveragePrice:  323.99,
		DiscountRate:  38,
		PriceHistory: []pricing.PriceEntry{
			{Price: 399.99, CheckedAt: now},
			{Price: 248, CheckedAt: now},
		},
		Subscribers: []contract.Subscriber{{Email: "user@example.com", SubscribedAt: now}},
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

func TestNewFileProductStore(t *testing.T) {
	t.Run("지정된 디렉토리로 저장소 생성에 성공한다", func(t *testing.T) {
		tempDir := t.TempDir()
		s, err := NewFileProductStore(tempDir)
		require.NoError(t, err)
		assert.NotNil(t, s)
	})

	t.Run("일반 파일을 디렉토리로 지정하면 초기화에 실패한다", func(t *testing.T) {
		tempDir := t.TempDir()
		filePath := filepath.Join(tempDir, "file_as_dir")
		require.NoError(t, os.WriteFile(filePath, []byte("test"), 0644))

		s, err := NewFileProductStore(filePath)
		require.Error(t, err)
		assert.Nil(t, s)
		assert.Contains(t, err.Error(), "저장소 초기화 실패")
	})
}

func TestFileProductStore_Upsert(t *testing.T) {
	s, tempDir := setupTestProductStore(t)
	ctx := context.Background()

	t.Run("저장 후 정규화 URL로 동일한 문서를 조회할 수 있다", func(t *testing.T) {
		product := newTestProduct("https://www.amazon.com/dp/B0ABC12345", "Sony WH-1000XM5")
		require.NoError(t, s.Upsert(ctx, product))

		found, err := s.FindByKey(ctx, product.NormalizedURL)
		require.NoError(t, err)
		assert.Equal(t, product.Title, found.Title)
		assert.Equal(t, product.CurrentPrice, found.CurrentPrice)
		assert.Equal(t, product.Subscribers, found.Subscribers)
		assert.Len(t, found.PriceHistory, 2)
	})

	t.Run("신규 문서 저장 시 정규화 URL로부터 ID가 부여된다", func(t *testing.T) {
		product := newTestProduct("https://www.amazon.com/dp/B0NEW000001", "New Product")
		require.NoError(t, s.Upsert(ctx, product))
		assert.NotEmpty(t, product.ID)

		// 같은 정규화 URL을 다시 저장하면 항상 같은 ID가 부여된다.
		again := newTestProduct("https://www.amazon.com/dp/B0NEW000001", "New Product")
		require.NoError(t, s.Upsert(ctx, again))
		assert.Equal(t, product.ID, again.ID)
	})

	t.Run("이미 ID가 있는 문서는 ID를 유지한다", func(t *testing.T) {
		product := newTestProduct("https://www.amazon.com/dp/B0KEEP00001", "Keep ID")
		product.ID = "feedfacecafebeef"
		require.NoError(t, s.Upsert(ctx, product))
		assert.Equal(t, contract.ProductID("feedfacecafebeef"), product.ID)
	})

	t.Run("정규화 URL이 비어있으면 저장에 실패한다", func(t *testing.T) {
		product := newTestProduct("", "No Key")
		err := s.Upsert(ctx, product)
		assert.ErrorIs(t, err, ErrEmptyProductKey)
	})

	t.Run("문서 파일은 원자적으로 기록되어 임시 파일이 남지 않는다", func(t *testing.T) {
		entries, err := os.ReadDir(tempDir)
		require.NoError(t, err)
		for _, entry := range entries {
			matched, _ := filepath.Match(tempFilePattern, entry.Name())
			assert.False(t, matched, "임시 파일이 남아있음: %s", entry.Name())
		}
	})
}

func TestFileProductStore_FindByKey(t *testing.T) {
	s, _ := setupTestProductStore(t)
	ctx := context.Background()

	t.Run("존재하지 않는 문서를 조회하면 ErrProductNotFound를 반환한다", func(t *testing.T) {
		found, err := s.FindByKey(ctx, "https://www.amazon.com/dp/B0MISSING00")
		assert.ErrorIs(t, err, contract.ErrProductNotFound)
		assert.Nil(t, found)
	})

	t.Run("조회 키가 비어있으면 ErrEmptyProductKey를 반환한다", func(t *testing.T) {
		found, err := s.FindByKey(ctx, "   ")
		assert.ErrorIs(t, err, ErrEmptyProductKey)
		assert.Nil(t, found)
	})
}

func TestFileProductStore_FindByID(t *testing.T) {
	s, _ := setupTestProductStore(t)
	ctx := context.Background()

	t.Run("저장된 문서를 ID로 조회할 수 있다", func(t *testing.T) {
		product := newTestProduct("https://www.amazon.com/dp/B0BYID00001", "By ID")
		require.NoError(t, s.Upsert(ctx, product))

		found, err := s.FindByID(ctx, product.ID)
		require.NoError(t, err)
		assert.Equal(t, product.NormalizedURL, found.NormalizedURL)
		assert.Equal(t, product.ID, found.ID)
	})

	t.Run("존재하지 않는 ID를 조회하면 ErrProductNotFound를 반환한다", func(t *testing.T) {
		found, err := s.FindByID(ctx, "0000000000000000")
		assert.ErrorIs(t, err, contract.ErrProductNotFound)
		assert.Nil(t, found)
	})
}

func TestFileProductStore_FindAll(t *testing.T) {
	s, tempDir := setupTestProductStore(t)
	ctx := context.Background()

	t.Run("빈 저장소에서는 빈 목록을 반환한다", func(t *testing.T) {
		products, err := s.FindAll(ctx)
		require.NoError(t, err)
		assert.Empty(t, products)
	})

	t.Run("저장된 모든 문서를 정규화 URL의 사전순으로 반환한다", func(t *testing.T) {
		urls := []string{
			"https://www.amazon.com/dp/B0CCC000003",
			"https://www.amazon.com/dp/B0AAA000001",
			"https://www.amazon.com/dp/B0BBB000002",
		}
		for _, u := range urls {
			require.NoError(t, s.Upsert(ctx, newTestProduct(u, "Product "+u)))
		}

		products, err := s.FindAll(ctx)
		require.NoError(t, err)
		require.Len(t, products, 3)
		assert.Equal(t, "https://www.amazon.com/dp/B0AAA000001", products[0].NormalizedURL)
		assert.Equal(t, "https://www.amazon.com/dp/B0BBB000002", products[1].NormalizedURL)
		assert.Equal(t, "https://www.amazon.com/dp/B0CCC000003", products[2].NormalizedURL)
	})

	t.Run("깨진 문서 파일은 건너뛰고 나머지 목록을 반환한다", func(t *testing.T) {
		broken := filepath.Join(tempDir, "product-broken-0000000000000000.json")
		require.NoError(t, os.WriteFile(broken, []byte("{invalid json"), 0644))

		products, err := s.FindAll(ctx)
		require.NoError(t, err)
		assert.Len(t, products, 3)
	})

	t.Run("인덱스 파일은 상품 목록에 포함되지 않는다", func(t *testing.T) {
		_, err := os.Stat(filepath.Join(tempDir, indexFilename))
		require.NoError(t, err)

		products, err := s.FindAll(ctx)
		require.NoError(t, err)
		for _, product := range products {
			assert.NotEmpty(t, product.Title)
		}
	})
}

func TestFileProductStore_ContextCancel(t *testing.T) {
	s, _ := setupTestProductStore(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := s.FindAll(ctx)
	assert.ErrorIs(t, err, context.Canceled)

	err = s.Upsert(ctx, newTestProduct("https://www.amazon.com/dp/B0CANCEL001", "Cancelled"))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestFileRateStore(t *testing.T) {
	tempDir := t.TempDir()
	s, err := NewFileRateStore(tempDir)
	require.NoError(t, err)
	ctx := context.Background()

	t.Run("스냅샷이 없으면 ErrRateSnapshotNotFound를 반환한다", func(t *testing.T) {
		snapshot, err := s.LoadSnapshot(ctx)
		assert.ErrorIs(t, err, contract.ErrRateSnapshotNotFound)
		assert.Nil(t, snapshot)
	})

	t.Run("저장한 스냅샷을 동일하게 조회할 수 있다", func(t *testing.T) {
		saved := &contract.ExchangeRateSnapshot{
			Base:      "EUR",
			FetchedAt: time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC),
			Rates: map[string]float64{
				"USD": 1.09,
				"GBP": 0.85,
				"EUR": 1.0,
			},
		}
		require.NoError(t, s.SaveSnapshot(ctx, saved))

		loaded, err := s.LoadSnapshot(ctx)
		require.NoError(t, err)
		assert.Equal(t, saved.Base, loaded.Base)
		assert.True(t, saved.FetchedAt.Equal(loaded.FetchedAt))
		assert.Equal(t, saved.Rates, loaded.Rates)
	})

	t.Run("다시 저장하면 기존 스냅샷을 덮어쓴다", func(t *testing.T) {
		updated := &contract.ExchangeRateSnapshot{
			Base:      "EUR",
			FetchedAt: time.Date(2026, 8, 2, 0, 0, 0, 0, time.UTC),
			Rates:     map[string]float64{"USD": 1.11, "EUR": 1.0},
		}
		require.NoError(t, s.SaveSnapshot(ctx, updated))

		loaded, err := s.LoadSnapshot(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1.11, loaded.Rates["USD"])
	})
}
