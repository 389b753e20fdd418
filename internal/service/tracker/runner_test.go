package tracker

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	apperrors "github.com/darkkaiser/pricewatch-server/internal/pkg/errors"

	"github.com/darkkaiser/pricewatch-server/internal/service/contract"
	"github.com/darkkaiser/pricewatch-server/internal/service/tracker/pricing"
)

func storedProduct(id contract.ProductID, url string, prices []float64, subscribers ...string) contract.TrackedProduct {
	product := contract.TrackedProduct{
		ID:            id,
		NormalizedURL: url,
		Title:         "Stored Product",
		Currency:      "$",
	}
	for _, email := range subscribers {
		product.Subscribers = append(product.Subscribers, contract.Subscriber{Email: email})
	}
	for _, price := range prices {
		product.PriceHistory = append(product.PriceHistory, pricing.PriceEntry{Price: price})
	}
	product.CurrentPrice = prices[len(prices)-1]
	return product
}

func TestTracker_Run(t *testing.T) {
	const productURL = "https://www.amazon.com/dp/B0ABC12345"

	t.Run("등록된 상품이 없으면 수집 없이 종료한다", func(t *testing.T) {
		f := newTestTracker(t, nil)
		f.store.On("FindAll", mock.Anything).Return([]contract.TrackedProduct{}, nil)

		summary, err := f.tracker.Run(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "No products to scrape", summary.Message)
		assert.Equal(t, 0, summary.Data.SuccessCount)
	})

	t.Run("상품 가격을 다시 수집하여 이력과 통계를 갱신한다", func(t *testing.T) {
		f := newTestTracker(t, map[string]string{
			productURL: productPage("Stored Product", "$90.00", "$200.00", "-55%", "In Stock"),
		})

		prev := storedProduct("0123456789abcdef", productURL, []float64{200, 120})
		f.store.On("FindAll", mock.Anything).Return([]contract.TrackedProduct{prev}, nil)
		f.store.On("Upsert", mock.Anything, mock.MatchedBy(func(p *contract.TrackedProduct) bool {
			return p.CurrentPrice == 90 &&
				len(p.PriceHistory) == 3 &&
				p.LowestPrice == 90 &&
				p.HighestPrice == 200 &&
				p.AveragePrice == 136.67
		})).Return(nil)

		summary, err := f.tracker.Run(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "Ok", summary.Message)
		assert.Equal(t, 1, summary.Data.SuccessCount)
		assert.Equal(t, 0, summary.Data.FailedCount)
		// 구독자가 없으므로 메일은 발송되지 않는다.
		assert.Equal(t, 0, summary.Data.EmailsSent)
		f.store.AssertExpectations(t)
	})

	t.Run("역대 최저가 도달 시 모든 구독자에게 메일을 발송한다", func(t *testing.T) {
		f := newTestTracker(t, map[string]string{
			productURL: productPage("Stored Product", "$90.00", "$200.00", "", "In Stock"),
		})

		prev := storedProduct("0123456789abcdef", productURL, []float64{200, 120}, "first@example.com", "second@example.com")
		f.store.On("FindAll", mock.Anything).Return([]contract.TrackedProduct{prev}, nil)
		f.store.On("Upsert", mock.Anything, mock.Anything).Return(nil)
		f.mailSender.On("Send", mock.Anything, "first@example.com", mock.Anything, mock.Anything).Return(nil)
		f.mailSender.On("Send", mock.Anything, "second@example.com", mock.Anything, mock.Anything).Return(nil)

		summary, err := f.tracker.Run(context.Background())
		require.NoError(t, err)
		assert.Equal(t, 2, summary.Data.EmailsSent)
		f.mailSender.AssertExpectations(t)
	})

	t.Run("개별 구독자 발송 실패는 나머지 발송을 막지 않는다", func(t *testing.T) {
		f := newTestTracker(t, map[string]string{
			productURL: productPage("Stored Product", "$90.00", "$200.00", "", "In Stock"),
		})

		prev := storedProduct("0123456789abcdef", productURL, []float64{200, 120}, "first@example.com", "second@example.com")
		f.store.On("FindAll", mock.Anything).Return([]contract.TrackedProduct{prev}, nil)
		f.store.On("Upsert", mock.Anything, mock.Anything).Return(nil)
		f.mailSender.On("Send", mock.Anything, "first@example.com", mock.Anything, mock.Anything).
			Return(apperrors.New(apperrors.NotificationSend, "메일 발송 실패"))
		f.mailSender.On("Send", mock.Anything, "second@example.com", mock.Anything, mock.Anything).Return(nil)

		summary, err := f.tracker.Run(context.Background())
		require.NoError(t, err)
		assert.Equal(t, 1, summary.Data.EmailsSent)
		assert.Equal(t, 1, summary.Data.SuccessCount)
	})

	t.Run("수집에 실패한 상품은 실패로 집계하고 다음 상품을 계속 처리한다", func(t *testing.T) {
		const okURL = "https://www.amazon.com/dp/B0OK0000001"

		f := newTestTracker(t, map[string]string{
			okURL: productPage("Stored Product", "$120.00", "$200.00", "", "In Stock"),
		})

		products := []contract.TrackedProduct{
			storedProduct("0000000000000001", "https://www.amazon.com/dp/B0FAIL00001", []float64{100}),
			storedProduct("0000000000000002", okURL, []float64{120}),
		}
		f.store.On("FindAll", mock.Anything).Return(products, nil)
		f.store.On("Upsert", mock.Anything, mock.Anything).Return(nil)

		summary, err := f.tracker.Run(context.Background())
		require.NoError(t, err)
		assert.Equal(t, 1, summary.Data.SuccessCount)
		assert.Equal(t, 1, summary.Data.FailedCount)
	})

	t.Run("문서 저장에 실패한 상품은 실패로 집계한다", func(t *testing.T) {
		f := newTestTracker(t, map[string]string{
			productURL: productPage("Stored Product", "$120.00", "$200.00", "", "In Stock"),
		})

		prev := storedProduct("0123456789abcdef", productURL, []float64{120})
		f.store.On("FindAll", mock.Anything).Return([]contract.TrackedProduct{prev}, nil)
		f.store.On("Upsert", mock.Anything, mock.Anything).
			Return(apperrors.New(apperrors.Persistence, "문서 저장 실패"))

		summary, err := f.tracker.Run(context.Background())
		require.NoError(t, err)
		assert.Equal(t, 0, summary.Data.SuccessCount)
		assert.Equal(t, 1, summary.Data.FailedCount)
	})

	t.Run("저장소에 접근할 수 없으면 운영자에게 알리고 배치를 중단한다", func(t *testing.T) {
		f := newTestTracker(t, nil)

		storeErr := apperrors.New(apperrors.Persistence, "저장소 접근 불가")
		f.store.On("FindAll", mock.Anything).Return(nil, storeErr)
		f.adminNotifier.On("NotifyAdminWithError", mock.Anything, mock.Anything, storeErr).Return(nil)

		summary, err := f.tracker.Run(context.Background())
		require.Error(t, err)
		assert.Nil(t, summary)
		f.adminNotifier.AssertExpectations(t)
	})

	t.Run("이미 실행 중인 경우 ErrBatchAlreadyRunning을 반환한다", func(t *testing.T) {
		f := newTestTracker(t, nil)

		f.tracker.running.Store(true)
		defer f.tracker.running.Store(false)

		summary, err := f.tracker.Run(context.Background())
		assert.ErrorIs(t, err, contract.ErrBatchAlreadyRunning)
		assert.Nil(t, summary)
	})

	t.Run("배치 종료 후에는 다시 실행할 수 있다", func(t *testing.T) {
		f := newTestTracker(t, nil)
		f.store.On("FindAll", mock.Anything).Return([]contract.TrackedProduct{}, nil)

		_, err := f.tracker.Run(context.Background())
		require.NoError(t, err)
		_, err = f.tracker.Run(context.Background())
		require.NoError(t, err)
	})

	t.Run("소요 시간이 초 단위 문자열로 기록된다", func(t *testing.T) {
		f := newTestTracker(t, nil)
		f.store.On("FindAll", mock.Anything).Return([]contract.TrackedProduct{}, nil)

		summary, err := f.tracker.Run(context.Background())
		require.NoError(t, err)
		assert.Regexp(t, `^\d+\.\ds$`, summary.Duration)
	})
}

func TestTracker_RunStream(t *testing.T) {
	const okURL = "https://www.amazon.com/dp/B0OK0000001"
	const failURL = "https://www.amazon.com/dp/B0FAIL00001"

	t.Run("상품별 처리 결과가 순서대로 통지된다", func(t *testing.T) {
		f := newTestTracker(t, map[string]string{
			okURL: productPage("Stored Product", "$120.00", "$200.00", "", "In Stock"),
		})

		products := []contract.TrackedProduct{
			storedProduct("0000000000000001", okURL, []float64{120}),
			storedProduct("0000000000000002", failURL, []float64{100}),
		}
		f.store.On("FindAll", mock.Anything).Return(products, nil)
		f.store.On("Upsert", mock.Anything, mock.Anything).Return(nil)

		var progresses []contract.BatchProgress
		summary, err := f.tracker.RunStream(context.Background(), func(p contract.BatchProgress) {
			progresses = append(progresses, p)
		})
		require.NoError(t, err)
		require.Len(t, progresses, 2)

		assert.Equal(t, 1, progresses[0].Index)
		assert.Equal(t, 2, progresses[0].Total)
		assert.Equal(t, contract.ProductID("0000000000000001"), progresses[0].ProductID)
		assert.True(t, progresses[0].Succeeded)
		assert.Empty(t, progresses[0].Error)

		assert.Equal(t, 2, progresses[1].Index)
		assert.False(t, progresses[1].Succeeded)
		assert.NotEmpty(t, progresses[1].Error)

		// 진행 통지에는 상품 URL이 노출되지 않는다.
		for _, p := range progresses {
			data, err := json.Marshal(p)
			require.NoError(t, err)
			assert.NotContains(t, string(data), "amazon.com")
		}

		assert.Equal(t, 1, summary.Data.SuccessCount)
		assert.Equal(t, 1, summary.Data.FailedCount)
	})

	t.Run("컨텍스트가 취소되면 배치를 중단한다", func(t *testing.T) {
		f := newTestTracker(t, nil)

		products := []contract.TrackedProduct{storedProduct("0000000000000001", okURL, []float64{120})}
		f.store.On("FindAll", mock.Anything).Return(products, nil)

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		summary, err := f.tracker.RunStream(ctx, nil)
		assert.ErrorIs(t, err, context.Canceled)
		assert.Nil(t, summary)
	})
}

func TestFormatDuration(t *testing.T) {
	assert.Equal(t, "0.0s", formatDuration(0))
	assert.Equal(t, "1.5s", formatDuration(1500*time.Millisecond))
	assert.Equal(t, "12.3s", formatDuration(12*time.Second+340*time.Millisecond))
}
