package tracker

import (
	"context"
	"fmt"
	"time"

	applog "github.com/darkkaiser/pricewatch-server/pkg/log"

	"github.com/darkkaiser/pricewatch-server/internal/service/contract"
	"github.com/darkkaiser/pricewatch-server/internal/service/notification"
	"github.com/darkkaiser/pricewatch-server/internal/service/tracker/pricing"
	"github.com/darkkaiser/pricewatch-server/pkg/strutil"
)

// Run 등록된 모든 상품의 가격을 다시 수집하는 배치 작업을 실행합니다.
func (t *Tracker) Run(ctx context.Context) (*contract.BatchSummary, error) {
	return t.RunStream(ctx, nil)
}

// RunStream 배치 작업을 실행하며 상품별 처리 결과를 progressFn으로 통지합니다.
//
// 배치는 한 번에 하나만 실행될 수 있으며, 이미 실행 중인 경우
// contract.ErrBatchAlreadyRunning을 반환합니다. 개별 상품의 수집/저장/발송
// 실패는 집계에만 반영되고 배치는 다음 상품으로 계속 진행됩니다.
func (t *Tracker) RunStream(ctx context.Context, progressFn contract.BatchProgressFunc) (*contract.BatchSummary, error) {
	if !t.running.CompareAndSwap(false, true) {
		return nil, contract.ErrBatchAlreadyRunning
	}
	defer t.running.Store(false)

	startTime := t.now()
	summary := &contract.BatchSummary{Message: "Ok"}

	products, err := t.store.FindAll(ctx)
	if err != nil {
		// 저장소 접근 불가는 배치 전체를 진행할 수 없는 치명적 오류다.
		if notifyErr := t.adminNotifier.NotifyAdminWithError(ctx, "가격 추적 배치 실행 실패: 상품 저장소에 접근할 수 없습니다", err); notifyErr != nil {
			applog.WithComponentAndFields(component, applog.Fields{
				"error": notifyErr,
			}).Error("운영자 알림 전송 실패")
		}

		return nil, err
	}

	if len(products) == 0 {
		summary.Message = "No products to scrape"
		summary.Duration = formatDuration(t.now().Sub(startTime))
		return summary, nil
	}

	applog.WithComponentAndFields(component, applog.Fields{
		"products": len(products),
	}).Info("가격 추적 배치 시작")

	for i := range products {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		prev := products[i]
		emailsSent, err := t.refreshProduct(ctx, &prev)
		summary.Data.EmailsSent += emailsSent
		if err != nil {
			summary.Data.FailedCount++

			applog.WithComponentAndFields(component, applog.Fields{
				"product_id": prev.ID,
				"error":      err,
			}).Error("상품 가격 수집 실패")
		} else {
			summary.Data.SuccessCount++
		}

		if progressFn != nil {
			progress := contract.BatchProgress{
				Index:     i + 1,
				Total:     len(products),
				ProductID: prev.ID,
				Title:     prev.Title,
				Succeeded: err == nil,
			}
			if err != nil {
				progress.Error = err.Error()
			}

			progressFn(progress)
		}
	}

	summary.Duration = formatDuration(t.now().Sub(startTime))

	applog.WithComponentAndFields(component, applog.Fields{
		"duration": summary.Duration,
		"success":  summary.Data.SuccessCount,
		"failed":   summary.Data.FailedCount,
		"emails":   summary.Data.EmailsSent,
	}).Info("가격 추적 배치 완료")

	return summary, nil
}

// refreshProduct 단일 상품의 가격을 다시 수집하여 문서를 갱신하고,
// 알림 조건이 충족되면 구독자에게 메일을 발송합니다.
// 반환값은 발송에 성공한 메일 수입니다.
func (t *Tracker) refreshProduct(ctx context.Context, prev *contract.TrackedProduct) (int, error) {
	result, err := t.scrapeProductPage(ctx, prev.NormalizedURL)
	if err != nil {
		return 0, err
	}

	now := t.now()
	history := pricing.Append(prev.PriceHistory, pricing.PriceEntry{Price: result.CurrentPrice, CheckedAt: now})

	next := *prev
	next.Title = result.Title
	next.Description = result.Description
	next.Category = result.Category
	next.ImageURL = result.ImageURL
	next.Currency = result.Currency
	next.CurrentPrice = result.CurrentPrice
	next.OriginalPrice = result.OriginalPrice
	next.BasePrice = t.converter.ToBase(result.CurrentPrice, result.Currency)
	next.DiscountRate = result.DiscountRate
	next.OutOfStock = result.OutOfStock
	next.ReviewsCount = result.ReviewsCount
	next.Stars = result.Stars
	next.PriceHistory = history
	next.LowestPrice = pricing.Lowest(history)
	next.HighestPrice = pricing.Highest(history)
	next.AveragePrice = pricing.Average(history)
	next.UpdatedAt = now

	// 알림 판별은 저장 전의 이전 문서와 새로 수집된 문서를 비교한다.
	kind, fired := notification.Classify(prev, &next)

	if err := t.store.Upsert(ctx, &next); err != nil {
		return 0, err
	}

	if !fired || len(next.Subscribers) == 0 {
		return 0, nil
	}

	var sent int
	for _, subscriber := range next.Subscribers {
		if err := ctx.Err(); err != nil {
			return sent, err
		}

		if err := t.sendNotificationMail(ctx, kind, &next, subscriber.Email); err != nil {
			// 개별 수신자 발송 실패는 나머지 구독자 발송을 막지 않는다.
			applog.WithComponentAndFields(component, applog.Fields{
				"product_id": next.ID,
				"kind":       kind.String(),
				"to":         strutil.MaskEmail(subscriber.Email),
				"error":      err,
			}).Error("알림 메일 발송 실패")

			continue
		}

		sent++
	}

	return sent, nil
}

// formatDuration 배치 소요 시간을 "12.3s" 형식의 문자열로 변환합니다.
func formatDuration(d time.Duration) string {
	return fmt.Sprintf("%.1fs", d.Seconds())
}
