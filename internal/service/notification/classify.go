package notification

import (
	"github.com/darkkaiser/pricewatch-server/internal/service/contract"
	"github.com/darkkaiser/pricewatch-server/internal/service/tracker/pricing"
)

// discountRateThreshold 할인율 알림(KindThresholdMet)이 발송되는 최소 할인율(%)입니다.
const discountRateThreshold = 40

// Classify 이전 문서와 새로 수집된 문서를 비교하여 발송할 알림의 종류를 판별합니다.
//
// 여러 조건이 동시에 충족되는 경우 우선순위가 높은 하나의 알림만 선택됩니다.
// 우선순위: 역대 최저가 > 재입고 > 할인율 기준치 도달.
// 발송할 알림이 없는 경우 ok로 false를 반환합니다.
func Classify(prev, next *contract.TrackedProduct) (kind Kind, ok bool) {
	if prev == nil || next == nil {
		return KindUnknown, false
	}

	lowest := pricing.Lowest(prev.PriceHistory)
	if lowest > 0 && next.CurrentPrice > 0 && next.CurrentPrice < lowest {
		return KindLowestPrice, true
	}

	if prev.OutOfStock && !next.OutOfStock {
		return KindChangeOfStock, true
	}

	if next.DiscountRate >= discountRateThreshold {
		return KindThresholdMet, true
	}

	return KindUnknown, false
}
