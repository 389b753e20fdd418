// Package pricing 상품의 가격 이력에 대한 집계 함수를 제공합니다.
//
// 집계값은 항상 전체 이력을 다시 계산하여 구하며, 기존 집계값에 새로운
// 가격을 반영하는 증분 방식은 사용하지 않습니다.
package pricing

import (
	"math"
	"time"
)

// PriceEntry 특정 시점에 확인된 상품 가격입니다.
type PriceEntry struct {
	Price     float64   `json:"price"`
	CheckedAt time.Time `json:"checked_at"`
}

// Append 가격 이력에 새로운 항목을 추가한 새 슬라이스를 반환합니다.
// 입력 슬라이스는 변경되지 않습니다.
func Append(history []PriceEntry, entry PriceEntry) []PriceEntry {
	appended := make([]PriceEntry, 0, len(history)+1)
	appended = append(appended, history...)
	appended = append(appended, entry)
	return appended
}

// Lowest 가격 이력중 가장 낮은 가격을 반환합니다.
// 같은 가격이 여러번 나타나는 경우 가장 먼저 나타난 항목을 기준으로 하며,
// 이력이 비어있는 경우 0을 반환합니다.
func Lowest(history []PriceEntry) float64 {
	if len(history) == 0 {
		return 0
	}

	lowest := history[0].Price
	for _, entry := range history[1:] {
		if entry.Price < lowest {
			lowest = entry.Price
		}
	}
	return lowest
}

// Highest 가격 이력중 가장 높은 가격을 반환합니다.
// 같은 가격이 여러번 나타나는 경우 가장 먼저 나타난 항목을 기준으로 하며,
// 이력이 비어있는 경우 0을 반환합니다.
func Highest(history []PriceEntry) float64 {
	if len(history) == 0 {
		return 0
	}

	highest := history[0].Price
	for _, entry := range history[1:] {
		if entry.Price > highest {
			highest = entry.Price
		}
	}
	return highest
}

// Average 가격 이력의 산술 평균을 소수점 둘째 자리까지 반올림하여
// 반환합니다. 이력이 비어있는 경우 0을 반환합니다.
func Average(history []PriceEntry) float64 {
	if len(history) == 0 {
		return 0
	}

	var sum float64
	for _, entry := range history {
		sum += entry.Price
	}

	return math.Round(sum/float64(len(history))*100) / 100
}
