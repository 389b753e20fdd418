package contract

import "time"

// ExchangeRateSnapshot 특정 시점에 조회된 기준 통화 대비 환율 정보입니다.
type ExchangeRateSnapshot struct {
	// Base 기준 통화 코드 (예: "EUR")
	Base string `json:"base"`

	// FetchedAt 환율을 조회한 시각
	FetchedAt time.Time `json:"fetched_at"`

	// Rates 통화 코드별 환율 (기준 통화 1단위당 해당 통화 금액)
	Rates map[string]float64 `json:"rates"`
}

// CurrencyConverter 통화 기호로 표기된 금액을 기준 통화 금액으로 변환하는 인터페이스입니다.
type CurrencyConverter interface {
	// ToBase 금액을 기준 통화로 변환합니다.
	//
	// 알 수 없는 통화 기호이거나 환율 정보가 없는 경우에는
	// 1:1 환율로 처리하여 입력 금액을 그대로 반환합니다. (Fail-Open)
	ToBase(amount float64, currencySymbol string) float64
}
