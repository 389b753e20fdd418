// Package currency 상품 가격을 기준 통화(EUR)로 환산하는 환율 변환기를 제공합니다.
//
// 환율 스냅샷은 외부 환율 API에서 주기적으로 수집되어 저장소에 캐시되며,
// API와 저장소 모두 사용할 수 없는 경우에도 내장 폴백 환율로 동작합니다.
package currency

import (
	"context"
	"sync"
	"time"

	apperrors "github.com/darkkaiser/pricewatch-server/internal/pkg/errors"
	applog "github.com/darkkaiser/pricewatch-server/pkg/log"

	"github.com/darkkaiser/pricewatch-server/internal/service/contract"
	"github.com/darkkaiser/pricewatch-server/internal/service/tracker/fetcher"
	"github.com/tidwall/gjson"
)

const component = "currency"

// BaseCurrencyCode 모든 가격 비교의 기준이 되는 통화 코드입니다.
const BaseCurrencyCode = "EUR"

// staleAfter 캐시된 환율 스냅샷이 오래된 것으로 간주되는 기준 시간입니다.
const staleAfter = 24 * time.Hour

// currencySymbolToCode 상품 페이지에서 추출된 통화 기호를 통화 코드로 변환하는 테이블입니다.
var currencySymbolToCode = map[string]string{
	"$":  "USD",
	"£":  "GBP",
	"€":  "EUR",
	"₹":  "INR",
	"¥":  "JPY",
	"A$": "AUD",
	"C$": "CAD",
	"₿":  "BTC",
}

// fallbackRates 환율 API와 저장소를 모두 사용할 수 없을 때 사용되는 내장 환율입니다.
// 기준 통화 1 EUR 당 각 통화의 환산 비율입니다.
var fallbackRates = map[string]float64{
	"USD": 1.09,
	"GBP": 0.85,
	"INR": 90.5,
	"JPY": 162.0,
	"AUD": 1.65,
	"CAD": 1.48,
	"EUR": 1.0,
}

// Converter 환율 스냅샷을 관리하고 가격을 기준 통화로 환산합니다.
type Converter struct {
	apiURL  string
	fetcher fetcher.Fetcher
	store   contract.RateStore

	mu       sync.RWMutex
	snapshot *contract.ExchangeRateSnapshot
}

var _ contract.CurrencyConverter = (*Converter)(nil)

// NewConverter 환율 변환기를 생성합니다.
// apiURL이 빈 문자열이면 외부 수집 없이 저장소 캐시와 내장 폴백 환율만 사용합니다.
func NewConverter(apiURL string, f fetcher.Fetcher, store contract.RateStore) *Converter {
	return &Converter{
		apiURL:  apiURL,
		fetcher: f,
		store:   store,
	}
}

// ToBase 통화 기호로 표시된 금액을 기준 통화(EUR) 금액으로 환산합니다.
// 알 수 없는 기호이거나 환율 정보가 없는 경우 1:1 비율로 환산합니다.
func (c *Converter) ToBase(amount float64, currencySymbol string) float64 {
	code := symbolToCode(currencySymbol)
	if code == BaseCurrencyCode {
		return amount
	}

	rate, ok := c.latestRates()[code]
	if !ok || rate <= 0 {
		applog.WithComponentAndFields(component, applog.Fields{
			"currency_code": code,
		}).Warn("환율 정보가 없어 1:1 비율로 환산합니다")

		return amount
	}

	// 환율은 "1 EUR = rate 통화" 형식이므로 나눗셈으로 기준 통화에 환산한다.
	return amount / rate
}

// Refresh 외부 환율 API에서 최신 환율 스냅샷을 수집하여 저장소에 캐시합니다.
func (c *Converter) Refresh(ctx context.Context) error {
	if c.apiURL == "" {
		applog.WithComponent(component).Debug("환율 API 주소가 설정되지 않아 환율 수집을 건너뜁니다")
		return nil
	}

	data, err := fetcher.FetchBytes(ctx, c.fetcher, c.apiURL)
	if err != nil {
		return apperrors.Wrap(err, apperrors.Transport, "환율 API 호출에 실패하였습니다")
	}

	result := gjson.ParseBytes(data)
	if result.Get("success").Exists() && !result.Get("success").Bool() {
		return apperrors.Newf(apperrors.Transport, "환율 API가 오류를 반환하였습니다: %s", result.Get("error").Raw)
	}

	rates := map[string]float64{}
	result.Get("rates").ForEach(func(key, value gjson.Result) bool {
		rates[key.String()] = value.Float()
		return true
	})
	if len(rates) == 0 {
		return apperrors.New(apperrors.ExtractionFailed, "환율 API 응답에서 환율 정보를 찾을 수 없습니다")
	}

	base := result.Get("base").String()
	if base == "" {
		base = BaseCurrencyCode
	}

	snapshot := &contract.ExchangeRateSnapshot{
		Base:      base,
		FetchedAt: time.Now(),
		Rates:     rates,
	}

	if err := c.store.SaveSnapshot(ctx, snapshot); err != nil {
		return err
	}

	c.mu.Lock()
	c.snapshot = snapshot
	c.mu.Unlock()

	applog.WithComponentAndFields(component, applog.Fields{
		"base":       snapshot.Base,
		"currencies": len(snapshot.Rates),
	}).Info("환율 스냅샷 갱신 완료")

	return nil
}

// latestRates 사용 가능한 최신 환율 테이블을 반환합니다.
// 메모리 캐시 → 저장소 스냅샷 → 내장 폴백 환율 순으로 조회합니다.
func (c *Converter) latestRates() map[string]float64 {
	c.mu.RLock()
	snapshot := c.snapshot
	c.mu.RUnlock()

	if snapshot == nil {
		loaded, err := c.store.LoadSnapshot(context.Background())
		if err != nil {
			if !apperrors.Is(err, apperrors.NotFound) {
				applog.WithComponentAndFields(component, applog.Fields{
					"error": err,
				}).Warn("환율 스냅샷 조회 실패: 내장 폴백 환율을 사용합니다")
			} else {
				applog.WithComponent(component).Warn("캐시된 환율 스냅샷이 없어 내장 폴백 환율을 사용합니다")
			}

			return fallbackRates
		}

		c.mu.Lock()
		c.snapshot = loaded
		c.mu.Unlock()

		snapshot = loaded
	}

	if age := time.Since(snapshot.FetchedAt); age > staleAfter {
		applog.WithComponentAndFields(component, applog.Fields{
			"age": age.Truncate(time.Minute).String(),
		}).Warn("캐시된 환율 스냅샷이 오래되었습니다")
	}

	return snapshot.Rates
}

// symbolToCode 통화 기호를 통화 코드로 변환합니다.
// 테이블에 없는 기호는 이미 통화 코드인 것으로 간주하여 그대로 반환합니다.
func symbolToCode(symbol string) string {
	if code, ok := currencySymbolToCode[symbol]; ok {
		return code
	}
	return symbol
}
