// Package tracker 상품 등록/구독 해지 처리와 주기적인 가격 추적 배치를 담당합니다.
//
// 등록된 상품 문서를 순회하며 상품 페이지를 다시 수집하고, 가격 이력과
// 통계를 갱신하며, 알림 조건이 충족된 경우 구독자에게 메일을 발송합니다.
package tracker

import (
	"context"
	"sync/atomic"
	"time"

	apperrors "github.com/darkkaiser/pricewatch-server/internal/pkg/errors"
	applog "github.com/darkkaiser/pricewatch-server/pkg/log"

	"github.com/darkkaiser/pricewatch-server/internal/service/contract"
	"github.com/darkkaiser/pricewatch-server/internal/service/notification"
	"github.com/darkkaiser/pricewatch-server/internal/service/notification/email"
	"github.com/darkkaiser/pricewatch-server/internal/service/tracker/fetcher"
	"github.com/darkkaiser/pricewatch-server/internal/service/tracker/pricing"
	"github.com/darkkaiser/pricewatch-server/internal/service/tracker/scrape"
	"github.com/darkkaiser/pricewatch-server/internal/service/tracker/urlnorm"
	"github.com/darkkaiser/pricewatch-server/pkg/strutil"
)

const component = "tracker"

// Tracker 상품 추적의 모든 유스케이스를 처리하는 핵심 서비스 객체입니다.
type Tracker struct {
	fetcher   fetcher.Fetcher
	store     contract.ProductStore
	selectors *scrape.Selectors

	converter     contract.CurrencyConverter
	mailSender    contract.MailSender
	adminNotifier contract.AdminNotifier
	emailBuilder  *email.Builder

	// running 배치 작업의 중복 실행 방지 플래그입니다.
	running atomic.Bool

	// now 시각 의존성 주입 지점입니다. 테스트에서만 교체됩니다.
	now func() time.Time
}

var _ contract.BatchRunner = (*Tracker)(nil)

// New 상품 추적 서비스를 생성합니다.
func New(
	f fetcher.Fetcher,
	store contract.ProductStore,
	selectors *scrape.Selectors,
	converter contract.CurrencyConverter,
	mailSender contract.MailSender,
	adminNotifier contract.AdminNotifier,
	emailBuilder *email.Builder,
) *Tracker {
	return &Tracker{
		fetcher:   f,
		store:     store,
		selectors: selectors,

		converter:     converter,
		mailSender:    mailSender,
		adminNotifier: adminNotifier,
		emailBuilder:  emailBuilder,

		now: time.Now,
	}
}

// TrackResult 상품 등록 요청의 처리 결과입니다.
type TrackResult struct {
	Product *contract.TrackedProduct

	// NewlySubscribed 이번 요청으로 구독자 목록에 새로 추가되었는지 여부입니다.
	NewlySubscribed bool
}

// Track 상품 URL과 구독자 메일 주소를 등록합니다.
//
// 이미 추적 중인 상품이면 페이지를 다시 수집하지 않고 구독자만 추가합니다.
// 새로 구독자가 추가된 경우에만 환영 메일이 발송되며, 이미 구독 중인 메일
// 주소로 다시 등록해도 요청은 성공으로 처리됩니다.
func (t *Tracker) Track(ctx context.Context, rawURL, subscriberEmail string) (*TrackResult, error) {
	normalizedURL := urlnorm.Normalize(rawURL)
	now := t.now()

	product, err := t.store.FindByKey(ctx, normalizedURL)
	if err != nil {
		if !apperrors.Is(err, apperrors.NotFound) {
			return nil, err
		}

		// 처음 추적하는 상품이므로 페이지를 수집하여 문서를 생성한다.
		product, err = t.scrapeNewProduct(ctx, rawURL, normalizedURL, now)
		if err != nil {
			return nil, err
		}
	}

	added := product.AddSubscriber(subscriberEmail, now)

	if err := t.store.Upsert(ctx, product); err != nil {
		return nil, err
	}

	if added {
		// 환영 메일 발송 실패는 등록 자체를 실패시키지 않는다.
		if err := t.sendNotificationMail(ctx, notification.KindWelcome, product, subscriberEmail); err != nil {
			applog.WithComponentAndFields(component, applog.Fields{
				"product_id": product.ID,
				"to":         strutil.MaskEmail(subscriberEmail),
				"error":      err,
			}).Error("환영 메일 발송 실패")
		}
	}

	return &TrackResult{Product: product, NewlySubscribed: added}, nil
}

// UnsubscribeResult 구독 해지 요청의 처리 결과입니다.
type UnsubscribeResult struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// Unsubscribe 상품 ID와 메일 주소로 구독을 해지합니다.
// 상품이 없거나 구독 중이 아닌 메일 주소인 경우 실패 사유를 반환합니다.
func (t *Tracker) Unsubscribe(ctx context.Context, id contract.ProductID, subscriberEmail string) (*UnsubscribeResult, error) {
	product, err := t.store.FindByID(ctx, id)
	if err != nil {
		if apperrors.Is(err, apperrors.NotFound) {
			return &UnsubscribeResult{Success: false, Message: "Product not found"}, nil
		}
		return nil, err
	}

	if !product.RemoveSubscriber(subscriberEmail) {
		return &UnsubscribeResult{Success: false, Message: "Email not subscribed"}, nil
	}

	if err := t.store.Upsert(ctx, product); err != nil {
		return nil, err
	}

	applog.WithComponentAndFields(component, applog.Fields{
		"product_id": product.ID,
		"email":      strutil.MaskEmail(subscriberEmail),
	}).Info("구독 해지 완료")

	return &UnsubscribeResult{Success: true, Message: "Successfully unsubscribed"}, nil
}

// ListProducts 추적 중인 모든 상품 문서를 조회합니다.
func (t *Tracker) ListProducts(ctx context.Context) ([]contract.TrackedProduct, error) {
	return t.store.FindAll(ctx)
}

// GetProduct 상품 ID로 상품 문서를 조회합니다.
func (t *Tracker) GetProduct(ctx context.Context, id contract.ProductID) (*contract.TrackedProduct, error) {
	return t.store.FindByID(ctx, id)
}

// scrapeNewProduct 상품 페이지를 수집하여 새로운 상품 문서를 생성합니다.
//
// 가격 이력은 정가와 현재가 두 항목으로 시작하여, 등록 직후에도
// 정가 대비 가격 변동 통계가 의미를 가지도록 합니다.
func (t *Tracker) scrapeNewProduct(ctx context.Context, rawURL, normalizedURL string, now time.Time) (*contract.TrackedProduct, error) {
	result, err := t.scrapeProductPage(ctx, rawURL)
	if err != nil {
		return nil, err
	}

	history := pricing.Append(nil, pricing.PriceEntry{Price: result.OriginalPrice, CheckedAt: now})
	history = pricing.Append(history, pricing.PriceEntry{Price: result.CurrentPrice, CheckedAt: now})

	product := &contract.TrackedProduct{
		NormalizedURL: normalizedURL,
		SourceURL:     rawURL,
		Title:         result.Title,
		Description:   result.Description,
		Category:      result.Category,
		ImageURL:      result.ImageURL,
		Currency:      result.Currency,
		CurrentPrice:  result.CurrentPrice,
		OriginalPrice: result.OriginalPrice,
		BasePrice:     t.converter.ToBase(result.CurrentPrice, result.Currency),
		LowestPrice:   pricing.Lowest(history),
		HighestPrice:  pricing.Highest(history),
		AveragePrice:  pricing.Average(history),
		DiscountRate:  result.DiscountRate,
		OutOfStock:    result.OutOfStock,
		ReviewsCount:  result.ReviewsCount,
		Stars:         result.Stars,
		PriceHistory:  history,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	return product, nil
}

// scrapeProductPage 상품 페이지를 가져와 필드를 추출합니다.
func (t *Tracker) scrapeProductPage(ctx context.Context, url string) (*scrape.Result, error) {
	doc, err := fetcher.FetchHTMLDocument(ctx, t.fetcher, url)
	if err != nil {
		return nil, err
	}

	return scrape.Extract(doc, t.selectors)
}

// sendNotificationMail 알림 메일을 생성하여 단일 수신자에게 발송합니다.
func (t *Tracker) sendNotificationMail(ctx context.Context, kind notification.Kind, product *contract.TrackedProduct, to string) error {
	content, err := t.emailBuilder.Build(kind, product, to)
	if err != nil {
		return err
	}

	return t.mailSender.Send(ctx, to, content.Subject, content.Body)
}
