// Package contract 서비스 간에 공유되는 도메인 타입과 협력자(Collaborator) 인터페이스를 정의합니다.
//
// 추적 배치, API, 알림 발송 등 각 서비스는 구체 구현 대신 이 패키지의
// 인터페이스에 의존하여 서로 결합되지 않도록 설계되어 있습니다.
package contract

import (
	"strings"
	"time"

	"github.com/darkkaiser/pricewatch-server/internal/service/tracker/pricing"
)

// ProductID 상품 문서의 고유 식별자입니다.
type ProductID string

// Subscriber 상품 가격 알림을 구독하는 사용자입니다.
type Subscriber struct {
	Email        string    `json:"email"`
	SubscribedAt time.Time `json:"subscribed_at"`
}

// TrackedProduct 가격을 추적 중인 상품 문서입니다.
//
// NormalizedURL이 문서의 조회 키이며, PriceHistory는 추가만 가능한(append-only)
// 관측 이력입니다. 통계 필드(LowestPrice 등)는 항상 전체 이력으로부터 재계산됩니다.
type TrackedProduct struct {
	ID            ProductID `json:"id"`
	NormalizedURL string    `json:"normalized_url"`
	SourceURL     string    `json:"source_url"`

	Title       string `json:"title"`
	Description string `json:"description"`
	Category    string `json:"category"`
	ImageURL    string `json:"image_url"`

	Currency      string  `json:"currency"`
	CurrentPrice  float64 `json:"current_price"`
	OriginalPrice float64 `json:"original_price"`
	BasePrice     float64 `json:"base_price"`

	LowestPrice  float64 `json:"lowest_price"`
	HighestPrice float64 `json:"highest_price"`
	AveragePrice float64 `json:"average_price"`

	DiscountRate int  `json:"discount_rate"`
	OutOfStock   bool `json:"out_of_stock"`

	ReviewsCount int     `json:"reviews_count"`
	Stars        float64 `json:"stars"`

	PriceHistory []pricing.PriceEntry `json:"price_history"`
	Subscribers  []Subscriber         `json:"subscribers"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// HasSubscriber 주어진 이메일이 이미 구독 중인지 확인합니다. (대소문자 무시)
func (p *TrackedProduct) HasSubscriber(email string) bool {
	for _, s := range p.Subscribers {
		if strings.EqualFold(s.Email, email) {
			return true
		}
	}
	return false
}

// AddSubscriber 구독자를 추가합니다.
//
// 동일한 이메일(대소문자 무시)이 이미 구독 중이면 아무 작업도 하지 않고
// false를 반환합니다. 새로 추가된 경우에만 true를 반환합니다.
func (p *TrackedProduct) AddSubscriber(email string, now time.Time) bool {
	if p.HasSubscriber(email) {
		return false
	}

	p.Subscribers = append(p.Subscribers, Subscriber{
		Email:        email,
		SubscribedAt: now,
	})
	return true
}

// RemoveSubscriber 구독자를 제거합니다. (대소문자 무시)
//
// 제거된 경우 true, 구독 중이 아니었으면 false를 반환합니다.
func (p *TrackedProduct) RemoveSubscriber(email string) bool {
	for i, s := range p.Subscribers {
		if strings.EqualFold(s.Email, email) {
			p.Subscribers = append(p.Subscribers[:i], p.Subscribers[i+1:]...)
			return true
		}
	}
	return false
}
