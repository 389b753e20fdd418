// Package email 알림 종류별 메일 제목과 HTML 본문을 생성합니다.
// 외부 입출력 없이 전달받은 상품 문서만으로 메일 내용을 생성합니다.
package email

import (
	"bytes"
	"fmt"
	"html/template"
	"net/url"
	"strings"

	apperrors "github.com/darkkaiser/pricewatch-server/internal/pkg/errors"

	"github.com/darkkaiser/pricewatch-server/internal/service/contract"
	"github.com/darkkaiser/pricewatch-server/internal/service/notification"
	"github.com/darkkaiser/pricewatch-server/pkg/strutil"
)

const (
	// subjectTitleMaxRunes 메일 제목에 포함되는 상품명의 최대 길이입니다.
	subjectTitleMaxRunes = 40

	// cardTitleMaxRunes 상품 카드에 표시되는 상품명의 최대 길이입니다.
	cardTitleMaxRunes = 60

	// fallbackDiscountRate 할인율 정보가 없을 때 제목에 표시되는 기본 할인율(%)입니다.
	fallbackDiscountRate = 40

	// defaultCurrencySymbol 통화 기호 정보가 없을 때 사용되는 기본 기호입니다.
	defaultCurrencySymbol = "€"
)

// Content 발송할 메일의 제목과 HTML 본문입니다.
type Content struct {
	Subject string
	Body    string
}

// cardView 상품 카드 템플릿에 전달되는 데이터입니다.
type cardView struct {
	Title             string
	ImageURL          string
	URL               string
	CurrentPrice      string
	OriginalPrice     string
	ShowOriginalPrice bool
	DiscountRate      int
}

// bodyView 메일 본문 템플릿에 전달되는 데이터입니다.
type bodyView struct {
	Card cardView

	DiscountRate   int
	LowestPrice    string
	HasLowestPrice bool

	UnsubscribeURL string
	ManageURL      string
}

// Builder 알림 종류별 메일 내용을 생성합니다.
// 템플릿은 생성 시점에 한 번만 파싱되며 이후 Build 호출은 고루틴 안전합니다.
type Builder struct {
	siteURL   string
	templates map[notification.Kind]*template.Template
}

// NewBuilder 메일 내용 생성기를 생성합니다.
// siteURL은 수신 거부/관리 링크의 기준 주소로 사용되며, 뒤에 붙은 "/"는 제거됩니다.
func NewBuilder(siteURL string) (*Builder, error) {
	base := template.New("wrapper")

	for _, text := range []string{wrapperTemplate, productCardTemplate} {
		if _, err := base.Parse(text); err != nil {
			return nil, apperrors.Wrap(err, apperrors.Internal, "메일 템플릿 파싱에 실패하였습니다")
		}
	}

	fragments := map[notification.Kind]string{
		notification.KindWelcome:       welcomeTemplate,
		notification.KindLowestPrice:   lowestPriceTemplate,
		notification.KindThresholdMet:  thresholdMetTemplate,
		notification.KindChangeOfStock: changeOfStockTemplate,
	}

	templates := make(map[notification.Kind]*template.Template, len(fragments))
	for kind, fragment := range fragments {
		clone, err := base.Clone()
		if err != nil {
			return nil, apperrors.Wrap(err, apperrors.Internal, "메일 템플릿 복제에 실패하였습니다")
		}
		if _, err := clone.Parse(fragment); err != nil {
			return nil, apperrors.Wrapf(err, apperrors.Internal, "메일 템플릿(%s) 파싱에 실패하였습니다", kind)
		}

		templates[kind] = clone
	}

	return &Builder{
		siteURL:   strings.TrimSuffix(siteURL, "/"),
		templates: templates,
	}, nil
}

// Build 알림 종류에 맞는 메일 제목과 HTML 본문을 생성합니다.
// recipient는 수신 거부 링크 생성에 사용되는 수신자 메일 주소입니다.
func (b *Builder) Build(kind notification.Kind, product *contract.TrackedProduct, recipient string) (*Content, error) {
	tmpl, ok := b.templates[kind]
	if !ok {
		return nil, apperrors.Newf(apperrors.InvalidInput, "지원하지 않는 알림 종류(%d)입니다", kind)
	}

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "wrapper", b.newBodyView(product, recipient)); err != nil {
		return nil, apperrors.Wrap(err, apperrors.Internal, "메일 본문 생성에 실패하였습니다")
	}

	return &Content{
		Subject: b.subject(kind, product),
		Body:    buf.String(),
	}, nil
}

func (b *Builder) subject(kind notification.Kind, product *contract.TrackedProduct) string {
	title := strutil.TruncateRunes(strutil.NormalizeSpaces(product.Title), subjectTitleMaxRunes)

	switch kind {
	case notification.KindWelcome:
		return "🎉 Welcome! You're now tracking: " + title
	case notification.KindChangeOfStock:
		return "🔔 Back in Stock: " + title
	case notification.KindLowestPrice:
		return "🔥 LOWEST PRICE ALERT: " + title
	case notification.KindThresholdMet:
		rate := product.DiscountRate
		if rate <= 0 {
			rate = fallbackDiscountRate
		}
		return fmt.Sprintf("💰 %d%% OFF: %s", rate, title)
	default:
		return title
	}
}

func (b *Builder) newBodyView(product *contract.TrackedProduct, recipient string) bodyView {
	return bodyView{
		Card: cardView{
			Title:             strutil.TruncateRunes(strutil.NormalizeSpaces(product.Title), cardTitleMaxRunes),
			ImageURL:          product.ImageURL,
			URL:               product.NormalizedURL,
			CurrentPrice:      formatPrice(product.CurrentPrice, product.Currency),
			OriginalPrice:     formatPrice(product.OriginalPrice, product.Currency),
			ShowOriginalPrice: product.OriginalPrice > product.CurrentPrice,
			DiscountRate:      product.DiscountRate,
		},

		DiscountRate:   product.DiscountRate,
		LowestPrice:    formatPrice(product.LowestPrice, product.Currency),
		HasLowestPrice: product.LowestPrice > 0,

		UnsubscribeURL: b.unsubscribeURL(product.ID, recipient),
		ManageURL:      b.manageURL(recipient),
	}
}

func (b *Builder) unsubscribeURL(id contract.ProductID, recipient string) string {
	if id == "" || recipient == "" {
		return "#"
	}

	return fmt.Sprintf("%s/unsubscribe?productId=%s&email=%s", b.siteURL, url.QueryEscape(string(id)), url.QueryEscape(recipient))
}

func (b *Builder) manageURL(recipient string) string {
	if recipient == "" {
		return b.siteURL + "/manage"
	}

	return b.siteURL + "/manage?email=" + url.QueryEscape(recipient)
}

// formatPrice 가격을 통화 기호와 함께 표시용 문자열로 변환합니다.
// 가격 정보가 없는 경우 "N/A"를 반환합니다.
func formatPrice(price float64, currencySymbol string) string {
	if price <= 0 {
		return "N/A"
	}
	if currencySymbol == "" {
		currencySymbol = defaultCurrencySymbol
	}

	return fmt.Sprintf("%s%.2f", currencySymbol, price)
}
