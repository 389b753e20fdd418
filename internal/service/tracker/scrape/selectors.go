package scrape

import (
	"github.com/darkkaiser/pricewatch-server/pkg/maputil"
)

// Selectors 상품 페이지에서 각 필드를 추출할 때 사용되는 CSS 셀렉터 후보 목록입니다.
// 각 필드는 목록의 앞에서부터 순서대로 시도하며 첫번째로 성공한 값이 사용됩니다.
type Selectors struct {
	Title         []string `json:"title"`
	CurrentPrice  []string `json:"current_price"`
	OriginalPrice []string `json:"original_price"`
	Currency      []string `json:"currency"`
	Discount      []string `json:"discount"`
	DiscountLabel []string `json:"discount_label"`
	Availability  []string `json:"availability"`
	Image         []string `json:"image"`
	Breadcrumb    []string `json:"breadcrumb"`
	Description   []string `json:"description"`
	ReviewsCount  []string `json:"reviews_count"`
	Stars         []string `json:"stars"`
}

// DefaultSelectors 기본 내장 셀렉터 목록을 반환합니다.
func DefaultSelectors() *Selectors {
	return &Selectors{
		Title: []string{
			"#productTitle",
		},
		CurrentPrice: []string{
			"span.a-price.a-text-price.a-size-medium.apexPriceToPay span",
			"span.a-price.aok-align-center.reinventPricePriceToPayMargin.priceToPay",
		},
		OriginalPrice: []string{
			"span.a-price.a-text-price.a-size-base span.a-offscreen",
			"span.a-size-small.a-color-secondary.aok-align-center.basisPrice",
		},
		Currency: []string{
			"span.a-price-symbol",
		},
		Discount: []string{
			".savingsPercentage",
		},
		DiscountLabel: []string{
			"td.a-span12.a-color-price.a-size-base span.a-color-price",
		},
		Availability: []string{
			"#availability span",
		},
		Image: []string{
			"#imgBlkFront",
			"#landingImage",
		},
		Breadcrumb: []string{
			"#wayfinding-breadcrumbs_feature_div ul li:first-child a",
		},
		Description: []string{
			"#productDescription",
			".a-unordered-list .a-list-item",
			".a-expander-content p",
		},
		ReviewsCount: []string{
			"#acrCustomerReviewText",
		},
		Stars: []string{
			"#acrPopover span.a-icon-alt",
		},
	}
}

// SelectorsFromConfig 설정 파일의 사이트별 셀렉터 재정의 맵을 Selectors로
// 디코딩합니다. 재정의되지 않은 필드는 기본 셀렉터가 유지됩니다.
func SelectorsFromConfig(settings map[string]interface{}) (*Selectors, error) {
	selectors := DefaultSelectors()

	if len(settings) == 0 {
		return selectors, nil
	}

	overrides, err := maputil.Decode[Selectors](settings)
	if err != nil {
		return nil, err
	}

	if len(overrides.Title) > 0 {
		selectors.Title = overrides.Title
	}
	if len(overrides.CurrentPrice) > 0 {
		selectors.CurrentPrice = overrides.CurrentPrice
	}
	if len(overrides.OriginalPrice) > 0 {
		selectors.OriginalPrice = overrides.OriginalPrice
	}
	if len(overrides.Currency) > 0 {
		selectors.Currency = overrides.Currency
	}
	if len(overrides.Discount) > 0 {
		selectors.Discount = overrides.Discount
	}
	if len(overrides.DiscountLabel) > 0 {
		selectors.DiscountLabel = overrides.DiscountLabel
	}
	if len(overrides.Availability) > 0 {
		selectors.Availability = overrides.Availability
	}
	if len(overrides.Image) > 0 {
		selectors.Image = overrides.Image
	}
	if len(overrides.Breadcrumb) > 0 {
		selectors.Breadcrumb = overrides.Breadcrumb
	}
	if len(overrides.Description) > 0 {
		selectors.Description = overrides.Description
	}
	if len(overrides.ReviewsCount) > 0 {
		selectors.ReviewsCount = overrides.ReviewsCount
	}
	if len(overrides.Stars) > 0 {
		selectors.Stars = overrides.Stars
	}

	return selectors, nil
}
