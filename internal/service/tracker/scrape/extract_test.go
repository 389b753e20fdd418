package scrape

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	apperrors "github.com/darkkaiser/pricewatch-server/internal/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDocument(t *testing.T, html string) *goquery.Document {
	t.Helper()

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	require.NoError(t, err)
	return doc
}

const productPageHTML = `
<html><body>
	<span id="productTitle">  Sony WH-1000XM5   Wireless Headphones  </span>
	<span class="a-price a-text-price a-size-medium apexPriceToPay"><span>$248.00</span></span>
	<span class="a-price a-text-price a-size-base"><span class="a-offscreen">$399.99</span></span>
	<span class="a-price-symbol">$</span>
	<span class="savingsPercentage">-38%</span>
	<div id="availability"><span>In Stock</span></div>
	<img id="landingImage" data-a-dynamic-image='{"https://img.example.com/large.jpg":[500,500],"https://img.example.com/small.jpg":[100,100]}' src="https://img.example.com/src.jpg"/>
	<div id="productDescription"><p>Industry-leading  noise cancellation.</p></div>
	<span id="acrCustomerReviewText">1,234 ratings</span>
	<span id="acrPopover"><span class="a-icon-alt">4.5 out of 5 stars</span></span>
</body></html>`

func TestExtract(t *testing.T) {
	t.Run("상품 페이지에서 모든 필드를 추출한다", func(t *testing.T) {
		doc := newDocument(t, productPageHTML)

		result, err := Extract(doc, nil)

		require.NoError(t, err)
		assert.Equal(t, "Sony WH-1000XM5 Wireless Headphones", result.Title)
		assert.Equal(t, 248.0, result.CurrentPrice)
		assert.Equal(t, 399.99, result.OriginalPrice)
		assert.Equal(t, "$", result.Currency)
		assert.Equal(t, 38, result.DiscountRate)
		assert.False(t, result.OutOfStock)
		assert.Equal(t, "https://img.example.com/large.jpg", result.ImageURL)
		assert.Equal(t, "Electronics > Headphones", result.Category)
		assert.Equal(t, "Industry-leading noise cancellation.", result.Description)
		assert.Equal(t, 1234, result.ReviewsCount)
		assert.Equal(t, 4.5, result.Stars)
	})

	t.Run("상품 설명 전용 노드가 없으면 목록형 설명 후보로 대체한다", func(t *testing.T) {
		doc := newDocument(t, `
			<html><body>
				<span id="productTitle">상품</span>
				<span class="a-price a-text-price a-size-medium apexPriceToPay"><span>$10.00</span></span>
				<ul class="a-unordered-list">
					<li><span class="a-list-item">첫번째 특징</span></li>
					<li><span class="a-list-item">두번째 특징</span></li>
				</ul>
			</body></html>`)

		result, err := Extract(doc, nil)

		require.NoError(t, err)
		assert.Equal(t, "첫번째 특징\n두번째 특징", result.Description)
	})

	t.Run("리뷰 갯수와 별점 노드가 없으면 Zero Value로 유지한다", func(t *testing.T) {
		doc := newDocument(t, `<html><body><span id="productTitle">상품</span></body></html>`)

		result, err := Extract(doc, nil)

		require.NoError(t, err)
		assert.Empty(t, result.Description)
		assert.Equal(t, 0, result.ReviewsCount)
		assert.Equal(t, 0.0, result.Stars)
	})

	t.Run("상품명과 가격을 모두 추출하지 못하면 ExtractionFailed 에러를 반환한다", func(t *testing.T) {
		doc := newDocument(t, `<html><body><div>차단 페이지</div></body></html>`)

		_, err := Extract(doc, nil)

		require.Error(t, err)
		assert.True(t, apperrors.Is(err, apperrors.ExtractionFailed))
	})

	t.Run("상품명만 추출된 경우 나머지 필드는 Zero Value인 부분 결과를 반환한다", func(t *testing.T) {
		doc := newDocument(t, `<html><body><span id="productTitle">상품명만 있는 페이지</span></body></html>`)

		result, err := Extract(doc, nil)

		require.NoError(t, err)
		assert.Equal(t, "상품명만 있는 페이지", result.Title)
		assert.Equal(t, 0.0, result.CurrentPrice)
		assert.Equal(t, "$", result.Currency)
	})

	t.Run("현재 가격이 없으면 정가로 보완한다", func(t *testing.T) {
		doc := newDocument(t, `
			<html><body>
				<span id="productTitle">상품</span>
				<span class="a-price a-text-price a-size-base"><span class="a-offscreen">€99,90</span></span>
			</body></html>`)

		result, err := Extract(doc, nil)

		require.NoError(t, err)
		assert.Equal(t, 99.9, result.CurrentPrice)
		assert.Equal(t, 99.9, result.OriginalPrice)
	})

	t.Run("품절 안내 문구를 다국어로 인식한다", func(t *testing.T) {
		phrases := []string{
			"Currently unavailable.",
			"Out of stock",
			"Actuellement indisponible",
			"Derzeit nicht verfügbar",
		}

		for _, phrase := range phrases {
			doc := newDocument(t, `
				<html><body>
					<span id="productTitle">상품</span>
					<span class="a-price-symbol">$</span>
					<div id="availability"><span>`+phrase+`</span></div>
				</body></html>`)

			result, err := Extract(doc, nil)

			require.NoError(t, err)
			assert.True(t, result.OutOfStock, "phrase: %s", phrase)
		}
	})

	t.Run("할인율 전용 노드가 없으면 가격 안내 문구에서 추출한다", func(t *testing.T) {
		doc := newDocument(t, `
			<html><body>
				<span id="productTitle">상품</span>
				<span class="a-price a-text-price a-size-medium apexPriceToPay"><span>$60.00</span></span>
				<table><tr><td class="a-span12 a-color-price a-size-base"><span class="a-color-price">You save: $40.00 (40%)</span></td></tr></table>
			</body></html>`)

		result, err := Extract(doc, nil)

		require.NoError(t, err)
		assert.Equal(t, 40, result.DiscountRate)
	})

	t.Run("동적 이미지 속성이 없으면 src 속성을 사용한다", func(t *testing.T) {
		doc := newDocument(t, `
			<html><body>
				<span id="productTitle">상품</span>
				<span class="a-price a-text-price a-size-medium apexPriceToPay"><span>$10.00</span></span>
				<img id="landingImage" src="https://img.example.com/src.jpg"/>
			</body></html>`)

		result, err := Extract(doc, nil)

		require.NoError(t, err)
		assert.Equal(t, "https://img.example.com/src.jpg", result.ImageURL)
	})
}

func TestSelectorsFromConfig(t *testing.T) {
	t.Run("설정이 비어있으면 기본 셀렉터를 반환한다", func(t *testing.T) {
		selectors, err := SelectorsFromConfig(nil)

		require.NoError(t, err)
		assert.Equal(t, DefaultSelectors(), selectors)
	})

	t.Run("재정의된 필드만 교체된다", func(t *testing.T) {
		selectors, err := SelectorsFromConfig(map[string]interface{}{
			"title": []interface{}{"h1.product-name"},
		})

		require.NoError(t, err)
		assert.Equal(t, []string{"h1.product-name"}, selectors.Title)
		assert.Equal(t, DefaultSelectors().CurrentPrice, selectors.CurrentPrice)
		assert.Equal(t, DefaultSelectors().Description, selectors.Description)
	})

	t.Run("상품 설명과 리뷰 셀렉터도 재정의할 수 있다", func(t *testing.T) {
		selectors, err := SelectorsFromConfig(map[string]interface{}{
			"description":   []interface{}{"div.desc"},
			"reviews_count": []interface{}{"span.reviews"},
			"stars":         []interface{}{"span.rating"},
		})

		require.NoError(t, err)
		assert.Equal(t, []string{"div.desc"}, selectors.Description)
		assert.Equal(t, []string{"span.reviews"}, selectors.ReviewsCount)
		assert.Equal(t, []string{"span.rating"}, selectors.Stars)
	})

	t.Run("재정의된 셀렉터로 추출한다", func(t *testing.T) {
		selectors, err := SelectorsFromConfig(map[string]interface{}{
			"title":         []interface{}{"h1.product-name"},
			"current_price": []interface{}{"span.price"},
		})
		require.NoError(t, err)

		doc := newDocument(t, `
			<html><body>
				<h1 class="product-name">다른 사이트 상품</h1>
				<span class="price">12,345원</span>
			</body></html>`)

		result, err := Extract(doc, selectors)

		require.NoError(t, err)
		assert.Equal(t, "다른 사이트 상품", result.Title)
		assert.Equal(t, 12345.0, result.CurrentPrice)
	})
}
