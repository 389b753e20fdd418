// Package scrape 상품 페이지 HTML 문서에서 상품 정보를 추출합니다.
//
// 각 필드는 셀렉터 후보 목록을 앞에서부터 순서대로 시도하는 방식으로
// 추출되며, 페이지 구조가 일부 변경되어도 나머지 필드는 계속 추출될 수
// 있도록 필드별로 독립적으로 동작합니다.
package scrape

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	apperrors "github.com/darkkaiser/pricewatch-server/internal/pkg/errors"
	"github.com/darkkaiser/pricewatch-server/pkg/strutil"
	"github.com/tidwall/gjson"
)

// defaultCurrency 통화 기호를 추출하지 못한 경우에 사용되는 기본값입니다.
const defaultCurrency = "$"

// outOfStockPhrases 품절 상태로 판단하는 안내 문구 목록입니다. (다국어)
// 문구 대조는 대소문자를 구분하지 않는 부분 일치로 수행됩니다.
var outOfStockPhrases = []string{
	"currently unavailable|out of stock|indisponible|actuellement indisponible|nicht verfügbar|derzeit nicht verfügbar",
}

// Result 상품 페이지에서 추출된 상품 정보입니다.
//
// 상품명과 가격 중 한쪽만 추출에 실패한 경우에는 부분 결과가 반환되며,
// 추출에 실패한 필드는 Zero Value로 유지됩니다.
type Result struct {
	Title         string
	Description   string
	Currency      string
	CurrentPrice  float64
	OriginalPrice float64
	DiscountRate  int
	OutOfStock    bool
	ImageURL      string
	Category      string
	ReviewsCount  int
	Stars         float64
}

// Extract 상품 페이지 문서에서 상품 정보를 추출합니다.
//
// 상품명과 가격이 모두 추출되지 않은 경우에는 페이지 구조 변경 또는
// 차단 페이지 수신으로 판단하여 ExtractionFailed 타입의 에러를 반환합니다.
func Extract(doc *goquery.Document, selectors *Selectors) (*Result, error) {
	if selectors == nil {
		selectors = DefaultSelectors()
	}

	result := &Result{
		Title:    extractTitle(doc, selectors.Title),
		Currency: extractCurrency(doc, selectors.Currency),
	}

	result.CurrentPrice = extractPrice(doc, selectors.CurrentPrice)
	result.OriginalPrice = extractPrice(doc, selectors.OriginalPrice)

	// 한쪽 가격만 추출된 경우 다른쪽 가격으로 보완한다.
	if result.CurrentPrice == 0 {
		result.CurrentPrice = result.OriginalPrice
	}
	if result.OriginalPrice == 0 {
		result.OriginalPrice = result.CurrentPrice
	}

	if result.Title == "" && result.CurrentPrice == 0 {
		return nil, apperrors.New(apperrors.ExtractionFailed, "상품 페이지에서 상품명과 가격을 모두 추출하지 못했습니다. 페이지 구조가 변경되었을 수 있습니다.")
	}

	result.Description = extractDescription(doc, selectors.Description)
	result.DiscountRate = extractDiscountRate(doc, selectors)
	result.OutOfStock = extractOutOfStock(doc, selectors.Availability)
	result.ImageURL = extractImageURL(doc, selectors.Image)
	result.Category = classifyCategory(extractBreadcrumb(doc, selectors.Breadcrumb), result.Title)
	result.ReviewsCount = extractReviewsCount(doc, selectors.ReviewsCount)
	result.Stars = extractStars(doc, selectors.Stars)

	return result, nil
}

// extractTitle 상품명을 추출합니다. 연속된 공백은 하나로 정리됩니다.
func extractTitle(doc *goquery.Document, candidates []string) string {
	for _, selector := range candidates {
		title := strutil.NormalizeSpaces(doc.Find(selector).First().Text())
		if title != "" {
			return title
		}
	}
	return ""
}

// extractPrice 후보 셀렉터들을 순서대로 시도하며 첫번째로 파싱에 성공한 가격을 반환합니다.
func extractPrice(doc *goquery.Document, candidates []string) float64 {
	var price float64

	for _, selector := range candidates {
		doc.Find(selector).EachWithBreak(func(_ int, sel *goquery.Selection) bool {
			parsed, ok := parsePrice(sel.Text())
			if ok {
				price = parsed
				return false
			}
			return true
		})

		if price > 0 {
			return price
		}
	}

	return 0
}

// extractCurrency 통화 기호 노드의 첫번째 문자를 추출합니다.
func extractCurrency(doc *goquery.Document, candidates []string) string {
	for _, selector := range candidates {
		text := strings.TrimSpace(doc.Find(selector).First().Text())
		if text != "" {
			return string([]rune(text)[:1])
		}
	}
	return defaultCurrency
}

// extractDiscountRate 할인율을 추출합니다.
//
// 할인율 전용 노드를 우선 시도하고, 없으면 가격 안내 문구의 "(NN%)" 표기를
// 파싱합니다. 둘 다 실패하면 0을 반환합니다.
func extractDiscountRate(doc *goquery.Document, selectors *Selectors) int {
	for _, selector := range selectors.Discount {
		if rate := parseDiscountRate(doc.Find(selector).First().Text()); rate != 0 {
			return rate
		}
	}

	for _, selector := range selectors.DiscountLabel {
		if rate := parseDiscountLabel(doc.Find(selector).Last().Text()); rate != 0 {
			return rate
		}
	}

	return 0
}

// extractOutOfStock 재고 안내 노드의 텍스트를 분석하여 품절 여부를 판단합니다.
// 재고 안내 노드가 없는 경우에는 재고가 있는 것으로 간주합니다.
func extractOutOfStock(doc *goquery.Document, candidates []string) bool {
	for _, selector := range candidates {
		text := strings.TrimSpace(doc.Find(selector).Text())
		if text == "" {
			continue
		}

		if strutil.MatchesKeywords(text, outOfStockPhrases, nil) {
			return true
		}
	}
	return false
}

// extractImageURL 상품 이미지 URL을 추출합니다.
//
// data-a-dynamic-image 속성의 JSON 객체에서 첫번째 키(이미지 URL)를 우선
// 사용하고, 없으면 고해상도 이미지 속성과 src 속성을 차례로 시도합니다.
func extractImageURL(doc *goquery.Document, candidates []string) string {
	for _, selector := range candidates {
		node := doc.Find(selector).First()
		if node.Length() == 0 {
			continue
		}

		if dynamicImage, exists := node.Attr("data-a-dynamic-image"); exists {
			var imageURL string
			gjson.Parse(dynamicImage).ForEach(func(key, _ gjson.Result) bool {
				imageURL = key.String()
				return false
			})
			if imageURL != "" {
				return imageURL
			}
		}

		for _, attr := range []string{"data-old-hires", "src"} {
			if value, exists := node.Attr(attr); exists && strings.TrimSpace(value) != "" {
				return strings.TrimSpace(value)
			}
		}
	}
	return ""
}

// extractDescription 상품 설명 텍스트를 추출합니다.
//
// 후보 셀렉터가 여러 노드와 일치하는 경우(목록형 설명 등) 각 노드의
// 텍스트를 줄바꿈으로 이어붙입니다.
func extractDescription(doc *goquery.Document, candidates []string) string {
	for _, selector := range candidates {
		nodes := doc.Find(selector)
		if nodes.Length() == 0 {
			continue
		}

		var lines []string
		nodes.Each(func(_ int, sel *goquery.Selection) {
			if text := strutil.NormalizeSpaces(sel.Text()); text != "" {
				lines = append(lines, text)
			}
		})

		if len(lines) > 0 {
			return strings.Join(lines, "\n")
		}
	}
	return ""
}

// extractReviewsCount 리뷰 갯수를 추출합니다. ("1,234 ratings" 등의 표기)
func extractReviewsCount(doc *goquery.Document, candidates []string) int {
	for _, selector := range candidates {
		if count := parseLeadingInt(doc.Find(selector).First().Text()); count > 0 {
			return count
		}
	}
	return 0
}

// extractStars 별점을 추출합니다. ("4.5 out of 5 stars" 등의 표기)
func extractStars(doc *goquery.Document, candidates []string) float64 {
	for _, selector := range candidates {
		if stars := parseLeadingFloat(doc.Find(selector).First().Text()); stars > 0 {
			return stars
		}
	}
	return 0
}

// extractBreadcrumb 카테고리 브레드크럼 텍스트를 추출합니다.
func extractBreadcrumb(doc *goquery.Document, candidates []string) string {
	for _, selector := range candidates {
		breadcrumb := strutil.NormalizeSpaces(doc.Find(selector).First().Text())
		if breadcrumb != "" {
			return breadcrumb
		}
	}
	return ""
}
