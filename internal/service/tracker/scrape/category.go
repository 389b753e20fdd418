package scrape

import (
	"regexp"
	"strings"
)

// defaultCategory 어떤 분류 규칙에도 해당하지 않는 상품의 기본 카테고리입니다.
const defaultCategory = "General"

// maxBreadcrumbRunes 브레드크럼 텍스트로 허용되는 최대 길이입니다.
// 셀렉터가 카테고리가 아닌 본문 영역을 가리키는 경우를 걸러냅니다.
const maxBreadcrumbRunes = 60

// categoryRule 상품명 키워드 기반 카테고리 분류 규칙입니다.
// match에 해당하면서 exclude에 해당하지 않는 첫번째 규칙이 적용됩니다.
type categoryRule struct {
	name    string
	match   *regexp.Regexp
	exclude *regexp.Regexp
}

// categoryRules 카테고리 분류 규칙 목록입니다.
// 앞에 위치한 규칙이 우선 적용되므로 순서가 의미를 가집니다.
var categoryRules = []categoryRule{
	{
		name:  "Books",
		match: regexp.MustCompile(`\b(buch|hardcover|paperback|novel|story|author|books?|edition|illustrated)\b`),
	},
	{
		name:  "Electronics > Cell Phones",
		match: regexp.MustCompile(`\b(phone|iphone|samsung|smartphone|mobile|android|huawei|xiaomi|pixel)\b`),
	},
	{
		name:  "Electronics > Laptops",
		match: regexp.MustCompile(`\b(laptop|notebook|macbook|chromebook|ultrabook|vivobook|zenbook|ideapad|thinkpad)\b`),
	},
	{
		name:  "Electronics > Tablets",
		match: regexp.MustCompile(`\b(tablet|ipad|galaxy tab|surface go|kindle fire)\b`),
	},
	{
		name:  "Electronics > Headphones",
		match: regexp.MustCompile(`\b(headphones?|earphones?|earbuds?|airpods|headset|noise cancelling|sony wh|bose)\b`),
	},
	{
		name:    "Electronics > Monitors",
		match:   regexp.MustCompile(`\b(monitor|display|screen|curved monitor|ultrawide)\b`),
		exclude: regexp.MustCompile(`\bbaby\b`),
	},
	{
		name:  "Electronics > Computer Accessories",
		match: regexp.MustCompile(`\b(keyboard|mouse|webcam|usb hub|docking station|usb-c|adapter|cable|ssd|hard drive|ram|gpu)\b`),
	},
	{
		name:  "Home & Kitchen > Household Appliances",
		match: regexp.MustCompile(`\b(vacuum|roomba|dyson|hoover|robot vacuum|cleaner|air purifier)\b`),
	},
	{
		name:  "Home & Kitchen > Coffee Machines",
		match: regexp.MustCompile(`\b(coffee|espresso|nespresso|keurig|coffee maker|coffee machine)\b`),
	},
	{
		name:  "Sports & Outdoors > Fitness Equipment",
		match: regexp.MustCompile(`\b(treadmill|exercise bike|rowing machine|gym|workout|dumbbell)\b`),
	},
	{
		name:  "Fashion > Footwear",
		match: regexp.MustCompile(`\b(shoes|sneakers|boots|sandals|heels|footwear|nike|adidas|puma)\b`),
	},
	{
		name:    "Fashion > Watches",
		match:   regexp.MustCompile(`\b(watch|watches|rolex|casio|seiko|fossil|omega)\b`),
		exclude: regexp.MustCompile(`\b(smart|connect|gps)\b`),
	},
}

// classifyCategory 상품의 카테고리를 결정합니다.
//
// 페이지에서 추출된 브레드크럼 텍스트가 사용 가능하면 그대로 사용하고,
// 아니면 상품명 키워드 기반 분류 규칙을 순서대로 적용합니다.
func classifyCategory(breadcrumb, title string) string {
	breadcrumb = strings.TrimSpace(breadcrumb)
	if isUsableBreadcrumb(breadcrumb) {
		return breadcrumb
	}

	lowerTitle := strings.ToLower(title)
	for _, rule := range categoryRules {
		if rule.match.MatchString(lowerTitle) && (rule.exclude == nil || !rule.exclude.MatchString(lowerTitle)) {
			return rule.name
		}
	}

	return defaultCategory
}

// isUsableBreadcrumb 브레드크럼 텍스트가 카테고리로 사용 가능한지 검사합니다.
//
// "Category" 같은 플레이스홀더 값("category"를 포함하는 텍스트, 대소문자 무시)과
// 길이 상한을 초과하는 텍스트는 카테고리로 사용하지 않습니다.
func isUsableBreadcrumb(breadcrumb string) bool {
	if breadcrumb == "" {
		return false
	}
	if len([]rune(breadcrumb)) > maxBreadcrumbRunes {
		return false
	}
	if strings.Contains(strings.ToLower(breadcrumb), "category") {
		return false
	}
	return true
}
