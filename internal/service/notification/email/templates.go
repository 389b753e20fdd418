package email

// wrapperTemplate 모든 알림 메일이 공유하는 HTML 레이아웃입니다.
// 헤더와 푸터(수신 거부/관리 링크)를 제공하며 본문은 알림 종류별
// "content" 템플릿이 채웁니다.
const wrapperTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="UTF-8">
<meta name="viewport" content="width=device-width, initial-scale=1.0">
<title>PriceWatch Notification</title>
</head>
<body style="margin: 0; padding: 0; font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, 'Helvetica Neue', Arial, sans-serif; background-color: #f4f4f5;">
<table role="presentation" width="100%" cellspacing="0" cellpadding="0" border="0" style="background-color: #f4f4f5;">
<tr><td align="center" style="padding: 40px 20px;">
<table role="presentation" width="600" cellspacing="0" cellpadding="0" border="0" style="background-color: #ffffff; border-radius: 12px;">
<tr><td style="padding: 32px 40px; background: linear-gradient(135deg, #E43030 0%, #FF6B6B 100%); border-radius: 12px 12px 0 0;">
<h1 style="margin: 0; color: #ffffff; font-size: 24px; font-weight: 700;">🛒 PriceWatch</h1>
</td></tr>
<tr><td style="padding: 40px;">
{{template "content" .}}
</td></tr>
<tr><td style="padding: 24px 40px; background-color: #f9fafb; border-radius: 0 0 12px 12px; border-top: 1px solid #e5e7eb;">
<p style="margin: 0 0 8px 0; font-size: 12px; color: #6b7280; text-align: center;">You're receiving this email because you subscribed to price alerts on PriceWatch.</p>
<p style="margin: 0; font-size: 12px; color: #6b7280; text-align: center;">
<a href="{{.ManageURL}}" style="color: #E43030; text-decoration: none;">Manage preferences</a>
&nbsp;&bull;&nbsp;
<a href="{{.UnsubscribeURL}}" style="color: #E43030; text-decoration: none;">Unsubscribe</a>
</p>
</td></tr>
</table>
</td></tr>
</table>
</body>
</html>`

// productCardTemplate 메일 본문에 삽입되는 상품 요약 카드입니다.
const productCardTemplate = `{{define "card"}}
<table role="presentation" width="100%" cellspacing="0" cellpadding="0" border="0" style="margin: 24px 0; border: 1px solid #e5e7eb; border-radius: 8px;">
<tr>
{{if .Card.ImageURL}}<td width="120" style="padding: 16px; background-color: #f9fafb; vertical-align: top;">
<img src="{{.Card.ImageURL}}" alt="{{.Card.Title}}" style="width: 100px; height: 100px; object-fit: contain; border-radius: 4px;">
</td>{{end}}
<td style="padding: 16px; vertical-align: top;">
<h3 style="margin: 0 0 8px 0; font-size: 16px; font-weight: 600; color: #111827; line-height: 1.4;">{{.Card.Title}}</h3>
<div style="margin-bottom: 12px;">
<span style="font-size: 20px; font-weight: 700; color: #E43030;">{{.Card.CurrentPrice}}</span>
{{if .Card.ShowOriginalPrice}}<span style="font-size: 14px; color: #9ca3af; text-decoration: line-through; margin-left: 8px;">{{.Card.OriginalPrice}}</span>{{end}}
{{if gt .Card.DiscountRate 0}}<span style="display: inline-block; margin-left: 8px; padding: 2px 8px; background-color: #dcfce7; color: #166534; font-size: 12px; font-weight: 600; border-radius: 4px;">-{{.Card.DiscountRate}}%</span>{{end}}
</div>
<a href="{{.Card.URL}}" target="_blank" rel="noopener noreferrer" style="display: inline-block; padding: 10px 20px; background-color: #E43030; color: #ffffff; text-decoration: none; font-size: 14px; font-weight: 600; border-radius: 6px;">View Product &rarr;</a>
</td>
</tr>
</table>
{{end}}`

// welcomeTemplate 추적 시작 환영 알림의 본문입니다.
const welcomeTemplate = `{{define "content"}}
<h2 style="margin: 0 0 16px 0; font-size: 22px; font-weight: 700; color: #111827;">Thanks for joining PriceWatch! 🚀</h2>
<p style="margin: 0 0 16px 0; font-size: 16px; color: #4b5563; line-height: 1.6;">You're now tracking price changes for the following product. We'll notify you when:</p>
<ul style="margin: 0 0 24px 0; padding-left: 20px; color: #4b5563; line-height: 1.8;">
<li>The price drops to its <strong>lowest ever</strong></li>
<li>A <strong>big discount</strong> (40%+) becomes available</li>
<li>The product is <strong>back in stock</strong></li>
</ul>
{{template "card" .}}
<div style="margin-top: 24px; padding: 16px; background-color: #f0fdf4; border-radius: 8px; border-left: 4px solid #22c55e;">
<p style="margin: 0; font-size: 14px; color: #166534;"><strong>💡 Pro tip:</strong> Track multiple products to compare prices and never miss a deal!</p>
</div>
{{end}}`

// changeOfStockTemplate 재입고 알림의 본문입니다.
const changeOfStockTemplate = `{{define "content"}}
<div style="text-align: center; margin-bottom: 24px;">
<span style="display: inline-block; padding: 8px 16px; background-color: #22c55e; color: #ffffff; font-size: 14px; font-weight: 700; border-radius: 20px; text-transform: uppercase;">&#10003; Back in Stock</span>
</div>
<h2 style="margin: 0 0 16px 0; font-size: 22px; font-weight: 700; color: #111827; text-align: center;">Great news! Your tracked product is available again</h2>
<p style="margin: 0 0 24px 0; font-size: 16px; color: #4b5563; line-height: 1.6; text-align: center;">Don't wait too long. Popular items can sell out quickly!</p>
{{template "card" .}}
{{end}}`

// lowestPriceTemplate 역대 최저가 알림의 본문입니다.
const lowestPriceTemplate = `{{define "content"}}
<div style="text-align: center; margin-bottom: 24px;">
<span style="display: inline-block; padding: 8px 16px; background-color: #E43030; color: #ffffff; font-size: 14px; font-weight: 700; border-radius: 20px; text-transform: uppercase;">🔥 Lowest Price Ever</span>
</div>
<h2 style="margin: 0 0 16px 0; font-size: 22px; font-weight: 700; color: #111827; text-align: center;">This is the best price we've ever seen!</h2>
<p style="margin: 0 0 24px 0; font-size: 16px; color: #4b5563; line-height: 1.6; text-align: center;">Your tracked product has dropped to its <strong>all-time lowest price</strong>. This is the perfect time to buy!</p>
{{template "card" .}}
{{if .HasLowestPrice}}
<div style="margin-top: 24px; padding: 20px; background-color: #fef2f2; border-radius: 8px; text-align: center;">
<p style="margin: 0 0 8px 0; font-size: 14px; color: #991b1b;">Historical low price</p>
<p style="margin: 0; font-size: 28px; font-weight: 700; color: #E43030;">{{.LowestPrice}}</p>
</div>
{{end}}
{{end}}`

// thresholdMetTemplate 할인율 기준치 도달 알림의 본문입니다.
const thresholdMetTemplate = `{{define "content"}}
<div style="text-align: center; margin-bottom: 24px;">
<span style="display: inline-block; padding: 12px 24px; background: linear-gradient(135deg, #fbbf24 0%, #f59e0b 100%); color: #78350f; font-size: 18px; font-weight: 700; border-radius: 20px; text-transform: uppercase;">{{.DiscountRate}}% OFF</span>
</div>
<h2 style="margin: 0 0 16px 0; font-size: 22px; font-weight: 700; color: #111827; text-align: center;">Major discount alert! 🎯</h2>
<p style="margin: 0 0 24px 0; font-size: 16px; color: #4b5563; line-height: 1.6; text-align: center;">Your tracked product is now available at a <strong>significant discount</strong>. Deals like this don't last long!</p>
{{template "card" .}}
<div style="margin-top: 24px; padding: 16px; background-color: #fefce8; border-radius: 8px; border-left: 4px solid #eab308;">
<p style="margin: 0; font-size: 14px; color: #854d0e;"><strong>⏰ Act fast!</strong> Prices can change at any time. Get this deal before it's gone.</p>
</div>
{{end}}`
