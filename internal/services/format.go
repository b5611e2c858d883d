// Reply formatting.
//
// Assistant replies embed light HTML markup which the UI renders as rich
// text. Prices are always formatted as $XX.XX.
package services

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/aliconnects/go-shop-assistant/internal/catalog"
	"github.com/aliconnects/go-shop-assistant/internal/domain"
)

var titleCaser = cases.Title(language.English)

// formatPrice renders an amount the way the store displays it.
func formatPrice(amount float64) string {
	return fmt.Sprintf("$%.2f", amount)
}

// formatProductReply renders a single-product card.
func formatProductReply(p domain.Product) string {
	var b strings.Builder
	fmt.Fprintf(&b, "I found this %s that might interest you:<br><br>", p.Name)
	fmt.Fprintf(&b, "<strong>%s</strong><br>", p.Name)
	if p.Description != "" {
		fmt.Fprintf(&b, "%s<br>", p.Description)
	}
	fmt.Fprintf(&b, "Price: %s<br><br>", formatPrice(p.Price))
	fmt.Fprintf(&b, `<a href="%s" target="_blank">View on our website</a>`, p.URL)
	return b.String()
}

// formatCategoryReply renders the matches of a category search. The first
// match gets the full card; additional matches are listed compactly.
func formatCategoryReply(category string, matches []domain.Product) string {
	if len(matches) == 0 {
		return fmt.Sprintf("I couldn't find any %s products right now. You can browse the full catalog on our website.", category)
	}
	reply := formatProductReply(matches[0])
	if len(matches) > 1 {
		var b strings.Builder
		b.WriteString(reply)
		fmt.Fprintf(&b, "<br><br>Other %s picks:<br>", titleCaser.String(category))
		for _, p := range matches[1:] {
			fmt.Fprintf(&b, `- <a href="%s" target="_blank">%s</a> (%s)<br>`, p.URL, p.Name, formatPrice(p.Price))
		}
		reply = b.String()
	}
	return reply
}

// formatListingReply renders the all-products listing.
func formatListingReply(products []domain.Product) string {
	var b strings.Builder
	b.WriteString("Here are our products:<br><br>")
	for _, p := range products {
		fmt.Fprintf(&b, `<strong>%s</strong> — %s — <a href="%s" target="_blank">View details</a><br>`,
			p.Name, formatPrice(p.Price), p.URL)
	}
	return b.String()
}

// formatPolicyReply returns the fixed policy text for a topic. The website
// topic is rendered as a link; the other topics are handed out verbatim so
// callers can rely on exact equality with the store-info strings.
func formatPolicyReply(info catalog.StoreInfo, topic string) string {
	switch topic {
	case TopicShipping:
		return info.Shipping
	case TopicReturns:
		return info.Returns
	case TopicPayment:
		return info.Payment
	case TopicContact:
		return info.Contact
	case TopicWebsite:
		return fmt.Sprintf(`You can visit our online store at <a href="%s" target="_blank">%s</a>`, info.Website, info.Website)
	default:
		return localDefaultReply
	}
}

const greetingReply = "Hello! How can I assist you with your shopping today?"
