// Intent classification.
//
// A user utterance is resolved to a Route by cascading through an ordered
// list of rule groups; the first match wins and no scoring happens across
// groups. The ordering is a deliberate policy, not an accident: cheap,
// deterministic matches (store policies, greetings, catalog keywords) are
// always preferred over the network-bound free-form path, which bounds both
// latency and model cost for the common case. An utterance matching several
// groups takes the earliest-listed one ("return my headphones" is a returns
// question, not a product lookup).
//
// The cascade is represented as data, a slice of (name, matcher) pairs, so
// the priority policy is inspectable and testable on its own.
package services

import (
	"strings"

	"github.com/aliconnects/go-shop-assistant/internal/catalog"
)

// RouteKind enumerates the resolution strategies a turn can take.
type RouteKind int

const (
	// RoutePolicy answers from a fixed store-policy text; Arg is the topic.
	RoutePolicy RouteKind = iota
	// RouteGreeting answers with the canned greeting.
	RouteGreeting
	// RouteListing answers with the full product listing.
	RouteListing
	// RouteCategory runs a repository search; Arg is the category.
	RouteCategory
	// RouteProductQuery runs a repository search; Arg is the extracted query.
	RouteProductQuery
	// RouteFreeForm delegates to the external model gateway.
	RouteFreeForm
)

// String returns a stable label for logs and metrics.
func (k RouteKind) String() string {
	switch k {
	case RoutePolicy:
		return "policy"
	case RouteGreeting:
		return "greeting"
	case RouteListing:
		return "listing"
	case RouteCategory:
		return "category"
	case RouteProductQuery:
		return "product_query"
	case RouteFreeForm:
		return "free_form"
	default:
		return "unknown"
	}
}

// Policy topics.
const (
	TopicShipping = "shipping"
	TopicReturns  = "returns"
	TopicPayment  = "payment"
	TopicContact  = "contact"
	TopicWebsite  = "website"
)

// Route is the resolved strategy for one user turn. Arg carries the policy
// topic, category name, or extracted query depending on Kind.
type Route struct {
	Kind RouteKind
	Arg  string
}

// Classifier cascades an utterance through its ordered rule groups.
// Construct with NewClassifier; the zero value classifies everything as
// free-form.
type Classifier struct {
	rules []rule
}

// rule is one (named) matcher in the cascade.
type rule struct {
	name  string
	match func(lower string) (Route, bool)
}

// policyTopics is the ordered priority list of policy-topic triggers.
// "shipping" outranks "returns" outranks "payment" and so on; the order is
// part of the contract and covered by tests.
var policyTopics = []struct {
	topic    string
	triggers []string
}{
	{TopicShipping, []string{"shipping", "delivery"}},
	{TopicReturns, []string{"return", "refund"}},
	{TopicPayment, []string{"payment", "pay"}},
	{TopicContact, []string{"contact", "support", "help", "email", "phone"}},
	{TopicWebsite, []string{"website", "store", "shop"}},
}

var greetingTriggers = []string{"hello", "hi", "hey"}

var listingTriggers = []string{"products", "what do you sell", "what can i buy"}

// productLeadIns are phrasings that signal a product lookup; the remainder
// of the utterance after the lead-in becomes the search query.
var productLeadIns = []string{
	"do you have",
	"i am looking for",
	"i'm looking for",
	"looking for",
	"i want to buy",
	"i want",
	"i need",
	"how much is",
	"price of",
	"show me",
	"find me",
}

// queryFiller are words stripped from the front of an extracted query.
var queryFiller = map[string]struct{}{
	"a": {}, "an": {}, "the": {}, "some": {}, "any": {}, "your": {},
}

// NewClassifier builds the rule cascade. The category table comes from the
// store-info synonym list and keeps its order; it is a priority order, not
// an alphabetical one.
func NewClassifier(info catalog.StoreInfo) *Classifier {
	rules := []rule{
		{name: "policy", match: matchPolicy},
		{name: "greeting", match: matchGreeting},
		{name: "listing", match: matchListing},
		{name: "category", match: matchCategory(info.Synonyms)},
		{name: "product_query", match: matchProductQuery},
	}
	return &Classifier{rules: rules}
}

// Classify normalizes the utterance and returns the first matching route,
// falling back to free-form when nothing in the cascade fires.
func (c *Classifier) Classify(utterance string) Route {
	lower := strings.ToLower(strings.TrimSpace(utterance))
	for _, r := range c.rules {
		if route, ok := r.match(lower); ok {
			return route
		}
	}
	return Route{Kind: RouteFreeForm, Arg: utterance}
}

func matchPolicy(lower string) (Route, bool) {
	for _, p := range policyTopics {
		if containsAny(lower, p.triggers) {
			return Route{Kind: RoutePolicy, Arg: p.topic}, true
		}
	}
	return Route{}, false
}

func matchGreeting(lower string) (Route, bool) {
	if containsAny(lower, greetingTriggers) {
		return Route{Kind: RouteGreeting}, true
	}
	return Route{}, false
}

func matchListing(lower string) (Route, bool) {
	if containsAny(lower, listingTriggers) {
		return Route{Kind: RouteListing}, true
	}
	return Route{}, false
}

// matchCategory returns a matcher over the synonym table. A category fires
// when its own name or any trigger word appears in the utterance; the first
// table entry that fires wins.
func matchCategory(table []catalog.CategorySynonyms) func(string) (Route, bool) {
	return func(lower string) (Route, bool) {
		for _, entry := range table {
			if strings.Contains(lower, entry.Category) || containsAny(lower, entry.Triggers) {
				return Route{Kind: RouteCategory, Arg: entry.Category}, true
			}
		}
		return Route{}, false
	}
}

// matchProductQuery looks for product-referring phrasing not caught by the
// earlier groups and extracts the trailing words as a search query.
func matchProductQuery(lower string) (Route, bool) {
	for _, lead := range productLeadIns {
		idx := strings.Index(lower, lead)
		if idx < 0 {
			continue
		}
		rest := strings.TrimSpace(lower[idx+len(lead):])
		rest = strings.Trim(rest, "?!.،")
		words := strings.Fields(rest)
		for len(words) > 0 {
			if _, filler := queryFiller[words[0]]; !filler {
				break
			}
			words = words[1:]
		}
		if len(words) == 0 {
			continue
		}
		return Route{Kind: RouteProductQuery, Arg: strings.Join(words, " ")}, true
	}
	return Route{}, false
}

// containsAny reports whether s contains any of the needles.
func containsAny(s string, needles []string) bool {
	for _, n := range needles {
		if n != "" && strings.Contains(s, n) {
			return true
		}
	}
	return false
}
