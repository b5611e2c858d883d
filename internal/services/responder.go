// Local heuristic responder.
//
// When the model gateway is unavailable (or the session is already running
// degraded) free-form turns are answered from a small table of canned,
// keyword-matched replies. The table is ordered; the first topic whose
// triggers appear in the utterance wins, with a generic default at the end.
package services

import "strings"

// localTopic is one canned-answer entry of the degraded responder.
type localTopic struct {
	triggers []string
	reply    string
}

var localTopics = []localTopic{
	{
		triggers: []string{"price", "cost", "how much", "expensive", "cheap"},
		reply: "Our products range from $15.99 to $139.00. Ask me about a specific " +
			"product and I can tell you its exact price.",
	},
	{
		triggers: []string{"recommend", "suggest", "best", "popular"},
		reply: "Our Wireless Earbuds and Smart Watch are customer favorites. " +
			"Tell me what you are shopping for and I can point you to something specific.",
	},
	{
		triggers: []string{"discount", "sale", "coupon", "deal", "promo"},
		reply: "We run seasonal promotions throughout the year. Free shipping applies " +
			"to all orders over $50.",
	},
	{
		triggers: []string{"warranty", "guarantee"},
		reply: "All our products come with a 12-month manufacturer warranty, and our " +
			"30-day return policy covers any unused item.",
	},
}

const localDefaultReply = "I'm here to help with your shopping experience at AliConnects. What would you like to know?"

// localRespond produces a canned answer for a free-form utterance without
// touching the network.
func localRespond(utterance string) string {
	lower := strings.ToLower(utterance)
	for _, t := range localTopics {
		if containsAny(lower, t.triggers) {
			return t.reply
		}
	}
	return localDefaultReply
}
