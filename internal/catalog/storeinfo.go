package catalog

// StoreInfo bundles the fixed store-policy texts handed out verbatim for
// policy questions, plus the category synonym table used by the intent
// classifier and repository scoring.
type StoreInfo struct {
	Name     string
	Website  string
	Shipping string
	Returns  string
	Payment  string
	Contact  string

	// Synonyms maps a category name to its trigger words, in priority
	// order. The order is load-bearing: the classifier takes the first
	// entry whose trigger set intersects the utterance.
	Synonyms []CategorySynonyms
}

// CategorySynonyms pairs a category with the words that should resolve to it.
type CategorySynonyms struct {
	Category string
	Triggers []string
}

// DefaultStoreInfo returns the AliConnects store policies and the synonym
// table. Entry order in Synonyms is a priority order; do not re-sort it.
func DefaultStoreInfo() StoreInfo {
	return StoreInfo{
		Name:     "AliConnects",
		Website:  "https://store.aliconnects.com/",
		Shipping: "Free shipping on orders over $50. Standard delivery takes 3-5 business days.",
		Returns:  "30-day return policy. You can return any unused item within 30 days for a full refund.",
		Payment:  "We accept all major credit cards, PayPal, and Apple Pay.",
		Contact:  "For customer support, please email support@aliconnects.com or call (555) 123-4567.",
		Synonyms: []CategorySynonyms{
			{Category: "earbuds", Triggers: []string{"earbuds", "headphones", "earphones"}},
			{Category: "watch", Triggers: []string{"watch", "smartwatch", "fitness tracker"}},
			{Category: "speaker", Triggers: []string{"speaker", "speakers"}},
			{Category: "electronics", Triggers: []string{"gadgets", "devices", "tech", "technology", "electronic"}},
			{Category: "audio", Triggers: []string{"sound", "music", "listening"}},
			{Category: "clothing", Triggers: []string{"clothes", "apparel", "wear", "outfit", "garment", "fashion"}},
			{Category: "t-shirts", Triggers: []string{"tshirts", "tees", "shirts", "tops", "t shirts", "t-shirt"}},
			{Category: "dresses", Triggers: []string{"dress", "gown", "frock"}},
			{Category: "accessories", Triggers: []string{"accessory", "add-ons", "extras"}},
			{Category: "home", Triggers: []string{"household", "house", "domestic", "living"}},
			{Category: "kitchen", Triggers: []string{"cooking", "culinary", "food preparation"}},
		},
	}
}
