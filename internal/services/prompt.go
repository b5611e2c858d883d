// System prompt construction for the model gateway.
//
// The prompt pins the remote model to the catalog: it embeds the current
// product view and the store policies as JSON so free-form answers stay
// grounded in real data. Size is bounded downstream: the gateway truncates
// the system prompt and the user utterance to their character budgets.
package services

import (
	"encoding/json"
	"fmt"

	"github.com/aliconnects/go-shop-assistant/internal/catalog"
	"github.com/aliconnects/go-shop-assistant/internal/domain"
)

// buildSystemPrompt renders the Alixia persona instructions with the given
// catalog view and store policies embedded.
func buildSystemPrompt(info catalog.StoreInfo, products []domain.Product) string {
	productsJSON, err := json.Marshal(products)
	if err != nil {
		productsJSON = []byte("[]")
	}
	policies := map[string]string{
		"name":     info.Name,
		"website":  info.Website,
		"shipping": info.Shipping,
		"returns":  info.Returns,
		"payment":  info.Payment,
		"contact":  info.Contact,
	}
	policiesJSON, err := json.Marshal(policies)
	if err != nil {
		policiesJSON = []byte("{}")
	}

	return fmt.Sprintf(`You are Alixia, the shopping assistant for %s. Follow these rules STRICTLY:
1. ONLY recommend products from this list: %s
2. Always include:
   - Product image: ![alt](image_url)
   - Link: [Buy here](product_url)
   - Price: $XX.XX
3. For store policies, use this info: %s
4. Never make up products or information.
5. Be friendly and helpful.`, info.Name, productsJSON, policiesJSON)
}
