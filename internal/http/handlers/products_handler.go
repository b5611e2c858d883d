package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/aliconnects/go-shop-assistant/internal/domain"
	"github.com/aliconnects/go-shop-assistant/internal/utils"
)

// ProductsResponse is a list of products with its total count.
type ProductsResponse struct {
	Items []domain.Product `json:"items"`
	Total int              `json:"total"`
}

// CategoriesResponse is the list of known product categories.
type CategoriesResponse struct {
	Items []domain.Category `json:"items"`
}

// ListProducts returns the catalog, optionally filtered by the q query
// parameter and truncated by limit. Catalog degradation never surfaces as
// an error here; the repository always resolves to some tier.
func (h *Handlers) ListProducts(c *gin.Context) {
	ctx := c.Request.Context()

	var products []domain.Product
	if q := strings.TrimSpace(c.Query("q")); q != "" {
		products = h.productSvc.Search(ctx, q)
	} else {
		products = h.productSvc.GetAll(ctx)
	}

	total := len(products)
	if limit := utils.AtoiDefault(c.Query("limit"), total); limit >= 0 && limit < total {
		products = products[:limit]
	}

	ok(c, http.StatusOK, ProductsResponse{Items: products, Total: total})
}

// ListFeatured returns the featured product selection.
func (h *Handlers) ListFeatured(c *gin.Context) {
	products := h.productSvc.GetFeatured(c.Request.Context())
	ok(c, http.StatusOK, ProductsResponse{Items: products, Total: len(products)})
}

// ListCategories returns the known product categories.
func (h *Handlers) ListCategories(c *gin.Context) {
	ok(c, http.StatusOK, CategoriesResponse{Items: h.productSvc.GetCategories(c.Request.Context())})
}
