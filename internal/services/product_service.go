// Package services – ProductService
//
// This file implements ProductService, the caching repository in front of the
// store catalog. Every read runs through a multi-tier fallback chain:
//
//	live fetch → cached payload (stale allowed on failure) → static dataset
//
// which is the central reliability mechanism of the assistant: product data
// being unreachable must never surface as an error to a caller, only as the
// next tier. All four operations follow that policy; none of them returns an
// error.
//
// Observability: public methods are OpenTelemetry-instrumented and the tier
// that served each read is counted in Prometheus.
package services

import (
	"context"
	"strconv"
	"strings"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/aliconnects/go-shop-assistant/internal/catalog"
	"github.com/aliconnects/go-shop-assistant/internal/domain"
	"github.com/aliconnects/go-shop-assistant/internal/observability"
)

const (
	// DefaultCacheTTL bounds how long a cached catalog payload is
	// considered fresh.
	DefaultCacheTTL = 15 * time.Minute

	// featuredFallbackCount is how many products the featured surface
	// falls back to when its dedicated fetch fails.
	featuredFallbackCount = 6

	// minSearchTokenLen is the shortest query word considered in
	// token-level matching.
	minSearchTokenLen = 3
)

// CatalogClient is the slice of the catalog API the repository consumes.
type CatalogClient interface {
	FetchProducts(ctx context.Context) ([]catalog.ProductRecord, error)
	FetchFeatured(ctx context.Context) ([]catalog.ProductRecord, error)
	FetchCategories(ctx context.Context) ([]catalog.CategoryTerm, error)
}

// cacheEntry is one cache slot: the payload of a cacheable query surface and
// when it was fetched. The slot is overwritten wholesale on refresh
// (last-writer-wins); staleness is only checked against TTL on read.
type cacheEntry struct {
	products  []domain.Product
	fetchedAt time.Time
}

func (e *cacheEntry) fresh(now time.Time, ttl time.Duration) bool {
	return e != nil && now.Sub(e.fetchedAt) < ttl
}

// ProductService caches and serves catalog queries.
type ProductService struct {
	Client CatalogClient
	TTL    time.Duration

	// Now is the clock; overridable in tests. Defaults to time.Now.
	Now func() time.Time

	mu       sync.Mutex
	all      *cacheEntry
	featured *cacheEntry
}

// NewProductService constructs a repository over client with the default TTL.
func NewProductService(client CatalogClient) *ProductService {
	return &ProductService{Client: client, TTL: DefaultCacheTTL}
}

func (s *ProductService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

func (s *ProductService) ttl() time.Duration {
	if s.TTL > 0 {
		return s.TTL
	}
	return DefaultCacheTTL
}

// GetAll returns every known product in catalog order. It serves from cache
// while fresh, refreshes from the live API otherwise, reuses a stale cache
// when the refresh fails, and bottoms out on the static dataset (which then
// seeds the cache).
func (s *ProductService) GetAll(ctx context.Context) []domain.Product {
	tr := otel.Tracer("services/ProductService")
	ctx, span := tr.Start(ctx, "GetAll")
	defer span.End()

	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	if s.all.fresh(now, s.ttl()) {
		observability.CacheServes.WithLabelValues("cache").Inc()
		span.SetAttributes(attribute.String("tier", "cache"))
		return copyProducts(s.all.products)
	}

	records, err := s.Client.FetchProducts(ctx)
	if err == nil {
		observability.CatalogFetches.WithLabelValues("all", "ok").Inc()
		observability.CacheServes.WithLabelValues("live").Inc()
		span.SetAttributes(attribute.String("tier", "live"))
		products := normalizeRecords(records)
		s.all = &cacheEntry{products: products, fetchedAt: now}
		return copyProducts(products)
	}
	observability.CatalogFetches.WithLabelValues("all", "error").Inc()
	span.RecordError(err)

	// Stale-serve-on-failure: an expired cache beats the static table.
	if s.all != nil {
		observability.CacheServes.WithLabelValues("stale").Inc()
		span.SetAttributes(attribute.String("tier", "stale"))
		return copyProducts(s.all.products)
	}

	observability.CacheServes.WithLabelValues("static").Inc()
	span.SetAttributes(attribute.String("tier", "static"))
	products := catalog.FallbackProducts()
	s.all = &cacheEntry{products: products, fetchedAt: now}
	return copyProducts(products)
}

// Search returns, preserving catalog order, every product whose name,
// description, or category set matches the query. The match policy is
// layered and recall-oriented: full-string containment on name/description,
// containment on any category tag (either direction), then token-level
// containment for whitespace-split query words of three or more characters.
// One layer hitting is enough; no relevance ranking is applied.
func (s *ProductService) Search(ctx context.Context, query string) []domain.Product {
	tr := otel.Tracer("services/ProductService")
	ctx, span := tr.Start(ctx, "Search",
		trace.WithAttributes(attribute.String("query", query)),
	)
	defer span.End()

	all := s.GetAll(ctx)
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return all
	}

	var tokens []string
	for _, w := range strings.Fields(query) {
		if len(w) >= minSearchTokenLen {
			tokens = append(tokens, w)
		}
	}

	matched := make([]domain.Product, 0, len(all))
	for _, p := range all {
		if productMatches(p, query, tokens) {
			matched = append(matched, p)
		}
	}
	span.SetAttributes(attribute.Int("matches", len(matched)))
	return matched
}

// GetFeatured returns the featured listing, falling back to the first few
// products of GetAll when the dedicated fetch fails.
func (s *ProductService) GetFeatured(ctx context.Context) []domain.Product {
	tr := otel.Tracer("services/ProductService")
	ctx, span := tr.Start(ctx, "GetFeatured")
	defer span.End()

	now := s.now()

	s.mu.Lock()
	if s.featured.fresh(now, s.ttl()) {
		out := copyProducts(s.featured.products)
		s.mu.Unlock()
		observability.CacheServes.WithLabelValues("cache").Inc()
		return out
	}
	s.mu.Unlock()

	records, err := s.Client.FetchFeatured(ctx)
	if err == nil {
		observability.CatalogFetches.WithLabelValues("featured", "ok").Inc()
		products := normalizeRecords(records)
		s.mu.Lock()
		s.featured = &cacheEntry{products: products, fetchedAt: now}
		s.mu.Unlock()
		return copyProducts(products)
	}
	observability.CatalogFetches.WithLabelValues("featured", "error").Inc()
	span.RecordError(err)

	all := s.GetAll(ctx)
	if len(all) > featuredFallbackCount {
		all = all[:featuredFallbackCount]
	}
	return all
}

// GetCategories returns category descriptors. When the dedicated fetch
// fails, descriptors are derived from the category tags of all known
// products, counting membership per tag.
func (s *ProductService) GetCategories(ctx context.Context) []domain.Category {
	tr := otel.Tracer("services/ProductService")
	ctx, span := tr.Start(ctx, "GetCategories")
	defer span.End()

	terms, err := s.Client.FetchCategories(ctx)
	if err == nil {
		observability.CatalogFetches.WithLabelValues("categories", "ok").Inc()
		out := make([]domain.Category, 0, len(terms))
		for _, t := range terms {
			out = append(out, domain.Category{
				ID:    strconv.Itoa(t.ID),
				Name:  t.Name,
				Slug:  t.Slug,
				Count: t.Count,
			})
		}
		return out
	}
	observability.CatalogFetches.WithLabelValues("categories", "error").Inc()
	span.RecordError(err)

	// Derive from product tags, first-seen order.
	all := s.GetAll(ctx)
	counts := make(map[string]int)
	var order []string
	for _, p := range all {
		for _, c := range p.Categories {
			if _, seen := counts[c]; !seen {
				order = append(order, c)
			}
			counts[c]++
		}
	}
	out := make([]domain.Category, 0, len(order))
	for _, name := range order {
		slug := strings.ReplaceAll(strings.ToLower(name), " ", "-")
		out = append(out, domain.Category{
			ID:    slug,
			Name:  name,
			Slug:  slug,
			Count: counts[name],
		})
	}
	return out
}

// productMatches applies the layered match policy for one product.
func productMatches(p domain.Product, query string, tokens []string) bool {
	name := strings.ToLower(p.Name)
	desc := strings.ToLower(p.Description)

	// Layer 1: full-string containment on name or description.
	if strings.Contains(name, query) || strings.Contains(desc, query) {
		return true
	}

	// Layer 2: category containment, either direction.
	for _, c := range p.Categories {
		lc := strings.ToLower(c)
		if strings.Contains(lc, query) || strings.Contains(query, lc) {
			return true
		}
	}

	// Layer 3: token-level containment.
	for _, w := range tokens {
		if strings.Contains(name, w) || strings.Contains(desc, w) {
			return true
		}
		for _, c := range p.Categories {
			if strings.Contains(strings.ToLower(c), w) {
				return true
			}
		}
	}
	return false
}

// normalizeRecords reformats raw API records into the Product shape,
// defaulting malformed prices to zero and missing image/description fields
// to empty.
func normalizeRecords(records []catalog.ProductRecord) []domain.Product {
	out := make([]domain.Product, 0, len(records))
	for _, r := range records {
		price, err := strconv.ParseFloat(strings.TrimSpace(r.Price), 64)
		if err != nil || price < 0 {
			price = 0
		}
		image := ""
		if len(r.Images) > 0 {
			image = r.Images[0].Src
		}
		desc := r.ShortDescription
		if desc == "" {
			desc = r.Description
		}
		cats := make([]string, 0, len(r.Categories))
		for _, c := range r.Categories {
			cats = append(cats, c.Name)
		}
		out = append(out, domain.Product{
			ID:          r.ID,
			Name:        r.Name,
			Price:       price,
			Image:       image,
			URL:         r.Permalink,
			Description: desc,
			Categories:  cats,
		})
	}
	return out
}

// copyProducts returns a shallow copy so callers cannot mutate cache slots.
func copyProducts(in []domain.Product) []domain.Product {
	out := make([]domain.Product, len(in))
	copy(out, in)
	return out
}
