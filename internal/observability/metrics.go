// Domain metrics for the assistant core. HTTP traffic metrics live in the
// middleware package; the collectors here expose the behavior that matters
// operationally for this system: which fallback tier served product data,
// how the model gateway is doing, and how many sessions run degraded.
package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// CatalogFetches counts live catalog fetches by surface
	// (all|featured|categories) and outcome (ok|error).
	CatalogFetches = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "assistant_catalog_fetch_total",
		Help: "Live catalog fetch attempts by surface and outcome.",
	}, []string{"surface", "outcome"})

	// CacheServes counts product reads by the tier that actually served
	// them (live|cache|stale|static).
	CacheServes = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "assistant_product_serve_total",
		Help: "Product reads by serving tier.",
	}, []string{"tier"})

	// GatewayRequests counts model-gateway calls by outcome
	// (ok|network|status|payload).
	GatewayRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "assistant_gateway_requests_total",
		Help: "Model gateway calls by outcome.",
	}, []string{"outcome"})

	// Turns counts resolved turns by route kind.
	Turns = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "assistant_turns_total",
		Help: "Resolved turns by route.",
	}, []string{"route"})

	// DegradedSessions tracks sessions currently running with the model
	// path disabled.
	DegradedSessions = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "assistant_degraded_sessions",
		Help: "Sessions whose model gateway path is disabled.",
	})
)
