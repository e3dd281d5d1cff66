// Package metrics exposes Prometheus instrumentation for the catalog
// pipeline. Register nothing here manually; promauto wires collectors into
// the default registry and Handler serves them at GET /metrics.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// UpstreamPages counts pages fetched from the upstream ticketing feed.
var UpstreamPages = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "tm_catalog_upstream_pages_total",
	Help: "Pages fetched from the upstream ticketing API, by outcome.",
}, []string{"outcome"})

// CacheLookups counts feed cache lookups by result.
var CacheLookups = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "tm_catalog_cache_lookups_total",
	Help: "Feed cache lookups, by result (hit|miss).",
}, []string{"result"})

// FanOutChains counts fan-out chains planned per aggregation rule.
var FanOutChains = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "tm_catalog_fanout_chains_total",
	Help: "Upstream request chains planned, by planner rule.",
}, []string{"rule"})

// Aggregations counts catalog aggregations by outcome.
var Aggregations = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "tm_catalog_aggregations_total",
	Help: "Catalog aggregation runs, by outcome (ok|error|superseded).",
}, []string{"outcome"})

func Handler() http.Handler {
	return promhttp.Handler()
}
