// Package metrics exposes Prometheus counters fed from the event bus.
package metrics

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"eurojackpot/events"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "eurojackpot"

// Collector owns a private registry so tests and multiple instances never
// collide on the default one.
type Collector struct {
	registry *prometheus.Registry

	ticketsGenerated   *prometheus.CounterVec
	generationDuration prometheus.Histogram
	drawsImported      prometheus.Counter
	drawsSkipped       prometheus.Counter
	httpRequests       *prometheus.CounterVec
}

// NewCollector creates and registers every metric
func NewCollector() *Collector {
	c := &Collector{
		registry: prometheus.NewRegistry(),
		ticketsGenerated: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "tickets_generated_total",
				Help:      "Tickets generated by strategy",
			},
			[]string{"strategy"},
		),
		generationDuration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "ticket_generation_duration_seconds",
				Help:      "Time spent loading draws and generating a ticket",
				Buckets:   prometheus.ExponentialBuckets(0.0005, 2, 12),
			},
		),
		drawsImported: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "draws_imported_total",
				Help:      "Draws written by the history importer",
			},
		),
		drawsSkipped: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "draws_skipped_total",
				Help:      "Draw dates the history importer found no results for",
			},
		),
		httpRequests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "http_requests_total",
				Help:      "HTTP requests by route and status code",
			},
			[]string{"route", "status"},
		),
	}

	c.registry.MustRegister(
		c.ticketsGenerated,
		c.generationDuration,
		c.drawsImported,
		c.drawsSkipped,
		c.httpRequests,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return c
}

// Subscribe feeds the collector from bus events
func (c *Collector) Subscribe(bus *events.Bus) {
	bus.Subscribe(events.EventTypeTicketGenerated, func(ctx context.Context, event events.Event) {
		if e, ok := event.(events.TicketGeneratedEvent); ok {
			c.RecordTicket(e.StrategyID, e.Duration)
		}
	})
	bus.Subscribe(events.EventTypeDrawsImported, func(ctx context.Context, event events.Event) {
		if e, ok := event.(events.DrawsImportedEvent); ok {
			c.RecordImport(e.Imported, e.Skipped)
		}
	})
}

// RecordTicket counts one generated ticket
func (c *Collector) RecordTicket(strategy string, duration time.Duration) {
	c.ticketsGenerated.WithLabelValues(strategy).Inc()
	c.generationDuration.Observe(duration.Seconds())
}

// RecordImport counts the outcome of an import batch
func (c *Collector) RecordImport(imported, skipped int) {
	c.drawsImported.Add(float64(imported))
	c.drawsSkipped.Add(float64(skipped))
}

// RecordRequest counts one served HTTP request
func (c *Collector) RecordRequest(route string, status int) {
	c.httpRequests.WithLabelValues(route, strconv.Itoa(status)).Inc()
}

// Handler serves the registry in the Prometheus exposition format
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{Registry: c.registry})
}
