// Package metrics exposes the planner's Prometheus collectors.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Recorder is what services and workers report to.
type Recorder interface {
	RecordThemeSaved(operation string)
	RecordThemeRejected(reason string)
	RecordExpansion(events int, duration time.Duration)
	RecordCalendarCache(hit bool)
	RecordGenerationEnqueued(contentType string)
	RecordGenerationFailed(contentType string)
	RecordWebhook(endpoint string, statusCode int)
	RecordUpload(fileType string)
}

// Collector is the Prometheus-backed Recorder.
type Collector struct {
	themesSaved        *prometheus.CounterVec
	themesRejected     *prometheus.CounterVec
	expandedEvents     prometheus.Histogram
	expansionLatency   prometheus.Histogram
	calendarCache      *prometheus.CounterVec
	generationEnqueued *prometheus.CounterVec
	generationFailed   *prometheus.CounterVec
	webhookResponses   *prometheus.CounterVec
	uploads            *prometheus.CounterVec
}

// NewCollector creates a Collector and registers it with reg.
func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		themesSaved: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "planner_themes_saved_total",
			Help: "Themes written, by operation.",
		}, []string{"operation"}),
		themesRejected: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "planner_themes_rejected_total",
			Help: "Theme writes refused, by reason.",
		}, []string{"reason"}),
		expandedEvents: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "planner_expanded_events",
			Help:    "Calendar events produced per expansion.",
			Buckets: prometheus.ExponentialBuckets(1, 2, 10),
		}),
		expansionLatency: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "planner_expansion_seconds",
			Help:    "Time spent expanding themes into events.",
			Buckets: prometheus.DefBuckets,
		}),
		calendarCache: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "planner_calendar_cache_total",
			Help: "Calendar cache lookups, by result.",
		}, []string{"result"}),
		generationEnqueued: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "planner_generation_enqueued_total",
			Help: "Generation tasks enqueued, by content type.",
		}, []string{"content_type"}),
		generationFailed: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "planner_generation_failed_total",
			Help: "Generation tasks given up on, by content type.",
		}, []string{"content_type"}),
		webhookResponses: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "planner_webhook_responses_total",
			Help: "Automation webhook responses, by endpoint and status code.",
		}, []string{"endpoint", "status_code"}),
		uploads: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "planner_uploads_total",
			Help: "Generated media uploads, by file type.",
		}, []string{"file_type"}),
	}

	reg.MustRegister(
		c.themesSaved,
		c.themesRejected,
		c.expandedEvents,
		c.expansionLatency,
		c.calendarCache,
		c.generationEnqueued,
		c.generationFailed,
		c.webhookResponses,
		c.uploads,
	)

	return c
}

func (c *Collector) RecordThemeSaved(operation string) {
	c.themesSaved.WithLabelValues(operation).Inc()
}

func (c *Collector) RecordThemeRejected(reason string) {
	c.themesRejected.WithLabelValues(reason).Inc()
}

func (c *Collector) RecordExpansion(events int, duration time.Duration) {
	c.expandedEvents.Observe(float64(events))
	c.expansionLatency.Observe(duration.Seconds())
}

func (c *Collector) RecordCalendarCache(hit bool) {
	result := "miss"
	if hit {
		result = "hit"
	}
	c.calendarCache.WithLabelValues(result).Inc()
}

func (c *Collector) RecordGenerationEnqueued(contentType string) {
	c.generationEnqueued.WithLabelValues(contentType).Inc()
}

func (c *Collector) RecordGenerationFailed(contentType string) {
	c.generationFailed.WithLabelValues(contentType).Inc()
}

// RecordWebhook counts a webhook response. statusCode 0 means the request
// never got a response.
func (c *Collector) RecordWebhook(endpoint string, statusCode int) {
	c.webhookResponses.WithLabelValues(endpoint, strconv.Itoa(statusCode)).Inc()
}

func (c *Collector) RecordUpload(fileType string) {
	c.uploads.WithLabelValues(fileType).Inc()
}

// Handler serves the registry's metrics for scraping.
func Handler(gatherer prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}

// Nop discards everything. Used where no registry is wired, such as the CLI.
type Nop struct{}

func (Nop) RecordThemeSaved(string)            {}
func (Nop) RecordThemeRejected(string)         {}
func (Nop) RecordExpansion(int, time.Duration) {}
func (Nop) RecordCalendarCache(bool)           {}
func (Nop) RecordGenerationEnqueued(string)    {}
func (Nop) RecordGenerationFailed(string)      {}
func (Nop) RecordWebhook(string, int)          {}
func (Nop) RecordUpload(string)                {}
