package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

func init() { register(rendersTotal, renderLatency, publishesTotal, publishAttempts) }

var (
	rendersTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "document_renders_total",
			Help: "PDF renders by result and truncation.",
		},
		[]string{"result", "truncated"},
	)

	renderLatency = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "document_render_duration_seconds",
			Help:    "PDF render duration.",
			Buckets: []float64{.1, .25, .5, 1, 2, 4, 8, 16, 32},
		},
	)

	publishesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "telegraph_publishes_total",
			Help: "Telegraph publish calls by result.",
		},
		[]string{"result"},
	)

	publishAttempts = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "telegraph_request_attempts_total",
			Help: "HTTP attempts made to Telegraph including retries.",
		},
	)
)

func ObserveRender(err error, truncated bool, dur time.Duration) {
	rendersTotal.WithLabelValues(result(err), strconv.FormatBool(truncated)).Inc()
	renderLatency.Observe(dur.Seconds())
}

func IncPublish(err error) {
	publishesTotal.WithLabelValues(result(err)).Inc()
}

func IncPublishAttempt() {
	publishAttempts.Inc()
}
