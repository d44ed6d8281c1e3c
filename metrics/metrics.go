package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var HttpRequests = prometheus.NewCounterVec(prometheus.CounterOpts{
	Name: "scoop_http_requests_total",
}, []string{"action", "method"})
var HttpResponses = prometheus.NewCounterVec(prometheus.CounterOpts{
	Name: "scoop_http_responses_total",
}, []string{"action", "method", "statusCode"})
var HttpResponseTime = prometheus.NewHistogramVec(prometheus.HistogramOpts{
	Name: "scoop_http_response_time_seconds",
}, []string{"action", "method"})
var UrlPreviewsGenerated = prometheus.NewCounterVec(prometheus.CounterOpts{
	Name: "scoop_url_previews_generated_total",
}, []string{"type"})
var QrCodesGenerated = prometheus.NewCounterVec(prometheus.CounterOpts{
	Name: "scoop_qr_codes_generated_total",
}, []string{"kind"})
var LogoLookups = prometheus.NewCounterVec(prometheus.CounterOpts{
	Name: "scoop_logo_lookups_total",
}, []string{"result"})
var RenderPoolQueued = prometheus.NewGauge(prometheus.GaugeOpts{
	Name: "scoop_render_pool_queue_length",
})

func init() {
	prometheus.MustRegister(HttpRequests)
	prometheus.MustRegister(HttpResponses)
	prometheus.MustRegister(HttpResponseTime)
	prometheus.MustRegister(UrlPreviewsGenerated)
	prometheus.MustRegister(QrCodesGenerated)
	prometheus.MustRegister(LogoLookups)
	prometheus.MustRegister(RenderPoolQueued)
}
