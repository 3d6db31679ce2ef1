package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "trackr_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)
	cascadeDeletes = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "trackr_cascade_deleted_total",
			Help: "Records removed by project and account cascades, by entity",
		},
		[]string{"entity"},
	)
)

// Metrics records request duration labelled by route pattern, so ids do not
// blow up label cardinality.
func Metrics() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		start := time.Now()
		ctx.Next()

		path := ctx.FullPath()
		if path == "" {
			path = "unmatched"
		}
		httpRequestDuration.
			WithLabelValues(ctx.Request.Method, path, strconv.Itoa(ctx.Writer.Status())).
			Observe(time.Since(start).Seconds())
	}
}

// RecordCascade counts the rows a successful cascade removed.
func RecordCascade(projects, issues, notes int64) {
	cascadeDeletes.WithLabelValues("project").Add(float64(projects))
	cascadeDeletes.WithLabelValues("issue").Add(float64(issues))
	cascadeDeletes.WithLabelValues("note").Add(float64(notes))
}
