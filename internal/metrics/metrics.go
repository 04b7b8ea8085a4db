package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// アプリが出すメトリクス一式。/metrics で公開する。
type Metrics struct {
	registry *prometheus.Registry

	HTTPDuration     *prometheus.HistogramVec
	OrdersPlaced     prometheus.Counter
	CheckoutSessions prometheus.Counter
	WebhookEvents    *prometheus.CounterVec
}

func New() *Metrics {
	reg := prometheus.NewRegistry()

	m := &Metrics{
		registry: reg,
		HTTPDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "storefront",
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "path", "status"}),
		OrdersPlaced: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "storefront",
			Name:      "orders_placed_total",
			Help:      "Orders created via direct placement.",
		}),
		CheckoutSessions: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "storefront",
			Name:      "checkout_sessions_total",
			Help:      "Payment checkout sessions created.",
		}),
		WebhookEvents: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "storefront",
			Name:      "webhook_events_total",
			Help:      "Payment webhook deliveries by outcome.",
		}, []string{"outcome"}),
	}

	reg.MustRegister(m.HTTPDuration, m.OrdersPlaced, m.CheckoutSessions, m.WebhookEvents)
	return m
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// リクエストの所要時間を記録するechoミドルウェア。
func (m *Metrics) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)

			status := c.Response().Status
			if err != nil {
				if he, ok := err.(*echo.HTTPError); ok {
					status = he.Code
				}
			}

			//pathはルートパターン（/api/products/:id）でカーディナリティを抑える
			m.HTTPDuration.WithLabelValues(
				c.Request().Method,
				c.Path(),
				strconv.Itoa(status),
			).Observe(time.Since(start).Seconds())

			return err
		}
	}
}
