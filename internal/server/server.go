package server

import (
	"net/http"

	"storefront/internal/handler"
	"storefront/internal/metrics"
	"storefront/internal/middleware"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
)

type Handlers struct {
	Products        *handler.ProductHandler
	Orders          *handler.OrderHandler
	Recommendations *handler.RecommendationHandler
	Payments        *handler.PaymentHandler
}

// New はechoを組み立てて全ルートを登録する。
func New(log *zap.Logger, m *metrics.Metrics, adminToken string, h Handlers) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	e.Use(echomw.Recover())
	//フロントは別オリジンで動く
	e.Use(echomw.CORS())
	e.Use(middleware.RequestLogger(log))
	e.Use(m.Middleware())

	e.GET("/healthz", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})
	e.GET("/metrics", echo.WrapHandler(m.Handler()))

	adminMW := middleware.AdminToken(adminToken)
	h.Products.RegisterRoutes(e, adminMW)
	h.Orders.RegisterRoutes(e, adminMW)
	h.Recommendations.RegisterRoutes(e)
	h.Payments.RegisterRoutes(e)

	return e
}

func Start(e *echo.Echo, addr string) error {
	return e.Start(addr)
}
