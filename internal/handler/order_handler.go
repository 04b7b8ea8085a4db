package handler

import (
	"net/http"

	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
)

type OrderHandler struct {
	uc *usecase.OrderUsecase
}

func NewOrderHandler(uc *usecase.OrderUsecase) *OrderHandler {
	return &OrderHandler{uc: uc}
}

type PlaceOrderResponse struct {
	Status  string `json:"status"`
	OrderID int64  `json:"orderId"`
}

type OrderListResponse struct {
	Orders []usecase.OrderOutput `json:"orders"`
}

// 注文作成は公開、一覧は管理トークン必須
func (h *OrderHandler) RegisterRoutes(e *echo.Echo, adminMW echo.MiddlewareFunc) {
	e.POST("/api/orders", h.create)
	e.GET("/api/orders", h.list, adminMW)
}

func (h *OrderHandler) create(c echo.Context) error {
	var req usecase.PlaceOrderInput
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	orderID, err := h.uc.PlaceOrder(c.Request().Context(), req)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, PlaceOrderResponse{Status: "ok", OrderID: orderID})
}

func (h *OrderHandler) list(c echo.Context) error {
	out, err := h.uc.ListOrders(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, OrderListResponse{Orders: out})
}
