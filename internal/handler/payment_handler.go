package handler

import (
	"io"
	"net/http"

	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
)

// Stripe側の署名ヘッダ名
const signatureHeader = "Stripe-Signature"

type PaymentHandler struct {
	uc *usecase.CheckoutUsecase
}

func NewPaymentHandler(uc *usecase.CheckoutUsecase) *PaymentHandler {
	return &PaymentHandler{uc: uc}
}

type CheckoutResponse struct {
	URL string `json:"url"`
}

type WebhookResponse struct {
	Received bool `json:"received"`
}

func (h *PaymentHandler) RegisterRoutes(e *echo.Echo) {
	e.POST("/api/pay/checkout-session", h.checkoutSession)
	e.POST("/api/pay/webhook", h.webhook)
}

func (h *PaymentHandler) checkoutSession(c echo.Context) error {
	var req usecase.CheckoutInput
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	url, err := h.uc.InitiateCheckout(c.Request().Context(), req)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, CheckoutResponse{URL: url})
}

func (h *PaymentHandler) webhook(c echo.Context) error {
	//署名検証は生のボディに対して行うので、パース前に読む
	payload, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	sig := c.Request().Header.Get(signatureHeader)

	if err := h.uc.ConfirmPayment(c.Request().Context(), payload, sig); err != nil {
		return writeError(c, err)
	}

	//署名と照合が済めば常にACK（再送の抑止）
	return c.JSON(http.StatusOK, WebhookResponse{Received: true})
}
