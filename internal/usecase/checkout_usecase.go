package usecase

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"storefront/internal/domain/model"
	"storefront/internal/metrics"
	"storefront/internal/payment"
	repo "storefront/internal/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type CheckoutUsecase struct {
	tx          repo.TransactionManager
	gateway     payment.Gateway
	frontendURL string
	log         *zap.Logger
	m           *metrics.Metrics
}

// gatewayはプロバイダ未設定ならnilのまま渡す。
func NewCheckoutUsecase(tx repo.TransactionManager, gateway payment.Gateway, frontendURL string, log *zap.Logger, m *metrics.Metrics) *CheckoutUsecase {
	return &CheckoutUsecase{tx: tx, gateway: gateway, frontendURL: frontendURL, log: log, m: m}
}

type CheckoutInput struct {
	Items []OrderItemInput `json:"items"`
}

// 注文をpending_paymentで作り、決済セッションを作ってリダイレクトURLを返す。
// 在庫はここでは触らない。減らすのは支払い確認（Webhook）のとき。
// 合計はPlaceOrderと違い、明細から計算した値を正とする。
func (u *CheckoutUsecase) InitiateCheckout(ctx context.Context, in CheckoutInput) (string, error) {
	if u.gateway == nil {
		return "", NewHTTPError(http.StatusBadRequest, "Stripe not configured")
	}

	var total int64
	for _, it := range in.Items {
		total += it.PriceCents * it.Quantity
	}

	var orderID int64
	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		id, err := r.Orders().Create(ctx, model.Order{
			TotalCents: total,
			Status:     model.OrderStatusPendingPayment,
		})
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		items := make([]model.OrderItem, 0, len(in.Items))
		for _, it := range in.Items {
			items = append(items, model.OrderItem{
				ProductID:  it.ID,
				Title:      it.Title,
				PriceCents: it.PriceCents,
				Quantity:   it.Quantity,
			})
		}
		if err := r.OrderItems().CreateBulk(ctx, id, items); err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		if err := r.Analytics().Create(ctx, model.AnalyticsEvent{
			EventID: uuid.NewString(),
			Type:    model.AnalyticsEventCheckoutStarted,
			Meta:    fmt.Sprintf(`{"order_id":%d,"total_cents":%d}`, id, total),
		}); err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		orderID = id
		return nil
	})
	if err != nil {
		return "", err
	}

	lineItems := make([]payment.LineItem, 0, len(in.Items))
	for _, it := range in.Items {
		lineItems = append(lineItems, payment.LineItem{
			Title:      it.Title,
			PriceCents: it.PriceCents,
			Quantity:   it.Quantity,
		})
	}

	session, err := u.gateway.CreateSession(ctx, lineItems,
		u.frontendURL+"/?success=true",
		u.frontendURL+"/?canceled=true",
		map[string]string{"orderId": strconv.FormatInt(orderID, 10)},
	)
	if err != nil {
		u.log.Error("create checkout session failed", zap.Int64("order_id", orderID), zap.Error(err))
		return "", NewHTTPError(http.StatusInternalServerError, "Failed to create checkout session")
	}

	err = u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		return r.Orders().AttachPaymentSession(ctx, orderID, session.ID)
	})
	if err != nil {
		return "", NewHTTPError(http.StatusInternalServerError, "db error")
	}

	u.m.CheckoutSessions.Inc()
	return session.URL, nil
}

// プロバイダからの非同期通知を処理する。
// 署名が検証できなければ一切状態を変えずに失敗させる（fail closed）。
// 検証済みのcompletedイベントは該当注文の在庫減算＋paid遷移を1トランザクションで行う。
// 該当注文が無ければACKして終わり（重複や未知セッションはno-op）。
func (u *CheckoutUsecase) ConfirmPayment(ctx context.Context, payload []byte, sigHeader string) error {
	if u.gateway == nil {
		return NewHTTPError(http.StatusBadRequest, "Not configured")
	}

	ev, err := u.gateway.VerifyAndParse(payload, sigHeader)
	if errors.Is(err, payment.ErrInvalidSignature) {
		u.log.Warn("webhook signature verification failed")
		u.m.WebhookEvents.WithLabelValues("invalid_signature").Inc()
		return NewHTTPError(http.StatusBadRequest, "invalid signature")
	}
	if err != nil {
		return NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	if ev.Type != payment.EventCheckoutCompleted {
		u.m.WebhookEvents.WithLabelValues("ignored").Inc()
		return nil
	}

	outcome := "no_match"
	err = u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		o, found, err := r.Orders().FindByPaymentSessionID(ctx, ev.SessionID)
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}
		if !found {
			return nil
		}

		items, err := r.OrderItems().ListByOrderID(ctx, o.ID)
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		//NOTE: 同じcompletedイベントが2回処理されると在庫は2回減る。
		//イベントIDの重複排除は現行仕様に存在しない（既知のギャップ）。
		for _, it := range items {
			if err := r.Inventory().Decrement(ctx, it.ProductID, it.Quantity); err != nil {
				return NewHTTPError(http.StatusInternalServerError, "db error")
			}
		}

		if err := r.Orders().UpdateStatus(ctx, o.ID, model.OrderStatusPaid); err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		if err := r.Analytics().Create(ctx, model.AnalyticsEvent{
			EventID: ev.ID,
			Type:    model.AnalyticsEventPaymentCompleted,
			Meta:    fmt.Sprintf(`{"order_id":%d}`, o.ID),
		}); err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		outcome = "completed"
		return nil
	})
	if err != nil {
		return err
	}

	u.m.WebhookEvents.WithLabelValues(outcome).Inc()
	return nil
}
