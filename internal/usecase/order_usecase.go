package usecase

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"storefront/internal/domain/model"
	"storefront/internal/metrics"
	repo "storefront/internal/repository"

	"github.com/google/uuid"
)

type OrderUsecase struct {
	tx repo.TransactionManager
	m  *metrics.Metrics
}

func NewOrderUsecase(tx repo.TransactionManager, m *metrics.Metrics) *OrderUsecase {
	return &OrderUsecase{tx: tx, m: m}
}

type OrderItemInput struct {
	ID         int64  `json:"id"`
	Title      string `json:"title"`
	PriceCents int64  `json:"price_cents"`
	Quantity   int64  `json:"quantity"`
}

type PlaceOrderInput struct {
	Items      []OrderItemInput `json:"items"`
	TotalCents int64            `json:"total_cents"`
}

type OrderItemOutput struct {
	ID         int64  `json:"id"`
	OrderID    int64  `json:"order_id"`
	ProductID  int64  `json:"product_id"`
	Title      string `json:"title"`
	PriceCents int64  `json:"price_cents"`
	Quantity   int64  `json:"quantity"`
}

type OrderOutput struct {
	ID               int64             `json:"id"`
	CreatedAt        time.Time         `json:"created_at"`
	TotalCents       int64             `json:"total_cents"`
	Status           string            `json:"status"`
	PaymentSessionID string            `json:"payment_session_id,omitempty"`
	Items            []OrderItemOutput `json:"items"`
}

// 在庫チェック→注文作成→明細作成→在庫減算を1トランザクションで行う。
// チェックは行ロック付きで読むので、同じ商品への同時注文が
// 両方ともチェックを通ることはない。
// 合計金額は呼び出し側の申告値をそのまま信じる（現行仕様のまま）。
func (u *OrderUsecase) PlaceOrder(ctx context.Context, in PlaceOrderInput) (int64, error) {
	var orderID int64

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		//全商品の在庫を先に確認。1つでも足りなければ注文は作らない。
		for _, it := range in.Items {
			p, err := r.Inventory().FindForUpdate(ctx, it.ID)
			if errors.Is(err, repo.ErrNotFound) || (err == nil && p.Stock < it.Quantity) {
				return NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Insufficient stock for product %d", it.ID))
			}
			if err != nil {
				return NewHTTPError(http.StatusInternalServerError, "db error")
			}
		}

		id, err := r.Orders().Create(ctx, model.Order{
			TotalCents: in.TotalCents,
			Status:     model.OrderStatusCreated,
		})
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		//明細は注文時点のスナップショット
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

		for _, it := range in.Items {
			if err := r.Inventory().Decrement(ctx, it.ID, it.Quantity); err != nil {
				return NewHTTPError(http.StatusInternalServerError, "db error")
			}
		}

		if err := r.Analytics().Create(ctx, model.AnalyticsEvent{
			EventID: uuid.NewString(),
			Type:    model.AnalyticsEventOrderPlaced,
			Meta:    fmt.Sprintf(`{"order_id":%d}`, id),
		}); err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		orderID = id
		return nil
	})

	if err != nil {
		return 0, err
	}

	u.m.OrdersPlaced.Inc()
	return orderID, nil
}

// 管理画面用。全注文を明細付き・新しい順で返す。
func (u *OrderUsecase) ListOrders(ctx context.Context) ([]OrderOutput, error) {
	var outs []OrderOutput

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		orders, err := r.Orders().ListAll(ctx)
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		outs = make([]OrderOutput, 0, len(orders))
		for _, o := range orders {
			items, err := r.OrderItems().ListByOrderID(ctx, o.ID)
			if err != nil {
				return NewHTTPError(http.StatusInternalServerError, "db error")
			}
			outs = append(outs, toOrderOutput(o, items))
		}
		return nil
	})

	if err != nil {
		return []OrderOutput{}, err
	}
	return outs, nil
}

func toOrderOutput(o model.Order, items []model.OrderItem) OrderOutput {
	outItems := make([]OrderItemOutput, 0, len(items))
	for _, it := range items {
		outItems = append(outItems, OrderItemOutput{
			ID:         it.ID,
			OrderID:    it.OrderID,
			ProductID:  it.ProductID,
			Title:      it.Title,
			PriceCents: it.PriceCents,
			Quantity:   it.Quantity,
		})
	}

	return OrderOutput{
		ID:               o.ID,
		CreatedAt:        o.CreatedAt,
		TotalCents:       o.TotalCents,
		Status:           string(o.Status),
		PaymentSessionID: o.PaymentSessionID,
		Items:            outItems,
	}
}
