package repository

import (
	"context"

	"storefront/internal/domain/model"
)

type OrderRepository interface {
	Create(ctx context.Context, order model.Order) (int64, error)
	//管理画面用。作成日時の降順
	ListAll(ctx context.Context) ([]model.Order, error)
	UpdateStatus(ctx context.Context, orderID int64, status model.OrderStatus) error

	//決済セッションIDを注文に紐付ける
	AttachPaymentSession(ctx context.Context, orderID int64, sessionID string) error
	//Webhookからの逆引き（見つからなければ found=false）
	FindByPaymentSessionID(ctx context.Context, sessionID string) (model.Order, bool, error)
}
