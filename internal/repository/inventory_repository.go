package repository

import (
	"context"

	"storefront/internal/domain/model"
)

type InventoryRepository interface {
	// 行ロック付きで商品を読む。同じ商品への同時注文が
	// 両方ともチェックを通って在庫を負にするのを防ぐ。
	FindForUpdate(ctx context.Context, productID int64) (model.Product, error)

	// 在庫減算。十分かどうかの判定は呼び出し側の責務。
	Decrement(ctx context.Context, productID int64, qty int64) error
}
