package repository

import (
	"context"
	"errors"

	"storefront/internal/domain/model"
)

var ErrNotFound = errors.New("not found")

// IDが既に使われているとき（IDは呼び出し側が採番する）
var ErrConflict = errors.New("conflict")

// 商品の永続化（保存・取得）だけを約束。
type ProductRepository interface {
	//ID昇順で全件
	List(ctx context.Context) ([]model.Product, error)
	FindByID(ctx context.Context, id int64) (model.Product, error)

	//同カテゴリをrating降順で返す（自分自身は除く）
	ListByCategory(ctx context.Context, category string, excludeID int64, limit int) ([]model.Product, error)
	//カタログ全体からrating降順
	ListTopRated(ctx context.Context, limit int) ([]model.Product, error)

	//ID重複はErrConflict
	Create(ctx context.Context, p model.Product) error
	//全フィールド上書き。IDが無ければ何もしない（エラーにしない）
	Update(ctx context.Context, p model.Product) error
	//IDが無くても成功扱い
	Delete(ctx context.Context, id int64) error
}
