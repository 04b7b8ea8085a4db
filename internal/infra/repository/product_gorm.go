package repository

import (
	"context"
	"errors"

	"storefront/internal/domain/model"
	repo "storefront/internal/repository"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

type ProductGormRepository struct {
	db *gorm.DB
}

// DI
func NewProductGormRepository(db *gorm.DB) *ProductGormRepository {
	return &ProductGormRepository{db: db}
}

// ID昇順で全件返す。ページングはしない（カタログは小さい前提）。
func (r *ProductGormRepository) List(ctx context.Context) ([]model.Product, error) {
	var products []model.Product
	err := r.db.WithContext(ctx).Order("id asc").Find(&products).Error
	if err != nil {
		return []model.Product{}, err
	}
	return products, nil
}

// IDで商品を取得
func (r *ProductGormRepository) FindByID(ctx context.Context, id int64) (model.Product, error) {
	var p model.Product
	err := r.db.WithContext(ctx).First(&p, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Product{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Product{}, err
	}
	return p, nil
}

// 同カテゴリの商品（自分以外）をrating降順で返す
func (r *ProductGormRepository) ListByCategory(ctx context.Context, category string, excludeID int64, limit int) ([]model.Product, error) {
	var products []model.Product
	err := r.db.WithContext(ctx).
		Where("category = ? AND id <> ?", category, excludeID).
		Order("rating desc").
		Limit(limit).
		Find(&products).Error
	if err != nil {
		return []model.Product{}, err
	}
	return products, nil
}

// カタログ全体からrating降順
func (r *ProductGormRepository) ListTopRated(ctx context.Context, limit int) ([]model.Product, error) {
	var products []model.Product
	err := r.db.WithContext(ctx).
		Order("rating desc").
		Limit(limit).
		Find(&products).Error
	if err != nil {
		return []model.Product{}, err
	}
	return products, nil
}

// 商品の作成。ID重複はErrConflict。
func (r *ProductGormRepository) Create(ctx context.Context, p model.Product) error {
	if err := r.db.WithContext(ctx).Create(&p).Error; err != nil {
		if isUniqueViolation(err) {
			return repo.ErrConflict
		}
		return err
	}
	return nil
}

// 全フィールド上書き。IDが無くてもエラーにしない。
func (r *ProductGormRepository) Update(ctx context.Context, p model.Product) error {
	res := r.db.WithContext(ctx).Model(&model.Product{}).Where("id = ?", p.ID).Updates(map[string]interface{}{
		"title":       p.Title,
		"category":    p.Category,
		"subcategory": p.Subcategory,
		"description": p.Description,
		"price_cents": p.PriceCents,
		"currency":    p.Currency,
		"image":       p.Image,
		"featured":    p.Featured,
		"rating":      p.Rating,
		"stock":       p.Stock,
	})
	return res.Error
}

// 商品削除。IDが無くても成功扱い。
func (r *ProductGormRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&model.Product{}, id).Error
}

// PostgreSQLのunique_violation（23505）かどうか
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
