package usecase

import (
	"context"
	"errors"
	"net/http"

	"storefront/internal/domain/model"
	repo "storefront/internal/repository"
)

type ProductUsecase struct {
	productRepo repo.ProductRepository
}

// DI
func NewProductUsecase(productRepo repo.ProductRepository) *ProductUsecase {
	return &ProductUsecase{productRepo: productRepo}
}

// フロントの期待する形（images は解像度キー付き、tags は常に空配列）
type ProductOutput struct {
	ID          int64             `json:"id"`
	Title       string            `json:"title"`
	Category    string            `json:"category"`
	Subcategory string            `json:"subcategory"`
	Description string            `json:"description"`
	PriceCents  int64             `json:"price_cents"`
	Currency    string            `json:"currency"`
	Images      map[string]string `json:"images"`
	Featured    bool              `json:"featured"`
	Rating      float64           `json:"rating"`
	Stock       int64             `json:"stock"`
	Tags        []string          `json:"tags"`
}

type ProductListOutput struct {
	Products []ProductOutput `json:"products"`
}

// 管理APIの入力。省略時のデフォルトはオリジナル仕様に合わせる
// （currency=USD / featured=false / rating=0 / stock=100）。
type AdminProductInput struct {
	ID          int64    `json:"id"`
	Title       string   `json:"title"`
	Category    string   `json:"category"`
	Subcategory string   `json:"subcategory"`
	Description string   `json:"description"`
	PriceCents  int64    `json:"price_cents"`
	Currency    string   `json:"currency"`
	Image       string   `json:"image"`
	Featured    bool     `json:"featured"`
	Rating      float64  `json:"rating"`
	Stock       *int64   `json:"stock"`
}

func (u *ProductUsecase) ListProducts(ctx context.Context) (ProductListOutput, error) {
	products, err := u.productRepo.List(ctx)
	if err != nil {
		return ProductListOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	out := make([]ProductOutput, 0, len(products))
	for _, p := range products {
		out = append(out, toProductOutput(p))
	}
	return ProductListOutput{Products: out}, nil
}

func (u *ProductUsecase) CreateProduct(ctx context.Context, in AdminProductInput) error {
	if in.ID <= 0 {
		return NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	if in.PriceCents < 0 {
		return NewHTTPError(http.StatusBadRequest, "price_cents must be >= 0")
	}

	err := u.productRepo.Create(ctx, toProduct(in))
	if errors.Is(err, repo.ErrConflict) {
		return NewHTTPError(http.StatusConflict, "duplicate product id")
	}
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return nil
}

// 全フィールド上書き。IDが存在しなくても成功扱い（現行仕様のまま）。
func (u *ProductUsecase) UpdateProduct(ctx context.Context, id int64, in AdminProductInput) error {
	if id <= 0 {
		return NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	if in.PriceCents < 0 {
		return NewHTTPError(http.StatusBadRequest, "price_cents must be >= 0")
	}

	in.ID = id
	if err := u.productRepo.Update(ctx, toProduct(in)); err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return nil
}

// IDが存在しなくても成功扱い（現行仕様のまま）。
func (u *ProductUsecase) DeleteProduct(ctx context.Context, id int64) error {
	if id <= 0 {
		return NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	if err := u.productRepo.Delete(ctx, id); err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return nil
}

func toProduct(in AdminProductInput) model.Product {
	currency := in.Currency
	if currency == "" {
		currency = "USD"
	}
	var stock int64 = 100
	if in.Stock != nil {
		stock = *in.Stock
	}

	return model.Product{
		ID:          in.ID,
		Title:       in.Title,
		Category:    in.Category,
		Subcategory: in.Subcategory,
		Description: in.Description,
		PriceCents:  in.PriceCents,
		Currency:    currency,
		Image:       in.Image,
		Featured:    in.Featured,
		Rating:      in.Rating,
		Stock:       stock,
	}
}

func toProductOutput(p model.Product) ProductOutput {
	return ProductOutput{
		ID:          p.ID,
		Title:       p.Title,
		Category:    p.Category,
		Subcategory: p.Subcategory,
		Description: p.Description,
		PriceCents:  p.PriceCents,
		Currency:    p.Currency,
		Images:      map[string]string{"1x": p.Image},
		Featured:    p.Featured,
		Rating:      p.Rating,
		Stock:       p.Stock,
		Tags:        []string{},
	}
}
