package usecase

import (
	"context"
	"errors"
	"net/http"

	"storefront/internal/domain/model"
	repo "storefront/internal/repository"
)

// 1回のレコメンドで返す最大件数
const recommendationLimit = 4

type RecommendationUsecase struct {
	productRepo repo.ProductRepository
}

func NewRecommendationUsecase(productRepo repo.ProductRepository) *RecommendationUsecase {
	return &RecommendationUsecase{productRepo: productRepo}
}

// レコメンドは一覧より薄い形で返す
type RecommendationOutput struct {
	ID         int64             `json:"id"`
	Title      string            `json:"title"`
	Category   string            `json:"category"`
	PriceCents int64             `json:"price_cents"`
	Images     map[string]string `json:"images"`
	Featured   bool              `json:"featured"`
	Rating     float64           `json:"rating"`
}

type RecommendationListOutput struct {
	Products []RecommendationOutput `json:"products"`
}

// productIDがあって解決できれば同カテゴリ（自分以外）をrating降順で最大4件。
// 無い・解決できないときはカタログ全体のrating上位4件にフォールバック。
func (u *RecommendationUsecase) Recommend(ctx context.Context, productID *int64) (RecommendationListOutput, error) {
	var recs []model.Product

	if productID != nil {
		base, err := u.productRepo.FindByID(ctx, *productID)
		if err != nil && !errors.Is(err, repo.ErrNotFound) {
			return RecommendationListOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
		}
		if err == nil {
			recs, err = u.productRepo.ListByCategory(ctx, base.Category, base.ID, recommendationLimit)
			if err != nil {
				return RecommendationListOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
			}
			return toRecommendationOutput(recs), nil
		}
	}

	recs, err := u.productRepo.ListTopRated(ctx, recommendationLimit)
	if err != nil {
		return RecommendationListOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return toRecommendationOutput(recs), nil
}

func toRecommendationOutput(products []model.Product) RecommendationListOutput {
	out := make([]RecommendationOutput, 0, len(products))
	for _, p := range products {
		out = append(out, RecommendationOutput{
			ID:         p.ID,
			Title:      p.Title,
			Category:   p.Category,
			PriceCents: p.PriceCents,
			Images:     map[string]string{"1x": p.Image},
			Featured:   p.Featured,
			Rating:     p.Rating,
		})
	}
	return RecommendationListOutput{Products: out}
}
