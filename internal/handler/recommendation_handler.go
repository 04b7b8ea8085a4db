package handler

import (
	"net/http"
	"strconv"

	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
)

type RecommendationHandler struct {
	uc *usecase.RecommendationUsecase
}

func NewRecommendationHandler(uc *usecase.RecommendationUsecase) *RecommendationHandler {
	return &RecommendationHandler{uc: uc}
}

func (h *RecommendationHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/api/recommendations", h.recommend)
}

func (h *RecommendationHandler) recommend(c echo.Context) error {
	//productIdが数値でなければ「指定なし」として扱う
	var productID *int64
	if v := c.QueryParam("productId"); v != "" {
		if id, err := strconv.ParseInt(v, 10, 64); err == nil {
			productID = &id
		}
	}

	out, err := h.uc.Recommend(c.Request().Context(), productID)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}
