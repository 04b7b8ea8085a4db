package repository

import (
	"context"

	"storefront/internal/domain/model"
	repo "storefront/internal/repository"

	"gorm.io/gorm"
)

type analyticsGormRepository struct {
	db *gorm.DB
}

func NewAnalyticsGormRepository(db *gorm.DB) repo.AnalyticsRepository {
	return &analyticsGormRepository{db: db}
}

func (r *analyticsGormRepository) Create(ctx context.Context, ev model.AnalyticsEvent) error {
	if err := r.db.WithContext(ctx).Create(&ev).Error; err != nil {
		return err
	}
	return nil
}
