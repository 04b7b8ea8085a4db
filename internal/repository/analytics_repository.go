package repository

import (
	"context"

	"storefront/internal/domain/model"
)

// イベントを1件保存するだけ。読み出しの約束はない。
type AnalyticsRepository interface {
	Create(ctx context.Context, ev model.AnalyticsEvent) error
}
