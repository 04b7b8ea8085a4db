package model

import "time"

type AnalyticsEventType string

const (
	AnalyticsEventOrderPlaced      AnalyticsEventType = "order_placed"
	AnalyticsEventCheckoutStarted  AnalyticsEventType = "checkout_started"
	AnalyticsEventPaymentCompleted AnalyticsEventType = "payment_completed"
)

// 書き込み専用のイベントログ。読み出すAPIはない。
type AnalyticsEvent struct {
	ID        int64              `gorm:"primaryKey;autoIncrement" json:"id"`
	EventID   string             `gorm:"type:varchar(64);not null" json:"event_id"`
	CreatedAt time.Time          `gorm:"not null;autoCreateTime;index" json:"created_at"`
	Type      AnalyticsEventType `gorm:"type:varchar(50);not null;index" json:"type"`
	ProductID *int64             `gorm:"index" json:"product_id,omitempty"`
	Meta      string             `gorm:"type:text" json:"meta"`
}
