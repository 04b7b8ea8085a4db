package model

import "time"

type OrderStatus string

const (
	//PlaceOrderで作られた注文（終端）
	OrderStatusCreated OrderStatus = "created"
	//決済セッション作成済み、支払い待ち
	OrderStatusPendingPayment OrderStatus = "pending_payment"
	//Webhookで支払い確認済み
	OrderStatusPaid OrderStatus = "paid"
)

type Order struct {
	ID               int64       `gorm:"primaryKey;autoIncrement" json:"id"`
	CreatedAt        time.Time   `gorm:"not null;autoCreateTime" json:"created_at"`
	TotalCents       int64       `gorm:"not null" json:"total_cents"`
	Status           OrderStatus `gorm:"type:varchar(20);not null;default:'created';index" json:"status"`
	PaymentSessionID string      `gorm:"type:varchar(255);index" json:"payment_session_id,omitempty"`
}
