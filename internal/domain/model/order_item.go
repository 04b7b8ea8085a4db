package model

// 注文時点のスナップショット。後から商品が編集・削除されても明細は変わらない。
type OrderItem struct {
	ID         int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	OrderID    int64  `gorm:"not null;index" json:"order_id"`
	ProductID  int64  `gorm:"not null;index" json:"product_id"`
	Title      string `gorm:"type:varchar(255);not null" json:"title"`
	PriceCents int64  `gorm:"not null" json:"price_cents"`
	Quantity   int64  `gorm:"not null" json:"quantity"`
}
