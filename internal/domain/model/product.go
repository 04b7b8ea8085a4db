package model

// IDは外部採番（シードや管理APIが決める）。autoIncrementにしない。
type Product struct {
	ID          int64   `gorm:"primaryKey" json:"id"`
	Title       string  `gorm:"type:varchar(255);not null" json:"title"`
	Category    string  `gorm:"type:varchar(100)" json:"category"`
	Subcategory string  `gorm:"type:varchar(100)" json:"subcategory"`
	Description string  `gorm:"type:text" json:"description"`
	PriceCents  int64   `gorm:"not null" json:"price_cents"`
	Currency    string  `gorm:"type:varchar(10);not null;default:'USD'" json:"currency"`
	Image       string  `gorm:"type:text" json:"image"`
	Featured    bool    `gorm:"not null;default:false" json:"featured"`
	Rating      float64 `gorm:"not null;default:0" json:"rating"`
	Stock       int64   `gorm:"not null;default:100" json:"stock"`
}
