package db

import (
	"storefront/internal/domain/model"

	"gorm.io/gorm"
)

// 初期カタログ。在庫はすべて100で始める。
var seedProducts = []model.Product{
	{ID: 1, Title: "Wireless Premium Headphones", Category: "Electronics", Subcategory: "Audio", Description: "Experience crystal-clear sound with active noise cancellation. 40-hour battery life and premium comfort.", PriceCents: 29999, Currency: "USD", Image: "https://images.unsplash.com/photo-1505740420928-5e560c06d30e?w=800&h=800&fit=crop&auto=format", Featured: true, Rating: 4.8, Stock: 100},
	{ID: 2, Title: "Minimalist Leather Backpack", Category: "Fashion", Subcategory: "Bags", Description: "Handcrafted genuine leather backpack with laptop compartment. Perfect for professionals and travelers.", PriceCents: 14999, Currency: "USD", Image: "https://images.unsplash.com/photo-1553062407-98eeb64c6a62?w=800&h=800&fit=crop&auto=format", Featured: false, Rating: 4.6, Stock: 100},
	{ID: 3, Title: "Smart Fitness Watch", Category: "Electronics", Subcategory: "Wearables", Description: "Track your health with precision. Heart rate monitoring, sleep tracking, and 50+ sport modes.", PriceCents: 19999, Currency: "USD", Image: "https://images.unsplash.com/photo-1523275335684-37898b6baf30?w=800&h=800&fit=crop&auto=format", Featured: true, Rating: 4.7, Stock: 100},
	{ID: 4, Title: "Artisan Coffee Maker", Category: "Home", Subcategory: "Kitchen", Description: "Brew barista-quality coffee at home. Precision temperature control and elegant stainless steel design.", PriceCents: 24999, Currency: "USD", Image: "https://images.unsplash.com/photo-1517668808822-9ebb02f2a0e6?w=800&h=800&fit=crop&auto=format", Featured: false, Rating: 4.9, Stock: 100},
	{ID: 5, Title: "Designer Ceramic Vase Set", Category: "Home", Subcategory: "Decor", Description: "Handmade ceramic vases in modern geometric shapes. Set of 3 pieces to elevate your home decor.", PriceCents: 8999, Currency: "USD", Image: "https://images.unsplash.com/photo-1578500494198-246f612d3b3d?w=800&h=800&fit=crop&auto=format", Featured: false, Rating: 4.5, Stock: 100},
	{ID: 6, Title: "Premium Yoga Mat", Category: "Sports", Subcategory: "Fitness", Description: "Non-slip, eco-friendly yoga mat with alignment guides. 6mm thickness for ultimate comfort.", PriceCents: 5999, Currency: "USD", Image: "https://images.unsplash.com/photo-1601925260368-ae2f83cf8b7f?w=800&h=800&fit=crop&auto=format", Featured: true, Rating: 4.7, Stock: 100},
	{ID: 7, Title: "Organic Cotton T-Shirt", Category: "Fashion", Subcategory: "Clothing", Description: "Soft, breathable organic cotton tee. Available in 8 colors with a perfect relaxed fit.", PriceCents: 3499, Currency: "USD", Image: "https://images.unsplash.com/photo-1521572163474-6864f9cf17ab?w=800&h=800&fit=crop&auto=format", Featured: false, Rating: 4.6, Stock: 100},
	{ID: 8, Title: "Portable Bluetooth Speaker", Category: "Electronics", Subcategory: "Audio", Description: "Waterproof portable speaker with 360° sound. 20-hour battery and rugged outdoor design.", PriceCents: 7999, Currency: "USD", Image: "https://images.unsplash.com/photo-1608043152269-423dbba4e7e1?w=800&h=800&fit=crop&auto=format", Featured: false, Rating: 4.4, Stock: 100},
}

// Seed はproductsが空のときだけ初期データを入れる。何度呼んでも安全。
func Seed(gormDB *gorm.DB) error {
	var count int64
	if err := gormDB.Model(&model.Product{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	return gormDB.Transaction(func(tx *gorm.DB) error {
		return tx.Create(&seedProducts).Error
	})
}
