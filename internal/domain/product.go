package domain

import "time"

// Product is a catalog item shown on the public storefront and managed in the
// back office. Price keeps the legacy pre-formatted currency string
// ("Rp 15.000"); arithmetic goes through the money package.
type Product struct {
	ID          int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string    `gorm:"index" json:"name" form:"name"`
	Price       string    `gorm:"size:64" json:"price" form:"price"`
	Category    string    `gorm:"size:128" json:"category" form:"category"`
	ImageURL    string    `gorm:"size:1024;column:image_url" json:"image_url" form:"image_url"`
	Description string    `json:"description" form:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (Product) TableName() string {
	return "products"
}
