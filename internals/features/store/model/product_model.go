package model

import (
	"time"

	"gorm.io/datatypes"
)

type Product struct {
	ProductID uint `gorm:"column:product_id;primaryKey;autoIncrement" json:"product_id"`

	ProductName        string         `gorm:"column:product_name;size:120;not null" json:"product_name"`
	ProductCategory    string         `gorm:"column:product_category;size:60;not null" json:"product_category"`
	ProductSizes       datatypes.JSON `gorm:"column:product_sizes" json:"product_sizes,omitempty"`
	ProductDescription *string        `gorm:"column:product_description" json:"product_description,omitempty"`
	ProductPrice       float64        `gorm:"column:product_price;type:numeric(12,2);not null" json:"product_price"`

	ProductImgURL *string `gorm:"column:product_img_url;size:512" json:"product_img_url,omitempty"`

	ProductCreatedAt time.Time `gorm:"column:product_created_at;autoCreateTime" json:"product_created_at"`
	ProductUpdatedAt time.Time `gorm:"column:product_updated_at;autoUpdateTime" json:"product_updated_at"`
}

func (Product) TableName() string { return "products" }

func (p *Product) AssetLocator() *string     { return p.ProductImgURL }
func (p *Product) SetAssetLocator(v *string) { p.ProductImgURL = v }
