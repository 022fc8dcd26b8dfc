package model

import "time"

// ProductType classifies catalog entries.
type ProductType string

const (
	ProductTypeBowl  ProductType = "bowl"
	ProductTypeSnack ProductType = "snack"
	ProductTypeCombo ProductType = "combo"
)

// Product is a catalog entry. Historical order items keep a denormalized
// name/price snapshot, so a product may be deleted without breaking orders.
type Product struct {
	ID          uint        `json:"id" gorm:"primaryKey"`
	Name        string      `json:"name" gorm:"size:255;not null;index"`
	BasePrice   int         `json:"base_price" gorm:"not null"` // integer currency units
	ImageURL    string      `json:"image_url" gorm:"size:512"`
	Description string      `json:"description" gorm:"size:1024"`
	Type        ProductType `json:"type" gorm:"size:20;index"`
	Kcal        int         `json:"kcal"`
	Protein     float64     `json:"protein"`
	Fat         float64     `json:"fat"`
	Carbs       float64     `json:"carbs"`
	Available   bool        `json:"available" gorm:"default:true;index"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`
}
