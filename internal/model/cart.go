package model

import "time"

// Cart is the per-user staging area for prospective purchases. Exactly one
// cart exists per user; it is created lazily on first access.
type Cart struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    uint      `json:"user_id" gorm:"uniqueIndex;not null"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Relations
	Items []CartItem `json:"items,omitempty" gorm:"foreignKey:CartID;constraint:OnDelete:CASCADE"`
}

// CartItem is a single cart line. Plain lines (no personalization, no custom
// price) are merged by incrementing quantity; customized lines always get
// their own row.
type CartItem struct {
	ID              uint      `json:"id" gorm:"primaryKey"`
	CartID          uint      `json:"cart_id" gorm:"not null;index"`
	ProductID       uint      `json:"product_id" gorm:"not null;index"`
	Quantity        int       `json:"quantity" gorm:"not null;default:1"`
	Personalization *string   `json:"personalization,omitempty" gorm:"type:text"`
	CustomPrice     *int      `json:"custom_price,omitempty"` // overrides base price when set
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`

	// Relations
	Product Product `json:"product" gorm:"foreignKey:ProductID"`
}

// IsCustom reports whether the line bypasses quantity merging.
func (i *CartItem) IsCustom() bool {
	return (i.Personalization != nil && *i.Personalization != "") || i.CustomPrice != nil
}

// EffectiveUnitPrice is the custom price when set, the product base price
// otherwise. Product must be preloaded.
func (i *CartItem) EffectiveUnitPrice() int {
	if i.CustomPrice != nil {
		return *i.CustomPrice
	}
	return i.Product.BasePrice
}
