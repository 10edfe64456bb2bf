package models

import "time"

// CartItem is one product variant in a user's cart. At most one row exists
// per (user, product, size, color) key; re-adding the same variant bumps
// the quantity instead.
type CartItem struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID    uint      `gorm:"index;not null" json:"user_id"`
	ProductID uint      `gorm:"not null" json:"product_id"`
	Product   Product   `json:"product"`
	Quantity  int       `gorm:"default:1" json:"quantity"`
	Size      string    `gorm:"size:10" json:"size"`
	Color     string    `gorm:"size:50" json:"color"`
	CreatedAt time.Time `json:"created_at"`
}

// TotalPrice is the line total at the product's current final price
func (ci *CartItem) TotalPrice() float64 {
	return ci.Product.FinalPrice() * float64(ci.Quantity)
}
