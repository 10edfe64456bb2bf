package models

import "time"

// Offer is a discount promotion. A nil ProductID means the offer applies
// store-wide.
type Offer struct {
	ID                 uint       `gorm:"primaryKey;autoIncrement" json:"id"`
	Title              string     `gorm:"size:200;not null" json:"title"`
	TitleKannada       string     `gorm:"size:200" json:"title_kannada"`
	Description        string     `json:"description"`
	DescriptionKannada string     `json:"description_kannada"`
	DiscountPercentage float64    `gorm:"default:0" json:"discount_percentage"`
	ProductID          *uint      `json:"product_id"`
	Product            *Product   `json:"product,omitempty"`
	IsActive           bool       `gorm:"default:true" json:"is_active"`
	StartDate          time.Time  `json:"start_date"`
	EndDate            *time.Time `json:"end_date"`
	CreatedAt          time.Time  `json:"created_at"`
}

// IsValid reports whether the offer currently applies. Expiry is evaluated
// lazily on every read; nothing persists an "expired" state.
func (o *Offer) IsValid() bool {
	if !o.IsActive {
		return false
	}
	if o.EndDate != nil && time.Now().After(*o.EndDate) {
		return false
	}
	return true
}
