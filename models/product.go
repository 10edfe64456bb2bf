package models

import "time"

type Product struct {
	ID                 uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Name               string    `gorm:"size:200;not null" json:"name"`
	NameKannada        string    `gorm:"size:200" json:"name_kannada"`
	Description        string    `json:"description"`
	DescriptionKannada string    `json:"description_kannada"`
	Price              float64   `gorm:"not null" json:"price"`
	DiscountPrice      *float64  `json:"discount_price"`
	CategoryID         uint      `gorm:"index" json:"category_id"`
	Category           Category  `json:"category,omitempty"`
	Sizes              []string  `gorm:"serializer:json" json:"sizes"`
	Colors             []string  `gorm:"serializer:json" json:"colors"`
	Stock              int       `gorm:"default:0" json:"stock"`
	Image1             string    `gorm:"size:200" json:"image1"`
	Image2             string    `gorm:"size:200" json:"image2"`
	Image3             string    `gorm:"size:200" json:"image3"`
	IsActive           bool      `gorm:"default:true" json:"is_active"`
	IsFeatured         bool      `gorm:"default:false" json:"is_featured"`
	CreatedAt          time.Time `json:"created_at"`
}

// FinalPrice returns the price after discount
func (p *Product) FinalPrice() float64 {
	if p.DiscountPrice != nil {
		return *p.DiscountPrice
	}
	return p.Price
}

// DiscountPercentage returns the discount as a whole percentage of the base price
func (p *Product) DiscountPercentage() int {
	if p.DiscountPrice == nil || p.Price <= 0 {
		return 0
	}
	return int(((p.Price - *p.DiscountPrice) / p.Price) * 100)
}

func (p *Product) InStock() bool {
	return p.Stock > 0
}

// LocalizedName returns the Kannada name when lang is "kn" and one is set
func (p *Product) LocalizedName(lang string) string {
	if lang == "kn" && p.NameKannada != "" {
		return p.NameKannada
	}
	return p.Name
}

// HasSize reports whether the product is offered in the given size
func (p *Product) HasSize(size string) bool {
	for _, s := range p.Sizes {
		if s == size {
			return true
		}
	}
	return false
}

// HasColor reports whether the product is offered in the given color
func (p *Product) HasColor(color string) bool {
	for _, c := range p.Colors {
		if c == color {
			return true
		}
	}
	return false
}
