package models

import "time"

type Category struct {
	ID          uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string    `gorm:"uniqueIndex;size:50;not null" json:"name"`
	NameKannada string    `gorm:"size:50" json:"name_kannada"`
	Slug        string    `gorm:"uniqueIndex;size:50;not null" json:"slug"`
	Description string    `json:"description"`
	Image       string    `gorm:"size:200" json:"image"`
	IsActive    bool      `gorm:"default:true" json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`

	Products []Product `gorm:"foreignKey:CategoryID" json:"products,omitempty"`
}
