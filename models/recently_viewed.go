package models

import "time"

type RecentlyViewed struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID    uint      `gorm:"index;not null" json:"user_id"`
	ProductID uint      `gorm:"not null" json:"product_id"`
	Product   Product   `json:"product"`
	ViewedAt  time.Time `json:"viewed_at"`
}
