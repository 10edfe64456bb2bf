package models

import "time"

const (
	CommentTypeRequest    = "request"
	CommentTypeSuggestion = "suggestion"
	CommentTypeFeedback   = "feedback"
)

type Comment struct {
	ID            uint       `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID        uint       `gorm:"index;not null" json:"user_id"`
	User          User       `json:"user,omitempty"`
	CommentType   string     `gorm:"size:50;not null" json:"comment_type"`
	Subject       string     `gorm:"size:200" json:"subject"`
	Message       string     `gorm:"not null" json:"message"`
	IsAnswered    bool       `gorm:"default:false" json:"is_answered"`
	AdminResponse string     `json:"admin_response"`
	RespondedBy   *uint      `json:"responded_by"`
	RespondedAt   *time.Time `json:"responded_at"`
	CreatedAt     time.Time  `json:"created_at"`
}
