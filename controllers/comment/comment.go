package commentControllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/vishwaM3/AV-brands-website/middleware"
	"github.com/vishwaM3/AV-brands-website/models"
	"gorm.io/gorm"
)

type CommentInput struct {
	CommentType string `json:"comment_type" form:"comment_type" binding:"required,oneof=request suggestion feedback"`
	Subject     string `json:"subject" form:"subject" binding:"max=200"`
	Message     string `json:"message" form:"message" binding:"required,min=10,max=1000"`
}

type RespondInput struct {
	Response string `json:"response" form:"response" binding:"required"`
}

// GET /comments — the user's own comments, newest first
func GetUserComments(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, _ := middleware.CurrentUserID(c)

		var comments []models.Comment
		if err := db.Where("user_id = ?", userID).Order("created_at DESC").
			Find(&comments).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch comments"})
			return
		}
		c.JSON(http.StatusOK, comments)
	}
}

// POST /comments
func CreateComment(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, _ := middleware.CurrentUserID(c)

		var input CommentInput
		if err := c.ShouldBind(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		comment := models.Comment{
			UserID:      userID,
			CommentType: input.CommentType,
			Subject:     input.Subject,
			Message:     input.Message,
		}
		if err := db.Create(&comment).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to submit comment"})
			return
		}

		c.JSON(http.StatusCreated, gin.H{"message": "Your message has been submitted!", "comment": comment})
	}
}

// GET /admin/comments
func GetAllComments(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var comments []models.Comment
		if err := db.Preload("User").Order("created_at DESC").Find(&comments).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch comments"})
			return
		}
		c.JSON(http.StatusOK, comments)
	}
}

// POST /admin/comments/:id/respond
func RespondComment(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		adminID, _ := middleware.CurrentUserID(c)

		var input RespondInput
		if err := c.ShouldBind(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		var comment models.Comment
		if err := db.First(&comment, c.Param("id")).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Comment not found"})
			return
		}

		now := time.Now()
		updates := map[string]interface{}{
			"admin_response": input.Response,
			"is_answered":    true,
			"responded_by":   adminID,
			"responded_at":   now,
		}
		if err := db.Model(&comment).Updates(updates).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to submit response"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Response submitted!"})
	}
}
