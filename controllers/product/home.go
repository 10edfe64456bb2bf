package productcontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/vishwaM3/AV-brands-website/models"
	"gorm.io/gorm"
)

// GET /
func Home(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var featured []models.Product
		if err := db.Where("is_active = ? AND is_featured = ?", true, true).
			Limit(8).Find(&featured).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load home page"})
			return
		}

		var trending []models.Product
		if err := db.Where("is_active = ?", true).
			Order("created_at DESC").Limit(8).Find(&trending).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load home page"})
			return
		}

		// Expiry is recomputed on every read, not persisted
		var offers []models.Offer
		if err := db.Where("is_active = ?", true).Preload("Product").Find(&offers).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load home page"})
			return
		}
		activeOffers := make([]models.Offer, 0, len(offers))
		for _, o := range offers {
			if o.IsValid() {
				activeOffers = append(activeOffers, o)
			}
		}

		var categories []models.Category
		if err := db.Where("is_active = ?", true).Find(&categories).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load home page"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"featured_products": featured,
			"trending_products": trending,
			"active_offers":     activeOffers,
			"categories":        categories,
		})
	}
}
