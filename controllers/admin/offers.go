package adminController

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/vishwaM3/AV-brands-website/models"
	"gorm.io/gorm"
)

type OfferInput struct {
	Title              string     `json:"title" binding:"required,max=200"`
	TitleKannada       string     `json:"title_kannada" binding:"max=200"`
	Description        string     `json:"description"`
	DescriptionKannada string     `json:"description_kannada"`
	DiscountPercentage float64    `json:"discount_percentage" binding:"required,gte=0,lte=100"`
	ProductID          *uint      `json:"product_id"`
	EndDate            *time.Time `json:"end_date"`
	IsActive           *bool      `json:"is_active"`
}

// GET /admin/offers
func GetOffers(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var offers []models.Offer
		if err := db.Preload("Product").Order("created_at DESC").Find(&offers).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch offers"})
			return
		}

		// Validity is recomputed per read, never stored
		type offerWithValidity struct {
			models.Offer
			IsValid bool `json:"is_valid"`
		}
		out := make([]offerWithValidity, 0, len(offers))
		for _, o := range offers {
			out = append(out, offerWithValidity{Offer: o, IsValid: o.IsValid()})
		}

		c.JSON(http.StatusOK, out)
	}
}

// POST /admin/offers
func CreateOffer(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input OfferInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		// product_id 0 or absent means the offer is store-wide
		if input.ProductID != nil && *input.ProductID != 0 {
			var product models.Product
			if err := db.First(&product, *input.ProductID).Error; err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Product does not exist"})
				return
			}
		} else {
			input.ProductID = nil
		}

		isActive := true
		if input.IsActive != nil {
			isActive = *input.IsActive
		}

		offer := models.Offer{
			Title:              input.Title,
			TitleKannada:       input.TitleKannada,
			Description:        input.Description,
			DescriptionKannada: input.DescriptionKannada,
			DiscountPercentage: input.DiscountPercentage,
			ProductID:          input.ProductID,
			IsActive:           isActive,
			StartDate:          time.Now(),
			EndDate:            input.EndDate,
		}
		if err := db.Create(&offer).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create offer"})
			return
		}

		c.JSON(http.StatusCreated, offer)
	}
}

// DELETE /admin/offers/:id
func DeleteOffer(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var offer models.Offer
		if err := db.First(&offer, c.Param("id")).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Offer not found"})
			return
		}

		if err := db.Delete(&offer).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete offer"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Offer deleted successfully"})
	}
}
