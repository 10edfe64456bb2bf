package productcontroller

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/vishwaM3/AV-brands-website/middleware"
	"github.com/vishwaM3/AV-brands-website/models"
	"gorm.io/gorm"
)

// GET /product/:id
func GetProductByID(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
			return
		}

		var product models.Product
		if err := db.Preload("Category").First(&product, id).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve product"})
			}
			return
		}

		inWishlist := false
		if userID, ok := middleware.CurrentUserID(c); ok {
			recordRecentlyViewed(db, userID, product.ID)

			var wish models.WishlistItem
			if err := db.Where("user_id = ? AND product_id = ?", userID, product.ID).
				First(&wish).Error; err == nil {
				inWishlist = true
			}
		}

		var related []models.Product
		if err := db.Where("category_id = ? AND id != ? AND is_active = ?",
			product.CategoryID, product.ID, true).Limit(4).Find(&related).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve product"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"product":          product,
			"related_products": related,
			"in_wishlist":      inWishlist,
		})
	}
}

// recordRecentlyViewed bumps the view timestamp or inserts a new row.
// A failure here never blocks the product page.
func recordRecentlyViewed(db *gorm.DB, userID, productID uint) {
	var viewed models.RecentlyViewed
	err := db.Where("user_id = ? AND product_id = ?", userID, productID).First(&viewed).Error
	if err == gorm.ErrRecordNotFound {
		db.Create(&models.RecentlyViewed{
			UserID:    userID,
			ProductID: productID,
			ViewedAt:  time.Now(),
		})
		return
	}
	if err == nil {
		db.Model(&viewed).Update("viewed_at", time.Now())
	}
}

// RecentProducts returns the user's last viewed active products, newest first
func RecentProducts(db *gorm.DB, userID uint, limit int) ([]models.Product, error) {
	var viewed []models.RecentlyViewed
	if err := db.Preload("Product").Where("user_id = ?", userID).
		Order("viewed_at DESC").Limit(limit).Find(&viewed).Error; err != nil {
		return nil, err
	}

	products := make([]models.Product, 0, len(viewed))
	for _, v := range viewed {
		if v.Product.ID != 0 && v.Product.IsActive {
			products = append(products, v.Product)
		}
	}
	return products, nil
}

// GET /recently_viewed
func GetRecentlyViewed(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.CurrentUserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Please login to access this page"})
			return
		}

		products, err := RecentProducts(db, userID, 8)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch recently viewed"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"products": products})
	}
}
