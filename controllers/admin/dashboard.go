package adminController

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/vishwaM3/AV-brands-website/models"
	"gorm.io/gorm"
)

// GET /admin
func Dashboard(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var totalUsers, totalOrders, totalProducts int64
		if err := db.Model(&models.User{}).Where("is_admin = ?", false).Count(&totalUsers).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load dashboard"})
			return
		}
		if err := db.Model(&models.Order{}).Count(&totalOrders).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load dashboard"})
			return
		}
		if err := db.Model(&models.Product{}).Count(&totalProducts).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load dashboard"})
			return
		}

		var totalRevenue float64
		if err := db.Model(&models.Order{}).
			Where("status != ?", models.OrderStatusCancelled).
			Select("COALESCE(SUM(total_amount), 0)").
			Scan(&totalRevenue).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load dashboard"})
			return
		}

		var recentOrders []models.Order
		if err := db.Preload("Items").Order("created_at DESC").Limit(10).
			Find(&recentOrders).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load dashboard"})
			return
		}

		var lowStock []models.Product
		if err := db.Where("stock < ? AND is_active = ?", 10, true).Limit(5).
			Find(&lowStock).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load dashboard"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"total_users":        totalUsers,
			"total_orders":       totalOrders,
			"total_products":     totalProducts,
			"total_revenue":      totalRevenue,
			"recent_orders":      recentOrders,
			"low_stock_products": lowStock,
		})
	}
}
