package productcontroller

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/vishwaM3/AV-brands-website/middleware"
	"github.com/vishwaM3/AV-brands-website/models"
	"gorm.io/gorm"
)

type searchResult struct {
	ID    uint    `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
	Image string  `json:"image"`
	URL   string  `json:"url"`
}

// GET /search?q=
func InstantSearch(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		lang := middleware.Lang(c)
		q := c.Query("q")

		if len(q) < 2 {
			c.JSON(http.StatusOK, gin.H{"products": []searchResult{}, "message": ""})
			return
		}

		pattern := "%" + strings.ToLower(q) + "%"
		query := db.Where("is_active = ?", true)
		if lang == "kn" {
			query = query.Where("LOWER(name_kannada) LIKE ?", pattern)
		} else {
			query = query.Where("LOWER(name) LIKE ?", pattern)
		}

		var products []models.Product
		if err := query.Limit(10).Find(&products).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Search failed"})
			return
		}

		if len(products) == 0 {
			c.JSON(http.StatusOK, gin.H{
				"products": []searchResult{},
				"message":  "Item not available currently. It will be available within 2 days.",
			})
			return
		}

		results := make([]searchResult, 0, len(products))
		for _, p := range products {
			results = append(results, searchResult{
				ID:    p.ID,
				Name:  p.LocalizedName(lang),
				Price: p.FinalPrice(),
				Image: p.Image1,
				URL:   fmt.Sprintf("/product/%d", p.ID),
			})
		}

		c.JSON(http.StatusOK, gin.H{"products": results, "message": ""})
	}
}
