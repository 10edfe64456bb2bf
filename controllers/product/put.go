package productcontroller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/vishwaM3/AV-brands-website/models"
	"gorm.io/gorm"
)

// PUT /admin/products/:id
// The admin edit form posts every field, so all of them are written back.
func UpdateProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var product models.Product
		if err := db.First(&product, c.Param("id")).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}

		name := c.PostForm("name")
		priceStr := c.PostForm("price")
		stockStr := c.PostForm("stock")
		if name == "" || priceStr == "" || stockStr == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "name, price and stock are required"})
			return
		}

		price, err := strconv.ParseFloat(priceStr, 64)
		if err != nil || price < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid price"})
			return
		}
		stock, err := strconv.Atoi(stockStr)
		if err != nil || stock < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid stock"})
			return
		}

		var discountPrice *float64
		if v := c.PostForm("discount_price"); v != "" {
			dp, parseErr := strconv.ParseFloat(v, 64)
			if parseErr != nil || dp < 0 {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid discount_price"})
				return
			}
			discountPrice = &dp
		}

		if v := c.PostForm("category_id"); v != "" {
			cid, parseErr := strconv.ParseUint(v, 10, 64)
			if parseErr != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid category_id"})
				return
			}
			product.CategoryID = uint(cid)
		}

		if image1, _ := saveImage(c, "image1", "products"); image1 != "" {
			product.Image1 = image1
		}
		if image2, _ := saveImage(c, "image2", "products"); image2 != "" {
			product.Image2 = image2
		}
		if image3, _ := saveImage(c, "image3", "products"); image3 != "" {
			product.Image3 = image3
		}

		product.Name = name
		product.NameKannada = c.PostForm("name_kannada")
		product.Description = c.PostForm("description")
		product.DescriptionKannada = c.PostForm("description_kannada")
		product.Price = price
		product.DiscountPrice = discountPrice
		product.Sizes = splitList(c.PostForm("sizes"))
		product.Colors = splitList(c.PostForm("colors"))
		product.Stock = stock
		product.IsActive = c.DefaultPostForm("is_active", "true") == "true"
		product.IsFeatured = c.PostForm("is_featured") == "true"

		if err := db.Save(&product).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update product"})
			return
		}

		c.JSON(http.StatusOK, product)
	}
}
