package productcontroller

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/vishwaM3/AV-brands-website/models"
	"gorm.io/gorm"
)

func uploadRoot() string {
	if dir := os.Getenv("UPLOAD_DIR"); dir != "" {
		return dir
	}
	return "./uploads"
}

// saveImage stores an optional uploaded file under a uuid filename and
// returns its public URL, or "" when the field is absent.
func saveImage(c *gin.Context, field, subdir string) (string, error) {
	file, err := c.FormFile(field)
	if err != nil {
		return "", nil
	}

	filename := uuid.NewString() + filepath.Ext(file.Filename)
	saveDir := filepath.Join(uploadRoot(), subdir)
	if err := os.MkdirAll(saveDir, os.ModePerm); err != nil {
		return "", err
	}
	if err := c.SaveUploadedFile(file, filepath.Join(saveDir, filename)); err != nil {
		return "", err
	}
	return fmt.Sprintf("/uploads/%s/%s", subdir, filename), nil
}

// splitList turns "S, M, L" into ["S","M","L"]
func splitList(raw string) []string {
	if raw == "" {
		return []string{}
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// POST /admin/products
func CreateProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
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

		var categoryID uint
		if v := c.PostForm("category_id"); v != "" {
			cid, parseErr := strconv.ParseUint(v, 10, 64)
			if parseErr != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid category_id"})
				return
			}
			var category models.Category
			if err := db.First(&category, uint(cid)).Error; err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Category does not exist"})
				return
			}
			categoryID = uint(cid)
		}

		image1, err := saveImage(c, "image1", "products")
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save image"})
			return
		}
		image2, _ := saveImage(c, "image2", "products")
		image3, _ := saveImage(c, "image3", "products")
		if image1 == "" {
			image1 = "product_placeholder.jpg"
		}

		product := models.Product{
			Name:               name,
			NameKannada:        c.PostForm("name_kannada"),
			Description:        c.PostForm("description"),
			DescriptionKannada: c.PostForm("description_kannada"),
			Price:              price,
			DiscountPrice:      discountPrice,
			CategoryID:         categoryID,
			Sizes:              splitList(c.PostForm("sizes")),
			Colors:             splitList(c.PostForm("colors")),
			Stock:              stock,
			Image1:             image1,
			Image2:             image2,
			Image3:             image3,
			IsActive:           c.DefaultPostForm("is_active", "true") == "true",
			IsFeatured:         c.PostForm("is_featured") == "true",
		}

		if err := db.Create(&product).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create product"})
			return
		}

		c.JSON(http.StatusCreated, product)
	}
}
