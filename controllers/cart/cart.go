package cartControllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/vishwaM3/AV-brands-website/middleware"
	"github.com/vishwaM3/AV-brands-website/models"
	"gorm.io/gorm"
)

// -------- Core Logic --------

// AddItem adds a product variant to the user's cart. Re-adding the exact
// (product, size, color) key bumps the existing row's quantity instead of
// creating a second row. Quantity is not capped against stock here.
func AddItem(db *gorm.DB, userID, productID uint, quantity int, size, color string) (models.CartItem, error) {
	if quantity < 1 {
		quantity = 1
	}

	var product models.Product
	if err := db.First(&product, productID).Error; err != nil {
		return models.CartItem{}, err
	}

	var item models.CartItem
	err := db.Where("user_id = ? AND product_id = ? AND size = ? AND color = ?",
		userID, productID, size, color).First(&item).Error
	if err == gorm.ErrRecordNotFound {
		item = models.CartItem{
			UserID:    userID,
			ProductID: productID,
			Quantity:  quantity,
			Size:      size,
			Color:     color,
		}
		if err := db.Create(&item).Error; err != nil {
			return models.CartItem{}, err
		}
		item.Product = product
		return item, nil
	}
	if err != nil {
		return models.CartItem{}, err
	}

	item.Quantity += quantity
	if err := db.Save(&item).Error; err != nil {
		return models.CartItem{}, err
	}
	item.Product = product
	return item, nil
}

// SetQuantity updates a cart row, deleting it when the quantity drops to zero
func SetQuantity(db *gorm.DB, item *models.CartItem, quantity int) error {
	if quantity > 0 {
		return db.Model(item).Update("quantity", quantity).Error
	}
	return db.Delete(item).Error
}

// -------- Handlers --------

// GET /cart
func GetCart(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.CurrentUserID(c)
		if !ok {
			// Cart page is public; anonymous visitors just see an empty cart
			c.JSON(http.StatusOK, gin.H{"items": []models.CartItem{}, "cart_count": 0, "cart_total": 0.0})
			return
		}

		var items []models.CartItem
		if err := db.Preload("Product").Where("user_id = ?", userID).Find(&items).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart"})
			return
		}

		var total float64
		for i := range items {
			total += items[i].TotalPrice()
		}

		c.JSON(http.StatusOK, gin.H{"items": items, "cart_count": len(items), "cart_total": total})
	}
}

// POST /add_to_cart
func AddToCart(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, _ := middleware.CurrentUserID(c)

		productID, err := strconv.ParseUint(c.PostForm("product_id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product_id"})
			return
		}
		quantity := 1
		if v := c.PostForm("quantity"); v != "" {
			if quantity, err = strconv.Atoi(v); err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid quantity"})
				return
			}
		}

		item, err := AddItem(db, userID, uint(productID), quantity, c.PostForm("size"), c.PostForm("color"))
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add item to cart"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Added " + item.Product.Name + " to cart!", "item": item})
	}
}

// POST /update_cart/:id
func UpdateCart(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, _ := middleware.CurrentUserID(c)

		var item models.CartItem
		if err := db.First(&item, c.Param("id")).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Cart item not found"})
			return
		}

		// Another user's entry: silent no-op, back to the cart page
		if item.UserID != userID {
			c.Redirect(http.StatusFound, "/cart")
			return
		}

		quantity, err := strconv.Atoi(c.DefaultPostForm("quantity", "1"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid quantity"})
			return
		}

		if err := SetQuantity(db, &item, quantity); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update cart"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Cart updated!"})
	}
}

// GET /remove_from_cart/:id
func RemoveFromCart(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, _ := middleware.CurrentUserID(c)

		var item models.CartItem
		if err := db.First(&item, c.Param("id")).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Cart item not found"})
			return
		}
		if item.UserID != userID {
			c.Redirect(http.StatusFound, "/cart")
			return
		}

		if err := db.Delete(&item).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to remove item"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Item removed from cart!"})
	}
}
