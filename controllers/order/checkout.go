package orderControllers

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/vishwaM3/AV-brands-website/middleware"
	"github.com/vishwaM3/AV-brands-website/models"
	"gorm.io/gorm"
)

var ErrEmptyCart = errors.New("cart is empty")

// CheckoutRequest carries the shipping form. Fields default-populate from
// the profile on the GET side but can be overridden per order.
type CheckoutRequest struct {
	ShippingName    string `json:"shipping_name" form:"shipping_name" binding:"required,max=100"`
	ShippingPhone   string `json:"shipping_phone" form:"shipping_phone" binding:"required,min=10,max=20"`
	ShippingAddress string `json:"shipping_address" form:"shipping_address" binding:"required"`
	ShippingCity    string `json:"shipping_city" form:"shipping_city" binding:"required,max=100"`
	ShippingState   string `json:"shipping_state" form:"shipping_state" binding:"required,max=100"`
	ShippingPincode string `json:"shipping_pincode" form:"shipping_pincode" binding:"required,max=10"`
	PaymentMethod   string `json:"payment_method" form:"payment_method" binding:"required,oneof=cod card"`
	Notes           string `json:"notes" form:"notes"`
}

// generateOrderNumber builds the human-readable order id. Two orders by the
// same user within one second collide; uniqueness is only probabilistic.
func generateOrderNumber(userID uint) string {
	return fmt.Sprintf("AV%s%d", time.Now().Format("20060102150405"), userID)
}

// -------- Core Logic --------

// PlaceOrder converts the user's cart into an order as one unit: total and
// item prices are frozen from the products' final prices at this moment,
// stock is decremented per item where sufficient, and the cart is cleared.
// If the commit fails nothing is applied and the cart stays intact.
func PlaceOrder(db *gorm.DB, userID uint, req CheckoutRequest) (*models.Order, error) {
	var cartItems []models.CartItem
	if err := db.Preload("Product").Where("user_id = ?", userID).Find(&cartItems).Error; err != nil {
		return nil, err
	}
	if len(cartItems) == 0 {
		return nil, ErrEmptyCart
	}

	var order models.Order
	err := db.Transaction(func(tx *gorm.DB) error {
		var total float64
		var orderItems []models.OrderItem
		for _, item := range cartItems {
			price := item.Product.FinalPrice()
			total += price * float64(item.Quantity)
			orderItems = append(orderItems, models.OrderItem{
				ProductID: item.ProductID,
				Quantity:  item.Quantity,
				Price:     price,
				Size:      item.Size,
				Color:     item.Color,
			})
		}

		order = models.Order{
			UserID:          userID,
			OrderNumber:     generateOrderNumber(userID),
			TotalAmount:     total,
			Status:          models.OrderStatusPending,
			PaymentStatus:   models.PaymentStatusPending,
			ShippingName:    req.ShippingName,
			ShippingPhone:   req.ShippingPhone,
			ShippingAddress: req.ShippingAddress,
			ShippingCity:    req.ShippingCity,
			ShippingState:   req.ShippingState,
			ShippingPincode: req.ShippingPincode,
			PaymentMethod:   req.PaymentMethod,
			Notes:           req.Notes,
			Items:           orderItems,
		}
		if err := tx.Create(&order).Error; err != nil {
			return err
		}

		// Conditional decrement: when stock is short the update matches no
		// row and the item is still ordered. Oversell is tolerated here.
		for _, item := range cartItems {
			if err := tx.Model(&models.Product{}).
				Where("id = ? AND stock >= ?", item.ProductID, item.Quantity).
				UpdateColumn("stock", gorm.Expr("stock - ?", item.Quantity)).Error; err != nil {
				return err
			}
		}

		return tx.Where("user_id = ?", userID).Delete(&models.CartItem{}).Error
	})
	if err != nil {
		return nil, err
	}

	broadcastNewOrder(order)
	return &order, nil
}

// -------- Handlers --------

// GET /checkout — cart summary plus shipping defaults from the profile
func CheckoutPage(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, _ := middleware.CurrentUserID(c)

		var cartItems []models.CartItem
		if err := db.Preload("Product").Where("user_id = ?", userID).Find(&cartItems).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart"})
			return
		}
		if len(cartItems) == 0 {
			c.Redirect(http.StatusFound, "/shop")
			return
		}

		var user models.User
		if err := db.First(&user, userID).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch profile"})
			return
		}

		var total float64
		for i := range cartItems {
			total += cartItems[i].TotalPrice()
		}

		c.JSON(http.StatusOK, gin.H{
			"items": cartItems,
			"total": total,
			"shipping_defaults": CheckoutRequest{
				ShippingName:    user.Username,
				ShippingPhone:   user.Phone,
				ShippingAddress: user.Address,
				ShippingCity:    user.City,
				ShippingState:   user.State,
				ShippingPincode: user.Pincode,
			},
		})
	}
}

// POST /checkout
func Checkout(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, _ := middleware.CurrentUserID(c)

		var req CheckoutRequest
		if err := c.ShouldBind(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		order, err := PlaceOrder(db, userID, req)
		if err == ErrEmptyCart {
			c.Redirect(http.StatusFound, "/shop")
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to place order"})
			return
		}

		c.JSON(http.StatusCreated, gin.H{
			"message":      "Order placed successfully! Order number: " + order.OrderNumber,
			"order_id":     order.ID,
			"order_number": order.OrderNumber,
		})
	}
}

// GET /order_confirmation/:id
func OrderConfirmation(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, _ := middleware.CurrentUserID(c)

		var order models.Order
		if err := db.Preload("Items").Preload("Items.Product").First(&order, c.Param("id")).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
			return
		}
		if order.UserID != userID {
			c.Redirect(http.StatusFound, "/")
			return
		}

		c.JSON(http.StatusOK, order)
	}
}
