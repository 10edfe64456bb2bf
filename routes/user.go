package routes

import (
	"github.com/gin-gonic/gin"
	cartControllers "github.com/vishwaM3/AV-brands-website/controllers/cart"
	commentControllers "github.com/vishwaM3/AV-brands-website/controllers/comment"
	orderControllers "github.com/vishwaM3/AV-brands-website/controllers/order"
	productcontroller "github.com/vishwaM3/AV-brands-website/controllers/product"
	userControllers "github.com/vishwaM3/AV-brands-website/controllers/user"
	"github.com/vishwaM3/AV-brands-website/middleware"
	"gorm.io/gorm"
)

// SetupUserRoutes registers everything that requires a logged-in customer.
func SetupUserRoutes(r *gin.Engine, db *gorm.DB) {
	g := r.Group("")
	g.Use(middleware.ValidateToken)
	{
		// ──────────────── Profile ────────────────
		g.GET("/profile", userControllers.GetProfile(db))
		g.PUT("/profile", userControllers.UpdateProfile(db))

		// ──────────────── Cart ────────────────
		g.POST("/add_to_cart", cartControllers.AddToCart(db))
		g.POST("/update_cart/:id", cartControllers.UpdateCart(db))
		g.GET("/remove_from_cart/:id", cartControllers.RemoveFromCart(db))

		// ──────────────── Wishlist ────────────────
		g.GET("/wishlist", cartControllers.GetWishlist(db))
		g.GET("/add_to_wishlist/:product_id", cartControllers.ToggleWishlist(db))
		g.GET("/remove_from_wishlist/:id", cartControllers.RemoveFromWishlist(db))

		// ──────────────── Checkout & Orders ────────────────
		g.GET("/checkout", orderControllers.CheckoutPage(db))
		g.POST("/checkout", orderControllers.Checkout(db))
		g.GET("/order_confirmation/:id", orderControllers.OrderConfirmation(db))
		g.GET("/orders", orderControllers.GetUserOrders(db))
		g.GET("/order/:id", orderControllers.GetOrderByID(db))

		// ──────────────── Comments & History ────────────────
		g.GET("/comments", commentControllers.GetUserComments(db))
		g.POST("/comments", commentControllers.CreateComment(db))
		g.GET("/recently_viewed", productcontroller.GetRecentlyViewed(db))
	}
}
