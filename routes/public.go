package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	cartControllers "github.com/vishwaM3/AV-brands-website/controllers/cart"
	productcontroller "github.com/vishwaM3/AV-brands-website/controllers/product"
	userControllers "github.com/vishwaM3/AV-brands-website/controllers/user"
	"github.com/vishwaM3/AV-brands-website/middleware"
	"gorm.io/gorm"
)

// SetupPublicRoutes registers the storefront pages that need no login.
// Product detail and the cart page take an optional token so they can
// personalise for logged-in visitors.
func SetupPublicRoutes(r *gin.Engine, db *gorm.DB) {
	r.GET("/", productcontroller.Home(db))
	r.GET("/__ping", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})

	r.GET("/shop", productcontroller.Shop(db))
	r.GET("/shop/:slug", productcontroller.Shop(db))
	r.GET("/search", productcontroller.InstantSearch(db))
	r.GET("/product/:id", middleware.OptionalToken, productcontroller.GetProductByID(db))
	r.GET("/cart", middleware.OptionalToken, cartControllers.GetCart(db))

	r.GET("/set_language/:lang", userControllers.SetLanguage)
}
