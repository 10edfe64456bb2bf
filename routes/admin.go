package routes

import (
	"github.com/gin-gonic/gin"
	adminController "github.com/vishwaM3/AV-brands-website/controllers/admin"
	commentControllers "github.com/vishwaM3/AV-brands-website/controllers/comment"
	orderControllers "github.com/vishwaM3/AV-brands-website/controllers/order"
	productcontroller "github.com/vishwaM3/AV-brands-website/controllers/product"
	userControllers "github.com/vishwaM3/AV-brands-website/controllers/user"
	"github.com/vishwaM3/AV-brands-website/middleware"
	"gorm.io/gorm"
)

// SetupAdminRoutes registers all "/admin/*" endpoints. The admin gate runs
// in middleware, before any handler logic.
func SetupAdminRoutes(r *gin.Engine, db *gorm.DB) {
	adminGroup := r.Group("/admin")
	adminGroup.Use(middleware.ValidateToken, middleware.RequireAdmin(db))
	{
		adminGroup.GET("", adminController.Dashboard(db))
		adminGroup.GET("/users", userControllers.GetAllUsers(db))

		// ─────────── Product Management ───────────
		productAdmin := adminGroup.Group("/products")
		{
			productAdmin.GET("", productcontroller.AdminGetProducts(db))
			productAdmin.POST("", productcontroller.CreateProduct(db))
			productAdmin.PUT("/:id", productcontroller.UpdateProduct(db))
			productAdmin.DELETE("/:id", productcontroller.DeleteProduct(db))
			productAdmin.GET("/export-excel", productcontroller.ExportProductsToExcel(db))
		}

		// ─────────── Category Management ───────────
		categoryAdmin := adminGroup.Group("/categories")
		{
			categoryAdmin.GET("", productcontroller.GetAllCategories(db))
			categoryAdmin.POST("", productcontroller.CreateCategory(db))
			categoryAdmin.PUT("/:id", productcontroller.UpdateCategory(db))
			categoryAdmin.DELETE("/:id", productcontroller.DeleteCategory(db))
		}

		// ─────────── Order Management ───────────
		orderAdmin := adminGroup.Group("/orders")
		{
			orderAdmin.GET("", orderControllers.GetAllOrders(db))
			orderAdmin.GET("/ws", orderControllers.OrderFeedHandler)
			orderAdmin.GET("/export-excel", orderControllers.ExportOrdersToExcel(db))
			orderAdmin.POST("/:id/status", orderControllers.UpdateOrderStatus(db))
			orderAdmin.POST("/:id/payment-status", orderControllers.UpdatePaymentStatus(db))
		}

		// ─────────── Offers ───────────
		offerAdmin := adminGroup.Group("/offers")
		{
			offerAdmin.GET("", adminController.GetOffers(db))
			offerAdmin.POST("", adminController.CreateOffer(db))
			offerAdmin.DELETE("/:id", adminController.DeleteOffer(db))
		}

		// ─────────── Comments ───────────
		commentAdmin := adminGroup.Group("/comments")
		{
			commentAdmin.GET("", commentControllers.GetAllComments(db))
			commentAdmin.POST("/:id/respond", commentControllers.RespondComment(db))
		}
	}
}
