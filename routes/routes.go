package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/vishwaM3/AV-brands-website/middleware"
	"gorm.io/gorm"
)

// SetupRoutes is the single entry-point that wires up the public, auth,
// user, and admin route groups.
func SetupRoutes(r *gin.Engine, db *gorm.DB) {
	// Language is resolved per request, never from ambient state
	r.Use(middleware.Language)

	SetupPublicRoutes(r, db)
	SetupAuthRoutes(r, db)
	SetupUserRoutes(r, db)
	SetupAdminRoutes(r, db)
}
