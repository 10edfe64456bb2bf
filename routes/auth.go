package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/vishwaM3/AV-brands-website/auth"
	"gorm.io/gorm"
)

// SetupAuthRoutes registers signup/login/logout.
func SetupAuthRoutes(r *gin.Engine, db *gorm.DB) {
	r.POST("/signup", auth.SignupHandler(db))
	r.POST("/login", auth.LoginHandler(db))
	r.GET("/logout", auth.LogoutHandler)
}
