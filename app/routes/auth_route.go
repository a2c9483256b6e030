package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/thatboywest/elearningbackend/app/controllers"
)

func AuthRoute(r *gin.RouterGroup, ctrl *controllers.AuthController) {
	auth := r.Group("/auth")

	auth.POST("/signup", ctrl.Signup)
	auth.POST("/login", ctrl.Login)
}
