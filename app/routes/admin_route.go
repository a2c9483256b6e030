package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/thatboywest/elearningbackend/app/controllers/admin"
	"github.com/thatboywest/elearningbackend/pkg/middleware"
)

func AdminRoute(r *gin.RouterGroup, ctrl *admin.Controller, jwtSecret string) {
	adm := r.Group("/admin")
	adm.Use(middleware.IsAuthorized(jwtSecret))

	adm.POST("/reconcile", ctrl.Reconcile)
}
