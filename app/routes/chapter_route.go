package routes

import (
	"github.com/gin-gonic/gin"

	chapters "github.com/thatboywest/elearningbackend/app/controllers/chapter"
	"github.com/thatboywest/elearningbackend/pkg/middleware"
)

func ChapterRoute(r *gin.RouterGroup, ctrl *chapters.Controller, jwtSecret string) {
	chapter := r.Group("/chapters")

	chapter.POST("", ctrl.Create)
	chapter.DELETE("/:id", ctrl.Delete)

	chapter.GET("", middleware.IsAuthorized(jwtSecret), ctrl.List)
	chapter.PUT("/:id", middleware.IsAuthorized(jwtSecret), ctrl.Update)
}
