package routes

import (
	"github.com/gin-gonic/gin"

	courses "github.com/thatboywest/elearningbackend/app/controllers/course"
)

func CourseRoute(r *gin.RouterGroup, ctrl *courses.Controller) {
	course := r.Group("/courses")

	course.POST("", ctrl.Create)
	course.GET("", ctrl.List)
	course.GET("/:id", ctrl.Get)
	course.PUT("/:id", ctrl.Update)
	course.DELETE("/:id", ctrl.Delete)
}
