package courses

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/thatboywest/elearningbackend/app/services"
	"github.com/thatboywest/elearningbackend/pkg/utils"
)

// List handles GET /api/courses, chapters populated.
func (ctrl *Controller) List(c *gin.Context) {
	populated, err := ctrl.courses.List(c.Request.Context())
	if err != nil {
		utils.ErrorResponse(c, 500, err.Error(), utils.ErrGetData)
		return
	}

	c.JSON(200, populated)
}

// Get handles GET /api/courses/:id, chapters populated.
func (ctrl *Controller) Get(c *gin.Context) {
	courseID, err := utils.StrToUint64(c.Param("id"))
	if err != nil {
		utils.ErrorResponse(c, 404, "Course not found", utils.ErrCourseNotExist)
		return
	}

	course, err := ctrl.courses.Get(c.Request.Context(), courseID)
	if errors.Is(err, services.ErrCourseNotFound) {
		utils.ErrorResponse(c, 404, "Course not found", utils.ErrCourseNotExist)
		return
	} else if err != nil {
		utils.ErrorResponse(c, 500, err.Error(), utils.ErrGetData)
		return
	}

	c.JSON(200, course)
}
