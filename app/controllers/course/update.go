package courses

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/thatboywest/elearningbackend/app/services"
	"github.com/thatboywest/elearningbackend/pkg/utils"
)

// updateCourseRequest edits the title only; chapters are managed through
// the chapter endpoints.
type updateCourseRequest struct {
	Title string `json:"title"`
}

// Update handles PUT /api/courses/:id.
func (ctrl *Controller) Update(c *gin.Context) {
	courseID, err := utils.StrToUint64(c.Param("id"))
	if err != nil {
		utils.ErrorResponse(c, 404, "Course not found", utils.ErrCourseNotExist)
		return
	}

	var request updateCourseRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.ErrorResponse(c, 400, err.Error(), utils.ErrBadRequest)
		return
	}

	course, err := ctrl.courses.UpdateTitle(c.Request.Context(), courseID, request.Title)
	if errors.Is(err, services.ErrCourseNotFound) {
		utils.ErrorResponse(c, 404, "Course not found", utils.ErrCourseNotExist)
		return
	} else if err != nil {
		utils.ErrorResponse(c, 400, err.Error(), utils.ErrSaveData)
		return
	}

	c.JSON(200, course)
}
