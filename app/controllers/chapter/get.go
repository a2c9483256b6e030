package chapters

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/thatboywest/elearningbackend/app/services"
	"github.com/thatboywest/elearningbackend/pkg/utils"
)

// List handles GET /api/chapters?course=ID. A course with no chapters is
// an empty list, not an error; only a missing course is 404.
func (ctrl *Controller) List(c *gin.Context) {
	courseID, err := utils.StrToUint64(c.Query("course"))
	if err != nil {
		utils.ErrorResponse(c, 400, "Missing or invalid course query parameter", utils.ErrBadRequest)
		return
	}

	chapters, err := ctrl.chapters.ListForCourse(c.Request.Context(), courseID)
	if errors.Is(err, services.ErrCourseNotFound) {
		utils.ErrorResponse(c, 404, "Course not found", utils.ErrCourseNotExist)
		return
	} else if err != nil {
		utils.ErrorResponse(c, 500, err.Error(), utils.ErrGetData)
		return
	}

	c.JSON(200, chapters)
}
