package courses

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/thatboywest/elearningbackend/app/services"
	"github.com/thatboywest/elearningbackend/pkg/utils"
)

// Delete handles DELETE /api/courses/:id. Every referenced chapter goes
// with the course.
func (ctrl *Controller) Delete(c *gin.Context) {
	courseID, err := utils.StrToUint64(c.Param("id"))
	if err != nil {
		utils.ErrorResponse(c, 404, "Course not found", utils.ErrCourseNotExist)
		return
	}

	err = ctrl.courses.Delete(c.Request.Context(), courseID)
	if errors.Is(err, services.ErrCourseNotFound) {
		utils.ErrorResponse(c, 404, "Course not found", utils.ErrCourseNotExist)
		return
	} else if err != nil {
		utils.ErrorResponse(c, 500, err.Error(), utils.ErrSaveData)
		return
	}

	utils.MessageResponse(c, 200, "Course and associated chapters deleted successfully")
}
