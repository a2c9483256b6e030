package courses

import (
	"github.com/gin-gonic/gin"

	"github.com/thatboywest/elearningbackend/pkg/utils"
)

// createCourseRequest is the request body for creating a new course.
// The initial chapter list is optional and usually empty.
type createCourseRequest struct {
	Title    string   `json:"title"`
	Chapters []uint64 `json:"chapters"`
}

// Create handles POST /api/courses.
func (ctrl *Controller) Create(c *gin.Context) {
	var request createCourseRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.ErrorResponse(c, 400, err.Error(), utils.ErrBadRequest)
		return
	}

	course, err := ctrl.courses.Create(c.Request.Context(), request.Title, request.Chapters)
	if err != nil {
		utils.ErrorResponse(c, 400, err.Error(), utils.ErrSaveData)
		return
	}

	c.JSON(201, course)
}
