package chapters

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/thatboywest/elearningbackend/app/services"
	"github.com/thatboywest/elearningbackend/pkg/utils"
)

// createChapterRequest is the multipart form for creating a chapter; the
// video and resource files ride alongside it.
type createChapterRequest struct {
	CourseID    uint64 `form:"courseId" binding:"required"`
	Title       string `form:"title" binding:"required"`
	Description string `form:"description" binding:"required"`
}

// Create handles POST /api/chapters.
func (ctrl *Controller) Create(c *gin.Context) {
	var request createChapterRequest
	if err := c.ShouldBind(&request); err != nil {
		utils.ErrorResponse(c, 400, err.Error(), utils.ErrBadRequest)
		return
	}

	videoHeader, err := c.FormFile("video")
	if err != nil {
		utils.ErrorResponse(c, 400, "Video file required", utils.ErrVideoRequired)
		return
	}
	resourceHeader, err := c.FormFile("resource")
	if err != nil {
		utils.ErrorResponse(c, 400, "Resource file required", utils.ErrResourceRequired)
		return
	}

	video, videoFile, err := openAsset(videoHeader)
	if err != nil {
		utils.ErrorResponse(c, 400, "Error opening video file", utils.ErrBadRequest)
		return
	}
	defer videoFile.Close()

	resource, resourceFile, err := openAsset(resourceHeader)
	if err != nil {
		utils.ErrorResponse(c, 400, "Error opening resource file", utils.ErrBadRequest)
		return
	}
	defer resourceFile.Close()

	chapter, err := ctrl.chapters.Create(c.Request.Context(), request.CourseID, request.Title, request.Description, video, resource)
	switch {
	case errors.Is(err, services.ErrCourseNotFound):
		utils.ErrorResponse(c, 404, "Course not found", utils.ErrCourseNotExist)
		return
	case errors.Is(err, services.ErrUploadFailed):
		utils.ErrorResponse(c, 400, err.Error(), utils.ErrUploadFailed)
		return
	case err != nil:
		utils.ErrorResponse(c, 400, err.Error(), utils.ErrSaveData)
		return
	}

	c.JSON(201, chapter)
}
