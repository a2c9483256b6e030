package chapters

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/thatboywest/elearningbackend/app/services"
	"github.com/thatboywest/elearningbackend/pkg/utils"
)

// Update handles PUT /api/chapters/:id. Every field is optional; absent
// fields and files leave the stored values untouched.
func (ctrl *Controller) Update(c *gin.Context) {
	chapterID, err := utils.StrToUint64(c.Param("id"))
	if err != nil {
		utils.ErrorResponse(c, 404, "Chapter not found", utils.ErrChapterNotExist)
		return
	}

	update := services.ChapterUpdate{
		Title:       c.PostForm("title"),
		Description: c.PostForm("description"),
	}

	if videoHeader, err := c.FormFile("video"); err == nil {
		video, videoFile, err := openAsset(videoHeader)
		if err != nil {
			utils.ErrorResponse(c, 400, "Error opening video file", utils.ErrBadRequest)
			return
		}
		defer videoFile.Close()
		update.Video = &video
	}

	if resourceHeader, err := c.FormFile("resource"); err == nil {
		resource, resourceFile, err := openAsset(resourceHeader)
		if err != nil {
			utils.ErrorResponse(c, 400, "Error opening resource file", utils.ErrBadRequest)
			return
		}
		defer resourceFile.Close()
		update.Resource = &resource
	}

	chapter, err := ctrl.chapters.Update(c.Request.Context(), chapterID, update)
	switch {
	case errors.Is(err, services.ErrChapterNotFound):
		utils.ErrorResponse(c, 404, "Chapter not found", utils.ErrChapterNotExist)
		return
	case errors.Is(err, services.ErrUploadFailed):
		utils.ErrorResponse(c, 400, err.Error(), utils.ErrUploadFailed)
		return
	case err != nil:
		utils.ErrorResponse(c, 400, err.Error(), utils.ErrSaveData)
		return
	}

	c.JSON(200, chapter)
}
