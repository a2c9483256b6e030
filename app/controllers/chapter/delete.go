package chapters

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/thatboywest/elearningbackend/app/services"
	"github.com/thatboywest/elearningbackend/pkg/utils"
)

// Delete handles DELETE /api/chapters/:id.
func (ctrl *Controller) Delete(c *gin.Context) {
	chapterID, err := utils.StrToUint64(c.Param("id"))
	if err != nil {
		utils.ErrorResponse(c, 404, "Chapter not found", utils.ErrChapterNotExist)
		return
	}

	err = ctrl.chapters.Delete(c.Request.Context(), chapterID)
	if errors.Is(err, services.ErrChapterNotFound) {
		utils.ErrorResponse(c, 404, "Chapter not found", utils.ErrChapterNotExist)
		return
	} else if err != nil {
		utils.ErrorResponse(c, 500, err.Error(), utils.ErrSaveData)
		return
	}

	utils.MessageResponse(c, 200, "Chapter deleted successfully")
}
