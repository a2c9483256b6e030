package admin

import (
	"github.com/gin-gonic/gin"

	"github.com/thatboywest/elearningbackend/app/services"
	"github.com/thatboywest/elearningbackend/pkg/utils"
)

// Controller exposes maintenance operations.
type Controller struct {
	reconciler *services.ReconcileService
}

func NewController(reconciler *services.ReconcileService) *Controller {
	return &Controller{reconciler: reconciler}
}

// Reconcile handles POST /api/admin/reconcile: one repair pass over the
// course/chapter linkage, returning what was fixed.
func (ctrl *Controller) Reconcile(c *gin.Context) {
	report, err := ctrl.reconciler.Run(c.Request.Context())
	if err != nil {
		utils.ErrorResponse(c, 500, err.Error(), utils.ErrSaveData)
		return
	}

	c.JSON(200, report)
}
