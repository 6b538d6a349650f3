package controller

import (
	"quiz_master_backend/internal/service"
	"quiz_master_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type DashboardController struct {
	Service *service.DashboardService
}

func NewDashboardController(svc *service.DashboardService) *DashboardController {
	return &DashboardController{Service: svc}
}

// @Summary Landing view for the current user
// @Description Catalog overview; admin totals for admins, past scores otherwise.
// @Tags dashboard
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=service.DashboardView}
// @Router /api/dashboard [get]
func (c *DashboardController) GetDashboard(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	view, err := c.Service.GetDashboard(claims)
	if err != nil {
		util.HandleServiceError(ctx, err)
		return
	}
	util.Success(ctx, view)
}
