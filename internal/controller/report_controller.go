package controller

import (
	"quiz_master_backend/internal/service"
	"quiz_master_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type ReportController struct {
	Service *service.ReportService
}

func NewReportController(svc *service.ReportService) *ReportController {
	return &ReportController{Service: svc}
}

// @Summary Score reports with aggregate statistics
// @Tags reports
// @Produce json
// @Security ApiKeyAuth
// @Param subjectId query int false "filter by subject"
// @Param userId query int false "filter by user"
// @Success 200 {object} util.Response{data=service.ReportView}
// @Router /api/admin/reports [get]
func (c *ReportController) GetReports(ctx *gin.Context) {
	view, err := c.Service.GetReports(
		ctx.Request.Context(),
		util.MustParseUint(ctx.Query("subjectId")),
		util.MustParseUint(ctx.Query("userId")),
	)
	if err != nil {
		util.HandleServiceError(ctx, err)
		return
	}
	util.Success(ctx, view)
}
