package controller

import (
	"quiz_master_backend/internal/service"
	"quiz_master_backend/internal/util"

	"github.com/gin-gonic/gin"
)

// CatalogController serves the admin subject/chapter management surface.
type CatalogController struct {
	Service *service.CatalogService
}

func NewCatalogController(svc *service.CatalogService) *CatalogController {
	return &CatalogController{Service: svc}
}

// @Summary List subjects
// @Tags catalog
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response
// @Router /api/admin/subjects [get]
func (c *CatalogController) ListSubjects(ctx *gin.Context) {
	subjects, err := c.Service.ListSubjects()
	if err != nil {
		util.HandleServiceError(ctx, err)
		return
	}
	util.Success(ctx, subjects)
}

// @Summary Create a subject
// @Tags catalog
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body service.SubjectRequest true "subject"
// @Success 201 {object} util.Response
// @Router /api/admin/subjects [post]
func (c *CatalogController) CreateSubject(ctx *gin.Context) {
	var req service.SubjectRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	subject, err := c.Service.CreateSubject(req)
	if err != nil {
		util.HandleServiceError(ctx, err)
		return
	}
	util.Created(ctx, subject)
}

// @Summary Update a subject
// @Tags catalog
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "subject ID"
// @Param body body service.SubjectRequest true "subject"
// @Success 200 {object} util.Response
// @Router /api/admin/subjects/{id} [put]
func (c *CatalogController) UpdateSubject(ctx *gin.Context) {
	var req service.SubjectRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	subject, err := c.Service.UpdateSubject(util.MustParseUint(ctx.Param("id")), req)
	if err != nil {
		util.HandleServiceError(ctx, err)
		return
	}
	util.Success(ctx, subject)
}

// @Summary Delete a subject and everything under it
// @Tags catalog
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "subject ID"
// @Success 200 {object} util.Response
// @Router /api/admin/subjects/{id} [delete]
func (c *CatalogController) DeleteSubject(ctx *gin.Context) {
	if err := c.Service.DeleteSubject(util.MustParseUint(ctx.Param("id"))); err != nil {
		util.HandleServiceError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}

// @Summary List chapters
// @Tags catalog
// @Produce json
// @Security ApiKeyAuth
// @Param subjectId query int false "filter by subject"
// @Success 200 {object} util.Response
// @Router /api/admin/chapters [get]
func (c *CatalogController) ListChapters(ctx *gin.Context) {
	chapters, err := c.Service.ListChapters(util.MustParseUint(ctx.Query("subjectId")))
	if err != nil {
		util.HandleServiceError(ctx, err)
		return
	}
	util.Success(ctx, chapters)
}

// @Summary Create a chapter under a subject
// @Tags catalog
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body service.ChapterRequest true "chapter"
// @Success 201 {object} util.Response
// @Router /api/admin/chapters [post]
func (c *CatalogController) CreateChapter(ctx *gin.Context) {
	var req service.ChapterRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	chapter, err := c.Service.CreateChapter(req)
	if err != nil {
		util.HandleServiceError(ctx, err)
		return
	}
	util.Created(ctx, chapter)
}

// @Summary Update a chapter
// @Tags catalog
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "chapter ID"
// @Param body body service.ChapterRequest true "chapter"
// @Success 200 {object} util.Response
// @Router /api/admin/chapters/{id} [put]
func (c *CatalogController) UpdateChapter(ctx *gin.Context) {
	var req service.ChapterRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	chapter, err := c.Service.UpdateChapter(util.MustParseUint(ctx.Param("id")), req)
	if err != nil {
		util.HandleServiceError(ctx, err)
		return
	}
	util.Success(ctx, chapter)
}

// @Summary Delete a chapter and everything under it
// @Tags catalog
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "chapter ID"
// @Success 200 {object} util.Response
// @Router /api/admin/chapters/{id} [delete]
func (c *CatalogController) DeleteChapter(ctx *gin.Context) {
	if err := c.Service.DeleteChapter(util.MustParseUint(ctx.Param("id"))); err != nil {
		util.HandleServiceError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}
