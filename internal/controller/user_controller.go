package controller

import (
	"quiz_master_backend/internal/service"
	"quiz_master_backend/internal/util"

	"github.com/gin-gonic/gin"
)

// UserController serves the admin user-management surface.
type UserController struct {
	Service *service.UserService
}

func NewUserController(svc *service.UserService) *UserController {
	return &UserController{Service: svc}
}

// @Summary List users, admins first
// @Tags users
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response
// @Router /api/admin/users [get]
func (c *UserController) ListUsers(ctx *gin.Context) {
	users, err := c.Service.ListUsers()
	if err != nil {
		util.HandleServiceError(ctx, err)
		return
	}
	util.Success(ctx, users)
}

// @Summary Edit a user
// @Description Admin rows cannot be edited by another admin or downgraded.
// @Tags users
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "user ID"
// @Param body body service.UpdateUserRequest true "user fields"
// @Success 200 {object} util.Response
// @Failure 403 {object} util.Response
// @Router /api/admin/users/{id} [put]
func (c *UserController) UpdateUser(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req service.UpdateUserRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	user, err := c.Service.UpdateUser(claims.UserID, util.MustParseUint(ctx.Param("id")), req)
	if err != nil {
		util.HandleServiceError(ctx, err)
		return
	}
	util.Success(ctx, user)
}

// @Summary Delete a non-admin user and their scores
// @Tags users
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "user ID"
// @Success 200 {object} util.Response
// @Failure 403 {object} util.Response
// @Router /api/admin/users/{id} [delete]
func (c *UserController) DeleteUser(ctx *gin.Context) {
	if err := c.Service.DeleteUser(util.MustParseUint(ctx.Param("id"))); err != nil {
		util.HandleServiceError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}
