package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"eventstream/domain/model"
	"eventstream/infrastructure/logger"
	"eventstream/interfaces/middleware"
	"eventstream/usecase"
)

type IAdminUserHandler interface {
	Create(c *gin.Context)
	Update(c *gin.Context)
	Delete(c *gin.Context)
	List(c *gin.Context)
}

type AdminUserHandler struct {
	adminUserUsecase usecase.IAdminUserUsecase
}

func NewAdminUserHandler(adminUserUsecase usecase.IAdminUserUsecase) IAdminUserHandler {
	return &AdminUserHandler{adminUserUsecase: adminUserUsecase}
}

func (adminUserHandler *AdminUserHandler) Create(c *gin.Context) {
	claim, _ := middleware.Claims(c)
	var req model.ReqAdminCreateUser
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.GetLogger().WithField("error", err).Error(ErrorUnmarshal)
		badRequest(c, err)
		return
	}
	id, err := adminUserHandler.adminUserUsecase.Create(c.Request.Context(), req, claim.ID)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, model.OK("User created.", gin.H{"id": id}))
}

func (adminUserHandler *AdminUserHandler) Update(c *gin.Context) {
	claim, _ := middleware.Claims(c)
	var req model.ReqAdminUpdateUser
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.GetLogger().WithField("error", err).Error(ErrorUnmarshal)
		badRequest(c, err)
		return
	}
	if err := adminUserHandler.adminUserUsecase.Update(c.Request.Context(), c.Param("id"), req, claim.ID); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, model.OK("User updated.", nil))
}

func (adminUserHandler *AdminUserHandler) Delete(c *gin.Context) {
	claim, _ := middleware.Claims(c)
	if err := adminUserHandler.adminUserUsecase.Delete(c.Request.Context(), c.Param("id"), claim.ID); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, model.OK("User deactivated.", nil))
}

func (adminUserHandler *AdminUserHandler) List(c *gin.Context) {
	users, err := adminUserHandler.adminUserUsecase.List(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, model.OK("Users retrieved.", users))
}
