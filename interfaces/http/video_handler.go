package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"eventstream/domain/model"
	"eventstream/infrastructure/logger"
	"eventstream/interfaces/middleware"
	"eventstream/usecase"
)

type IVideoHandler interface {
	Create(c *gin.Context)
	Get(c *gin.Context)
	List(c *gin.Context)
	Update(c *gin.Context)
	Delete(c *gin.Context)
}

type VideoHandler struct {
	videoUsecase usecase.IVideoUsecase
}

func NewVideoHandler(videoUsecase usecase.IVideoUsecase) IVideoHandler {
	return &VideoHandler{videoUsecase: videoUsecase}
}

func (videoHandler *VideoHandler) Create(c *gin.Context) {
	claim, _ := middleware.Claims(c)
	var req model.ReqCreateVideo
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.GetLogger().WithField("error", err).Error(ErrorUnmarshal)
		badRequest(c, err)
		return
	}
	id, err := videoHandler.videoUsecase.Create(c.Request.Context(), req, claim.ID)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, model.OK("Video created.", gin.H{"id": id}))
}

func (videoHandler *VideoHandler) Get(c *gin.Context) {
	video, err := videoHandler.videoUsecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, model.OK("Video retrieved.", video))
}

func (videoHandler *VideoHandler) List(c *gin.Context) {
	videos, err := videoHandler.videoUsecase.List(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, model.OK("Videos retrieved.", videos))
}

func (videoHandler *VideoHandler) Update(c *gin.Context) {
	claim, _ := middleware.Claims(c)
	var patch model.VideoPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		logger.GetLogger().WithField("error", err).Error(ErrorUnmarshal)
		badRequest(c, err)
		return
	}
	if err := videoHandler.videoUsecase.Update(c.Request.Context(), c.Param("id"), patch, claim.ID); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, model.OK("Video updated.", nil))
}

func (videoHandler *VideoHandler) Delete(c *gin.Context) {
	claim, _ := middleware.Claims(c)
	if err := videoHandler.videoUsecase.Delete(c.Request.Context(), c.Param("id"), claim.ID); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, model.OK("Video archived.", nil))
}
