package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"eventstream/domain/model"
	"eventstream/infrastructure/logger"
	"eventstream/interfaces/middleware"
	"eventstream/usecase"
)

type IEventHandler interface {
	Create(c *gin.Context)
	Get(c *gin.Context)
	List(c *gin.Context)
	Update(c *gin.Context)
	Delete(c *gin.Context)
}

type EventHandler struct {
	eventUsecase usecase.IEventUsecase
}

func NewEventHandler(eventUsecase usecase.IEventUsecase) IEventHandler {
	return &EventHandler{eventUsecase: eventUsecase}
}

func (eventHandler *EventHandler) Create(c *gin.Context) {
	claim, _ := middleware.Claims(c)
	var req model.ReqCreateEvent
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.GetLogger().WithField("error", err).Error(ErrorUnmarshal)
		badRequest(c, err)
		return
	}
	id, err := eventHandler.eventUsecase.Create(c.Request.Context(), req, claim.ID)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, model.OK("Event created.", gin.H{"id": id}))
}

func (eventHandler *EventHandler) Get(c *gin.Context) {
	event, err := eventHandler.eventUsecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, model.OK("Event retrieved.", event))
}

func (eventHandler *EventHandler) List(c *gin.Context) {
	events, err := eventHandler.eventUsecase.List(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, model.OK("Events retrieved.", events))
}

func (eventHandler *EventHandler) Update(c *gin.Context) {
	claim, _ := middleware.Claims(c)
	var patch model.EventPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		logger.GetLogger().WithField("error", err).Error(ErrorUnmarshal)
		badRequest(c, err)
		return
	}
	if err := eventHandler.eventUsecase.Update(c.Request.Context(), c.Param("id"), patch, claim.ID); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, model.OK("Event updated.", nil))
}

func (eventHandler *EventHandler) Delete(c *gin.Context) {
	claim, _ := middleware.Claims(c)
	if err := eventHandler.eventUsecase.Delete(c.Request.Context(), c.Param("id"), claim.ID); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, model.OK("Event cancelled.", nil))
}
