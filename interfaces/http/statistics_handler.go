package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"eventstream/domain/model"
	"eventstream/usecase"
)

type IStatisticsHandler interface {
	Users(c *gin.Context)
	Events(c *gin.Context)
	Views(c *gin.Context)
	Dashboard(c *gin.Context)
}

type StatisticsHandler struct {
	statisticsUsecase usecase.IStatisticsUsecase
}

func NewStatisticsHandler(statisticsUsecase usecase.IStatisticsUsecase) IStatisticsHandler {
	return &StatisticsHandler{statisticsUsecase: statisticsUsecase}
}

func (statisticsHandler *StatisticsHandler) Users(c *gin.Context) {
	stats, err := statisticsHandler.statisticsUsecase.UserStats(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, model.OK("User statistics retrieved.", stats))
}

func (statisticsHandler *StatisticsHandler) Events(c *gin.Context) {
	stats, err := statisticsHandler.statisticsUsecase.EventStats(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, model.OK("Event statistics retrieved.", stats))
}

func (statisticsHandler *StatisticsHandler) Views(c *gin.Context) {
	stats, err := statisticsHandler.statisticsUsecase.ViewStats(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, model.OK("View statistics retrieved.", stats))
}

func (statisticsHandler *StatisticsHandler) Dashboard(c *gin.Context) {
	stats, err := statisticsHandler.statisticsUsecase.Dashboard(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, model.OK("Dashboard statistics retrieved.", stats))
}
