package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"eventstream/domain/model"
	"eventstream/infrastructure/logger"
	"eventstream/infrastructure/metrics"
	"eventstream/usecase"
)

type IAuthHandler interface {
	Register(c *gin.Context)
	Login(c *gin.Context)
}

type AuthHandler struct {
	authUsecase usecase.IAuthUsecase
}

func NewAuthHandler(authUsecase usecase.IAuthUsecase) IAuthHandler {
	return &AuthHandler{authUsecase: authUsecase}
}

func (authHandler *AuthHandler) Register(c *gin.Context) {
	var req model.ReqRegister
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.GetLogger().WithField("error", err).Error(ErrorUnmarshal)
		badRequest(c, err)
		return
	}

	id, err := authHandler.authUsecase.Register(c.Request.Context(), req)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, model.OK("Account created.", gin.H{"id": id}))
}

func (authHandler *AuthHandler) Login(c *gin.Context) {
	var req model.ReqLogin
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.GetLogger().WithField("error", err).Error(ErrorUnmarshal)
		badRequest(c, err)
		return
	}

	token, err := authHandler.authUsecase.Login(c.Request.Context(), req)
	if err != nil {
		metrics.LoginsTotal.WithLabelValues("failure").Inc()
		fail(c, err)
		return
	}
	metrics.LoginsTotal.WithLabelValues("success").Inc()
	c.JSON(http.StatusOK, model.OK("Login successful.", gin.H{"token": token}))
}
