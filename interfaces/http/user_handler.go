package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"eventstream/domain/model"
	"eventstream/infrastructure/logger"
	"eventstream/interfaces/middleware"
	"eventstream/usecase"
)

type IUserHandler interface {
	GetProfile(c *gin.Context)
	UpdateProfile(c *gin.Context)
	Deactivate(c *gin.Context)
	Play(c *gin.Context)
	WatchHistory(c *gin.Context)
	Events(c *gin.Context)
}

type UserHandler struct {
	userUsecase     usecase.IUserUsecase
	playbackUsecase usecase.IPlaybackUsecase
	eventUsecase    usecase.IEventUsecase
}

func NewUserHandler(userUsecase usecase.IUserUsecase, playbackUsecase usecase.IPlaybackUsecase, eventUsecase usecase.IEventUsecase) IUserHandler {
	return &UserHandler{
		userUsecase:     userUsecase,
		playbackUsecase: playbackUsecase,
		eventUsecase:    eventUsecase,
	}
}

// owner guards the /users/:id routes: a user reaches only their own
// resources, an admin reaches anyone's.
func owner(c *gin.Context) (string, bool) {
	claim, ok := middleware.Claims(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, model.Err("Authentication required."))
		return "", false
	}
	id := c.Param("id")
	if claim.ID != id && claim.Role != model.RoleAdmin {
		c.JSON(http.StatusForbidden, model.Err("You can only access your own account."))
		return "", false
	}
	return id, true
}

func (userHandler *UserHandler) GetProfile(c *gin.Context) {
	id, ok := owner(c)
	if !ok {
		return
	}
	profile, err := userHandler.userUsecase.GetProfile(c.Request.Context(), id)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, model.OK("Profile retrieved.", profile))
}

func (userHandler *UserHandler) UpdateProfile(c *gin.Context) {
	id, ok := owner(c)
	if !ok {
		return
	}
	var req model.ReqUpdateProfile
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.GetLogger().WithField("error", err).Error(ErrorUnmarshal)
		badRequest(c, err)
		return
	}
	if err := userHandler.userUsecase.UpdateProfile(c.Request.Context(), id, req); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, model.OK("Profile updated.", nil))
}

func (userHandler *UserHandler) Deactivate(c *gin.Context) {
	id, ok := owner(c)
	if !ok {
		return
	}
	if err := userHandler.userUsecase.Deactivate(c.Request.Context(), id); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, model.OK("Account deactivated.", nil))
}

func (userHandler *UserHandler) Play(c *gin.Context) {
	claim, ok := middleware.Claims(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, model.Err("Authentication required."))
		return
	}
	result, err := userHandler.playbackUsecase.StartPlayback(c.Request.Context(), c.Param("videoId"), claim.ID)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, model.OK("Playback started.", result))
}

func (userHandler *UserHandler) WatchHistory(c *gin.Context) {
	claim, ok := middleware.Claims(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, model.Err("Authentication required."))
		return
	}
	entries, err := userHandler.playbackUsecase.WatchHistory(c.Request.Context(), claim.ID)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, model.OK("Watch history retrieved.", entries))
}

func (userHandler *UserHandler) Events(c *gin.Context) {
	events, err := userHandler.eventUsecase.List(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, model.OK("Events retrieved.", events))
}
