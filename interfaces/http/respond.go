package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"eventstream/domain/apperr"
	"eventstream/domain/model"
)

const ErrorUnmarshal = "Error while unmarshal"

// fail writes the error envelope with the status the error carries. Anything
// that is not an *apperr.Error is an internal fault and stays opaque to the
// client.
func fail(c *gin.Context, err error) {
	var ae *apperr.Error
	if errors.As(err, &ae) {
		c.JSON(ae.StatusCode, model.Err(ae.Message))
		return
	}
	c.JSON(http.StatusInternalServerError, model.Err("Internal server error."))
}

func badRequest(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, model.Err(ErrorUnmarshal+": "+err.Error()))
}
