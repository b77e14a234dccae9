package httperr

import (
	"github.com/gin-gonic/gin"
)

type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message string `json:"message"`
	} `json:"error"`
}

// AbortWithError records the original error on the gin context for the
// logging middleware and responds with the public message only. err may be
// nil when the rejection has no underlying cause (authorization checks).
func AbortWithError(c *gin.Context, status int, err error, msg string) {
	resp := Response{Status: status}
	resp.Error.Message = msg

	if err != nil {
		_ = c.Error(gin.Error{
			Err:  err,
			Type: gin.ErrorTypePublic,
			Meta: resp,
		})
	}
	c.AbortWithStatusJSON(status, resp)
}
