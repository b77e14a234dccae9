package middleware

import (
	"log/slog"
	"net/http"

	"gemstore/internal/handler/httperr"
	"gemstore/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

const stackLogLines = 12

// ErrorHandler turns errors recorded on the context into the JSON error
// envelope. The most recent public error wins; a 5xx that reaches the client
// also gets its stack logged.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if c.Writer.Written() {
			return
		}

		for i := len(c.Errors) - 1; i >= 0; i-- {
			ginErr := c.Errors[i]
			if !ginErr.IsType(gin.ErrorTypePublic) {
				continue
			}
			if resp, ok := ginErr.Meta.(httperr.Response); ok {
				if resp.Status >= http.StatusInternalServerError {
					slog.Error("request failed",
						"path", c.Request.URL.Path,
						"request_id", GetRequestID(c),
						"stack", errs.ExtractStackLines(ginErr.Err, stackLogLines),
					)
				}
				c.JSON(resp.Status, resp)
				return
			}
		}

		if status := c.Writer.Status(); status != http.StatusOK {
			c.Status(status)
			c.Writer.WriteHeaderNow()
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": gin.H{"message": "Internal server error"}})
	}
}

func CustomRecovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				slog.Error("recovered from panic",
					"error", err,
					"path", c.Request.URL.Path,
					"request_id", GetRequestID(c),
				)

				resp := httperr.Response{Status: http.StatusInternalServerError}
				resp.Error.Message = "Internal server error"

				c.JSON(http.StatusInternalServerError, resp)
				c.Abort()
			}
		}()
		c.Next()
	}
}
