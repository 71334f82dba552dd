package middleware

import (
	"fmt"
	"log/slog"
	"net/http"

	"workshop-site/internal/handler/httperr"
	"workshop-site/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

// ErrorHandler renders the last public error recorded by a handler that
// aborted without writing a body.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if c.Writer.Written() {
			return
		}
		for i := len(c.Errors) - 1; i >= 0; i-- {
			err := c.Errors[i]
			if !err.IsType(gin.ErrorTypePublic) {
				continue
			}
			if resp, ok := err.Meta.(httperr.Response); ok {
				c.JSON(resp.Status, resp)
				return
			}
		}
		if len(c.Errors) == 0 {
			return
		}

		resp := httperr.Response{Status: http.StatusInternalServerError}
		resp.Error.Message = "Internal server error"
		c.JSON(resp.Status, resp)
	}
}

// NotFound answers unmatched routes with the API error shape.
func NotFound() gin.HandlerFunc {
	return func(c *gin.Context) {
		resp := httperr.Response{Status: http.StatusNotFound}
		resp.Error.Message = "Route not found"
		c.AbortWithStatusJSON(resp.Status, resp)
	}
}

func CustomRecovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if rec := recover(); rec != nil {
				err := errs.Newf("panic: %v", rec)
				slog.Error("Recovered from panic",
					slog.String("request_id", GetRequestID(c)),
					slog.String("path", c.Request.URL.Path),
					slog.String("error", fmt.Sprint(rec)),
					slog.Any("stack", errs.ExtractStackLines(err, 12)))

				resp := httperr.Response{Status: http.StatusInternalServerError}
				resp.Error.Message = "Internal server error"
				c.AbortWithStatusJSON(resp.Status, resp)
			}
		}()
		c.Next()
	}
}
