package middleware

import (
	"fmt"
	"log/slog"
	"net/http"

	"villa-booking/internal/handler/httperr"
	"villa-booking/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

const internalErrorMessage = "Internal server error"

// ErrorHandler writes a body for handlers that recorded an error but never responded.
// The newest public error wins; anything else becomes a generic 500.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if c.Writer.Written() || len(c.Errors) == 0 {
			return
		}

		for i := len(c.Errors) - 1; i >= 0; i-- {
			if resp, ok := c.Errors[i].Meta.(httperr.Response); ok && c.Errors[i].IsType(gin.ErrorTypePublic) {
				c.JSON(resp.Status, resp)
				return
			}
		}

		slog.Error("Unhandled request error",
			slog.String("request_id", GetRequestID(c)),
			slog.String("path", c.FullPath()),
			slog.String("error", c.Errors.Last().Error()))
		writeInternalError(c)
	}
}

// CustomRecovery turns a handler panic into a 500 and logs the top of its stack.
func CustomRecovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			err, ok := rec.(error)
			if !ok {
				err = fmt.Errorf("%v", rec)
			}
			err = errs.WithStack(err)

			slog.Error("Recovered from panic",
				slog.String("request_id", GetRequestID(c)),
				slog.String("method", c.Request.Method),
				slog.String("path", c.Request.URL.Path),
				slog.String("error", err.Error()),
				slog.Any("stack", errs.ExtractStackLines(err, 12)))
			writeInternalError(c)
		}()
		c.Next()
	}
}

func writeInternalError(c *gin.Context) {
	resp := httperr.Response{Status: http.StatusInternalServerError}
	resp.Error.Message = internalErrorMessage
	c.AbortWithStatusJSON(resp.Status, resp)
}
