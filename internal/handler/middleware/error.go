package middleware

import (
	"fmt"
	"log/slog"
	"net/http"

	"vip-discount/internal/handler/httperr"
	"vip-discount/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if c.Writer.Written() {
			return
		}
		// Search backward through the error stack
		for i := len(c.Errors) - 1; i >= 0; i-- {
			err := c.Errors[i]

			if err.IsType(gin.ErrorTypePublic) {
				// Public: Meta ⇒ Return as is
				if resp, ok := err.Meta.(httperr.Response); ok {
					c.JSON(resp.Status, resp)
					return
				}
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
			if rec := recover(); rec != nil {
				err := errs.New(fmt.Sprint(rec))
				slog.Error("recovered from panic",
					"error", rec,
					"path", c.Request.URL.Path,
					"request_id", GetRequestID(c),
					"stack", errs.ExtractStackLines(err, 12),
				)

				resp := httperr.NewResponse(c, http.StatusInternalServerError, err, "Internal server error", nil)
				resp.Error.Hint = ""

				c.JSON(http.StatusInternalServerError, resp)
				c.Abort()
			}
		}()
		c.Next()
	}
}
