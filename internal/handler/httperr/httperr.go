package httperr

import (
	"vip-discount/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

const requestIDKey = "request_id"

type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message string `json:"message"`
		Hint    string `json:"hint,omitempty"`
	} `json:"error"`
	RequestID string `json:"requestId,omitempty"`
	Detail    any    `json:"detail,omitempty"`
}

func NewResponse(c *gin.Context, status int, err error, msg string, detail any) Response {
	resp := Response{Status: status, Detail: detail}
	resp.Error.Message = msg
	resp.Error.Hint = errs.Hint(err)
	resp.RequestID = c.GetString(requestIDKey)
	return resp
}

// preserves original error for the logging middleware
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := NewResponse(c, status, err, msg, detail)

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}
