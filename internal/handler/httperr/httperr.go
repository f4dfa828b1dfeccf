package httperr

import (
	"errors"

	"github.com/gin-gonic/gin"
)

type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message string `json:"message"`
		Code    string `json:"code,omitempty"`
	} `json:"error"`
	Detail    any    `json:"detail,omitempty"`
	RequestID string `json:"request_id,omitempty"`
}

// AbortWithError responds with msg and keeps err on the gin context for the
// logging middleware. A nil err is recorded as msg.
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	AbortWithCode(c, status, err, msg, "", detail)
}

func AbortWithCode(c *gin.Context, status int, err error, msg, code string, detail any) {
	if err == nil {
		err = errors.New(msg)
	}

	resp := Response{Status: status, Detail: detail}
	resp.Error.Message = msg
	resp.Error.Code = code
	if id, ok := c.Get("request_id"); ok {
		resp.RequestID, _ = id.(string)
	}

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}
