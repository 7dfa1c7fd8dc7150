package response

import (
	"github.com/gin-gonic/gin"
)

// ErrorBody is the error shape every endpoint returns.
type ErrorBody struct {
	Error   string `json:"error"`
	Detail  any    `json:"detail,omitempty"`
	Success bool   `json:"success"`
}

// Message is the confirmation shape for operations without a record payload.
type Message struct {
	Message string `json:"message"`
	Success bool   `json:"success"`
}

func JSON(c *gin.Context, status int, payload any) {
	c.JSON(status, payload)
}

func Error(c *gin.Context, status int, message string, detail any) {
	c.JSON(status, ErrorBody{
		Error:   message,
		Detail:  detail,
		Success: false,
	})
}
