// Package response owns the JSON envelope every endpoint answers with.
package response

import (
	"github.com/gin-gonic/gin"
)

// Result is the envelope {success, message, result?, error?}.
type Result[T any] struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Result  *T     `json:"result,omitempty"`
	Error   any    `json:"error,omitempty"`
}

func Success[T any](message string, result T) Result[T] {
	return Result[T]{
		Success: true,
		Message: message,
		Result:  &result,
	}
}

func Failure(message string, detail any) Result[struct{}] {
	return Result[struct{}]{
		Success: false,
		Message: message,
		Error:   detail,
	}
}

func JSON[T any](c *gin.Context, status int, message string, result T) {
	c.JSON(status, Success(message, result))
}

func Abort(c *gin.Context, status int, message string, detail any) {
	c.AbortWithStatusJSON(status, Failure(message, detail))
}
