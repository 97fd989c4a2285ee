package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// HandleSuccess 200 with data; nil data is omitted, an empty list is kept.
func HandleSuccess(c *gin.Context, data interface{}, message string) {
	write(c, http.StatusOK, Response{Success: true, Data: data, Message: message})
}

// HandleCreated 201 carrying the stored user.
func HandleCreated(c *gin.Context, data interface{}, message string) {
	write(c, http.StatusCreated, Response{Success: true, Data: data, Message: message})
}
