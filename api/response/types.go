/*
Package response writes the JSON envelope shared by every user directory
endpoint. HTTP status mapping happens only here.

	ok:     {"success": true, "data": {...}, "message": "...", "code": 200, "request_id": "..."}
	failed: {"success": false, "error": "USER_NOT_FOUND", "message": "User with email a@x.com not found", "code": 404, "request_id": "..."}

Domain messages (validation summaries, not found, already exists, not
updated) are returned verbatim. INTERNAL_ERROR hides the cause, which is only
logged.
*/
package response

import "github.com/gin-gonic/gin"

// RequestIDKey gin context key holding the request id
const RequestIDKey = "request_id"

type Response struct {
	Success   bool        `json:"success"`
	Data      interface{} `json:"data,omitempty"`
	Error     string      `json:"error,omitempty"`
	Code      int         `json:"code"`
	Message   string      `json:"message"`
	RequestID string      `json:"request_id,omitempty"`
}

// GetRequestID the id set by the request id middleware, or "".
func GetRequestID(c *gin.Context) string {
	if id, ok := c.Get(RequestIDKey); ok {
		if s, ok := id.(string); ok {
			return s
		}
	}
	return ""
}

// write stamps status and request id on body and sends it.
func write(c *gin.Context, status int, body Response) {
	body.Code = status
	body.RequestID = GetRequestID(c)
	c.JSON(status, &body)
}
