package middlewares

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Response is the envelope wrapping every JSON body the API writes.
type Response struct {
	Success bool                `json:"success"`
	Message string              `json:"message"`
	Data    interface{}         `json:"data,omitempty"`
	Errors  map[string][]string `json:"errors,omitempty"`
}

const (
	MessageOK               = "Request completed successfully"
	MessageValidationFailed = "Validation failed"
)

// RespondJSON writes a successful envelope.
func RespondJSON(c *gin.Context, status int, message string, data interface{}) {
	c.JSON(status, Response{Success: true, Message: message, Data: data})
}

// RespondCreated writes a 201 envelope and points Location at the new resource.
func RespondCreated(c *gin.Context, location string, data interface{}) {
	c.Header("Location", location)
	RespondJSON(c, http.StatusCreated, "Resource created successfully", data)
}

// RespondNoContent writes an empty 204.
func RespondNoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

// RespondValidation aborts with a 400 listing the failed fields.
func RespondValidation(c *gin.Context, errs map[string][]string) {
	c.AbortWithStatusJSON(http.StatusBadRequest, Response{
		Success: false,
		Message: MessageValidationFailed,
		Errors:  errs,
	})
}

// HttpError aborts the request with an error envelope.
func HttpError(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, Response{Success: false, Message: message})
}
