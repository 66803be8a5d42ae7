package shared

import (
	"github.com/gin-gonic/gin"
)

// GenericAPIResponse defines the structure of all responses on API endpoints
type GenericAPIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Message string      `json:"message,omitempty"`
	Code    int         `json:"code,omitempty"`
}

// NewSuccessResponse returns a successful response wrapping the provided payload
func NewSuccessResponse(data interface{}) GenericAPIResponse {
	return GenericAPIResponse{
		Success: true,
		Data:    data,
	}
}

// NewErrorResponse returns a failed response with the provided message and HTTP status code
func NewErrorResponse(status int, message string) GenericAPIResponse {
	return GenericAPIResponse{
		Success: false,
		Message: message,
		Code:    status,
	}
}

// RespondWithSuccess writes a successful response with the provided status and payload
func RespondWithSuccess(c *gin.Context, status int, data interface{}) {
	c.JSON(status, NewSuccessResponse(data))
}

// RespondWithError writes a failed response with the provided status and message
func RespondWithError(c *gin.Context, status int, message string) {
	c.JSON(status, NewErrorResponse(status, message))
}

// AbortWithError aborts the request chain and writes a failed response
func AbortWithError(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, NewErrorResponse(status, message))
}

// EndpointHandlerData holds the items needed for creating a new gin HTTP endpoint
type EndpointHandlerData struct {
	Path                  string
	Method                string
	Handler               gin.HandlerFunc
	AdditionalMiddlewares []AdditionalMiddleware
}

// AdditionalMiddleware holds the data needed for adding a middleware to an API endpoint
type AdditionalMiddleware struct {
	Middleware gin.HandlerFunc
	Before     bool
}
