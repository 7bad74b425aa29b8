package httperr

import (
	"github.com/gin-gonic/gin"
)

// Error kinds reported in response bodies
const (
	KindValidation        = "VALIDATION_ERROR"
	KindUnauthenticated   = "UNAUTHENTICATED"
	KindForbidden         = "FORBIDDEN"
	KindNotFound          = "NOT_FOUND"
	KindConflict          = "CONFLICT"
	KindNotImplemented    = "NOT_IMPLEMENTED"
	KindInternal          = "INTERNAL_FAILURE"
	KindInvalidRange      = "INVALID_RANGE"
	KindRoomNotFound      = "ROOM_NOT_FOUND"
	KindRoomHotelMismatch = "ROOM_HOTEL_MISMATCH"
	KindRoomUnavailable   = "ROOM_UNAVAILABLE"
	KindStoreConflict     = "STORE_CONFLICT"
)

type Response struct {
	Status int `json:"status"`
	Error  struct {
		Kind    string `json:"kind"`
		Message string `json:"message"`
	} `json:"error"`
	Message string `json:"message"`
	Detail  any    `json:"detail,omitempty"`
}

func NewResponse(status int, kind, msg string, detail any) Response {
	resp := Response{Status: status, Message: msg, Detail: detail}
	resp.Error.Kind = kind
	resp.Error.Message = msg
	return resp
}

// preserves original error for future monitoring
func AbortWithError(c *gin.Context, status int, err error, kind, msg string, detail any) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := NewResponse(status, kind, msg, detail)

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}
