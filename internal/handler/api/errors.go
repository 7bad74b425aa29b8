package api

import (
	"errors"
	"net/http"

	reqdto "github.com/arjitrawat15/Stavia/internal/handler/dto/request"
	"github.com/arjitrawat15/Stavia/internal/handler/httperr"

	"github.com/gin-gonic/gin"
)

type errorMapping struct {
	target  error
	status  int
	kind    string
	message string
}

// abortWithMapped writes the first mapping err matches, or a 500.
func abortWithMapped(c *gin.Context, err error, mappings []errorMapping) {
	for _, m := range mappings {
		if errors.Is(err, m.target) {
			httperr.AbortWithError(c, m.status, err, m.kind, m.message, nil)
			return
		}
	}
	httperr.AbortWithError(c, http.StatusInternalServerError, err, httperr.KindInternal, "Internal server error", nil)
}

// abortInvalidRequest omits detail when there are no field errors, as for
// malformed JSON.
func abortInvalidRequest(c *gin.Context, err error, details []reqdto.FieldError) {
	var detail any
	if len(details) > 0 {
		detail = details
	}
	httperr.AbortWithError(c, http.StatusBadRequest, err, httperr.KindValidation, "Invalid request", detail)
}

func abortUnauthenticated(c *gin.Context) {
	httperr.AbortWithError(c, http.StatusUnauthorized, errNoCaller, httperr.KindUnauthenticated, "Authentication required", nil)
}

var errNoCaller = errors.New("no authenticated user in context")
