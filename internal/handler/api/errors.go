package api

import (
	"net/http"

	"car-rental-engine/internal/handler/httperr"
	"car-rental-engine/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

var errNoIdentity = errs.New("authenticated identity missing from context")

func abortWithUseCaseError(c *gin.Context, err error) {
	httperr.AbortWithUseCaseError(c, err)
}

func abortBadRequest(c *gin.Context, err error) {
	httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
}

func abortNoIdentity(c *gin.Context) {
	httperr.AbortWithError(c, http.StatusUnauthorized, errNoIdentity, "Unauthorized", nil)
}
