package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	srvErrors "github.com/rlc-community-providers/rlc-hpalm-provider/pkg/errors"
)

// writeError maps a typed provider error to an HTTP status. Upstream HP ALM
// failures surface as gateway errors; caller mistakes as 4xx.
func writeError(c *gin.Context, err error) {
	status := http.StatusInternalServerError

	switch srvErrors.KindOf(err) {
	case srvErrors.KindValidation, srvErrors.KindBadRequest:
		status = http.StatusBadRequest
	case srvErrors.KindNotFound, srvErrors.KindResourceNotFound:
		status = http.StatusNotFound
	case srvErrors.KindServerUnavailable:
		status = http.StatusServiceUnavailable
	case srvErrors.KindInvalidCredentials, srvErrors.KindUpstream, srvErrors.KindParse:
		status = http.StatusBadGateway
	}

	c.JSON(status, gin.H{"error": err.Error()})
}
