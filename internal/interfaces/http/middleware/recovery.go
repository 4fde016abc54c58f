package middleware

import (
	"net"
	"net/http"
	"net/http/httputil"
	"os"
	"runtime/debug"
	"strings"

	"github.com/gin-gonic/gin"

	"ticketdesk/internal/shared/logger"
	"ticketdesk/internal/shared/utils"
)

// Recovery converts panics into 500 responses. Requests that died on a
// broken client connection are logged without a response body since
// nobody is left to read it.
func Recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		if isBrokenConnection(recovered) {
			logger.Error("client connection lost mid-request",
				"path", c.Request.URL.Path,
				"method", c.Request.Method,
				"error", recovered)
			c.Abort()
			return
		}

		raw, _ := httputil.DumpRequest(c.Request, false)
		logger.Error("panic recovered",
			"path", c.Request.URL.Path,
			"method", c.Request.Method,
			"headers", maskAuthorization(string(raw)),
			"error", recovered,
			"stack", string(debug.Stack()))

		utils.ErrorResponse(c, http.StatusInternalServerError, "Internal server error occurred")
	})
}

// maskAuthorization blanks the Authorization header value so bearer
// tokens never land in logs.
func maskAuthorization(dump string) []string {
	headers := strings.Split(dump, "\r\n")
	for i, header := range headers {
		if name, _, ok := strings.Cut(header, ":"); ok && name == "Authorization" {
			headers[i] = name + ": *"
		}
	}
	return headers
}

func isBrokenConnection(err interface{}) bool {
	ne, ok := err.(*net.OpError)
	if !ok {
		return false
	}
	se, ok := ne.Err.(*os.SyscallError)
	if !ok {
		return false
	}

	msg := strings.ToLower(se.Error())
	for _, s := range []string{"connection reset by peer", "broken pipe", "connection refused"} {
		if strings.Contains(msg, s) {
			return true
		}
	}
	return false
}
