package middleware

import (
	"log"
	"net/http"

	"fleet_bill_verifier/pkg"

	"github.com/gin-gonic/gin"
)

var errPanicRecovered = pkg.NewDomainErrorSimple("INTERNAL_ERROR", "Internal server error", http.StatusInternalServerError)

// Recovery turns a handler panic into the standard error envelope.
func Recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		log.Printf("[http][recovery] panic recovered request_id=%s method=%s path=%s err=%v",
			RequestIDFrom(c), c.Request.Method, c.Request.URL.Path, recovered)
		c.AbortWithStatusJSON(errPanicRecovered.HTTPStatus, errPanicRecovered.ToHTTPError())
	})
}
