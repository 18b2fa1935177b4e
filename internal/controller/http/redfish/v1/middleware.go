package v1

import (
	"context"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/device-management-toolkit/bmc-emulator/internal/usecase/redfish"
	"github.com/device-management-toolkit/bmc-emulator/pkg/logger"
)

const (
	identityParam = "identity"
	uuidKey       = "redfish.uuid"

	acceptAll       = "*/*"
	contentTypeJSON = "application/json"
)

// RequestCacheMiddleware gives every request a fresh lookup cache. It must
// run before any handler touches the use case.
func RequestCacheMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Request = c.Request.WithContext(redfish.WithRequestCache(c.Request.Context()))
		c.Next()
	}
}

// RedfishRecoveryMiddleware turns panics into the 500 error envelope.
func RedfishRecoveryMiddleware(l logger.Interface) gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		l.Error("http - redfish v1 - panic recovered: %v", recovered)
		GeneralError(c)
	})
}

// ValidateRequestMiddleware rejects Accept headers without JSON and request
// bodies that are not JSON. The XML $metadata document skips the Accept
// check.
func ValidateRequestMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		accept := c.GetHeader("Accept")
		if accept != "" && c.FullPath() != PathMetadata &&
			!strings.Contains(accept, contentTypeJSON) && !strings.Contains(accept, acceptAll) {
			NotAcceptableError(c, accept)

			return
		}

		if c.Request.Method == MethodPOST || c.Request.Method == MethodPATCH {
			ct := c.GetHeader(ContentTypeHeaderName)
			if ct != "" && !strings.HasPrefix(ct, contentTypeJSON) {
				UnsupportedMediaTypeError(c, ct)

				return
			}
		}

		c.Next()
	}
}

type resolveFunc func(ctx context.Context, identity string) (string, error)

// resolver canonicalizes the :identity segment. Hidden instances end in
// 404 and aliases in a 307 to the UUID path; otherwise the UUID is stored
// for the handler.
func resolver(resolve resolveFunc, resourceType string, l logger.Interface) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity := c.Param(identityParam)

		uuid, err := resolve(c.Request.Context(), identity)
		if err != nil {
			respondError(c, l, err, "resolve "+resourceType, resourceType, identity)

			return
		}

		c.Set(uuidKey, uuid)
		c.Next()
	}
}

func canonical(c *gin.Context) string {
	return c.GetString(uuidKey)
}
