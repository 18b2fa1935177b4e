package v1

import (
	"embed"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/device-management-toolkit/bmc-emulator/pkg/logger"
)

//go:embed registries/*.json
var registryFiles embed.FS

// staticDocument serves an embedded registry document unchanged.
func staticDocument(name string, l logger.Interface) gin.HandlerFunc {
	return func(c *gin.Context) {
		body, err := registryFiles.ReadFile("registries/" + name)
		if err != nil {
			l.Error(err, "http - redfish v1 - registry "+name)
			GeneralError(c)

			return
		}

		SetRedfishHeaders(c)
		c.Data(http.StatusOK, ContentTypeJSON, body)
	}
}

// NewRegistryRoutes registers the static message and attribute registries.
// The BIOS attribute registry lives under Systems and is registered by
// NewSystemsRoutes.
func NewRegistryRoutes(r *gin.RouterGroup, l logger.Interface) {
	r.GET("/Registries", staticDocument("collection.json", l))
	r.GET("/Registries/BiosAttributeRegistry.v1_0_0", staticDocument("bios_attribute_registry_file.json", l))
	r.GET("/Registries/Messages", staticDocument("messages_file.json", l))
	r.GET("/Registries/Messages/Registry", staticDocument("message_registry.json", l))

	methodNotAllowed(r, "/Registries", "MessageRegistryFileCollection", MethodGET, MethodPOST, MethodPUT, MethodPATCH, MethodDELETE)

	l.Info("Registered Redfish v1 Registries routes")
}
