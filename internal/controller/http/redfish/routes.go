// Package redfish mounts the Redfish service tree on a gin engine.
package redfish

import (
	"net/http"

	"github.com/gin-gonic/gin"

	v1 "github.com/device-management-toolkit/bmc-emulator/internal/controller/http/redfish/v1"
	"github.com/device-management-toolkit/bmc-emulator/internal/usecase/redfish"
	"github.com/device-management-toolkit/bmc-emulator/pkg/logger"
)

const basePath = "/redfish/v1"

// NewRoutes registers the version document at /redfish and every v1
// resource under /redfish/v1. Each request gets its own lookup cache.
func NewRoutes(handler *gin.Engine, f redfish.Feature, info v1.ServiceInfo, l logger.Interface) {
	handler.GET("/redfish", func(c *gin.Context) {
		v1.SetRedfishHeaders(c)
		c.JSON(http.StatusOK, gin.H{"v1": v1.PathRedfishRoot})
	})

	group := handler.Group(basePath,
		v1.RedfishRecoveryMiddleware(l),
		v1.ValidateRequestMiddleware(),
		v1.RequestCacheMiddleware(),
	)

	v1.NewServiceRootRoutes(group, info, l)
	v1.NewRegistryRoutes(group, l)
	v1.NewSystemsRoutes(group, f, l)
	v1.NewChassisRoutes(group, f, l)
	v1.NewManagersRoutes(group, f, l)

	l.Info("Registered Redfish service under %s", basePath)
}
