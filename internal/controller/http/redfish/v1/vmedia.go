package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	dto "github.com/device-management-toolkit/bmc-emulator/internal/entity/dto/v1"
	"github.com/device-management-toolkit/bmc-emulator/internal/usecase/redfish"
	"github.com/device-management-toolkit/bmc-emulator/pkg/logger"
)

const resourceVirtualMedia = "VirtualMedia"

// NewVirtualMediaRoutes registers the virtual media routes under a resolved
// manager group:
// - GET /VirtualMedia
// - GET /VirtualMedia/{deviceId}
// - POST /VirtualMedia/{deviceId}/Actions/VirtualMedia.InsertMedia
// - POST /VirtualMedia/{deviceId}/Actions/VirtualMedia.EjectMedia
func NewVirtualMediaRoutes(manager *gin.RouterGroup, f redfish.Feature, l logger.Interface) {
	manager.GET("/VirtualMedia", getVirtualMediaCollectionHandler(f, l))
	methodNotAllowed(manager, "/VirtualMedia", "VirtualMediaCollection", MethodGET, MethodPOST, MethodPUT, MethodPATCH, MethodDELETE)

	manager.GET("/VirtualMedia/:deviceId", getVirtualMediaHandler(f, l))
	methodNotAllowed(manager, "/VirtualMedia/:deviceId", resourceVirtualMedia, MethodGET, MethodPOST, MethodPUT, MethodPATCH, MethodDELETE)

	manager.POST("/VirtualMedia/:deviceId/Actions/VirtualMedia.InsertMedia", postInsertMediaHandler(f, l))
	manager.POST("/VirtualMedia/:deviceId/Actions/VirtualMedia.EjectMedia", postEjectMediaHandler(f, l))

	l.Info("Registered Redfish VirtualMedia routes under %s", manager.BasePath())
}

func getVirtualMediaCollectionHandler(f redfish.Feature, l logger.Interface) gin.HandlerFunc {
	return func(c *gin.Context) {
		uuid := canonical(c)

		ids, err := f.VirtualMediaDevices(c.Request.Context(), uuid)
		if err != nil {
			respondError(c, l, err, "VirtualMedia collection", resourceManager, uuid)

			return
		}

		writeResource(c, newCollection(SchemaVirtualMediaCollection,
			BuildManagerPath(uuid)+"/VirtualMedia", "Virtual Media Services", ids))
	}
}

func getVirtualMediaHandler(f redfish.Feature, l logger.Interface) gin.HandlerFunc {
	return func(c *gin.Context) {
		uuid, id := canonical(c), c.Param("deviceId")

		vm, err := f.VirtualMedia(c.Request.Context(), uuid, id)
		if err != nil {
			respondError(c, l, err, "VirtualMedia instance", resourceVirtualMedia, id)

			return
		}

		path := BuildVirtualMediaPath(uuid, vm.Device.ID)

		connected := "NotConnected"
		if vm.State.Inserted {
			connected = "URI"
		}

		writeResource(c, map[string]any{
			"@odata.type":    SchemaVirtualMedia,
			"@odata.id":      path,
			"@odata.context": PathMetadata + "#VirtualMedia.VirtualMedia",
			"Id":             vm.Device.ID,
			"Name":           vm.Device.Name,
			"MediaTypes":     nonNil(vm.Device.MediaTypes),
			"Image":          vm.State.Image,
			"ImageName":      vm.State.ImageName,
			"ConnectedVia":   connected,
			"Inserted":       vm.State.Inserted,
			"WriteProtected": vm.State.WriteProtected,
			"Actions": map[string]any{
				"#VirtualMedia.InsertMedia": map[string]any{"target": path + "/Actions/VirtualMedia.InsertMedia"},
				"#VirtualMedia.EjectMedia":  map[string]any{"target": path + "/Actions/VirtualMedia.EjectMedia"},
			},
		})
	}
}

func postInsertMediaHandler(f redfish.Feature, l logger.Interface) gin.HandlerFunc {
	return func(c *gin.Context) {
		uuid, id := canonical(c), c.Param("deviceId")

		var body struct {
			Image          string `json:"Image"`
			Inserted       *bool  `json:"Inserted"`
			WriteProtected *bool  `json:"WriteProtected"`
		}
		if !bindJSON(c, &body) {
			return
		}

		err := f.InsertMedia(c.Request.Context(), uuid, id, dto.InsertMediaRequest{
			Image:          body.Image,
			Inserted:       body.Inserted,
			WriteProtected: body.WriteProtected,
		})
		if err != nil {
			respondError(c, l, err, "VirtualMedia.InsertMedia", resourceVirtualMedia, id)

			return
		}

		c.Status(http.StatusNoContent)
	}
}

// postEjectMediaHandler ignores the body; the action takes no parameters.
func postEjectMediaHandler(f redfish.Feature, l logger.Interface) gin.HandlerFunc {
	return func(c *gin.Context) {
		uuid, id := canonical(c), c.Param("deviceId")

		if err := f.EjectMedia(c.Request.Context(), uuid, id); err != nil {
			respondError(c, l, err, "VirtualMedia.EjectMedia", resourceVirtualMedia, id)

			return
		}

		c.Status(http.StatusNoContent)
	}
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}

	return s
}
