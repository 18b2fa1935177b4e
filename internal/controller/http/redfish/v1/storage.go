package v1

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	dto "github.com/device-management-toolkit/bmc-emulator/internal/entity/dto/v1"
	"github.com/device-management-toolkit/bmc-emulator/internal/usecase/redfish"
	"github.com/device-management-toolkit/bmc-emulator/pkg/logger"
)

// NewStorageRoutes registers SimpleStorage, Storage, Drive and Volume
// routes under a resolved system group.
func NewStorageRoutes(system *gin.RouterGroup, f redfish.Feature, l logger.Interface) {
	system.GET("/SimpleStorage", getSimpleStorageCollectionHandler(f, l))
	system.GET("/SimpleStorage/:storageId", getSimpleStorageHandler(f, l))
	system.GET("/Storage", getStorageCollectionHandler(f, l))
	system.GET("/Storage/:storageId", getStorageHandler(f, l))
	system.GET("/Storage/:storageId/Drives/:driveId", getDriveHandler(f, l))
	system.GET("/Storage/:storageId/Volumes", getVolumesHandler(f, l))
	system.POST("/Storage/:storageId/Volumes", postVolumeHandler(f, l))
	system.GET("/Storage/:storageId/Volumes/:volumeId", getVolumeHandler(f, l))

	l.Info("Registered Redfish Storage routes under %s", system.BasePath())
}

func getSimpleStorageCollectionHandler(f redfish.Feature, l logger.Interface) gin.HandlerFunc {
	return func(c *gin.Context) {
		uuid := canonical(c)

		list, err := f.SimpleStorage(c.Request.Context(), uuid)
		if err != nil {
			respondError(c, l, err, "SimpleStorage collection", resourceSystem, uuid)

			return
		}

		ids := make([]string, 0, len(list))
		for _, s := range list {
			ids = append(ids, s.ID)
		}

		writeResource(c, newCollection(SchemaSimpleStorageCollection,
			BuildSystemPath(uuid)+"/SimpleStorage", "Simple Storage Collection", ids))
	}
}

func getSimpleStorageHandler(f redfish.Feature, l logger.Interface) gin.HandlerFunc {
	return func(c *gin.Context) {
		uuid, id := canonical(c), c.Param("storageId")

		s, err := f.SimpleStorageByID(c.Request.Context(), uuid, id)
		if err != nil {
			respondError(c, l, err, "SimpleStorage instance", "SimpleStorage", id)

			return
		}

		devices := make([]map[string]any, 0, len(s.Devices))
		for _, d := range s.Devices {
			devices = append(devices, map[string]any{
				"Name":          d.Name,
				"CapacityBytes": d.CapacityBytes,
				"Status":        statusOK,
			})
		}

		writeResource(c, map[string]any{
			"@odata.type": SchemaSimpleStorage,
			"@odata.id":   BuildSystemPath(uuid) + "/SimpleStorage/" + s.ID,
			"Id":          s.ID,
			"Name":        s.Name,
			"Devices":     devices,
			"Status":      statusOK,
		})
	}
}

func getStorageCollectionHandler(f redfish.Feature, l logger.Interface) gin.HandlerFunc {
	return func(c *gin.Context) {
		uuid := canonical(c)

		list, err := f.Storage(c.Request.Context(), uuid)
		if err != nil {
			respondError(c, l, err, "Storage collection", resourceSystem, uuid)

			return
		}

		ids := make([]string, 0, len(list))
		for _, s := range list {
			ids = append(ids, s.ID)
		}

		writeResource(c, newCollection(SchemaStorageCollection,
			BuildSystemPath(uuid)+"/Storage", "Storage Collection", ids))
	}
}

func getStorageHandler(f redfish.Feature, l logger.Interface) gin.HandlerFunc {
	return func(c *gin.Context) {
		uuid, id := canonical(c), c.Param("storageId")

		s, err := f.StorageByID(c.Request.Context(), uuid, id)
		if err != nil {
			respondError(c, l, err, "Storage instance", "Storage", id)

			return
		}

		path := BuildStoragePath(uuid, s.ID)

		controllers := make([]map[string]any, 0, len(s.Controllers))
		for _, ctrl := range s.Controllers {
			controllers = append(controllers, map[string]any{
				"@odata.id":                    path + "#/StorageControllers/" + ctrl.MemberID,
				"MemberId":                     ctrl.MemberID,
				"Name":                         ctrl.Name,
				"Status":                       statusOK,
				"SpeedGbps":                    ctrl.SpeedGbps,
				"SupportedDeviceProtocols":     ctrl.Protocols,
				"SupportedControllerProtocols": []string{"PCIe"},
			})
		}

		drives := make([]string, 0, len(s.DriveIDs))
		for _, d := range s.DriveIDs {
			drives = append(drives, BuildDrivePath(uuid, s.ID, d))
		}

		writeResource(c, map[string]any{
			"@odata.type":        SchemaStorage,
			"@odata.id":          path,
			"Id":                 s.ID,
			"Name":               s.Name,
			"StorageControllers": controllers,
			"Drives":             refs(drives),
			"Volumes":            ref(path + "/Volumes"),
			"Status":             statusOK,
		})
	}
}

func getDriveHandler(f redfish.Feature, l logger.Interface) gin.HandlerFunc {
	return func(c *gin.Context) {
		uuid, sid, did := canonical(c), c.Param("storageId"), c.Param("driveId")

		d, err := f.Drive(c.Request.Context(), uuid, sid, did)
		if err != nil {
			respondError(c, l, err, "Drive instance", "Drive", did)

			return
		}

		writeResource(c, map[string]any{
			"@odata.type":   SchemaDrive,
			"@odata.id":     BuildDrivePath(uuid, sid, d.ID),
			"Id":            d.ID,
			"Name":          d.Name,
			"CapacityBytes": d.CapacityBytes,
			"Protocol":      d.Protocol,
			"Status":        statusOK,
		})
	}
}

func getVolumesHandler(f redfish.Feature, l logger.Interface) gin.HandlerFunc {
	return func(c *gin.Context) {
		uuid, sid := canonical(c), c.Param("storageId")

		vols, err := f.Volumes(c.Request.Context(), uuid, sid)
		if err != nil {
			respondError(c, l, err, "Volumes collection", "Storage", sid)

			return
		}

		ids := make([]string, 0, len(vols))
		for _, v := range vols {
			ids = append(ids, v.ID)
		}

		writeResource(c, newCollection(SchemaVolumeCollection,
			BuildStoragePath(uuid, sid)+"/Volumes", "Storage Volume Collection", ids))
	}
}

func getVolumeHandler(f redfish.Feature, l logger.Interface) gin.HandlerFunc {
	return func(c *gin.Context) {
		uuid, sid, vid := canonical(c), c.Param("storageId"), c.Param("volumeId")

		v, err := f.Volume(c.Request.Context(), uuid, sid, vid)
		if err != nil {
			respondError(c, l, err, "Volumes instance", "Volume", vid)

			return
		}

		writeResource(c, map[string]any{
			"@odata.type":   SchemaVolume,
			"@odata.id":     BuildVolumePath(uuid, sid, v.ID),
			"Id":            v.ID,
			"Name":          v.Name,
			"VolumeType":    v.VolumeType,
			"CapacityBytes": v.CapacityBytes,
			"Status":        statusOK,
		})
	}
}

// postVolumeHandler answers 201 with a Location header only when the
// backend materialized the disk. Any failure leaves no Location behind.
func postVolumeHandler(f redfish.Feature, l logger.Interface) gin.HandlerFunc {
	return func(c *gin.Context) {
		uuid, sid := canonical(c), c.Param("storageId")

		var body struct {
			Name          string `json:"Name"`
			VolumeType    string `json:"VolumeType"`
			CapacityBytes int64  `json:"CapacityBytes"`
		}
		if !bindJSON(c, &body) {
			return
		}

		id, err := f.CreateVolume(c.Request.Context(), uuid, sid, dto.VolumeRequest{
			Name:          body.Name,
			VolumeType:    body.VolumeType,
			CapacityBytes: body.CapacityBytes,
		})
		if err != nil {
			if errors.Is(err, redfish.ErrVolumeNotCreated) {
				l.Warn("http - redfish v1 - volume POST: %v", err)
				GeneralError(c)

				return
			}

			respondError(c, l, err, "Volumes POST", "Storage", sid)

			return
		}

		SetRedfishHeaders(c)
		c.Header("Location", BuildVolumePath(uuid, sid, id))
		c.Status(http.StatusCreated)
	}
}
