package v1

import (
	"github.com/gin-gonic/gin"

	"github.com/device-management-toolkit/bmc-emulator/internal/usecase/redfish"
	"github.com/device-management-toolkit/bmc-emulator/pkg/logger"
)

const (
	resourceManager = "Manager"
	managerTypeBMC  = "BMC"
)

// Manager represents a Redfish Manager (BMC) instance
type Manager struct {
	ODataContext          string            `json:"@odata.context"`
	ODataID               string            `json:"@odata.id"`
	ODataType             string            `json:"@odata.type"`
	ID                    string            `json:"Id"`
	Name                  string            `json:"Name"`
	UUID                  string            `json:"UUID"`
	ServiceEntryPointUUID string            `json:"ServiceEntryPointUUID"`
	ManagerType           string            `json:"ManagerType"`
	Description           string            `json:"Description"`
	Model                 string            `json:"Model"`
	FirmwareVersion       string            `json:"FirmwareVersion"`
	PowerState            string            `json:"PowerState"`
	Status                Status            `json:"Status"`
	VirtualMedia          ResourceReference `json:"VirtualMedia"`
	Links                 ManagerLinks      `json:"Links"`
}

// ManagerLinks lists what a manager controls.
type ManagerLinks struct {
	ManagerForServers []ResourceReference `json:"ManagerForServers"`
	ManagerForChassis []ResourceReference `json:"ManagerForChassis"`
}

// NewManagersRoutes registers Manager routes with the router
func NewManagersRoutes(r *gin.RouterGroup, f redfish.Feature, l logger.Interface) {
	r.GET("/Managers", getManagersCollectionHandler(f, l))
	methodNotAllowed(r, "/Managers", "ManagerCollection", MethodGET, MethodPOST, MethodPUT, MethodPATCH, MethodDELETE)

	instance := r.Group("/Managers/:identity", resolver(f.ResolveManager, resourceManager, l))
	instance.GET("", getManagerInstanceHandler(f, l))
	methodNotAllowed(instance, "", resourceManager, MethodGET, MethodPOST, MethodPUT, MethodPATCH, MethodDELETE)

	NewVirtualMediaRoutes(instance, f, l)

	l.Info("Registered Redfish v1 Managers routes")
}

func getManagersCollectionHandler(f redfish.Feature, l logger.Interface) gin.HandlerFunc {
	return func(c *gin.Context) {
		ids, err := f.Managers(c.Request.Context())
		if err != nil {
			respondError(c, l, err, "Managers collection", "ManagerCollection", "Managers")

			return
		}

		writeResource(c, newCollection(SchemaManagerCollection, PathManagers, "Manager Collection", ids))
	}
}

func getManagerInstanceHandler(f redfish.Feature, l logger.Interface) gin.HandlerFunc {
	return func(c *gin.Context) {
		uuid := canonical(c)

		m, err := f.Manager(c.Request.Context(), uuid)
		if err != nil {
			respondError(c, l, err, "Manager instance", resourceManager, uuid)

			return
		}

		servers := make([]string, 0, len(m.Systems))
		for _, id := range m.Systems {
			servers = append(servers, BuildSystemPath(id))
		}

		chassis := make([]string, 0, len(m.Chassis))
		for _, id := range m.Chassis {
			chassis = append(chassis, BuildChassisPath(id))
		}

		writeResource(c, Manager{
			ODataContext:          PathMetadata + "#Manager.Manager",
			ODataID:               BuildManagerPath(m.UUID),
			ODataType:             SchemaManager,
			ID:                    m.UUID,
			Name:                  m.Name,
			UUID:                  m.UUID,
			ServiceEntryPointUUID: m.ServiceEntryPointUUID,
			ManagerType:           managerTypeBMC,
			Description:           "Contains BMC emulator services",
			Model:                 ServiceProduct,
			FirmwareVersion:       RedfishVersion,
			PowerState:            "On",
			Status:                statusOK,
			VirtualMedia:          ref(BuildManagerPath(m.UUID) + "/VirtualMedia"),
			Links: ManagerLinks{
				ManagerForServers: refs(servers),
				ManagerForChassis: refs(chassis),
			},
		})
	}
}
