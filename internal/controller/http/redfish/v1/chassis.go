/*********************************************************************
 * Copyright (c) Intel Corporation 2025
 * SPDX-License-Identifier: Apache-2.0
 **********************************************************************/

// Package v1 implements Redfish API v1 Chassis resources.
package v1

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	dto "github.com/device-management-toolkit/bmc-emulator/internal/entity/dto/v1"
	"github.com/device-management-toolkit/bmc-emulator/internal/usecase/redfish"
	"github.com/device-management-toolkit/bmc-emulator/pkg/logger"
)

// Chassis-related constants
const (
	chassisTypeRackMount = "RackMount"
	resourceChassis      = "Chassis"
)

// Chassis represents a Redfish Chassis instance
type Chassis struct {
	ODataContext string            `json:"@odata.context"`
	ODataID      string            `json:"@odata.id"`
	ODataType    string            `json:"@odata.type"`
	ID           string            `json:"Id"`
	Name         string            `json:"Name"`
	UUID         string            `json:"UUID"`
	ChassisType  string            `json:"ChassisType"`
	Manufacturer string            `json:"Manufacturer,omitempty"`
	Status       Status            `json:"Status"`
	PowerState   string            `json:"PowerState,omitempty"`
	IndicatorLED string            `json:"IndicatorLED"`
	Thermal      ResourceReference `json:"Thermal"`
	Links        ChassisLinks      `json:"Links"`
}

// ChassisLinks represents links to other resources
type ChassisLinks struct {
	ComputerSystems   []ResourceReference `json:"ComputerSystems"`
	ManagedBy         []ResourceReference `json:"ManagedBy"`
	ManagersInChassis []ResourceReference `json:"ManagersInChassis"`
	Storage           []ResourceReference `json:"Storage"`
	Drives            []ResourceReference `json:"Drives"`
}

// NewChassisRoutes registers Chassis routes with the router
func NewChassisRoutes(r *gin.RouterGroup, f redfish.Feature, l logger.Interface) {
	r.GET("/Chassis", getChassisCollectionHandler(f, l))
	methodNotAllowed(r, "/Chassis", "ChassisCollection", MethodGET, MethodPOST, MethodPUT, MethodPATCH, MethodDELETE)

	instance := r.Group("/Chassis/:identity", resolver(f.ResolveChassis, resourceChassis, l))
	instance.GET("", getChassisInstanceHandler(f, l))
	instance.PATCH("", patchChassisInstanceHandler(f, l))
	methodNotAllowed(instance, "", "Chassis instance", MethodGET+", "+MethodPATCH, MethodPOST, MethodPUT, MethodDELETE)
	instance.GET("/Thermal", getThermalHandler(f, l))

	l.Info("Registered Redfish v1 Chassis routes")
}

// getChassisCollectionHandler handles GET requests for the Chassis collection
func getChassisCollectionHandler(f redfish.Feature, l logger.Interface) gin.HandlerFunc {
	return func(c *gin.Context) {
		ids, err := f.ChassisList(c.Request.Context())
		if err != nil {
			respondError(c, l, err, "Chassis collection", "ChassisCollection", "Chassis")

			return
		}

		writeResource(c, newCollection(SchemaChassisCollection, PathChassis, "Chassis Collection", ids))
	}
}

// buildChassisInstance renders a chassis descriptor. Leaf chassis carry
// empty link lists.
func buildChassisInstance(ch dto.Chassis) Chassis {
	systems := make([]string, 0, len(ch.Systems))
	for _, id := range ch.Systems {
		systems = append(systems, BuildSystemPath(id))
	}

	managers := make([]string, 0, len(ch.Managers))
	for _, id := range ch.Managers {
		managers = append(managers, BuildManagerPath(id))
	}

	managedBy := make([]string, 0, len(ch.ManagedBy))
	for _, id := range ch.ManagedBy {
		managedBy = append(managedBy, BuildManagerPath(id))
	}

	storage := make([]string, 0, len(ch.Storage))
	for _, s := range ch.Storage {
		storage = append(storage, BuildStoragePath(s.SystemUUID, s.StorageID))
	}

	drives := make([]string, 0, len(ch.Drives))
	for _, d := range ch.Drives {
		drives = append(drives, BuildDrivePath(d.SystemUUID, d.StorageID, d.DriveID))
	}

	return Chassis{
		ODataContext: PathMetadata + "#Chassis.Chassis",
		ODataID:      BuildChassisPath(ch.Identity),
		ODataType:    SchemaChassis,
		ID:           ch.Identity,
		Name:         ch.Name,
		UUID:         ch.UUID,
		ChassisType:  chassisTypeRackMount,
		Manufacturer: ServiceVendor,
		Status:       statusOK,
		PowerState:   "On",
		IndicatorLED: ch.IndicatorLED,
		Thermal:      ref(BuildChassisPath(ch.Identity) + "/Thermal"),
		Links: ChassisLinks{
			ComputerSystems:   refs(systems),
			ManagedBy:         refs(managedBy),
			ManagersInChassis: refs(managers),
			Storage:           refs(storage),
			Drives:            refs(drives),
		},
	}
}

// getChassisInstanceHandler handles GET requests for a specific chassis
func getChassisInstanceHandler(f redfish.Feature, l logger.Interface) gin.HandlerFunc {
	return func(c *gin.Context) {
		uuid := canonical(c)

		ch, err := f.Chassis(c.Request.Context(), uuid)
		if err != nil {
			respondError(c, l, err, "Chassis instance", resourceChassis, uuid)

			return
		}

		writeResource(c, buildChassisInstance(ch))
	}
}

// patchChassisInstanceHandler accepts IndicatorLED only.
func patchChassisInstanceHandler(f redfish.Feature, l logger.Interface) gin.HandlerFunc {
	return func(c *gin.Context) {
		uuid := canonical(c)

		var body struct {
			IndicatorLED string `json:"IndicatorLED"`
		}
		if !bindJSON(c, &body) {
			return
		}

		if err := f.SetChassisIndicator(c.Request.Context(), uuid, body.IndicatorLED); err != nil {
			respondError(c, l, err, "Chassis PATCH", resourceChassis, uuid)

			return
		}

		c.Status(http.StatusNoContent)
	}
}

// getThermalHandler reports one temperature sensor and one fan per system
// on the root chassis.
func getThermalHandler(f redfish.Feature, l logger.Interface) gin.HandlerFunc {
	return func(c *gin.Context) {
		uuid := canonical(c)

		t, err := f.Thermal(c.Request.Context(), uuid)
		if err != nil {
			respondError(c, l, err, "Thermal", resourceChassis, uuid)

			return
		}

		path := BuildChassisPath(uuid) + "/Thermal"
		temps := make([]map[string]any, 0, len(t.Systems))
		fans := make([]map[string]any, 0, len(t.Systems))

		for i, sys := range t.Systems {
			member := ref(BuildSystemPath(sys))

			temps = append(temps, map[string]any{
				"@odata.id":                 path + "#/Temperatures/" + strconv.Itoa(i),
				"MemberId":                  strconv.Itoa(i),
				"Name":                      "CPU Temp",
				"SensorNumber":              i + 1,
				"Status":                    statusOK,
				"ReadingCelsius":            62,
				"UpperThresholdNonCritical": 90,
				"UpperThresholdCritical":    95,
				"PhysicalContext":           "CPU",
				"RelatedItem":               []ResourceReference{member},
			})

			fans = append(fans, map[string]any{
				"@odata.id":       path + "#/Fans/" + strconv.Itoa(i),
				"MemberId":        strconv.Itoa(i),
				"Name":            "BaseBoard System Fan",
				"PhysicalContext": "Backplane",
				"Status":          statusOK,
				"Reading":         2100,
				"ReadingUnits":    "RPM",
				"RelatedItem":     []ResourceReference{member},
			})
		}

		writeResource(c, map[string]any{
			"@odata.type":  SchemaThermal,
			"@odata.id":    path,
			"Id":           "Thermal",
			"Name":         "Thermal",
			"Temperatures": temps,
			"Fans":         fans,
		})
	}
}
