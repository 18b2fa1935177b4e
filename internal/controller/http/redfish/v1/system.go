/*********************************************************************
 * Copyright (c) Intel Corporation 2025
 * SPDX-License-Identifier: Apache-2.0
 **********************************************************************/

package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/device-management-toolkit/bmc-emulator/internal/entity"
	dto "github.com/device-management-toolkit/bmc-emulator/internal/entity/dto/v1"
	"github.com/device-management-toolkit/bmc-emulator/internal/usecase/redfish"
	"github.com/device-management-toolkit/bmc-emulator/pkg/logger"
)

const resourceSystem = "ComputerSystem"

var bootTargets = []string{entity.BootTargetPxe, entity.BootTargetCd, entity.BootTargetHdd}

// NewSystemsRoutes registers the ComputerSystem routes and their children.
// Every route under /Systems/:identity resolves the identity first.
func NewSystemsRoutes(r *gin.RouterGroup, f redfish.Feature, l logger.Interface) {
	systems := r.Group("/Systems")
	systems.GET("", getSystemsCollectionHandler(f, l))
	methodNotAllowed(systems, "", "ComputerSystemCollection", MethodGET, MethodPOST, MethodPUT, MethodPATCH, MethodDELETE)

	// The BIOS attribute registry shares the /Systems/:identity prefix.
	systems.GET("/:identity/BiosRegistry", getBiosRegistryHandler(l))

	instance := systems.Group("/:identity", resolver(f.ResolveSystem, resourceSystem, l))
	instance.GET("", getSystemInstanceHandler(f, l))
	instance.PATCH("", patchSystemInstanceHandler(f, l))
	methodNotAllowed(instance, "", resourceSystem, MethodGET+", "+MethodPATCH, MethodPOST, MethodPUT, MethodDELETE)
	instance.POST("/Actions/ComputerSystem.Reset", postSystemResetHandler(f, l))
	instance.GET("/EthernetInterfaces", getEthernetInterfacesHandler(f, l))
	instance.GET("/EthernetInterfaces/:nicId", getEthernetInterfaceHandler(f, l))
	instance.GET("/Processors", getProcessorsHandler(f, l))
	instance.GET("/Processors/:processorId", getProcessorHandler(f, l))

	NewBIOSRoutes(instance, f, l)
	NewStorageRoutes(instance, f, l)

	l.Info("Registered Redfish Systems routes under %s", systems.BasePath())
}

func getSystemsCollectionHandler(f redfish.Feature, l logger.Interface) gin.HandlerFunc {
	return func(c *gin.Context) {
		ids, err := f.Systems(c.Request.Context())
		if err != nil {
			respondError(c, l, err, "Systems collection", "ComputerSystemCollection", "Systems")

			return
		}

		l.Debug("http - redfish v1 - serving %d systems", len(ids))

		collection := newCollection(SchemaComputerSystemCollection, PathSystems, "Computer System Collection", ids)
		writeResource(c, collection)
	}
}

func systemDocument(s dto.System) map[string]any {
	path := BuildSystemPath(s.Identity)

	boot := map[string]any{
		"BootSourceOverrideEnabled":                        "Continuous",
		"BootSourceOverrideTarget":                         s.BootTarget,
		"BootSourceOverrideTarget@Redfish.AllowableValues": bootTargets,
	}
	if s.BootMode != nil {
		boot["BootSourceOverrideMode"] = *s.BootMode
	}

	chassis := make([]string, 0, len(s.Chassis))
	for _, id := range s.Chassis {
		chassis = append(chassis, BuildChassisPath(id))
	}

	managers := make([]string, 0, len(s.Managers))
	for _, id := range s.Managers {
		managers = append(managers, BuildManagerPath(id))
	}

	doc := map[string]any{
		"@odata.type":        SchemaComputerSystem,
		"@odata.id":          path,
		"@odata.context":     PathMetadata + "#ComputerSystem.ComputerSystem",
		"Id":                 s.Identity,
		"Name":               s.Name,
		"UUID":               s.UUID,
		"SystemType":         "Virtual",
		"Manufacturer":       ServiceVendor,
		"Status":             statusOK,
		"PowerState":         s.PowerState,
		"IndicatorLED":       s.IndicatorLED,
		"Boot":               boot,
		"Bios":               ref(path + "/BIOS"),
		"SecureBoot":         ref(path + "/SecureBoot"),
		"Processors":         ref(path + "/Processors"),
		"EthernetInterfaces": ref(path + "/EthernetInterfaces"),
		"SimpleStorage":      ref(path + "/SimpleStorage"),
		"Storage":            ref(path + "/Storage"),
		"Links": map[string]any{
			"Chassis":   refs(chassis),
			"ManagedBy": refs(managers),
		},
		"Actions": map[string]any{
			"#ComputerSystem.Reset": map[string]any{
				"target":                            path + "/Actions/ComputerSystem.Reset",
				"ResetType@Redfish.AllowableValues": entity.ResetTypes,
			},
		},
	}

	if s.TotalCPUs != nil {
		doc["ProcessorSummary"] = map[string]any{"Count": *s.TotalCPUs, "Status": statusOK}
	}

	if s.TotalMemoryGiB != nil {
		doc["MemorySummary"] = map[string]any{"TotalSystemMemoryGiB": *s.TotalMemoryGiB, "Status": statusOK}
	}

	return doc
}

func getSystemInstanceHandler(f redfish.Feature, l logger.Interface) gin.HandlerFunc {
	return func(c *gin.Context) {
		uuid := canonical(c)

		s, err := f.System(c.Request.Context(), uuid)
		if err != nil {
			respondError(c, l, err, "Systems instance", resourceSystem, uuid)

			return
		}

		writeResource(c, systemDocument(s))
	}
}

type systemPatchRequest struct {
	Boot *struct {
		BootSourceOverrideTarget string `json:"BootSourceOverrideTarget"`
		BootSourceOverrideMode   string `json:"BootSourceOverrideMode"`
	} `json:"Boot"`
	IndicatorLED string `json:"IndicatorLED"`
}

func patchSystemInstanceHandler(f redfish.Feature, l logger.Interface) gin.HandlerFunc {
	return func(c *gin.Context) {
		uuid := canonical(c)

		var body systemPatchRequest
		if !bindJSON(c, &body) {
			return
		}

		patch := dto.SystemPatch{IndicatorLED: body.IndicatorLED}
		if body.Boot != nil {
			patch.Boot = &dto.BootPatch{
				Target: body.Boot.BootSourceOverrideTarget,
				Mode:   body.Boot.BootSourceOverrideMode,
			}
		}

		if err := f.PatchSystem(c.Request.Context(), uuid, patch); err != nil {
			respondError(c, l, err, "Systems PATCH", resourceSystem, uuid)

			return
		}

		c.Status(http.StatusNoContent)
	}
}

func postSystemResetHandler(f redfish.Feature, l logger.Interface) gin.HandlerFunc {
	return func(c *gin.Context) {
		uuid := canonical(c)

		var body struct {
			ResetType string `json:"ResetType"`
		}
		if !bindJSON(c, &body) {
			return
		}

		if err := f.Reset(c.Request.Context(), uuid, body.ResetType); err != nil {
			respondError(c, l, err, "ComputerSystem.Reset", resourceSystem, uuid)

			return
		}

		// For successful reset actions, return HTTP 204 No Content
		c.Status(http.StatusNoContent)
	}
}

func getEthernetInterfacesHandler(f redfish.Feature, l logger.Interface) gin.HandlerFunc {
	return func(c *gin.Context) {
		uuid := canonical(c)

		nics, err := f.NICs(c.Request.Context(), uuid)
		if err != nil {
			respondError(c, l, err, "EthernetInterfaces collection", resourceSystem, uuid)

			return
		}

		ids := make([]string, 0, len(nics))
		for _, n := range nics {
			ids = append(ids, n.ID)
		}

		writeResource(c, newCollection(SchemaEthernetCollection,
			BuildSystemPath(uuid)+"/EthernetInterfaces", "Ethernet Interface Collection", ids))
	}
}

func getEthernetInterfaceHandler(f redfish.Feature, l logger.Interface) gin.HandlerFunc {
	return func(c *gin.Context) {
		uuid, nicID := canonical(c), c.Param("nicId")

		nic, err := f.NIC(c.Request.Context(), uuid, nicID)
		if err != nil {
			respondError(c, l, err, "EthernetInterfaces instance", "EthernetInterface", nicID)

			return
		}

		writeResource(c, map[string]any{
			"@odata.type":         SchemaEthernetInterface,
			"@odata.id":           BuildSystemPath(uuid) + "/EthernetInterfaces/" + nic.ID,
			"Id":                  nic.ID,
			"Name":                "VNIC " + nic.ID,
			"Status":              statusOK,
			"PermanentMACAddress": nic.MAC,
			"MACAddress":          nic.MAC,
		})
	}
}

func getProcessorsHandler(f redfish.Feature, l logger.Interface) gin.HandlerFunc {
	return func(c *gin.Context) {
		uuid := canonical(c)

		procs, err := f.Processors(c.Request.Context(), uuid)
		if err != nil {
			respondError(c, l, err, "Processors collection", resourceSystem, uuid)

			return
		}

		ids := make([]string, 0, len(procs))
		for _, p := range procs {
			ids = append(ids, p.ID)
		}

		writeResource(c, newCollection(SchemaProcessorCollection,
			BuildSystemPath(uuid)+"/Processors", "Processors Collection", ids))
	}
}

func getProcessorHandler(f redfish.Feature, l logger.Interface) gin.HandlerFunc {
	return func(c *gin.Context) {
		uuid, procID := canonical(c), c.Param("processorId")

		p, err := f.Processor(c.Request.Context(), uuid, procID)
		if err != nil {
			respondError(c, l, err, "Processors instance", "Processor", procID)

			return
		}

		writeResource(c, map[string]any{
			"@odata.type":           SchemaProcessor,
			"@odata.id":             BuildSystemPath(uuid) + "/Processors/" + p.ID,
			"Id":                    p.ID,
			"Name":                  "Processor",
			"Socket":                p.Socket,
			"ProcessorType":         "CPU",
			"ProcessorArchitecture": "x86",
			"InstructionSet":        "x86-64",
			"Manufacturer":          p.Vendor,
			"Model":                 p.Model,
			"TotalCores":            p.Cores,
			"TotalThreads":          p.Threads,
			"Status":                statusOK,
		})
	}
}
