// Package v1 implements Redfish API v1 BIOS and SecureBoot resources.
package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/device-management-toolkit/bmc-emulator/internal/usecase/redfish"
	"github.com/device-management-toolkit/bmc-emulator/pkg/logger"
)

// BIOS-related constants
const (
	biosID          = "BIOS"
	biosRegistryRef = "BiosAttributeRegistry.v1_0_0"
	resourceBios    = "Bios"
)

// Bios represents a Redfish Bios resource
type Bios struct {
	ODataType         string              `json:"@odata.type"`
	ODataID           string              `json:"@odata.id"`
	ODataContext      string              `json:"@odata.context"`
	ID                string              `json:"Id"`
	Name              string              `json:"Name"`
	Description       string              `json:"Description"`
	AttributeRegistry string              `json:"AttributeRegistry"`
	Attributes        map[string]any      `json:"Attributes"`
	Settings          *BiosSettingsObject `json:"@Redfish.Settings,omitempty"`
	Actions           map[string]any      `json:"Actions,omitempty"`
}

// BiosSettingsObject links a Bios resource to its pending settings.
type BiosSettingsObject struct {
	ODataType      string            `json:"@odata.type"`
	SettingsObject ResourceReference `json:"SettingsObject"`
}

// NewBIOSRoutes registers the BIOS and SecureBoot routes under a resolved
// system group:
// - GET /BIOS
// - GET, PATCH /BIOS/Settings
// - POST /BIOS/Actions/Bios.ResetBios
// - GET, PATCH /SecureBoot
func NewBIOSRoutes(system *gin.RouterGroup, f redfish.Feature, l logger.Interface) {
	system.GET("/BIOS", getBiosHandler(f, l))
	system.GET("/BIOS/Settings", getBiosSettingsHandler(f, l))
	system.PATCH("/BIOS/Settings", patchBiosSettingsHandler(f, l))
	system.POST("/BIOS/Actions/Bios.ResetBios", postResetBiosHandler(f, l))
	system.GET("/SecureBoot", getSecureBootHandler(f, l))
	system.PATCH("/SecureBoot", patchSecureBootHandler(f, l))

	l.Info("Registered Redfish BIOS routes under %s", system.BasePath())
}

func getBiosHandler(f redfish.Feature, l logger.Interface) gin.HandlerFunc {
	return func(c *gin.Context) {
		uuid := canonical(c)

		bios, err := f.BIOS(c.Request.Context(), uuid)
		if err != nil {
			respondError(c, l, err, "BIOS", resourceBios, uuid)

			return
		}

		path := BuildSystemPath(uuid) + "/BIOS"

		writeResource(c, Bios{
			ODataType:         SchemaBios,
			ODataID:           path,
			ODataContext:      PathMetadata + "#Bios.Bios",
			ID:                biosID,
			Name:              "BIOS Configuration Current Settings",
			Description:       "BIOS Configuration Current Settings",
			AttributeRegistry: biosRegistryRef,
			Attributes:        bios.Attributes,
			Settings: &BiosSettingsObject{
				ODataType:      "#Settings.v1_0_0.Settings",
				SettingsObject: ref(path + "/Settings"),
			},
			Actions: map[string]any{
				"#Bios.ResetBios": map[string]any{"target": path + "/Actions/Bios.ResetBios"},
			},
		})
	}
}

func getBiosSettingsHandler(f redfish.Feature, l logger.Interface) gin.HandlerFunc {
	return func(c *gin.Context) {
		uuid := canonical(c)

		bios, err := f.BIOS(c.Request.Context(), uuid)
		if err != nil {
			respondError(c, l, err, "BIOS Settings", resourceBios, uuid)

			return
		}

		writeResource(c, Bios{
			ODataType:         SchemaBios,
			ODataID:           BuildSystemPath(uuid) + "/BIOS/Settings",
			ODataContext:      PathMetadata + "#Bios.Bios",
			ID:                "Settings",
			Name:              "BIOS Configuration Pending Settings",
			Description:       "BIOS Configuration Pending Settings",
			AttributeRegistry: biosRegistryRef,
			Attributes:        bios.Attributes,
		})
	}
}

func patchBiosSettingsHandler(f redfish.Feature, l logger.Interface) gin.HandlerFunc {
	return func(c *gin.Context) {
		uuid := canonical(c)

		var body struct {
			Attributes map[string]any `json:"Attributes"`
		}
		if !bindJSON(c, &body) {
			return
		}

		if err := f.SetBIOS(c.Request.Context(), uuid, body.Attributes); err != nil {
			respondError(c, l, err, "BIOS Settings PATCH", resourceBios, uuid)

			return
		}

		c.Status(http.StatusNoContent)
	}
}

func postResetBiosHandler(f redfish.Feature, l logger.Interface) gin.HandlerFunc {
	return func(c *gin.Context) {
		uuid := canonical(c)

		if err := f.ResetBIOS(c.Request.Context(), uuid); err != nil {
			respondError(c, l, err, "Bios.ResetBios", resourceBios, uuid)

			return
		}

		c.Status(http.StatusNoContent)
	}
}

func getSecureBootHandler(f redfish.Feature, l logger.Interface) gin.HandlerFunc {
	return func(c *gin.Context) {
		uuid := canonical(c)

		sb, err := f.SecureBoot(c.Request.Context(), uuid)
		if err != nil {
			respondError(c, l, err, "SecureBoot", "SecureBoot", uuid)

			return
		}

		doc := map[string]any{
			"@odata.type":    SchemaSecureBoot,
			"@odata.id":      BuildSystemPath(uuid) + "/SecureBoot",
			"@odata.context": PathMetadata + "#SecureBoot.SecureBoot",
			"Id":             "SecureBoot",
			"Name":           "UEFI Secure Boot",
			"SecureBootMode": "DeployedMode",
		}

		if sb.Enabled != nil {
			current := "Disabled"
			if *sb.Enabled {
				current = "Enabled"
			}

			doc["SecureBootEnable"] = *sb.Enabled
			doc["SecureBootCurrentBoot"] = current
		}

		writeResource(c, doc)
	}
}

func patchSecureBootHandler(f redfish.Feature, l logger.Interface) gin.HandlerFunc {
	return func(c *gin.Context) {
		uuid := canonical(c)

		var body struct {
			SecureBootEnable *bool `json:"SecureBootEnable"`
		}
		if !bindJSON(c, &body) {
			return
		}

		if err := f.SetSecureBoot(c.Request.Context(), uuid, body.SecureBootEnable); err != nil {
			respondError(c, l, err, "SecureBoot PATCH", "SecureBoot", uuid)

			return
		}

		c.Status(http.StatusNoContent)
	}
}

// getBiosRegistryHandler serves /Systems/Bios/BiosRegistry. It shares the
// :identity wildcard with system routes, so other identities are 404.
func getBiosRegistryHandler(l logger.Interface) gin.HandlerFunc {
	serve := staticDocument("bios_registry.json", l)

	return func(c *gin.Context) {
		if c.Param(identityParam) != resourceBios {
			ResourceNotFoundError(c, "AttributeRegistry", c.Param(identityParam))

			return
		}

		serve(c)
	}
}
