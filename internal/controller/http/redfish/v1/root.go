/*********************************************************************
 * Copyright (c) Intel Corporation 2021
 * SPDX-License-Identifier: Apache-2.0
 **********************************************************************/

package v1

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-xmlfmt/xmlfmt"

	"github.com/device-management-toolkit/bmc-emulator/pkg/logger"
)

// ServiceInfo describes the emulator in the service root.
type ServiceInfo struct {
	UUID    string
	Version string
}

// metadataSchemas are the DMTF CSDL documents the $metadata document
// references, one per resource type the service renders.
var metadataSchemas = []string{
	"ServiceRoot_v1", "ComputerSystemCollection", "ComputerSystem_v1",
	"ChassisCollection", "Chassis_v1", "Thermal_v1",
	"ManagerCollection", "Manager_v1",
	"EthernetInterfaceCollection", "EthernetInterface_v1",
	"ProcessorCollection", "Processor_v1",
	"Bios_v1", "SecureBoot_v1",
	"SimpleStorageCollection", "SimpleStorage_v1",
	"StorageCollection", "Storage_v1", "Drive_v1",
	"VolumeCollection", "Volume_v1",
	"VirtualMediaCollection", "VirtualMedia_v1",
	"CertificateService_v1", "CertificateLocations_v1",
	"MessageRegistryFileCollection", "MessageRegistryFile_v1",
	"AttributeRegistry_v1", "MessageRegistry_v1", "Message_v1",
}

// metadataDocument builds the OData service document.
func metadataDocument() string {
	var b strings.Builder

	b.WriteString(`<?xml version="1.0" encoding="UTF-8"?>`)
	b.WriteString(`<edmx:Edmx xmlns:edmx="http://docs.oasis-open.org/odata/ns/edmx" Version="4.0">`)

	for _, s := range metadataSchemas {
		ns := strings.TrimSuffix(s, "_v1")
		b.WriteString(`<edmx:Reference Uri="http://redfish.dmtf.org/schemas/v1/` + s + `.xml">`)
		b.WriteString(`<edmx:Include Namespace="` + ns + `"/>`)
		b.WriteString(`</edmx:Reference>`)
	}

	b.WriteString(`<edmx:DataServices>`)
	b.WriteString(`<Schema xmlns="http://docs.oasis-open.org/odata/ns/edm" Namespace="Service">`)
	b.WriteString(`<EntityContainer Name="Service" Extends="ServiceRoot.v1_5_0.ServiceContainer"/>`)
	b.WriteString(`</Schema></edmx:DataServices></edmx:Edmx>`)

	return strings.TrimSpace(xmlfmt.FormatXML(b.String(), "", "  "))
}

// NewServiceRootRoutes registers Redfish API v1 service root routes
func NewServiceRootRoutes(r *gin.RouterGroup, info ServiceInfo, l logger.Interface) {
	metadata := metadataDocument()

	// Redfish Service Root (main entry point)
	r.GET("/", func(c *gin.Context) {
		payload := map[string]any{
			"@odata.type":        SchemaServiceRoot,
			"@odata.id":          PathRedfishRoot,
			"@odata.context":     PathMetadata + "#ServiceRoot.ServiceRoot",
			"Id":                 ServiceRootID,
			"Name":               ServiceRootName,
			"RedfishVersion":     RedfishVersion,
			"UUID":               info.UUID,
			"Product":            ServiceProduct,
			"Vendor":             ServiceVendor,
			"Systems":            ref(PathSystems),
			"Chassis":            ref(PathChassis),
			"Managers":           ref(PathManagers),
			"Registries":         ref(PathRegistries),
			"CertificateService": ref(PathCertService),
			"Links":              map[string]any{},
			"Oem": map[string]any{
				"Emulator": map[string]any{"Version": info.Version},
			},
		}

		writeResource(c, payload)
	})
	methodNotAllowed(r, "/", "ServiceRoot", MethodGET, MethodPOST, MethodPUT, MethodPATCH, MethodDELETE)

	// OData Service Document
	r.GET("/$metadata", func(c *gin.Context) {
		c.Header(ODataVersionHeader, ODataVersionValue)
		c.Data(http.StatusOK, "application/xml; charset=utf-8", []byte(metadata))
	})

	newCertificateServiceRoutes(r)

	l.Info("Registered Redfish v1 Service Root at %s", r.BasePath())
}

// newCertificateServiceRoutes serves a read-only certificate service with
// no certificates installed.
func newCertificateServiceRoutes(r *gin.RouterGroup) {
	locations := PathCertService + "/CertificateLocations"

	r.GET("/CertificateService", func(c *gin.Context) {
		writeResource(c, map[string]any{
			"@odata.type":          SchemaCertificateService,
			"@odata.id":            PathCertService,
			"@odata.context":       PathMetadata + "#CertificateService.CertificateService",
			"Id":                   "CertificateService",
			"Name":                 "Certificate Service",
			"CertificateLocations": ref(locations),
		})
	})
	methodNotAllowed(r, "/CertificateService", "CertificateService", MethodGET, MethodPOST, MethodPUT, MethodPATCH, MethodDELETE)

	r.GET("/CertificateService/CertificateLocations", func(c *gin.Context) {
		writeResource(c, map[string]any{
			"@odata.type":    SchemaCertificateLocations,
			"@odata.id":      locations,
			"@odata.context": PathMetadata + "#CertificateLocations.CertificateLocations",
			"Id":             "CertificateLocations",
			"Name":           "Certificate Locations",
			"Links": map[string]any{
				"Certificates": []ResourceReference{},
			},
		})
	})
	methodNotAllowed(r, "/CertificateService/CertificateLocations", "CertificateLocations", MethodGET, MethodPOST, MethodPUT, MethodPATCH, MethodDELETE)
}
