/*********************************************************************
 * Copyright (c) Intel Corporation 2025
 * SPDX-License-Identifier: Apache-2.0
 **********************************************************************/

// Package v1 implements the Redfish API v1 surface of the BMC emulator.
package v1

// Redfish Base Message Registry constants - used across multiple files
const (
	BaseErrorMessageID           = "Base.1.11.0.GeneralError"
	BaseMalformedJSONID          = "Base.1.11.0.MalformedJSON"
	BasePropertyMissingID        = "Base.1.11.0.PropertyMissing"
	BasePropertyValueNotInListID = "Base.1.11.0.PropertyValueNotInList"
	BaseResourceNotFoundID       = "Base.1.11.0.ResourceNotFound"
	BaseActionNotSupportedID     = "Base.1.11.0.ActionNotSupported"
	BaseNoValidSessionID         = "Base.1.11.0.NoValidSession"
	BaseNotAcceptableID          = "Base.1.11.0.NotAcceptable"
	BaseUnsupportedMediaTypeID   = "Base.1.11.0.UnsupportedMediaType"
	BaseOperationNotAllowedID    = "Base.1.11.0.OperationNotAllowed"
)

// HTTP Header constants for Redfish compliance
const (
	ContentTypeJSON       = "application/json; charset=utf-8"
	ContentTypeHeaderName = "Content-Type"
	ODataVersionValue     = "4.0"
	ODataVersionHeader    = "OData-Version"
	CacheControlValue     = "no-cache"
	CacheControlHeader    = "Cache-Control"
	XFrameOptionsHeader   = "X-Frame-Options"
	XFrameOptionsValue    = "DENY"
	CSPHeader             = "Content-Security-Policy"
	CSPValue              = "default-src 'self'"
)

// HTTP methods used by the 405 handlers.
const (
	MethodGET    = "GET"
	MethodPOST   = "POST"
	MethodPUT    = "PUT"
	MethodPATCH  = "PATCH"
	MethodDELETE = "DELETE"
)

// Redfish Service Information
const (
	RedfishVersion  = "1.11.0"
	ServiceRootID   = "RedfishService"
	ServiceRootName = "Redfish Service"
	ServiceProduct  = "BMC Emulator"
	ServiceVendor   = "Device Management Toolkit"
)

// Common Redfish Schema Types - used across multiple files
const (
	SchemaServiceRoot                = "#ServiceRoot.v1_5_0.ServiceRoot"
	SchemaComputerSystem             = "#ComputerSystem.v1_10_0.ComputerSystem"
	SchemaComputerSystemCollection   = "#ComputerSystemCollection.ComputerSystemCollection"
	SchemaChassis                    = "#Chassis.v1_5_0.Chassis"
	SchemaChassisCollection          = "#ChassisCollection.ChassisCollection"
	SchemaThermal                    = "#Thermal.v1_3_0.Thermal"
	SchemaManager                    = "#Manager.v1_3_1.Manager"
	SchemaManagerCollection          = "#ManagerCollection.ManagerCollection"
	SchemaEthernetInterface          = "#EthernetInterface.v1_4_0.EthernetInterface"
	SchemaEthernetCollection         = "#EthernetInterfaceCollection.EthernetInterfaceCollection"
	SchemaProcessor                  = "#Processor.v1_0_0.Processor"
	SchemaProcessorCollection        = "#ProcessorCollection.ProcessorCollection"
	SchemaBios                       = "#Bios.v1_0_0.Bios"
	SchemaSecureBoot                 = "#SecureBoot.v1_1_0.SecureBoot"
	SchemaSimpleStorage              = "#SimpleStorage.v1_2_0.SimpleStorage"
	SchemaSimpleStorageCollection    = "#SimpleStorageCollection.SimpleStorageCollection"
	SchemaStorage                    = "#Storage.v1_4_0.Storage"
	SchemaStorageCollection          = "#StorageCollection.StorageCollection"
	SchemaDrive                      = "#Drive.v1_4_0.Drive"
	SchemaVolume                     = "#Volume.v1_0_3.Volume"
	SchemaVolumeCollection           = "#VolumeCollection.VolumeCollection"
	SchemaMessageRegistryFileCollect = "#MessageRegistryFileCollection.MessageRegistryFileCollection"
	SchemaVirtualMedia               = "#VirtualMedia.v1_2_0.VirtualMedia"
	SchemaVirtualMediaCollection     = "#VirtualMediaCollection.VirtualMediaCollection"
	SchemaCertificateService         = "#CertificateService.v1_0_0.CertificateService"
	SchemaCertificateLocations       = "#CertificateLocations.v1_0_0.CertificateLocations"
)

// Common Redfish API Paths - used across multiple files
const (
	PathRedfishRoot = "/redfish/v1/"
	PathSystems     = PathRedfishRoot + "Systems"
	PathChassis     = PathRedfishRoot + "Chassis"
	PathManagers    = PathRedfishRoot + "Managers"
	PathRegistries  = PathRedfishRoot + "Registries"
	PathCertService = PathRedfishRoot + "CertificateService"
	PathMetadata    = PathRedfishRoot + "$metadata"
)

// BuildSystemPath builds a path to a specific system: /redfish/v1/Systems/{systemID}
func BuildSystemPath(systemID string) string {
	return PathSystems + "/" + systemID
}

// BuildChassisPath builds a path to a specific chassis: /redfish/v1/Chassis/{chassisID}
func BuildChassisPath(chassisID string) string {
	return PathChassis + "/" + chassisID
}

// BuildManagerPath builds a path to a specific manager: /redfish/v1/Managers/{managerID}
func BuildManagerPath(managerID string) string {
	return PathManagers + "/" + managerID
}

// BuildVirtualMediaPath builds /redfish/v1/Managers/{managerID}/VirtualMedia/{deviceID}
func BuildVirtualMediaPath(managerID, deviceID string) string {
	return BuildManagerPath(managerID) + "/VirtualMedia/" + deviceID
}

// BuildStoragePath builds /redfish/v1/Systems/{systemID}/Storage/{storageID}
func BuildStoragePath(systemID, storageID string) string {
	return BuildSystemPath(systemID) + "/Storage/" + storageID
}

// BuildDrivePath builds /redfish/v1/Systems/{systemID}/Storage/{storageID}/Drives/{driveID}
func BuildDrivePath(systemID, storageID, driveID string) string {
	return BuildStoragePath(systemID, storageID) + "/Drives/" + driveID
}

// BuildVolumePath builds /redfish/v1/Systems/{systemID}/Storage/{storageID}/Volumes/{volumeID}
func BuildVolumePath(systemID, storageID, volumeID string) string {
	return BuildStoragePath(systemID, storageID) + "/Volumes/" + volumeID
}

// Common value constants
const (
	StateEnabled = "Enabled"
	HealthOK     = "OK"
)
