// Package dto holds the per-request resource descriptors the Redfish use
// case composes from driver queries and side tables.
package dto

import "github.com/device-management-toolkit/bmc-emulator/internal/entity"

// System is the projection of one computer system. Pointer fields are nil
// when the backend does not support them.
type System struct {
	Identity       string
	UUID           string
	Name           string
	PowerState     string
	TotalMemoryGiB *int
	TotalCPUs      *int
	BootTarget     string
	BootMode       *string
	IndicatorLED   string
	Managers       []string
	Chassis        []string
}

// Chassis is the projection of one chassis. Only the root chassis has
// non-empty contained resources.
type Chassis struct {
	Identity     string
	UUID         string
	Name         string
	IndicatorLED string
	Systems      []string
	Managers     []string
	ManagedBy    []string
	Storage      []entity.StorageRef
	Drives       []entity.DriveRef
}

// Thermal lists the systems whose sensors a chassis reports.
type Thermal struct {
	Identity string
	Systems  []string
}

// Manager is the projection of one BMC.
type Manager struct {
	entity.Manager
	Systems []string
	Chassis []string
}

// BIOS holds the current attribute set of a system.
type BIOS struct {
	Identity   string
	Attributes map[string]any
}

// SecureBoot holds the secure boot state of a system. Enabled is nil when
// the backend cannot report it.
type SecureBoot struct {
	Identity string
	Enabled  *bool
}

// BootPatch carries the Boot object of a system PATCH body.
type BootPatch struct {
	Target string
	Mode   string
}

// SystemPatch carries the recognized properties of a system PATCH body.
// Boot is nil when the body has no Boot object.
type SystemPatch struct {
	Boot         *BootPatch
	IndicatorLED string
}

// VolumeRequest carries the properties of a volume POST body.
type VolumeRequest struct {
	Name          string
	VolumeType    string
	CapacityBytes int64
}

// VirtualMedia is the projection of one virtual media device of a manager.
type VirtualMedia struct {
	Manager string
	Device  entity.VirtualMediaDevice
	State   entity.VirtualMedia
}

// InsertMediaRequest carries the parameters of a VirtualMedia.InsertMedia
// action. Nil flags take their defaults.
type InsertMediaRequest struct {
	Image          string
	Inserted       *bool
	WriteProtected *bool
}
