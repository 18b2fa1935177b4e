// Package entity holds the backend-neutral resource records the emulator
// projects into Redfish documents.
package entity

// Power states reported for systems.
const (
	PowerStateOn  = "On"
	PowerStateOff = "Off"
)

// Reset types accepted by ComputerSystem.Reset.
const (
	ResetOn               = "On"
	ResetForceOn          = "ForceOn"
	ResetForceOff         = "ForceOff"
	ResetGracefulShutdown = "GracefulShutdown"
	ResetGracefulRestart  = "GracefulRestart"
	ResetForceRestart     = "ForceRestart"
	ResetNmi              = "Nmi"
)

// ResetTypes lists every accepted reset type in the order Redfish
// advertises them.
var ResetTypes = []string{
	ResetOn, ResetForceOn, ResetForceOff, ResetGracefulShutdown,
	ResetGracefulRestart, ResetForceRestart, ResetNmi,
}

// Boot targets and modes.
const (
	BootTargetPxe = "Pxe"
	BootTargetHdd = "Hdd"
	BootTargetCd  = "Cd"

	BootModeUEFI   = "UEFI"
	BootModeLegacy = "Legacy"
)

// Indicator LED states.
const (
	IndicatorLit      = "Lit"
	IndicatorBlinking = "Blinking"
	IndicatorOff      = "Off"

	// DefaultIndicatorState is reported for resources whose LED was never set.
	DefaultIndicatorState = IndicatorOff
)

// NIC is a network interface of a system.
type NIC struct {
	ID  string `yaml:"id"`
	MAC string `yaml:"mac"`
}

// Processor describes one CPU socket of a system.
type Processor struct {
	ID      string `yaml:"id"`
	Socket  string `yaml:"socket"`
	Cores   int    `yaml:"cores"`
	Threads int    `yaml:"threads"`
	Model   string `yaml:"model"`
	Vendor  string `yaml:"vendor"`
}

// SimpleStorageDevice is a disk attached to a simple storage controller.
type SimpleStorageDevice struct {
	Name          string `yaml:"name"`
	CapacityBytes int64  `yaml:"capacity_bytes"`
}

// SimpleStorage is a storage controller with its attached disks.
type SimpleStorage struct {
	ID      string                `yaml:"id"`
	Name    string                `yaml:"name"`
	Devices []SimpleStorageDevice `yaml:"devices"`
}

// StorageController is a controller of a Storage resource.
type StorageController struct {
	MemberID  string   `yaml:"member_id"`
	Name      string   `yaml:"name"`
	SpeedGbps float64  `yaml:"speed_gbps"`
	Protocols []string `yaml:"protocols"`
}

// Storage is a storage subsystem of a system.
type Storage struct {
	ID          string              `yaml:"id"`
	Name        string              `yaml:"name"`
	Controllers []StorageController `yaml:"controllers"`
	DriveIDs    []string            `yaml:"drives"`
}

// Drive is a physical disk inside a Storage resource.
type Drive struct {
	ID            string `yaml:"id"`
	Name          string `yaml:"name"`
	CapacityBytes int64  `yaml:"capacity_bytes"`
	Protocol      string `yaml:"protocol"`
}

// Volume is a logical volume record kept in the volume side table.
// PoolName and BackendName tell the driver where the disk lives.
type Volume struct {
	ID            string `json:"id" yaml:"id"`
	Name          string `json:"name" yaml:"name"`
	VolumeType    string `json:"volume_type" yaml:"volume_type"`
	CapacityBytes int64  `json:"capacity_bytes" yaml:"capacity_bytes"`
	PoolName      string `json:"pool_name,omitempty" yaml:"pool_name"`
	BackendName   string `json:"backend_name,omitempty" yaml:"backend_name"`
}

// Chassis is a statically configured enclosure.
type Chassis struct {
	ID   string `yaml:"id"`
	Name string `yaml:"name"`
	UUID string `yaml:"uuid"`
}

// Manager is the BMC managing one system.
type Manager struct {
	ID                    string
	Name                  string
	UUID                  string
	ServiceEntryPointUUID string
}

// StorageRef points at one storage resource of one system.
type StorageRef struct {
	SystemUUID string
	StorageID  string
}

// DriveRef points at one drive inside one storage resource of one system.
type DriveRef struct {
	SystemUUID string
	StorageID  string
	DriveID    string
}

// VirtualMediaDevice is a statically configured virtual media slot every
// manager exposes.
type VirtualMediaDevice struct {
	ID         string   `yaml:"id"`
	Name       string   `yaml:"name"`
	MediaTypes []string `yaml:"media_types"`
}

// VirtualMedia is the insertion state of one device of one manager, kept
// in the virtual media side table. The zero value is an empty slot.
type VirtualMedia struct {
	Image          string `json:"image" yaml:"image"`
	ImageName      string `json:"image_name" yaml:"image_name"`
	Inserted       bool   `json:"inserted" yaml:"inserted"`
	WriteProtected bool   `json:"write_protected" yaml:"write_protected"`
}
