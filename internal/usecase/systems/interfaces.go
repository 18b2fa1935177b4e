// Package systems defines the capability contract every computer system
// backend (fake, hypervisor, cloud) implements.
package systems

import (
	"context"

	"github.com/device-management-toolkit/bmc-emulator/internal/entity"
)

//go:generate mockgen -source ./interfaces.go -package mocks -destination ../../mocks/systems_mocks.go -mock_names Driver=MockSystemsDriver

// Driver is the uniform backend contract. Every method except Systems and
// UUID takes a canonical UUID. Getters may fail with entity.ErrNotSupported;
// setters are synchronous and visible to the next getter call.
type Driver interface {
	// Driver names the backend for logs.
	Driver() string
	// Systems lists the canonical UUIDs of every instance.
	Systems(ctx context.Context) ([]string, error)
	// UUID resolves a UUID or alias to the canonical UUID. It fails with
	// entity.ErrNotFound when nothing matches.
	UUID(ctx context.Context, identity string) (string, error)
	Name(ctx context.Context, uuid string) (string, error)

	PowerState(ctx context.Context, uuid string) (string, error)
	SetPowerState(ctx context.Context, uuid, resetType string) error

	BootDevice(ctx context.Context, uuid string) (string, error)
	SetBootDevice(ctx context.Context, uuid, device string) error
	BootMode(ctx context.Context, uuid string) (string, error)
	SetBootMode(ctx context.Context, uuid, mode string) error

	TotalMemory(ctx context.Context, uuid string) (int, error)
	TotalCPUs(ctx context.Context, uuid string) (int, error)

	BIOS(ctx context.Context, uuid string) (map[string]any, error)
	SetBIOS(ctx context.Context, uuid string, attributes map[string]any) error
	ResetBIOS(ctx context.Context, uuid string) error

	NICs(ctx context.Context, uuid string) ([]entity.NIC, error)
	Processors(ctx context.Context, uuid string) ([]entity.Processor, error)

	SecureBoot(ctx context.Context, uuid string) (bool, error)
	SetSecureBoot(ctx context.Context, uuid string, enabled bool) error

	SimpleStorage(ctx context.Context, uuid string) ([]entity.SimpleStorage, error)
	// StorageVolume looks up the backend disk behind volume without creating
	// it. It returns the volume ID, or "" when the disk or its pool is gone.
	StorageVolume(ctx context.Context, volume entity.Volume) (string, error)
	// FindOrCreateStorageVolume binds volume to a backend disk, creating it
	// when missing. It returns the volume ID, or "" when the disk cannot be
	// materialized (for instance because its pool is gone).
	FindOrCreateStorageVolume(ctx context.Context, volume entity.Volume) (string, error)
}

// DefaultBIOSAttributes is the attribute set a BIOS reset restores.
func DefaultBIOSAttributes() map[string]any {
	return map[string]any{
		"BootMode":      "Uefi",
		"EmbeddedSata":  "Raid",
		"NicBoot1":      "NetworkBoot",
		"ProcTurboMode": "Enabled",
	}
}

// IsResetType reports whether t is one of the accepted reset types.
func IsResetType(t string) bool {
	for _, r := range entity.ResetTypes {
		if r == t {
			return true
		}
	}

	return false
}

// IsBootTarget reports whether t is a boot target backends accept.
func IsBootTarget(t string) bool {
	switch t {
	case entity.BootTargetPxe, entity.BootTargetHdd, entity.BootTargetCd:
		return true
	default:
		return false
	}
}

// IsBootMode reports whether m is a boot mode backends accept.
func IsBootMode(m string) bool {
	return m == entity.BootModeUEFI || m == entity.BootModeLegacy
}
