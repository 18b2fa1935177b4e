package redfish

import (
	"context"

	"github.com/device-management-toolkit/bmc-emulator/internal/entity"
	dto "github.com/device-management-toolkit/bmc-emulator/internal/entity/dto/v1"
)

//go:generate mockgen -source ./interfaces.go -package mocks -destination ../../mocks/redfish_mocks.go -mock_names Feature=MockRedfishFeature

// Feature is what the HTTP layer needs from the emulator core. Methods
// taking a uuid expect the canonical UUID returned by a Resolve method.
type Feature interface {
	ResolveSystem(ctx context.Context, identity string) (string, error)
	ResolveChassis(ctx context.Context, identity string) (string, error)
	ResolveManager(ctx context.Context, identity string) (string, error)

	Systems(ctx context.Context) ([]string, error)
	System(ctx context.Context, uuid string) (dto.System, error)
	PatchSystem(ctx context.Context, uuid string, patch dto.SystemPatch) error
	Reset(ctx context.Context, uuid, resetType string) error
	NICs(ctx context.Context, uuid string) ([]entity.NIC, error)
	NIC(ctx context.Context, uuid, nicID string) (entity.NIC, error)
	Processors(ctx context.Context, uuid string) ([]entity.Processor, error)
	Processor(ctx context.Context, uuid, processorID string) (entity.Processor, error)

	BIOS(ctx context.Context, uuid string) (dto.BIOS, error)
	SetBIOS(ctx context.Context, uuid string, attributes map[string]any) error
	ResetBIOS(ctx context.Context, uuid string) error
	SecureBoot(ctx context.Context, uuid string) (dto.SecureBoot, error)
	SetSecureBoot(ctx context.Context, uuid string, enabled *bool) error

	SimpleStorage(ctx context.Context, uuid string) ([]entity.SimpleStorage, error)
	SimpleStorageByID(ctx context.Context, uuid, id string) (entity.SimpleStorage, error)
	Storage(ctx context.Context, uuid string) ([]entity.Storage, error)
	StorageByID(ctx context.Context, uuid, storageID string) (entity.Storage, error)
	Drive(ctx context.Context, uuid, storageID, driveID string) (entity.Drive, error)
	Volumes(ctx context.Context, uuid, storageID string) ([]entity.Volume, error)
	Volume(ctx context.Context, uuid, storageID, volumeID string) (entity.Volume, error)
	CreateVolume(ctx context.Context, uuid, storageID string, req dto.VolumeRequest) (string, error)

	ChassisList(ctx context.Context) ([]string, error)
	Chassis(ctx context.Context, uuid string) (dto.Chassis, error)
	SetChassisIndicator(ctx context.Context, uuid, state string) error
	Thermal(ctx context.Context, uuid string) (dto.Thermal, error)

	Managers(ctx context.Context) ([]string, error)
	Manager(ctx context.Context, uuid string) (dto.Manager, error)
	VirtualMediaDevices(ctx context.Context, uuid string) ([]string, error)
	VirtualMedia(ctx context.Context, uuid, deviceID string) (dto.VirtualMedia, error)
	InsertMedia(ctx context.Context, uuid, deviceID string, req dto.InsertMediaRequest) error
	EjectMedia(ctx context.Context, uuid, deviceID string) error
}
