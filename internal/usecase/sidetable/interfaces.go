// Package sidetable keeps emulator-local state that backends do not carry
// natively: indicator LEDs keyed by UUID, volume records keyed by
// (UUID, storage ID) and virtual media state keyed by (manager UUID, device).
package sidetable

import (
	"context"

	"github.com/device-management-toolkit/bmc-emulator/internal/entity"
)

//go:generate mockgen -source ./interfaces.go -package mocks -destination ../../mocks/sidetable_mocks.go

// Repository is the persistence contract a side-table backend (memory, SQL,
// badger) implements. Implementations need not serialize read-modify-write
// sequences; Store does that.
type Repository interface {
	// GetIndicator reports found=false when the LED was never set.
	GetIndicator(ctx context.Context, uuid string) (state string, found bool, err error)
	PutIndicator(ctx context.Context, uuid, state string) error

	// ListVolumes returns the records of one storage resource ordered by ID.
	ListVolumes(ctx context.Context, uuid, storageID string) ([]entity.Volume, error)
	PutVolume(ctx context.Context, uuid, storageID string, volume entity.Volume) error
	DeleteVolume(ctx context.Context, uuid, storageID, volumeID string) error

	// GetVirtualMedia reports found=false for a device never written.
	GetVirtualMedia(ctx context.Context, uuid, deviceID string) (media entity.VirtualMedia, found bool, err error)
	PutVirtualMedia(ctx context.Context, uuid, deviceID string, media entity.VirtualMedia) error

	Close() error
}
