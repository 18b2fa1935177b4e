// Package storage serves the statically configured storage subsystems and
// drives of each computer system.
package storage

import (
	"context"
	"sort"

	"github.com/device-management-toolkit/bmc-emulator/internal/entity"
)

// Driver exposes storage and drives keyed by system UUID.
type Driver interface {
	StorageCollection(ctx context.Context, systemUUID string) ([]entity.Storage, error)
	AllStorage(ctx context.Context) ([]entity.StorageRef, error)
	Drives(ctx context.Context, systemUUID, storageID string) ([]entity.Drive, error)
	AllDrives(ctx context.Context) ([]entity.DriveRef, error)
}

// StaticDriver serves storage from configuration.
type StaticDriver struct {
	storage map[string][]entity.Storage
	// drives is keyed by system UUID, then storage ID.
	drives map[string]map[string][]entity.Drive
}

var _ Driver = (*StaticDriver)(nil)

// NewStaticDriver -.
func NewStaticDriver(storage map[string][]entity.Storage, drives map[string]map[string][]entity.Drive) *StaticDriver {
	if storage == nil {
		storage = map[string][]entity.Storage{}
	}

	if drives == nil {
		drives = map[string]map[string][]entity.Drive{}
	}

	return &StaticDriver{storage: storage, drives: drives}
}

// StorageCollection -.
func (d *StaticDriver) StorageCollection(_ context.Context, systemUUID string) ([]entity.Storage, error) {
	out := make([]entity.Storage, len(d.storage[systemUUID]))
	copy(out, d.storage[systemUUID])

	return out, nil
}

// AllStorage lists every storage resource, ordered by system UUID.
func (d *StaticDriver) AllStorage(_ context.Context) ([]entity.StorageRef, error) {
	refs := []entity.StorageRef{}

	for _, uuid := range sortedKeys(d.storage) {
		for _, s := range d.storage[uuid] {
			refs = append(refs, entity.StorageRef{SystemUUID: uuid, StorageID: s.ID})
		}
	}

	return refs, nil
}

// Drives -.
func (d *StaticDriver) Drives(_ context.Context, systemUUID, storageID string) ([]entity.Drive, error) {
	out := make([]entity.Drive, len(d.drives[systemUUID][storageID]))
	copy(out, d.drives[systemUUID][storageID])

	return out, nil
}

// AllDrives lists every drive, ordered by system UUID and storage ID.
func (d *StaticDriver) AllDrives(_ context.Context) ([]entity.DriveRef, error) {
	refs := []entity.DriveRef{}

	for _, uuid := range sortedKeys(d.drives) {
		for _, sid := range sortedKeys(d.drives[uuid]) {
			for _, drv := range d.drives[uuid][sid] {
				refs = append(refs, entity.DriveRef{SystemUUID: uuid, StorageID: sid, DriveID: drv.ID})
			}
		}
	}

	return refs, nil
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}

	sort.Strings(keys)

	return keys
}
