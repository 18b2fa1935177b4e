package sidetable

import (
	"context"
	"fmt"

	"github.com/device-management-toolkit/bmc-emulator/internal/entity"
	"github.com/device-management-toolkit/bmc-emulator/pkg/keylock"
)

// Store serializes side-table access per key: one lock per indicator UUID,
// one per (UUID, storage ID) volume table and one per virtual media device.
type Store struct {
	repo  Repository
	locks *keylock.Locker
}

// NewStore -.
func NewStore(repo Repository) *Store {
	return &Store{repo: repo, locks: keylock.New()}
}

// IndicatorState returns the LED state of uuid, or
// entity.DefaultIndicatorState when it was never set.
func (s *Store) IndicatorState(ctx context.Context, uuid string) (string, error) {
	lock, err := s.locks.Acquire(ctx, indicatorKey(uuid))
	if err != nil {
		return "", err
	}
	defer lock.Release()

	state, found, err := s.repo.GetIndicator(ctx, uuid)
	if err != nil {
		return "", fmt.Errorf("sidetable - get indicator %s: %w", uuid, err)
	}

	if !found {
		return entity.DefaultIndicatorState, nil
	}

	return state, nil
}

// SetIndicatorState -.
func (s *Store) SetIndicatorState(ctx context.Context, uuid, state string) error {
	lock, err := s.locks.Acquire(ctx, indicatorKey(uuid))
	if err != nil {
		return err
	}
	defer lock.Release()

	if err := s.repo.PutIndicator(ctx, uuid, state); err != nil {
		return fmt.Errorf("sidetable - set indicator %s: %w", uuid, err)
	}

	return nil
}

// VolumeTable is the view of one (UUID, storage ID) volume table handed to
// WithVolumes callbacks. It is only valid while the callback runs.
type VolumeTable struct {
	ctx       context.Context
	repo      Repository
	uuid      string
	storageID string
}

// List -.
func (t *VolumeTable) List() ([]entity.Volume, error) {
	vols, err := t.repo.ListVolumes(t.ctx, t.uuid, t.storageID)
	if err != nil {
		return nil, fmt.Errorf("sidetable - list volumes %s/%s: %w", t.uuid, t.storageID, err)
	}

	return vols, nil
}

// Add -.
func (t *VolumeTable) Add(v entity.Volume) error {
	if err := t.repo.PutVolume(t.ctx, t.uuid, t.storageID, v); err != nil {
		return fmt.Errorf("sidetable - add volume %s: %w", v.ID, err)
	}

	return nil
}

// Delete -.
func (t *VolumeTable) Delete(volumeID string) error {
	if err := t.repo.DeleteVolume(t.ctx, t.uuid, t.storageID, volumeID); err != nil {
		return fmt.Errorf("sidetable - delete volume %s: %w", volumeID, err)
	}

	return nil
}

// WithVolumes runs fn while holding the lock of the (uuid, storageID)
// volume table, so reconcile-on-read and creation never interleave.
func (s *Store) WithVolumes(ctx context.Context, uuid, storageID string, fn func(*VolumeTable) error) error {
	lock, err := s.locks.Acquire(ctx, volumesKey(uuid, storageID))
	if err != nil {
		return err
	}
	defer lock.Release()

	return fn(&VolumeTable{ctx: ctx, repo: s.repo, uuid: uuid, storageID: storageID})
}

// VirtualMedia returns the state of one device, or an empty slot when it
// was never written.
func (s *Store) VirtualMedia(ctx context.Context, uuid, deviceID string) (entity.VirtualMedia, error) {
	lock, err := s.locks.Acquire(ctx, vmediaKey(uuid, deviceID))
	if err != nil {
		return entity.VirtualMedia{}, err
	}
	defer lock.Release()

	m, _, err := s.repo.GetVirtualMedia(ctx, uuid, deviceID)
	if err != nil {
		return entity.VirtualMedia{}, fmt.Errorf("sidetable - get virtual media %s/%s: %w", uuid, deviceID, err)
	}

	return m, nil
}

// UpdateVirtualMedia applies fn to the current device state under the
// device lock and stores the result. Nothing is written when fn fails.
func (s *Store) UpdateVirtualMedia(ctx context.Context, uuid, deviceID string, fn func(*entity.VirtualMedia) error) error {
	lock, err := s.locks.Acquire(ctx, vmediaKey(uuid, deviceID))
	if err != nil {
		return err
	}
	defer lock.Release()

	m, _, err := s.repo.GetVirtualMedia(ctx, uuid, deviceID)
	if err != nil {
		return fmt.Errorf("sidetable - get virtual media %s/%s: %w", uuid, deviceID, err)
	}

	if err := fn(&m); err != nil {
		return err
	}

	if err := s.repo.PutVirtualMedia(ctx, uuid, deviceID, m); err != nil {
		return fmt.Errorf("sidetable - put virtual media %s/%s: %w", uuid, deviceID, err)
	}

	return nil
}

// Seed writes configured initial values for entries that do not exist yet.
// volumes is keyed by system UUID, then storage ID.
func (s *Store) Seed(ctx context.Context, indicators map[string]string, volumes map[string]map[string][]entity.Volume) error {
	for uuid, state := range indicators {
		_, found, err := s.repo.GetIndicator(ctx, uuid)
		if err != nil {
			return fmt.Errorf("sidetable - seed indicator %s: %w", uuid, err)
		}

		if !found {
			if err := s.SetIndicatorState(ctx, uuid, state); err != nil {
				return err
			}
		}
	}

	for uuid, byStorage := range volumes {
		for storageID, vols := range byStorage {
			err := s.WithVolumes(ctx, uuid, storageID, func(t *VolumeTable) error {
				existing, err := t.List()
				if err != nil || len(existing) > 0 {
					return err
				}

				for _, v := range vols {
					if err := t.Add(v); err != nil {
						return err
					}
				}

				return nil
			})
			if err != nil {
				return err
			}
		}
	}

	return nil
}

// Close releases the underlying repository.
func (s *Store) Close() error {
	return s.repo.Close()
}

func indicatorKey(uuid string) string {
	return "indicator/" + uuid
}

func volumesKey(uuid, storageID string) string {
	return "volumes/" + uuid + "/" + storageID
}

func vmediaKey(uuid, deviceID string) string {
	return "vmedia/" + uuid + "/" + deviceID
}
