package sidetable

import (
	"context"
	"sort"
	"sync"

	"github.com/device-management-toolkit/bmc-emulator/internal/entity"
)

// MemoryRepository keeps side tables in process memory.
type MemoryRepository struct {
	mu         sync.RWMutex
	indicators map[string]string
	volumes    map[volumeKey]map[string]entity.Volume
	media      map[mediaKey]entity.VirtualMedia
}

type volumeKey struct {
	uuid      string
	storageID string
}

type mediaKey struct {
	uuid     string
	deviceID string
}

var _ Repository = (*MemoryRepository)(nil)

// NewMemoryRepository -.
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		indicators: make(map[string]string),
		volumes:    make(map[volumeKey]map[string]entity.Volume),
		media:      make(map[mediaKey]entity.VirtualMedia),
	}
}

// GetIndicator -.
func (r *MemoryRepository) GetIndicator(_ context.Context, uuid string) (string, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	state, ok := r.indicators[uuid]

	return state, ok, nil
}

// PutIndicator -.
func (r *MemoryRepository) PutIndicator(_ context.Context, uuid, state string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.indicators[uuid] = state

	return nil
}

// ListVolumes -.
func (r *MemoryRepository) ListVolumes(_ context.Context, uuid, storageID string) ([]entity.Volume, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	table := r.volumes[volumeKey{uuid, storageID}]

	out := make([]entity.Volume, 0, len(table))
	for _, v := range table {
		out = append(out, v)
	}

	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	return out, nil
}

// PutVolume -.
func (r *MemoryRepository) PutVolume(_ context.Context, uuid, storageID string, volume entity.Volume) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := volumeKey{uuid, storageID}
	if r.volumes[key] == nil {
		r.volumes[key] = make(map[string]entity.Volume)
	}

	r.volumes[key][volume.ID] = volume

	return nil
}

// DeleteVolume -.
func (r *MemoryRepository) DeleteVolume(_ context.Context, uuid, storageID, volumeID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := volumeKey{uuid, storageID}
	delete(r.volumes[key], volumeID)

	if len(r.volumes[key]) == 0 {
		delete(r.volumes, key)
	}

	return nil
}

// GetVirtualMedia -.
func (r *MemoryRepository) GetVirtualMedia(_ context.Context, uuid, deviceID string) (entity.VirtualMedia, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	m, ok := r.media[mediaKey{uuid, deviceID}]

	return m, ok, nil
}

// PutVirtualMedia -.
func (r *MemoryRepository) PutVirtualMedia(_ context.Context, uuid, deviceID string, media entity.VirtualMedia) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.media[mediaKey{uuid, deviceID}] = media

	return nil
}

// Close -.
func (r *MemoryRepository) Close() error {
	return nil
}
