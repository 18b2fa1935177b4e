// Package fake implements an in-memory systems backend seeded from a YAML
// inventory. It is the default backend and the one tests exercise.
package fake

import (
	"context"
	"fmt"
	"maps"
	"os"
	"sort"
	"sync"

	"gopkg.in/yaml.v2"

	"github.com/device-management-toolkit/bmc-emulator/internal/entity"
	"github.com/device-management-toolkit/bmc-emulator/internal/usecase/systems"
)

// DefaultPool is the storage pool volumes land in when they name none.
const DefaultPool = "default"

// System is one inventory entry. Optional capabilities are pointers; a nil
// pointer makes the matching getter report entity.ErrNotSupported.
type System struct {
	UUID          string                 `yaml:"uuid"`
	Name          string                 `yaml:"name"`
	PowerState    string                 `yaml:"power_state"`
	BootDevice    string                 `yaml:"boot_device"`
	BootMode      *string                `yaml:"boot_mode"`
	MemoryGiB     *int                   `yaml:"memory_gib"`
	CPUs          *int                   `yaml:"cpus"`
	SecureBoot    *bool                  `yaml:"secure_boot"`
	BIOS          map[string]any         `yaml:"bios"`
	NICs          []entity.NIC           `yaml:"nics"`
	Processors    []entity.Processor     `yaml:"processors"`
	SimpleStorage []entity.SimpleStorage `yaml:"simple_storage"`
}

// Inventory is the document a fake inventory file holds.
type Inventory struct {
	Systems []System `yaml:"systems"`
	Pools   []string `yaml:"pools"`
}

// Driver keeps every system in memory. All state is guarded by mu.
type Driver struct {
	mu      sync.Mutex
	order   []string
	systems map[string]*System
	// pools maps a pool name to the volumes materialized in it.
	pools map[string]map[string]entity.Volume
}

var _ systems.Driver = (*Driver)(nil)

// DefaultInventory is served when no inventory file is configured.
func DefaultInventory() Inventory {
	mode := entity.BootModeUEFI
	memory := 1
	cpus := 1
	secure := false

	return Inventory{
		Systems: []System{{
			UUID:       "27946b59-9e44-4fa7-8e91-f3527a1ef094",
			Name:       "fake",
			PowerState: entity.PowerStateOff,
			BootDevice: entity.BootTargetHdd,
			BootMode:   &mode,
			MemoryGiB:  &memory,
			CPUs:       &cpus,
			SecureBoot: &secure,
			NICs: []entity.NIC{
				{ID: "00:5c:52:31:3a:9c", MAC: "00:5c:52:31:3a:9c"},
			},
			Processors: []entity.Processor{
				{ID: "CPU0", Socket: "CPU 0", Cores: 1, Threads: 1, Model: "Virtual CPU", Vendor: "QEMU"},
			},
			SimpleStorage: []entity.SimpleStorage{{
				ID:   "virtio",
				Name: "virtio Controller",
				Devices: []entity.SimpleStorageDevice{
					{Name: "vda", CapacityBytes: 10 << 30},
				},
			}},
		}},
		Pools: []string{DefaultPool},
	}
}

// LoadInventory reads a YAML inventory file.
func LoadInventory(path string) (Inventory, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Inventory{}, fmt.Errorf("fake - read inventory: %w", err)
	}

	var inv Inventory
	if err := yaml.Unmarshal(data, &inv); err != nil {
		return Inventory{}, fmt.Errorf("fake - parse inventory %s: %w", path, err)
	}

	if len(inv.Pools) == 0 {
		inv.Pools = []string{DefaultPool}
	}

	return inv, nil
}

// New builds a driver holding a private copy of inv.
func New(inv Inventory) (*Driver, error) {
	d := &Driver{
		systems: make(map[string]*System, len(inv.Systems)),
		pools:   make(map[string]map[string]entity.Volume, len(inv.Pools)),
	}

	for i := range inv.Systems {
		s := inv.Systems[i]
		if s.UUID == "" {
			return nil, fmt.Errorf("fake - system %q has no uuid", s.Name)
		}

		if _, dup := d.systems[s.UUID]; dup {
			return nil, fmt.Errorf("fake - duplicate system uuid %s", s.UUID)
		}

		if s.PowerState == "" {
			s.PowerState = entity.PowerStateOff
		}

		if s.BootDevice == "" {
			s.BootDevice = entity.BootTargetHdd
		}

		s.BootMode = clonePtr(s.BootMode)
		s.MemoryGiB = clonePtr(s.MemoryGiB)
		s.CPUs = clonePtr(s.CPUs)
		s.SecureBoot = clonePtr(s.SecureBoot)

		if s.BIOS == nil {
			s.BIOS = systems.DefaultBIOSAttributes()
		} else {
			s.BIOS = maps.Clone(s.BIOS)
		}

		d.systems[s.UUID] = &s
		d.order = append(d.order, s.UUID)
	}

	for _, p := range inv.Pools {
		d.pools[p] = map[string]entity.Volume{}
	}

	return d, nil
}

// Driver -.
func (d *Driver) Driver() string {
	return "fake"
}

// Systems -.
func (d *Driver) Systems(_ context.Context) ([]string, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	out := make([]string, len(d.order))
	copy(out, d.order)

	return out, nil
}

// UUID matches UUIDs before names.
func (d *Driver) UUID(_ context.Context, identity string) (string, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if _, ok := d.systems[identity]; ok {
		return identity, nil
	}

	for _, id := range d.order {
		if d.systems[id].Name == identity {
			return id, nil
		}
	}

	return "", entity.NotFoundf("fake system %q", identity)
}

// Name -.
func (d *Driver) Name(_ context.Context, uuid string) (string, error) {
	var name string

	err := d.with(uuid, func(s *System) error {
		name = s.Name

		return nil
	})

	return name, err
}

// PowerState -.
func (d *Driver) PowerState(_ context.Context, uuid string) (string, error) {
	var state string

	err := d.with(uuid, func(s *System) error {
		state = s.PowerState

		return nil
	})

	return state, err
}

// SetPowerState applies a reset type. Restarts leave the system running;
// an NMI does not change the power state.
func (d *Driver) SetPowerState(_ context.Context, uuid, resetType string) error {
	return d.with(uuid, func(s *System) error {
		switch resetType {
		case entity.ResetOn, entity.ResetForceOn, entity.ResetGracefulRestart, entity.ResetForceRestart:
			s.PowerState = entity.PowerStateOn
		case entity.ResetForceOff, entity.ResetGracefulShutdown:
			s.PowerState = entity.PowerStateOff
		case entity.ResetNmi:
		default:
			return &entity.MalformedRequestError{Property: "ResetType", Value: resetType}
		}

		return nil
	})
}

// BootDevice -.
func (d *Driver) BootDevice(_ context.Context, uuid string) (string, error) {
	var dev string

	err := d.with(uuid, func(s *System) error {
		dev = s.BootDevice

		return nil
	})

	return dev, err
}

// SetBootDevice -.
func (d *Driver) SetBootDevice(_ context.Context, uuid, device string) error {
	if !systems.IsBootTarget(device) {
		return &entity.MalformedRequestError{Property: "BootSourceOverrideTarget", Value: device}
	}

	return d.with(uuid, func(s *System) error {
		s.BootDevice = device

		return nil
	})
}

// BootMode -.
func (d *Driver) BootMode(_ context.Context, uuid string) (string, error) {
	var mode string

	err := d.with(uuid, func(s *System) error {
		if s.BootMode == nil {
			return entity.NotSupportedf("fake boot mode")
		}

		mode = *s.BootMode

		return nil
	})

	return mode, err
}

// SetBootMode -.
func (d *Driver) SetBootMode(_ context.Context, uuid, mode string) error {
	if !systems.IsBootMode(mode) {
		return &entity.MalformedRequestError{Property: "BootSourceOverrideMode", Value: mode}
	}

	return d.with(uuid, func(s *System) error {
		if s.BootMode == nil {
			return entity.NotSupportedf("fake boot mode")
		}

		*s.BootMode = mode

		return nil
	})
}

// TotalMemory -.
func (d *Driver) TotalMemory(_ context.Context, uuid string) (int, error) {
	var gib int

	err := d.with(uuid, func(s *System) error {
		if s.MemoryGiB == nil {
			return entity.NotSupportedf("fake memory")
		}

		gib = *s.MemoryGiB

		return nil
	})

	return gib, err
}

// TotalCPUs -.
func (d *Driver) TotalCPUs(_ context.Context, uuid string) (int, error) {
	var cpus int

	err := d.with(uuid, func(s *System) error {
		if s.CPUs == nil {
			return entity.NotSupportedf("fake cpus")
		}

		cpus = *s.CPUs

		return nil
	})

	return cpus, err
}

// BIOS -.
func (d *Driver) BIOS(_ context.Context, uuid string) (map[string]any, error) {
	var attrs map[string]any

	err := d.with(uuid, func(s *System) error {
		attrs = maps.Clone(s.BIOS)

		return nil
	})

	return attrs, err
}

// SetBIOS merges attributes into the current set.
func (d *Driver) SetBIOS(_ context.Context, uuid string, attributes map[string]any) error {
	return d.with(uuid, func(s *System) error {
		maps.Copy(s.BIOS, attributes)

		return nil
	})
}

// ResetBIOS -.
func (d *Driver) ResetBIOS(_ context.Context, uuid string) error {
	return d.with(uuid, func(s *System) error {
		s.BIOS = systems.DefaultBIOSAttributes()

		return nil
	})
}

// NICs -.
func (d *Driver) NICs(_ context.Context, uuid string) ([]entity.NIC, error) {
	var nics []entity.NIC

	err := d.with(uuid, func(s *System) error {
		nics = append(nics, s.NICs...)

		return nil
	})

	return nics, err
}

// Processors -.
func (d *Driver) Processors(_ context.Context, uuid string) ([]entity.Processor, error) {
	var procs []entity.Processor

	err := d.with(uuid, func(s *System) error {
		procs = append(procs, s.Processors...)

		return nil
	})

	return procs, err
}

// SecureBoot -.
func (d *Driver) SecureBoot(_ context.Context, uuid string) (bool, error) {
	var enabled bool

	err := d.with(uuid, func(s *System) error {
		if s.SecureBoot == nil {
			return entity.NotSupportedf("fake secure boot")
		}

		enabled = *s.SecureBoot

		return nil
	})

	return enabled, err
}

// SetSecureBoot -.
func (d *Driver) SetSecureBoot(_ context.Context, uuid string, enabled bool) error {
	return d.with(uuid, func(s *System) error {
		if s.SecureBoot == nil {
			return entity.NotSupportedf("fake secure boot")
		}

		*s.SecureBoot = enabled

		return nil
	})
}

// SimpleStorage -.
func (d *Driver) SimpleStorage(_ context.Context, uuid string) ([]entity.SimpleStorage, error) {
	var out []entity.SimpleStorage

	err := d.with(uuid, func(s *System) error {
		out = append(out, s.SimpleStorage...)

		return nil
	})

	return out, err
}

// StorageVolume reports whether the disk of volume still exists.
func (d *Driver) StorageVolume(_ context.Context, volume entity.Volume) (string, error) {
	if volume.ID == "" {
		return "", &entity.MalformedRequestError{Property: "Id"}
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	if _, ok := d.pools[poolName(volume)][backendName(volume)]; !ok {
		return "", nil
	}

	return volume.ID, nil
}

// FindOrCreateStorageVolume materializes volume in its pool. A missing pool
// yields an empty ID.
func (d *Driver) FindOrCreateStorageVolume(_ context.Context, volume entity.Volume) (string, error) {
	if volume.ID == "" {
		return "", &entity.MalformedRequestError{Property: "Id"}
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	pool, ok := d.pools[poolName(volume)]
	if !ok {
		return "", nil
	}

	name := backendName(volume)
	if _, exists := pool[name]; !exists {
		pool[name] = volume
	}

	return volume.ID, nil
}

// RemoveBackingVolume deletes a materialized disk behind the emulator's back,
// the way an operator would on a real hypervisor.
func (d *Driver) RemoveBackingVolume(pool, name string) {
	d.mu.Lock()
	defer d.mu.Unlock()

	delete(d.pools[pool], name)
}

// RemovePool deletes a whole pool and every disk in it.
func (d *Driver) RemovePool(pool string) {
	d.mu.Lock()
	defer d.mu.Unlock()

	delete(d.pools, pool)
}

// BackingVolumes lists the disk names materialized in pool, sorted.
func (d *Driver) BackingVolumes(pool string) []string {
	d.mu.Lock()
	defer d.mu.Unlock()

	names := make([]string, 0, len(d.pools[pool]))
	for n := range d.pools[pool] {
		names = append(names, n)
	}

	sort.Strings(names)

	return names
}

func (d *Driver) with(uuid string, fn func(*System) error) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	s, ok := d.systems[uuid]
	if !ok {
		return entity.NotFoundf("fake system %q", uuid)
	}

	return fn(s)
}

func clonePtr[T any](p *T) *T {
	if p == nil {
		return nil
	}

	v := *p

	return &v
}

func poolName(v entity.Volume) string {
	if v.PoolName != "" {
		return v.PoolName
	}

	return DefaultPool
}

func backendName(v entity.Volume) string {
	if v.BackendName != "" {
		return v.BackendName
	}

	return v.ID
}
