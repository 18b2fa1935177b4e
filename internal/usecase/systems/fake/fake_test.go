package fake

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/device-management-toolkit/bmc-emulator/internal/entity"
)

const inventoryYAML = `
systems:
  - uuid: 11111111-2222-3333-4444-555555555555
    name: alpha
    power_state: "On"
    memory_gib: 4
    cpus: 2
    nics:
      - id: nic1
        mac: "52:54:00:aa:bb:01"
  - uuid: 66666666-7777-8888-9999-000000000000
    name: beta
pools:
  - default
  - fast
`

func newDriver(t *testing.T) *Driver {
	t.Helper()

	path := filepath.Join(t.TempDir(), "inventory.yaml")
	require.NoError(t, os.WriteFile(path, []byte(inventoryYAML), 0o600))

	inv, err := LoadInventory(path)
	require.NoError(t, err)

	d, err := New(inv)
	require.NoError(t, err)

	return d
}

func TestLoadInventory(t *testing.T) {
	t.Parallel()

	d := newDriver(t)
	ctx := context.Background()

	uuids, err := d.Systems(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"11111111-2222-3333-4444-555555555555", "66666666-7777-8888-9999-000000000000"}, uuids)

	mem, err := d.TotalMemory(ctx, uuids[0])
	require.NoError(t, err)
	assert.Equal(t, 4, mem)

	_, err = d.TotalMemory(ctx, uuids[1])
	require.ErrorIs(t, err, entity.ErrNotSupported)

	state, err := d.PowerState(ctx, uuids[1])
	require.NoError(t, err)
	assert.Equal(t, entity.PowerStateOff, state)

	_, err = LoadInventory(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}

func TestUUIDPrefersUUIDOverName(t *testing.T) {
	t.Parallel()

	inv := Inventory{Systems: []System{
		{UUID: "a", Name: "b"},
		{UUID: "b", Name: "c"},
	}}

	d, err := New(inv)
	require.NoError(t, err)

	got, err := d.UUID(context.Background(), "b")
	require.NoError(t, err)
	assert.Equal(t, "b", got)

	got, err = d.UUID(context.Background(), "c")
	require.NoError(t, err)
	assert.Equal(t, "b", got)

	_, err = d.UUID(context.Background(), "z")
	require.ErrorIs(t, err, entity.ErrNotFound)
}

func TestNewRejectsBadInventory(t *testing.T) {
	t.Parallel()

	_, err := New(Inventory{Systems: []System{{Name: "no-uuid"}}})
	require.Error(t, err)

	_, err = New(Inventory{Systems: []System{{UUID: "x"}, {UUID: "x"}}})
	require.Error(t, err)
}

func TestNewCopiesInventory(t *testing.T) {
	t.Parallel()

	inv := DefaultInventory()

	d, err := New(inv)
	require.NoError(t, err)

	uuid := inv.Systems[0].UUID
	require.NoError(t, d.SetSecureBoot(context.Background(), uuid, true))
	assert.False(t, *inv.Systems[0].SecureBoot)
}

func TestSetPowerState(t *testing.T) {
	t.Parallel()

	tests := []struct {
		from    string
		reset   string
		want    string
		wantErr bool
	}{
		{entity.PowerStateOff, entity.ResetOn, entity.PowerStateOn, false},
		{entity.PowerStateOff, entity.ResetForceOn, entity.PowerStateOn, false},
		{entity.PowerStateOn, entity.ResetForceOff, entity.PowerStateOff, false},
		{entity.PowerStateOn, entity.ResetGracefulShutdown, entity.PowerStateOff, false},
		{entity.PowerStateOn, entity.ResetGracefulRestart, entity.PowerStateOn, false},
		{entity.PowerStateOn, entity.ResetForceRestart, entity.PowerStateOn, false},
		{entity.PowerStateOn, entity.ResetNmi, entity.PowerStateOn, false},
		{entity.PowerStateOff, entity.ResetForceRestart, entity.PowerStateOn, false},
		{entity.PowerStateOff, entity.ResetNmi, entity.PowerStateOff, false},
		{entity.PowerStateOff, "PowerCycle", entity.PowerStateOff, true},
	}

	for _, tc := range tests {
		t.Run(tc.from+"/"+tc.reset, func(t *testing.T) {
			t.Parallel()

			d, err := New(Inventory{Systems: []System{{UUID: "u", PowerState: tc.from}}})
			require.NoError(t, err)

			err = d.SetPowerState(context.Background(), "u", tc.reset)
			if tc.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}

			got, err := d.PowerState(context.Background(), "u")
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestBootSettings(t *testing.T) {
	t.Parallel()

	d := newDriver(t)
	ctx := context.Background()
	uuid := "11111111-2222-3333-4444-555555555555"

	require.NoError(t, d.SetBootDevice(ctx, uuid, entity.BootTargetPxe))

	dev, err := d.BootDevice(ctx, uuid)
	require.NoError(t, err)
	assert.Equal(t, entity.BootTargetPxe, dev)

	err = d.SetBootDevice(ctx, uuid, "Floppy")
	require.ErrorIs(t, err, entity.ErrMalformedRequest)

	err = d.SetBootMode(ctx, uuid, entity.BootModeUEFI)
	require.ErrorIs(t, err, entity.ErrNotSupported)
}

func TestFindOrCreateStorageVolume(t *testing.T) {
	t.Parallel()

	d := newDriver(t)
	ctx := context.Background()

	id, err := d.FindOrCreateStorageVolume(ctx, entity.Volume{ID: "v1", PoolName: "fast", BackendName: "disk-1"})
	require.NoError(t, err)
	assert.Equal(t, "v1", id)
	assert.Equal(t, []string{"disk-1"}, d.BackingVolumes("fast"))

	// an existing disk is found, not duplicated
	_, err = d.FindOrCreateStorageVolume(ctx, entity.Volume{ID: "v1", PoolName: "fast", BackendName: "disk-1"})
	require.NoError(t, err)
	assert.Len(t, d.BackingVolumes("fast"), 1)

	id, err = d.FindOrCreateStorageVolume(ctx, entity.Volume{ID: "v2", PoolName: "gone"})
	require.NoError(t, err)
	assert.Empty(t, id)

	_, err = d.FindOrCreateStorageVolume(ctx, entity.Volume{})
	require.ErrorIs(t, err, entity.ErrMalformedRequest)

	d.RemoveBackingVolume("fast", "disk-1")
	assert.Empty(t, d.BackingVolumes("fast"))
}

func TestStorageVolumeDoesNotCreate(t *testing.T) {
	t.Parallel()

	d := newDriver(t)
	ctx := context.Background()
	vol := entity.Volume{ID: "v1", PoolName: "fast", BackendName: "disk-1"}

	id, err := d.StorageVolume(ctx, vol)
	require.NoError(t, err)
	assert.Empty(t, id)
	assert.Empty(t, d.BackingVolumes("fast"))

	_, err = d.FindOrCreateStorageVolume(ctx, vol)
	require.NoError(t, err)

	id, err = d.StorageVolume(ctx, vol)
	require.NoError(t, err)
	assert.Equal(t, "v1", id)

	// a disk removed out of band stays removed
	d.RemoveBackingVolume("fast", "disk-1")

	id, err = d.StorageVolume(ctx, vol)
	require.NoError(t, err)
	assert.Empty(t, id)
	assert.Empty(t, d.BackingVolumes("fast"))

	id, err = d.StorageVolume(ctx, entity.Volume{ID: "v2", PoolName: "gone"})
	require.NoError(t, err)
	assert.Empty(t, id)
}
