package incus

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/device-management-toolkit/bmc-emulator/internal/entity"
	"github.com/device-management-toolkit/bmc-emulator/internal/usecase/systems"
)

type stateChange struct {
	name, action string
	force        bool
}

// fakeClient is an in-memory Client.
type fakeClient struct {
	mu      sync.Mutex
	vms     []Instance
	pools   map[string]map[string]int64
	changes []stateChange
	listErr error
}

func (f *fakeClient) ListVMs() ([]Instance, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.listErr != nil {
		return nil, f.listErr
	}

	out := make([]Instance, len(f.vms))
	copy(out, f.vms)

	return out, nil
}

func (f *fakeClient) UpdateConfig(name string, set map[string]string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	for i := range f.vms {
		if f.vms[i].Name != name {
			continue
		}

		cfg := make(map[string]string, len(f.vms[i].Config))
		for k, v := range f.vms[i].Config {
			cfg[k] = v
		}

		for k, v := range set {
			if v == "" {
				delete(cfg, k)
			} else {
				cfg[k] = v
			}
		}

		f.vms[i].Config = cfg

		return nil
	}

	return errors.New("instance not found")
}

func (f *fakeClient) ChangeState(name, action string, force bool) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.changes = append(f.changes, stateChange{name, action, force})

	for i := range f.vms {
		if f.vms[i].Name == name {
			if action == "stop" {
				f.vms[i].Status = "Stopped"
			} else {
				f.vms[i].Status = statusRunning
			}
		}
	}

	return nil
}

func (f *fakeClient) PoolExists(pool string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	_, ok := f.pools[pool]

	return ok, nil
}

func (f *fakeClient) VolumeExists(pool, name string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	_, ok := f.pools[pool][name]

	return ok, nil
}

func (f *fakeClient) CreateBlockVolume(pool, name string, sizeBytes int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.pools[pool][name] = sizeBytes

	return nil
}

const vmUUID = "9d3c2b1a-7e6f-4a5b-8c9d-0e1f2a3b4c5d"

func newClient() *fakeClient {
	return &fakeClient{
		vms: []Instance{
			{
				Name:   "vm-1",
				Status: statusRunning,
				Config: map[string]string{
					keyUUID:              vmUUID,
					keyMemory:            "4GiB",
					keyCPU:               "0-3,6",
					"volatile.eth0.hwaddr": "00:16:3e:00:00:01",
				},
				Devices: map[string]map[string]string{
					"eth0": {"type": "nic", "network": "incusbr0"},
					"eth1": {"type": "nic", "hwaddr": "00:16:3e:00:00:02"},
					"root": {"type": "disk", "pool": "default", "path": "/", "size": "10GiB"},
				},
			},
			{Name: "no-uuid", Config: map[string]string{}},
		},
		pools: map[string]map[string]int64{DefaultPool: {}},
	}
}

func TestSystemsAndUUID(t *testing.T) {
	t.Parallel()

	d := New(newClient(), "")
	ctx := context.Background()

	list, err := d.Systems(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{vmUUID}, list)

	got, err := d.UUID(ctx, "vm-1")
	require.NoError(t, err)
	assert.Equal(t, vmUUID, got)

	_, err = d.UUID(ctx, "no-uuid")
	require.ErrorIs(t, err, entity.ErrNotFound)

	_, err = New(&fakeClient{listErr: errors.New("socket closed")}, "").Systems(ctx)
	require.Error(t, err)
}

func TestHardwareSummary(t *testing.T) {
	t.Parallel()

	d := New(newClient(), "")
	ctx := context.Background()

	mem, err := d.TotalMemory(ctx, vmUUID)
	require.NoError(t, err)
	assert.Equal(t, 4, mem)

	cpus, err := d.TotalCPUs(ctx, vmUUID)
	require.NoError(t, err)
	assert.Equal(t, 5, cpus)

	nics, err := d.NICs(ctx, vmUUID)
	require.NoError(t, err)
	assert.Equal(t, []entity.NIC{
		{ID: "eth0", MAC: "00:16:3e:00:00:01"},
		{ID: "eth1", MAC: "00:16:3e:00:00:02"},
	}, nics)

	simple, err := d.SimpleStorage(ctx, vmUUID)
	require.NoError(t, err)
	require.Len(t, simple, 1)
	assert.Equal(t, int64(10<<30), simple[0].Devices[0].CapacityBytes)
}

func TestCountCPUs(t *testing.T) {
	t.Parallel()

	tests := []struct {
		raw     string
		want    int
		wantErr bool
	}{
		{raw: "2", want: 2},
		{raw: "0-3", want: 4},
		{raw: "1,3,5", want: 3},
		{raw: "0-1,4-5", want: 4},
		{raw: "3-1", wantErr: true},
		{raw: "x", wantErr: true},
	}

	for _, tc := range tests {
		t.Run(tc.raw, func(t *testing.T) {
			t.Parallel()

			got, err := countCPUs(tc.raw)
			if tc.wantErr {
				require.Error(t, err)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestSetPowerState(t *testing.T) {
	t.Parallel()

	tests := []struct {
		reset   string
		want    []stateChange
		wantErr error
	}{
		{reset: entity.ResetOn, want: nil},
		{reset: entity.ResetForceOff, want: []stateChange{{"vm-1", "stop", true}}},
		{reset: entity.ResetGracefulShutdown, want: []stateChange{{"vm-1", "stop", false}}},
		{reset: entity.ResetForceRestart, want: []stateChange{{"vm-1", "restart", true}}},
		{reset: entity.ResetGracefulRestart, want: []stateChange{{"vm-1", "restart", false}}},
		{reset: entity.ResetNmi, wantErr: entity.ErrNotSupported},
		{reset: "Bogus", wantErr: entity.ErrMalformedRequest},
	}

	for _, tc := range tests {
		t.Run(tc.reset, func(t *testing.T) {
			t.Parallel()

			c := newClient()
			err := New(c, "").SetPowerState(context.Background(), vmUUID, tc.reset)

			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.want, c.changes)
		})
	}
}

func TestBootAndFirmwareSettings(t *testing.T) {
	t.Parallel()

	d := New(newClient(), "")
	ctx := context.Background()

	dev, err := d.BootDevice(ctx, vmUUID)
	require.NoError(t, err)
	assert.Equal(t, entity.BootTargetHdd, dev)

	require.NoError(t, d.SetBootDevice(ctx, vmUUID, entity.BootTargetPxe))

	dev, err = d.BootDevice(ctx, vmUUID)
	require.NoError(t, err)
	assert.Equal(t, entity.BootTargetPxe, dev)

	sb, err := d.SecureBoot(ctx, vmUUID)
	require.NoError(t, err)
	assert.True(t, sb)

	require.NoError(t, d.SetBootMode(ctx, vmUUID, entity.BootModeLegacy))

	mode, err := d.BootMode(ctx, vmUUID)
	require.NoError(t, err)
	assert.Equal(t, entity.BootModeLegacy, mode)

	sb, err = d.SecureBoot(ctx, vmUUID)
	require.NoError(t, err)
	assert.False(t, sb)

	require.NoError(t, d.SetBIOS(ctx, vmUUID, map[string]any{"ProcTurboMode": "Disabled"}))

	bios, err := d.BIOS(ctx, vmUUID)
	require.NoError(t, err)
	assert.Equal(t, "Disabled", bios["ProcTurboMode"])
	assert.Equal(t, "Raid", bios["EmbeddedSata"])

	require.NoError(t, d.ResetBIOS(ctx, vmUUID))

	bios, err = d.BIOS(ctx, vmUUID)
	require.NoError(t, err)
	assert.Equal(t, systems.DefaultBIOSAttributes(), bios)
}

func TestFindOrCreateStorageVolume(t *testing.T) {
	t.Parallel()

	c := newClient()
	d := New(c, "")
	ctx := context.Background()

	id, err := d.FindOrCreateStorageVolume(ctx, entity.Volume{ID: "v1", CapacityBytes: 1 << 20})
	require.NoError(t, err)
	assert.Equal(t, "v1", id)
	assert.Equal(t, int64(1<<20), c.pools[DefaultPool]["v1"])

	id, err = d.FindOrCreateStorageVolume(ctx, entity.Volume{ID: "v2", PoolName: "ssd"})
	require.NoError(t, err)
	assert.Empty(t, id)
}

func TestStorageVolumeDoesNotCreate(t *testing.T) {
	t.Parallel()

	c := newClient()
	d := New(c, "")
	ctx := context.Background()

	id, err := d.StorageVolume(ctx, entity.Volume{ID: "v1"})
	require.NoError(t, err)
	assert.Empty(t, id)
	assert.Empty(t, c.pools[DefaultPool])

	_, err = d.FindOrCreateStorageVolume(ctx, entity.Volume{ID: "v1", CapacityBytes: 1 << 20})
	require.NoError(t, err)

	id, err = d.StorageVolume(ctx, entity.Volume{ID: "v1"})
	require.NoError(t, err)
	assert.Equal(t, "v1", id)

	id, err = d.StorageVolume(ctx, entity.Volume{ID: "v1", PoolName: "ssd"})
	require.NoError(t, err)
	assert.Empty(t, id)

	_, err = d.StorageVolume(ctx, entity.Volume{})
	require.ErrorIs(t, err, entity.ErrMalformedRequest)
}
