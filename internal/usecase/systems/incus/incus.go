// Package incus implements the hypervisor systems backend on Incus virtual
// machines. A VM's volatile.uuid is its canonical UUID and its name the
// alias. Settings without a native Incus key live in user.redfish.* keys.
package incus

import (
	"context"
	"encoding/json"
	"fmt"
	"maps"
	"sort"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/device-management-toolkit/bmc-emulator/internal/entity"
	"github.com/device-management-toolkit/bmc-emulator/internal/usecase/systems"
)

const (
	keyUUID       = "volatile.uuid"
	keyCSM        = "security.csm"
	keySecureBoot = "security.secureboot"
	keyMemory     = "limits.memory"
	keyCPU        = "limits.cpu"
	keyBootDevice = "user.redfish.boot_device"
	keyBIOS       = "user.redfish.bios"

	statusRunning = "Running"

	// DefaultPool receives volumes whose record names no pool.
	DefaultPool = "default"
)

// Driver -.
type Driver struct {
	client Client
	pool   string
}

var _ systems.Driver = (*Driver)(nil)

// New -.
func New(client Client, pool string) *Driver {
	if pool == "" {
		pool = DefaultPool
	}

	return &Driver{client: client, pool: pool}
}

// Driver -.
func (d *Driver) Driver() string {
	return "incus"
}

// Systems lists VMs that carry a UUID.
func (d *Driver) Systems(_ context.Context) ([]string, error) {
	vms, err := d.client.ListVMs()
	if err != nil {
		return nil, fmt.Errorf("incus - list vms: %w", err)
	}

	out := make([]string, 0, len(vms))

	for _, vm := range vms {
		if u := vm.Config[keyUUID]; u != "" {
			out = append(out, u)
		}
	}

	return out, nil
}

// UUID matches volatile.uuid before instance names.
func (d *Driver) UUID(_ context.Context, identity string) (string, error) {
	vms, err := d.client.ListVMs()
	if err != nil {
		return "", fmt.Errorf("incus - list vms: %w", err)
	}

	for _, vm := range vms {
		if vm.Config[keyUUID] == identity {
			return identity, nil
		}
	}

	for _, vm := range vms {
		if vm.Name == identity && vm.Config[keyUUID] != "" {
			return vm.Config[keyUUID], nil
		}
	}

	return "", entity.NotFoundf("incus vm %q", identity)
}

func (d *Driver) find(uuid string) (Instance, error) {
	vms, err := d.client.ListVMs()
	if err != nil {
		return Instance{}, fmt.Errorf("incus - list vms: %w", err)
	}

	for _, vm := range vms {
		if vm.Config[keyUUID] == uuid {
			return vm, nil
		}
	}

	return Instance{}, entity.NotFoundf("incus vm %q", uuid)
}

func (d *Driver) update(uuid string, set map[string]string) error {
	vm, err := d.find(uuid)
	if err != nil {
		return err
	}

	if err := d.client.UpdateConfig(vm.Name, set); err != nil {
		return fmt.Errorf("incus - update %s: %w", vm.Name, err)
	}

	return nil
}

// Name -.
func (d *Driver) Name(_ context.Context, uuid string) (string, error) {
	vm, err := d.find(uuid)

	return vm.Name, err
}

// PowerState -.
func (d *Driver) PowerState(_ context.Context, uuid string) (string, error) {
	vm, err := d.find(uuid)
	if err != nil {
		return "", err
	}

	if vm.Status == statusRunning {
		return entity.PowerStateOn, nil
	}

	return entity.PowerStateOff, nil
}

// SetPowerState maps reset types onto Incus state actions. Incus has no NMI.
func (d *Driver) SetPowerState(_ context.Context, uuid, resetType string) error {
	vm, err := d.find(uuid)
	if err != nil {
		return err
	}

	running := vm.Status == statusRunning

	var (
		action string
		force  bool
	)

	switch resetType {
	case entity.ResetOn, entity.ResetForceOn:
		if running {
			return nil
		}

		action = "start"
	case entity.ResetForceOff, entity.ResetGracefulShutdown:
		if !running {
			return nil
		}

		action, force = "stop", resetType == entity.ResetForceOff
	case entity.ResetGracefulRestart, entity.ResetForceRestart:
		action, force = "restart", resetType == entity.ResetForceRestart
		if !running {
			action = "start"
		}
	case entity.ResetNmi:
		return entity.NotSupportedf("incus NMI")
	default:
		return &entity.MalformedRequestError{Property: "ResetType", Value: resetType}
	}

	if err := d.client.ChangeState(vm.Name, action, force); err != nil {
		return fmt.Errorf("incus - %s %s: %w", action, vm.Name, err)
	}

	return nil
}

// BootDevice -.
func (d *Driver) BootDevice(_ context.Context, uuid string) (string, error) {
	vm, err := d.find(uuid)
	if err != nil {
		return "", err
	}

	if dev := vm.Config[keyBootDevice]; dev != "" {
		return dev, nil
	}

	return entity.BootTargetHdd, nil
}

// SetBootDevice -.
func (d *Driver) SetBootDevice(_ context.Context, uuid, device string) error {
	if !systems.IsBootTarget(device) {
		return &entity.MalformedRequestError{Property: "BootSourceOverrideTarget", Value: device}
	}

	return d.update(uuid, map[string]string{keyBootDevice: device})
}

// BootMode reports Legacy when the CSM is enabled.
func (d *Driver) BootMode(_ context.Context, uuid string) (string, error) {
	vm, err := d.find(uuid)
	if err != nil {
		return "", err
	}

	if isTrue(vm.Config[keyCSM]) {
		return entity.BootModeLegacy, nil
	}

	return entity.BootModeUEFI, nil
}

// SetBootMode toggles the CSM. Legacy boot also turns secure boot off,
// which Incus requires.
func (d *Driver) SetBootMode(_ context.Context, uuid, mode string) error {
	switch mode {
	case entity.BootModeLegacy:
		return d.update(uuid, map[string]string{keyCSM: "true", keySecureBoot: "false"})
	case entity.BootModeUEFI:
		return d.update(uuid, map[string]string{keyCSM: "false"})
	default:
		return &entity.MalformedRequestError{Property: "BootSourceOverrideMode", Value: mode}
	}
}

// TotalMemory reads limits.memory, rounded down to GiB.
func (d *Driver) TotalMemory(_ context.Context, uuid string) (int, error) {
	vm, err := d.find(uuid)
	if err != nil {
		return 0, err
	}

	raw := vm.Config[keyMemory]
	if raw == "" || strings.HasSuffix(raw, "%") {
		return 0, entity.NotSupportedf("incus memory of %s", vm.Name)
	}

	bytes, err := humanize.ParseBytes(raw)
	if err != nil {
		return 0, fmt.Errorf("incus - %s of %s: %w", keyMemory, vm.Name, err)
	}

	return int(bytes >> 30), nil
}

// TotalCPUs reads limits.cpu, either a count or a CPU set like 0-3,6.
func (d *Driver) TotalCPUs(_ context.Context, uuid string) (int, error) {
	vm, err := d.find(uuid)
	if err != nil {
		return 0, err
	}

	raw := vm.Config[keyCPU]
	if raw == "" {
		return 0, entity.NotSupportedf("incus cpus of %s", vm.Name)
	}

	n, err := countCPUs(raw)
	if err != nil {
		return 0, fmt.Errorf("incus - %s of %s: %w", keyCPU, vm.Name, err)
	}

	return n, nil
}

func countCPUs(raw string) (int, error) {
	if !strings.ContainsAny(raw, ",-") {
		return strconv.Atoi(raw)
	}

	total := 0

	for _, part := range strings.Split(raw, ",") {
		lo, hi, isRange := strings.Cut(part, "-")
		if !isRange {
			if _, err := strconv.Atoi(part); err != nil {
				return 0, err
			}

			total++

			continue
		}

		a, err := strconv.Atoi(lo)
		if err != nil {
			return 0, err
		}

		b, err := strconv.Atoi(hi)
		if err != nil {
			return 0, err
		}

		if b < a {
			return 0, fmt.Errorf("bad cpu range %q", part)
		}

		total += b - a + 1
	}

	return total, nil
}

// BIOS returns the attributes stored on the VM, or the defaults.
func (d *Driver) BIOS(_ context.Context, uuid string) (map[string]any, error) {
	vm, err := d.find(uuid)
	if err != nil {
		return nil, err
	}

	return biosOf(vm)
}

func biosOf(vm Instance) (map[string]any, error) {
	raw := vm.Config[keyBIOS]
	if raw == "" {
		return systems.DefaultBIOSAttributes(), nil
	}

	attrs := map[string]any{}
	if err := json.Unmarshal([]byte(raw), &attrs); err != nil {
		return nil, fmt.Errorf("incus - %s of %s: %w", keyBIOS, vm.Name, err)
	}

	return attrs, nil
}

// SetBIOS merges attributes into the stored set.
func (d *Driver) SetBIOS(_ context.Context, uuid string, attributes map[string]any) error {
	vm, err := d.find(uuid)
	if err != nil {
		return err
	}

	attrs, err := biosOf(vm)
	if err != nil {
		return err
	}

	maps.Copy(attrs, attributes)

	data, err := json.Marshal(attrs)
	if err != nil {
		return err
	}

	return d.update(uuid, map[string]string{keyBIOS: string(data)})
}

// ResetBIOS drops the stored attributes.
func (d *Driver) ResetBIOS(_ context.Context, uuid string) error {
	return d.update(uuid, map[string]string{keyBIOS: ""})
}

// NICs lists nic devices with the MAC Incus assigned them.
func (d *Driver) NICs(_ context.Context, uuid string) ([]entity.NIC, error) {
	vm, err := d.find(uuid)
	if err != nil {
		return nil, err
	}

	nics := []entity.NIC{}

	for _, name := range sortedDevices(vm, "nic") {
		mac := vm.Devices[name]["hwaddr"]
		if mac == "" {
			mac = vm.Config["volatile."+name+".hwaddr"]
		}

		nics = append(nics, entity.NIC{ID: name, MAC: mac})
	}

	return nics, nil
}

// Processors reports one virtual socket holding every vCPU.
func (d *Driver) Processors(ctx context.Context, uuid string) ([]entity.Processor, error) {
	n, err := d.TotalCPUs(ctx, uuid)
	if err != nil {
		return nil, err
	}

	return []entity.Processor{{
		ID: "CPU0", Socket: "CPU 0", Cores: n, Threads: n, Model: "Virtual CPU", Vendor: "Incus",
	}}, nil
}

// SecureBoot follows the Incus default of enabled.
func (d *Driver) SecureBoot(_ context.Context, uuid string) (bool, error) {
	vm, err := d.find(uuid)
	if err != nil {
		return false, err
	}

	v, ok := vm.Config[keySecureBoot]

	return !ok || isTrue(v), nil
}

// SetSecureBoot -.
func (d *Driver) SetSecureBoot(_ context.Context, uuid string, enabled bool) error {
	return d.update(uuid, map[string]string{keySecureBoot: strconv.FormatBool(enabled)})
}

// SimpleStorage exposes the disk devices of the VM on one virtio controller.
func (d *Driver) SimpleStorage(_ context.Context, uuid string) ([]entity.SimpleStorage, error) {
	vm, err := d.find(uuid)
	if err != nil {
		return nil, err
	}

	ctrl := entity.SimpleStorage{ID: "virtio", Name: "virtio Controller", Devices: []entity.SimpleStorageDevice{}}

	for _, name := range sortedDevices(vm, "disk") {
		var size int64

		if raw := vm.Devices[name]["size"]; raw != "" {
			if b, err := humanize.ParseBytes(raw); err == nil {
				size = int64(b)
			}
		}

		ctrl.Devices = append(ctrl.Devices, entity.SimpleStorageDevice{Name: name, CapacityBytes: size})
	}

	return []entity.SimpleStorage{ctrl}, nil
}

// StorageVolume reports whether the custom volume behind volume exists.
func (d *Driver) StorageVolume(_ context.Context, volume entity.Volume) (string, error) {
	pool, name, ok, err := d.locate(volume)
	if err != nil || !ok {
		return "", err
	}

	found, err := d.client.VolumeExists(pool, name)
	if err != nil {
		return "", fmt.Errorf("incus - volume %s/%s: %w", pool, name, err)
	}

	if !found {
		return "", nil
	}

	return volume.ID, nil
}

// FindOrCreateStorageVolume binds volume to a custom block volume, creating
// it when missing. A missing pool yields an empty ID.
func (d *Driver) FindOrCreateStorageVolume(_ context.Context, volume entity.Volume) (string, error) {
	pool, name, ok, err := d.locate(volume)
	if err != nil || !ok {
		return "", err
	}

	found, err := d.client.VolumeExists(pool, name)
	if err != nil {
		return "", fmt.Errorf("incus - volume %s/%s: %w", pool, name, err)
	}

	if !found {
		if err := d.client.CreateBlockVolume(pool, name, volume.CapacityBytes); err != nil {
			return "", fmt.Errorf("incus - create volume %s/%s: %w", pool, name, err)
		}
	}

	return volume.ID, nil
}

// locate returns the pool and volume name of volume, with ok=false when
// the pool does not exist.
func (d *Driver) locate(volume entity.Volume) (pool, name string, ok bool, err error) {
	if volume.ID == "" {
		return "", "", false, &entity.MalformedRequestError{Property: "Id"}
	}

	pool = volume.PoolName
	if pool == "" {
		pool = d.pool
	}

	ok, err = d.client.PoolExists(pool)
	if err != nil {
		return "", "", false, fmt.Errorf("incus - pool %s: %w", pool, err)
	}

	name = volume.BackendName
	if name == "" {
		name = volume.ID
	}

	return pool, name, ok, nil
}

func sortedDevices(vm Instance, kind string) []string {
	names := []string{}

	for name, dev := range vm.Devices {
		if dev["type"] == kind {
			names = append(names, name)
		}
	}

	sort.Strings(names)

	return names
}

func isTrue(v string) bool {
	b, _ := strconv.ParseBool(v)

	return b
}
