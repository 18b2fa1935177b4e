// Package vmedia serves the virtual media devices every manager exposes.
package vmedia

import (
	"context"

	"github.com/device-management-toolkit/bmc-emulator/internal/entity"
)

// Driver exposes the virtual media devices in declared order. The device
// set is the same for every manager; insertion state lives in the side
// table.
type Driver interface {
	Devices(ctx context.Context) ([]entity.VirtualMediaDevice, error)
	Device(ctx context.Context, id string) (entity.VirtualMediaDevice, error)
}

// DefaultDevices is used when configuration declares none.
var DefaultDevices = []entity.VirtualMediaDevice{
	{ID: "Cd", Name: "Virtual CD", MediaTypes: []string{"CD", "DVD"}},
	{ID: "Floppy", Name: "Virtual Removable Media", MediaTypes: []string{"Floppy", "USBStick"}},
}

// StaticDriver serves a fixed device list.
type StaticDriver struct {
	devices []entity.VirtualMediaDevice
}

var _ Driver = (*StaticDriver)(nil)

// NewStaticDriver copies list, falling back to DefaultDevices when empty.
// Entries without a Name use their Id.
func NewStaticDriver(list []entity.VirtualMediaDevice) *StaticDriver {
	if len(list) == 0 {
		list = DefaultDevices
	}

	out := make([]entity.VirtualMediaDevice, 0, len(list))

	for _, d := range list {
		if d.Name == "" {
			d.Name = d.ID
		}

		d.MediaTypes = append([]string(nil), d.MediaTypes...)
		out = append(out, d)
	}

	return &StaticDriver{devices: out}
}

// Devices -.
func (d *StaticDriver) Devices(_ context.Context) ([]entity.VirtualMediaDevice, error) {
	out := make([]entity.VirtualMediaDevice, len(d.devices))
	copy(out, d.devices)

	return out, nil
}

// Device looks a device up by Id.
func (d *StaticDriver) Device(_ context.Context, id string) (entity.VirtualMediaDevice, error) {
	for _, dev := range d.devices {
		if dev.ID == id {
			return dev, nil
		}
	}

	return entity.VirtualMediaDevice{}, entity.NotFoundf("virtual media %q", id)
}
