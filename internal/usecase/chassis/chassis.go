// Package chassis serves the statically configured chassis list.
package chassis

import (
	"context"

	"github.com/device-management-toolkit/bmc-emulator/internal/entity"
)

// Driver exposes chassis in their declared order. The first chassis is the
// root of the topology.
type Driver interface {
	Chassis(ctx context.Context) ([]string, error)
	// UUID resolves a UUID, Id or Name to the canonical UUID.
	UUID(ctx context.Context, identity string) (string, error)
	Name(ctx context.Context, uuid string) (string, error)
}

// DefaultChassis is used when configuration declares none.
var DefaultChassis = []entity.Chassis{{
	ID:   "15693887-7984-9484-3272-842188918912",
	Name: "Chassis",
	UUID: "15693887-7984-9484-3272-842188918912",
}}

// StaticDriver serves a fixed chassis list.
type StaticDriver struct {
	chassis []entity.Chassis
}

var _ Driver = (*StaticDriver)(nil)

// NewStaticDriver copies list, falling back to DefaultChassis when empty.
// Entries without a UUID use their Id.
func NewStaticDriver(list []entity.Chassis) *StaticDriver {
	if len(list) == 0 {
		list = DefaultChassis
	}

	out := make([]entity.Chassis, 0, len(list))

	for _, c := range list {
		if c.UUID == "" {
			c.UUID = c.ID
		}

		if c.ID == "" {
			c.ID = c.UUID
		}

		if c.Name == "" {
			c.Name = c.ID
		}

		out = append(out, c)
	}

	return &StaticDriver{chassis: out}
}

// Chassis -.
func (d *StaticDriver) Chassis(_ context.Context) ([]string, error) {
	uuids := make([]string, 0, len(d.chassis))
	for _, c := range d.chassis {
		uuids = append(uuids, c.UUID)
	}

	return uuids, nil
}

// UUID checks UUIDs before Ids and names.
func (d *StaticDriver) UUID(_ context.Context, identity string) (string, error) {
	for _, c := range d.chassis {
		if c.UUID == identity {
			return c.UUID, nil
		}
	}

	for _, c := range d.chassis {
		if c.ID == identity || c.Name == identity {
			return c.UUID, nil
		}
	}

	return "", entity.NotFoundf("chassis %q", identity)
}

// Name -.
func (d *StaticDriver) Name(_ context.Context, uuid string) (string, error) {
	for _, c := range d.chassis {
		if c.UUID == uuid {
			return c.Name, nil
		}
	}

	return "", entity.NotFoundf("chassis %q", uuid)
}
