// Package managers derives one BMC manager per computer system.
package managers

import (
	"context"

	"github.com/device-management-toolkit/bmc-emulator/internal/entity"
	"github.com/device-management-toolkit/bmc-emulator/internal/usecase/chassis"
	"github.com/device-management-toolkit/bmc-emulator/internal/usecase/systems"
)

//go:generate mockgen -source ./managers.go -package mocks -destination ../../mocks/managers_mocks.go -mock_names Driver=MockManagersDriver

// Driver exposes the managers of the emulated topology.
type Driver interface {
	Managers(ctx context.Context) ([]string, error)
	UUID(ctx context.Context, identity string) (string, error)
	Manager(ctx context.Context, uuid string) (entity.Manager, error)
	ManagedSystems(ctx context.Context, mgr entity.Manager) ([]string, error)
	ManagedChassis(ctx context.Context, mgr entity.Manager) ([]string, error)
	ManagersForSystem(ctx context.Context, systemUUID string) ([]string, error)
}

// FakeDriver mirrors the systems backend: manager N manages system N, and
// the first manager manages every chassis.
type FakeDriver struct {
	systems systems.Driver
	chassis chassis.Driver
}

var _ Driver = (*FakeDriver)(nil)

// NewFakeDriver -.
func NewFakeDriver(s systems.Driver, c chassis.Driver) *FakeDriver {
	return &FakeDriver{systems: s, chassis: c}
}

// Managers -.
func (d *FakeDriver) Managers(ctx context.Context) ([]string, error) {
	return d.systems.Systems(ctx)
}

// UUID -.
func (d *FakeDriver) UUID(ctx context.Context, identity string) (string, error) {
	return d.systems.UUID(ctx, identity)
}

// Manager -.
func (d *FakeDriver) Manager(ctx context.Context, uuid string) (entity.Manager, error) {
	name, err := d.systems.Name(ctx, uuid)
	if err != nil {
		return entity.Manager{}, err
	}

	return entity.Manager{
		ID:                    uuid,
		Name:                  name + "-Manager",
		UUID:                  uuid,
		ServiceEntryPointUUID: uuid,
	}, nil
}

// ManagedSystems -.
func (d *FakeDriver) ManagedSystems(_ context.Context, m entity.Manager) ([]string, error) {
	return []string{m.UUID}, nil
}

// ManagedChassis -.
func (d *FakeDriver) ManagedChassis(ctx context.Context, m entity.Manager) ([]string, error) {
	all, err := d.Managers(ctx)
	if err != nil {
		return nil, err
	}

	if len(all) == 0 || all[0] != m.UUID {
		return []string{}, nil
	}

	return d.chassis.Chassis(ctx)
}

// ManagersForSystem -.
func (d *FakeDriver) ManagersForSystem(_ context.Context, systemUUID string) ([]string, error) {
	return []string{systemUUID}, nil
}
