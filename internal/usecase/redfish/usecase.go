// Package redfish is the emulator core: it resolves request identities to
// canonical UUIDs, gates them through the allow-list and composes the
// resource descriptors each Redfish endpoint renders.
package redfish

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/device-management-toolkit/bmc-emulator/internal/entity"
	"github.com/device-management-toolkit/bmc-emulator/internal/usecase/chassis"
	"github.com/device-management-toolkit/bmc-emulator/internal/usecase/managers"
	"github.com/device-management-toolkit/bmc-emulator/internal/usecase/sidetable"
	"github.com/device-management-toolkit/bmc-emulator/internal/usecase/storage"
	"github.com/device-management-toolkit/bmc-emulator/internal/usecase/systems"
	"github.com/device-management-toolkit/bmc-emulator/internal/usecase/vmedia"
	"github.com/device-management-toolkit/bmc-emulator/pkg/events"
	"github.com/device-management-toolkit/bmc-emulator/pkg/logger"
)

// Drivers groups the backend collaborators, chosen once at startup.
// VirtualMedia falls back to vmedia.DefaultDevices when nil.
type Drivers struct {
	Systems      systems.Driver
	Chassis      chassis.Driver
	Managers     managers.Driver
	Storage      storage.Driver
	VirtualMedia vmedia.Driver
}

// UseCase -.
type UseCase struct {
	systems  systems.Driver
	chassis  chassis.Driver
	managers managers.Driver
	storage  storage.Driver
	vmedia   vmedia.Driver
	side     *sidetable.Store
	allow    *AllowList
	events   events.Publisher
	log      logger.Interface

	pid int
	now func() time.Time
}

var _ Feature = (*UseCase)(nil)

// New -.
func New(d Drivers, side *sidetable.Store, allow *AllowList, pub events.Publisher, log logger.Interface) *UseCase {
	if pub == nil {
		pub = events.Noop{}
	}

	if d.VirtualMedia == nil {
		d.VirtualMedia = vmedia.NewStaticDriver(nil)
	}

	return &UseCase{
		systems:  d.Systems,
		chassis:  d.Chassis,
		managers: d.Managers,
		storage:  d.Storage,
		vmedia:   d.VirtualMedia,
		side:     side,
		allow:    allow,
		events:   pub,
		log:      log,
		pid:      os.Getpid(),
		now:      time.Now,
	}
}

// ResolveSystem maps identity to the canonical UUID of a visible system.
// Instances outside the allow-list fail with entity.ErrAccessDenied before
// an alias is reported, so a redirect never reveals a hidden instance.
func (uc *UseCase) ResolveSystem(ctx context.Context, identity string) (string, error) {
	uuid, err := uc.systemUUID(ctx, identity)
	if err != nil {
		return "", err
	}

	return uc.gate(identity, uuid, uc.allow.Permits(uuid))
}

// ResolveChassis -.
func (uc *UseCase) ResolveChassis(ctx context.Context, identity string) (string, error) {
	uuid, err := remember(ctx, "chassis-uuid/"+identity, func() (string, error) {
		return uc.chassis.UUID(ctx, identity)
	})
	if err != nil {
		return "", err
	}

	return uc.gate(identity, uuid, true)
}

// ResolveManager accepts a manager only when at least one system it manages
// is visible.
func (uc *UseCase) ResolveManager(ctx context.Context, identity string) (string, error) {
	uuid, err := remember(ctx, "manager-uuid/"+identity, func() (string, error) {
		return uc.managers.UUID(ctx, identity)
	})
	if err != nil {
		return "", err
	}

	visible, err := uc.managerVisible(ctx, uuid)
	if err != nil {
		return "", err
	}

	return uc.gate(identity, uuid, visible)
}

func (uc *UseCase) gate(identity, uuid string, visible bool) (string, error) {
	if !visible {
		return "", fmt.Errorf("%s: %w", uuid, entity.ErrAccessDenied)
	}

	if uuid != identity {
		return "", &entity.AliasAccessError{UUID: uuid}
	}

	return uuid, nil
}

func (uc *UseCase) systemUUID(ctx context.Context, identity string) (string, error) {
	return remember(ctx, "system-uuid/"+identity, func() (string, error) {
		return uc.systems.UUID(ctx, identity)
	})
}

func (uc *UseCase) allSystems(ctx context.Context) ([]string, error) {
	return remember(ctx, "systems", func() ([]string, error) {
		return uc.systems.Systems(ctx)
	})
}

func (uc *UseCase) allChassis(ctx context.Context) ([]string, error) {
	return remember(ctx, "chassis", func() ([]string, error) {
		return uc.chassis.Chassis(ctx)
	})
}

func (uc *UseCase) allManagers(ctx context.Context) ([]string, error) {
	return remember(ctx, "managers", func() ([]string, error) {
		return uc.managers.Managers(ctx)
	})
}

func (uc *UseCase) managerVisible(ctx context.Context, uuid string) (bool, error) {
	if uc.allow == nil {
		return true, nil
	}

	m, err := uc.managers.Manager(ctx, uuid)
	if err != nil {
		return false, err
	}

	managed, err := uc.managers.ManagedSystems(ctx, m)
	if err != nil {
		return false, err
	}

	return len(uc.allow.Filter(managed)) > 0, nil
}

func (uc *UseCase) publish(ctx context.Context, resource, uuid, change string, data map[string]any) {
	e := events.Event{Resource: resource, UUID: uuid, Change: change, Data: data, Time: uc.now().UTC()}

	if err := uc.events.Publish(ctx, e); err != nil {
		uc.log.Warn("redfish - publish %s: %v", e.Subject(), err)
	}
}

// optional turns a NotSupported failure into a nil value.
func optional[T any](v T, err error) (*T, error) {
	if errors.Is(err, entity.ErrNotSupported) {
		return nil, nil
	}

	if err != nil {
		return nil, err
	}

	return &v, nil
}

// orEmpty turns a NotSupported failure into the zero value.
func orEmpty[T any](v T, err error) (T, error) {
	if errors.Is(err, entity.ErrNotSupported) {
		var zero T

		return zero, nil
	}

	return v, err
}

func validIndicator(state string) bool {
	switch state {
	case entity.IndicatorLit, entity.IndicatorBlinking, entity.IndicatorOff:
		return true
	default:
		return false
	}
}
