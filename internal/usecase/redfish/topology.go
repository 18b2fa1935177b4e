package redfish

import (
	"context"

	"github.com/device-management-toolkit/bmc-emulator/internal/entity"
	dto "github.com/device-management-toolkit/bmc-emulator/internal/entity/dto/v1"
)

// ChassisList -.
func (uc *UseCase) ChassisList(ctx context.Context) ([]string, error) {
	return uc.allChassis(ctx)
}

func (uc *UseCase) isRootChassis(ctx context.Context, uuid string) (bool, error) {
	list, err := uc.allChassis(ctx)
	if err != nil {
		return false, err
	}

	return len(list) > 0 && list[0] == uuid, nil
}

// Chassis composes one chassis. The first chassis contains every visible
// system, manager, storage and drive; the others contain nothing.
func (uc *UseCase) Chassis(ctx context.Context, uuid string) (dto.Chassis, error) {
	name, err := uc.chassis.Name(ctx, uuid)
	if err != nil {
		return dto.Chassis{}, err
	}

	led, err := uc.side.IndicatorState(ctx, uuid)
	if err != nil {
		return dto.Chassis{}, err
	}

	c := dto.Chassis{
		Identity:     uuid,
		UUID:         uuid,
		Name:         name,
		IndicatorLED: led,
		Systems:      []string{},
		Managers:     []string{},
		ManagedBy:    []string{},
		Storage:      []entity.StorageRef{},
		Drives:       []entity.DriveRef{},
	}

	root, err := uc.isRootChassis(ctx, uuid)
	if err != nil || !root {
		return c, err
	}

	if c.Systems, err = uc.Systems(ctx); err != nil {
		return dto.Chassis{}, err
	}

	if c.Managers, err = uc.Managers(ctx); err != nil {
		return dto.Chassis{}, err
	}

	c.ManagedBy = firstOf(c.Managers)

	storage, err := uc.storage.AllStorage(ctx)
	if err != nil {
		return dto.Chassis{}, err
	}

	for _, s := range storage {
		if uc.allow.Permits(s.SystemUUID) {
			c.Storage = append(c.Storage, s)
		}
	}

	drives, err := uc.storage.AllDrives(ctx)
	if err != nil {
		return dto.Chassis{}, err
	}

	for _, d := range drives {
		if uc.allow.Permits(d.SystemUUID) {
			c.Drives = append(c.Drives, d)
		}
	}

	return c, nil
}

// SetChassisIndicator -.
func (uc *UseCase) SetChassisIndicator(ctx context.Context, uuid, state string) error {
	if state == "" {
		return &entity.MalformedRequestError{Property: "IndicatorLED"}
	}

	return uc.setIndicator(ctx, "chassis", uuid, state)
}

// Thermal reports sensors of every visible system on the first chassis.
func (uc *UseCase) Thermal(ctx context.Context, uuid string) (dto.Thermal, error) {
	t := dto.Thermal{Identity: uuid, Systems: []string{}}

	root, err := uc.isRootChassis(ctx, uuid)
	if err != nil || !root {
		return t, err
	}

	if t.Systems, err = uc.Systems(ctx); err != nil {
		return dto.Thermal{}, err
	}

	return t, nil
}

// Managers lists the visible managers in driver order.
func (uc *UseCase) Managers(ctx context.Context) ([]string, error) {
	all, err := uc.allManagers(ctx)
	if err != nil {
		return nil, err
	}

	if uc.allow == nil {
		return all, nil
	}

	out := make([]string, 0, len(all))

	for _, m := range all {
		visible, err := uc.managerVisible(ctx, m)
		if err != nil {
			return nil, err
		}

		if visible {
			out = append(out, m)
		}
	}

	return out, nil
}

// Manager -.
func (uc *UseCase) Manager(ctx context.Context, uuid string) (dto.Manager, error) {
	m, err := uc.managers.Manager(ctx, uuid)
	if err != nil {
		return dto.Manager{}, err
	}

	managed, err := uc.managers.ManagedSystems(ctx, m)
	if err != nil {
		return dto.Manager{}, err
	}

	chassisList, err := uc.managers.ManagedChassis(ctx, m)
	if err != nil {
		return dto.Manager{}, err
	}

	return dto.Manager{Manager: m, Systems: uc.allow.Filter(managed), Chassis: chassisList}, nil
}
