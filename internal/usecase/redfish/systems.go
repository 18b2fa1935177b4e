package redfish

import (
	"context"

	"github.com/device-management-toolkit/bmc-emulator/internal/entity"
	dto "github.com/device-management-toolkit/bmc-emulator/internal/entity/dto/v1"
	"github.com/device-management-toolkit/bmc-emulator/internal/usecase/systems"
)

// Systems lists the visible systems in driver order.
func (uc *UseCase) Systems(ctx context.Context) ([]string, error) {
	all, err := uc.allSystems(ctx)
	if err != nil {
		return nil, err
	}

	return uc.allow.Filter(all), nil
}

// System composes the descriptor of one system. Memory, CPU count, boot
// target and boot mode are left out when the backend lacks them.
func (uc *UseCase) System(ctx context.Context, uuid string) (dto.System, error) {
	s := dto.System{Identity: uuid, UUID: uuid}

	var err error

	if s.Name, err = uc.systemName(ctx, uuid); err != nil {
		return dto.System{}, err
	}

	if s.PowerState, err = uc.systems.PowerState(ctx, uuid); err != nil {
		return dto.System{}, err
	}

	if s.TotalMemoryGiB, err = optional(uc.systems.TotalMemory(ctx, uuid)); err != nil {
		return dto.System{}, err
	}

	if s.TotalCPUs, err = optional(uc.systems.TotalCPUs(ctx, uuid)); err != nil {
		return dto.System{}, err
	}

	if s.BootTarget, err = orEmpty(uc.systems.BootDevice(ctx, uuid)); err != nil {
		return dto.System{}, err
	}

	if s.BootMode, err = optional(uc.systems.BootMode(ctx, uuid)); err != nil {
		return dto.System{}, err
	}

	if s.IndicatorLED, err = uc.side.IndicatorState(ctx, uuid); err != nil {
		return dto.System{}, err
	}

	if s.Managers, err = uc.managers.ManagersForSystem(ctx, uuid); err != nil {
		return dto.System{}, err
	}

	chassisList, err := uc.allChassis(ctx)
	if err != nil {
		return dto.System{}, err
	}

	s.Chassis = firstOf(chassisList)

	return s, nil
}

func (uc *UseCase) systemName(ctx context.Context, uuid string) (string, error) {
	return remember(ctx, "system-name/"+uuid, func() (string, error) {
		return uc.systems.Name(ctx, uuid)
	})
}

// PatchSystem applies the boot target, the boot mode and the indicator LED
// in that order. Each one is applied on its own: a failure stops the
// remaining fields but does not undo the ones already set.
func (uc *UseCase) PatchSystem(ctx context.Context, uuid string, patch dto.SystemPatch) error {
	// a Boot object without target or mode only counts when nothing else
	// applicable was sent
	if patch.Boot != nil && patch.Boot.Target == "" && patch.Boot.Mode == "" {
		if patch.IndicatorLED == "" {
			return &entity.MalformedRequestError{Property: "BootSourceOverrideTarget"}
		}

		patch.Boot = nil
	}

	if patch.Boot == nil && patch.IndicatorLED == "" {
		return &entity.MalformedRequestError{Property: "Boot"}
	}

	if patch.Boot != nil {

		if patch.Boot.Target != "" {
			if !systems.IsBootTarget(patch.Boot.Target) {
				return &entity.MalformedRequestError{Property: "BootSourceOverrideTarget", Value: patch.Boot.Target}
			}

			if err := uc.systems.SetBootDevice(ctx, uuid, patch.Boot.Target); err != nil {
				return err
			}

			uc.log.Info("redfish - set boot device to %s for system %s", patch.Boot.Target, uuid)
			uc.publish(ctx, "system", uuid, "boot-device", map[string]any{"BootSourceOverrideTarget": patch.Boot.Target})
		}

		if patch.Boot.Mode != "" {
			if !systems.IsBootMode(patch.Boot.Mode) {
				return &entity.MalformedRequestError{Property: "BootSourceOverrideMode", Value: patch.Boot.Mode}
			}

			if err := uc.systems.SetBootMode(ctx, uuid, patch.Boot.Mode); err != nil {
				return err
			}

			uc.log.Info("redfish - set boot mode to %s for system %s", patch.Boot.Mode, uuid)
			uc.publish(ctx, "system", uuid, "boot-mode", map[string]any{"BootSourceOverrideMode": patch.Boot.Mode})
		}
	}

	if patch.IndicatorLED != "" {
		return uc.setIndicator(ctx, "system", uuid, patch.IndicatorLED)
	}

	return nil
}

func (uc *UseCase) setIndicator(ctx context.Context, resource, uuid, state string) error {
	if !validIndicator(state) {
		return &entity.MalformedRequestError{Property: "IndicatorLED", Value: state}
	}

	if err := uc.side.SetIndicatorState(ctx, uuid, state); err != nil {
		return err
	}

	uc.log.Info("redfish - set indicator LED to %s for %s %s", state, resource, uuid)
	uc.publish(ctx, resource, uuid, "indicator", map[string]any{"IndicatorLED": state})

	return nil
}

// Reset hands resetType to the backend unchanged.
func (uc *UseCase) Reset(ctx context.Context, uuid, resetType string) error {
	if !systems.IsResetType(resetType) {
		return &entity.MalformedRequestError{Property: "ResetType", Value: resetType}
	}

	if err := uc.systems.SetPowerState(ctx, uuid, resetType); err != nil {
		return err
	}

	uc.log.Info("redfish - system %s power state set to %s", uuid, resetType)
	uc.publish(ctx, "system", uuid, "power", map[string]any{"ResetType": resetType})

	return nil
}

// NICs returns an empty list for backends without network details.
func (uc *UseCase) NICs(ctx context.Context, uuid string) ([]entity.NIC, error) {
	nics, err := orEmpty(uc.systems.NICs(ctx, uuid))
	if err != nil {
		return nil, err
	}

	if nics == nil {
		nics = []entity.NIC{}
	}

	return nics, nil
}

// NIC -.
func (uc *UseCase) NIC(ctx context.Context, uuid, nicID string) (entity.NIC, error) {
	nics, err := uc.NICs(ctx, uuid)
	if err != nil {
		return entity.NIC{}, err
	}

	for _, n := range nics {
		if n.ID == nicID {
			return n, nil
		}
	}

	return entity.NIC{}, entity.NotFoundf("ethernet interface %q of system %s", nicID, uuid)
}

// Processors returns an empty list for backends without CPU details.
func (uc *UseCase) Processors(ctx context.Context, uuid string) ([]entity.Processor, error) {
	procs, err := orEmpty(uc.systems.Processors(ctx, uuid))
	if err != nil {
		return nil, err
	}

	if procs == nil {
		procs = []entity.Processor{}
	}

	return procs, nil
}

// Processor -.
func (uc *UseCase) Processor(ctx context.Context, uuid, processorID string) (entity.Processor, error) {
	procs, err := uc.Processors(ctx, uuid)
	if err != nil {
		return entity.Processor{}, err
	}

	for _, p := range procs {
		if p.ID == processorID {
			return p, nil
		}
	}

	return entity.Processor{}, entity.NotFoundf("processor %q of system %s", processorID, uuid)
}

// BIOS reports empty attributes for backends without BIOS support.
func (uc *UseCase) BIOS(ctx context.Context, uuid string) (dto.BIOS, error) {
	attrs, err := orEmpty(uc.systems.BIOS(ctx, uuid))
	if err != nil {
		return dto.BIOS{}, err
	}

	if attrs == nil {
		attrs = map[string]any{}
	}

	return dto.BIOS{Identity: uuid, Attributes: attrs}, nil
}

// SetBIOS -.
func (uc *UseCase) SetBIOS(ctx context.Context, uuid string, attributes map[string]any) error {
	if len(attributes) == 0 {
		return &entity.MalformedRequestError{Property: "Attributes"}
	}

	if err := uc.systems.SetBIOS(ctx, uuid, attributes); err != nil {
		return err
	}

	uc.log.Info("redfish - system %s BIOS attributes updated", uuid)
	uc.publish(ctx, "system", uuid, "bios", attributes)

	return nil
}

// ResetBIOS -.
func (uc *UseCase) ResetBIOS(ctx context.Context, uuid string) error {
	if err := uc.systems.ResetBIOS(ctx, uuid); err != nil {
		return err
	}

	uc.log.Info("redfish - BIOS for system %s reset", uuid)
	uc.publish(ctx, "system", uuid, "bios-reset", nil)

	return nil
}

// SecureBoot leaves Enabled nil for backends without secure boot.
func (uc *UseCase) SecureBoot(ctx context.Context, uuid string) (dto.SecureBoot, error) {
	enabled, err := optional(uc.systems.SecureBoot(ctx, uuid))
	if err != nil {
		return dto.SecureBoot{}, err
	}

	return dto.SecureBoot{Identity: uuid, Enabled: enabled}, nil
}

// SetSecureBoot -.
func (uc *UseCase) SetSecureBoot(ctx context.Context, uuid string, enabled *bool) error {
	if enabled == nil {
		return &entity.MalformedRequestError{Property: "SecureBootEnable"}
	}

	if err := uc.systems.SetSecureBoot(ctx, uuid, *enabled); err != nil {
		return err
	}

	uc.log.Info("redfish - system %s secure boot updated to %t", uuid, *enabled)
	uc.publish(ctx, "system", uuid, "secure-boot", map[string]any{"SecureBootEnable": *enabled})

	return nil
}

// SimpleStorage returns an empty list for backends without disk details.
func (uc *UseCase) SimpleStorage(ctx context.Context, uuid string) ([]entity.SimpleStorage, error) {
	list, err := orEmpty(uc.systems.SimpleStorage(ctx, uuid))
	if err != nil {
		return nil, err
	}

	if list == nil {
		list = []entity.SimpleStorage{}
	}

	return list, nil
}

// SimpleStorageByID -.
func (uc *UseCase) SimpleStorageByID(ctx context.Context, uuid, id string) (entity.SimpleStorage, error) {
	list, err := uc.SimpleStorage(ctx, uuid)
	if err != nil {
		return entity.SimpleStorage{}, err
	}

	for _, s := range list {
		if s.ID == id {
			return s, nil
		}
	}

	return entity.SimpleStorage{}, entity.NotFoundf("simple storage %q of system %s", id, uuid)
}

func firstOf(list []string) []string {
	if len(list) == 0 {
		return []string{}
	}

	return list[:1:1]
}
