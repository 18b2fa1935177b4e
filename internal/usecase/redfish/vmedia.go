package redfish

import (
	"context"
	"net/url"
	"path"

	"github.com/device-management-toolkit/bmc-emulator/internal/entity"
	dto "github.com/device-management-toolkit/bmc-emulator/internal/entity/dto/v1"
)

// VirtualMediaDevices lists the device IDs of a manager in driver order.
func (uc *UseCase) VirtualMediaDevices(ctx context.Context, _ string) ([]string, error) {
	devices, err := uc.vmedia.Devices(ctx)
	if err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(devices))
	for _, d := range devices {
		ids = append(ids, d.ID)
	}

	return ids, nil
}

// VirtualMedia -.
func (uc *UseCase) VirtualMedia(ctx context.Context, uuid, deviceID string) (dto.VirtualMedia, error) {
	dev, err := uc.vmedia.Device(ctx, deviceID)
	if err != nil {
		return dto.VirtualMedia{}, err
	}

	state, err := uc.side.VirtualMedia(ctx, uuid, deviceID)
	if err != nil {
		return dto.VirtualMedia{}, err
	}

	return dto.VirtualMedia{Manager: uuid, Device: dev, State: state}, nil
}

// InsertMedia attaches the image at req.Image, replacing whatever the device
// held. Inserted and WriteProtected default to true.
func (uc *UseCase) InsertMedia(ctx context.Context, uuid, deviceID string, req dto.InsertMediaRequest) error {
	if _, err := uc.vmedia.Device(ctx, deviceID); err != nil {
		return err
	}

	if req.Image == "" {
		return &entity.MalformedRequestError{Property: "Image"}
	}

	u, err := url.Parse(req.Image)
	if err != nil || u.Path == "" || u.Path == "/" {
		return &entity.MalformedRequestError{Property: "Image", Value: req.Image}
	}

	state := entity.VirtualMedia{
		Image:          req.Image,
		ImageName:      path.Base(u.Path),
		Inserted:       boolOr(req.Inserted, true),
		WriteProtected: boolOr(req.WriteProtected, true),
	}

	err = uc.side.UpdateVirtualMedia(ctx, uuid, deviceID, func(m *entity.VirtualMedia) error {
		*m = state

		return nil
	})
	if err != nil {
		return err
	}

	uc.log.Debug("redfish - inserted %s into %s of manager %s", state.ImageName, deviceID, uuid)
	uc.publish(ctx, "manager", uuid, "media-inserted", map[string]any{"VirtualMediaId": deviceID, "Image": req.Image})

	return nil
}

// EjectMedia empties the device. Ejecting an empty device succeeds.
func (uc *UseCase) EjectMedia(ctx context.Context, uuid, deviceID string) error {
	if _, err := uc.vmedia.Device(ctx, deviceID); err != nil {
		return err
	}

	err := uc.side.UpdateVirtualMedia(ctx, uuid, deviceID, func(m *entity.VirtualMedia) error {
		*m = entity.VirtualMedia{}

		return nil
	})
	if err != nil {
		return err
	}

	uc.publish(ctx, "manager", uuid, "media-ejected", map[string]any{"VirtualMediaId": deviceID})

	return nil
}

func boolOr(v *bool, def bool) bool {
	if v == nil {
		return def
	}

	return *v
}
