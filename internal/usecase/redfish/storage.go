package redfish

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/device-management-toolkit/bmc-emulator/internal/entity"
	dto "github.com/device-management-toolkit/bmc-emulator/internal/entity/dto/v1"
	"github.com/device-management-toolkit/bmc-emulator/internal/usecase/sidetable"
)

// ErrVolumeNotCreated is returned by CreateVolume when the backend could
// not materialize a disk for the new volume.
var ErrVolumeNotCreated = errors.New("backend did not materialize the volume")

// Storage -.
func (uc *UseCase) Storage(ctx context.Context, uuid string) ([]entity.Storage, error) {
	return uc.storage.StorageCollection(ctx, uuid)
}

// StorageByID -.
func (uc *UseCase) StorageByID(ctx context.Context, uuid, storageID string) (entity.Storage, error) {
	list, err := uc.storage.StorageCollection(ctx, uuid)
	if err != nil {
		return entity.Storage{}, err
	}

	for _, s := range list {
		if s.ID == storageID {
			return s, nil
		}
	}

	return entity.Storage{}, entity.NotFoundf("storage %q of system %s", storageID, uuid)
}

// Drive -.
func (uc *UseCase) Drive(ctx context.Context, uuid, storageID, driveID string) (entity.Drive, error) {
	drives, err := uc.storage.Drives(ctx, uuid, storageID)
	if err != nil {
		return entity.Drive{}, err
	}

	for _, d := range drives {
		if d.ID == driveID {
			return d, nil
		}
	}

	return entity.Drive{}, entity.NotFoundf("drive %q of storage %s/%s", driveID, uuid, storageID)
}

// Volumes lists the volume records whose disks still exist. Records whose
// disk is gone are deleted as a side effect.
func (uc *UseCase) Volumes(ctx context.Context, uuid, storageID string) ([]entity.Volume, error) {
	out := []entity.Volume{}

	err := uc.side.WithVolumes(ctx, uuid, storageID, func(t *sidetable.VolumeTable) error {
		records, err := t.List()
		if err != nil {
			return err
		}

		for _, v := range records {
			id, err := uc.reconcile(ctx, t, v)
			if err != nil {
				return err
			}

			if id != "" {
				v.ID = id
				out = append(out, v)
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return out, nil
}

// Volume -.
func (uc *UseCase) Volume(ctx context.Context, uuid, storageID, volumeID string) (entity.Volume, error) {
	var found *entity.Volume

	err := uc.side.WithVolumes(ctx, uuid, storageID, func(t *sidetable.VolumeTable) error {
		records, err := t.List()
		if err != nil {
			return err
		}

		for _, v := range records {
			if v.ID != volumeID {
				continue
			}

			id, err := uc.reconcile(ctx, t, v)
			if err != nil || id == "" {
				return err
			}

			found = &v

			return nil
		}

		return nil
	})
	if err != nil {
		return entity.Volume{}, err
	}

	if found == nil {
		return entity.Volume{}, entity.NotFoundf("volume %q of storage %s/%s", volumeID, uuid, storageID)
	}

	return *found, nil
}

// reconcile looks up the disk behind v without creating it. It returns ""
// when the volume must not be listed, deleting the record if the disk is
// gone. Backends without volume support keep their records untouched.
func (uc *UseCase) reconcile(ctx context.Context, t *sidetable.VolumeTable, v entity.Volume) (string, error) {
	id, err := uc.systems.StorageVolume(ctx, v)
	if errors.Is(err, entity.ErrNotSupported) {
		return "", nil
	}

	if err != nil {
		return "", err
	}

	if id == "" {
		uc.log.Debug("redfish - volume %s has no backing disk, dropping it", v.ID)

		return "", t.Delete(v.ID)
	}

	return id, nil
}

// CreateVolume records a new volume once the backend has materialized its
// disk and returns the volume ID.
func (uc *UseCase) CreateVolume(ctx context.Context, uuid, storageID string, req dto.VolumeRequest) (string, error) {
	if req.Name == "" {
		return "", &entity.MalformedRequestError{Property: "Name"}
	}

	if req.CapacityBytes <= 0 {
		return "", &entity.MalformedRequestError{Property: "CapacityBytes", Value: strconv.FormatInt(req.CapacityBytes, 10)}
	}

	var newID string

	err := uc.side.WithVolumes(ctx, uuid, storageID, func(t *sidetable.VolumeTable) error {
		records, err := t.List()
		if err != nil {
			return err
		}

		id := uc.volumeID(records)
		vol := entity.Volume{
			ID:            id,
			Name:          req.Name,
			VolumeType:    req.VolumeType,
			CapacityBytes: req.CapacityBytes,
			BackendName:   id,
		}

		created, err := uc.systems.FindOrCreateStorageVolume(ctx, vol)
		if err != nil {
			return err
		}

		if created == "" {
			return fmt.Errorf("volume %s on %s/%s: %w", id, uuid, storageID, ErrVolumeNotCreated)
		}

		vol.ID = created
		newID = created

		return t.Add(vol)
	})
	if err != nil {
		return "", err
	}

	uc.log.Debug("redfish - new storage volume created with ID %s", newID)
	uc.publish(ctx, "volume", uuid, "created", map[string]any{"StorageId": storageID, "VolumeId": newID, "Name": req.Name})

	return newID, nil
}

// volumeID builds a <pid><HHMMSS> token, suffixed when a volume created in
// the same second already holds it.
func (uc *UseCase) volumeID(existing []entity.Volume) string {
	base := strconv.Itoa(uc.pid) + uc.now().Format("150405")

	taken := make(map[string]bool, len(existing))
	for _, v := range existing {
		taken[v.ID] = true
	}

	id := base
	for n := 2; taken[id]; n++ {
		id = base + "-" + strconv.Itoa(n)
	}

	return id
}
