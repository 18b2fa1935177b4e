// Package sqldb persists side tables in sqlite or postgres.
package sqldb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/device-management-toolkit/bmc-emulator/internal/entity"
	"github.com/device-management-toolkit/bmc-emulator/internal/usecase/sidetable"
	"github.com/device-management-toolkit/bmc-emulator/pkg/db"
)

var volumeColumns = []string{"id", "name", "volume_type", "capacity_bytes", "pool_name", "backend_name"}

// Repository implements sidetable.Repository over pkg/db.
type Repository struct {
	*db.SQL
}

var _ sidetable.Repository = (*Repository)(nil)

// New -.
func New(sqlDB *db.SQL) *Repository {
	return &Repository{sqlDB}
}

// GetIndicator -.
func (r *Repository) GetIndicator(ctx context.Context, uuid string) (string, bool, error) {
	query, args, err := r.Builder.
		Select("state").
		From("indicators").
		Where(squirrel.Eq{"uuid": uuid}).
		ToSql()
	if err != nil {
		return "", false, fmt.Errorf("sqldb - GetIndicator - build: %w", err)
	}

	var state string

	err = r.DB.QueryRowContext(ctx, query, args...).Scan(&state)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}

	if err != nil {
		return "", false, fmt.Errorf("sqldb - GetIndicator: %w", err)
	}

	return state, true, nil
}

// PutIndicator -.
func (r *Repository) PutIndicator(ctx context.Context, uuid, state string) error {
	query, args, err := r.Builder.
		Insert("indicators").
		Columns("uuid", "state").
		Values(uuid, state).
		Suffix("ON CONFLICT (uuid) DO UPDATE SET state = excluded.state").
		ToSql()
	if err != nil {
		return fmt.Errorf("sqldb - PutIndicator - build: %w", err)
	}

	if _, err := r.DB.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("sqldb - PutIndicator: %w", err)
	}

	return nil
}

// ListVolumes -.
func (r *Repository) ListVolumes(ctx context.Context, uuid, storageID string) ([]entity.Volume, error) {
	query, args, err := r.Builder.
		Select(volumeColumns...).
		From("volumes").
		Where(squirrel.Eq{"system_uuid": uuid, "storage_id": storageID}).
		OrderBy("id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("sqldb - ListVolumes - build: %w", err)
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("sqldb - ListVolumes: %w", err)
	}
	defer rows.Close()

	vols := []entity.Volume{}

	for rows.Next() {
		var v entity.Volume

		if err := rows.Scan(&v.ID, &v.Name, &v.VolumeType, &v.CapacityBytes, &v.PoolName, &v.BackendName); err != nil {
			return nil, fmt.Errorf("sqldb - ListVolumes - scan: %w", err)
		}

		vols = append(vols, v)
	}

	return vols, rows.Err()
}

// PutVolume -.
func (r *Repository) PutVolume(ctx context.Context, uuid, storageID string, v entity.Volume) error {
	query, args, err := r.Builder.
		Insert("volumes").
		Columns(append([]string{"system_uuid", "storage_id"}, volumeColumns...)...).
		Values(uuid, storageID, v.ID, v.Name, v.VolumeType, v.CapacityBytes, v.PoolName, v.BackendName).
		Suffix(`ON CONFLICT (system_uuid, storage_id, id) DO UPDATE SET
			name = excluded.name,
			volume_type = excluded.volume_type,
			capacity_bytes = excluded.capacity_bytes,
			pool_name = excluded.pool_name,
			backend_name = excluded.backend_name`).
		ToSql()
	if err != nil {
		return fmt.Errorf("sqldb - PutVolume - build: %w", err)
	}

	if _, err := r.DB.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("sqldb - PutVolume: %w", err)
	}

	return nil
}

// DeleteVolume -.
func (r *Repository) DeleteVolume(ctx context.Context, uuid, storageID, volumeID string) error {
	query, args, err := r.Builder.
		Delete("volumes").
		Where(squirrel.Eq{"system_uuid": uuid, "storage_id": storageID, "id": volumeID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("sqldb - DeleteVolume - build: %w", err)
	}

	if _, err := r.DB.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("sqldb - DeleteVolume: %w", err)
	}

	return nil
}

// GetVirtualMedia -.
func (r *Repository) GetVirtualMedia(ctx context.Context, uuid, deviceID string) (entity.VirtualMedia, bool, error) {
	query, args, err := r.Builder.
		Select("image", "image_name", "inserted", "write_protected").
		From("virtual_media").
		Where(squirrel.Eq{"manager_uuid": uuid, "device_id": deviceID}).
		ToSql()
	if err != nil {
		return entity.VirtualMedia{}, false, fmt.Errorf("sqldb - GetVirtualMedia - build: %w", err)
	}

	var m entity.VirtualMedia

	err = r.DB.QueryRowContext(ctx, query, args...).Scan(&m.Image, &m.ImageName, &m.Inserted, &m.WriteProtected)
	if errors.Is(err, sql.ErrNoRows) {
		return entity.VirtualMedia{}, false, nil
	}

	if err != nil {
		return entity.VirtualMedia{}, false, fmt.Errorf("sqldb - GetVirtualMedia: %w", err)
	}

	return m, true, nil
}

// PutVirtualMedia -.
func (r *Repository) PutVirtualMedia(ctx context.Context, uuid, deviceID string, m entity.VirtualMedia) error {
	query, args, err := r.Builder.
		Insert("virtual_media").
		Columns("manager_uuid", "device_id", "image", "image_name", "inserted", "write_protected").
		Values(uuid, deviceID, m.Image, m.ImageName, m.Inserted, m.WriteProtected).
		Suffix(`ON CONFLICT (manager_uuid, device_id) DO UPDATE SET
			image = excluded.image,
			image_name = excluded.image_name,
			inserted = excluded.inserted,
			write_protected = excluded.write_protected`).
		ToSql()
	if err != nil {
		return fmt.Errorf("sqldb - PutVirtualMedia - build: %w", err)
	}

	if _, err := r.DB.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("sqldb - PutVirtualMedia: %w", err)
	}

	return nil
}
