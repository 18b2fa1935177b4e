package redfish

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/device-management-toolkit/bmc-emulator/internal/entity"
	dto "github.com/device-management-toolkit/bmc-emulator/internal/entity/dto/v1"
	"github.com/device-management-toolkit/bmc-emulator/internal/mocks"
	"github.com/device-management-toolkit/bmc-emulator/internal/usecase/sidetable"
	"github.com/device-management-toolkit/bmc-emulator/internal/usecase/systems/fake"
)

func TestVolumeLifecycle(t *testing.T) {
	t.Parallel()

	f := newFixture(t, nil)
	ctx := context.Background()
	req := dto.VolumeRequest{Name: "data", VolumeType: "Mirrored", CapacityBytes: 1 << 30}

	id, err := f.uc.CreateVolume(ctx, uuidA, "1", req)
	require.NoError(t, err)
	assert.Equal(t, "4242131415", id)
	assert.Equal(t, []string{id}, f.fake.BackingVolumes(fake.DefaultPool))

	second, err := f.uc.CreateVolume(ctx, uuidA, "1", req)
	require.NoError(t, err)
	assert.Equal(t, "4242131415-2", second)

	vols, err := f.uc.Volumes(ctx, uuidA, "1")
	require.NoError(t, err)
	require.Len(t, vols, 2)
	assert.Equal(t, "data", vols[0].Name)

	vol, err := f.uc.Volume(ctx, uuidA, "1", id)
	require.NoError(t, err)
	assert.Equal(t, int64(1<<30), vol.CapacityBytes)

	// the volume table is per (system, storage)
	other, err := f.uc.Volumes(ctx, uuidB, "1")
	require.NoError(t, err)
	assert.Empty(t, other)

	f.fake.RemovePool(fake.DefaultPool)

	_, err = f.uc.Volume(ctx, uuidA, "1", id)
	require.ErrorIs(t, err, entity.ErrNotFound)

	vols, err = f.uc.Volumes(ctx, uuidA, "1")
	require.NoError(t, err)
	assert.Empty(t, vols)
}

func TestVolumesDropRemovedDisk(t *testing.T) {
	t.Parallel()

	f := newFixture(t, nil)
	ctx := context.Background()
	req := dto.VolumeRequest{Name: "data", CapacityBytes: 1 << 20}

	gone, err := f.uc.CreateVolume(ctx, uuidA, "1", req)
	require.NoError(t, err)

	kept, err := f.uc.CreateVolume(ctx, uuidA, "1", req)
	require.NoError(t, err)

	f.fake.RemoveBackingVolume(fake.DefaultPool, gone)

	vols, err := f.uc.Volumes(ctx, uuidA, "1")
	require.NoError(t, err)
	require.Len(t, vols, 1)
	assert.Equal(t, kept, vols[0].ID)

	// reading must not bring the disk back
	assert.Equal(t, []string{kept}, f.fake.BackingVolumes(fake.DefaultPool))

	_, err = f.uc.Volume(ctx, uuidA, "1", gone)
	require.ErrorIs(t, err, entity.ErrNotFound)
}

func TestCreateVolumeWithoutPool(t *testing.T) {
	t.Parallel()

	f := newFixture(t, nil)
	ctx := context.Background()

	f.fake.RemovePool(fake.DefaultPool)

	_, err := f.uc.CreateVolume(ctx, uuidA, "1", dto.VolumeRequest{Name: "data", CapacityBytes: 1024})
	require.ErrorIs(t, err, ErrVolumeNotCreated)

	vols, err := f.uc.Volumes(ctx, uuidA, "1")
	require.NoError(t, err)
	assert.Empty(t, vols)
	assert.Empty(t, f.events.Events())
}

func TestCreateVolumeValidates(t *testing.T) {
	t.Parallel()

	f := newFixture(t, nil)

	_, err := f.uc.CreateVolume(context.Background(), uuidA, "1", dto.VolumeRequest{CapacityBytes: 1})
	require.ErrorIs(t, err, entity.ErrMalformedRequest)

	_, err = f.uc.CreateVolume(context.Background(), uuidA, "1", dto.VolumeRequest{Name: "x"})
	require.ErrorIs(t, err, entity.ErrMalformedRequest)
}

func TestVolumesKeepRecordsOnUnsupportedBackend(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	drv := mocks.NewMockSystemsDriver(ctrl)
	log := mocks.NewMockLogger(ctrl)

	repo := sidetable.NewMemoryRepository()
	require.NoError(t, repo.PutVolume(context.Background(), uuidA, "1", entity.Volume{ID: "v1", Name: "seeded"}))

	drv.EXPECT().StorageVolume(gomock.Any(), gomock.Any()).
		Return("", entity.NotSupportedf("volumes")).Times(1)

	uc := New(Drivers{Systems: drv}, sidetable.NewStore(repo), nil, nil, log)

	vols, err := uc.Volumes(context.Background(), uuidA, "1")
	require.NoError(t, err)
	assert.Empty(t, vols)

	kept, err := repo.ListVolumes(context.Background(), uuidA, "1")
	require.NoError(t, err)
	assert.Len(t, kept, 1)
}

func TestVolumesBackendFailure(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	drv := mocks.NewMockSystemsDriver(ctrl)
	repo := mocks.NewMockRepository(ctrl)

	boom := errors.New("pool lookup failed")

	repo.EXPECT().ListVolumes(gomock.Any(), uuidA, "1").Return([]entity.Volume{{ID: "v1"}}, nil)
	drv.EXPECT().StorageVolume(gomock.Any(), entity.Volume{ID: "v1"}).Return("", boom)

	uc := New(Drivers{Systems: drv}, sidetable.NewStore(repo), nil, nil, mocks.NewMockLogger(ctrl))

	_, err := uc.Volumes(context.Background(), uuidA, "1")
	require.ErrorIs(t, err, boom)
}

func TestStorageAndDrives(t *testing.T) {
	t.Parallel()

	f := newFixture(t, nil)
	ctx := context.Background()

	s, err := f.uc.StorageByID(ctx, uuidA, "1")
	require.NoError(t, err)
	assert.Equal(t, []string{"32ADF365C6C1B7BD"}, s.DriveIDs)

	_, err = f.uc.StorageByID(ctx, uuidA, "2")
	require.ErrorIs(t, err, entity.ErrNotFound)

	d, err := f.uc.Drive(ctx, uuidA, "1", "32ADF365C6C1B7BD")
	require.NoError(t, err)
	assert.Equal(t, "SAS", d.Protocol)

	_, err = f.uc.Drive(ctx, uuidB, "1", "32ADF365C6C1B7BD")
	require.ErrorIs(t, err, entity.ErrNotFound)

	simple, err := f.uc.SimpleStorage(ctx, uuidB)
	require.NoError(t, err)
	assert.Empty(t, simple)
}
