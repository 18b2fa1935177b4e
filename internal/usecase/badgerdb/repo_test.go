package badgerdb

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/device-management-toolkit/bmc-emulator/internal/entity"
)

func TestRepositoryPersistsAcrossReopen(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	ctx := context.Background()

	repo, err := Open(dir)
	require.NoError(t, err)

	_, found, err := repo.GetIndicator(ctx, "u1")
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, repo.PutIndicator(ctx, "u1", "Lit"))
	require.NoError(t, repo.PutVolume(ctx, "u1", "1", entity.Volume{ID: "b", Name: "second", CapacityBytes: 2048}))
	require.NoError(t, repo.PutVolume(ctx, "u1", "1", entity.Volume{ID: "a", Name: "first", CapacityBytes: 1024}))
	require.NoError(t, repo.PutVolume(ctx, "u1", "10", entity.Volume{ID: "c", Name: "other storage"}))
	require.NoError(t, repo.PutVirtualMedia(ctx, "m1", "Cd", entity.VirtualMedia{Image: "http://images.local/a.iso", ImageName: "a.iso", Inserted: true}))
	require.NoError(t, repo.Close())

	repo, err = Open(dir)
	require.NoError(t, err)

	defer repo.Close()

	state, found, err := repo.GetIndicator(ctx, "u1")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "Lit", state)

	media, found, err := repo.GetVirtualMedia(ctx, "m1", "Cd")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "a.iso", media.ImageName)
	assert.True(t, media.Inserted)

	_, found, err = repo.GetVirtualMedia(ctx, "m1", "Floppy")
	require.NoError(t, err)
	assert.False(t, found)

	vols, err := repo.ListVolumes(ctx, "u1", "1")
	require.NoError(t, err)
	require.Len(t, vols, 2)
	assert.Equal(t, "first", vols[0].Name)
	assert.Equal(t, int64(2048), vols[1].CapacityBytes)

	require.NoError(t, repo.DeleteVolume(ctx, "u1", "1", "a"))

	vols, err = repo.ListVolumes(ctx, "u1", "1")
	require.NoError(t, err)
	require.Len(t, vols, 1)
	assert.Equal(t, "b", vols[0].ID)
}

func TestRepositoryInMemory(t *testing.T) {
	t.Parallel()

	repo, err := Open("")
	require.NoError(t, err)

	defer repo.Close()

	vols, err := repo.ListVolumes(context.Background(), "missing", "1")
	require.NoError(t, err)
	assert.Empty(t, vols)
}
