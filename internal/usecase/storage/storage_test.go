package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/device-management-toolkit/bmc-emulator/internal/entity"
)

func TestStaticDriver(t *testing.T) {
	t.Parallel()

	d := NewStaticDriver(
		map[string][]entity.Storage{
			"u2": {{ID: "1"}},
			"u1": {{ID: "1"}, {ID: "2"}},
		},
		map[string]map[string][]entity.Drive{
			"u1": {"2": {{ID: "d2"}}, "1": {{ID: "d1"}}},
		})
	ctx := context.Background()

	all, err := d.AllStorage(ctx)
	require.NoError(t, err)
	assert.Equal(t, []entity.StorageRef{
		{SystemUUID: "u1", StorageID: "1"},
		{SystemUUID: "u1", StorageID: "2"},
		{SystemUUID: "u2", StorageID: "1"},
	}, all)

	drives, err := d.AllDrives(ctx)
	require.NoError(t, err)
	assert.Equal(t, []entity.DriveRef{
		{SystemUUID: "u1", StorageID: "1", DriveID: "d1"},
		{SystemUUID: "u1", StorageID: "2", DriveID: "d2"},
	}, drives)

	none, err := d.StorageCollection(ctx, "u3")
	require.NoError(t, err)
	assert.Empty(t, none)

	empty := NewStaticDriver(nil, nil)
	refs, err := empty.AllDrives(ctx)
	require.NoError(t, err)
	assert.Empty(t, refs)
}
