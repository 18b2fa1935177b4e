package managers

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/device-management-toolkit/bmc-emulator/internal/mocks"
	"github.com/device-management-toolkit/bmc-emulator/internal/usecase/chassis"
)

func TestFakeDriver(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	sys := mocks.NewMockSystemsDriver(ctrl)

	sys.EXPECT().Systems(gomock.Any()).Return([]string{"u1", "u2"}, nil).AnyTimes()
	sys.EXPECT().Name(gomock.Any(), "u1").Return("node-1", nil)
	sys.EXPECT().Name(gomock.Any(), "u2").Return("node-2", nil)

	d := NewFakeDriver(sys, chassis.NewStaticDriver(nil))
	ctx := context.Background()

	m1, err := d.Manager(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, "node-1-Manager", m1.Name)
	assert.Equal(t, "u1", m1.ServiceEntryPointUUID)

	ch, err := d.ManagedChassis(ctx, m1)
	require.NoError(t, err)
	assert.Equal(t, []string{chassis.DefaultChassis[0].UUID}, ch)

	m2, err := d.Manager(ctx, "u2")
	require.NoError(t, err)

	ch, err = d.ManagedChassis(ctx, m2)
	require.NoError(t, err)
	assert.Empty(t, ch)

	sysList, err := d.ManagedSystems(ctx, m2)
	require.NoError(t, err)
	assert.Equal(t, []string{"u2"}, sysList)

	forSystem, err := d.ManagersForSystem(ctx, "u2")
	require.NoError(t, err)
	assert.Equal(t, []string{"u2"}, forSystem)
}
