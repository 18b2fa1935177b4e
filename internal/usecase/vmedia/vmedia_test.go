package vmedia

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/device-management-toolkit/bmc-emulator/internal/entity"
)

func TestStaticDriverDefaults(t *testing.T) {
	t.Parallel()

	d := NewStaticDriver(nil)

	list, err := d.Devices(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Cd", list[0].ID)
	assert.Equal(t, []string{"CD", "DVD"}, list[0].MediaTypes)
	assert.Equal(t, "Floppy", list[1].ID)
}

func TestStaticDriverDevice(t *testing.T) {
	t.Parallel()

	d := NewStaticDriver([]entity.VirtualMediaDevice{
		{ID: "Usb", MediaTypes: []string{"USBStick"}},
	})

	tests := []struct {
		id      string
		want    string
		wantErr bool
	}{
		{id: "Usb", want: "Usb"},
		{id: "Cd", wantErr: true},
		{id: "", wantErr: true},
	}

	for _, tc := range tests {
		t.Run(tc.id, func(t *testing.T) {
			t.Parallel()

			got, err := d.Device(context.Background(), tc.id)
			if tc.wantErr {
				require.ErrorIs(t, err, entity.ErrNotFound)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.want, got.Name)
		})
	}
}
