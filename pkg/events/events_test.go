package events

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEventSubject(t *testing.T) {
	t.Parallel()

	e := Event{Resource: "system", UUID: "u1", Change: "power"}
	assert.Equal(t, "redfish.system.u1.power", e.Subject())
}

func TestNATSPublishWithoutConnection(t *testing.T) {
	t.Parallel()

	p := &NATS{}
	err := p.Publish(context.Background(), Event{Resource: "system"})
	require.Error(t, err)

	p.Close()
}

func TestRecorder(t *testing.T) {
	t.Parallel()

	var p Publisher = &Recorder{}

	require.NoError(t, p.Publish(context.Background(), Event{Resource: "chassis", Change: "indicator"}))
	require.NoError(t, Noop{}.Publish(context.Background(), Event{}))

	assert.Len(t, p.(*Recorder).Events(), 1)
}
