package tracing

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupDisabled(t *testing.T) {
	shutdown, err := Setup(false, nil)
	require.NoError(t, err)

	_, span := Tracer().Start(context.Background(), "noop")
	assert.False(t, span.SpanContext().IsValid())
	span.End()

	require.NoError(t, shutdown(context.Background()))
}

func TestSetupEnabledExports(t *testing.T) {
	var buf bytes.Buffer

	shutdown, err := Setup(true, &buf)
	require.NoError(t, err)

	_, span := Tracer().Start(context.Background(), "GET /redfish/v1/Systems")
	assert.True(t, span.SpanContext().IsValid())
	span.End()

	require.NoError(t, shutdown(context.Background()))
	assert.Contains(t, buf.String(), "GET /redfish/v1/Systems")

	_, err = Setup(false, nil)
	require.NoError(t, err)
}
