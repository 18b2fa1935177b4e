package redfish

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAllowList(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		uuids    []string
		restrict bool
		uuid     string
		want     bool
		wantNil  bool
	}{
		{name: "unconfigured", uuid: "any", want: true, wantNil: true},
		{name: "member", uuids: []string{"a", "b"}, uuid: "b", want: true},
		{name: "non member", uuids: []string{"a"}, uuid: "b", want: false},
		{name: "restricted empty", restrict: true, uuid: "a", want: false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			a := NewAllowList(tc.uuids, tc.restrict)
			assert.Equal(t, tc.wantNil, a == nil)
			assert.Equal(t, tc.want, a.Permits(tc.uuid))
		})
	}
}

func TestAllowListFilterKeepsOrder(t *testing.T) {
	t.Parallel()

	a := NewAllowList([]string{"c", "a"}, false)
	assert.Equal(t, []string{"a", "c"}, a.Filter([]string{"a", "b", "c"}))

	var open *AllowList
	assert.Equal(t, []string{"x"}, open.Filter([]string{"x"}))
}
