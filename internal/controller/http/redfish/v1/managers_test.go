package v1

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/device-management-toolkit/bmc-emulator/internal/usecase/redfish"
)

func TestManagersCollection(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		allow *redfish.AllowList
		want  []string
	}{
		{
			name: "one manager per system",
			want: []string{BuildManagerPath(systemA), BuildManagerPath(systemB)},
		},
		{
			name:  "managers of hidden systems are hidden",
			allow: redfish.NewAllowList([]string{systemA}, true),
			want:  []string{BuildManagerPath(systemA)},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			emu := newEmulator(t, tc.allow)

			w := do(t, emu.engine, http.MethodGet, PathManagers, "")
			require.Equal(t, http.StatusOK, w.Code)
			assert.Equal(t, tc.want, memberIDs(t, decode(t, w)))
		})
	}
}

func TestManagerInstance(t *testing.T) {
	t.Parallel()

	emu := newEmulator(t, nil)

	w := do(t, emu.engine, http.MethodGet, BuildManagerPath(systemA), "")
	require.Equal(t, http.StatusOK, w.Code)

	doc := decode(t, w)
	assert.Equal(t, managerTypeBMC, doc["ManagerType"])
	assert.Equal(t, "node-a-Manager", doc["Name"])
	assert.Equal(t, systemA, doc["UUID"])
	assert.Equal(t, systemA, doc["ServiceEntryPointUUID"])

	links := doc["Links"].(map[string]any)
	assert.Equal(t, []any{map[string]any{"@odata.id": BuildSystemPath(systemA)}}, links["ManagerForServers"])
	assert.Equal(t, []any{
		map[string]any{"@odata.id": BuildChassisPath(rootChassis)},
		map[string]any{"@odata.id": BuildChassisPath(leafChassis)},
	}, links["ManagerForChassis"])

	// only the first manager manages chassis
	w = do(t, emu.engine, http.MethodGet, BuildManagerPath(systemB), "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []any{}, decode(t, w)["Links"].(map[string]any)["ManagerForChassis"])
}

func TestManagerAlias(t *testing.T) {
	t.Parallel()

	emu := newEmulator(t, nil)

	w := do(t, emu.engine, http.MethodGet, PathManagers+"/node-b", "")
	require.Equal(t, http.StatusTemporaryRedirect, w.Code)
	assert.Equal(t, BuildManagerPath(systemB), w.Header().Get("Location"))

	w = do(t, emu.engine, http.MethodPatch, BuildManagerPath(systemB), `{}`)
	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
}
