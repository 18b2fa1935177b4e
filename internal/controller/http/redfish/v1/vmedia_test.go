package v1

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/device-management-toolkit/bmc-emulator/internal/usecase/redfish"
)

func TestVirtualMediaCollection(t *testing.T) {
	t.Parallel()

	emu := newEmulator(t, nil)

	w := do(t, emu.engine, http.MethodGet, BuildManagerPath(systemA), "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, map[string]any{"@odata.id": BuildManagerPath(systemA) + "/VirtualMedia"}, decode(t, w)["VirtualMedia"])

	w = do(t, emu.engine, http.MethodGet, BuildManagerPath(systemA)+"/VirtualMedia", "")
	require.Equal(t, http.StatusOK, w.Code)

	doc := decode(t, w)
	assert.Equal(t, SchemaVirtualMediaCollection, doc["@odata.type"])
	assert.Equal(t, []string{
		BuildVirtualMediaPath(systemA, "Cd"),
		BuildVirtualMediaPath(systemA, "Floppy"),
	}, memberIDs(t, doc))

	w = do(t, emu.engine, http.MethodPost, BuildManagerPath(systemA)+"/VirtualMedia", `{}`)
	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
}

func TestVirtualMediaInsertEject(t *testing.T) {
	t.Parallel()

	emu := newEmulator(t, nil)
	cd := BuildVirtualMediaPath(systemA, "Cd")

	w := do(t, emu.engine, http.MethodGet, cd, "")
	require.Equal(t, http.StatusOK, w.Code)

	doc := decode(t, w)
	assert.Equal(t, SchemaVirtualMedia, doc["@odata.type"])
	assert.Equal(t, "Virtual CD", doc["Name"])
	assert.Equal(t, []any{"CD", "DVD"}, doc["MediaTypes"])
	assert.Equal(t, false, doc["Inserted"])
	assert.Equal(t, "NotConnected", doc["ConnectedVia"])
	assert.Equal(t, map[string]any{"target": cd + "/Actions/VirtualMedia.InsertMedia"},
		doc["Actions"].(map[string]any)["#VirtualMedia.InsertMedia"])

	w = do(t, emu.engine, http.MethodPost, cd+"/Actions/VirtualMedia.InsertMedia",
		`{"Image":"http://images.local/boot.iso","WriteProtected":false}`)
	require.Equal(t, http.StatusNoContent, w.Code, w.Body.String())

	doc = decode(t, do(t, emu.engine, http.MethodGet, cd, ""))
	assert.Equal(t, "http://images.local/boot.iso", doc["Image"])
	assert.Equal(t, "boot.iso", doc["ImageName"])
	assert.Equal(t, true, doc["Inserted"])
	assert.Equal(t, false, doc["WriteProtected"])
	assert.Equal(t, "URI", doc["ConnectedVia"])

	// the other device and the other manager stay empty
	doc = decode(t, do(t, emu.engine, http.MethodGet, BuildVirtualMediaPath(systemA, "Floppy"), ""))
	assert.Equal(t, false, doc["Inserted"])

	doc = decode(t, do(t, emu.engine, http.MethodGet, BuildVirtualMediaPath(systemB, "Cd"), ""))
	assert.Equal(t, false, doc["Inserted"])

	w = do(t, emu.engine, http.MethodPost, cd+"/Actions/VirtualMedia.EjectMedia", "")
	require.Equal(t, http.StatusNoContent, w.Code, w.Body.String())

	doc = decode(t, do(t, emu.engine, http.MethodGet, cd, ""))
	assert.Equal(t, "", doc["Image"])
	assert.Equal(t, false, doc["Inserted"])
}

func TestVirtualMediaErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		method   string
		path     string
		body     string
		code     int
		message  string
		location string
	}{
		{
			name:    "missing image",
			method:  http.MethodPost,
			path:    BuildVirtualMediaPath(systemA, "Cd") + "/Actions/VirtualMedia.InsertMedia",
			body:    `{"Inserted":true}`,
			code:    http.StatusBadRequest,
			message: BasePropertyMissingID,
		},
		{
			name:    "malformed body",
			method:  http.MethodPost,
			path:    BuildVirtualMediaPath(systemA, "Cd") + "/Actions/VirtualMedia.InsertMedia",
			body:    `{"Image":`,
			code:    http.StatusBadRequest,
			message: BaseMalformedJSONID,
		},
		{
			name:    "unknown device",
			method:  http.MethodGet,
			path:    BuildVirtualMediaPath(systemA, "Usb"),
			code:    http.StatusNotFound,
			message: BaseResourceNotFoundID,
		},
		{
			name:    "eject unknown device",
			method:  http.MethodPost,
			path:    BuildVirtualMediaPath(systemA, "Usb") + "/Actions/VirtualMedia.EjectMedia",
			code:    http.StatusNotFound,
			message: BaseResourceNotFoundID,
		},
		{
			name:    "manager of hidden system",
			method:  http.MethodGet,
			path:    BuildVirtualMediaPath(systemB, "Cd"),
			code:    http.StatusNotFound,
			message: BaseResourceNotFoundID,
		},
		{
			name:     "manager alias",
			method:   http.MethodGet,
			path:     PathManagers + "/node-a/VirtualMedia/Cd",
			code:     http.StatusTemporaryRedirect,
			location: BuildVirtualMediaPath(systemA, "Cd"),
		},
		{
			name:   "patch device",
			method: http.MethodPatch,
			path:   BuildVirtualMediaPath(systemA, "Cd"),
			body:   `{}`,
			code:   http.StatusMethodNotAllowed,
		},
	}

	emu := newEmulator(t, redfish.NewAllowList([]string{systemA}, true))

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			w := do(t, emu.engine, tc.method, tc.path, tc.body)
			require.Equal(t, tc.code, w.Code, w.Body.String())

			if tc.message != "" {
				assert.Equal(t, tc.message, messageID(t, w))
			}

			if tc.location != "" {
				assert.Equal(t, tc.location, w.Header().Get("Location"))
			}
		})
	}
}

func TestCertificateService(t *testing.T) {
	t.Parallel()

	emu := newEmulator(t, nil)

	root := decode(t, do(t, emu.engine, http.MethodGet, PathRedfishRoot, ""))
	assert.Equal(t, map[string]any{"@odata.id": PathCertService}, root["CertificateService"])

	w := do(t, emu.engine, http.MethodGet, PathCertService, "")
	require.Equal(t, http.StatusOK, w.Code)

	doc := decode(t, w)
	assert.Equal(t, SchemaCertificateService, doc["@odata.type"])
	assert.Equal(t, map[string]any{"@odata.id": PathCertService + "/CertificateLocations"}, doc["CertificateLocations"])

	w = do(t, emu.engine, http.MethodGet, PathCertService+"/CertificateLocations", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, map[string]any{"Certificates": []any{}}, decode(t, w)["Links"])

	w = do(t, emu.engine, http.MethodPost, PathCertService, `{}`)
	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
}
