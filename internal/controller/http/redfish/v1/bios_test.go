package v1

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	dto "github.com/device-management-toolkit/bmc-emulator/internal/entity/dto/v1"
	"github.com/device-management-toolkit/bmc-emulator/internal/mocks"
)

func TestBiosSettingsRoundTrip(t *testing.T) {
	t.Parallel()

	emu := newEmulator(t, nil)
	bios := BuildSystemPath(systemA) + "/BIOS"

	w := do(t, emu.engine, http.MethodGet, bios, "")
	require.Equal(t, http.StatusOK, w.Code)

	doc := decode(t, w)
	assert.Equal(t, "BIOS", doc["Id"])
	assert.Equal(t, biosRegistryRef, doc["AttributeRegistry"])
	assert.Equal(t, "Uefi", doc["Attributes"].(map[string]any)["BootMode"])
	assert.Equal(t, map[string]any{"@odata.id": bios + "/Settings"},
		doc["@Redfish.Settings"].(map[string]any)["SettingsObject"])

	w = do(t, emu.engine, http.MethodPatch, bios+"/Settings", `{"Attributes":{"ProcTurboMode":"Disabled"}}`)
	require.Equal(t, http.StatusNoContent, w.Code)

	w = do(t, emu.engine, http.MethodGet, bios+"/Settings", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Disabled", decode(t, w)["Attributes"].(map[string]any)["ProcTurboMode"])

	w = do(t, emu.engine, http.MethodPost, bios+"/Actions/Bios.ResetBios", "")
	require.Equal(t, http.StatusNoContent, w.Code)

	w = do(t, emu.engine, http.MethodGet, bios, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Enabled", decode(t, w)["Attributes"].(map[string]any)["ProcTurboMode"])
}

func TestBiosSettingsPatchWithoutAttributes(t *testing.T) {
	t.Parallel()

	emu := newEmulator(t, nil)

	w := do(t, emu.engine, http.MethodPatch, BuildSystemPath(systemA)+"/BIOS/Settings", `{}`)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, BasePropertyMissingID, messageID(t, w))
}

func TestSecureBoot(t *testing.T) {
	t.Parallel()

	emu := newEmulator(t, nil)
	path := BuildSystemPath(systemA) + "/SecureBoot"

	w := do(t, emu.engine, http.MethodGet, path, "")
	require.Equal(t, http.StatusOK, w.Code)

	doc := decode(t, w)
	assert.Equal(t, true, doc["SecureBootEnable"])
	assert.Equal(t, "Enabled", doc["SecureBootCurrentBoot"])

	w = do(t, emu.engine, http.MethodPatch, path, `{"SecureBootEnable":false}`)
	require.Equal(t, http.StatusNoContent, w.Code)

	w = do(t, emu.engine, http.MethodGet, path, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, false, decode(t, w)["SecureBootEnable"])

	// systems without secure boot support leave the fields out
	w = do(t, emu.engine, http.MethodGet, BuildSystemPath(systemB)+"/SecureBoot", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.NotContains(t, decode(t, w), "SecureBootEnable")

	w = do(t, emu.engine, http.MethodPatch, BuildSystemPath(systemB)+"/SecureBoot", `{"SecureBootEnable":true}`)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, BaseActionNotSupportedID, messageID(t, w))
}

func TestBiosUnsupportedBackendServesEmptyAttributes(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	f := mocks.NewMockRedfishFeature(ctrl)
	f.EXPECT().ResolveSystem(gomock.Any(), systemA).Return(systemA, nil)
	f.EXPECT().BIOS(gomock.Any(), systemA).Return(dto.BIOS{Identity: systemA, Attributes: map[string]any{}}, nil)

	w := do(t, newTestEngine(t, f), http.MethodGet, BuildSystemPath(systemA)+"/BIOS", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, decode(t, w)["Attributes"])
}

func TestBiosRegistry(t *testing.T) {
	t.Parallel()

	emu := newEmulator(t, nil)

	w := do(t, emu.engine, http.MethodGet, PathSystems+"/Bios/BiosRegistry", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, decode(t, w), "RegistryEntries")

	w = do(t, emu.engine, http.MethodGet, BuildSystemPath(systemA)+"/BiosRegistry", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}
