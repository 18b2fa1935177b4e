package v1

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/device-management-toolkit/bmc-emulator/internal/entity"
	"github.com/device-management-toolkit/bmc-emulator/internal/mocks"
	"github.com/device-management-toolkit/bmc-emulator/internal/usecase/chassis"
	"github.com/device-management-toolkit/bmc-emulator/internal/usecase/managers"
	"github.com/device-management-toolkit/bmc-emulator/internal/usecase/redfish"
	"github.com/device-management-toolkit/bmc-emulator/internal/usecase/sidetable"
	"github.com/device-management-toolkit/bmc-emulator/internal/usecase/storage"
	"github.com/device-management-toolkit/bmc-emulator/internal/usecase/systems/fake"
)

const (
	testServiceUUID = "92384634-2938-2342-8820-489239905423"
	systemA         = "48295eb5-f3dd-4f3c-9d5b-1c4d3a8ec2a1"
	systemB         = "a0f4bb9e-3c0f-4a6b-8a4e-2bbf3b0f7c11"
	rootChassis     = "15693887-7984-9484-3272-842188918912"
	leafChassis     = "4a0b6e56-8a5a-4d3c-9d52-0e2b3a6b1f00"
)

func newMockLogger(t *testing.T) *mocks.MockLogger {
	t.Helper()

	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Debug(gomock.Any(), gomock.Any()).AnyTimes()
	log.EXPECT().Info(gomock.Any(), gomock.Any()).AnyTimes()
	log.EXPECT().Warn(gomock.Any(), gomock.Any()).AnyTimes()
	log.EXPECT().Error(gomock.Any(), gomock.Any()).AnyTimes()

	return log
}

// newTestEngine mounts the v1 tree the same way the production router does.
func newTestEngine(t *testing.T, f redfish.Feature) *gin.Engine {
	t.Helper()

	gin.SetMode(gin.TestMode)

	log := newMockLogger(t)
	engine := gin.New()

	group := engine.Group("/redfish/v1",
		RedfishRecoveryMiddleware(log),
		ValidateRequestMiddleware(),
		RequestCacheMiddleware(),
	)

	NewServiceRootRoutes(group, ServiceInfo{UUID: testServiceUUID, Version: "test"}, log)
	NewRegistryRoutes(group, log)
	NewSystemsRoutes(group, f, log)
	NewChassisRoutes(group, f, log)
	NewManagersRoutes(group, f, log)

	return engine
}

type emulator struct {
	engine *gin.Engine
	fake   *fake.Driver
}

// newEmulator serves two fake systems, a root and a leaf chassis and one
// storage resource on systemA.
func newEmulator(t *testing.T, allow *redfish.AllowList) emulator {
	t.Helper()

	mem, cpus := 4, 2
	mode := entity.BootModeUEFI
	secure := true

	drv, err := fake.New(fake.Inventory{
		Systems: []fake.System{
			{
				UUID: systemA, Name: "node-a", PowerState: entity.PowerStateOn,
				MemoryGiB: &mem, CPUs: &cpus, BootMode: &mode, SecureBoot: &secure,
				NICs: []entity.NIC{
					{ID: "00:5c:52:31:3a:9c", MAC: "00:5c:52:31:3a:9c"},
					{ID: "00:5c:52:31:3b:9c", MAC: "00:5c:52:31:3b:9c"},
				},
				Processors: []entity.Processor{
					{ID: "CPU0", Socket: "CPU 0", Cores: 2, Threads: 2, Model: "Virtual CPU", Vendor: "QEMU"},
				},
				SimpleStorage: []entity.SimpleStorage{{
					ID: "virtio", Name: "virtio Controller",
					Devices: []entity.SimpleStorageDevice{{Name: "vda", CapacityBytes: 10 << 30}},
				}},
			},
			{UUID: systemB, Name: "node-b"},
		},
		Pools: []string{fake.DefaultPool},
	})
	require.NoError(t, err)

	ch := chassis.NewStaticDriver([]entity.Chassis{
		{ID: "Chassis-1", Name: "Rack", UUID: rootChassis},
		{ID: "Chassis-2", Name: "Shelf", UUID: leafChassis},
	})

	st := storage.NewStaticDriver(
		map[string][]entity.Storage{
			systemA: {{
				ID: "1", Name: "Local Storage Controller", DriveIDs: []string{"32ADF365C6C1B7BD"},
				Controllers: []entity.StorageController{{MemberID: "0", Name: "Contoso Integrated RAID", SpeedGbps: 12, Protocols: []string{"PCIe"}}},
			}},
		},
		map[string]map[string][]entity.Drive{
			systemA: {"1": {{ID: "32ADF365C6C1B7BD", Name: "Drive Sample", CapacityBytes: 899527000000, Protocol: "SAS"}}},
		})

	uc := redfish.New(redfish.Drivers{
		Systems:  drv,
		Chassis:  ch,
		Managers: managers.NewFakeDriver(drv, ch),
		Storage:  st,
	}, sidetable.NewStore(sidetable.NewMemoryRepository()), allow, nil, newMockLogger(t))

	return emulator{engine: newTestEngine(t, uc), fake: drv}
}

func do(t *testing.T, engine http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	return serve(engine, newRequest(method, path, body))
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var doc map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &doc), w.Body.String())

	return doc
}

func memberIDs(t *testing.T, doc map[string]any) []string {
	t.Helper()

	members, ok := doc["Members"].([]any)
	require.True(t, ok, "Members missing: %v", doc)

	out := make([]string, 0, len(members))
	for _, m := range members {
		out = append(out, m.(map[string]any)["@odata.id"].(string))
	}

	return out
}

func messageID(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()

	doc := decode(t, w)
	errObj, ok := doc["error"].(map[string]any)
	require.True(t, ok, "no error envelope: %s", w.Body.String())

	return errObj["code"].(string)
}

func newRequest(method, path, body string) *http.Request {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	return req
}

func serve(engine http.Handler, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	return w
}
