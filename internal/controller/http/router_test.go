package http

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"

	"github.com/device-management-toolkit/bmc-emulator/config"
	v1 "github.com/device-management-toolkit/bmc-emulator/internal/controller/http/redfish/v1"
	"github.com/device-management-toolkit/bmc-emulator/internal/mocks"
)

func newRouter(t *testing.T, cfg *config.Config, creds *v1.Credentials) *gin.Engine {
	t.Helper()

	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Debug(gomock.Any(), gomock.Any()).AnyTimes()
	log.EXPECT().Info(gomock.Any(), gomock.Any()).AnyTimes()
	log.EXPECT().Warn(gomock.Any(), gomock.Any()).AnyTimes()
	log.EXPECT().Error(gomock.Any(), gomock.Any()).AnyTimes()

	engine := gin.New()
	NewRouter(engine, cfg, mocks.NewMockRedfishFeature(ctrl), RouterOptions{
		Info:        v1.ServiceInfo{UUID: "svc", Version: "test"},
		Credentials: creds,
	}, log)

	return engine
}

func get(engine http.Handler, path string, user, password string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if user != "" {
		req.SetBasicAuth(user, password)
	}

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	return w
}

func TestRouterHealthAndMetrics(t *testing.T) {
	t.Parallel()

	engine := newRouter(t, config.Default(), nil)

	assert.Equal(t, http.StatusNoContent, get(engine, "/healthz", "", "").Code)
	assert.Equal(t, http.StatusOK, get(engine, "/redfish/v1/", "", "").Code)
	assert.Equal(t, http.StatusNotFound, get(engine, "/nowhere", "", "").Code)

	w := get(engine, "/metrics", "", "")
	require.Equal(t, http.StatusOK, w.Code)

	body := w.Body.String()
	assert.Contains(t, body, `bmc_emulator_http_requests_total{method="GET",route="/redfish/v1/",status="200"} 1`)
	assert.Contains(t, body, `route="unmatched",status="404"`)
	assert.Contains(t, body, "bmc_emulator_http_request_duration_seconds_bucket")
}

func TestRouterVersionDocument(t *testing.T) {
	t.Parallel()

	engine := newRouter(t, config.Default(), nil)

	w := get(engine, "/redfish", "", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"v1":"/redfish/v1/"}`, w.Body.String())
}

func TestRouterBasicAuth(t *testing.T) {
	t.Parallel()

	hash, err := bcrypt.GenerateFromPassword([]byte("secret"), bcrypt.MinCost)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "htpasswd")
	require.NoError(t, os.WriteFile(path, []byte("admin:"+string(hash)+"\n"), 0o600))

	creds, err := v1.LoadHtpasswd(path)
	require.NoError(t, err)

	cfg := config.Default()
	cfg.HTTP.Pprof = true

	engine := newRouter(t, cfg, creds)

	tests := []struct {
		name string
		path string
		user string
		want int
	}{
		{name: "service root", path: "/redfish/v1/", want: http.StatusOK},
		{name: "metrics", path: "/metrics", want: http.StatusUnauthorized},
		{name: "health", path: "/healthz", want: http.StatusUnauthorized},
		{name: "pprof", path: "/debug/pprof/", want: http.StatusUnauthorized},
		{name: "authenticated metrics", path: "/metrics", user: "admin", want: http.StatusOK},
		{name: "authenticated pprof", path: "/debug/pprof/", user: "admin", want: http.StatusOK},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tc.want, get(engine, tc.path, tc.user, "secret").Code)
		})
	}
}

func TestRouterCORS(t *testing.T) {
	t.Parallel()

	cfg := config.Default()
	cfg.HTTP.CORSOrigins = []string{"https://console.example"}

	engine := newRouter(t, cfg, nil)

	req := httptest.NewRequest(http.MethodGet, "/redfish/v1/", nil)
	req.Header.Set("Origin", "https://console.example")

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "https://console.example", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, strings.ToLower(w.Header().Get("Access-Control-Expose-Headers")), "etag")
}
