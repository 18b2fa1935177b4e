/*********************************************************************
 * Copyright (c) Intel Corporation 2021
 * SPDX-License-Identifier: Apache-2.0
 **********************************************************************/

package v1

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestServiceRoot(t *testing.T) {
	t.Parallel()

	emu := newEmulator(t, nil)

	w := do(t, emu.engine, http.MethodGet, PathRedfishRoot, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, ContentTypeJSON, w.Header().Get("Content-Type"))

	doc := decode(t, w)
	assert.Equal(t, SchemaServiceRoot, doc["@odata.type"])
	assert.Equal(t, testServiceUUID, doc["UUID"])
	assert.Equal(t, RedfishVersion, doc["RedfishVersion"])
	assert.Equal(t, map[string]any{"@odata.id": PathSystems}, doc["Systems"])
	assert.Equal(t, map[string]any{"@odata.id": PathChassis}, doc["Chassis"])
	assert.Equal(t, map[string]any{"@odata.id": PathManagers}, doc["Managers"])
	assert.Equal(t, map[string]any{"@odata.id": PathRegistries}, doc["Registries"])

	w = do(t, emu.engine, http.MethodPost, PathRedfishRoot, `{}`)
	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
}

func TestMetadataDocument(t *testing.T) {
	t.Parallel()

	emu := newEmulator(t, nil)

	w := do(t, emu.engine, http.MethodGet, PathMetadata, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "application/xml")
	assert.Equal(t, ODataVersionValue, w.Header().Get(ODataVersionHeader))
	assert.Contains(t, w.Body.String(), `Namespace="ComputerSystem"`)
	assert.Contains(t, w.Body.String(), "ServiceRoot.v1_5_0.ServiceContainer")

	for _, accept := range []string{"application/xml", "application/xml, text/xml;q=0.9"} {
		req := newRequest(http.MethodGet, PathMetadata, "")
		req.Header.Set("Accept", accept)

		w = serve(emu.engine, req)
		assert.Equal(t, http.StatusOK, w.Code, accept)
	}

	// JSON resources still refuse XML-only clients
	req := newRequest(http.MethodGet, PathRedfishRoot, "")
	req.Header.Set("Accept", "application/xml")
	assert.Equal(t, http.StatusNotAcceptable, serve(emu.engine, req).Code)
}

func TestRegistries(t *testing.T) {
	t.Parallel()

	emu := newEmulator(t, nil)

	tests := []struct {
		path string
		key  string
	}{
		{PathRegistries, "Members"},
		{PathRegistries + "/BiosAttributeRegistry.v1_0_0", "Location"},
		{PathRegistries + "/Messages", "Location"},
		{PathRegistries + "/Messages/Registry", "Messages"},
	}

	for _, tc := range tests {
		w := do(t, emu.engine, http.MethodGet, tc.path, "")
		require.Equal(t, http.StatusOK, w.Code, tc.path)
		assert.Contains(t, decode(t, w), tc.key, tc.path)
	}
}

func TestValidateRequest(t *testing.T) {
	t.Parallel()

	emu := newEmulator(t, nil)

	req := newRequest(http.MethodGet, PathSystems, "")
	req.Header.Set("Accept", "text/html")

	w := serve(emu.engine, req)
	require.Equal(t, http.StatusNotAcceptable, w.Code)
	assert.Equal(t, BaseNotAcceptableID, messageID(t, w))

	req = newRequest(http.MethodPatch, BuildSystemPath(systemA), `IndicatorLED=Lit`)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	w = serve(emu.engine, req)
	require.Equal(t, http.StatusUnsupportedMediaType, w.Code)
	assert.Equal(t, BaseUnsupportedMediaTypeID, messageID(t, w))

	req = newRequest(http.MethodGet, PathSystems, "")
	req.Header.Set("Accept", "application/json;q=0.9, */*;q=0.8")
	assert.Equal(t, http.StatusOK, serve(emu.engine, req).Code)
}

func TestRecoveryMiddleware(t *testing.T) {
	t.Parallel()

	gin.SetMode(gin.TestMode)

	engine := gin.New()
	engine.Use(RedfishRecoveryMiddleware(newMockLogger(t)))
	engine.GET("/boom", func(*gin.Context) { panic("driver exploded") })

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/boom", nil))

	require.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, BaseErrorMessageID, messageID(t, w))
}

func TestBasicAuth(t *testing.T) {
	t.Parallel()

	hash, err := bcrypt.GenerateFromPassword([]byte("password"), bcrypt.MinCost)
	require.NoError(t, err)

	// bcrypt, apr1 and SHA entries all hash "password"
	path := filepath.Join(t.TempDir(), "htpasswd")
	contents := "admin:" + string(hash) + "\n" +
		"apache:$apr1$xxxxxxxx$dxHfLAsjHkDRmG83UXe8K0\n\n" +
		"legacy:{SHA}W6ph5Mm5Pz8GgiULbPgzG37mj9g=\n"
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o600))

	creds, err := LoadHtpasswd(path)
	require.NoError(t, err)

	gin.SetMode(gin.TestMode)

	engine := gin.New()
	engine.Use(RedfishBasicAuthMiddleware(creds, newMockLogger(t)))

	ok := func(c *gin.Context) { c.Status(http.StatusOK) }
	engine.GET("/", ok)
	engine.GET("/redfish", ok)
	engine.GET("/redfish/v1/", ok)
	engine.GET("/redfish/v1/Systems", ok)

	tests := []struct {
		name     string
		path     string
		user     string
		password string
		want     int
	}{
		{name: "root is anonymous", path: "/", want: http.StatusOK},
		{name: "version document is anonymous", path: "/redfish", want: http.StatusOK},
		{name: "service root is anonymous", path: "/redfish/v1/", want: http.StatusOK},
		{name: "collection needs credentials", path: "/redfish/v1/Systems", want: http.StatusUnauthorized},
		{name: "wrong password", path: "/redfish/v1/Systems", user: "admin", password: "nope", want: http.StatusUnauthorized},
		{name: "unknown user", path: "/redfish/v1/Systems", user: "root", password: "password", want: http.StatusUnauthorized},
		{name: "valid credentials", path: "/redfish/v1/Systems", user: "admin", password: "password", want: http.StatusOK},
		{name: "apr1 entry", path: "/redfish/v1/Systems", user: "apache", password: "password", want: http.StatusOK},
		{name: "sha entry", path: "/redfish/v1/Systems", user: "legacy", password: "password", want: http.StatusOK},
		{name: "apr1 wrong password", path: "/redfish/v1/Systems", user: "apache", password: "nope", want: http.StatusUnauthorized},
	}

	for _, tc := range tests {
		req := httptest.NewRequest(http.MethodGet, tc.path, nil)
		if tc.user != "" {
			req.SetBasicAuth(tc.user, tc.password)
		}

		w := httptest.NewRecorder()
		engine.ServeHTTP(w, req)

		assert.Equal(t, tc.want, w.Code, tc.name)

		if tc.want == http.StatusUnauthorized {
			assert.NotEmpty(t, w.Header().Get("WWW-Authenticate"), tc.name)
		}
	}
}

func TestLoadHtpasswdRejects(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		contents string
	}{
		{name: "unrecognized hash", contents: "admin:password\n"},
		{name: "no separator", contents: "admin\n"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			path := filepath.Join(t.TempDir(), "htpasswd")
			require.NoError(t, os.WriteFile(path, []byte(tc.contents), 0o600))

			_, err := LoadHtpasswd(path)
			require.Error(t, err)
		})
	}

	_, err := LoadHtpasswd(filepath.Join(t.TempDir(), "missing"))
	require.Error(t, err)
}
