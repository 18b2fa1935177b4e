package v1

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"
	htpasswd "github.com/tg123/go-htpasswd"

	"github.com/device-management-toolkit/bmc-emulator/pkg/logger"
)

// Credentials verifies Basic auth users against an htpasswd file.
type Credentials struct {
	file *htpasswd.File
}

// LoadHtpasswd reads an htpasswd file. bcrypt, apr1 MD5, SHA, SSHA and
// crypt SHA entries are accepted; any other line fails the load.
func LoadHtpasswd(path string) (*Credentials, error) {
	var bad []error

	file, err := htpasswd.New(path, htpasswd.DefaultSystems, func(err error) {
		bad = append(bad, err)
	})
	if err != nil {
		return nil, fmt.Errorf("auth - open %s: %w", path, err)
	}

	if len(bad) > 0 {
		return nil, fmt.Errorf("auth - %s: %w", path, errors.Join(bad...))
	}

	return &Credentials{file: file}, nil
}

// Verify -.
func (cr *Credentials) Verify(user, password string) bool {
	return cr.file.Match(user, password)
}

// anonymousPaths stay reachable without credentials so clients can
// discover the service.
var anonymousPaths = map[string]bool{"": true, "redfish": true, "redfish/v1": true}

// RedfishBasicAuthMiddleware enforces HTTP Basic auth on every path except
// the service discovery ones.
func RedfishBasicAuthMiddleware(creds *Credentials, l logger.Interface) gin.HandlerFunc {
	return func(c *gin.Context) {
		if anonymousPaths[strings.Trim(c.Request.URL.Path, "/")] {
			c.Next()

			return
		}

		user, password, ok := c.Request.BasicAuth()
		if !ok || !creds.Verify(user, password) {
			l.Warn("http - redfish v1 - rejected credentials for %q on %s", user, c.Request.URL.Path)
			NoValidSessionError(c)

			return
		}

		c.Next()
	}
}
