// Package http wires the gin engine: shared middleware, metrics, profiling
// and the Redfish tree.
package http

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/pprof"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/device-management-toolkit/bmc-emulator/config"
	"github.com/device-management-toolkit/bmc-emulator/internal/controller/http/redfish"
	v1 "github.com/device-management-toolkit/bmc-emulator/internal/controller/http/redfish/v1"
	redfishuc "github.com/device-management-toolkit/bmc-emulator/internal/usecase/redfish"
	"github.com/device-management-toolkit/bmc-emulator/pkg/logger"
)

// RouterOptions -.
type RouterOptions struct {
	Info        v1.ServiceInfo
	Credentials *v1.Credentials
}

// NewRouter mounts every route on handler. Basic auth applies to every
// route when credentials are configured, except the service root.
func NewRouter(handler *gin.Engine, cfg *config.Config, f redfishuc.Feature, opts RouterOptions, l logger.Interface) {
	metrics := NewMetrics()

	handler.Use(gin.Logger())
	handler.Use(gin.Recovery())
	handler.Use(metrics.Middleware())
	handler.Use(TracingMiddleware())

	if len(cfg.HTTP.CORSOrigins) > 0 {
		corsConfig := cors.DefaultConfig()
		corsConfig.AllowOrigins = cfg.HTTP.CORSOrigins
		corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "Authorization", "If-None-Match")
		corsConfig.ExposeHeaders = []string{"ETag", "Location", "OData-Version"}
		handler.Use(cors.New(corsConfig))
	}

	if opts.Credentials != nil {
		handler.Use(v1.RedfishBasicAuthMiddleware(opts.Credentials, l))
		l.Info("Basic authentication enabled")
	}

	if cfg.HTTP.Pprof {
		pprof.Register(handler)
		l.Info("pprof endpoints enabled under /debug/pprof")
	}

	handler.GET("/metrics", gin.WrapH(promhttp.HandlerFor(metrics.Registry, promhttp.HandlerOpts{})))
	handler.GET("/healthz", func(c *gin.Context) { c.Status(http.StatusNoContent) })

	redfish.NewRoutes(handler, f, opts.Info, l)
}
