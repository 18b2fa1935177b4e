// Package app configures and runs application.
package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/device-management-toolkit/bmc-emulator/config"
	httpapi "github.com/device-management-toolkit/bmc-emulator/internal/controller/http"
	v1 "github.com/device-management-toolkit/bmc-emulator/internal/controller/http/redfish/v1"
	"github.com/device-management-toolkit/bmc-emulator/internal/usecase/redfish"
	"github.com/device-management-toolkit/bmc-emulator/pkg/httpserver"
	"github.com/device-management-toolkit/bmc-emulator/pkg/logger"
	"github.com/device-management-toolkit/bmc-emulator/pkg/tracing"
)

// Run creates objects via constructors.
func Run(cfg *config.Config) {
	log := logger.New(cfg.Log.Level)

	shutdownTracing, err := tracing.Setup(cfg.Tracing.Enabled, os.Stdout)
	if err != nil {
		log.Fatal(fmt.Errorf("app - Run - tracing.Setup: %w", err))
	}

	defer func() {
		if err := shutdownTracing(context.Background()); err != nil {
			log.Error(fmt.Errorf("app - Run - tracing shutdown: %w", err))
		}
	}()

	ctx := context.Background()

	resources, err := config.LoadResources(cfg.Resources.File)
	if err != nil {
		log.Fatal(fmt.Errorf("app - Run - config.LoadResources: %w", err))
	}

	drivers, err := NewDrivers(ctx, cfg, resources)
	if err != nil {
		log.Fatal(fmt.Errorf("app - Run - NewDrivers: %w", err))
	}

	store, err := NewSideTable(cfg)
	if err != nil {
		log.Fatal(fmt.Errorf("app - Run - NewSideTable: %w", err))
	}
	defer store.Close()

	if err := store.Seed(ctx, resources.Indicators, resources.Volumes); err != nil {
		log.Fatal(fmt.Errorf("app - Run - store.Seed: %w", err))
	}

	publisher := NewPublisher(cfg, log)
	defer publisher.Close()

	allow := redfish.NewAllowList(cfg.Instances.Allowed, cfg.Instances.Restrict)
	uc := redfish.New(drivers, store, allow, publisher, log)

	var creds *v1.Credentials
	if cfg.Auth.File != "" {
		if creds, err = v1.LoadHtpasswd(cfg.Auth.File); err != nil {
			log.Fatal(fmt.Errorf("app - Run - v1.LoadHtpasswd: %w", err))
		}
	}

	// HTTP Server
	if cfg.Log.Level != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}

	handler := gin.New()
	httpapi.NewRouter(handler, cfg, uc, httpapi.RouterOptions{
		Info: v1.ServiceInfo{
			UUID:    uuid.NewSHA1(uuid.NameSpaceURL, []byte(cfg.App.Name)).String(),
			Version: cfg.App.Version,
		},
		Credentials: creds,
	}, log)

	opts := []httpserver.Option{httpserver.Port(cfg.HTTP.Host, cfg.HTTP.Port)}

	if cfg.HTTP.TLSEnabled() {
		cert, err := httpserver.LoadCertificate(cfg.HTTP.TLSCert, cfg.HTTP.TLSKey)
		if err != nil {
			log.Fatal(fmt.Errorf("app - Run - httpserver.LoadCertificate: %w", err))
		}

		opts = append(opts, httpserver.TLS(cert))
	}

	httpServer := httpserver.New(handler, opts...)
	httpServer.Start()

	log.Info("app - Run - %s %s serving %s backend on %s (tls=%t)",
		cfg.App.Name, cfg.App.Version, cfg.Backend.Kind, cfg.HTTP.Address(), httpServer.TLSEnabled())

	// Waiting signal
	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt, syscall.SIGTERM)

	select {
	case s := <-interrupt:
		log.Info("app - Run - signal: %s", s.String())
	case err = <-httpServer.Notify():
		if err != nil {
			log.Error(fmt.Errorf("app - Run - httpServer.Notify: %w", err))
		}
	}

	// Shutdown
	if err := httpServer.Shutdown(); err != nil {
		log.Error(fmt.Errorf("app - Run - httpServer.Shutdown: %w", err))
	}
}
