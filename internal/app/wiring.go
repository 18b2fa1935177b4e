package app

import (
	"context"
	"fmt"

	"github.com/device-management-toolkit/bmc-emulator/config"
	"github.com/device-management-toolkit/bmc-emulator/internal/usecase/badgerdb"
	"github.com/device-management-toolkit/bmc-emulator/internal/usecase/chassis"
	"github.com/device-management-toolkit/bmc-emulator/internal/usecase/managers"
	"github.com/device-management-toolkit/bmc-emulator/internal/usecase/redfish"
	"github.com/device-management-toolkit/bmc-emulator/internal/usecase/sidetable"
	"github.com/device-management-toolkit/bmc-emulator/internal/usecase/sqldb"
	"github.com/device-management-toolkit/bmc-emulator/internal/usecase/storage"
	"github.com/device-management-toolkit/bmc-emulator/internal/usecase/systems"
	"github.com/device-management-toolkit/bmc-emulator/internal/usecase/systems/fake"
	"github.com/device-management-toolkit/bmc-emulator/internal/usecase/systems/incus"
	"github.com/device-management-toolkit/bmc-emulator/internal/usecase/systems/openstack"
	"github.com/device-management-toolkit/bmc-emulator/internal/usecase/vmedia"
	"github.com/device-management-toolkit/bmc-emulator/pkg/db"
	"github.com/device-management-toolkit/bmc-emulator/pkg/events"
	"github.com/device-management-toolkit/bmc-emulator/pkg/logger"
)

// NewSystemsDriver picks the systems backend named by cfg.Backend.Kind.
func NewSystemsDriver(ctx context.Context, cfg *config.Config) (systems.Driver, error) {
	switch cfg.Backend.Kind {
	case config.BackendOpenStack:
		return openstack.Connect(ctx, cfg.Backend.OSCloud)
	case config.BackendIncus:
		client, err := incus.Connect(cfg.Backend.IncusURI)
		if err != nil {
			return nil, fmt.Errorf("incus - connect %q: %w", cfg.Backend.IncusURI, err)
		}

		return incus.New(client, cfg.Backend.IncusPool), nil
	case config.BackendFake:
		inv := fake.DefaultInventory()

		if cfg.Backend.FakeInventory != "" {
			var err error
			if inv, err = fake.LoadInventory(cfg.Backend.FakeInventory); err != nil {
				return nil, err
			}
		}

		return fake.New(inv)
	default:
		return nil, fmt.Errorf("unknown backend %q", cfg.Backend.Kind)
	}
}

// NewDrivers builds the systems backend and the static collaborators
// around it.
func NewDrivers(ctx context.Context, cfg *config.Config, res config.StaticResources) (redfish.Drivers, error) {
	sys, err := NewSystemsDriver(ctx, cfg)
	if err != nil {
		return redfish.Drivers{}, err
	}

	ch := chassis.NewStaticDriver(res.Chassis)

	return redfish.Drivers{
		Systems:      sys,
		Chassis:      ch,
		Managers:     managers.NewFakeDriver(sys, ch),
		Storage:      storage.NewStaticDriver(res.Storage, res.Drives),
		VirtualMedia: vmedia.NewStaticDriver(res.VirtualMedia),
	}, nil
}

// NewSideTable opens the repository named by cfg.SideTable.Kind.
func NewSideTable(cfg *config.Config) (*sidetable.Store, error) {
	var repo sidetable.Repository

	switch cfg.SideTable.Kind {
	case config.SideTableSQL:
		sqlDB, err := db.New(cfg.DB.URL)
		if err != nil {
			return nil, err
		}

		repo = sqldb.New(sqlDB)
	case config.SideTableBadger:
		r, err := badgerdb.Open(cfg.Badger.Path)
		if err != nil {
			return nil, err
		}

		repo = r
	default:
		repo = sidetable.NewMemoryRepository()
	}

	return sidetable.NewStore(repo), nil
}

// NewPublisher connects to NATS when configured. A failed connection is
// logged and events are dropped.
func NewPublisher(cfg *config.Config, l logger.Interface) events.Publisher {
	if cfg.Events.NATSURL == "" {
		return events.Noop{}
	}

	p, err := events.NewNATS(cfg.Events.NATSURL, l)
	if err != nil {
		l.Warn("app - events disabled: %v", err)

		return events.Noop{}
	}

	return p
}
