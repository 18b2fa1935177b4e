package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/ilyakaznacheev/cleanenv"
)

// Backend kinds.
const (
	BackendFake      = "fake"
	BackendOpenStack = "openstack"
	BackendIncus     = "incus"
)

// Side table kinds.
const (
	SideTableMemory = "memory"
	SideTableSQL    = "sql"
	SideTableBadger = "badger"
)

var ErrBackendConflict = errors.New("config - only one of os_cloud, incus_uri or fake may be set")

type (
	// Config -.
	Config struct {
		App       `yaml:"app"`
		HTTP      `yaml:"http"`
		Auth      `yaml:"auth"`
		Backend   `yaml:"backend"`
		Instances `yaml:"instances"`
		SideTable `yaml:"sidetable"`
		DB        `yaml:"db"`
		Badger    `yaml:"badger"`
		Resources `yaml:"resources"`
		Events    `yaml:"events"`
		Tracing   `yaml:"tracing"`
		Log       `yaml:"log"`
	}

	// App -.
	App struct {
		Name    string `yaml:"name" env:"APP_NAME"`
		Version string `yaml:"version" env:"APP_VERSION"`
	}

	// HTTP -.
	HTTP struct {
		Host        string   `yaml:"host" env:"HTTP_HOST"`
		Port        string   `yaml:"port" env:"HTTP_PORT" validate:"required,numeric"`
		TLSCert     string   `yaml:"tls_cert" env:"HTTP_TLS_CERT"`
		TLSKey      string   `yaml:"tls_key" env:"HTTP_TLS_KEY"`
		CORSOrigins []string `yaml:"cors_origins" env:"HTTP_CORS_ORIGINS"`
		Pprof       bool     `yaml:"pprof" env:"HTTP_PPROF"`
	}

	// Auth -.
	Auth struct {
		File string `yaml:"file" env:"AUTH_FILE"`
	}

	// Backend selects the systems driver.
	Backend struct {
		Kind          string `yaml:"kind" env:"BACKEND_KIND" validate:"oneof=fake openstack incus"`
		OSCloud       string `yaml:"os_cloud" env:"OS_CLOUD"`
		IncusURI      string `yaml:"incus_uri" env:"BACKEND_INCUS_URI"`
		IncusPool     string `yaml:"incus_pool" env:"BACKEND_INCUS_POOL" validate:"required"`
		FakeInventory string `yaml:"fake_inventory" env:"BACKEND_FAKE_INVENTORY"`
	}

	// Instances is the allow-list of system UUIDs.
	Instances struct {
		Allowed  []string `yaml:"allowed" env:"INSTANCES_ALLOWED"`
		Restrict bool     `yaml:"restrict" env:"INSTANCES_RESTRICT"`
	}

	// SideTable selects where indicator and volume records live.
	SideTable struct {
		Kind string `yaml:"kind" env:"SIDETABLE_KIND" validate:"oneof=memory sql badger"`
	}

	// DB -.
	DB struct {
		URL string `yaml:"url" env:"DB_URL"`
	}

	// Badger -.
	Badger struct {
		Path string `yaml:"path" env:"BADGER_PATH"`
	}

	// Resources points at the static resource file.
	Resources struct {
		File string `yaml:"file" env:"RESOURCES_FILE"`
	}

	// Events -.
	Events struct {
		NATSURL string `yaml:"nats_url" env:"EVENTS_NATS_URL"`
	}

	// Tracing -.
	Tracing struct {
		Enabled bool `yaml:"enabled" env:"TRACING_ENABLED"`
	}

	// Log -.
	Log struct {
		Level string `yaml:"level" env:"LOG_LEVEL" validate:"oneof=debug info warn error"`
	}
)

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		App: App{
			Name:    "bmc-emulator",
			Version: "DEVELOPMENT",
		},
		HTTP: HTTP{
			Host: "",
			Port: "8000",
		},
		Backend: Backend{
			Kind:      BackendFake,
			IncusPool: "default",
		},
		SideTable: SideTable{
			Kind: SideTableMemory,
		},
		DB: DB{
			URL: "sqlite://bmc-emulator.db",
		},
		Badger: Badger{
			Path: "./data/badger",
		},
		Log: Log{
			Level: "info",
		},
	}
}

// NewConfig reads path when it exists, applies environment overrides and
// validates the result.
func NewConfig(path string) (*Config, error) {
	cfg := Default()

	if _, err := os.Stat(path); err == nil {
		if err := cleanenv.ReadConfig(path, cfg); err != nil {
			return nil, fmt.Errorf("config error: %w", err)
		}
	} else if err := cleanenv.ReadEnv(cfg); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks field constraints and the backend selection.
func (cfg *Config) Validate() error {
	if err := validator.New().Struct(cfg); err != nil {
		return fmt.Errorf("config - invalid: %w", err)
	}

	selected := 0

	for _, set := range []bool{cfg.Backend.OSCloud != "", cfg.Backend.IncusURI != "", cfg.Backend.FakeInventory != ""} {
		if set {
			selected++
		}
	}

	if selected > 1 {
		return ErrBackendConflict
	}

	switch {
	case cfg.Backend.OSCloud != "":
		cfg.Backend.Kind = BackendOpenStack
	case cfg.Backend.IncusURI != "":
		cfg.Backend.Kind = BackendIncus
	case cfg.Backend.FakeInventory != "":
		cfg.Backend.Kind = BackendFake
	}

	if cfg.SideTable.Kind == SideTableSQL && cfg.DB.URL == "" {
		return fmt.Errorf("config - sidetable kind %q needs db.url", cfg.SideTable.Kind)
	}

	if cfg.SideTable.Kind == SideTableBadger && cfg.Badger.Path == "" {
		return fmt.Errorf("config - sidetable kind %q needs badger.path", cfg.SideTable.Kind)
	}

	return nil
}

// Address is the listen address of the HTTP server.
func (h HTTP) Address() string {
	return h.Host + ":" + h.Port
}

// TLSEnabled reports whether a certificate is configured.
func (h HTTP) TLSEnabled() bool {
	return h.TLSCert != ""
}
