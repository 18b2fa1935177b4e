package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/device-management-toolkit/bmc-emulator/config"
	"github.com/device-management-toolkit/bmc-emulator/internal/app"
)

// Version is set at build time.
var Version = "DEVELOPMENT"

type flags struct {
	configFile    string
	fake          bool
	fakeInventory string
	osCloud       string
	incusURI      string
	incusPool     string
	host          string
	port          string
	certFile      string
	keyFile       string
	authFile      string
}

func newRootCommand(f *flags) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "bmc-emulator",
		Short:         "Redfish BMC emulator for virtual machines",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cmd, f)
			if err != nil {
				return err
			}

			app.Run(cfg)

			return nil
		},
	}

	cmd.Flags().StringVar(&f.configFile, "config", "./config/config.yml", "path to the YAML configuration file")
	cmd.Flags().BoolVar(&f.fake, "fake", false, "serve the in-memory fake backend")
	cmd.Flags().StringVar(&f.fakeInventory, "fake-inventory", "", "YAML inventory for the fake backend")
	cmd.Flags().StringVar(&f.osCloud, "os-cloud", "", "clouds.yaml entry of the OpenStack backend")
	cmd.Flags().StringVar(&f.incusURI, "incus-uri", "", "Incus endpoint (unix:// socket or https://)")
	cmd.Flags().StringVar(&f.incusPool, "incus-pool", "", "Incus storage pool for created volumes")
	cmd.Flags().StringVarP(&f.host, "interface", "i", "", "address to listen on")
	cmd.Flags().StringVarP(&f.port, "port", "p", "", "port to listen on")
	cmd.Flags().StringVar(&f.certFile, "ssl-certificate", "", "TLS certificate (PEM or PKCS#12 bundle)")
	cmd.Flags().StringVar(&f.keyFile, "ssl-key", "", "TLS key, or the password of a PKCS#12 bundle")
	cmd.Flags().StringVar(&f.authFile, "auth-file", "", "htpasswd file enabling basic authentication")

	cmd.MarkFlagsMutuallyExclusive("fake", "os-cloud", "incus-uri")
	cmd.MarkFlagsMutuallyExclusive("fake-inventory", "os-cloud", "incus-uri")

	cmd.Version = Version

	return cmd
}

// loadConfig reads the config file and lets explicitly set flags win.
func loadConfig(cmd *cobra.Command, f *flags) (*config.Config, error) {
	cfg, err := config.NewConfig(f.configFile)
	if err != nil {
		return nil, err
	}

	set := cmd.Flags().Changed

	if set("fake") && f.fake {
		cfg.Backend = config.Backend{Kind: config.BackendFake, IncusPool: cfg.Backend.IncusPool, FakeInventory: cfg.Backend.FakeInventory}
	}

	if set("fake-inventory") {
		cfg.Backend = config.Backend{Kind: config.BackendFake, IncusPool: cfg.Backend.IncusPool, FakeInventory: f.fakeInventory}
	}

	if set("os-cloud") {
		cfg.Backend = config.Backend{Kind: config.BackendOpenStack, IncusPool: cfg.Backend.IncusPool, OSCloud: f.osCloud}
	}

	if set("incus-uri") {
		cfg.Backend = config.Backend{Kind: config.BackendIncus, IncusPool: cfg.Backend.IncusPool, IncusURI: f.incusURI}
	}

	if set("incus-pool") {
		cfg.Backend.IncusPool = f.incusPool
	}

	if set("interface") {
		cfg.HTTP.Host = f.host
	}

	if set("port") {
		cfg.HTTP.Port = f.port
	}

	if set("ssl-certificate") {
		cfg.HTTP.TLSCert = f.certFile
	}

	if set("ssl-key") {
		cfg.HTTP.TLSKey = f.keyFile
	}

	if set("auth-file") {
		cfg.Auth.File = f.authFile
	}

	cfg.App.Version = Version

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func main() {
	if err := newRootCommand(&flags{}).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
