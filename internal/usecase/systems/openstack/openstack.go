// Package openstack implements the cloud systems backend on the OpenStack
// compute API. A server's ID is its canonical UUID and its name the alias.
package openstack

import (
	"context"
	"fmt"
	"net/http"
	"sort"

	"github.com/gophercloud/gophercloud/v2"
	gopenstack "github.com/gophercloud/gophercloud/v2/openstack"
	"github.com/gophercloud/gophercloud/v2/openstack/compute/v2/flavors"
	"github.com/gophercloud/gophercloud/v2/openstack/compute/v2/servers"
	"github.com/gophercloud/gophercloud/v2/openstack/config/clouds"

	"github.com/device-management-toolkit/bmc-emulator/internal/entity"
	"github.com/device-management-toolkit/bmc-emulator/internal/usecase/systems"
)

const (
	statusActive = "ACTIVE"

	// metaPxeFirst is the server metadata key Ironic-style tooling reads to
	// network boot an instance.
	metaPxeFirst = "libvirt:pxe-first"
)

// Driver -.
type Driver struct {
	compute *gophercloud.ServiceClient
}

var _ systems.Driver = (*Driver)(nil)

// Connect authenticates against the named cloud of clouds.yaml.
func Connect(ctx context.Context, cloud string) (*Driver, error) {
	authOpts, endpointOpts, tlsConfig, err := clouds.Parse(clouds.WithCloudName(cloud))
	if err != nil {
		return nil, fmt.Errorf("openstack - parse cloud %q: %w", cloud, err)
	}

	provider, err := gopenstack.NewClient(authOpts.IdentityEndpoint)
	if err != nil {
		return nil, fmt.Errorf("openstack - new client: %w", err)
	}

	if tlsConfig != nil {
		provider.HTTPClient = http.Client{Transport: &http.Transport{TLSClientConfig: tlsConfig}}
	}

	if err := gopenstack.Authenticate(ctx, provider, authOpts); err != nil {
		return nil, fmt.Errorf("openstack - authenticate %q: %w", cloud, err)
	}

	compute, err := gopenstack.NewComputeV2(provider, endpointOpts)
	if err != nil {
		return nil, fmt.Errorf("openstack - compute endpoint: %w", err)
	}

	return New(compute), nil
}

// New -.
func New(compute *gophercloud.ServiceClient) *Driver {
	return &Driver{compute: compute}
}

// Driver -.
func (d *Driver) Driver() string {
	return "openstack"
}

func (d *Driver) list(ctx context.Context) ([]servers.Server, error) {
	pages, err := servers.List(d.compute, servers.ListOpts{}).AllPages(ctx)
	if err != nil {
		return nil, fmt.Errorf("openstack - list servers: %w", err)
	}

	all, err := servers.ExtractServers(pages)
	if err != nil {
		return nil, fmt.Errorf("openstack - extract servers: %w", err)
	}

	return all, nil
}

func (d *Driver) get(ctx context.Context, uuid string) (*servers.Server, error) {
	s, err := servers.Get(ctx, d.compute, uuid).Extract()
	if err != nil {
		if gophercloud.ResponseCodeIs(err, http.StatusNotFound) {
			return nil, entity.NotFoundf("openstack server %q", uuid)
		}

		return nil, fmt.Errorf("openstack - get server %s: %w", uuid, err)
	}

	return s, nil
}

// Systems -.
func (d *Driver) Systems(ctx context.Context) ([]string, error) {
	all, err := d.list(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]string, 0, len(all))
	for i := range all {
		out = append(out, all[i].ID)
	}

	return out, nil
}

// UUID matches server IDs before names.
func (d *Driver) UUID(ctx context.Context, identity string) (string, error) {
	all, err := d.list(ctx)
	if err != nil {
		return "", err
	}

	for i := range all {
		if all[i].ID == identity {
			return identity, nil
		}
	}

	for i := range all {
		if all[i].Name == identity {
			return all[i].ID, nil
		}
	}

	return "", entity.NotFoundf("openstack server %q", identity)
}

// Name -.
func (d *Driver) Name(ctx context.Context, uuid string) (string, error) {
	s, err := d.get(ctx, uuid)
	if err != nil {
		return "", err
	}

	return s.Name, nil
}

// PowerState -.
func (d *Driver) PowerState(ctx context.Context, uuid string) (string, error) {
	s, err := d.get(ctx, uuid)
	if err != nil {
		return "", err
	}

	if s.Status == statusActive {
		return entity.PowerStateOn, nil
	}

	return entity.PowerStateOff, nil
}

// SetPowerState maps reset types onto start, stop and reboot actions.
func (d *Driver) SetPowerState(ctx context.Context, uuid, resetType string) error {
	s, err := d.get(ctx, uuid)
	if err != nil {
		return err
	}

	active := s.Status == statusActive

	switch resetType {
	case entity.ResetOn, entity.ResetForceOn:
		if active {
			return nil
		}

		err = servers.Start(ctx, d.compute, uuid).ExtractErr()
	case entity.ResetForceOff, entity.ResetGracefulShutdown:
		if !active {
			return nil
		}

		err = servers.Stop(ctx, d.compute, uuid).ExtractErr()
	case entity.ResetGracefulRestart, entity.ResetForceRestart:
		if !active {
			err = servers.Start(ctx, d.compute, uuid).ExtractErr()

			break
		}

		method := servers.SoftReboot
		if resetType == entity.ResetForceRestart {
			method = servers.HardReboot
		}

		err = servers.Reboot(ctx, d.compute, uuid, servers.RebootOpts{Type: method}).ExtractErr()
	case entity.ResetNmi:
		return entity.NotSupportedf("openstack NMI")
	default:
		return &entity.MalformedRequestError{Property: "ResetType", Value: resetType}
	}

	if err != nil {
		return fmt.Errorf("openstack - %s %s: %w", resetType, uuid, err)
	}

	return nil
}

// BootDevice reports Pxe when the server is flagged to network boot.
func (d *Driver) BootDevice(ctx context.Context, uuid string) (string, error) {
	s, err := d.get(ctx, uuid)
	if err != nil {
		return "", err
	}

	if s.Metadata[metaPxeFirst] == "1" {
		return entity.BootTargetPxe, nil
	}

	return entity.BootTargetHdd, nil
}

// SetBootDevice toggles network boot. Compute has no virtual media, so Cd
// is not supported.
func (d *Driver) SetBootDevice(ctx context.Context, uuid, device string) error {
	var err error

	switch device {
	case entity.BootTargetPxe:
		_, err = servers.UpdateMetadata(ctx, d.compute, uuid, servers.MetadataOpts{metaPxeFirst: "1"}).Extract()
	case entity.BootTargetHdd:
		err = servers.DeleteMetadatum(ctx, d.compute, uuid, metaPxeFirst).ExtractErr()
		if gophercloud.ResponseCodeIs(err, http.StatusNotFound) {
			err = nil
		}
	case entity.BootTargetCd:
		return entity.NotSupportedf("openstack boot from %s", device)
	default:
		return &entity.MalformedRequestError{Property: "BootSourceOverrideTarget", Value: device}
	}

	if err != nil {
		return fmt.Errorf("openstack - boot device of %s: %w", uuid, err)
	}

	return nil
}

// BootMode -.
func (d *Driver) BootMode(context.Context, string) (string, error) {
	return "", entity.NotSupportedf("openstack boot mode")
}

// SetBootMode -.
func (d *Driver) SetBootMode(context.Context, string, string) error {
	return entity.NotSupportedf("openstack boot mode")
}

// flavor returns the flavor of s. Servers listed with microversion 2.47 or
// later embed it; older ones only carry its ID.
func (d *Driver) flavor(ctx context.Context, s *servers.Server) (ram, vcpus int, err error) {
	ramVal, hasRAM := s.Flavor["ram"].(float64)
	cpuVal, hasCPU := s.Flavor["vcpus"].(float64)

	if hasRAM && hasCPU {
		return int(ramVal), int(cpuVal), nil
	}

	id, _ := s.Flavor["id"].(string)
	if id == "" {
		return 0, 0, entity.NotSupportedf("openstack flavor of %s", s.ID)
	}

	f, err := flavors.Get(ctx, d.compute, id).Extract()
	if err != nil {
		return 0, 0, fmt.Errorf("openstack - flavor %s: %w", id, err)
	}

	return f.RAM, f.VCPUs, nil
}

// TotalMemory converts the flavor RAM from MiB to GiB.
func (d *Driver) TotalMemory(ctx context.Context, uuid string) (int, error) {
	s, err := d.get(ctx, uuid)
	if err != nil {
		return 0, err
	}

	ram, _, err := d.flavor(ctx, s)
	if err != nil {
		return 0, err
	}

	return ram / 1024, nil
}

// TotalCPUs -.
func (d *Driver) TotalCPUs(ctx context.Context, uuid string) (int, error) {
	s, err := d.get(ctx, uuid)
	if err != nil {
		return 0, err
	}

	_, vcpus, err := d.flavor(ctx, s)

	return vcpus, err
}

// BIOS -.
func (d *Driver) BIOS(context.Context, string) (map[string]any, error) {
	return nil, entity.NotSupportedf("openstack BIOS")
}

// SetBIOS -.
func (d *Driver) SetBIOS(context.Context, string, map[string]any) error {
	return entity.NotSupportedf("openstack BIOS")
}

// ResetBIOS -.
func (d *Driver) ResetBIOS(context.Context, string) error {
	return entity.NotSupportedf("openstack BIOS")
}

// NICs lists one interface per MAC found in the server addresses, ordered
// by network name.
func (d *Driver) NICs(ctx context.Context, uuid string) ([]entity.NIC, error) {
	s, err := d.get(ctx, uuid)
	if err != nil {
		return nil, err
	}

	networks := make([]string, 0, len(s.Addresses))
	for name := range s.Addresses {
		networks = append(networks, name)
	}

	sort.Strings(networks)

	nics := []entity.NIC{}
	seen := map[string]bool{}

	for _, network := range networks {
		addrs, _ := s.Addresses[network].([]any)

		for _, a := range addrs {
			addr, _ := a.(map[string]any)
			mac, _ := addr["OS-EXT-IPS-MAC:mac_addr"].(string)

			if mac == "" || seen[mac] {
				continue
			}

			seen[mac] = true
			nics = append(nics, entity.NIC{ID: mac, MAC: mac})
		}
	}

	return nics, nil
}

// Processors -.
func (d *Driver) Processors(context.Context, string) ([]entity.Processor, error) {
	return nil, entity.NotSupportedf("openstack processors")
}

// SecureBoot -.
func (d *Driver) SecureBoot(context.Context, string) (bool, error) {
	return false, entity.NotSupportedf("openstack secure boot")
}

// SetSecureBoot -.
func (d *Driver) SetSecureBoot(context.Context, string, bool) error {
	return entity.NotSupportedf("openstack secure boot")
}

// SimpleStorage -.
func (d *Driver) SimpleStorage(context.Context, string) ([]entity.SimpleStorage, error) {
	return nil, entity.NotSupportedf("openstack simple storage")
}

// StorageVolume -.
func (d *Driver) StorageVolume(context.Context, entity.Volume) (string, error) {
	return "", entity.NotSupportedf("openstack volumes")
}

// FindOrCreateStorageVolume -.
func (d *Driver) FindOrCreateStorageVolume(context.Context, entity.Volume) (string, error) {
	return "", entity.NotSupportedf("openstack volumes")
}
