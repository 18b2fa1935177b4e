package incus

import (
	"net/http"
	"strconv"
	"strings"

	incuscli "github.com/lxc/incus/client"
	"github.com/lxc/incus/shared/api"
)

// Instance is the slice of an Incus VM the driver reads. Config and Devices
// are the expanded values, profiles included.
type Instance struct {
	Name    string
	Status  string
	Config  map[string]string
	Devices map[string]map[string]string
}

// Client is a narrow interface over the Incus API, small enough to fake.
type Client interface {
	ListVMs() ([]Instance, error)
	// UpdateConfig sets keys on the instance's local config. An empty value
	// removes the key.
	UpdateConfig(name string, set map[string]string) error
	// ChangeState runs a state action (start, stop, restart) to completion.
	ChangeState(name, action string, force bool) error
	PoolExists(pool string) (bool, error)
	VolumeExists(pool, name string) (bool, error)
	CreateBlockVolume(pool, name string, sizeBytes int64) error
}

// RealClient wraps the official Incus Go client.
type RealClient struct {
	c incuscli.InstanceServer
}

var _ Client = (*RealClient)(nil)

// Connect dials uri. An empty uri or a unix:// one uses the local socket;
// anything else is an HTTPS endpoint.
func Connect(uri string) (*RealClient, error) {
	var (
		c   incuscli.InstanceServer
		err error
	)

	if uri == "" || strings.HasPrefix(uri, "unix://") {
		c, err = incuscli.ConnectIncusUnix(strings.TrimPrefix(uri, "unix://"), nil)
	} else {
		c, err = incuscli.ConnectIncus(uri, nil)
	}

	if err != nil {
		return nil, err
	}

	return &RealClient{c: c}, nil
}

// ListVMs -.
func (r *RealClient) ListVMs() ([]Instance, error) {
	insts, err := r.c.GetInstances(api.InstanceTypeVM)
	if err != nil {
		return nil, err
	}

	out := make([]Instance, 0, len(insts))
	for _, i := range insts {
		out = append(out, Instance{
			Name:    i.Name,
			Status:  i.Status,
			Config:  i.ExpandedConfig,
			Devices: i.ExpandedDevices,
		})
	}

	return out, nil
}

// UpdateConfig -.
func (r *RealClient) UpdateConfig(name string, set map[string]string) error {
	inst, etag, err := r.c.GetInstance(name)
	if err != nil {
		return err
	}

	put := inst.Writable()
	if put.Config == nil {
		put.Config = map[string]string{}
	}

	for k, v := range set {
		if v == "" {
			delete(put.Config, k)
		} else {
			put.Config[k] = v
		}
	}

	op, err := r.c.UpdateInstance(name, put, etag)
	if err != nil {
		return err
	}

	return op.Wait()
}

// ChangeState -.
func (r *RealClient) ChangeState(name, action string, force bool) error {
	op, err := r.c.UpdateInstanceState(name, api.InstanceStatePut{Action: action, Force: force, Timeout: -1}, "")
	if err != nil {
		return err
	}

	return op.Wait()
}

// PoolExists -.
func (r *RealClient) PoolExists(pool string) (bool, error) {
	_, _, err := r.c.GetStoragePool(pool)

	return exists(err)
}

// VolumeExists -.
func (r *RealClient) VolumeExists(pool, name string) (bool, error) {
	_, _, err := r.c.GetStoragePoolVolume(pool, "custom", name)

	return exists(err)
}

// CreateBlockVolume -.
func (r *RealClient) CreateBlockVolume(pool, name string, sizeBytes int64) error {
	return r.c.CreateStoragePoolVolume(pool, api.StorageVolumesPost{
		Name:        name,
		Type:        "custom",
		ContentType: "block",
		StorageVolumePut: api.StorageVolumePut{
			Config: map[string]string{"size": strconv.FormatInt(sizeBytes, 10)},
		},
	})
}

func exists(err error) (bool, error) {
	if err == nil {
		return true, nil
	}

	if api.StatusErrorCheck(err, http.StatusNotFound) {
		return false, nil
	}

	return false, err
}
