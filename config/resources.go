package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v2"

	"github.com/device-management-toolkit/bmc-emulator/internal/entity"
)

// StaticResources is the document resources.file holds: chassis, storage
// layouts keyed by system UUID, virtual media devices and side-table seeds.
type StaticResources struct {
	Chassis      []entity.Chassis                      `yaml:"chassis"`
	Indicators   map[string]string                     `yaml:"indicators"`
	Storage      map[string][]entity.Storage           `yaml:"storage"`
	Drives       map[string]map[string][]entity.Drive  `yaml:"drives"`
	Volumes      map[string]map[string][]entity.Volume `yaml:"volumes"`
	VirtualMedia []entity.VirtualMediaDevice           `yaml:"virtual_media"`
}

// LoadResources reads path. An empty path yields an empty document.
func LoadResources(path string) (StaticResources, error) {
	var res StaticResources

	if path == "" {
		return res, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return res, fmt.Errorf("config - read resources: %w", err)
	}

	if err := yaml.Unmarshal(data, &res); err != nil {
		return res, fmt.Errorf("config - parse resources %s: %w", path, err)
	}

	return res, nil
}
