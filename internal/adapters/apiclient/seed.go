package apiclient

import (
	"os"

	"github.com/pkg/errors"
	"go.yaml.in/yaml/v4"

	"travel_console/internal/domain"
)

type seedFile struct {
	Packages []seedPackage `yaml:"packages"`
}

type seedPackage struct {
	Name          *string  `yaml:"name"`
	Destination   *string  `yaml:"destination"`
	Duration      *string  `yaml:"duration"`
	Price         *float64 `yaml:"price"`
	OriginalPrice *float64 `yaml:"original_price"`
	Description   *string  `yaml:"description"`
	Highlights    []string `yaml:"highlights"`
	Includes      []string `yaml:"includes"`
	Category      *string  `yaml:"category"`
	Status        *string  `yaml:"status"`
	Featured      *bool    `yaml:"featured"`
	Image         *string  `yaml:"image"`
	Route         *string  `yaml:"route"`
	Nights        *int     `yaml:"nights"`
	Days          *int     `yaml:"days"`
	TripType      *string  `yaml:"trip_type"`
}

// LoadSeed reads a YAML fixture of packages to create.
func LoadSeed(path string) ([]domain.PackageInput, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "read seed file")
	}
	return ParseSeed(data)
}

func ParseSeed(data []byte) ([]domain.PackageInput, error) {
	var f seedFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, errors.Wrap(err, "unmarshal seed YAML")
	}
	out := make([]domain.PackageInput, 0, len(f.Packages))
	for _, p := range f.Packages {
		out = append(out, domain.PackageInput(p))
	}
	return out, nil
}
