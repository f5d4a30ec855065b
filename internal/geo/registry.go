package geo

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed regions.yaml
var regionsRaw []byte

// Region is one of the fixed named districts weather is reported for.
type Region struct {
	Name      string  `json:"name" yaml:"name"`
	Latitude  float64 `json:"latitude" yaml:"latitude"`
	Longitude float64 `json:"longitude" yaml:"longitude"`
}

// Registry holds the fixed district set and the station alias table.
// It is read-only after NewRegistry returns and safe for concurrent use.
type Registry struct {
	regions []Region
	byName  map[string]Region

	// aliases maps a monitoring-station name to the canonical name of the
	// district the station physically sits in. Several stations may map to
	// the same district; no station maps to more than one.
	aliases map[string]string
}

// NewRegistry parses the embedded district table and alias table.
func NewRegistry() (*Registry, error) {
	var doc struct {
		Districts []Region          `yaml:"districts"`
		Stations  map[string]string `yaml:"stations"`
	}
	if err := yaml.Unmarshal(regionsRaw, &doc); err != nil {
		return nil, fmt.Errorf("parse embedded region table: %w", err)
	}

	r := &Registry{
		regions: doc.Districts,
		byName:  make(map[string]Region, len(doc.Districts)),
		aliases: doc.Stations,
	}

	for _, region := range doc.Districts {
		if _, dup := r.byName[region.Name]; dup {
			return nil, fmt.Errorf("duplicate district name %q", region.Name)
		}
		r.byName[region.Name] = region
	}

	// Every alias must point at a known district.
	for station, district := range doc.Stations {
		if _, ok := r.byName[district]; !ok {
			return nil, fmt.Errorf("station %q maps to unknown district %q", station, district)
		}
	}

	return r, nil
}

// Regions returns the districts in canonical order.
func (r *Registry) Regions() []Region {
	out := make([]Region, len(r.regions))
	copy(out, r.regions)
	return out
}

// Len returns the number of districts.
func (r *Registry) Len() int {
	return len(r.regions)
}

// ByName looks up a district by its canonical name.
func (r *Registry) ByName(name string) (Region, bool) {
	region, ok := r.byName[name]
	return region, ok
}

// Resolve maps a feed place key to a district. It first tries an exact match
// against the canonical district names, then falls back to the station alias
// table. A miss means the data point should be dropped, not that the caller
// hit an error.
func (r *Registry) Resolve(placeKey string) (Region, bool) {
	if region, ok := r.byName[placeKey]; ok {
		return region, true
	}
	if district, ok := r.aliases[placeKey]; ok {
		return r.byName[district], true
	}
	return Region{}, false
}
