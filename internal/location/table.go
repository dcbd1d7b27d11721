package location

import (
	"encoding/json"

	"github.com/pkg/errors"
	"github.com/samber/lo"
	orderedmap "github.com/wk8/go-ordered-map/v2"

	"location-filter-go/pkg/model"
)

var (
	// ErrRegionNotFound is returned for a region name absent from the table.
	ErrRegionNotFound = errors.New("region not found")
	// ErrCityNotFound is returned for a city no region lists.
	ErrCityNotFound = errors.New("city not found")
)

// Table maps region names to their cities. Regions and cities keep the
// order they were declared in.
//
// A Table is never modified after NewTable returns, so it is safe to share
// between goroutines.
type Table struct {
	regions *orderedmap.OrderedMap[string, []string]
}

// NewTable builds a table from regions in the given order. A region that
// appears twice keeps its first position and its last city list.
func NewTable(regions ...model.Region) *Table {
	m := orderedmap.New[string, []string]()
	for _, r := range regions {
		m.Set(r.Name, append([]string(nil), r.Cities...))
	}
	return &Table{regions: m}
}

// Len returns the number of regions.
func (t *Table) Len() int {
	return t.regions.Len()
}

// CityCount returns the number of city entries across all regions. A city
// listed under two regions counts twice.
func (t *Table) CityCount() int {
	return lo.SumBy(t.Regions(), func(r model.Region) int {
		return len(r.Cities)
	})
}

// Regions returns every region in declaration order.
func (t *Table) Regions() []model.Region {
	regions := make([]model.Region, 0, t.regions.Len())
	for pair := t.regions.Oldest(); pair != nil; pair = pair.Next() {
		regions = append(regions, model.Region{
			Name:   pair.Key,
			Cities: append([]string(nil), pair.Value...),
		})
	}
	return regions
}

// RegionNames returns the region names in declaration order.
func (t *Table) RegionNames() []string {
	names := make([]string, 0, t.regions.Len())
	for pair := t.regions.Oldest(); pair != nil; pair = pair.Next() {
		names = append(names, pair.Key)
	}
	return names
}

// Summaries returns the name and city count of each region.
func (t *Table) Summaries() []model.RegionSummary {
	return lo.Map(t.Regions(), func(r model.Region, _ int) model.RegionSummary {
		return model.RegionSummary{Name: r.Name, CityCount: len(r.Cities)}
	})
}

// Cities returns the cities of region in display order.
func (t *Table) Cities(region string) ([]string, error) {
	cities, ok := t.regions.Get(region)
	if !ok {
		return nil, errors.Wrapf(ErrRegionNotFound, "%q", region)
	}
	return append([]string(nil), cities...), nil
}

// RegionsForCity returns every region that lists city. Most cities belong
// to one region, but names such as "San Fernando" are shared.
func (t *Table) RegionsForCity(city string) ([]string, error) {
	var regions []string
	for pair := t.regions.Oldest(); pair != nil; pair = pair.Next() {
		if lo.Contains(pair.Value, city) {
			regions = append(regions, pair.Key)
		}
	}
	if len(regions) == 0 {
		return nil, errors.Wrapf(ErrCityNotFound, "%q", city)
	}
	return regions, nil
}

// HasCity reports whether any region lists city.
func (t *Table) HasCity(city string) bool {
	for pair := t.regions.Oldest(); pair != nil; pair = pair.Next() {
		if lo.Contains(pair.Value, city) {
			return true
		}
	}
	return false
}

// MarshalJSON encodes the table as a JSON object of region -> cities,
// keeping declaration order.
func (t *Table) MarshalJSON() ([]byte, error) {
	b, err := json.Marshal(t.regions)
	return b, errors.WithStack(err)
}
