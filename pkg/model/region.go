package model

// Region is a named administrative grouping of cities. The name is also
// its key.
type Region struct {
	Name   string   `json:"name"`
	Cities []string `json:"cities"`
}

// RegionSummary is the list entry for GET /api/regions/summary
type RegionSummary struct {
	Name      string `json:"name"`
	CityCount int    `json:"city_count"`
}

// RegionCitiesResponse lists the cities of one region
type RegionCitiesResponse struct {
	Region string   `json:"region"`
	Cities []string `json:"cities"`
}

// CityRegionsResponse lists every region declaring a city. A city such as
// "San Fernando" belongs to more than one region.
type CityRegionsResponse struct {
	City    string   `json:"city"`
	Regions []string `json:"regions"`
}
