package provider

import (
	"math"
	"sort"

	"location-filter-go/pkg/model"
)

const earthRadiusKm = 6371.0

// Haversine returns the great-circle distance in kilometers between two
// points given in degrees.
func Haversine(lat1, lon1, lat2, lon2 float64) float64 {
	lat1, lon1, lat2, lon2 = radians(lat1), radians(lon1), radians(lat2), radians(lon2)
	dlat := lat2 - lat1
	dlon := lon2 - lon1
	a := math.Pow(math.Sin(dlat/2), 2) + math.Cos(lat1)*math.Cos(lat2)*math.Pow(math.Sin(dlon/2), 2)
	return 2 * math.Asin(math.Sqrt(a)) * earthRadiusKm
}

func radians(deg float64) float64 {
	return deg * math.Pi / 180
}

// FilterByDistance keeps providers whose service radius covers the origin.
// Providers without coordinates are kept with a nil distance and sorted
// after everyone else. fallbackRadius applies to providers with no radius.
func FilterByDistance(providers []model.Provider, lat, lon, fallbackRadius float64) []model.Provider {
	if fallbackRadius <= 0 {
		fallbackRadius = model.DefaultServiceRadiusKm
	}

	filtered := make([]model.Provider, 0, len(providers))
	for _, p := range providers {
		if !p.HasCoordinates() {
			p.DistanceKm = nil
			filtered = append(filtered, p)
			continue
		}

		distance := math.Round(Haversine(lat, lon, *p.Latitude, *p.Longitude)*100) / 100
		radius := p.ServiceRadius
		if radius <= 0 {
			radius = fallbackRadius
		}
		if distance <= radius {
			p.DistanceKm = &distance
			filtered = append(filtered, p)
		}
	}

	sort.SliceStable(filtered, func(i, j int) bool {
		di, dj := filtered[i].DistanceKm, filtered[j].DistanceKm
		switch {
		case di == nil:
			return false
		case dj == nil:
			return true
		default:
			return *di < *dj
		}
	})
	return filtered
}
