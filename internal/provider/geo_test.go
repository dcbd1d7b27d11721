package provider

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"location-filter-go/pkg/model"
)

func ptr(f float64) *float64 { return &f }

func TestHaversine(t *testing.T) {
	assert.InDelta(t, 0, Haversine(14.5995, 120.9842, 14.5995, 120.9842), 1e-9)

	// Manila to Cebu City
	assert.InDelta(t, 571, Haversine(14.5995, 120.9842, 10.3157, 123.8854), 10)

	// Symmetric
	assert.InDelta(t,
		Haversine(16.4023, 120.5960, 7.1907, 125.4553),
		Haversine(7.1907, 125.4553, 16.4023, 120.5960),
		1e-9)
}

func TestFilterByDistance(t *testing.T) {
	manila := model.Provider{ID: 1, Location: "Manila", Latitude: ptr(14.5995), Longitude: ptr(120.9842), ServiceRadius: 50}
	makati := model.Provider{ID: 2, Location: "Makati", Latitude: ptr(14.5547), Longitude: ptr(121.0244), ServiceRadius: 10}
	cebu := model.Provider{ID: 3, Location: "Cebu City", Latitude: ptr(10.3157), Longitude: ptr(123.8854), ServiceRadius: 50}
	unknown := model.Provider{ID: 4, Location: "Pasig"}
	noRadius := model.Provider{ID: 5, Location: "Quezon City", Latitude: ptr(14.6760), Longitude: ptr(121.0437)}

	// Origin in Makati
	got := FilterByDistance([]model.Provider{unknown, cebu, manila, noRadius, makati}, 14.5547, 121.0244, 0)

	ids := make([]int, 0, len(got))
	for _, p := range got {
		ids = append(ids, p.ID)
	}
	assert.Equal(t, []int{2, 1, 5, 4}, ids)

	require.NotNil(t, got[0].DistanceKm)
	assert.Equal(t, 0.0, *got[0].DistanceKm)
	require.NotNil(t, got[1].DistanceKm)
	assert.InDelta(t, 6.5, *got[1].DistanceKm, 1)
	assert.Nil(t, got[3].DistanceKm)
}

func TestFilterByDistanceFallbackRadius(t *testing.T) {
	qc := model.Provider{ID: 1, Latitude: ptr(14.6760), Longitude: ptr(121.0437)}

	// Quezon City is roughly 14 km from Makati
	assert.Empty(t, FilterByDistance([]model.Provider{qc}, 14.5547, 121.0244, 5))
	assert.Len(t, FilterByDistance([]model.Provider{qc}, 14.5547, 121.0244, 20), 1)
}

func TestFilterByDistanceRoundsToTwoDecimals(t *testing.T) {
	p := model.Provider{ID: 1, Latitude: ptr(14.6), Longitude: ptr(121.0), ServiceRadius: 100}
	got := FilterByDistance([]model.Provider{p}, 14.5, 121.1, 0)
	require.Len(t, got, 1)
	d := *got[0].DistanceKm
	assert.InDelta(t, math.Round(d*100), d*100, 1e-6)
}
