package model

import (
	"github.com/lib/pq"
)

// DefaultServiceRadiusKm is used when a provider has not set a radius
const DefaultServiceRadiusKm = 50.0

// Provider is a verified service provider listed in the directory
type Provider struct {
	ID              int            `json:"id" db:"id"`
	Username        string         `json:"username" db:"username"`
	Email           string         `json:"email" db:"email"`
	Location        string         `json:"location" db:"location"`
	Latitude        *float64       `json:"latitude" db:"latitude"`
	Longitude       *float64       `json:"longitude" db:"longitude"`
	ServiceRadius   float64        `json:"service_radius" db:"service_radius"`
	ServicesOffered pq.StringArray `json:"services_offered" db:"services_offered"`
	DistanceKm      *float64       `json:"distance_km" db:"-"`
}

// HasCoordinates reports whether both latitude and longitude are known
func (p Provider) HasCoordinates() bool {
	return p.Latitude != nil && p.Longitude != nil
}

// ProviderSearchRequest holds the query string of GET /api/providers
type ProviderSearchRequest struct {
	Service   string   `form:"service"`
	Location  string   `form:"location"`
	Latitude  *float64 `form:"latitude" binding:"omitempty,min=-90,max=90"`
	Longitude *float64 `form:"longitude" binding:"omitempty,min=-180,max=180"`
	Radius    float64  `form:"radius" binding:"omitempty,gt=0"` // km, fallback for providers without a radius
}

// HasOrigin reports whether the search is anchored to coordinates
func (r ProviderSearchRequest) HasOrigin() bool {
	return r.Latitude != nil && r.Longitude != nil
}

// ProviderLocationUpdate is the body of PUT /api/providers/me/location
type ProviderLocationUpdate struct {
	Location      string   `json:"location" binding:"required"`
	Latitude      *float64 `json:"latitude" binding:"omitempty,min=-90,max=90"`
	Longitude     *float64 `json:"longitude" binding:"omitempty,min=-180,max=180"`
	ServiceRadius *float64 `json:"service_radius" binding:"omitempty,gt=0"`
}

// ProviderListResponse wraps a provider search result
type ProviderListResponse struct {
	Providers []Provider `json:"providers"`
	Total     int        `json:"total"`
}
