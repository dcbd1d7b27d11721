package provider

import (
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"location-filter-go/internal/location"
	"location-filter-go/pkg/model"
)

var (
	// ErrProviderNotFound is returned when no provider row has the given id.
	ErrProviderNotFound = errors.New("provider not found")
	// ErrIncompleteCoordinates is returned when only one coordinate is set.
	ErrIncompleteCoordinates = errors.New("latitude and longitude must be set together")
)

// ProviderService handles the provider directory
type ProviderService struct {
	db    *sqlx.DB
	table *location.Table
}

// NewProviderService creates a new provider service. Locations are checked
// against table.
func NewProviderService(db *sqlx.DB, table *location.Table) *ProviderService {
	return &ProviderService{
		db:    db,
		table: table,
	}
}

const providerColumns = `id, username, email, location, latitude, longitude,
       service_radius, services_offered`

// SearchProviders lists verified, enabled providers matching req
func (s *ProviderService) SearchProviders(req model.ProviderSearchRequest) ([]model.Provider, error) {
	query, params := buildSearchQuery(req)
	log.WithField("params", params).Debugf("Executing query: %s", query)

	providers := []model.Provider{}
	if err := s.db.Select(&providers, query, params...); err != nil {
		return nil, errors.Wrap(err, "select providers")
	}

	if req.HasOrigin() {
		providers = FilterByDistance(providers, *req.Latitude, *req.Longitude, req.Radius)
	}
	return providers, nil
}

// buildSearchQuery assembles the directory query with positional params
func buildSearchQuery(req model.ProviderSearchRequest) (string, []interface{}) {
	query := "SELECT " + providerColumns + `
        FROM users
        WHERE role = 'provider' AND is_verified = TRUE AND account_disabled = FALSE`
	params := []interface{}{}
	paramIndex := 1

	if req.Service != "" {
		query += fmt.Sprintf(" AND $%d = ANY(services_offered)", paramIndex)
		params = append(params, req.Service)
		paramIndex++
	}

	if loc := strings.TrimSpace(req.Location); loc != "" {
		query += fmt.Sprintf(` AND location ILIKE $%d ESCAPE '\'`, paramIndex)
		params = append(params, "%"+escapeLike(loc)+"%")
		paramIndex++
	}

	query += " ORDER BY id"
	return query, params
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}

// UpdateLocation sets the city, and optionally the coordinates and service
// radius, of a provider
func (s *ProviderService) UpdateLocation(userID int, req model.ProviderLocationUpdate) error {
	if !s.table.HasCity(req.Location) {
		return errors.Wrapf(location.ErrCityNotFound, "%q", req.Location)
	}
	if (req.Latitude == nil) != (req.Longitude == nil) {
		return ErrIncompleteCoordinates
	}

	query, params := buildLocationUpdate(userID, req)
	log.WithField("params", params).Debugf("Executing query: %s", query)

	result, err := s.db.Exec(query, params...)
	if err != nil {
		return errors.Wrap(err, "update provider location")
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return errors.WithStack(err)
	}
	if rows == 0 {
		return ErrProviderNotFound
	}
	return nil
}

func buildLocationUpdate(userID int, req model.ProviderLocationUpdate) (string, []interface{}) {
	query := "UPDATE users SET updated_at = NOW(), location = $1"
	params := []interface{}{req.Location}
	paramIndex := 2

	if req.Latitude != nil && req.Longitude != nil {
		query += fmt.Sprintf(", latitude = $%d, longitude = $%d", paramIndex, paramIndex+1)
		params = append(params, *req.Latitude, *req.Longitude)
		paramIndex += 2
	}

	if req.ServiceRadius != nil {
		query += fmt.Sprintf(", service_radius = $%d", paramIndex)
		params = append(params, *req.ServiceRadius)
		paramIndex++
	}

	query += fmt.Sprintf(" WHERE id = $%d AND role = 'provider'", paramIndex)
	params = append(params, userID)
	return query, params
}
