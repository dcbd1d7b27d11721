package handler

import (
	"bytes"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"location-filter-go/internal/location"
	"location-filter-go/pkg/model"
)

const maxFilterMarkupBytes = 1 << 20

// LocationHandler serves the region table and the location filter control
type LocationHandler struct {
	table *location.Table
}

// NewLocationHandler creates a new location handler
func NewLocationHandler(table *location.Table) *LocationHandler {
	return &LocationHandler{
		table: table,
	}
}

// GetRegions handles GET /api/regions
func (h *LocationHandler) GetRegions(c *gin.Context) {
	c.JSON(http.StatusOK, h.table)
}

// GetRegionSummaries handles GET /api/regions/summary
func (h *LocationHandler) GetRegionSummaries(c *gin.Context) {
	c.JSON(http.StatusOK, h.table.Summaries())
}

// GetRegionCities handles GET /api/regions/:name/cities
func (h *LocationHandler) GetRegionCities(c *gin.Context) {
	region := c.Param("name")
	cities, err := h.table.Cities(region)
	if err != nil {
		if errors.Is(err, location.ErrRegionNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Region not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cities"})
		return
	}

	c.JSON(http.StatusOK, model.RegionCitiesResponse{Region: region, Cities: cities})
}

// GetCityRegions handles GET /api/cities/:city/regions
func (h *LocationHandler) GetCityRegions(c *gin.Context) {
	city := c.Param("city")
	regions, err := h.table.RegionsForCity(city)
	if err != nil {
		if errors.Is(err, location.ErrCityNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "City not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch regions"})
		return
	}

	c.JSON(http.StatusOK, model.CityRegionsResponse{City: city, Regions: regions})
}

// GetLocationFilter handles GET /api/locations/filter
func (h *LocationHandler) GetLocationFilter(c *gin.Context) {
	sel := location.NewHTMLSelect(
		c.DefaultQuery("name", "location"),
		c.DefaultQuery("default", location.DefaultOptionLabel),
	)
	h.renderPopulated(c, sel)
}

// RepopulateLocationFilter handles POST /api/locations/filter. The body is
// the current select markup; stale options are replaced by the table.
func (h *LocationHandler) RepopulateLocationFilter(c *gin.Context) {
	body := http.MaxBytesReader(c.Writer, c.Request.Body, maxFilterMarkupBytes)
	sel, err := location.ParseHTMLSelect(body)
	if err != nil {
		if errors.Is(err, location.ErrNoSelectElement) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "No select element in request body"})
			return
		}
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "Markup too large"})
			return
		}
		log.Errorf("Error parsing filter markup: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid markup"})
		return
	}
	h.renderPopulated(c, sel)
}

func (h *LocationHandler) renderPopulated(c *gin.Context, sel *location.HTMLSelect) {
	if err := h.table.Populate(sel); err != nil {
		log.Errorf("Error populating location filter: %+v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build location filter"})
		return
	}

	var buf bytes.Buffer
	if err := sel.Render(&buf); err != nil {
		log.Errorf("Error rendering location filter: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to render location filter"})
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", buf.Bytes())
}
