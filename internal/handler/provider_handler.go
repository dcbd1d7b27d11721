package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"location-filter-go/internal/location"
	"location-filter-go/internal/provider"
	"location-filter-go/pkg/model"
)

// ProviderHandler handles provider directory requests
type ProviderHandler struct {
	providerService *provider.ProviderService
}

// NewProviderHandler creates a new provider handler
func NewProviderHandler(providerService *provider.ProviderService) *ProviderHandler {
	return &ProviderHandler{
		providerService: providerService,
	}
}

// SearchProviders handles GET /api/providers
func (h *ProviderHandler) SearchProviders(c *gin.Context) {
	var req model.ProviderSearchRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if (req.Latitude == nil) != (req.Longitude == nil) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Latitude and longitude must be provided together"})
		return
	}

	providers, err := h.providerService.SearchProviders(req)
	if err != nil {
		log.Errorf("Error searching providers: %+v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch providers"})
		return
	}

	c.JSON(http.StatusOK, model.ProviderListResponse{
		Providers: providers,
		Total:     len(providers),
	})
}

// UpdateMyLocation handles PUT /api/providers/me/location
func (h *ProviderHandler) UpdateMyLocation(c *gin.Context) {
	userID := c.GetInt("user_id") // Set by auth middleware
	if userID == 0 {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req model.ProviderLocationUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	log.WithField("user_id", userID).Infof("Updating provider location to %q", req.Location)

	err := h.providerService.UpdateLocation(userID, req)
	switch {
	case err == nil:
		c.JSON(http.StatusOK, gin.H{"message": "Location updated successfully"})
	case errors.Is(err, location.ErrCityNotFound):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid location selected"})
	case errors.Is(err, provider.ErrIncompleteCoordinates):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Latitude and longitude must be provided together"})
	case errors.Is(err, provider.ErrProviderNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Provider not found"})
	default:
		log.Errorf("Error updating provider location: %+v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update location"})
	}
}
