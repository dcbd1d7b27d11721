package handler

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"location-filter-go/internal/location"
	"location-filter-go/internal/provider"
)

func newProviderRouter(userID int) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewProviderHandler(provider.NewProviderService(nil, location.Philippines))

	r := gin.New()
	r.GET("/api/providers", h.SearchProviders)
	r.PUT("/api/providers/me/location", func(c *gin.Context) {
		if userID != 0 {
			c.Set("user_id", userID)
		}
		h.UpdateMyLocation(c)
	})
	return r
}

func TestSearchProvidersRejectsBadQuery(t *testing.T) {
	r := newProviderRouter(0)

	for _, target := range []string{
		"/api/providers?latitude=abc&longitude=121",
		"/api/providers?latitude=14.5",
		"/api/providers?latitude=120&longitude=121",
		"/api/providers?latitude=14.5&longitude=121&radius=-3",
	} {
		w := serve(r, http.MethodGet, target, "")
		assert.Equal(t, http.StatusBadRequest, w.Code, target)
	}
}

func TestUpdateMyLocation(t *testing.T) {
	tests := []struct {
		name   string
		userID int
		body   string
		status int
	}{
		{"unauthenticated", 0, `{"location":"Manila"}`, http.StatusUnauthorized},
		{"missing location", 3, `{}`, http.StatusBadRequest},
		{"unknown city", 3, `{"location":"Gotham"}`, http.StatusBadRequest},
		{"half coordinates", 3, `{"location":"Manila","latitude":14.6}`, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := serve(newProviderRouter(tt.userID), http.MethodPut, "/api/providers/me/location", tt.body)
			assert.Equal(t, tt.status, w.Code)
		})
	}
}
