package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"location-filter-go/internal/auth"
	"location-filter-go/internal/location"
	"location-filter-go/pkg/model"
)

// Register handles user registration
func (h *AuthHandler) Register(c *gin.Context) {
	var req model.RegistrationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID, err := h.authService.RegisterUser(req)
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrUsernameTaken), errors.Is(err, auth.ErrEmailTaken):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		case errors.Is(err, location.ErrCityNotFound):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid location selected"})
		default:
			log.Errorf("Error registering %q: %+v", req.Username, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to register user"})
		}
		return
	}

	c.JSON(http.StatusCreated, model.RegistrationResponse{
		Message: "Registration successful",
		UserID:  userID,
	})
}
