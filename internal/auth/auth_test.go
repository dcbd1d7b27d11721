package auth

import (
	"testing"
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"location-filter-go/internal/location"
	"location-filter-go/pkg/model"
)

func TestHashPassword(t *testing.T) {
	hash, err := HashPassword("s3cret-pass")
	require.NoError(t, err)

	assert.NotEqual(t, "s3cret-pass", hash)
	assert.True(t, CheckPassword("s3cret-pass", hash))
	assert.False(t, CheckPassword("wrong", hash))
}

func TestGenerateJWT(t *testing.T) {
	s := NewAuthService(nil, "test-secret", location.Philippines)

	signed, err := s.GenerateJWT(&model.User{ID: 42, Username: "juan", Role: model.RoleProvider, Location: "Cebu City"})
	require.NoError(t, err)

	token, err := jwt.Parse(signed, func(token *jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	})
	require.NoError(t, err)
	require.True(t, token.Valid)

	claims := token.Claims.(jwt.MapClaims)
	assert.Equal(t, float64(42), claims["user_id"])
	assert.Equal(t, "juan", claims["username"])
	assert.Equal(t, "provider", claims["role"])
	assert.Equal(t, "Cebu City", claims["location"])

	exp := time.Unix(int64(claims["exp"].(float64)), 0)
	assert.WithinDuration(t, time.Now().Add(TokenTTL), exp, time.Minute)
}

func TestRegisterUserRejectsUnknownLocation(t *testing.T) {
	s := NewAuthService(nil, "test-secret", location.Philippines)

	_, err := s.RegisterUser(model.RegistrationRequest{
		Username: "maria",
		Password: "secret1",
		Email:    "maria@example.com",
		Location: "Atlantis",
	})
	assert.ErrorIs(t, err, location.ErrCityNotFound)
}
