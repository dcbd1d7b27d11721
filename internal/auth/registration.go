package auth

import (
	"time"

	"github.com/pkg/errors"

	"location-filter-go/internal/location"
	"location-filter-go/pkg/model"
)

var (
	// ErrUsernameTaken is returned when the username is already registered.
	ErrUsernameTaken = errors.New("username already exists")
	// ErrEmailTaken is returned when the email is already registered.
	ErrEmailTaken = errors.New("email already exists")
)

// RegisterUser handles user registration with location validation
func (s *AuthService) RegisterUser(req model.RegistrationRequest) (int64, error) {
	// Location must be a city offered in the filter
	if !s.table.HasCity(req.Location) {
		return 0, errors.Wrapf(location.ErrCityNotFound, "%q", req.Location)
	}

	role := req.Role
	if role == "" {
		role = model.RoleCustomer
	}

	var count int
	err := s.db.Get(&count, "SELECT COUNT(*) FROM users WHERE username = $1", req.Username)
	if err != nil {
		return 0, errors.Wrap(err, "count usernames")
	}
	if count > 0 {
		return 0, ErrUsernameTaken
	}

	err = s.db.Get(&count, "SELECT COUNT(*) FROM users WHERE email = $1", req.Email)
	if err != nil {
		return 0, errors.Wrap(err, "count emails")
	}
	if count > 0 {
		return 0, ErrEmailTaken
	}

	hashedPassword, err := HashPassword(req.Password)
	if err != nil {
		return 0, err
	}

	// Customers are verified on sign-up, providers wait for an admin
	var userID int64
	err = s.db.QueryRow(
		`INSERT INTO users (username, password_hash, email, role, location, is_verified, account_disabled, created_at, updated_at)
         VALUES ($1, $2, $3, $4, $5, $6, FALSE, $7, $7)
         RETURNING id`,
		req.Username, hashedPassword, req.Email, role, req.Location, role == model.RoleCustomer, time.Now()).Scan(&userID)
	if err != nil {
		return 0, errors.Wrap(err, "insert user")
	}

	return userID, nil
}
