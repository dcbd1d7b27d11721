package auth

import (
	"database/sql"
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"

	"location-filter-go/internal/location"
	"location-filter-go/pkg/model"
)

var (
	// ErrInvalidCredentials covers an unknown username or a wrong password.
	ErrInvalidCredentials = errors.New("invalid username or password")
	// ErrAccountDisabled is returned by Login for a disabled account.
	ErrAccountDisabled = errors.New("account disabled")
	// ErrUserNotFound is returned when no user has the given id.
	ErrUserNotFound = errors.New("user not found")
)

// TokenTTL is how long an issued JWT stays valid
const TokenTTL = 24 * time.Hour

const bcryptCost = 12

const userColumns = `id, username, email, password_hash, role, location,
       is_verified, account_disabled, created_at, updated_at`

// AuthService handles authentication operations
type AuthService struct {
	db        *sqlx.DB
	jwtSecret []byte
	table     *location.Table
}

// NewAuthService creates a new authentication service
func NewAuthService(db *sqlx.DB, jwtSecret string, table *location.Table) *AuthService {
	return &AuthService{
		db:        db,
		jwtSecret: []byte(jwtSecret),
		table:     table,
	}
}

// HashPassword creates a bcrypt hash of the password
func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	return string(bytes), errors.WithStack(err)
}

// CheckPassword compares password with hash
func CheckPassword(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}

// GenerateJWT creates a new JWT token for authenticated users
func (s *AuthService) GenerateJWT(user *model.User) (string, error) {
	token := jwt.New(jwt.SigningMethodHS256)

	claims := token.Claims.(jwt.MapClaims)
	claims["user_id"] = user.ID
	claims["username"] = user.Username
	claims["role"] = user.Role
	claims["location"] = user.Location
	claims["exp"] = time.Now().Add(TokenTTL).Unix()

	signed, err := token.SignedString(s.jwtSecret)
	return signed, errors.WithStack(err)
}

// Login authenticates a user and returns a signed token
func (s *AuthService) Login(creds model.UserCredentials) (*model.User, string, error) {
	var user model.User

	err := s.db.Get(&user, "SELECT "+userColumns+" FROM users WHERE username = $1", creds.Username)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", errors.Wrap(err, "select user")
	}

	if !CheckPassword(creds.Password, user.PasswordHash) {
		return nil, "", ErrInvalidCredentials
	}

	if user.AccountDisabled {
		log.WithField("user_id", user.ID).Warn("Login attempt on disabled account")
		return nil, "", ErrAccountDisabled
	}

	token, err := s.GenerateJWT(&user)
	if err != nil {
		return nil, "", err
	}

	return &user, token, nil
}

// GetUserByID fetches a user by their ID
func (s *AuthService) GetUserByID(userID int) (*model.User, error) {
	var user model.User
	err := s.db.Get(&user, "SELECT "+userColumns+" FROM users WHERE id = $1", userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, errors.Wrap(err, "select user")
	}
	return &user, nil
}
