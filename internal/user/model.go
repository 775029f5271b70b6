package user

import (
	"net/http"
	"time"

	"github.com/fleetyard/availability-backend/internal/pkg/apperror"
)

var (
	ErrNotFound           = apperror.New(http.StatusNotFound, "user not found")
	ErrEmailTaken         = apperror.New(http.StatusConflict, "email already registered")
	ErrEmailRequired      = apperror.New(http.StatusBadRequest, "email cannot be empty")
	ErrInvalidCredentials = apperror.New(http.StatusUnauthorized, "invalid email or password")
)

// User is a staff account for the operations dashboard. Admins additionally
// manage the fleet catalog and other staff accounts.
type User struct {
	ID           string
	Email        string
	DisplayName  string
	PasswordHash string
	IsAdmin      bool
	CreatedAt    time.Time
}
