package user

import (
	"github.com/zealand/roombooking/internal/pkg/apperror"
)

var (
	ErrNotFound           = apperror.New(apperror.KindNotFound, "user not found")
	ErrCredentialsMissing = apperror.New(apperror.KindValidation, "email and password are required")
	ErrInvalidUserID      = apperror.New(apperror.KindValidation, "user id must be positive")
	ErrStoreUnavailable   = apperror.New(apperror.KindConnectivity, "user store unavailable")
)

// User is an account that may sign in and book rooms.
type User struct {
	ID           int
	Name         string
	Email        string
	PasswordHash string
	Phone        *string
	UserTypeID   int
}
