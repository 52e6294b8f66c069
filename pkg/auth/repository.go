package auth

import (
	"context"
	"fmt"

	"github.com/kaytee124/jobserverapi/pkg/apperr"
)

// Common errors used by repository/use cases
var (
	ErrNotFound           = fmt.Errorf("user %w", apperr.ErrNotFound)
	ErrUserAlreadyExists  = fmt.Errorf("user already exists: %w", apperr.ErrConflict)
	ErrInvalidCredentials = apperr.ErrInvalidCredentials
)

// UserRepository abstracts persistence concerns from the domain layer.
// Create must return ErrUserAlreadyExists when the store rejects a duplicate email.
type UserRepository interface {
	Create(ctx context.Context, user User) (string, error)
	GetByEmail(ctx context.Context, email string) (User, error)
}
