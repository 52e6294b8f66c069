package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/kaytee124/jobserverapi/pkg/apperr"
)

// RegisterInput is the registration payload as received.
type RegisterInput struct {
	UserType    UserType
	FirstName   string
	LastName    string
	DateOfBirth string
	Gender      string
	Email       string
	PhoneNumber string
	Origin      string
	CompanyName string
	Password    string
}

// AuthUseCase describes authentication/registration behavior.
type AuthUseCase interface {
	Register(ctx context.Context, in RegisterInput) (string, error)
	Authenticate(ctx context.Context, email, password string) (AuthResult, error)
}

type AuthResult struct {
	User  User
	Token string
}

type authService struct {
	repo     UserRepository
	tokens   TokenGenerator
	hashCost int
	now      func() time.Time
}

// NewAuthService returns default implementation of AuthUseCase.
func NewAuthService(repo UserRepository, tokens TokenGenerator) AuthUseCase {
	return &authService{repo: repo, tokens: tokens, hashCost: bcrypt.DefaultCost, now: time.Now}
}

func (s *authService) Register(ctx context.Context, in RegisterInput) (string, error) {
	if strings.TrimSpace(in.Email) == "" || in.Password == "" {
		return "", fmt.Errorf("%w: email and password are required", apperr.ErrInvalidInput)
	}
	if !in.UserType.Valid() {
		return "", fmt.Errorf("%w: userType must be %q or %q", apperr.ErrInvalidInput, Applicant, Employer)
	}

	// Best-effort check; the store's unique email index settles concurrent registrations.
	if _, err := s.repo.GetByEmail(ctx, in.Email); err == nil {
		return "", ErrUserAlreadyExists
	} else if !errors.Is(err, ErrNotFound) {
		return "", err
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(in.Password), s.hashCost)
	if err != nil {
		return "", err
	}

	user := User{
		UserType:     in.UserType,
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		DateOfBirth:  in.DateOfBirth,
		Gender:       in.Gender,
		Email:        in.Email,
		PhoneNumber:  in.PhoneNumber,
		Origin:       in.Origin,
		PasswordHash: string(passwordHash),
		CreatedAt:    s.now().UTC(),
	}
	if in.UserType == Employer {
		company := in.CompanyName
		user.CompanyName = &company
	}

	id, err := s.repo.Create(ctx, user)
	if errors.Is(err, ErrUserAlreadyExists) {
		return "", err
	}
	if err != nil || id == "" {
		return "", apperr.Persistence(err)
	}
	return id, nil
}

func (s *authService) Authenticate(ctx context.Context, email, password string) (AuthResult, error) {
	user, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return AuthResult{}, ErrInvalidCredentials
		}
		return AuthResult{}, err
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return AuthResult{}, ErrInvalidCredentials
	}
	token, err := s.tokens.Generate(ctx, user)
	if err != nil {
		return AuthResult{}, err
	}
	return AuthResult{User: user, Token: token}, nil
}
