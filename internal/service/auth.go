// Package service provides business logic for authentication and expense
// tracking, delegating persistence to repository interfaces.
package service

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"

	"github.com/expensio/expensio/internal/models"
	"github.com/expensio/expensio/internal/repository"
)

// ErrEmptyField reports a register call with a missing required field.
var ErrEmptyField = errors.New("empty required field")

// ErrUserNotFound reports a login attempt for an unknown email.
var ErrUserNotFound = errors.New("user not found")

// ErrWrongPassword reports a login attempt with a failed hash comparison.
var ErrWrongPassword = errors.New("wrong password")

// ErrEmailTaken reports a register attempt with an already used email.
var ErrEmailTaken = errors.New("email already registered")

// UserRepository defines the persistence operations required by the
// authentication service.
type UserRepository interface {
	// CreateUser inserts a new user and returns it with its assigned id.
	// A duplicate email is reported as repository.ErrEmailTaken.
	CreateUser(ctx context.Context, username, email, passwordHash string) (*models.User, error)
	// GetUserByEmail fetches a user by email, or repository.ErrUserNotFound.
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
}

// TokenIssuer mints session tokens for authenticated users.
type TokenIssuer interface {
	Issue(userID int64) (string, error)
}

// AuthService implements registration and login.
type AuthService struct {
	repo   UserRepository
	tokens TokenIssuer
}

// NewAuthService constructs an AuthService using the provided repository
// and token issuer.
func NewAuthService(repo UserRepository, tokens TokenIssuer) *AuthService {
	return &AuthService{repo: repo, tokens: tokens}
}

// Register creates a user with a bcrypt hash of password and immediately
// issues a session token, so a fresh registration is also a login.
// All three fields must be non-empty; beyond that no format or strength
// checks are applied.
func (s *AuthService) Register(ctx context.Context, username, email, password string) (string, *models.PublicUser, error) {
	if username == "" || email == "" || password == "" {
		return "", nil, ErrEmptyField
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", nil, err
	}

	user, err := s.repo.CreateUser(ctx, username, email, string(hash))
	if errors.Is(err, repository.ErrEmailTaken) {
		return "", nil, ErrEmailTaken
	}
	if err != nil {
		return "", nil, err
	}

	t, err := s.tokens.Issue(user.ID)
	if err != nil {
		return "", nil, err
	}

	pub := user.Public()
	return t, &pub, nil
}

// Login verifies email and password against the stored hash and issues a
// fresh session token. The hash comparison is constant-time via bcrypt.
// Login writes nothing; token issuance is stateless.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, *models.PublicUser, error) {
	user, err := s.repo.GetUserByEmail(ctx, email)
	if errors.Is(err, repository.ErrUserNotFound) {
		return "", nil, ErrUserNotFound
	}
	if err != nil {
		return "", nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", nil, ErrWrongPassword
	}

	t, err := s.tokens.Issue(user.ID)
	if err != nil {
		return "", nil, err
	}

	pub := user.Public()
	return t, &pub, nil
}
