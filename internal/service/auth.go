package service

import (
	"context"
	"errors"

	"github.com/authgate/authgate-go/internal/crypto"
	"github.com/authgate/authgate-go/internal/model"
	"github.com/authgate/authgate-go/internal/repository"
)

var (
	ErrFirstNameRequired  = errors.New("first name is required")
	ErrLastNameRequired   = errors.New("last name is required")
	ErrEmailRequired      = errors.New("email is required")
	ErrPasswordRequired   = errors.New("password is required")
	ErrEmailTaken         = errors.New("email already taken")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUserNotFound       = errors.New("user not found")
)

// UserStore is the persistence surface AuthService needs. The MySQL
// repository satisfies it; tests substitute an in-memory store.
type UserStore interface {
	Create(ctx context.Context, user *model.User) error
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	GetByID(ctx context.Context, id int64) (*model.User, error)
}

// AuthService handles registration and authentication business logic.
type AuthService struct {
	store      UserStore
	bcryptCost int
}

// NewAuthService creates a new AuthService.
func NewAuthService(store UserStore, bcryptCost int) *AuthService {
	return &AuthService{
		store:      store,
		bcryptCost: bcryptCost,
	}
}

// Register creates a new user account and returns its sanitized view.
func (s *AuthService) Register(ctx context.Context, form model.RegisterForm) (model.UserView, error) {
	if form.FirstName == "" {
		return model.UserView{}, ErrFirstNameRequired
	}
	if form.LastName == "" {
		return model.UserView{}, ErrLastNameRequired
	}
	if form.Email == "" {
		return model.UserView{}, ErrEmailRequired
	}
	if form.Password == "" {
		return model.UserView{}, ErrPasswordRequired
	}

	hash, err := crypto.HashPassword(form.Password, s.bcryptCost)
	if err != nil {
		return model.UserView{}, err
	}

	user := &model.User{
		FirstName:    form.FirstName,
		LastName:     form.LastName,
		Email:        form.Email,
		PasswordHash: hash,
	}

	if err := s.store.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return model.UserView{}, ErrEmailTaken
		}
		return model.UserView{}, err
	}

	return user.View(), nil
}

// Authenticate verifies an email/password pair and returns the user's
// sanitized view. Unknown email and wrong password both come back as
// ErrInvalidCredentials so callers cannot leak account existence.
func (s *AuthService) Authenticate(ctx context.Context, form model.LoginForm) (model.UserView, error) {
	user, err := s.store.GetByEmail(ctx, form.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return model.UserView{}, ErrInvalidCredentials
		}
		return model.UserView{}, err
	}

	if !crypto.VerifyPassword(form.Password, user.PasswordHash) {
		return model.UserView{}, ErrInvalidCredentials
	}

	return user.View(), nil
}

// GetUser retrieves a user by ID and returns its sanitized view.
func (s *AuthService) GetUser(ctx context.Context, userID int64) (model.UserView, error) {
	user, err := s.store.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return model.UserView{}, ErrUserNotFound
		}
		return model.UserView{}, err
	}

	return user.View(), nil
}

// IsValidationError reports whether err is a missing-field failure that
// should re-render the form with a generic message.
func IsValidationError(err error) bool {
	return errors.Is(err, ErrFirstNameRequired) ||
		errors.Is(err, ErrLastNameRequired) ||
		errors.Is(err, ErrEmailRequired) ||
		errors.Is(err, ErrPasswordRequired)
}
