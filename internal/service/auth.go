package service

import (
	"context"
	"errors"
	"strings"

	"github.com/notedeck/notedeck-go/internal/crypto"
	"github.com/notedeck/notedeck-go/internal/model"
	"github.com/notedeck/notedeck-go/internal/repository"
)

var (
	ErrFieldsRequired        = errors.New("Please enter all fields.")
	ErrInvalidEmail          = errors.New("Invalid Email format")
	ErrPasswordTooShort      = errors.New("Password must be at least 6 characters long")
	ErrEmailPasswordRequired = errors.New("Please provide both email and password.")
	ErrInvalidCredentials    = errors.New("Invalid credentials.")
	ErrUsernameTaken         = errors.New("This username is already registered.")
	ErrEmailTaken            = errors.New("This email is already registered.")
	ErrUserNotFound          = errors.New("User not found.")
)

// AuthService handles registration, login and token refresh.
type AuthService struct {
	repo   *repository.UserRepository
	tokens *crypto.TokenManager
}

// NewAuthService creates a new AuthService.
func NewAuthService(repo *repository.UserRepository, tokens *crypto.TokenManager) *AuthService {
	return &AuthService{repo: repo, tokens: tokens}
}

// Register creates a new user account and returns an auth token.
func (s *AuthService) Register(ctx context.Context, req model.RegisterRequest) (model.RegisterResponse, error) {
	if req.Username == "" || req.Email == "" || req.Password == "" {
		return model.RegisterResponse{}, ErrFieldsRequired
	}

	username := strings.TrimSpace(req.Username)
	email := strings.ToLower(strings.TrimSpace(req.Email))

	// Shallow syntactic check only; full RFC validation is deliberately out.
	if !strings.Contains(email, "@") {
		return model.RegisterResponse{}, ErrInvalidEmail
	}

	if len(req.Password) < 6 {
		return model.RegisterResponse{}, ErrPasswordTooShort
	}

	existing, err := s.repo.FindByUsernameOrEmail(ctx, username, email)
	if err != nil && !errors.Is(err, repository.ErrUserNotFound) {
		return model.RegisterResponse{}, err
	}
	if existing != nil {
		// Username collision is reported first when both fields match.
		if existing.Username == username {
			return model.RegisterResponse{}, ErrUsernameTaken
		}
		return model.RegisterResponse{}, ErrEmailTaken
	}

	hash, err := crypto.HashPassword(req.Password)
	if err != nil {
		return model.RegisterResponse{}, err
	}

	user := &model.User{
		Username:     username,
		Email:        email,
		PasswordHash: hash,
	}

	if err := s.repo.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicateUser) {
			// Lost a race with a concurrent registration.
			return model.RegisterResponse{}, ErrEmailTaken
		}
		return model.RegisterResponse{}, err
	}

	token, err := s.tokens.Issue(user.ID, user.Username)
	if err != nil {
		return model.RegisterResponse{}, err
	}

	return model.RegisterResponse{
		Message:  "User registered!",
		Token:    token,
		Username: user.Username,
	}, nil
}

// Login authenticates a user and returns an auth token. Unknown email and
// wrong password fail identically so neither field is confirmed.
func (s *AuthService) Login(ctx context.Context, req model.LoginRequest) (model.LoginResponse, error) {
	if req.Email == "" || req.Password == "" {
		return model.LoginResponse{}, ErrEmailPasswordRequired
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	user, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return model.LoginResponse{}, ErrInvalidCredentials
		}
		return model.LoginResponse{}, err
	}

	match, err := crypto.VerifyPassword(req.Password, user.PasswordHash)
	if err != nil {
		return model.LoginResponse{}, err
	}
	if !match {
		return model.LoginResponse{}, ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user.ID, user.Username)
	if err != nil {
		return model.LoginResponse{}, err
	}

	return model.LoginResponse{
		Token:    token,
		Username: user.Username,
	}, nil
}

// Refresh re-fetches the user behind an already-verified token and issues a
// fresh one, so a stale or renamed identity is caught.
func (s *AuthService) Refresh(ctx context.Context, userID int64) (model.RefreshResponse, error) {
	user, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return model.RefreshResponse{}, ErrUserNotFound
		}
		return model.RefreshResponse{}, err
	}

	token, err := s.tokens.Issue(user.ID, user.Username)
	if err != nil {
		return model.RefreshResponse{}, err
	}

	return model.RefreshResponse{
		Token: token,
		User: model.UserResponse{
			ID:       user.ID,
			Username: user.Username,
			Email:    user.Email,
		},
	}, nil
}
