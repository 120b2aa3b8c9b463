package user

import (
	"fmt"
	"strings"
	"time"

	userRepo "tourmate/database/repository/user"
	"tourmate/models"
	"tourmate/utils"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// tokenTTL is the bearer token lifetime.
const tokenTTL = 7 * 24 * time.Hour

// AuthResponse carries the authenticated user's safe view and a fresh token.
type AuthResponse struct {
	User  map[string]interface{} `json:"user"`
	Token string                 `json:"token"`
}

// EmailVerifier reports whether an email address has completed OTP verification.
type EmailVerifier interface {
	IsEmailVerified(email string) (bool, error)
}

// UserService defines business logic for user operations.
type UserService interface {
	// RegisterUser validates registration details, requires a verified email,
	// hashes the password and returns the new user plus a token.
	RegisterUser(name, email, password string) (*AuthResponse, error)
	// AuthenticateUser verifies credentials and returns the user plus a token.
	AuthenticateUser(email, password string) (*AuthResponse, error)
	// AuthenticateAdmin is AuthenticateUser restricted to the admin role.
	AuthenticateAdmin(email, password string) (*AuthResponse, error)
	// GetUserByID retrieves a user (safe view) by its unique ID.
	GetUserByID(userID string) (*models.User, error)
}

// DefaultUserService is the production implementation.
type DefaultUserService struct {
	Repo     userRepo.UserRepository
	Verifier EmailVerifier
}

// RegisterUser validates required fields, checks OTP verification, hashes the
// password, persists the user and returns a signed token.
func (s *DefaultUserService) RegisterUser(name, email, password string) (*AuthResponse, error) {
	if name == "" || email == "" || password == "" {
		return nil, ValidationError{Msg: "name, email and password are required"}
	}
	if len(password) < 6 {
		return nil, ValidationError{Msg: "password must be at least 6 characters"}
	}
	email = strings.ToLower(email)

	verified, err := s.Verifier.IsEmailVerified(email)
	if err != nil {
		return nil, fmt.Errorf("failed to check email verification: %w", err)
	}
	if !verified {
		return nil, ErrEmailNotVerified
	}

	existing, err := s.Repo.GetByEmail(email)
	if err != nil {
		return nil, fmt.Errorf("failed to check for existing user: %w", err)
	}
	if existing != nil {
		return nil, ErrEmailExists
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	usr := &models.User{
		ID:           uuid.New().String(),
		Name:         name,
		Email:        email,
		PasswordHash: string(hashedPassword),
		Role:         models.RoleUser,
	}
	if err := s.Repo.Create(usr); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	token, err := utils.GenerateToken(usr.ID, usr.Email, usr.Role, tokenTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to generate auth token: %w", err)
	}
	return &AuthResponse{User: usr.SafeView(), Token: token}, nil
}

// AuthenticateUser verifies the user's credentials and issues a fresh token.
func (s *DefaultUserService) AuthenticateUser(email, password string) (*AuthResponse, error) {
	usr, err := s.verifyCredentials(email, password)
	if err != nil {
		return nil, err
	}

	token, err := utils.GenerateToken(usr.ID, usr.Email, usr.Role, tokenTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to generate auth token: %w", err)
	}
	return &AuthResponse{User: usr.SafeView(), Token: token}, nil
}

// AuthenticateAdmin verifies credentials and requires the admin role.
func (s *DefaultUserService) AuthenticateAdmin(email, password string) (*AuthResponse, error) {
	usr, err := s.Repo.GetByEmail(strings.ToLower(email))
	if err != nil {
		return nil, fmt.Errorf("failed to fetch user for authentication: %w", err)
	}
	if usr == nil {
		return nil, ErrInvalidCredentials
	}
	if usr.Role != models.RoleAdmin {
		return nil, ErrNotAdmin
	}
	if err := bcrypt.CompareHashAndPassword([]byte(usr.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := utils.GenerateToken(usr.ID, usr.Email, usr.Role, tokenTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to generate auth token: %w", err)
	}
	return &AuthResponse{User: usr.SafeView(), Token: token}, nil
}

// GetUserByID retrieves a user by its unique ID.
func (s *DefaultUserService) GetUserByID(userID string) (*models.User, error) {
	usr, err := s.Repo.GetByID(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch user: %w", err)
	}
	if usr == nil {
		return nil, ErrNotFound
	}
	return usr, nil
}

func (s *DefaultUserService) verifyCredentials(email, password string) (*models.User, error) {
	if email == "" || password == "" {
		return nil, ValidationError{Msg: "email and password are required"}
	}
	usr, err := s.Repo.GetByEmail(strings.ToLower(email))
	if err != nil {
		return nil, fmt.Errorf("failed to fetch user for authentication: %w", err)
	}
	if usr == nil {
		return nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(usr.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	return usr, nil
}
