package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/reda-h/wellness-companion/internal/models"
	"github.com/reda-h/wellness-companion/internal/repository"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrAllFieldsRequired       = errors.New("all fields are required")
	ErrMailAndPasswordRequired = errors.New("email and password required")
	ErrMailTaken               = errors.New("email already exists")
	ErrInvalidCredentials      = errors.New("invalid email or password")
	ErrFailedToHashPassword    = errors.New("failed to hash password")
)

// AuthService handles registration, login and user listing.
type AuthService struct {
	userRepo repository.UserRepository
}

// NewAuthService creates a new AuthService.
func NewAuthService(userRepo repository.UserRepository) *AuthService {
	return &AuthService{
		userRepo: userRepo,
	}
}

// RegisterInput represents the required information to create a new user.
type RegisterInput struct {
	UserName string
	Mail     string
	Password string
}

// Register validates the input, checks mail uniqueness, hashes the password
// and inserts the user. A unique violation on the insert itself is also
// reported as ErrMailTaken, so two concurrent registrations of the same
// mail cannot slip past the pre-insert check.
func (s *AuthService) Register(input RegisterInput) (*models.User, error) {
	userName := strings.TrimSpace(input.UserName)
	mail := strings.TrimSpace(input.Mail)
	if userName == "" || mail == "" || input.Password == "" {
		return nil, ErrAllFieldsRequired
	}

	if _, err := s.userRepo.FindByMail(mail); err == nil {
		return nil, ErrMailTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check mail: %w", err)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, ErrFailedToHashPassword
	}

	user := &models.User{
		UserName:     userName,
		Mail:         mail,
		PasswordHash: string(hashedPassword),
	}

	if err := s.userRepo.Create(user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrMailTaken
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return user, nil
}

// LoginInput holds the credentials for authentication.
type LoginInput struct {
	Mail     string
	Password string
}

// Login verifies credentials and returns the authenticated user. An unknown
// mail and a wrong password both come back as ErrInvalidCredentials; the
// caller cannot tell which mails are registered.
func (s *AuthService) Login(input LoginInput) (*models.User, error) {
	if strings.TrimSpace(input.Mail) == "" || input.Password == "" {
		return nil, ErrMailAndPasswordRequired
	}

	user, err := s.userRepo.FindByMail(input.Mail)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return user, nil
}

// ListUsers returns every registered user ordered by id.
func (s *AuthService) ListUsers() ([]models.User, error) {
	users, err := s.userRepo.List()
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}
