package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"domainfolio/internal/adapters/persistence/models"
	"domainfolio/internal/adapters/persistence/repositories"
	"domainfolio/internal/config"
	"domainfolio/internal/core/domain"
	"domainfolio/internal/pkg/jwt"
	"domainfolio/internal/pkg/password"
	"domainfolio/internal/pkg/validation"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// AuthService handles authentication business logic
type AuthService struct {
	userRepo  repositories.UserRepository
	cfg       *config.Config
	validator *validation.Validator
}

// NewAuthService creates a new auth service
func NewAuthService(userRepo repositories.UserRepository, cfg *config.Config) *AuthService {
	return &AuthService{
		userRepo:  userRepo,
		cfg:       cfg,
		validator: validation.New(),
	}
}

// RegisterInput represents registration input
type RegisterInput struct {
	Username string `json:"username" validate:"required,min=3,max=50"`
	Email    string `json:"email" validate:"required,email,max=100"`
	Password string `json:"password" validate:"required"`
}

// LoginInput represents login input. Username may hold an email address.
type LoginInput struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password" validate:"required"`
}

func (i *LoginInput) login() string {
	if u := strings.TrimSpace(i.Username); u != "" {
		return u
	}
	return strings.TrimSpace(i.Email)
}

// AuthResponse represents authentication response
type AuthResponse struct {
	Token string               `json:"token"`
	User  *models.UserResponse `json:"user"`
}

// Register creates a new account and returns its id
func (s *AuthService) Register(ctx context.Context, input *RegisterInput) (uint, error) {
	input.Username = strings.TrimSpace(input.Username)
	input.Email = strings.TrimSpace(input.Email)

	if err := s.validator.Validate(input); err != nil {
		return 0, err
	}
	if !password.ValidatePassword(input.Password) {
		return 0, fmt.Errorf("%w: password must be at least %d characters", domain.ErrPasswordTooShort, password.MinLength)
	}

	user, err := s.createUser(ctx, input.Username, input.Email, input.Password)
	if err != nil {
		return 0, err
	}

	log.Info().Str("username", user.Username).Uint("user_id", user.ID).Msg("user registered")
	return user.ID, nil
}

// Login authenticates a user by username or email
func (s *AuthService) Login(ctx context.Context, input *LoginInput) (*AuthResponse, error) {
	login := input.login()
	if login == "" || input.Password == "" {
		return nil, &validation.Error{Fields: map[string]string{
			"username": "username or email and password are required",
		}}
	}

	user, err := s.userRepo.GetByUsernameOrEmail(ctx, login)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("find user: %w", err)
	}

	if !password.Verify(input.Password, user.Password) {
		return nil, domain.ErrInvalidCredentials
	}

	token, err := jwt.GenerateAccessToken(user.ID, user.Username, user.Email, s.cfg.JWT.Secret, s.cfg.JWT.ExpiryHours)
	if err != nil {
		return nil, fmt.Errorf("sign token: %w", err)
	}

	log.Info().Str("username", user.Username).Msg("user logged in")

	return &AuthResponse{
		Token: token,
		User:  user.ToResponse(),
	}, nil
}

func (s *AuthService) createUser(ctx context.Context, username, email, plain string) (*models.User, error) {
	exists, err := s.userRepo.ExistsByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, fmt.Errorf("%w: username %s is taken", domain.ErrUserAlreadyExists, username)
	}

	exists, err = s.userRepo.ExistsByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, fmt.Errorf("%w: email %s is taken", domain.ErrUserAlreadyExists, email)
	}

	hashed, err := password.Hash(plain)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &models.User{
		Username: username,
		Email:    email,
		Password: hashed,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, domain.ErrUserAlreadyExists
		}
		return nil, fmt.Errorf("create user: %w", err)
	}
	return user, nil
}
