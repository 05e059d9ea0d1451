package service

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"project-task-api/internal/config"
	"project-task-api/internal/domain"
	"project-task-api/internal/dto"
	"project-task-api/internal/repository"
	"project-task-api/internal/response"
)

// AuthService defines the interface for signup and login business logic
type AuthService interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (*dto.UserResponse, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error)
	GetMe(ctx context.Context, userID uuid.UUID) (*dto.UserResponse, error)
}

// authServiceImpl is the implementation of AuthService
type authServiceImpl struct {
	userRepo repository.UserRepository
	jwtCfg   *config.JWTConfig
	logger   *zap.Logger
}

// NewAuthService creates a new instance of AuthService
func NewAuthService(userRepo repository.UserRepository, jwtCfg *config.JWTConfig, logger *zap.Logger) AuthService {
	return &authServiceImpl{
		userRepo: userRepo,
		jwtCfg:   jwtCfg,
		logger:   logger,
	}
}

// Register creates a new account in PENDING status. The account cannot log
// in until an admin approves it.
func (s *authServiceImpl) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.UserResponse, error) {
	existing, err := s.userRepo.FindByUsername(ctx, req.Username)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to check username", err.Error())
	}
	if existing != nil {
		return nil, response.NewAppError(response.ErrCodeAlreadyExists, "Username already taken", "")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to hash password", err.Error())
	}

	user := &domain.User{
		Username:   req.Username,
		Password:   string(hashed),
		Name:       req.Name,
		Email:      req.Email,
		BirthDate:  req.BirthDate,
		Department: req.Department,
		Role:       domain.UserRoleUser,
		Status:     domain.UserStatusPending,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to create user", err.Error())
	}

	s.logger.Info("User registered, awaiting approval",
		zap.String("username", user.Username),
		zap.String("user_id", user.ID.String()))

	resp := dto.NewUserResponse(user)
	return &resp, nil
}

// Login verifies credentials and issues a signed token. Accounts that are
// still pending or were rejected are refused with a distinct message.
func (s *authServiceImpl) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := s.userRepo.FindByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewAppError(response.ErrCodeUnauthorized, "Invalid username or password", "")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch user", err.Error())
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, response.NewAppError(response.ErrCodeUnauthorized, "Invalid username or password", "")
	}

	switch user.Status {
	case domain.UserStatusPending:
		return nil, response.NewForbiddenError("Account is pending approval", "")
	case domain.UserStatusRejected:
		return nil, response.NewForbiddenError("Account has been rejected", "")
	}

	token, err := s.issueToken(user)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to issue token", err.Error())
	}

	return &dto.LoginResponse{
		Token: token,
		User:  dto.NewUserResponse(user),
	}, nil
}

// GetMe returns the profile of the authenticated user
func (s *authServiceImpl) GetMe(ctx context.Context, userID uuid.UUID) (*dto.UserResponse, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFoundError("User not found", "")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch user", err.Error())
	}

	resp := dto.NewUserResponse(user)
	return &resp, nil
}

func (s *authServiceImpl) issueToken(user *domain.User) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"user_id": user.ID.String(),
		"role":    string(user.Role),
		"name":    user.Name,
		"iat":     now.Unix(),
		"exp":     now.Add(s.jwtCfg.Expiry).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.jwtCfg.Secret))
}
