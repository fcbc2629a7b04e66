package services

import (
	"context"
	"fmt"
	"strings"

	"rideadmin/internal/config"
	"rideadmin/internal/models"
	"rideadmin/internal/repositories/interfaces"
	"rideadmin/internal/utils"
	"rideadmin/pkg/logger"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"
)

type AuthService struct {
	adminRepo interfaces.AdminRepository
	security  *config.SecurityConfig
	logger    *logger.Logger
}

func NewAuthService(adminRepo interfaces.AdminRepository, security *config.SecurityConfig, log *logger.Logger) *AuthService {
	return &AuthService{
		adminRepo: adminRepo,
		security:  security,
		logger:    log,
	}
}

// LoginResult carries the issued token together with the admin identity.
type LoginResult struct {
	Token   string `json:"token"`
	AdminID string `json:"admin_id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
}

// Login verifies credentials and issues a bearer token. A missing admin and
// a wrong password both come back as ErrUnauthorized so the response does
// not reveal which accounts exist.
func (s *AuthService) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	admin, err := s.adminRepo.GetByEmail(ctx, email)
	if err != nil {
		s.logger.WithField("email", email).Warn("Login attempt for unknown admin")
		return nil, utils.ErrUnauthorized
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(password)); err != nil {
		s.logger.WithField("email", email).Warn("Login attempt with wrong password")
		return nil, utils.ErrUnauthorized
	}

	token, err := utils.GenerateAdminToken(admin.ID, admin.Email, s.security.JWTSecret, s.security.AdminTokenTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}

	s.logger.WithAdminID(admin.ID).Info("Admin logged in")

	return &LoginResult{
		Token:   token,
		AdminID: admin.ID.Hex(),
		Name:    admin.Name,
		Email:   admin.Email,
	}, nil
}

// CreateAdmin registers a new back-office account. Only reachable when
// bootstrap is enabled or through an already authenticated admin.
func (s *AuthService) CreateAdmin(ctx context.Context, name, email, password string) (*models.Admin, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	if !utils.IsValidEmail(email) {
		return nil, fmt.Errorf("invalid email %q: %w", email, utils.ErrInvalidInput)
	}
	if !utils.IsValidName(name) {
		return nil, fmt.Errorf("name too short: %w", utils.ErrInvalidInput)
	}
	if len(password) < s.security.PasswordMinLength {
		return nil, fmt.Errorf("password must be at least %d characters: %w", s.security.PasswordMinLength, utils.ErrInvalidInput)
	}

	if _, err := s.adminRepo.GetByEmail(ctx, email); err == nil {
		return nil, fmt.Errorf("email %s already registered: %w", email, utils.ErrInvalidInput)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	admin := &models.Admin{
		Name:         strings.TrimSpace(name),
		Email:        email,
		PasswordHash: string(hash),
	}
	if err := utils.ValidateStruct(admin); err != nil {
		return nil, fmt.Errorf("invalid admin document: %w", utils.ErrInvalidInput)
	}

	if err := s.adminRepo.Create(ctx, admin); err != nil {
		return nil, err
	}

	s.logger.WithAdminID(admin.ID).Info("Admin account created")

	return admin, nil
}

// ValidateToken checks the signature and expiry, then confirms the admin
// still exists. A deleted admin invalidates otherwise valid tokens.
func (s *AuthService) ValidateToken(ctx context.Context, tokenString string) (*models.Admin, error) {
	claims, err := utils.ValidateAdminToken(tokenString, s.security.JWTSecret)
	if err != nil {
		return nil, utils.ErrUnauthorized
	}

	adminID, err := primitive.ObjectIDFromHex(claims.AdminID)
	if err != nil {
		return nil, utils.ErrUnauthorized
	}

	admin, err := s.adminRepo.GetByID(ctx, adminID)
	if err != nil {
		return nil, utils.ErrUnauthorized
	}

	return admin, nil
}

func (s *AuthService) GetProfile(ctx context.Context, adminID primitive.ObjectID) (*models.Admin, error) {
	return s.adminRepo.GetByID(ctx, adminID)
}
