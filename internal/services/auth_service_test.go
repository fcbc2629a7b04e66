package services

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"rideadmin/internal/config"
	"rideadmin/internal/models"
	"rideadmin/internal/utils"
	"rideadmin/pkg/logger"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"
)

type fakeAdminRepo struct {
	admins map[primitive.ObjectID]*models.Admin
}

func newFakeAdminRepo() *fakeAdminRepo {
	return &fakeAdminRepo{admins: make(map[primitive.ObjectID]*models.Admin)}
}

func (r *fakeAdminRepo) Create(_ context.Context, admin *models.Admin) error {
	admin.ID = primitive.NewObjectID()
	admin.CreatedAt = time.Now()
	r.admins[admin.ID] = admin
	return nil
}

func (r *fakeAdminRepo) GetByID(_ context.Context, id primitive.ObjectID) (*models.Admin, error) {
	admin, ok := r.admins[id]
	if !ok {
		return nil, fmt.Errorf("admin %s: %w", id.Hex(), utils.ErrNotFound)
	}
	return admin, nil
}

func (r *fakeAdminRepo) GetByEmail(_ context.Context, email string) (*models.Admin, error) {
	for _, admin := range r.admins {
		if admin.Email == email {
			return admin, nil
		}
	}
	return nil, fmt.Errorf("admin %s: %w", email, utils.ErrNotFound)
}

func newTestAuthService(t *testing.T) (*AuthService, *fakeAdminRepo) {
	t.Helper()

	log, err := logger.NewLogger(&logger.Config{Level: "error", Format: "text"})
	if err != nil {
		t.Fatalf("failed to create logger: %v", err)
	}

	repo := newFakeAdminRepo()
	security := &config.SecurityConfig{
		JWTSecret:         "test-secret",
		AdminTokenTTL:     time.Hour,
		PasswordMinLength: 8,
	}

	return NewAuthService(repo, security, log), repo
}

func seedAdmin(t *testing.T, repo *fakeAdminRepo, email, password string) *models.Admin {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	admin := &models.Admin{
		Name:         "Test Admin",
		Email:        email,
		PasswordHash: string(hash),
	}
	if err := repo.Create(context.Background(), admin); err != nil {
		t.Fatalf("failed to seed admin: %v", err)
	}

	return admin
}

func TestLoginSuccess(t *testing.T) {
	svc, repo := newTestAuthService(t)
	admin := seedAdmin(t, repo, "admin@example.com", "correct-horse")

	result, err := svc.Login(context.Background(), "admin@example.com", "correct-horse")
	if err != nil {
		t.Fatalf("Login failed: %v", err)
	}

	if result.Token == "" {
		t.Error("expected a token")
	}
	if result.AdminID != admin.ID.Hex() {
		t.Errorf("expected admin %s, got %s", admin.ID.Hex(), result.AdminID)
	}
	if result.Name != admin.Name {
		t.Errorf("expected name %s, got %s", admin.Name, result.Name)
	}

	claims, err := utils.ValidateAdminToken(result.Token, "test-secret")
	if err != nil {
		t.Fatalf("issued token does not validate: %v", err)
	}
	if claims.AdminID != admin.ID.Hex() {
		t.Errorf("token carries wrong admin ID: %s", claims.AdminID)
	}
}

func TestLoginNormalizesEmail(t *testing.T) {
	svc, repo := newTestAuthService(t)
	seedAdmin(t, repo, "admin@example.com", "correct-horse")

	if _, err := svc.Login(context.Background(), "  Admin@Example.COM ", "correct-horse"); err != nil {
		t.Errorf("expected case-insensitive email match, got %v", err)
	}
}

func TestLoginFailures(t *testing.T) {
	svc, repo := newTestAuthService(t)
	seedAdmin(t, repo, "admin@example.com", "correct-horse")

	tests := []struct {
		name     string
		email    string
		password string
	}{
		{"wrong password", "admin@example.com", "wrong"},
		{"unknown email", "other@example.com", "correct-horse"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Login(context.Background(), tt.email, tt.password)
			if !errors.Is(err, utils.ErrUnauthorized) {
				t.Errorf("expected ErrUnauthorized, got %v", err)
			}
		})
	}
}

func TestCreateAdminValidation(t *testing.T) {
	svc, repo := newTestAuthService(t)
	seedAdmin(t, repo, "taken@example.com", "correct-horse")

	tests := []struct {
		name     string
		admin    string
		email    string
		password string
	}{
		{"bad email", "New Admin", "not-an-email", "long-enough"},
		{"short password", "New Admin", "new@example.com", "short"},
		{"short name", "A", "new@example.com", "long-enough"},
		{"duplicate email", "New Admin", "taken@example.com", "long-enough"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.CreateAdmin(context.Background(), tt.admin, tt.email, tt.password)
			if !errors.Is(err, utils.ErrInvalidInput) {
				t.Errorf("expected ErrInvalidInput, got %v", err)
			}
		})
	}
}

func TestCreateAdminHashesPassword(t *testing.T) {
	svc, _ := newTestAuthService(t)

	admin, err := svc.CreateAdmin(context.Background(), "New Admin", "new@example.com", "long-enough")
	if err != nil {
		t.Fatalf("CreateAdmin failed: %v", err)
	}

	if admin.PasswordHash == "long-enough" {
		t.Error("password must not be stored in plain text")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte("long-enough")); err != nil {
		t.Errorf("stored hash does not match password: %v", err)
	}
}

func TestValidateTokenRejectsDeletedAdmin(t *testing.T) {
	svc, repo := newTestAuthService(t)
	admin := seedAdmin(t, repo, "admin@example.com", "correct-horse")

	result, err := svc.Login(context.Background(), "admin@example.com", "correct-horse")
	if err != nil {
		t.Fatalf("Login failed: %v", err)
	}

	if _, err := svc.ValidateToken(context.Background(), result.Token); err != nil {
		t.Fatalf("expected token to validate: %v", err)
	}

	delete(repo.admins, admin.ID)

	if _, err := svc.ValidateToken(context.Background(), result.Token); !errors.Is(err, utils.ErrUnauthorized) {
		t.Errorf("expected ErrUnauthorized for deleted admin, got %v", err)
	}
}
