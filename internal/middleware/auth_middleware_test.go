package middleware

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"rideadmin/internal/config"
	"rideadmin/internal/models"
	"rideadmin/internal/services"
	"rideadmin/internal/utils"
	"rideadmin/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type stubAdminRepo struct {
	admin *models.Admin
}

func (r *stubAdminRepo) Create(_ context.Context, admin *models.Admin) error {
	r.admin = admin
	return nil
}

func (r *stubAdminRepo) GetByID(_ context.Context, id primitive.ObjectID) (*models.Admin, error) {
	if r.admin != nil && r.admin.ID == id {
		return r.admin, nil
	}
	return nil, fmt.Errorf("admin %s: %w", id.Hex(), utils.ErrNotFound)
}

func (r *stubAdminRepo) GetByEmail(_ context.Context, email string) (*models.Admin, error) {
	if r.admin != nil && r.admin.Email == email {
		return r.admin, nil
	}
	return nil, fmt.Errorf("admin %s: %w", email, utils.ErrNotFound)
}

func newTestRouter(t *testing.T) (*gin.Engine, *models.Admin, string) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	log, err := logger.NewLogger(&logger.Config{Level: "error", Format: "text"})
	if err != nil {
		t.Fatalf("failed to create logger: %v", err)
	}

	admin := &models.Admin{
		ID:    primitive.NewObjectID(),
		Name:  "Test Admin",
		Email: "admin@example.com",
	}
	repo := &stubAdminRepo{admin: admin}

	security := &config.SecurityConfig{
		JWTSecret:     "test-secret",
		AdminTokenTTL: time.Hour,
	}
	authService := services.NewAuthService(repo, security, log)

	token, err := utils.GenerateAdminToken(admin.ID, admin.Email, security.JWTSecret, security.AdminTokenTTL)
	if err != nil {
		t.Fatalf("failed to issue token: %v", err)
	}

	router := gin.New()
	router.GET("/protected", AuthMiddleware(authService), func(c *gin.Context) {
		current := GetAdmin(c)
		c.JSON(http.StatusOK, gin.H{"admin_id": current.ID.Hex()})
	})

	return router, admin, token
}

func TestAuthMiddlewareAllowsValidToken(t *testing.T) {
	router, admin, token := newTestRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var body map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode body: %v", err)
	}
	if body["admin_id"] != admin.ID.Hex() {
		t.Errorf("expected admin %s in context, got %s", admin.ID.Hex(), body["admin_id"])
	}
}

func TestAuthMiddlewareRejections(t *testing.T) {
	router, _, _ := newTestRouter(t)

	expired, err := utils.GenerateAdminToken(primitive.NewObjectID(), "x@example.com", "test-secret", -time.Minute)
	if err != nil {
		t.Fatalf("failed to issue expired token: %v", err)
	}

	unknownAdmin, err := utils.GenerateAdminToken(primitive.NewObjectID(), "ghost@example.com", "test-secret", time.Hour)
	if err != nil {
		t.Fatalf("failed to issue token: %v", err)
	}

	tests := []struct {
		name   string
		header string
	}{
		{"missing header", ""},
		{"not bearer", "Basic abc123"},
		{"malformed token", "Bearer not-a-jwt"},
		{"wrong secret", "Bearer " + signWithSecret(t, "other-secret")},
		{"expired token", "Bearer " + expired},
		{"deleted admin", "Bearer " + unknownAdmin},
		{"bearer with no token", "Bearer"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			req := httptest.NewRequest("GET", "/protected", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			router.ServeHTTP(w, req)

			if w.Code != http.StatusUnauthorized {
				t.Errorf("expected 401, got %d", w.Code)
			}
		})
	}
}

func signWithSecret(t *testing.T, secret string) string {
	t.Helper()
	token, err := utils.GenerateAdminToken(primitive.NewObjectID(), "x@example.com", secret, time.Hour)
	if err != nil {
		t.Fatalf("failed to issue token: %v", err)
	}
	return token
}
