package utils

import (
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestGenerateAndValidateAdminToken(t *testing.T) {
	adminID := primitive.NewObjectID()
	secret := "test-secret"

	token, err := GenerateAdminToken(adminID, "admin@example.com", secret, time.Hour)
	if err != nil {
		t.Fatalf("GenerateAdminToken failed: %v", err)
	}

	claims, err := ValidateAdminToken(token, secret)
	if err != nil {
		t.Fatalf("ValidateAdminToken failed: %v", err)
	}

	if claims.AdminID != adminID.Hex() {
		t.Errorf("expected admin ID %s, got %s", adminID.Hex(), claims.AdminID)
	}
	if claims.Email != "admin@example.com" {
		t.Errorf("expected email admin@example.com, got %s", claims.Email)
	}
	if claims.Issuer != AppName {
		t.Errorf("expected issuer %s, got %s", AppName, claims.Issuer)
	}
}

func TestValidateAdminTokenWrongSecret(t *testing.T) {
	adminID := primitive.NewObjectID()

	token, err := GenerateAdminToken(adminID, "admin@example.com", "right-secret", time.Hour)
	if err != nil {
		t.Fatalf("GenerateAdminToken failed: %v", err)
	}

	if _, err := ValidateAdminToken(token, "wrong-secret"); err == nil {
		t.Error("expected validation to fail with wrong secret")
	}
}

func TestValidateAdminTokenExpired(t *testing.T) {
	adminID := primitive.NewObjectID()
	secret := "test-secret"

	token, err := GenerateAdminToken(adminID, "admin@example.com", secret, -time.Minute)
	if err != nil {
		t.Fatalf("GenerateAdminToken failed: %v", err)
	}

	if _, err := ValidateAdminToken(token, secret); err == nil {
		t.Error("expected validation to fail for expired token")
	}
}

func TestValidateAdminTokenGarbage(t *testing.T) {
	if _, err := ValidateAdminToken("not-a-token", "secret"); err == nil {
		t.Error("expected validation to fail for malformed token")
	}
}

func TestExtractAdminID(t *testing.T) {
	adminID := primitive.NewObjectID()
	secret := "test-secret"

	token, err := GenerateAdminToken(adminID, "admin@example.com", secret, time.Hour)
	if err != nil {
		t.Fatalf("GenerateAdminToken failed: %v", err)
	}

	extracted, err := ExtractAdminID(token, secret)
	if err != nil {
		t.Fatalf("ExtractAdminID failed: %v", err)
	}

	if extracted != adminID {
		t.Errorf("expected %s, got %s", adminID.Hex(), extracted.Hex())
	}
}
