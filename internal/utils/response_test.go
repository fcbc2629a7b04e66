package utils

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestHandleServiceError(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"not found", fmt.Errorf("booking abc: %w", ErrNotFound), http.StatusNotFound, "NOT_FOUND"},
		{"unauthorized", ErrUnauthorized, http.StatusUnauthorized, "UNAUTHORIZED"},
		{"invalid input", fmt.Errorf("bad status: %w", ErrInvalidInput), http.StatusBadRequest, "VALIDATION_ERROR"},
		{"invalid state", fmt.Errorf("already completed: %w", ErrInvalidState), http.StatusBadRequest, "INVALID_STATE"},
		{"unknown error", fmt.Errorf("mongo exploded"), http.StatusInternalServerError, "INTERNAL_ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)

			HandleServiceError(c, tt.err, "booking")

			if w.Code != tt.wantStatus {
				t.Errorf("expected status %d, got %d", tt.wantStatus, w.Code)
			}

			var resp APIResponse
			if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
				t.Fatalf("failed to decode response: %v", err)
			}

			if resp.Status != StatusError {
				t.Errorf("expected status %s, got %s", StatusError, resp.Status)
			}
			if resp.Error == nil || resp.Error.Code != tt.wantCode {
				t.Errorf("expected error code %s, got %+v", tt.wantCode, resp.Error)
			}
		})
	}
}

func TestInternalErrorHidesCause(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	HandleServiceError(c, fmt.Errorf("connection refused to mongodb://secret-host"), "booking")

	var resp APIResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	if resp.Error.Message != ErrMsgInternalServer {
		t.Errorf("internal error must use the generic message, got %q", resp.Error.Message)
	}
}

func TestSuccessResponseEnvelope(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	SuccessResponse(c, "done", gin.H{"value": 42})

	if w.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", w.Code)
	}

	var resp APIResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	if resp.Status != StatusSuccess {
		t.Errorf("expected status %s, got %s", StatusSuccess, resp.Status)
	}
	if resp.Message != "done" {
		t.Errorf("expected message done, got %s", resp.Message)
	}
	if resp.Timestamp.IsZero() {
		t.Error("expected timestamp to be set")
	}
}

func TestNotFoundResponseNamesResource(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	NotFoundResponse(c, "captain")

	var resp APIResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	if resp.Error.Message != "captain not found" {
		t.Errorf("expected resource in message, got %q", resp.Error.Message)
	}
}
