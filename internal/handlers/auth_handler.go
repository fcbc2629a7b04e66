package handlers

import (
	"rideadmin/internal/middleware"
	"rideadmin/internal/services"
	"rideadmin/internal/utils"
	"rideadmin/pkg/logger"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authService *services.AuthService
	logger      *logger.Logger
}

func NewAuthHandler(authService *services.AuthService, log *logger.Logger) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		logger:      log,
	}
}

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type createAdminRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Login exchanges credentials for a bearer token.
func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ValidationErrorResponse(c, "email and password are required")
		return
	}

	result, err := h.authService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondError(c, h.logger, err, "admin")
		return
	}

	utils.SuccessResponse(c, "Login successful", result)
}

// CreateAdmin registers a new admin account.
func (h *AuthHandler) CreateAdmin(c *gin.Context) {
	var req createAdminRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ValidationErrorResponse(c, "name, email and password are required")
		return
	}

	admin, err := h.authService.CreateAdmin(c.Request.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		respondError(c, h.logger, err, "admin")
		return
	}

	utils.CreatedResponse(c, "Admin created", admin)
}

// Logout acknowledges the client discarding its token. Tokens are stateless
// so there is nothing to revoke server side.
func (h *AuthHandler) Logout(c *gin.Context) {
	utils.SuccessResponse(c, "Logged out", nil)
}

// Profile returns the authenticated admin's own account.
func (h *AuthHandler) Profile(c *gin.Context) {
	admin := middleware.GetAdmin(c)
	if admin == nil {
		utils.UnauthorizedResponse(c, "")
		return
	}

	utils.SuccessResponse(c, "Profile retrieved", admin)
}
