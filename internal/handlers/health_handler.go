package handlers

import (
	"net/http"

	"rideadmin/internal/utils"
	"rideadmin/pkg/cache"
	"rideadmin/pkg/database"
	"rideadmin/pkg/websocket"

	"github.com/gin-gonic/gin"
)

type HealthHandler struct {
	db    *database.MongoDB
	cache *cache.RedisCache
	hub   *websocket.Hub
}

func NewHealthHandler(db *database.MongoDB, redisCache *cache.RedisCache, hub *websocket.Hub) *HealthHandler {
	return &HealthHandler{
		db:    db,
		cache: redisCache,
		hub:   hub,
	}
}

// Health reports dependency status. Degraded redis does not fail the check;
// the API works without its cache.
func (h *HealthHandler) Health(c *gin.Context) {
	checks := gin.H{
		"database": "ok",
		"cache":    "ok",
	}
	healthy := true

	if err := h.db.Ping(); err != nil {
		checks["database"] = "unreachable"
		healthy = false
	}

	if h.cache == nil {
		checks["cache"] = "disabled"
	} else if err := h.cache.Ping(c.Request.Context()); err != nil {
		checks["cache"] = "unreachable"
	}

	status := gin.H{
		"app":                utils.AppName,
		"version":            utils.AppVersion,
		"checks":             checks,
		"connected_consoles": h.hub.ClientCount(),
	}

	if !healthy {
		c.JSON(http.StatusServiceUnavailable, status)
		return
	}

	utils.SuccessResponse(c, "Healthy", status)
}
