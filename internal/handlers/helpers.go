package handlers

import (
	"errors"

	"rideadmin/internal/utils"
	"rideadmin/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// respondError maps a service error onto the HTTP response. Errors that do
// not match a sentinel become a generic 500 and the cause is only logged.
func respondError(c *gin.Context, log *logger.Logger, err error, resource string) {
	known := errors.Is(err, utils.ErrNotFound) ||
		errors.Is(err, utils.ErrUnauthorized) ||
		errors.Is(err, utils.ErrInvalidInput) ||
		errors.Is(err, utils.ErrInvalidState)

	if !known {
		log.WithError(err).WithField("path", c.Request.URL.Path).Error("Unhandled service error")
	}

	utils.HandleServiceError(c, err, resource)
}

// parseObjectIDParam reads a path parameter as an ObjectID, writing the 400
// itself on failure.
func parseObjectIDParam(c *gin.Context, name string) (primitive.ObjectID, bool) {
	id, err := primitive.ObjectIDFromHex(c.Param(name))
	if err != nil {
		utils.ValidationErrorResponse(c, "invalid "+name)
		return primitive.NilObjectID, false
	}
	return id, true
}
