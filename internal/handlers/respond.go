package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/mactanair/airline-backend/internal/models"
	"github.com/mactanair/airline-backend/internal/services"
)

// respondError converts a service error into the JSON error body for the
// endpoint. entity names the record for NotFound messages.
func respondError(c *gin.Context, err error, entity string) {
	switch {
	case errors.Is(err, services.ErrNotFound):
		c.JSON(404, gin.H{"error": entity + " not found"})
	case errors.Is(err, services.ErrInvalidInput),
		errors.Is(err, services.ErrUsernameTaken),
		errors.Is(err, services.ErrCityInUse),
		errors.Is(err, services.ErrNoSeatsAvailable),
		errors.Is(err, services.ErrInvalidTransition):
		c.JSON(400, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrSeatLocked):
		c.JSON(409, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrInvalidCredentials):
		c.JSON(401, gin.H{"error": err.Error()})
	default:
		c.JSON(500, gin.H{"error": "Internal server error"})
	}
}

func userBody(user *models.User) gin.H {
	return gin.H{
		"user_id":  user.ID,
		"username": user.Username,
		"email":    user.Email,
	}
}
