package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/eyadma/whatsapp-automation-app-sub004/internal/directory"
	"github.com/eyadma/whatsapp-automation-app-sub004/internal/eta"
	"github.com/eyadma/whatsapp-automation-app-sub004/internal/sender"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

const (
	userIDHeader = "X-User-ID"
	userIDKey    = "user_id"
)

// RequireUser rejects requests without the acting user header.
func RequireUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetHeader(userIDHeader)
		if userID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing " + userIDHeader + " header"})
			return
		}
		c.Set(userIDKey, userID)
		c.Next()
	}
}

func currentUser(c *gin.Context) string {
	return c.GetString(userIDKey)
}

func paramID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid " + name})
		return 0, false
	}
	return uint(id), true
}

// respondError maps domain errors onto HTTP statuses.
func respondError(c *gin.Context, err error) {
	var sendErr *sender.Error
	switch {
	case errors.As(err, &sendErr):
		status := http.StatusInternalServerError
		switch sendErr.Category {
		case sender.CategoryValidation:
			status = http.StatusBadRequest
		case sender.CategorySubmit, sender.CategoryFetch:
			status = http.StatusBadGateway
		}
		c.JSON(status, gin.H{"error": string(sendErr.Category), "details": sendErr.Err.Error()})
	case errors.Is(err, directory.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, directory.ErrNoPreferredLanguage),
		errors.Is(err, directory.ErrDuplicateLanguage),
		errors.Is(err, directory.ErrEmptyTemplate),
		errors.Is(err, eta.ErrInvalidFormat):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		log.WithError(err).WithField("path", c.FullPath()).Error("Request failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
