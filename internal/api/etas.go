package api

import (
	"net/http"
	"time"

	"github.com/eyadma/whatsapp-automation-app-sub004/internal/eta"
	"github.com/eyadma/whatsapp-automation-app-sub004/internal/models"

	"github.com/gin-gonic/gin"
)

type ETAHandler struct {
	Registry *eta.Registry
}

func NewETAHandler(registry *eta.Registry) *ETAHandler {
	return &ETAHandler{Registry: registry}
}

func (h *ETAHandler) GetETAs(c *gin.Context) {
	rows, err := h.Registry.List(c.Request.Context(), currentUser(c))
	if err != nil {
		respondError(c, err)
		return
	}
	if rows == nil {
		rows = []models.ETA{}
	}
	c.JSON(http.StatusOK, rows)
}

// SetETA upserts the ETA of one area
func (h *ETAHandler) SetETA(c *gin.Context) {
	areaID, ok := paramID(c, "areaId")
	if !ok {
		return
	}
	var req struct {
		ETA string `json:"eta" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	value, err := eta.Normalize(req.ETA)
	if err != nil {
		respondError(c, err)
		return
	}

	if err := h.Registry.Set(c.Request.Context(), currentUser(c), areaID, value); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"area_id": areaID, "eta": value})
}

// GetETA returns the ETA the user set for one area
func (h *ETAHandler) GetETA(c *gin.Context) {
	areaID, ok := paramID(c, "areaId")
	if !ok {
		return
	}
	value, found, err := h.Registry.Effective(c.Request.Context(), areaID, currentUser(c))
	if err != nil {
		respondError(c, err)
		return
	}
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "no ETA for this area"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"area_id": areaID, "eta": value})
}

func (h *ETAHandler) DeleteETA(c *gin.Context) {
	areaID, ok := paramID(c, "areaId")
	if !ok {
		return
	}
	if err := h.Registry.Delete(c.Request.Context(), currentUser(c), areaID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "ETA deleted"})
}

// ShiftETAs adds minutes (default 60) to every ETA of the user
func (h *ETAHandler) ShiftETAs(c *gin.Context) {
	var req struct {
		Minutes *int `json:"minutes"`
	}
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	}
	minutes := 60
	if req.Minutes != nil {
		minutes = *req.Minutes
	}

	result, err := h.Registry.ShiftAll(c.Request.Context(), currentUser(c), time.Duration(minutes)*time.Minute)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}
