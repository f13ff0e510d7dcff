package api

import (
	"net/http"

	"github.com/eyadma/whatsapp-automation-app-sub004/internal/directory"
	"github.com/eyadma/whatsapp-automation-app-sub004/internal/models"

	"github.com/gin-gonic/gin"
)

type AreaHandler struct {
	Areas directory.AreaStore
}

func NewAreaHandler(areas directory.AreaStore) *AreaHandler {
	return &AreaHandler{Areas: areas}
}

type areaRequest struct {
	NameEnglish        string `json:"name_english" binding:"required"`
	NameHebrew         string `json:"name_hebrew"`
	NameArabic         string `json:"name_arabic"`
	PreferredLanguage1 string `json:"preferred_language_1"`
	PreferredLanguage2 string `json:"preferred_language_2"`
}

func (r areaRequest) model() models.Area {
	return models.Area{
		NameEnglish:        r.NameEnglish,
		NameHebrew:         r.NameHebrew,
		NameArabic:         r.NameArabic,
		PreferredLanguage1: r.PreferredLanguage1,
		PreferredLanguage2: r.PreferredLanguage2,
	}
}

func (h *AreaHandler) GetAreas(c *gin.Context) {
	areas, err := h.Areas.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	if areas == nil {
		areas = []models.Area{}
	}
	c.JSON(http.StatusOK, areas)
}

func (h *AreaHandler) GetArea(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	area, err := h.Areas.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, area)
}

func (h *AreaHandler) CreateArea(c *gin.Context) {
	var req areaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	area := req.model()
	if err := h.Areas.Create(c.Request.Context(), &area); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, area)
}

func (h *AreaHandler) UpdateArea(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	var req areaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	area := req.model()
	area.ID = id
	if err := h.Areas.Update(c.Request.Context(), &area); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, area)
}

func (h *AreaHandler) DeleteArea(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	if err := h.Areas.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Area deleted"})
}
