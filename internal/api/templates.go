package api

import (
	"net/http"

	"github.com/eyadma/whatsapp-automation-app-sub004/internal/directory"
	"github.com/eyadma/whatsapp-automation-app-sub004/internal/models"

	"github.com/gin-gonic/gin"
)

type TemplateHandler struct {
	Templates *directory.TemplateRepository
}

func NewTemplateHandler(templates *directory.TemplateRepository) *TemplateHandler {
	return &TemplateHandler{Templates: templates}
}

type templateRequest struct {
	Name            string `json:"name" binding:"required"`
	TemplateEnglish string `json:"template_english"`
	TemplateHebrew  string `json:"template_hebrew"`
	TemplateArabic  string `json:"template_arabic"`
}

// GetTemplates returns the user's templates and the global ones
func (h *TemplateHandler) GetTemplates(c *gin.Context) {
	templates, err := h.Templates.ListForUser(c.Request.Context(), currentUser(c))
	if err != nil {
		respondError(c, err)
		return
	}
	if templates == nil {
		templates = []models.Template{}
	}
	c.JSON(http.StatusOK, templates)
}

func (h *TemplateHandler) GetTemplate(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	t, err := h.Templates.GetForUser(c.Request.Context(), currentUser(c), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, t)
}

func (h *TemplateHandler) CreateTemplate(c *gin.Context) {
	var req templateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	t := models.Template{
		UserID:          currentUser(c),
		Name:            req.Name,
		TemplateEnglish: req.TemplateEnglish,
		TemplateHebrew:  req.TemplateHebrew,
		TemplateArabic:  req.TemplateArabic,
	}
	if err := h.Templates.Create(c.Request.Context(), &t); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, t)
}

func (h *TemplateHandler) UpdateTemplate(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	var req templateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	t := models.Template{
		ID:              id,
		UserID:          currentUser(c),
		Name:            req.Name,
		TemplateEnglish: req.TemplateEnglish,
		TemplateHebrew:  req.TemplateHebrew,
		TemplateArabic:  req.TemplateArabic,
	}
	if err := h.Templates.Update(c.Request.Context(), &t); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Template updated"})
}

func (h *TemplateHandler) DeleteTemplate(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	if err := h.Templates.Delete(c.Request.Context(), currentUser(c), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Template deleted"})
}

// SetDefault makes the template the user's only default
func (h *TemplateHandler) SetDefault(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	if err := h.Templates.SetDefault(c.Request.Context(), currentUser(c), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Default template set"})
}

func (h *TemplateHandler) ToggleFavorite(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	favorite, err := h.Templates.ToggleFavorite(c.Request.Context(), currentUser(c), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"is_favorite": favorite})
}
