package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/samparc/medical-api/internal/models"
	"github.com/samparc/medical-api/internal/store"
)

type sectionURI struct {
	Section string `uri:"section" binding:"sectionkey"`
}

type ContentRequest struct {
	Content *string `json:"content" binding:"required"`
}

// GetContent returns {section, content}. Unknown sections answer content null
// so the site can fall back to its built-in copy.
func (h *Handler) GetContent(c *gin.Context) {
	var uri sectionURI
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid section key"})
		return
	}

	ctx := c.Request.Context()
	if content, ok := h.Content.Get(ctx, uri.Section); ok {
		c.JSON(http.StatusOK, gin.H{"section": uri.Section, "content": content})
		return
	}

	section, err := h.Store.GetContent(ctx, uri.Section)
	if errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusOK, gin.H{"section": uri.Section, "content": nil})
		return
	}
	if err != nil {
		storeError(c, err, "Content")
		return
	}
	h.Content.Set(ctx, section.Section, section.Content)
	c.JSON(http.StatusOK, gin.H{"section": section.Section, "content": section.Content})
}

// GetAllContent lists every stored section ordered by key.
func (h *Handler) GetAllContent(c *gin.Context) {
	sections, err := h.Store.ListContent(c.Request.Context())
	if err != nil {
		storeError(c, err, "Content")
		return
	}
	if sections == nil {
		sections = make([]models.ContentSection, 0)
	}
	c.JSON(http.StatusOK, sections)
}

// UpdateContent upserts a section, then refreshes the cache.
func (h *Handler) UpdateContent(c *gin.Context) {
	var uri sectionURI
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid section key"})
		return
	}
	var req ContentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "content is required"})
		return
	}

	section := models.ContentSection{
		Section:   uri.Section,
		Content:   *req.Content,
		UpdatedAt: time.Now().UTC(),
	}
	ctx := c.Request.Context()
	if err := h.Store.PutContent(ctx, &section); err != nil {
		storeError(c, err, "Content")
		return
	}
	h.Content.Set(ctx, section.Section, section.Content)
	c.JSON(http.StatusOK, section)
}
