package handlers

import (
	"net/http"

	"xoadvisor/models"
	"xoadvisor/services/directory"

	"github.com/gin-gonic/gin"
)

// DirectoryHandler serves the public resource directory.
type DirectoryHandler struct {
	Service directory.DirectoryService
}

func NewDirectoryHandler(s directory.DirectoryService) *DirectoryHandler {
	return &DirectoryHandler{Service: s}
}

// ListResourcesHandler handles GET /api/resources?category=.
func (h *DirectoryHandler) ListResourcesHandler(c *gin.Context) {
	category := models.Category(c.DefaultQuery("category", string(models.CategoryAll)))
	resources, err := h.Service.ListActiveResources(c.Request.Context(), category)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"category": category, "resources": resources})
}

// ListCategoriesHandler handles GET /api/resources/categories.
func (h *DirectoryHandler) ListCategoriesHandler(c *gin.Context) {
	c.JSON(http.StatusOK, h.Service.Categories())
}
