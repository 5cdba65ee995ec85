package handlers

import (
	"net/http"

	"xoadvisor/models"
	"xoadvisor/services/admin"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AdminHandler encapsulates the admin console operations. Routes using it
// sit behind middleware.RequireAdmin.
type AdminHandler struct {
	Service admin.AdminService
}

// NewAdminHandler creates a new AdminHandler.
func NewAdminHandler(s admin.AdminService) *AdminHandler {
	return &AdminHandler{Service: s}
}

// ListResourcesHandler returns every resource, inactive ones included.
func (h *AdminHandler) ListResourcesHandler(c *gin.Context) {
	resources, err := h.Service.ListAllResources(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resources)
}

// CreateResourceHandler handles POST /api/admin/resources.
func (h *AdminHandler) CreateResourceHandler(c *gin.Context) {
	var draft models.ResourceDraft
	if err := c.ShouldBindJSON(&draft); err != nil {
		badRequest(c, err)
		return
	}
	draft.ID = ""
	res, err := h.Service.SaveResource(c.Request.Context(), draft)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, res)
}

// UpdateResourceHandler handles PUT /api/admin/resources/:id.
func (h *AdminHandler) UpdateResourceHandler(c *gin.Context) {
	var draft models.ResourceDraft
	if err := c.ShouldBindJSON(&draft); err != nil {
		badRequest(c, err)
		return
	}
	draft.ID = c.Param("id")
	res, err := h.Service.SaveResource(c.Request.Context(), draft)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// DeleteResourceHandler handles DELETE /api/admin/resources/:id.
func (h *AdminHandler) DeleteResourceHandler(c *gin.Context) {
	id := c.Param("id")
	if err := h.Service.DeleteResource(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	getLogger(c).Info("Admin deleted resource", zap.String("resourceID", id))
	c.JSON(http.StatusOK, gin.H{"message": "Resource deleted"})
}

// ListProfilesHandler returns all profiles with sensitive fields redacted.
func (h *AdminHandler) ListProfilesHandler(c *gin.Context) {
	profiles, err := h.Service.ListProfiles(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, profiles)
}

// OverviewHandler handles GET /api/admin/overview.
func (h *AdminHandler) OverviewHandler(c *gin.Context) {
	overview, err := h.Service.Overview(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, overview)
}
