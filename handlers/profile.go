package handlers

import (
	"net/http"

	"xoadvisor/middleware"
	"xoadvisor/models"
	"xoadvisor/services/inquiry"
	"xoadvisor/services/profile"

	"github.com/gin-gonic/gin"
)

// ProfileHandler serves the signed-in user's profile and dashboard.
type ProfileHandler struct {
	Profiles  profile.ProfileService
	Inquiries inquiry.InquiryService
}

func NewProfileHandler(ps profile.ProfileService, is inquiry.InquiryService) *ProfileHandler {
	return &ProfileHandler{Profiles: ps, Inquiries: is}
}

// GetProfileHandler handles GET /api/profile.
func (h *ProfileHandler) GetProfileHandler(c *gin.Context) {
	p, err := h.Profiles.Load(c.Request.Context(), middleware.GetSession(c).UserID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

// UpdateProfileHandler handles PATCH /api/profile. Only the submitted keys
// are written.
func (h *ProfileHandler) UpdateProfileHandler(c *gin.Context) {
	var update models.ProfileUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		badRequest(c, err)
		return
	}
	p, err := h.Profiles.Save(c.Request.Context(), middleware.GetSession(c).UserID, update)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

// SaveNeedsHandler handles PUT /api/profile/needs.
func (h *ProfileHandler) SaveNeedsHandler(c *gin.Context) {
	var req models.NeedsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	p, err := h.Profiles.SaveNeeds(c.Request.Context(), middleware.GetSession(c).UserID, req.Needs)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

// ToggleNeedHandler handles POST /api/profile/needs/:need/toggle.
func (h *ProfileHandler) ToggleNeedHandler(c *gin.Context) {
	p, err := h.Profiles.ToggleNeed(c.Request.Context(), middleware.GetSession(c).UserID, c.Param("need"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

// DashboardHandler handles GET /api/dashboard.
func (h *ProfileHandler) DashboardHandler(c *gin.Context) {
	ctx := c.Request.Context()
	userID := middleware.GetSession(c).UserID

	p, err := h.Profiles.Load(ctx, userID)
	if err != nil {
		respondError(c, err)
		return
	}
	inquiries, err := h.Inquiries.ListMine(ctx, userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.Dashboard{Profile: p, Inquiries: inquiries})
}
