package handlers

import (
	"net/http"

	"xoadvisor/middleware"
	"xoadvisor/models"
	"xoadvisor/services/inquiry"

	"github.com/gin-gonic/gin"
)

// InquiryHandler serves the contact form and inquiry tracking.
type InquiryHandler struct {
	Service inquiry.InquiryService
}

func NewInquiryHandler(s inquiry.InquiryService) *InquiryHandler {
	return &InquiryHandler{Service: s}
}

// SubmitInquiryHandler handles POST /api/inquiries for guests and users.
func (h *InquiryHandler) SubmitInquiryHandler(c *gin.Context) {
	var req models.InquiryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	in, err := h.Service.Submit(c.Request.Context(), middleware.GetSession(c), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"message": "Thank you for contacting us. We will get back to you soon.",
		"inquiry": in,
	})
}

// ListMyInquiriesHandler handles GET /api/inquiries/mine.
func (h *InquiryHandler) ListMyInquiriesHandler(c *gin.Context) {
	inquiries, err := h.Service.ListMine(c.Request.Context(), middleware.GetSession(c).UserID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, inquiries)
}

// ListAllInquiriesHandler handles GET /api/admin/inquiries.
func (h *InquiryHandler) ListAllInquiriesHandler(c *gin.Context) {
	inquiries, err := h.Service.ListAll(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, inquiries)
}

// SetInquiryStatusHandler handles PATCH /api/admin/inquiries/:id/status.
func (h *InquiryHandler) SetInquiryStatusHandler(c *gin.Context) {
	var req models.StatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	id := c.Param("id")
	if err := h.Service.SetStatus(c.Request.Context(), id, req.Status); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": id, "status": req.Status})
}
