package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"siakad/backend/internal/dto"
	"siakad/backend/internal/service"
	"siakad/backend/pkg/response"
)

// AnnouncementHandler serves announcements and their publication.
type AnnouncementHandler struct {
	announcementSvc service.AnnouncementService
}

// NewAnnouncementHandler creates an AnnouncementHandler.
func NewAnnouncementHandler(announcementSvc service.AnnouncementService) *AnnouncementHandler {
	return &AnnouncementHandler{announcementSvc: announcementSvc}
}

// Create drafts an announcement.
// POST /api/v1/announcements
func (h *AnnouncementHandler) Create(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	var req dto.CreateAnnouncementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "Validasi parameter gagal")
		return
	}

	announcement, err := h.announcementSvc.Create(c.Request.Context(), userID, &req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Created(c, announcement)
}

// GetByID returns one announcement.
// GET /api/v1/announcements/:id
func (h *AnnouncementHandler) GetByID(c *gin.Context) {
	announcement, err := h.announcementSvc.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.OK(c, announcement)
}

// List pages through announcements.
// GET /api/v1/announcements
func (h *AnnouncementHandler) List(c *gin.Context) {
	var req dto.AnnouncementListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, 10001, "Validasi parameter gagal")
		return
	}

	announcements, total, err := h.announcementSvc.List(c.Request.Context(), &req)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OKPage(c, announcements, total, req.GetPage(), req.GetPageSize())
}

// Update edits a draft. Published announcements are immutable.
// PATCH /api/v1/announcements/:id
func (h *AnnouncementHandler) Update(c *gin.Context) {
	var req dto.UpdateAnnouncementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "Validasi parameter gagal")
		return
	}

	announcement, err := h.announcementSvc.Update(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.OK(c, announcement)
}

// Delete removes an announcement.
// DELETE /api/v1/announcements/:id
func (h *AnnouncementHandler) Delete(c *gin.Context) {
	if err := h.announcementSvc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.handleError(c, err)
		return
	}

	response.OK(c, nil)
}

// Publish stamps the publication time and enqueues the push job.
// POST /api/v1/announcements/:id/publish
func (h *AnnouncementHandler) Publish(c *gin.Context) {
	announcement, err := h.announcementSvc.Publish(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.OK(c, announcement)
}

func (h *AnnouncementHandler) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrAnnouncementNotFound):
		response.NotFound(c, 23001, "Pengumuman tidak ditemukan")
	case errors.Is(err, service.ErrAlreadyPublished):
		response.BadRequest(c, 23002, "Pengumuman sudah dipublikasikan")
	case errors.Is(err, service.ErrClassAudienceNeedsRef):
		response.BadRequest(c, 23003, "Audiens kelas memerlukan class_id")
	case errors.Is(err, service.ErrClassNotFound):
		response.BadRequest(c, 15001, "Kelas tidak ditemukan")
	default:
		response.InternalError(c)
	}
}
