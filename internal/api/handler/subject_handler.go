package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"siakad/backend/internal/dto"
	"siakad/backend/internal/service"
	"siakad/backend/pkg/response"
)

// SubjectHandler serves subject (mata pelajaran) management.
type SubjectHandler struct {
	subjectSvc service.SubjectService
}

// NewSubjectHandler creates a SubjectHandler.
func NewSubjectHandler(subjectSvc service.SubjectService) *SubjectHandler {
	return &SubjectHandler{subjectSvc: subjectSvc}
}

// Create adds a subject.
// POST /api/v1/subjects
func (h *SubjectHandler) Create(c *gin.Context) {
	var req dto.CreateSubjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "Validasi parameter gagal")
		return
	}

	subject, err := h.subjectSvc.Create(c.Request.Context(), &req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Created(c, subject)
}

// GetByID returns one subject.
// GET /api/v1/subjects/:id
func (h *SubjectHandler) GetByID(c *gin.Context) {
	subject, err := h.subjectSvc.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.OK(c, subject)
}

// List pages through subjects.
// GET /api/v1/subjects
func (h *SubjectHandler) List(c *gin.Context) {
	var req dto.SubjectListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, 10001, "Validasi parameter gagal")
		return
	}

	subjects, total, err := h.subjectSvc.List(c.Request.Context(), &req)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OKPage(c, subjects, total, req.GetPage(), req.GetPageSize())
}

// Update patches a subject.
// PATCH /api/v1/subjects/:id
func (h *SubjectHandler) Update(c *gin.Context) {
	var req dto.UpdateSubjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "Validasi parameter gagal")
		return
	}

	subject, err := h.subjectSvc.Update(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.OK(c, subject)
}

// Delete removes a subject.
// DELETE /api/v1/subjects/:id
func (h *SubjectHandler) Delete(c *gin.Context) {
	if err := h.subjectSvc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.handleError(c, err)
		return
	}

	response.OK(c, nil)
}

func (h *SubjectHandler) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrSubjectNotFound):
		response.NotFound(c, 14003, "Mata pelajaran tidak ditemukan")
	case errors.Is(err, service.ErrSubjectCodeExists):
		response.BadRequest(c, 16001, "Kode mata pelajaran sudah dipakai")
	default:
		response.InternalError(c)
	}
}
