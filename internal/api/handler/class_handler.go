package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"siakad/backend/internal/dto"
	"siakad/backend/internal/service"
	"siakad/backend/pkg/response"
)

// ClassHandler serves class (rombongan belajar) management.
type ClassHandler struct {
	classSvc service.ClassService
}

// NewClassHandler creates a ClassHandler.
func NewClassHandler(classSvc service.ClassService) *ClassHandler {
	return &ClassHandler{classSvc: classSvc}
}

// Create adds a class.
// POST /api/v1/classes
func (h *ClassHandler) Create(c *gin.Context) {
	var req dto.CreateClassRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "Validasi parameter gagal")
		return
	}

	class, err := h.classSvc.Create(c.Request.Context(), &req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Created(c, class)
}

// GetByID returns one class.
// GET /api/v1/classes/:id
func (h *ClassHandler) GetByID(c *gin.Context) {
	class, err := h.classSvc.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.OK(c, class)
}

// List pages through classes.
// GET /api/v1/classes
func (h *ClassHandler) List(c *gin.Context) {
	var req dto.ClassListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, 10001, "Validasi parameter gagal")
		return
	}

	classes, total, err := h.classSvc.List(c.Request.Context(), &req)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OKPage(c, classes, total, req.GetPage(), req.GetPageSize())
}

// Update patches a class.
// PATCH /api/v1/classes/:id
func (h *ClassHandler) Update(c *gin.Context) {
	var req dto.UpdateClassRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "Validasi parameter gagal")
		return
	}

	class, err := h.classSvc.Update(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.OK(c, class)
}

// Delete removes an empty class.
// DELETE /api/v1/classes/:id
func (h *ClassHandler) Delete(c *gin.Context) {
	if err := h.classSvc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.handleError(c, err)
		return
	}

	response.OK(c, nil)
}

// AssignSubjects replaces the class's subject list.
// PUT /api/v1/classes/:id/subjects
func (h *ClassHandler) AssignSubjects(c *gin.Context) {
	var req dto.AssignSubjectsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "Validasi parameter gagal")
		return
	}

	class, err := h.classSvc.AssignSubjects(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.OK(c, class)
}

// ListStudents returns the class roster.
// GET /api/v1/classes/:id/students
func (h *ClassHandler) ListStudents(c *gin.Context) {
	students, err := h.classSvc.ListStudents(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.OK(c, students)
}

func (h *ClassHandler) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrClassNotFound):
		response.NotFound(c, 15001, "Kelas tidak ditemukan")
	case errors.Is(err, service.ErrClassNameExists):
		response.BadRequest(c, 15002, "Nama kelas sudah dipakai")
	case errors.Is(err, service.ErrClassNotEmpty):
		response.BadRequest(c, 15003, "Kelas masih memiliki siswa")
	case errors.Is(err, service.ErrTeacherNotFound):
		response.BadRequest(c, 14001, "Guru tidak ditemukan")
	case errors.Is(err, service.ErrSubjectNotFound):
		response.BadRequest(c, 14003, "Mata pelajaran tidak ditemukan")
	default:
		response.InternalError(c)
	}
}
