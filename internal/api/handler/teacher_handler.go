package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"siakad/backend/internal/dto"
	"siakad/backend/internal/service"
	"siakad/backend/pkg/response"
)

// TeacherHandler serves teacher records and the teacher Excel import.
type TeacherHandler struct {
	teacherSvc service.TeacherService
}

// NewTeacherHandler creates a TeacherHandler.
func NewTeacherHandler(teacherSvc service.TeacherService) *TeacherHandler {
	return &TeacherHandler{teacherSvc: teacherSvc}
}

// Create registers one teacher.
// POST /api/v1/teachers
func (h *TeacherHandler) Create(c *gin.Context) {
	var req dto.CreateTeacherRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "Validasi parameter gagal")
		return
	}

	teacher, err := h.teacherSvc.Create(c.Request.Context(), &req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Created(c, teacher)
}

// GetByID returns one teacher.
// GET /api/v1/teachers/:id
func (h *TeacherHandler) GetByID(c *gin.Context) {
	teacher, err := h.teacherSvc.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.OK(c, teacher)
}

// List pages through teachers.
// GET /api/v1/teachers
func (h *TeacherHandler) List(c *gin.Context) {
	var req dto.TeacherListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, 10001, "Validasi parameter gagal")
		return
	}

	teachers, total, err := h.teacherSvc.List(c.Request.Context(), &req)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OKPage(c, teachers, total, req.GetPage(), req.GetPageSize())
}

// Update patches a teacher.
// PATCH /api/v1/teachers/:id
func (h *TeacherHandler) Update(c *gin.Context) {
	var req dto.UpdateTeacherRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "Validasi parameter gagal")
		return
	}

	teacher, err := h.teacherSvc.Update(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.OK(c, teacher)
}

// Delete removes a teacher.
// DELETE /api/v1/teachers/:id
func (h *TeacherHandler) Delete(c *gin.Context) {
	if err := h.teacherSvc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.handleError(c, err)
		return
	}

	response.OK(c, nil)
}

// Import ingests an Excel sheet of teachers.
// POST /api/v1/teachers/import, multipart field "file"
func (h *TeacherHandler) Import(c *gin.Context) {
	file, _, err := c.Request.FormFile("file")
	if err != nil {
		response.BadRequest(c, 14004, "Berkas Excel tidak ditemukan pada field 'file'")
		return
	}
	defer file.Close()

	result, err := h.teacherSvc.Import(c.Request.Context(), file)
	if err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, 14005, "Impor gagal", err.Error())
		return
	}

	response.OK(c, result)
}

func (h *TeacherHandler) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrTeacherNotFound):
		response.NotFound(c, 14001, "Guru tidak ditemukan")
	case errors.Is(err, service.ErrNIPExists):
		response.BadRequest(c, 14002, "NIP sudah terdaftar")
	case errors.Is(err, service.ErrSubjectNotFound):
		response.BadRequest(c, 14003, "Mata pelajaran tidak ditemukan")
	case errors.Is(err, service.ErrEmailExists):
		response.BadRequest(c, 12002, "Email sudah terdaftar")
	default:
		response.InternalError(c)
	}
}
