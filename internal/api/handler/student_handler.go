package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"siakad/backend/internal/dto"
	"siakad/backend/internal/service"
	"siakad/backend/pkg/response"
)

// StudentHandler serves student records and the student Excel import.
type StudentHandler struct {
	studentSvc service.StudentService
}

// NewStudentHandler creates a StudentHandler.
func NewStudentHandler(studentSvc service.StudentService) *StudentHandler {
	return &StudentHandler{studentSvc: studentSvc}
}

// Create registers one student.
// POST /api/v1/students
func (h *StudentHandler) Create(c *gin.Context) {
	var req dto.CreateStudentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "Validasi parameter gagal")
		return
	}

	student, err := h.studentSvc.Create(c.Request.Context(), &req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Created(c, student)
}

// GetByID returns one student.
// GET /api/v1/students/:id
func (h *StudentHandler) GetByID(c *gin.Context) {
	student, err := h.studentSvc.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.OK(c, student)
}

// List pages through students.
// GET /api/v1/students
func (h *StudentHandler) List(c *gin.Context) {
	var req dto.StudentListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, 10001, "Validasi parameter gagal")
		return
	}

	students, total, err := h.studentSvc.List(c.Request.Context(), &req)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OKPage(c, students, total, req.GetPage(), req.GetPageSize())
}

// Update patches a student.
// PATCH /api/v1/students/:id
func (h *StudentHandler) Update(c *gin.Context) {
	var req dto.UpdateStudentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "Validasi parameter gagal")
		return
	}

	student, err := h.studentSvc.Update(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.OK(c, student)
}

// Delete removes a student.
// DELETE /api/v1/students/:id
func (h *StudentHandler) Delete(c *gin.Context) {
	if err := h.studentSvc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.handleError(c, err)
		return
	}

	response.OK(c, nil)
}

// Import ingests an Excel sheet of students.
// POST /api/v1/students/import, multipart field "file"
func (h *StudentHandler) Import(c *gin.Context) {
	file, _, err := c.Request.FormFile("file")
	if err != nil {
		response.BadRequest(c, 13004, "Berkas Excel tidak ditemukan pada field 'file'")
		return
	}
	defer file.Close()

	result, err := h.studentSvc.Import(c.Request.Context(), file)
	if err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, 13005, "Impor gagal", err.Error())
		return
	}

	response.OK(c, result)
}

func (h *StudentHandler) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrStudentNotFound):
		response.NotFound(c, 13001, "Siswa tidak ditemukan")
	case errors.Is(err, service.ErrNISExists):
		response.BadRequest(c, 13002, "NIS sudah terdaftar")
	case errors.Is(err, service.ErrClassNotFound):
		response.BadRequest(c, 13003, "Kelas tidak ditemukan")
	case errors.Is(err, service.ErrEmailExists):
		response.BadRequest(c, 12002, "Email sudah terdaftar")
	case errors.Is(err, service.ErrInvalidDate):
		response.BadRequest(c, 13006, "Tanggal tidak valid")
	default:
		response.InternalError(c)
	}
}
