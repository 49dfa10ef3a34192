package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"siakad/backend/internal/dto"
	"siakad/backend/internal/service"
	"siakad/backend/pkg/response"
)

// GradeHandler serves grade recording and the per-semester summary.
type GradeHandler struct {
	gradeSvc   service.GradeService
	teacherSvc service.TeacherService
}

// NewGradeHandler creates a GradeHandler.
func NewGradeHandler(gradeSvc service.GradeService, teacherSvc service.TeacherService) *GradeHandler {
	return &GradeHandler{gradeSvc: gradeSvc, teacherSvc: teacherSvc}
}

// Create records one score.
// POST /api/v1/grades
func (h *GradeHandler) Create(c *gin.Context) {
	teacherID, ok := resolveTeacherID(c, h.teacherSvc)
	if !ok {
		return
	}

	var req dto.CreateGradeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "Validasi parameter gagal")
		return
	}

	grade, err := h.gradeSvc.Create(c.Request.Context(), teacherID, &req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Created(c, grade)
}

// GetByID returns one score.
// GET /api/v1/grades/:id
func (h *GradeHandler) GetByID(c *gin.Context) {
	grade, err := h.gradeSvc.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.OK(c, grade)
}

// List pages through scores.
// GET /api/v1/grades
func (h *GradeHandler) List(c *gin.Context) {
	var req dto.GradeListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, 10001, "Validasi parameter gagal")
		return
	}

	grades, total, err := h.gradeSvc.List(c.Request.Context(), &req)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OKPage(c, grades, total, req.GetPage(), req.GetPageSize())
}

// Update patches a score.
// PATCH /api/v1/grades/:id
func (h *GradeHandler) Update(c *gin.Context) {
	var req dto.UpdateGradeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "Validasi parameter gagal")
		return
	}

	grade, err := h.gradeSvc.Update(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.OK(c, grade)
}

// Delete removes a score.
// DELETE /api/v1/grades/:id
func (h *GradeHandler) Delete(c *gin.Context) {
	if err := h.gradeSvc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.handleError(c, err)
		return
	}

	response.OK(c, nil)
}

// Summary returns a student's weighted per-subject report.
// GET /api/v1/grades/summary?student_id=xxx&semester_id=xxx
func (h *GradeHandler) Summary(c *gin.Context) {
	studentID := c.Query("student_id")
	semesterID := c.Query("semester_id")
	if studentID == "" || semesterID == "" {
		response.BadRequest(c, 10001, "student_id dan semester_id wajib diisi")
		return
	}

	summary, err := h.gradeSvc.Summary(c.Request.Context(), studentID, semesterID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.OK(c, summary)
}

func (h *GradeHandler) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrGradeNotFound):
		response.NotFound(c, 20001, "Nilai tidak ditemukan")
	case errors.Is(err, service.ErrStudentNotFound):
		response.BadRequest(c, 13001, "Siswa tidak ditemukan")
	case errors.Is(err, service.ErrSubjectNotFound):
		response.BadRequest(c, 14003, "Mata pelajaran tidak ditemukan")
	case errors.Is(err, service.ErrSemesterNotFound):
		response.BadRequest(c, 17001, "Semester tidak ditemukan")
	default:
		response.InternalError(c)
	}
}
