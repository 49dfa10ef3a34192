package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"siakad/backend/internal/dto"
	"siakad/backend/internal/service"
	"siakad/backend/pkg/response"
)

// SemesterHandler serves semester and period (jam pelajaran) management.
type SemesterHandler struct {
	semesterSvc service.SemesterService
}

// NewSemesterHandler creates a SemesterHandler.
func NewSemesterHandler(semesterSvc service.SemesterService) *SemesterHandler {
	return &SemesterHandler{semesterSvc: semesterSvc}
}

// Create adds a semester.
// POST /api/v1/semesters
func (h *SemesterHandler) Create(c *gin.Context) {
	var req dto.CreateSemesterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "Validasi parameter gagal")
		return
	}

	semester, err := h.semesterSvc.Create(c.Request.Context(), &req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Created(c, semester)
}

// GetByID returns one semester.
// GET /api/v1/semesters/:id
func (h *SemesterHandler) GetByID(c *gin.Context) {
	semester, err := h.semesterSvc.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.OK(c, semester)
}

// GetActive returns the active semester.
// GET /api/v1/semesters/active
func (h *SemesterHandler) GetActive(c *gin.Context) {
	semester, err := h.semesterSvc.GetActive(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.OK(c, semester)
}

// List returns all semesters, newest academic year first.
// GET /api/v1/semesters
func (h *SemesterHandler) List(c *gin.Context) {
	semesters, err := h.semesterSvc.List(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, semesters)
}

// Update patches a semester.
// PATCH /api/v1/semesters/:id
func (h *SemesterHandler) Update(c *gin.Context) {
	var req dto.UpdateSemesterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "Validasi parameter gagal")
		return
	}

	semester, err := h.semesterSvc.Update(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.OK(c, semester)
}

// Delete removes an inactive semester.
// DELETE /api/v1/semesters/:id
func (h *SemesterHandler) Delete(c *gin.Context) {
	if err := h.semesterSvc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.handleError(c, err)
		return
	}

	response.OK(c, nil)
}

// Activate makes a semester the active one; every other semester is
// deactivated in the same transaction.
// POST /api/v1/semesters/:id/activate
func (h *SemesterHandler) Activate(c *gin.Context) {
	semester, err := h.semesterSvc.Activate(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.OK(c, semester)
}

// CreatePeriod adds a teaching period.
// POST /api/v1/periods
func (h *SemesterHandler) CreatePeriod(c *gin.Context) {
	var req dto.CreatePeriodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "Validasi parameter gagal")
		return
	}

	period, err := h.semesterSvc.CreatePeriod(c.Request.Context(), &req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Created(c, period)
}

// ListPeriods returns the day grid, ordered by number.
// GET /api/v1/periods
func (h *SemesterHandler) ListPeriods(c *gin.Context) {
	periods, err := h.semesterSvc.ListPeriods(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, periods)
}

// UpdatePeriod patches a teaching period.
// PATCH /api/v1/periods/:id
func (h *SemesterHandler) UpdatePeriod(c *gin.Context) {
	var req dto.UpdatePeriodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "Validasi parameter gagal")
		return
	}

	period, err := h.semesterSvc.UpdatePeriod(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.OK(c, period)
}

// DeletePeriod removes a teaching period.
// DELETE /api/v1/periods/:id
func (h *SemesterHandler) DeletePeriod(c *gin.Context) {
	if err := h.semesterSvc.DeletePeriod(c.Request.Context(), c.Param("id")); err != nil {
		h.handleError(c, err)
		return
	}

	response.OK(c, nil)
}

func (h *SemesterHandler) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrSemesterNotFound):
		response.NotFound(c, 17001, "Semester tidak ditemukan")
	case errors.Is(err, service.ErrSemesterExists):
		response.BadRequest(c, 17002, "Semester sudah ada untuk tahun ajaran tersebut")
	case errors.Is(err, service.ErrNoActiveSemester):
		response.NotFound(c, 17003, "Belum ada semester aktif")
	case errors.Is(err, service.ErrSemesterActive):
		response.BadRequest(c, 17004, "Semester aktif tidak dapat dihapus")
	case errors.Is(err, service.ErrPeriodNotFound):
		response.NotFound(c, 17005, "Jam pelajaran tidak ditemukan")
	case errors.Is(err, service.ErrPeriodExists):
		response.BadRequest(c, 17006, "Nomor jam pelajaran sudah dipakai")
	default:
		response.InternalError(c)
	}
}
