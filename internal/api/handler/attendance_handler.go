package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"siakad/backend/internal/dto"
	"siakad/backend/internal/service"
	"siakad/backend/pkg/response"
)

// AttendanceHandler serves attendance recording and recaps.
type AttendanceHandler struct {
	attendanceSvc service.AttendanceService
	teacherSvc    service.TeacherService
}

// NewAttendanceHandler creates an AttendanceHandler.
func NewAttendanceHandler(attendanceSvc service.AttendanceService, teacherSvc service.TeacherService) *AttendanceHandler {
	return &AttendanceHandler{attendanceSvc: attendanceSvc, teacherSvc: teacherSvc}
}

// Record writes one student's attendance. Re-posting the same
// (student, subject, date) updates the existing row; the response's
// action field says which happened.
// POST /api/v1/attendance
func (h *AttendanceHandler) Record(c *gin.Context) {
	teacherID, ok := resolveTeacherID(c, h.teacherSvc)
	if !ok {
		return
	}

	var req dto.RecordAttendanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "Validasi parameter gagal")
		return
	}

	result, err := h.attendanceSvc.Record(c.Request.Context(), teacherID, &req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.OK(c, result)
}

// RecordBulk writes one class sitting in a single transaction.
// POST /api/v1/attendance/bulk
func (h *AttendanceHandler) RecordBulk(c *gin.Context) {
	teacherID, ok := resolveTeacherID(c, h.teacherSvc)
	if !ok {
		return
	}

	var req dto.BulkAttendanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "Validasi parameter gagal")
		return
	}

	result, err := h.attendanceSvc.RecordBulk(c.Request.Context(), teacherID, &req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.OK(c, result)
}

// List pages through attendance rows.
// GET /api/v1/attendance
func (h *AttendanceHandler) List(c *gin.Context) {
	var req dto.AttendanceListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, 10001, "Validasi parameter gagal")
		return
	}

	rows, total, err := h.attendanceSvc.List(c.Request.Context(), &req)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OKPage(c, rows, total, req.GetPage(), req.GetPageSize())
}

// Recap totals each student's H/S/I/A over a date range.
// GET /api/v1/attendance/recap
func (h *AttendanceHandler) Recap(c *gin.Context) {
	var req dto.RecapRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, 10001, "Validasi parameter gagal")
		return
	}

	result, err := h.attendanceSvc.Recap(c.Request.Context(), &req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.OK(c, result)
}

func (h *AttendanceHandler) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrStudentNotFound):
		response.BadRequest(c, 13001, "Siswa tidak ditemukan")
	case errors.Is(err, service.ErrSubjectNotFound):
		response.BadRequest(c, 14003, "Mata pelajaran tidak ditemukan")
	case errors.Is(err, service.ErrClassNotFound):
		response.BadRequest(c, 15001, "Kelas tidak ditemukan")
	case errors.Is(err, service.ErrInvalidDate):
		response.BadRequest(c, 19001, "Tanggal tidak valid")
	case errors.Is(err, service.ErrAttendanceInvalidRange):
		response.BadRequest(c, 19002, "Rentang tanggal tidak valid")
	default:
		response.InternalError(c)
	}
}
