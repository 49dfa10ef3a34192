package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"siakad/backend/internal/dto"
	"siakad/backend/internal/service"
	pkgerrors "siakad/backend/pkg/errors"
	"siakad/backend/pkg/response"
)

// ScheduleHandler serves the weekly schedule and its Excel import.
type ScheduleHandler struct {
	scheduleSvc service.ScheduleService
}

// NewScheduleHandler creates a ScheduleHandler.
func NewScheduleHandler(scheduleSvc service.ScheduleService) *ScheduleHandler {
	return &ScheduleHandler{scheduleSvc: scheduleSvc}
}

// Create adds one schedule slot. Teacher and class double-bookings on
// the same (day, period, semester) are rejected with 409.
// POST /api/v1/schedules
func (h *ScheduleHandler) Create(c *gin.Context) {
	var req dto.CreateScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "Validasi parameter gagal")
		return
	}

	schedule, err := h.scheduleSvc.Create(c.Request.Context(), &req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Created(c, schedule)
}

// GetByID returns one schedule slot.
// GET /api/v1/schedules/:id
func (h *ScheduleHandler) GetByID(c *gin.Context) {
	schedule, err := h.scheduleSvc.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.OK(c, schedule)
}

// List pages through schedule slots.
// GET /api/v1/schedules
func (h *ScheduleHandler) List(c *gin.Context) {
	var req dto.ScheduleListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, 10001, "Validasi parameter gagal")
		return
	}

	schedules, total, err := h.scheduleSvc.List(c.Request.Context(), &req)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OKPage(c, schedules, total, req.GetPage(), req.GetPageSize())
}

// Update patches a schedule slot, re-running conflict checks against
// every slot except itself.
// PATCH /api/v1/schedules/:id
func (h *ScheduleHandler) Update(c *gin.Context) {
	var req dto.UpdateScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "Validasi parameter gagal")
		return
	}

	schedule, err := h.scheduleSvc.Update(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.OK(c, schedule)
}

// Delete removes a schedule slot.
// DELETE /api/v1/schedules/:id
func (h *ScheduleHandler) Delete(c *gin.Context) {
	if err := h.scheduleSvc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.handleError(c, err)
		return
	}

	response.OK(c, nil)
}

// Import ingests an Excel sheet of schedule slots.
// POST /api/v1/schedules/import, multipart field "file"
func (h *ScheduleHandler) Import(c *gin.Context) {
	file, _, err := c.Request.FormFile("file")
	if err != nil {
		response.BadRequest(c, 18004, "Berkas Excel tidak ditemukan pada field 'file'")
		return
	}
	defer file.Close()

	result, err := h.scheduleSvc.Import(c.Request.Context(), file)
	if err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, 18005, "Impor gagal", err.Error())
		return
	}

	response.OK(c, result)
}

func (h *ScheduleHandler) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrScheduleNotFound):
		response.NotFound(c, 18001, "Jadwal tidak ditemukan")
	case errors.Is(err, service.ErrTeacherConflict):
		response.Error(c, http.StatusConflict, 18002, "Guru sudah mengajar di jam tersebut")
	case errors.Is(err, service.ErrClassConflict):
		response.Error(c, http.StatusConflict, 18003, "Kelas sudah memiliki pelajaran di jam tersebut")
	case errors.Is(err, pkgerrors.ErrOptimisticLock):
		response.Error(c, http.StatusConflict, 18006, "Jadwal sudah diubah oleh proses lain, muat ulang dan coba lagi")
	case errors.Is(err, service.ErrTeacherNotFound):
		response.BadRequest(c, 14001, "Guru tidak ditemukan")
	case errors.Is(err, service.ErrClassNotFound):
		response.BadRequest(c, 15001, "Kelas tidak ditemukan")
	case errors.Is(err, service.ErrSubjectNotFound):
		response.BadRequest(c, 14003, "Mata pelajaran tidak ditemukan")
	case errors.Is(err, service.ErrSemesterNotFound):
		response.BadRequest(c, 17001, "Semester tidak ditemukan")
	case errors.Is(err, service.ErrPeriodNotFound):
		response.BadRequest(c, 17005, "Jam pelajaran tidak ditemukan")
	default:
		response.InternalError(c)
	}
}
