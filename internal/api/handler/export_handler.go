package handler

import (
	"errors"
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"

	"siakad/backend/internal/service"
	"siakad/backend/pkg/response"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ExportHandler serves Excel and ICS downloads.
type ExportHandler struct {
	exportSvc service.ExportService
}

// NewExportHandler creates an ExportHandler.
func NewExportHandler(exportSvc service.ExportService) *ExportHandler {
	return &ExportHandler{exportSvc: exportSvc}
}

// Students downloads a class roster as Excel.
// GET /api/v1/export/students?class_id=xxx
func (h *ExportHandler) Students(c *gin.Context) {
	classID := c.Query("class_id")
	if classID == "" {
		response.BadRequest(c, 10001, "class_id wajib diisi")
		return
	}

	buf, filename, err := h.exportSvc.StudentsXLSX(c.Request.Context(), classID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	writeXLSX(c, filename, buf.Bytes())
}

// Teachers downloads the staff list as Excel.
// GET /api/v1/export/teachers
func (h *ExportHandler) Teachers(c *gin.Context) {
	buf, filename, err := h.exportSvc.TeachersXLSX(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	writeXLSX(c, filename, buf.Bytes())
}

// Grades downloads a class's scores for one semester as Excel.
// GET /api/v1/export/grades?class_id=xxx&semester_id=xxx
func (h *ExportHandler) Grades(c *gin.Context) {
	classID := c.Query("class_id")
	if classID == "" {
		response.BadRequest(c, 10001, "class_id wajib diisi")
		return
	}

	buf, filename, err := h.exportSvc.GradesXLSX(c.Request.Context(), classID, c.Query("semester_id"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	writeXLSX(c, filename, buf.Bytes())
}

// Schedule downloads a class's weekly schedule grid as Excel.
// GET /api/v1/export/schedule?class_id=xxx&semester_id=xxx
func (h *ExportHandler) Schedule(c *gin.Context) {
	classID := c.Query("class_id")
	if classID == "" {
		response.BadRequest(c, 10001, "class_id wajib diisi")
		return
	}

	buf, filename, err := h.exportSvc.ScheduleXLSX(c.Request.Context(), classID, c.Query("semester_id"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	writeXLSX(c, filename, buf.Bytes())
}

// Recap downloads an attendance recap as Excel.
// GET /api/v1/export/attendance-recap?class_id=xxx&date_from=xxx&date_to=xxx
func (h *ExportHandler) Recap(c *gin.Context) {
	classID := c.Query("class_id")
	dateFrom := c.Query("date_from")
	dateTo := c.Query("date_to")
	if classID == "" || dateFrom == "" || dateTo == "" {
		response.BadRequest(c, 10001, "class_id, date_from dan date_to wajib diisi")
		return
	}

	buf, filename, err := h.exportSvc.RecapXLSX(c.Request.Context(), classID, dateFrom, dateTo)
	if err != nil {
		h.handleError(c, err)
		return
	}

	writeXLSX(c, filename, buf.Bytes())
}

// ScheduleICS downloads a class's weekly schedule as an iCalendar feed.
// GET /api/v1/export/schedule.ics?class_id=xxx&semester_id=xxx
func (h *ExportHandler) ScheduleICS(c *gin.Context) {
	classID := c.Query("class_id")
	if classID == "" {
		response.BadRequest(c, 10001, "class_id wajib diisi")
		return
	}

	ics, filename, err := h.exportSvc.ScheduleICS(c.Request.Context(), classID, c.Query("semester_id"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	encodedFilename := url.QueryEscape(filename)
	c.Header("Content-Description", "File Transfer")
	c.Header("Content-Disposition", "attachment; filename*=UTF-8''"+encodedFilename)
	c.Data(http.StatusOK, "text/calendar; charset=utf-8", []byte(ics))
}

func writeXLSX(c *gin.Context, filename string, data []byte) {
	encodedFilename := url.QueryEscape(filename)
	c.Header("Content-Description", "File Transfer")
	c.Header("Content-Disposition", "attachment; filename*=UTF-8''"+encodedFilename)
	c.Header("Content-Type", xlsxContentType)
	c.Data(http.StatusOK, xlsxContentType, data)
}

func (h *ExportHandler) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrExportNoData):
		response.NotFound(c, 24001, "Tidak ada data untuk diekspor")
	case errors.Is(err, service.ErrExportGenerateFailed):
		response.InternalError(c)
	case errors.Is(err, service.ErrClassNotFound):
		response.BadRequest(c, 15001, "Kelas tidak ditemukan")
	case errors.Is(err, service.ErrAttendanceInvalidRange):
		response.BadRequest(c, 19002, "Rentang tanggal tidak valid")
	case errors.Is(err, service.ErrNoActiveSemester):
		response.NotFound(c, 17003, "Belum ada semester aktif")
	default:
		response.InternalError(c)
	}
}
