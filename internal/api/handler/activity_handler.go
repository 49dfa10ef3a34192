package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"siakad/backend/internal/dto"
	"siakad/backend/internal/service"
	"siakad/backend/pkg/response"
)

// ActivityHandler serves class activities (kegiatan kelas).
type ActivityHandler struct {
	activitySvc service.ActivityService
	teacherSvc  service.TeacherService
}

// NewActivityHandler creates an ActivityHandler.
func NewActivityHandler(activitySvc service.ActivityService, teacherSvc service.TeacherService) *ActivityHandler {
	return &ActivityHandler{activitySvc: activitySvc, teacherSvc: teacherSvc}
}

// Create adds an activity. An empty target list means the whole class.
// POST /api/v1/activities
func (h *ActivityHandler) Create(c *gin.Context) {
	teacherID, ok := resolveTeacherID(c, h.teacherSvc)
	if !ok {
		return
	}
	if teacherID == "" {
		response.Forbidden(c, 10003, "Hanya guru yang dapat membuat kegiatan")
		return
	}

	var req dto.CreateActivityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "Validasi parameter gagal")
		return
	}

	activity, err := h.activitySvc.Create(c.Request.Context(), teacherID, &req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Created(c, activity)
}

// GetByID returns one activity.
// GET /api/v1/activities/:id
func (h *ActivityHandler) GetByID(c *gin.Context) {
	activity, err := h.activitySvc.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.OK(c, activity)
}

// List pages through activities.
// GET /api/v1/activities
func (h *ActivityHandler) List(c *gin.Context) {
	var req dto.ActivityListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, 10001, "Validasi parameter gagal")
		return
	}

	activities, total, err := h.activitySvc.List(c.Request.Context(), &req)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OKPage(c, activities, total, req.GetPage(), req.GetPageSize())
}

// Update patches an activity (owner only).
// PATCH /api/v1/activities/:id
func (h *ActivityHandler) Update(c *gin.Context) {
	teacherID, ok := resolveTeacherID(c, h.teacherSvc)
	if !ok {
		return
	}
	if teacherID == "" {
		response.Forbidden(c, 10003, "Hanya guru yang dapat mengubah kegiatan")
		return
	}

	var req dto.UpdateActivityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "Validasi parameter gagal")
		return
	}

	activity, err := h.activitySvc.Update(c.Request.Context(), teacherID, c.Param("id"), &req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.OK(c, activity)
}

// Delete removes an activity. Admins may delete any, teachers only
// their own.
// DELETE /api/v1/activities/:id
func (h *ActivityHandler) Delete(c *gin.Context) {
	teacherID, ok := resolveTeacherID(c, h.teacherSvc)
	if !ok {
		return
	}

	if err := h.activitySvc.Delete(c.Request.Context(), teacherID, c.Param("id")); err != nil {
		h.handleError(c, err)
		return
	}

	response.OK(c, nil)
}

func (h *ActivityHandler) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrActivityNotFound):
		response.NotFound(c, 22001, "Kegiatan tidak ditemukan")
	case errors.Is(err, service.ErrNotActivityOwner):
		response.Forbidden(c, 22002, "Bukan pembuat kegiatan")
	case errors.Is(err, service.ErrTargetNotInClass):
		response.BadRequest(c, 22003, "Siswa target tidak terdaftar di kelas tersebut")
	case errors.Is(err, service.ErrClassNotFound):
		response.BadRequest(c, 15001, "Kelas tidak ditemukan")
	case errors.Is(err, service.ErrSubjectNotFound):
		response.BadRequest(c, 14003, "Mata pelajaran tidak ditemukan")
	case errors.Is(err, service.ErrInvalidDate):
		response.BadRequest(c, 19001, "Tanggal tidak valid")
	default:
		response.InternalError(c)
	}
}
