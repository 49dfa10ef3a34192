package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"siakad/backend/internal/dto"
	"siakad/backend/internal/service"
	"siakad/backend/pkg/response"
)

// LessonPlanHandler serves RPP submissions and their review workflow.
type LessonPlanHandler struct {
	planSvc    service.LessonPlanService
	teacherSvc service.TeacherService
}

// NewLessonPlanHandler creates a LessonPlanHandler.
func NewLessonPlanHandler(planSvc service.LessonPlanService, teacherSvc service.TeacherService) *LessonPlanHandler {
	return &LessonPlanHandler{planSvc: planSvc, teacherSvc: teacherSvc}
}

// Create submits an RPP for review.
// POST /api/v1/lesson-plans
func (h *LessonPlanHandler) Create(c *gin.Context) {
	teacherID, ok := resolveTeacherID(c, h.teacherSvc)
	if !ok {
		return
	}
	if teacherID == "" {
		response.Forbidden(c, 10003, "Hanya guru yang dapat mengajukan RPP")
		return
	}

	var req dto.CreateLessonPlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "Validasi parameter gagal")
		return
	}

	plan, err := h.planSvc.Create(c.Request.Context(), teacherID, &req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Created(c, plan)
}

// GetByID returns one RPP.
// GET /api/v1/lesson-plans/:id
func (h *LessonPlanHandler) GetByID(c *gin.Context) {
	plan, err := h.planSvc.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.OK(c, plan)
}

// List pages through RPPs.
// GET /api/v1/lesson-plans
func (h *LessonPlanHandler) List(c *gin.Context) {
	var req dto.LessonPlanListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, 10001, "Validasi parameter gagal")
		return
	}

	plans, total, err := h.planSvc.List(c.Request.Context(), &req)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OKPage(c, plans, total, req.GetPage(), req.GetPageSize())
}

// Update edits an RPP; any edit sends it back through review.
// PATCH /api/v1/lesson-plans/:id
func (h *LessonPlanHandler) Update(c *gin.Context) {
	teacherID, ok := resolveTeacherID(c, h.teacherSvc)
	if !ok {
		return
	}
	if teacherID == "" {
		response.Forbidden(c, 10003, "Hanya guru yang dapat mengubah RPP")
		return
	}

	var req dto.UpdateLessonPlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "Validasi parameter gagal")
		return
	}

	plan, err := h.planSvc.Update(c.Request.Context(), teacherID, c.Param("id"), &req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.OK(c, plan)
}

// Delete removes an RPP. Admins may delete any plan, teachers only
// their own.
// DELETE /api/v1/lesson-plans/:id
func (h *LessonPlanHandler) Delete(c *gin.Context) {
	teacherID, ok := resolveTeacherID(c, h.teacherSvc)
	if !ok {
		return
	}

	if err := h.planSvc.Delete(c.Request.Context(), teacherID, c.Param("id")); err != nil {
		h.handleError(c, err)
		return
	}

	response.OK(c, nil)
}

// Review approves or rejects a pending RPP (admin only).
// POST /api/v1/lesson-plans/:id/review
func (h *LessonPlanHandler) Review(c *gin.Context) {
	reviewerID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	var req dto.ReviewLessonPlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "Validasi parameter gagal")
		return
	}

	plan, err := h.planSvc.Review(c.Request.Context(), reviewerID, c.Param("id"), &req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.OK(c, plan)
}

func (h *LessonPlanHandler) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrLessonPlanNotFound):
		response.NotFound(c, 21001, "RPP tidak ditemukan")
	case errors.Is(err, service.ErrNotPlanOwner):
		response.Forbidden(c, 21002, "Bukan pemilik RPP")
	case errors.Is(err, service.ErrSubjectNotFound):
		response.BadRequest(c, 14003, "Mata pelajaran tidak ditemukan")
	case errors.Is(err, service.ErrClassNotFound):
		response.BadRequest(c, 15001, "Kelas tidak ditemukan")
	case errors.Is(err, service.ErrSemesterNotFound):
		response.BadRequest(c, 17001, "Semester tidak ditemukan")
	default:
		response.InternalError(c)
	}
}
