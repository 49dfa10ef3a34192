package dto

// ── Lesson plan (RPP) DTOs ──

// LessonPlanListRequest filters GET /lesson-plans.
type LessonPlanListRequest struct {
	PaginationRequest
	TeacherID  string `form:"teacher_id"  binding:"omitempty,uuid"`
	SubjectID  string `form:"subject_id"  binding:"omitempty,uuid"`
	ClassID    string `form:"class_id"    binding:"omitempty,uuid"`
	SemesterID string `form:"semester_id" binding:"omitempty,uuid"`
	Status     string `form:"status"      binding:"omitempty,oneof=pending approved rejected"`
}

// CreateLessonPlanRequest submits a lesson plan for review.
type CreateLessonPlanRequest struct {
	SubjectID  string `json:"subject_id"  binding:"required,uuid"`
	ClassID    string `json:"class_id"    binding:"required,uuid"`
	SemesterID string `json:"semester_id" binding:"required,uuid"`
	Title      string `json:"title"       binding:"required,max=200"`
	FileURL    string `json:"file_url"    binding:"omitempty,url,max=500"`
}

// UpdateLessonPlanRequest patches a plan. Editing a reviewed plan sends
// it back to pending.
type UpdateLessonPlanRequest struct {
	Title   *string `json:"title"    binding:"omitempty,max=200"`
	FileURL *string `json:"file_url" binding:"omitempty,url,max=500"`
}

// ReviewLessonPlanRequest records the admin decision.
type ReviewLessonPlanRequest struct {
	Status string `json:"status" binding:"required,oneof=approved rejected"`
	Note   string `json:"note"   binding:"omitempty,max=500"`
}

// LessonPlanResponse is the full plan view.
type LessonPlanResponse struct {
	ID         string         `json:"id"`
	Teacher    *TeacherBrief  `json:"teacher,omitempty"`
	Subject    *SubjectBrief  `json:"subject,omitempty"`
	Class      *ClassBrief    `json:"class,omitempty"`
	Semester   *SemesterBrief `json:"semester,omitempty"`
	Title      string         `json:"title"`
	FileURL    string         `json:"file_url,omitempty"`
	Status     string         `json:"status"`
	ReviewNote string         `json:"review_note,omitempty"`
	ReviewedBy string         `json:"reviewed_by,omitempty"`
	ReviewedAt string         `json:"reviewed_at,omitempty"`
	CreatedAt  string         `json:"created_at"`
}
