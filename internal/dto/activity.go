package dto

// ── Class activity (kegiatan kelas) DTOs ──

// ActivityListRequest filters GET /activities.
type ActivityListRequest struct {
	PaginationRequest
	ClassID   string `form:"class_id"   binding:"omitempty,uuid"`
	TeacherID string `form:"teacher_id" binding:"omitempty,uuid"`
	SubjectID string `form:"subject_id" binding:"omitempty,uuid"`
}

// CreateActivityRequest posts an activity to a class. An empty target
// list addresses every student in the class.
type CreateActivityRequest struct {
	ClassID          string   `json:"class_id"           binding:"required,uuid"`
	SubjectID        string   `json:"subject_id"         binding:"omitempty,uuid"`
	Title            string   `json:"title"              binding:"required,max=200"`
	Description      string   `json:"description"        binding:"omitempty,max=5000"`
	DueDate          string   `json:"due_date"           binding:"omitempty,datetime=2006-01-02"`
	TargetStudentIDs []string `json:"target_student_ids" binding:"omitempty,dive,uuid"`
}

// UpdateActivityRequest patches an activity. Nil fields stay untouched.
type UpdateActivityRequest struct {
	Title            *string  `json:"title"              binding:"omitempty,max=200"`
	Description      *string  `json:"description"        binding:"omitempty,max=5000"`
	DueDate          *string  `json:"due_date"           binding:"omitempty,datetime=2006-01-02"`
	TargetStudentIDs []string `json:"target_student_ids" binding:"omitempty,dive,uuid"`
}

// ActivityResponse is the full activity view.
type ActivityResponse struct {
	ID               string        `json:"id"`
	Class            *ClassBrief   `json:"class,omitempty"`
	Teacher          *TeacherBrief `json:"teacher,omitempty"`
	SubjectID        string        `json:"subject_id,omitempty"`
	Title            string        `json:"title"`
	Description      string        `json:"description,omitempty"`
	DueDate          string        `json:"due_date,omitempty"`
	TargetStudentIDs []string      `json:"target_student_ids,omitempty"`
	CreatedAt        string        `json:"created_at"`
}
