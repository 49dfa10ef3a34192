package dto

// ── Class DTOs ──

// ClassListRequest filters GET /classes.
type ClassListRequest struct {
	PaginationRequest
	Level   int    `form:"level"   binding:"omitempty,min=1,max=12"`
	Keyword string `form:"keyword" binding:"omitempty,max=50"`
}

// CreateClassRequest creates one class.
type CreateClassRequest struct {
	Name              string `json:"name"                binding:"required,max=20"`
	Level             int    `json:"level"               binding:"required,min=1,max=12"`
	HomeroomTeacherID string `json:"homeroom_teacher_id" binding:"omitempty,uuid"`
}

// UpdateClassRequest patches a class. Nil fields stay untouched.
type UpdateClassRequest struct {
	Name              *string `json:"name"                binding:"omitempty,max=20"`
	Level             *int    `json:"level"               binding:"omitempty,min=1,max=12"`
	HomeroomTeacherID *string `json:"homeroom_teacher_id" binding:"omitempty,uuid"`
}

// AssignSubjectsRequest replaces a class's subject list.
type AssignSubjectsRequest struct {
	SubjectIDs []string `json:"subject_ids" binding:"required,dive,uuid"`
}

// ── Responses ──

// ClassResponse is the full class view.
type ClassResponse struct {
	ID              string         `json:"id"`
	Name            string         `json:"name"`
	Level           int            `json:"level"`
	HomeroomTeacher *TeacherBrief  `json:"homeroom_teacher,omitempty"`
	Subjects        []SubjectBrief `json:"subjects,omitempty"`
	StudentCount    int            `json:"student_count"`
	CreatedAt       string         `json:"created_at"`
}

// ClassBrief is the embedded class view used by other modules.
type ClassBrief struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Level int    `json:"level"`
}
