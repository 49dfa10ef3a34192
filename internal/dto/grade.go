package dto

// ── Grade DTOs ──

// GradeListRequest filters GET /grades.
type GradeListRequest struct {
	PaginationRequest
	StudentID  string `form:"student_id"  binding:"omitempty,uuid"`
	ClassID    string `form:"class_id"    binding:"omitempty,uuid"`
	SubjectID  string `form:"subject_id"  binding:"omitempty,uuid"`
	SemesterID string `form:"semester_id" binding:"omitempty,uuid"`
	Kind       string `form:"kind"        binding:"omitempty,oneof=tugas ulangan uts uas"`
}

// CreateGradeRequest records one score.
type CreateGradeRequest struct {
	StudentID  string  `json:"student_id"  binding:"required,uuid"`
	SubjectID  string  `json:"subject_id"  binding:"required,uuid"`
	SemesterID string  `json:"semester_id" binding:"required,uuid"`
	Kind       string  `json:"kind"        binding:"required,oneof=tugas ulangan uts uas"`
	Score      float64 `json:"score"       binding:"min=0,max=100"`
	Notes      string  `json:"notes"       binding:"omitempty,max=255"`
}

// UpdateGradeRequest patches a score. Nil fields stay untouched.
type UpdateGradeRequest struct {
	Kind  *string  `json:"kind"  binding:"omitempty,oneof=tugas ulangan uts uas"`
	Score *float64 `json:"score" binding:"omitempty,min=0,max=100"`
	Notes *string  `json:"notes" binding:"omitempty,max=255"`
}

// ── Responses ──

// GradeResponse is one recorded score.
type GradeResponse struct {
	ID        string         `json:"id"`
	Student   *StudentBrief  `json:"student,omitempty"`
	Subject   *SubjectBrief  `json:"subject,omitempty"`
	Semester  *SemesterBrief `json:"semester,omitempty"`
	TeacherID string         `json:"teacher_id"`
	Kind      string         `json:"kind"`
	Score     float64        `json:"score"`
	Notes     string         `json:"notes,omitempty"`
	CreatedAt string         `json:"created_at"`
}

// GradeSummaryRow aggregates one subject's scores for a student.
type GradeSummaryRow struct {
	Subject    SubjectBrief `json:"subject"`
	Assignment float64      `json:"assignment"` // tugas average
	Quiz       float64      `json:"quiz"`       // ulangan average
	Midterm    float64      `json:"midterm"`    // uts
	Final      float64      `json:"final"`      // uas
	Average    float64      `json:"average"`
}

// GradeSummaryResponse is a student's per-subject report for a semester.
type GradeSummaryResponse struct {
	Student  StudentBrief      `json:"student"`
	Semester SemesterBrief     `json:"semester"`
	Rows     []GradeSummaryRow `json:"rows"`
}
