package dto

// ── Student DTOs ──

// StudentListRequest filters GET /students.
type StudentListRequest struct {
	PaginationRequest
	ClassID string `form:"class_id" binding:"omitempty,uuid"`
	Keyword string `form:"keyword"  binding:"omitempty,max=100"` // matches name or NIS
}

// CreateStudentRequest registers one student.
type CreateStudentRequest struct {
	NIS           string `json:"nis"            binding:"required,max=30"`
	Name          string `json:"name"           binding:"required,min=2,max=100"`
	Gender        string `json:"gender"         binding:"omitempty,oneof=L P"`
	BirthDate     string `json:"birth_date"     binding:"omitempty,datetime=2006-01-02"`
	ClassID       string `json:"class_id"       binding:"omitempty,uuid"`
	GuardianName  string `json:"guardian_name"  binding:"omitempty,max=100"`
	GuardianPhone string `json:"guardian_phone" binding:"omitempty,max=20"`
	Email         string `json:"email"          binding:"omitempty,email"` // provisions a login account
}

// UpdateStudentRequest patches a student. Nil fields stay untouched.
type UpdateStudentRequest struct {
	Name          *string `json:"name"           binding:"omitempty,min=2,max=100"`
	Gender        *string `json:"gender"         binding:"omitempty,oneof=L P"`
	BirthDate     *string `json:"birth_date"     binding:"omitempty,datetime=2006-01-02"`
	ClassID       *string `json:"class_id"       binding:"omitempty,uuid"`
	GuardianName  *string `json:"guardian_name"  binding:"omitempty,max=100"`
	GuardianPhone *string `json:"guardian_phone" binding:"omitempty,max=20"`
}

// ── Responses ──

// StudentResponse is the full student view.
type StudentResponse struct {
	ID            string      `json:"id"`
	NIS           string      `json:"nis"`
	Name          string      `json:"name"`
	Gender        string      `json:"gender,omitempty"`
	BirthDate     string      `json:"birth_date,omitempty"`
	ClassID       string      `json:"class_id,omitempty"`
	Class         *ClassBrief `json:"class,omitempty"`
	GuardianName  string      `json:"guardian_name,omitempty"`
	GuardianPhone string      `json:"guardian_phone,omitempty"`
	UserID        string      `json:"user_id,omitempty"`
	CreatedAt     string      `json:"created_at"`
}

// StudentBrief is the embedded student view used by other modules.
type StudentBrief struct {
	ID   string `json:"id"`
	NIS  string `json:"nis"`
	Name string `json:"name"`
}
