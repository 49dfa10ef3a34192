package dto

// ── Teacher DTOs ──

// TeacherListRequest filters GET /teachers.
type TeacherListRequest struct {
	PaginationRequest
	SubjectID string `form:"subject_id" binding:"omitempty,uuid"`
	Keyword   string `form:"keyword"    binding:"omitempty,max=100"` // matches name or NIP
}

// CreateTeacherRequest registers one teacher.
type CreateTeacherRequest struct {
	NIP        string   `json:"nip"         binding:"required,max=30"`
	Name       string   `json:"name"        binding:"required,min=2,max=100"`
	Phone      string   `json:"phone"       binding:"omitempty,max=20"`
	Email      string   `json:"email"       binding:"omitempty,email"` // provisions a login account
	SubjectIDs []string `json:"subject_ids" binding:"omitempty,dive,uuid"`
}

// UpdateTeacherRequest patches a teacher. Nil fields stay untouched.
type UpdateTeacherRequest struct {
	Name       *string  `json:"name"        binding:"omitempty,min=2,max=100"`
	Phone      *string  `json:"phone"       binding:"omitempty,max=20"`
	SubjectIDs []string `json:"subject_ids" binding:"omitempty,dive,uuid"`
}

// ── Responses ──

// TeacherResponse is the full teacher view.
type TeacherResponse struct {
	ID        string         `json:"id"`
	NIP       string         `json:"nip"`
	Name      string         `json:"name"`
	Phone     string         `json:"phone,omitempty"`
	UserID    string         `json:"user_id,omitempty"`
	Subjects  []SubjectBrief `json:"subjects,omitempty"`
	CreatedAt string         `json:"created_at"`
}

// TeacherBrief is the embedded teacher view used by other modules.
type TeacherBrief struct {
	ID   string `json:"id"`
	NIP  string `json:"nip"`
	Name string `json:"name"`
}
