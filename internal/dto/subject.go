package dto

// ── Subject DTOs ──

// SubjectListRequest filters GET /subjects.
type SubjectListRequest struct {
	PaginationRequest
	Keyword string `form:"keyword" binding:"omitempty,max=100"`
}

// CreateSubjectRequest creates one subject.
type CreateSubjectRequest struct {
	Code string `json:"code" binding:"required,max=20"`
	Name string `json:"name" binding:"required,max=100"`
}

// UpdateSubjectRequest patches a subject. Nil fields stay untouched.
type UpdateSubjectRequest struct {
	Code *string `json:"code" binding:"omitempty,max=20"`
	Name *string `json:"name" binding:"omitempty,max=100"`
}

// SubjectResponse is the full subject view.
type SubjectResponse struct {
	ID        string `json:"id"`
	Code      string `json:"code"`
	Name      string `json:"name"`
	CreatedAt string `json:"created_at"`
}

// SubjectBrief is the embedded subject view used by other modules.
type SubjectBrief struct {
	ID   string `json:"id"`
	Code string `json:"code"`
	Name string `json:"name"`
}
