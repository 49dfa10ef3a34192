package dto

// ── Announcement DTOs ──

// AnnouncementListRequest filters GET /announcements.
type AnnouncementListRequest struct {
	PaginationRequest
	Audience  string `form:"audience"  binding:"omitempty,oneof=all guru siswa kelas"`
	Published *bool  `form:"published" binding:"omitempty"`
}

// CreateAnnouncementRequest drafts an announcement. ClassID is required
// when audience is "kelas".
type CreateAnnouncementRequest struct {
	Title    string `json:"title"    binding:"required,max=200"`
	Body     string `json:"body"     binding:"required,max=10000"`
	Audience string `json:"audience" binding:"required,oneof=all guru siswa kelas"`
	ClassID  string `json:"class_id" binding:"omitempty,uuid"`
}

// UpdateAnnouncementRequest patches a draft. Nil fields stay untouched.
type UpdateAnnouncementRequest struct {
	Title    *string `json:"title"    binding:"omitempty,max=200"`
	Body     *string `json:"body"     binding:"omitempty,max=10000"`
	Audience *string `json:"audience" binding:"omitempty,oneof=all guru siswa kelas"`
	ClassID  *string `json:"class_id" binding:"omitempty,uuid"`
}

// AnnouncementResponse is the full announcement view.
type AnnouncementResponse struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Body        string `json:"body"`
	Audience    string `json:"audience"`
	ClassID     string `json:"class_id,omitempty"`
	PublishedAt string `json:"published_at,omitempty"`
	CreatedBy   string `json:"created_by,omitempty"`
	CreatedAt   string `json:"created_at"`
}
