package dto

// ── Semester and period DTOs ──

// CreateSemesterRequest creates one semester.
type CreateSemesterRequest struct {
	Name         string `json:"name"          binding:"required,oneof=Ganjil Genap"`
	AcademicYear string `json:"academic_year" binding:"required,len=9"` // "2024/2025"
}

// UpdateSemesterRequest patches a semester. Nil fields stay untouched.
type UpdateSemesterRequest struct {
	Name         *string `json:"name"          binding:"omitempty,oneof=Ganjil Genap"`
	AcademicYear *string `json:"academic_year" binding:"omitempty,len=9"`
}

// SemesterResponse is the full semester view.
type SemesterResponse struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	AcademicYear string `json:"academic_year"`
	IsActive     bool   `json:"is_active"`
	CreatedAt    string `json:"created_at"`
}

// SemesterBrief is the embedded semester view used by other modules.
type SemesterBrief struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	AcademicYear string `json:"academic_year"`
}

// CreatePeriodRequest creates one teaching period (jam pelajaran).
type CreatePeriodRequest struct {
	Number    int    `json:"number"     binding:"required,min=1,max=12"`
	StartTime string `json:"start_time" binding:"required,len=5"` // "07:00"
	EndTime   string `json:"end_time"   binding:"required,len=5"`
}

// UpdatePeriodRequest patches a period. Nil fields stay untouched.
type UpdatePeriodRequest struct {
	Number    *int    `json:"number"     binding:"omitempty,min=1,max=12"`
	StartTime *string `json:"start_time" binding:"omitempty,len=5"`
	EndTime   *string `json:"end_time"   binding:"omitempty,len=5"`
}

// PeriodResponse is the full period view.
type PeriodResponse struct {
	ID        string `json:"id"`
	Number    int    `json:"number"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
}

// PeriodBrief is the embedded period view used by schedules.
type PeriodBrief struct {
	ID        string `json:"id"`
	Number    int    `json:"number"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
}
