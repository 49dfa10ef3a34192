package dto

// ── Schedule DTOs ──

// ScheduleListRequest filters GET /schedules.
type ScheduleListRequest struct {
	PaginationRequest
	TeacherID    string `form:"teacher_id"    binding:"omitempty,uuid"`
	ClassID      string `form:"class_id"      binding:"omitempty,uuid"`
	SubjectID    string `form:"subject_id"    binding:"omitempty,uuid"`
	SemesterID   string `form:"semester_id"   binding:"omitempty,uuid"`
	DayOfWeek    int    `form:"day_of_week"   binding:"omitempty,min=1,max=6"`
	AcademicYear string `form:"academic_year" binding:"omitempty,len=9"`
}

// CreateScheduleRequest creates one teaching slot.
type CreateScheduleRequest struct {
	TeacherID    string `json:"teacher_id"    binding:"required,uuid"`
	ClassID      string `json:"class_id"      binding:"required,uuid"`
	SubjectID    string `json:"subject_id"    binding:"required,uuid"`
	DayOfWeek    int    `json:"day_of_week"   binding:"required,min=1,max=6"`
	PeriodID     string `json:"period_id"     binding:"required,uuid"`
	SemesterID   string `json:"semester_id"   binding:"required,uuid"`
	AcademicYear string `json:"academic_year" binding:"required,len=9"`
}

// UpdateScheduleRequest patches a slot. Nil fields stay untouched;
// conflict checks rerun against the merged slot.
type UpdateScheduleRequest struct {
	TeacherID *string `json:"teacher_id"  binding:"omitempty,uuid"`
	ClassID   *string `json:"class_id"    binding:"omitempty,uuid"`
	SubjectID *string `json:"subject_id"  binding:"omitempty,uuid"`
	DayOfWeek *int    `json:"day_of_week" binding:"omitempty,min=1,max=6"`
	PeriodID  *string `json:"period_id"   binding:"omitempty,uuid"`
}

// ── Responses ──

// ScheduleResponse is the full slot view.
type ScheduleResponse struct {
	ID           string         `json:"id"`
	Teacher      *TeacherBrief  `json:"teacher,omitempty"`
	Class        *ClassBrief    `json:"class,omitempty"`
	Subject      *SubjectBrief  `json:"subject,omitempty"`
	DayOfWeek    int            `json:"day_of_week"`
	DayName      string         `json:"day_name"`
	Period       *PeriodBrief   `json:"period,omitempty"`
	Semester     *SemesterBrief `json:"semester,omitempty"`
	AcademicYear string         `json:"academic_year"`
	CreatedAt    string         `json:"created_at"`
}

// ScheduleConflictError describes which dimension collided.
type ScheduleConflictError struct {
	Dimension string `json:"dimension"` // "teacher" | "class"
	Message   string `json:"message"`
}
