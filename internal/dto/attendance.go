package dto

// ── Attendance DTOs ──

// AttendanceListRequest filters GET /attendance.
type AttendanceListRequest struct {
	PaginationRequest
	StudentID string `form:"student_id" binding:"omitempty,uuid"`
	ClassID   string `form:"class_id"   binding:"omitempty,uuid"`
	SubjectID string `form:"subject_id" binding:"omitempty,uuid"`
	DateFrom  string `form:"date_from"  binding:"omitempty,datetime=2006-01-02"`
	DateTo    string `form:"date_to"    binding:"omitempty,datetime=2006-01-02"`
	Status    string `form:"status"     binding:"omitempty,oneof=H S I A"`
}

// RecordAttendanceRequest records one student's attendance. Posting the
// same (student, subject, date) again by the same teacher updates the
// existing row.
type RecordAttendanceRequest struct {
	StudentID string `json:"student_id" binding:"required,uuid"`
	SubjectID string `json:"subject_id" binding:"required,uuid"`
	Date      string `json:"date"       binding:"required,datetime=2006-01-02"`
	Status    string `json:"status"     binding:"required,oneof=H S I A"`
	Notes     string `json:"notes"      binding:"omitempty,max=255"`
}

// BulkAttendanceRequest records a whole class sitting in one call.
type BulkAttendanceRequest struct {
	SubjectID string                `json:"subject_id" binding:"required,uuid"`
	Date      string                `json:"date"       binding:"required,datetime=2006-01-02"`
	Entries   []BulkAttendanceEntry `json:"entries"    binding:"required,min=1,dive"`
}

// BulkAttendanceEntry is one student line within a bulk request.
type BulkAttendanceEntry struct {
	StudentID string `json:"student_id" binding:"required,uuid"`
	Status    string `json:"status"     binding:"required,oneof=H S I A"`
	Notes     string `json:"notes"      binding:"omitempty,max=255"`
}

// RecapRequest filters GET /attendance/recap.
type RecapRequest struct {
	ClassID  string `form:"class_id"  binding:"required,uuid"`
	DateFrom string `form:"date_from" binding:"required,datetime=2006-01-02"`
	DateTo   string `form:"date_to"   binding:"required,datetime=2006-01-02"`
}

// ── Responses ──

// AttendanceResponse is one recorded attendance row. Action reports
// whether the write created a new row or updated an existing one.
type AttendanceResponse struct {
	ID        string        `json:"id"`
	Student   *StudentBrief `json:"student,omitempty"`
	Subject   *SubjectBrief `json:"subject,omitempty"`
	TeacherID string        `json:"teacher_id"`
	Date      string        `json:"date"`
	Status    string        `json:"status"`
	Notes     string        `json:"notes,omitempty"`
	Action    string        `json:"action,omitempty"` // "created" | "updated"
}

// BulkAttendanceResponse summarises a bulk write.
type BulkAttendanceResponse struct {
	Created int                  `json:"created"`
	Updated int                  `json:"updated"`
	Rows    []AttendanceResponse `json:"rows"`
}

// RecapRow is one student's attendance totals over the recap range.
type RecapRow struct {
	Student StudentBrief `json:"student"`
	Present int          `json:"present"` // H
	Sick    int          `json:"sick"`    // S
	Excused int          `json:"excused"` // I
	Absent  int          `json:"absent"`  // A
}

// RecapResponse is the per-class recap.
type RecapResponse struct {
	ClassID  string     `json:"class_id"`
	DateFrom string     `json:"date_from"`
	DateTo   string     `json:"date_to"`
	Rows     []RecapRow `json:"rows"`
}
