package model

import "time"

// Attendance status values (hadir, sakit, izin, alpa).
const (
	AttendancePresent = "H"
	AttendanceSick    = "S"
	AttendanceExcused = "I"
	AttendanceAbsent  = "A"
)

// ValidAttendanceStatus reports whether s is a supported status code.
func ValidAttendanceStatus(s string) bool {
	switch s {
	case AttendancePresent, AttendanceSick, AttendanceExcused, AttendanceAbsent:
		return true
	}
	return false
}

// Attendance maps table attendance (absensi). One row per
// (student, subject, date, teacher); posting the same tuple again
// updates status and notes instead of inserting a duplicate.
type Attendance struct {
	AttendanceID string    `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"attendance_id"`
	StudentID    string    `gorm:"type:uuid;not null"                             json:"student_id"`
	SubjectID    string    `gorm:"type:uuid;not null"                             json:"subject_id"`
	TeacherID    string    `gorm:"type:uuid;not null"                             json:"teacher_id"`
	Date         time.Time `gorm:"type:date;not null"                             json:"date"`
	Status       string    `gorm:"type:varchar(1);not null"                       json:"status"`
	Notes        string    `gorm:"type:varchar(255)"                              json:"notes,omitempty"`
	BaseModel

	Student *Student `gorm:"foreignKey:StudentID;references:StudentID" json:"student,omitempty"`
	Subject *Subject `gorm:"foreignKey:SubjectID;references:SubjectID" json:"subject,omitempty"`
}

func (Attendance) TableName() string { return "attendance" }
