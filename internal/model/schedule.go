package model

// Day-of-week values for Schedule.DayOfWeek (1=Senin .. 6=Sabtu).
var DayNames = map[int]string{
	1: "Senin",
	2: "Selasa",
	3: "Rabu",
	4: "Kamis",
	5: "Jumat",
	6: "Sabtu",
}

// Schedule maps table schedules (jadwal mengajar). The slot
// (day_of_week, period, semester, academic_year) must be unique per
// teacher and per class; partial unique indexes guard both.
type Schedule struct {
	ScheduleID   string `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"schedule_id"`
	TeacherID    string `gorm:"type:uuid;not null"                             json:"teacher_id"`
	ClassID      string `gorm:"type:uuid;not null"                             json:"class_id"`
	SubjectID    string `gorm:"type:uuid;not null"                             json:"subject_id"`
	DayOfWeek    int    `gorm:"type:smallint;not null"                         json:"day_of_week"`
	PeriodID     string `gorm:"type:uuid;not null"                             json:"period_id"`
	SemesterID   string `gorm:"type:uuid;not null"                             json:"semester_id"`
	AcademicYear string `gorm:"type:varchar(9);not null"                       json:"academic_year"`
	Version      int    `gorm:"not null;default:1"                             json:"version"`
	SoftDeleteModel

	Teacher  *Teacher  `gorm:"foreignKey:TeacherID;references:TeacherID"    json:"teacher,omitempty"`
	Class    *Class    `gorm:"foreignKey:ClassID;references:ClassID"        json:"class,omitempty"`
	Subject  *Subject  `gorm:"foreignKey:SubjectID;references:SubjectID"    json:"subject,omitempty"`
	Period   *Period   `gorm:"foreignKey:PeriodID;references:PeriodID"      json:"period,omitempty"`
	Semester *Semester `gorm:"foreignKey:SemesterID;references:SemesterID"  json:"semester,omitempty"`
}

func (Schedule) TableName() string { return "schedules" }
