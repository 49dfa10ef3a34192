package model

// Semester maps table semesters. AcademicYear uses the
// "2024/2025" form (tahun ajaran). At most one semester is active.
type Semester struct {
	SemesterID   string `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"semester_id"`
	Name         string `gorm:"type:varchar(50);not null"                      json:"name"` // Ganjil | Genap
	AcademicYear string `gorm:"type:varchar(9);not null"                       json:"academic_year"`
	IsActive     bool   `gorm:"not null;default:false"                         json:"is_active"`
	SoftDeleteModel
}

func (Semester) TableName() string { return "semesters" }

// Period maps table periods (jam pelajaran), e.g. period 1 = 07:00-07:40.
type Period struct {
	PeriodID  string `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"period_id"`
	Number    int    `gorm:"type:smallint;not null"                         json:"number"`
	StartTime string `gorm:"type:varchar(5);not null"                       json:"start_time"` // "07:00"
	EndTime   string `gorm:"type:varchar(5);not null"                       json:"end_time"`
	BaseModel
}

func (Period) TableName() string { return "periods" }
