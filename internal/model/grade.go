package model

// Grade kinds (jenis nilai).
const (
	GradeAssignment = "tugas"
	GradeQuiz       = "ulangan"
	GradeMidterm    = "uts"
	GradeFinal      = "uas"
)

// Grade maps table grades (nilai). Score is 0-100.
type Grade struct {
	GradeID    string  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"grade_id"`
	StudentID  string  `gorm:"type:uuid;not null"                             json:"student_id"`
	SubjectID  string  `gorm:"type:uuid;not null"                             json:"subject_id"`
	TeacherID  string  `gorm:"type:uuid;not null"                             json:"teacher_id"`
	SemesterID string  `gorm:"type:uuid;not null"                             json:"semester_id"`
	Kind       string  `gorm:"type:varchar(20);not null"                      json:"kind"`
	Score      float64 `gorm:"type:numeric(5,2);not null"                     json:"score"`
	Notes      string  `gorm:"type:varchar(255)"                              json:"notes,omitempty"`
	BaseModel

	Student  *Student  `gorm:"foreignKey:StudentID;references:StudentID"   json:"student,omitempty"`
	Subject  *Subject  `gorm:"foreignKey:SubjectID;references:SubjectID"   json:"subject,omitempty"`
	Semester *Semester `gorm:"foreignKey:SemesterID;references:SemesterID" json:"semester,omitempty"`
}

func (Grade) TableName() string { return "grades" }
