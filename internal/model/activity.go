package model

import "time"

// ClassActivity maps table class_activities (kegiatan kelas).
// TargetStudentIDs empty means the activity applies to the whole class.
type ClassActivity struct {
	ActivityID       string      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"activity_id"`
	ClassID          string      `gorm:"type:uuid;not null"                             json:"class_id"`
	TeacherID        string      `gorm:"type:uuid;not null"                             json:"teacher_id"`
	SubjectID        *string     `gorm:"type:uuid"                                      json:"subject_id,omitempty"`
	Title            string      `gorm:"type:varchar(200);not null"                     json:"title"`
	Description      string      `gorm:"type:text"                                      json:"description,omitempty"`
	DueDate          *time.Time  `gorm:"type:date"                                      json:"due_date,omitempty"`
	TargetStudentIDs StringArray `gorm:"type:text[]"                                    json:"target_student_ids,omitempty"`
	SoftDeleteModel

	Class   *Class   `gorm:"foreignKey:ClassID;references:ClassID"     json:"class,omitempty"`
	Teacher *Teacher `gorm:"foreignKey:TeacherID;references:TeacherID" json:"teacher,omitempty"`
}

func (ClassActivity) TableName() string { return "class_activities" }
