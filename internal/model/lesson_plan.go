package model

import "time"

// Lesson plan (RPP) review states.
const (
	LessonPlanPending  = "pending"
	LessonPlanApproved = "approved"
	LessonPlanRejected = "rejected"
)

// LessonPlan maps table lesson_plans (RPP). Subject to an admin
// approval workflow: pending → approved | rejected.
type LessonPlan struct {
	LessonPlanID string     `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"lesson_plan_id"`
	TeacherID    string     `gorm:"type:uuid;not null"                             json:"teacher_id"`
	SubjectID    string     `gorm:"type:uuid;not null"                             json:"subject_id"`
	ClassID      string     `gorm:"type:uuid;not null"                             json:"class_id"`
	SemesterID   string     `gorm:"type:uuid;not null"                             json:"semester_id"`
	Title        string     `gorm:"type:varchar(200);not null"                     json:"title"`
	FileURL      string     `gorm:"type:varchar(500)"                              json:"file_url,omitempty"`
	Status       string     `gorm:"type:varchar(20);not null;default:'pending'"    json:"status"`
	ReviewNote   string     `gorm:"type:varchar(500)"                              json:"review_note,omitempty"`
	ReviewedBy   *string    `gorm:"type:uuid"                                      json:"reviewed_by,omitempty"`
	ReviewedAt   *time.Time `json:"reviewed_at,omitempty"`
	SoftDeleteModel

	Teacher *Teacher `gorm:"foreignKey:TeacherID;references:TeacherID" json:"teacher,omitempty"`
	Subject *Subject `gorm:"foreignKey:SubjectID;references:SubjectID" json:"subject,omitempty"`
	Class   *Class   `gorm:"foreignKey:ClassID;references:ClassID"     json:"class,omitempty"`
}

func (LessonPlan) TableName() string { return "lesson_plans" }
