package model

import "time"

// Student maps table students (siswa). NIS is the unique student number.
type Student struct {
	StudentID     string     `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"student_id"`
	NIS           string     `gorm:"type:varchar(30);not null"                      json:"nis"`
	Name          string     `gorm:"type:varchar(100);not null"                     json:"name"`
	Gender        string     `gorm:"type:varchar(1)"                                json:"gender,omitempty"` // L | P
	BirthDate     *time.Time `gorm:"type:date"                                      json:"birth_date,omitempty"`
	ClassID       *string    `gorm:"type:uuid"                                      json:"class_id,omitempty"`
	GuardianName  string     `gorm:"type:varchar(100)"                              json:"guardian_name,omitempty"`
	GuardianPhone string     `gorm:"type:varchar(20)"                               json:"guardian_phone,omitempty"`
	UserID        *string    `gorm:"type:uuid"                                      json:"user_id,omitempty"`
	SoftDeleteModel

	Class *Class `gorm:"foreignKey:ClassID;references:ClassID" json:"class,omitempty"`
}

func (Student) TableName() string { return "students" }
