package model

// Class maps table classes (kelas), e.g. "7A". One homeroom teacher
// (wali kelas) per class.
type Class struct {
	ClassID           string  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"class_id"`
	Name              string  `gorm:"type:varchar(20);not null"                      json:"name"`
	Level             int     `gorm:"type:smallint;not null"                         json:"level"`
	HomeroomTeacherID *string `gorm:"type:uuid"                                      json:"homeroom_teacher_id,omitempty"`
	SoftDeleteModel

	HomeroomTeacher *Teacher  `gorm:"foreignKey:HomeroomTeacherID;references:TeacherID" json:"homeroom_teacher,omitempty"`
	Subjects        []Subject `gorm:"many2many:class_subjects;foreignKey:ClassID;joinForeignKey:ClassID;References:SubjectID;joinReferences:SubjectID" json:"subjects,omitempty"`
}

func (Class) TableName() string { return "classes" }
