package model

// Teacher maps table teachers (guru). NIP is the unique staff number.
type Teacher struct {
	TeacherID string  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"teacher_id"`
	NIP       string  `gorm:"type:varchar(30);not null"                      json:"nip"`
	Name      string  `gorm:"type:varchar(100);not null"                     json:"name"`
	Phone     string  `gorm:"type:varchar(20)"                               json:"phone,omitempty"`
	UserID    *string `gorm:"type:uuid"                                      json:"user_id,omitempty"`
	SoftDeleteModel

	Subjects []Subject `gorm:"many2many:teacher_subjects;foreignKey:TeacherID;joinForeignKey:TeacherID;References:SubjectID;joinReferences:SubjectID" json:"subjects,omitempty"`
}

func (Teacher) TableName() string { return "teachers" }
