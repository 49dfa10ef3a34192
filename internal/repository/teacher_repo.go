package repository

import (
	"context"

	"gorm.io/gorm"

	"siakad/backend/internal/model"
)

// TeacherFilter narrows List queries.
type TeacherFilter struct {
	SubjectID string
	Keyword   string // matches name or NIP
	Offset    int
	Limit     int
}

// TeacherRepository is the teacher data-access interface.
type TeacherRepository interface {
	Create(ctx context.Context, teacher *model.Teacher) error
	GetByID(ctx context.Context, id string) (*model.Teacher, error)
	GetByNIP(ctx context.Context, nip string) (*model.Teacher, error)
	GetByUserID(ctx context.Context, userID string) (*model.Teacher, error)
	Update(ctx context.Context, teacher *model.Teacher) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, f TeacherFilter) ([]model.Teacher, int64, error)
	ReplaceSubjects(ctx context.Context, teacher *model.Teacher, subjects []model.Subject) error
}

type teacherRepo struct {
	db *gorm.DB
}

// NewTeacherRepo builds the GORM-backed TeacherRepository.
func NewTeacherRepo(db *gorm.DB) TeacherRepository {
	return &teacherRepo{db: db}
}

func (r *teacherRepo) Create(ctx context.Context, teacher *model.Teacher) error {
	return r.db.WithContext(ctx).Create(teacher).Error
}

func (r *teacherRepo) GetByID(ctx context.Context, id string) (*model.Teacher, error) {
	var teacher model.Teacher
	err := r.db.WithContext(ctx).
		Preload("Subjects").
		Where("teacher_id = ?", id).
		First(&teacher).Error
	if err != nil {
		return nil, err
	}
	return &teacher, nil
}

func (r *teacherRepo) GetByNIP(ctx context.Context, nip string) (*model.Teacher, error) {
	var teacher model.Teacher
	err := r.db.WithContext(ctx).
		Where("nip = ?", nip).
		First(&teacher).Error
	if err != nil {
		return nil, err
	}
	return &teacher, nil
}

func (r *teacherRepo) GetByUserID(ctx context.Context, userID string) (*model.Teacher, error) {
	var teacher model.Teacher
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&teacher).Error
	if err != nil {
		return nil, err
	}
	return &teacher, nil
}

func (r *teacherRepo) Update(ctx context.Context, teacher *model.Teacher) error {
	return r.db.WithContext(ctx).Save(teacher).Error
}

func (r *teacherRepo) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).
		Where("teacher_id = ?", id).
		Delete(&model.Teacher{}).Error
}

func (r *teacherRepo) List(ctx context.Context, f TeacherFilter) ([]model.Teacher, int64, error) {
	var teachers []model.Teacher
	var total int64

	db := r.db.WithContext(ctx).Model(&model.Teacher{})
	if f.SubjectID != "" {
		db = db.Joins("JOIN teacher_subjects ts ON ts.teacher_id = teachers.teacher_id").
			Where("ts.subject_id = ?", f.SubjectID)
	}
	if f.Keyword != "" {
		kw := "%" + f.Keyword + "%"
		db = db.Where("teachers.name ILIKE ? OR teachers.nip ILIKE ?", kw, kw)
	}

	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	if err := db.Preload("Subjects").
		Offset(f.Offset).Limit(f.Limit).
		Order("teachers.name ASC").
		Find(&teachers).Error; err != nil {
		return nil, 0, err
	}
	return teachers, total, nil
}

func (r *teacherRepo) ReplaceSubjects(ctx context.Context, teacher *model.Teacher, subjects []model.Subject) error {
	return r.db.WithContext(ctx).
		Model(teacher).
		Association("Subjects").
		Replace(subjects)
}
