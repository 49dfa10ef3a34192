package repository

import (
	"context"

	"gorm.io/gorm"

	"siakad/backend/internal/model"
)

// StudentFilter narrows List queries.
type StudentFilter struct {
	ClassID string
	Keyword string // matches name or NIS
	Offset  int
	Limit   int
}

// StudentRepository is the student data-access interface.
type StudentRepository interface {
	Create(ctx context.Context, student *model.Student) error
	GetByID(ctx context.Context, id string) (*model.Student, error)
	GetByNIS(ctx context.Context, nis string) (*model.Student, error)
	GetByUserID(ctx context.Context, userID string) (*model.Student, error)
	Update(ctx context.Context, student *model.Student) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, f StudentFilter) ([]model.Student, int64, error)
	ListByClass(ctx context.Context, classID string) ([]model.Student, error)
	CountByClass(ctx context.Context, classID string) (int64, error)
}

type studentRepo struct {
	db *gorm.DB
}

// NewStudentRepo builds the GORM-backed StudentRepository.
func NewStudentRepo(db *gorm.DB) StudentRepository {
	return &studentRepo{db: db}
}

func (r *studentRepo) Create(ctx context.Context, student *model.Student) error {
	return r.db.WithContext(ctx).Create(student).Error
}

func (r *studentRepo) GetByID(ctx context.Context, id string) (*model.Student, error) {
	var student model.Student
	err := r.db.WithContext(ctx).
		Preload("Class").
		Where("student_id = ?", id).
		First(&student).Error
	if err != nil {
		return nil, err
	}
	return &student, nil
}

func (r *studentRepo) GetByNIS(ctx context.Context, nis string) (*model.Student, error) {
	var student model.Student
	err := r.db.WithContext(ctx).
		Where("nis = ?", nis).
		First(&student).Error
	if err != nil {
		return nil, err
	}
	return &student, nil
}

func (r *studentRepo) GetByUserID(ctx context.Context, userID string) (*model.Student, error) {
	var student model.Student
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&student).Error
	if err != nil {
		return nil, err
	}
	return &student, nil
}

func (r *studentRepo) Update(ctx context.Context, student *model.Student) error {
	return r.db.WithContext(ctx).Save(student).Error
}

func (r *studentRepo) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).
		Where("student_id = ?", id).
		Delete(&model.Student{}).Error
}

func (r *studentRepo) List(ctx context.Context, f StudentFilter) ([]model.Student, int64, error) {
	var students []model.Student
	var total int64

	db := r.db.WithContext(ctx).Model(&model.Student{})
	if f.ClassID != "" {
		db = db.Where("class_id = ?", f.ClassID)
	}
	if f.Keyword != "" {
		kw := "%" + f.Keyword + "%"
		db = db.Where("name ILIKE ? OR nis ILIKE ?", kw, kw)
	}

	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	if err := db.Preload("Class").
		Offset(f.Offset).Limit(f.Limit).
		Order("name ASC").
		Find(&students).Error; err != nil {
		return nil, 0, err
	}
	return students, total, nil
}

func (r *studentRepo) ListByClass(ctx context.Context, classID string) ([]model.Student, error) {
	var students []model.Student
	err := r.db.WithContext(ctx).
		Where("class_id = ?", classID).
		Order("name ASC").
		Find(&students).Error
	return students, err
}

func (r *studentRepo) CountByClass(ctx context.Context, classID string) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).
		Model(&model.Student{}).
		Where("class_id = ?", classID).
		Count(&total).Error
	return total, err
}
