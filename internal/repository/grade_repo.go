package repository

import (
	"context"

	"gorm.io/gorm"

	"siakad/backend/internal/model"
)

// GradeFilter narrows List queries.
type GradeFilter struct {
	StudentID  string
	ClassID    string
	SubjectID  string
	SemesterID string
	Kind       string
	Offset     int
	Limit      int
}

// GradeRepository is the grade data-access interface.
type GradeRepository interface {
	Create(ctx context.Context, grade *model.Grade) error
	GetByID(ctx context.Context, id string) (*model.Grade, error)
	Update(ctx context.Context, grade *model.Grade) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, f GradeFilter) ([]model.Grade, int64, error)
	// ListByStudentSemester returns every score feeding a report card.
	ListByStudentSemester(ctx context.Context, studentID, semesterID string) ([]model.Grade, error)
}

type gradeRepo struct {
	db *gorm.DB
}

// NewGradeRepo builds the GORM-backed GradeRepository.
func NewGradeRepo(db *gorm.DB) GradeRepository {
	return &gradeRepo{db: db}
}

func (r *gradeRepo) Create(ctx context.Context, grade *model.Grade) error {
	return r.db.WithContext(ctx).Create(grade).Error
}

func (r *gradeRepo) GetByID(ctx context.Context, id string) (*model.Grade, error) {
	var grade model.Grade
	err := r.db.WithContext(ctx).
		Preload("Student").
		Preload("Subject").
		Preload("Semester").
		Where("grade_id = ?", id).
		First(&grade).Error
	if err != nil {
		return nil, err
	}
	return &grade, nil
}

func (r *gradeRepo) Update(ctx context.Context, grade *model.Grade) error {
	return r.db.WithContext(ctx).Save(grade).Error
}

func (r *gradeRepo) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).
		Where("grade_id = ?", id).
		Delete(&model.Grade{}).Error
}

func (r *gradeRepo) List(ctx context.Context, f GradeFilter) ([]model.Grade, int64, error) {
	var grades []model.Grade
	var total int64

	db := r.db.WithContext(ctx).Model(&model.Grade{})
	if f.StudentID != "" {
		db = db.Where("grades.student_id = ?", f.StudentID)
	}
	if f.ClassID != "" {
		db = db.Joins("JOIN students s ON s.student_id = grades.student_id").
			Where("s.class_id = ?", f.ClassID)
	}
	if f.SubjectID != "" {
		db = db.Where("grades.subject_id = ?", f.SubjectID)
	}
	if f.SemesterID != "" {
		db = db.Where("grades.semester_id = ?", f.SemesterID)
	}
	if f.Kind != "" {
		db = db.Where("grades.kind = ?", f.Kind)
	}

	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	if err := db.Preload("Student").
		Preload("Subject").
		Preload("Semester").
		Offset(f.Offset).Limit(f.Limit).
		Order("grades.created_at DESC").
		Find(&grades).Error; err != nil {
		return nil, 0, err
	}
	return grades, total, nil
}

func (r *gradeRepo) ListByStudentSemester(ctx context.Context, studentID, semesterID string) ([]model.Grade, error) {
	var grades []model.Grade
	err := r.db.WithContext(ctx).
		Where("student_id = ? AND semester_id = ?", studentID, semesterID).
		Preload("Subject").
		Find(&grades).Error
	return grades, err
}
