package repository

import (
	"context"

	"gorm.io/gorm"

	"siakad/backend/internal/model"
)

// LessonPlanFilter narrows List queries.
type LessonPlanFilter struct {
	TeacherID  string
	SubjectID  string
	ClassID    string
	SemesterID string
	Status     string
	Offset     int
	Limit      int
}

// LessonPlanRepository is the lesson-plan data-access interface.
type LessonPlanRepository interface {
	Create(ctx context.Context, plan *model.LessonPlan) error
	GetByID(ctx context.Context, id string) (*model.LessonPlan, error)
	Update(ctx context.Context, plan *model.LessonPlan) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, f LessonPlanFilter) ([]model.LessonPlan, int64, error)
}

type lessonPlanRepo struct {
	db *gorm.DB
}

// NewLessonPlanRepo builds the GORM-backed LessonPlanRepository.
func NewLessonPlanRepo(db *gorm.DB) LessonPlanRepository {
	return &lessonPlanRepo{db: db}
}

func (r *lessonPlanRepo) Create(ctx context.Context, plan *model.LessonPlan) error {
	return r.db.WithContext(ctx).Create(plan).Error
}

func (r *lessonPlanRepo) GetByID(ctx context.Context, id string) (*model.LessonPlan, error) {
	var plan model.LessonPlan
	err := r.db.WithContext(ctx).
		Preload("Teacher").
		Preload("Subject").
		Preload("Class").
		Where("lesson_plan_id = ?", id).
		First(&plan).Error
	if err != nil {
		return nil, err
	}
	return &plan, nil
}

func (r *lessonPlanRepo) Update(ctx context.Context, plan *model.LessonPlan) error {
	return r.db.WithContext(ctx).Save(plan).Error
}

func (r *lessonPlanRepo) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).
		Where("lesson_plan_id = ?", id).
		Delete(&model.LessonPlan{}).Error
}

func (r *lessonPlanRepo) List(ctx context.Context, f LessonPlanFilter) ([]model.LessonPlan, int64, error) {
	var plans []model.LessonPlan
	var total int64

	db := r.db.WithContext(ctx).Model(&model.LessonPlan{})
	if f.TeacherID != "" {
		db = db.Where("teacher_id = ?", f.TeacherID)
	}
	if f.SubjectID != "" {
		db = db.Where("subject_id = ?", f.SubjectID)
	}
	if f.ClassID != "" {
		db = db.Where("class_id = ?", f.ClassID)
	}
	if f.SemesterID != "" {
		db = db.Where("semester_id = ?", f.SemesterID)
	}
	if f.Status != "" {
		db = db.Where("status = ?", f.Status)
	}

	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	if err := db.Preload("Teacher").
		Preload("Subject").
		Preload("Class").
		Offset(f.Offset).Limit(f.Limit).
		Order("created_at DESC").
		Find(&plans).Error; err != nil {
		return nil, 0, err
	}
	return plans, total, nil
}
