package repository

import (
	"context"

	"gorm.io/gorm"

	"siakad/backend/internal/model"
)

// ActivityFilter narrows List queries.
type ActivityFilter struct {
	ClassID   string
	TeacherID string
	SubjectID string
	Offset    int
	Limit     int
}

// ActivityRepository is the class-activity data-access interface.
type ActivityRepository interface {
	Create(ctx context.Context, activity *model.ClassActivity) error
	GetByID(ctx context.Context, id string) (*model.ClassActivity, error)
	Update(ctx context.Context, activity *model.ClassActivity) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, f ActivityFilter) ([]model.ClassActivity, int64, error)
}

type activityRepo struct {
	db *gorm.DB
}

// NewActivityRepo builds the GORM-backed ActivityRepository.
func NewActivityRepo(db *gorm.DB) ActivityRepository {
	return &activityRepo{db: db}
}

func (r *activityRepo) Create(ctx context.Context, activity *model.ClassActivity) error {
	return r.db.WithContext(ctx).Create(activity).Error
}

func (r *activityRepo) GetByID(ctx context.Context, id string) (*model.ClassActivity, error) {
	var activity model.ClassActivity
	err := r.db.WithContext(ctx).
		Preload("Class").
		Preload("Teacher").
		Where("activity_id = ?", id).
		First(&activity).Error
	if err != nil {
		return nil, err
	}
	return &activity, nil
}

func (r *activityRepo) Update(ctx context.Context, activity *model.ClassActivity) error {
	return r.db.WithContext(ctx).Save(activity).Error
}

func (r *activityRepo) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).
		Where("activity_id = ?", id).
		Delete(&model.ClassActivity{}).Error
}

func (r *activityRepo) List(ctx context.Context, f ActivityFilter) ([]model.ClassActivity, int64, error) {
	var activities []model.ClassActivity
	var total int64

	db := r.db.WithContext(ctx).Model(&model.ClassActivity{})
	if f.ClassID != "" {
		db = db.Where("class_id = ?", f.ClassID)
	}
	if f.TeacherID != "" {
		db = db.Where("teacher_id = ?", f.TeacherID)
	}
	if f.SubjectID != "" {
		db = db.Where("subject_id = ?", f.SubjectID)
	}

	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	if err := db.Preload("Class").
		Preload("Teacher").
		Offset(f.Offset).Limit(f.Limit).
		Order("created_at DESC").
		Find(&activities).Error; err != nil {
		return nil, 0, err
	}
	return activities, total, nil
}
