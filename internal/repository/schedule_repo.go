package repository

import (
	"context"

	"gorm.io/gorm"

	"siakad/backend/internal/model"
	pkgerrors "siakad/backend/pkg/errors"
)

// ScheduleFilter narrows List queries.
type ScheduleFilter struct {
	TeacherID    string
	ClassID      string
	SubjectID    string
	SemesterID   string
	DayOfWeek    int
	AcademicYear string
	Offset       int
	Limit        int
}

// ConflictKey identifies one teaching slot for conflict checks.
// ExcludeID skips the slot being updated so it never collides with
// itself.
type ConflictKey struct {
	TeacherID    string
	ClassID      string
	DayOfWeek    int
	PeriodID     string
	SemesterID   string
	AcademicYear string
	ExcludeID    string
}

// ScheduleRepository is the teaching-slot data-access interface.
type ScheduleRepository interface {
	Create(ctx context.Context, schedule *model.Schedule) error
	GetByID(ctx context.Context, id string) (*model.Schedule, error)
	// Update writes the slot guarded by its version column. A copy whose
	// version no longer matches the row gets ErrOptimisticLock.
	Update(ctx context.Context, schedule *model.Schedule) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, f ScheduleFilter) ([]model.Schedule, int64, error)
	// CountTeacherConflict reports how many other slots already occupy
	// the teacher at the key's (day, period, semester, year).
	CountTeacherConflict(ctx context.Context, key ConflictKey) (int64, error)
	// CountClassConflict is the same check on the class dimension.
	CountClassConflict(ctx context.Context, key ConflictKey) (int64, error)
}

type scheduleRepo struct {
	db *gorm.DB
}

// NewScheduleRepo builds the GORM-backed ScheduleRepository.
func NewScheduleRepo(db *gorm.DB) ScheduleRepository {
	return &scheduleRepo{db: db}
}

func (r *scheduleRepo) Create(ctx context.Context, schedule *model.Schedule) error {
	return r.db.WithContext(ctx).Create(schedule).Error
}

func (r *scheduleRepo) GetByID(ctx context.Context, id string) (*model.Schedule, error) {
	var schedule model.Schedule
	err := r.db.WithContext(ctx).
		Preload("Teacher").
		Preload("Class").
		Preload("Subject").
		Preload("Period").
		Preload("Semester").
		Where("schedule_id = ?", id).
		First(&schedule).Error
	if err != nil {
		return nil, err
	}
	return &schedule, nil
}

func (r *scheduleRepo) Update(ctx context.Context, schedule *model.Schedule) error {
	oldVersion := schedule.Version
	result := r.db.WithContext(ctx).
		Model(schedule).
		Where("schedule_id = ? AND version = ?", schedule.ScheduleID, oldVersion).
		Updates(map[string]interface{}{
			"teacher_id":    schedule.TeacherID,
			"class_id":      schedule.ClassID,
			"subject_id":    schedule.SubjectID,
			"day_of_week":   schedule.DayOfWeek,
			"period_id":     schedule.PeriodID,
			"semester_id":   schedule.SemesterID,
			"academic_year": schedule.AcademicYear,
			"version":       oldVersion + 1,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return pkgerrors.ErrOptimisticLock
	}
	schedule.Version = oldVersion + 1
	return nil
}

func (r *scheduleRepo) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).
		Where("schedule_id = ?", id).
		Delete(&model.Schedule{}).Error
}

func (r *scheduleRepo) List(ctx context.Context, f ScheduleFilter) ([]model.Schedule, int64, error) {
	var schedules []model.Schedule
	var total int64

	db := r.db.WithContext(ctx).Model(&model.Schedule{})
	if f.TeacherID != "" {
		db = db.Where("teacher_id = ?", f.TeacherID)
	}
	if f.ClassID != "" {
		db = db.Where("class_id = ?", f.ClassID)
	}
	if f.SubjectID != "" {
		db = db.Where("subject_id = ?", f.SubjectID)
	}
	if f.SemesterID != "" {
		db = db.Where("semester_id = ?", f.SemesterID)
	}
	if f.DayOfWeek > 0 {
		db = db.Where("day_of_week = ?", f.DayOfWeek)
	}
	if f.AcademicYear != "" {
		db = db.Where("academic_year = ?", f.AcademicYear)
	}

	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	if err := db.Preload("Teacher").
		Preload("Class").
		Preload("Subject").
		Preload("Period").
		Preload("Semester").
		Offset(f.Offset).Limit(f.Limit).
		Order("day_of_week ASC").
		Find(&schedules).Error; err != nil {
		return nil, 0, err
	}
	return schedules, total, nil
}

func (r *scheduleRepo) CountTeacherConflict(ctx context.Context, key ConflictKey) (int64, error) {
	db := r.db.WithContext(ctx).
		Model(&model.Schedule{}).
		Where("teacher_id = ? AND day_of_week = ? AND period_id = ? AND semester_id = ? AND academic_year = ?",
			key.TeacherID, key.DayOfWeek, key.PeriodID, key.SemesterID, key.AcademicYear)
	if key.ExcludeID != "" {
		db = db.Where("schedule_id <> ?", key.ExcludeID)
	}
	var total int64
	err := db.Count(&total).Error
	return total, err
}

func (r *scheduleRepo) CountClassConflict(ctx context.Context, key ConflictKey) (int64, error) {
	db := r.db.WithContext(ctx).
		Model(&model.Schedule{}).
		Where("class_id = ? AND day_of_week = ? AND period_id = ? AND semester_id = ? AND academic_year = ?",
			key.ClassID, key.DayOfWeek, key.PeriodID, key.SemesterID, key.AcademicYear)
	if key.ExcludeID != "" {
		db = db.Where("schedule_id <> ?", key.ExcludeID)
	}
	var total int64
	err := db.Count(&total).Error
	return total, err
}
