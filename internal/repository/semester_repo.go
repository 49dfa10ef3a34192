package repository

import (
	"context"

	"gorm.io/gorm"

	"siakad/backend/internal/model"
)

// SemesterRepository is the semester data-access interface.
type SemesterRepository interface {
	Create(ctx context.Context, semester *model.Semester) error
	GetByID(ctx context.Context, id string) (*model.Semester, error)
	GetActive(ctx context.Context) (*model.Semester, error)
	Update(ctx context.Context, semester *model.Semester) error
	Delete(ctx context.Context, id string) error
	ListAll(ctx context.Context) ([]model.Semester, error)
	// Activate marks one semester active and every other inactive, in
	// one transaction.
	Activate(ctx context.Context, id string) error
}

type semesterRepo struct {
	db *gorm.DB
}

// NewSemesterRepo builds the GORM-backed SemesterRepository.
func NewSemesterRepo(db *gorm.DB) SemesterRepository {
	return &semesterRepo{db: db}
}

func (r *semesterRepo) Create(ctx context.Context, semester *model.Semester) error {
	return r.db.WithContext(ctx).Create(semester).Error
}

func (r *semesterRepo) GetByID(ctx context.Context, id string) (*model.Semester, error) {
	var semester model.Semester
	err := r.db.WithContext(ctx).
		Where("semester_id = ?", id).
		First(&semester).Error
	if err != nil {
		return nil, err
	}
	return &semester, nil
}

func (r *semesterRepo) GetActive(ctx context.Context) (*model.Semester, error) {
	var semester model.Semester
	err := r.db.WithContext(ctx).
		Where("is_active = TRUE").
		First(&semester).Error
	if err != nil {
		return nil, err
	}
	return &semester, nil
}

func (r *semesterRepo) Update(ctx context.Context, semester *model.Semester) error {
	return r.db.WithContext(ctx).Save(semester).Error
}

func (r *semesterRepo) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).
		Where("semester_id = ?", id).
		Delete(&model.Semester{}).Error
}

func (r *semesterRepo) ListAll(ctx context.Context) ([]model.Semester, error) {
	var semesters []model.Semester
	err := r.db.WithContext(ctx).
		Order("academic_year DESC, name ASC").
		Find(&semesters).Error
	return semesters, err
}

func (r *semesterRepo) Activate(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&model.Semester{}).
			Where("is_active = TRUE").
			Update("is_active", false).Error; err != nil {
			return err
		}
		res := tx.Model(&model.Semester{}).
			Where("semester_id = ?", id).
			Update("is_active", true)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

// PeriodRepository is the teaching-period data-access interface.
type PeriodRepository interface {
	Create(ctx context.Context, period *model.Period) error
	GetByID(ctx context.Context, id string) (*model.Period, error)
	GetByNumber(ctx context.Context, number int) (*model.Period, error)
	Update(ctx context.Context, period *model.Period) error
	Delete(ctx context.Context, id string) error
	ListAll(ctx context.Context) ([]model.Period, error)
}

type periodRepo struct {
	db *gorm.DB
}

// NewPeriodRepo builds the GORM-backed PeriodRepository.
func NewPeriodRepo(db *gorm.DB) PeriodRepository {
	return &periodRepo{db: db}
}

func (r *periodRepo) Create(ctx context.Context, period *model.Period) error {
	return r.db.WithContext(ctx).Create(period).Error
}

func (r *periodRepo) GetByID(ctx context.Context, id string) (*model.Period, error) {
	var period model.Period
	err := r.db.WithContext(ctx).
		Where("period_id = ?", id).
		First(&period).Error
	if err != nil {
		return nil, err
	}
	return &period, nil
}

func (r *periodRepo) GetByNumber(ctx context.Context, number int) (*model.Period, error) {
	var period model.Period
	err := r.db.WithContext(ctx).
		Where("number = ?", number).
		First(&period).Error
	if err != nil {
		return nil, err
	}
	return &period, nil
}

func (r *periodRepo) Update(ctx context.Context, period *model.Period) error {
	return r.db.WithContext(ctx).Save(period).Error
}

func (r *periodRepo) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).
		Where("period_id = ?", id).
		Delete(&model.Period{}).Error
}

func (r *periodRepo) ListAll(ctx context.Context) ([]model.Period, error) {
	var periods []model.Period
	err := r.db.WithContext(ctx).
		Order("number ASC").
		Find(&periods).Error
	return periods, err
}
