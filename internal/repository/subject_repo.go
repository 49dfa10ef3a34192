package repository

import (
	"context"

	"gorm.io/gorm"

	"siakad/backend/internal/model"
)

// SubjectFilter narrows List queries.
type SubjectFilter struct {
	Keyword string
	Offset  int
	Limit   int
}

// SubjectRepository is the subject data-access interface.
type SubjectRepository interface {
	Create(ctx context.Context, subject *model.Subject) error
	GetByID(ctx context.Context, id string) (*model.Subject, error)
	GetByCode(ctx context.Context, code string) (*model.Subject, error)
	GetByName(ctx context.Context, name string) (*model.Subject, error)
	GetByIDs(ctx context.Context, ids []string) ([]model.Subject, error)
	Update(ctx context.Context, subject *model.Subject) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, f SubjectFilter) ([]model.Subject, int64, error)
	ListAll(ctx context.Context) ([]model.Subject, error)
}

type subjectRepo struct {
	db *gorm.DB
}

// NewSubjectRepo builds the GORM-backed SubjectRepository.
func NewSubjectRepo(db *gorm.DB) SubjectRepository {
	return &subjectRepo{db: db}
}

func (r *subjectRepo) Create(ctx context.Context, subject *model.Subject) error {
	return r.db.WithContext(ctx).Create(subject).Error
}

func (r *subjectRepo) GetByID(ctx context.Context, id string) (*model.Subject, error) {
	var subject model.Subject
	err := r.db.WithContext(ctx).
		Where("subject_id = ?", id).
		First(&subject).Error
	if err != nil {
		return nil, err
	}
	return &subject, nil
}

func (r *subjectRepo) GetByCode(ctx context.Context, code string) (*model.Subject, error) {
	var subject model.Subject
	err := r.db.WithContext(ctx).
		Where("LOWER(code) = LOWER(?)", code).
		First(&subject).Error
	if err != nil {
		return nil, err
	}
	return &subject, nil
}

func (r *subjectRepo) GetByName(ctx context.Context, name string) (*model.Subject, error) {
	var subject model.Subject
	err := r.db.WithContext(ctx).
		Where("LOWER(name) = LOWER(?)", name).
		First(&subject).Error
	if err != nil {
		return nil, err
	}
	return &subject, nil
}

func (r *subjectRepo) GetByIDs(ctx context.Context, ids []string) ([]model.Subject, error) {
	var subjects []model.Subject
	err := r.db.WithContext(ctx).
		Where("subject_id IN ?", ids).
		Find(&subjects).Error
	return subjects, err
}

func (r *subjectRepo) Update(ctx context.Context, subject *model.Subject) error {
	return r.db.WithContext(ctx).Save(subject).Error
}

func (r *subjectRepo) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).
		Where("subject_id = ?", id).
		Delete(&model.Subject{}).Error
}

func (r *subjectRepo) List(ctx context.Context, f SubjectFilter) ([]model.Subject, int64, error) {
	var subjects []model.Subject
	var total int64

	db := r.db.WithContext(ctx).Model(&model.Subject{})
	if f.Keyword != "" {
		kw := "%" + f.Keyword + "%"
		db = db.Where("name ILIKE ? OR code ILIKE ?", kw, kw)
	}

	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	if err := db.Offset(f.Offset).Limit(f.Limit).
		Order("code ASC").
		Find(&subjects).Error; err != nil {
		return nil, 0, err
	}
	return subjects, total, nil
}

func (r *subjectRepo) ListAll(ctx context.Context) ([]model.Subject, error) {
	var subjects []model.Subject
	err := r.db.WithContext(ctx).
		Order("code ASC").
		Find(&subjects).Error
	return subjects, err
}
