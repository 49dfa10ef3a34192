package repository

import (
	"context"

	"gorm.io/gorm"

	"siakad/backend/internal/model"
)

// ClassFilter narrows List queries.
type ClassFilter struct {
	Level   int
	Keyword string
	Offset  int
	Limit   int
}

// ClassRepository is the class data-access interface.
type ClassRepository interface {
	Create(ctx context.Context, class *model.Class) error
	GetByID(ctx context.Context, id string) (*model.Class, error)
	GetByName(ctx context.Context, name string) (*model.Class, error)
	Update(ctx context.Context, class *model.Class) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, f ClassFilter) ([]model.Class, int64, error)
	ListAll(ctx context.Context) ([]model.Class, error)
	ReplaceSubjects(ctx context.Context, class *model.Class, subjects []model.Subject) error
}

type classRepo struct {
	db *gorm.DB
}

// NewClassRepo builds the GORM-backed ClassRepository.
func NewClassRepo(db *gorm.DB) ClassRepository {
	return &classRepo{db: db}
}

func (r *classRepo) Create(ctx context.Context, class *model.Class) error {
	return r.db.WithContext(ctx).Create(class).Error
}

func (r *classRepo) GetByID(ctx context.Context, id string) (*model.Class, error) {
	var class model.Class
	err := r.db.WithContext(ctx).
		Preload("HomeroomTeacher").
		Preload("Subjects").
		Where("class_id = ?", id).
		First(&class).Error
	if err != nil {
		return nil, err
	}
	return &class, nil
}

func (r *classRepo) GetByName(ctx context.Context, name string) (*model.Class, error) {
	var class model.Class
	err := r.db.WithContext(ctx).
		Where("LOWER(name) = LOWER(?)", name).
		First(&class).Error
	if err != nil {
		return nil, err
	}
	return &class, nil
}

func (r *classRepo) Update(ctx context.Context, class *model.Class) error {
	return r.db.WithContext(ctx).Save(class).Error
}

func (r *classRepo) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).
		Where("class_id = ?", id).
		Delete(&model.Class{}).Error
}

func (r *classRepo) List(ctx context.Context, f ClassFilter) ([]model.Class, int64, error) {
	var classes []model.Class
	var total int64

	db := r.db.WithContext(ctx).Model(&model.Class{})
	if f.Level > 0 {
		db = db.Where("level = ?", f.Level)
	}
	if f.Keyword != "" {
		db = db.Where("name ILIKE ?", "%"+f.Keyword+"%")
	}

	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	if err := db.Preload("HomeroomTeacher").
		Offset(f.Offset).Limit(f.Limit).
		Order("level ASC, name ASC").
		Find(&classes).Error; err != nil {
		return nil, 0, err
	}
	return classes, total, nil
}

func (r *classRepo) ListAll(ctx context.Context) ([]model.Class, error) {
	var classes []model.Class
	err := r.db.WithContext(ctx).
		Order("level ASC, name ASC").
		Find(&classes).Error
	return classes, err
}

func (r *classRepo) ReplaceSubjects(ctx context.Context, class *model.Class, subjects []model.Subject) error {
	return r.db.WithContext(ctx).
		Model(class).
		Association("Subjects").
		Replace(subjects)
}
