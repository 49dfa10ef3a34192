package repository

import (
	"context"

	"gorm.io/gorm"

	"siakad/backend/internal/model"
)

// AnnouncementFilter narrows List queries.
type AnnouncementFilter struct {
	Audience  string
	Published *bool
	Offset    int
	Limit     int
}

// AnnouncementRepository is the announcement data-access interface.
type AnnouncementRepository interface {
	Create(ctx context.Context, a *model.Announcement) error
	GetByID(ctx context.Context, id string) (*model.Announcement, error)
	Update(ctx context.Context, a *model.Announcement) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, f AnnouncementFilter) ([]model.Announcement, int64, error)
}

type announcementRepo struct {
	db *gorm.DB
}

// NewAnnouncementRepo builds the GORM-backed AnnouncementRepository.
func NewAnnouncementRepo(db *gorm.DB) AnnouncementRepository {
	return &announcementRepo{db: db}
}

func (r *announcementRepo) Create(ctx context.Context, a *model.Announcement) error {
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *announcementRepo) GetByID(ctx context.Context, id string) (*model.Announcement, error) {
	var a model.Announcement
	err := r.db.WithContext(ctx).
		Where("announcement_id = ?", id).
		First(&a).Error
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *announcementRepo) Update(ctx context.Context, a *model.Announcement) error {
	return r.db.WithContext(ctx).Save(a).Error
}

func (r *announcementRepo) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).
		Where("announcement_id = ?", id).
		Delete(&model.Announcement{}).Error
}

func (r *announcementRepo) List(ctx context.Context, f AnnouncementFilter) ([]model.Announcement, int64, error) {
	var list []model.Announcement
	var total int64

	db := r.db.WithContext(ctx).Model(&model.Announcement{})
	if f.Audience != "" {
		db = db.Where("audience = ?", f.Audience)
	}
	if f.Published != nil {
		if *f.Published {
			db = db.Where("published_at IS NOT NULL")
		} else {
			db = db.Where("published_at IS NULL")
		}
	}

	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	if err := db.Offset(f.Offset).Limit(f.Limit).
		Order("created_at DESC").
		Find(&list).Error; err != nil {
		return nil, 0, err
	}
	return list, total, nil
}
