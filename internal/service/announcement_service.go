package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"siakad/backend/internal/dto"
	"siakad/backend/internal/model"
	"siakad/backend/internal/notifier"
	"siakad/backend/internal/repository"
)

var (
	ErrAnnouncementNotFound  = errors.New("pengumuman tidak ditemukan")
	ErrAlreadyPublished      = errors.New("pengumuman sudah dipublikasikan")
	ErrClassAudienceNeedsRef = errors.New("audiens kelas memerlukan class_id")
)

// AnnouncementService manages announcements. Publishing stamps the time
// and enqueues a push-notification job.
type AnnouncementService interface {
	Create(ctx context.Context, authorID string, req *dto.CreateAnnouncementRequest) (*dto.AnnouncementResponse, error)
	GetByID(ctx context.Context, id string) (*dto.AnnouncementResponse, error)
	List(ctx context.Context, req *dto.AnnouncementListRequest) ([]dto.AnnouncementResponse, int64, error)
	Update(ctx context.Context, id string, req *dto.UpdateAnnouncementRequest) (*dto.AnnouncementResponse, error)
	Delete(ctx context.Context, id string) error
	Publish(ctx context.Context, id string) (*dto.AnnouncementResponse, error)
}

type announcementService struct {
	repo   *repository.Repository
	push   notifier.Notifier
	logger *zap.Logger
}

// NewAnnouncementService wires the announcement service.
func NewAnnouncementService(repo *repository.Repository, push notifier.Notifier, logger *zap.Logger) AnnouncementService {
	return &announcementService{repo: repo, push: push, logger: logger}
}

func (s *announcementService) Create(ctx context.Context, authorID string, req *dto.CreateAnnouncementRequest) (*dto.AnnouncementResponse, error) {
	a := &model.Announcement{
		Title:    req.Title,
		Body:     req.Body,
		Audience: req.Audience,
	}
	if authorID != "" {
		a.CreatedBy = &authorID
	}

	if req.Audience == model.AudienceClass {
		if req.ClassID == "" {
			return nil, ErrClassAudienceNeedsRef
		}
		if _, err := s.repo.Class.GetByID(ctx, req.ClassID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrClassNotFound
			}
			return nil, err
		}
		a.ClassID = &req.ClassID
	}

	if err := s.repo.Announcement.Create(ctx, a); err != nil {
		s.logger.Error("gagal membuat pengumuman", zap.Error(err))
		return nil, err
	}

	resp := toAnnouncementResponse(a)
	return &resp, nil
}

func (s *announcementService) GetByID(ctx context.Context, id string) (*dto.AnnouncementResponse, error) {
	a, err := s.repo.Announcement.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAnnouncementNotFound
		}
		return nil, err
	}
	resp := toAnnouncementResponse(a)
	return &resp, nil
}

func (s *announcementService) List(ctx context.Context, req *dto.AnnouncementListRequest) ([]dto.AnnouncementResponse, int64, error) {
	list, total, err := s.repo.Announcement.List(ctx, repository.AnnouncementFilter{
		Audience:  req.Audience,
		Published: req.Published,
		Offset:    req.GetOffset(),
		Limit:     req.GetPageSize(),
	})
	if err != nil {
		s.logger.Error("gagal list pengumuman", zap.Error(err))
		return nil, 0, err
	}

	out := make([]dto.AnnouncementResponse, len(list))
	for i := range list {
		out[i] = toAnnouncementResponse(&list[i])
	}
	return out, total, nil
}

func (s *announcementService) Update(ctx context.Context, id string, req *dto.UpdateAnnouncementRequest) (*dto.AnnouncementResponse, error) {
	a, err := s.repo.Announcement.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAnnouncementNotFound
		}
		return nil, err
	}
	if a.PublishedAt != nil {
		return nil, ErrAlreadyPublished
	}

	if req.Title != nil {
		a.Title = *req.Title
	}
	if req.Body != nil {
		a.Body = *req.Body
	}
	if req.Audience != nil {
		a.Audience = *req.Audience
	}
	if req.ClassID != nil {
		if *req.ClassID == "" {
			a.ClassID = nil
		} else {
			if _, err := s.repo.Class.GetByID(ctx, *req.ClassID); err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return nil, ErrClassNotFound
				}
				return nil, err
			}
			a.ClassID = req.ClassID
		}
	}
	if a.Audience == model.AudienceClass && a.ClassID == nil {
		return nil, ErrClassAudienceNeedsRef
	}

	if err := s.repo.Announcement.Update(ctx, a); err != nil {
		s.logger.Error("gagal update pengumuman", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	resp := toAnnouncementResponse(a)
	return &resp, nil
}

func (s *announcementService) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.Announcement.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrAnnouncementNotFound
		}
		return err
	}
	return s.repo.Announcement.Delete(ctx, id)
}

// Publish stamps the publication time and enqueues the push job. A
// failed enqueue does not unpublish; the worker can drain later.
func (s *announcementService) Publish(ctx context.Context, id string) (*dto.AnnouncementResponse, error) {
	a, err := s.repo.Announcement.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAnnouncementNotFound
		}
		return nil, err
	}
	if a.PublishedAt != nil {
		return nil, ErrAlreadyPublished
	}

	now := time.Now()
	a.PublishedAt = &now
	if err := s.repo.Announcement.Update(ctx, a); err != nil {
		s.logger.Error("gagal publish pengumuman", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	if err := s.push.PublishAnnouncement(ctx, a); err != nil {
		s.logger.Warn("pengumuman terbit tanpa push", zap.String("id", id), zap.Error(err))
	}

	resp := toAnnouncementResponse(a)
	return &resp, nil
}
