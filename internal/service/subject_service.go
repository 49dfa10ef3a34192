package service

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"siakad/backend/internal/dto"
	"siakad/backend/internal/model"
	"siakad/backend/internal/repository"
)

var ErrSubjectCodeExists = errors.New("kode mata pelajaran sudah dipakai")

// SubjectService manages the subject catalogue.
type SubjectService interface {
	Create(ctx context.Context, req *dto.CreateSubjectRequest) (*dto.SubjectResponse, error)
	GetByID(ctx context.Context, id string) (*dto.SubjectResponse, error)
	List(ctx context.Context, req *dto.SubjectListRequest) ([]dto.SubjectResponse, int64, error)
	Update(ctx context.Context, id string, req *dto.UpdateSubjectRequest) (*dto.SubjectResponse, error)
	Delete(ctx context.Context, id string) error
}

type subjectService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewSubjectService wires the subject service.
func NewSubjectService(repo *repository.Repository, logger *zap.Logger) SubjectService {
	return &subjectService{repo: repo, logger: logger}
}

func (s *subjectService) Create(ctx context.Context, req *dto.CreateSubjectRequest) (*dto.SubjectResponse, error) {
	if _, err := s.repo.Subject.GetByCode(ctx, req.Code); err == nil {
		return nil, ErrSubjectCodeExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	subject := &model.Subject{Code: req.Code, Name: req.Name}
	if err := s.repo.Subject.Create(ctx, subject); err != nil {
		s.logger.Error("gagal membuat mapel", zap.Error(err))
		return nil, err
	}

	resp := toSubjectResponse(subject)
	return &resp, nil
}

func (s *subjectService) GetByID(ctx context.Context, id string) (*dto.SubjectResponse, error) {
	subject, err := s.repo.Subject.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSubjectNotFound
		}
		return nil, err
	}
	resp := toSubjectResponse(subject)
	return &resp, nil
}

func (s *subjectService) List(ctx context.Context, req *dto.SubjectListRequest) ([]dto.SubjectResponse, int64, error) {
	subjects, total, err := s.repo.Subject.List(ctx, repository.SubjectFilter{
		Keyword: req.Keyword,
		Offset:  req.GetOffset(),
		Limit:   req.GetPageSize(),
	})
	if err != nil {
		s.logger.Error("gagal list mapel", zap.Error(err))
		return nil, 0, err
	}

	out := make([]dto.SubjectResponse, len(subjects))
	for i := range subjects {
		out[i] = toSubjectResponse(&subjects[i])
	}
	return out, total, nil
}

func (s *subjectService) Update(ctx context.Context, id string, req *dto.UpdateSubjectRequest) (*dto.SubjectResponse, error) {
	subject, err := s.repo.Subject.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSubjectNotFound
		}
		return nil, err
	}

	if req.Code != nil && *req.Code != subject.Code {
		if _, err := s.repo.Subject.GetByCode(ctx, *req.Code); err == nil {
			return nil, ErrSubjectCodeExists
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		subject.Code = *req.Code
	}
	if req.Name != nil {
		subject.Name = *req.Name
	}

	if err := s.repo.Subject.Update(ctx, subject); err != nil {
		s.logger.Error("gagal update mapel", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	resp := toSubjectResponse(subject)
	return &resp, nil
}

func (s *subjectService) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.Subject.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrSubjectNotFound
		}
		return err
	}
	return s.repo.Subject.Delete(ctx, id)
}
