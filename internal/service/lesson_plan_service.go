package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"siakad/backend/internal/dto"
	"siakad/backend/internal/model"
	"siakad/backend/internal/repository"
)

var (
	ErrLessonPlanNotFound = errors.New("RPP tidak ditemukan")
	ErrNotPlanOwner       = errors.New("bukan pemilik RPP")
)

// LessonPlanService manages RPP submissions and their review workflow:
// pending → approved | rejected. Editing a reviewed plan resets it to
// pending.
type LessonPlanService interface {
	Create(ctx context.Context, teacherID string, req *dto.CreateLessonPlanRequest) (*dto.LessonPlanResponse, error)
	GetByID(ctx context.Context, id string) (*dto.LessonPlanResponse, error)
	List(ctx context.Context, req *dto.LessonPlanListRequest) ([]dto.LessonPlanResponse, int64, error)
	Update(ctx context.Context, teacherID, id string, req *dto.UpdateLessonPlanRequest) (*dto.LessonPlanResponse, error)
	Delete(ctx context.Context, teacherID, id string) error
	Review(ctx context.Context, reviewerID, id string, req *dto.ReviewLessonPlanRequest) (*dto.LessonPlanResponse, error)
}

type lessonPlanService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewLessonPlanService wires the lesson-plan service.
func NewLessonPlanService(repo *repository.Repository, logger *zap.Logger) LessonPlanService {
	return &lessonPlanService{repo: repo, logger: logger}
}

func (s *lessonPlanService) Create(ctx context.Context, teacherID string, req *dto.CreateLessonPlanRequest) (*dto.LessonPlanResponse, error) {
	if _, err := s.repo.Subject.GetByID(ctx, req.SubjectID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSubjectNotFound
		}
		return nil, err
	}
	if _, err := s.repo.Class.GetByID(ctx, req.ClassID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrClassNotFound
		}
		return nil, err
	}
	if _, err := s.repo.Semester.GetByID(ctx, req.SemesterID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSemesterNotFound
		}
		return nil, err
	}

	plan := &model.LessonPlan{
		TeacherID:  teacherID,
		SubjectID:  req.SubjectID,
		ClassID:    req.ClassID,
		SemesterID: req.SemesterID,
		Title:      req.Title,
		FileURL:    req.FileURL,
		Status:     model.LessonPlanPending,
	}
	if err := s.repo.LessonPlan.Create(ctx, plan); err != nil {
		s.logger.Error("gagal membuat RPP", zap.Error(err))
		return nil, err
	}

	return s.GetByID(ctx, plan.LessonPlanID)
}

func (s *lessonPlanService) GetByID(ctx context.Context, id string) (*dto.LessonPlanResponse, error) {
	plan, err := s.repo.LessonPlan.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrLessonPlanNotFound
		}
		return nil, err
	}
	resp := toLessonPlanResponse(plan)
	return &resp, nil
}

func (s *lessonPlanService) List(ctx context.Context, req *dto.LessonPlanListRequest) ([]dto.LessonPlanResponse, int64, error) {
	plans, total, err := s.repo.LessonPlan.List(ctx, repository.LessonPlanFilter{
		TeacherID:  req.TeacherID,
		SubjectID:  req.SubjectID,
		ClassID:    req.ClassID,
		SemesterID: req.SemesterID,
		Status:     req.Status,
		Offset:     req.GetOffset(),
		Limit:      req.GetPageSize(),
	})
	if err != nil {
		s.logger.Error("gagal list RPP", zap.Error(err))
		return nil, 0, err
	}

	out := make([]dto.LessonPlanResponse, len(plans))
	for i := range plans {
		out[i] = toLessonPlanResponse(&plans[i])
	}
	return out, total, nil
}

func (s *lessonPlanService) Update(ctx context.Context, teacherID, id string, req *dto.UpdateLessonPlanRequest) (*dto.LessonPlanResponse, error) {
	plan, err := s.repo.LessonPlan.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrLessonPlanNotFound
		}
		return nil, err
	}
	if plan.TeacherID != teacherID {
		return nil, ErrNotPlanOwner
	}

	if req.Title != nil {
		plan.Title = *req.Title
	}
	if req.FileURL != nil {
		plan.FileURL = *req.FileURL
	}

	// Any edit sends the plan back through review.
	plan.Status = model.LessonPlanPending
	plan.ReviewNote = ""
	plan.ReviewedBy = nil
	plan.ReviewedAt = nil

	plan.Teacher, plan.Subject, plan.Class = nil, nil, nil
	if err := s.repo.LessonPlan.Update(ctx, plan); err != nil {
		s.logger.Error("gagal update RPP", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	return s.GetByID(ctx, id)
}

func (s *lessonPlanService) Delete(ctx context.Context, teacherID, id string) error {
	plan, err := s.repo.LessonPlan.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrLessonPlanNotFound
		}
		return err
	}
	if teacherID != "" && plan.TeacherID != teacherID {
		return ErrNotPlanOwner
	}
	return s.repo.LessonPlan.Delete(ctx, id)
}

func (s *lessonPlanService) Review(ctx context.Context, reviewerID, id string, req *dto.ReviewLessonPlanRequest) (*dto.LessonPlanResponse, error) {
	plan, err := s.repo.LessonPlan.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrLessonPlanNotFound
		}
		return nil, err
	}

	now := time.Now()
	plan.Status = req.Status
	plan.ReviewNote = req.Note
	plan.ReviewedBy = &reviewerID
	plan.ReviewedAt = &now

	plan.Teacher, plan.Subject, plan.Class = nil, nil, nil
	if err := s.repo.LessonPlan.Update(ctx, plan); err != nil {
		s.logger.Error("gagal review RPP", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	return s.GetByID(ctx, id)
}
