package service

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"siakad/backend/internal/dto"
	"siakad/backend/internal/importer"
	"siakad/backend/internal/model"
	"siakad/backend/internal/repository"
)

var (
	ErrActivityNotFound = errors.New("kegiatan tidak ditemukan")
	ErrNotActivityOwner = errors.New("bukan pembuat kegiatan")
	ErrTargetNotInClass = errors.New("siswa target tidak terdaftar di kelas tersebut")
)

// ActivityService manages class activities (kegiatan kelas). An empty
// target list means the whole class.
type ActivityService interface {
	Create(ctx context.Context, teacherID string, req *dto.CreateActivityRequest) (*dto.ActivityResponse, error)
	GetByID(ctx context.Context, id string) (*dto.ActivityResponse, error)
	List(ctx context.Context, req *dto.ActivityListRequest) ([]dto.ActivityResponse, int64, error)
	Update(ctx context.Context, teacherID, id string, req *dto.UpdateActivityRequest) (*dto.ActivityResponse, error)
	Delete(ctx context.Context, teacherID, id string) error
}

type activityService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewActivityService wires the activity service.
func NewActivityService(repo *repository.Repository, logger *zap.Logger) ActivityService {
	return &activityService{repo: repo, logger: logger}
}

func (s *activityService) Create(ctx context.Context, teacherID string, req *dto.CreateActivityRequest) (*dto.ActivityResponse, error) {
	if _, err := s.repo.Class.GetByID(ctx, req.ClassID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrClassNotFound
		}
		return nil, err
	}

	if err := s.validateTargets(ctx, req.ClassID, req.TargetStudentIDs); err != nil {
		return nil, err
	}

	activity := &model.ClassActivity{
		ClassID:          req.ClassID,
		TeacherID:        teacherID,
		Title:            req.Title,
		Description:      req.Description,
		TargetStudentIDs: req.TargetStudentIDs,
	}
	if req.SubjectID != "" {
		if _, err := s.repo.Subject.GetByID(ctx, req.SubjectID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrSubjectNotFound
			}
			return nil, err
		}
		activity.SubjectID = &req.SubjectID
	}
	if req.DueDate != "" {
		if t, ok := importer.ParseISODate(req.DueDate); ok {
			activity.DueDate = &t
		} else {
			return nil, ErrInvalidDate
		}
	}

	if err := s.repo.Activity.Create(ctx, activity); err != nil {
		s.logger.Error("gagal membuat kegiatan", zap.Error(err))
		return nil, err
	}

	return s.GetByID(ctx, activity.ActivityID)
}

func (s *activityService) GetByID(ctx context.Context, id string) (*dto.ActivityResponse, error) {
	activity, err := s.repo.Activity.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrActivityNotFound
		}
		return nil, err
	}
	resp := toActivityResponse(activity)
	return &resp, nil
}

func (s *activityService) List(ctx context.Context, req *dto.ActivityListRequest) ([]dto.ActivityResponse, int64, error) {
	activities, total, err := s.repo.Activity.List(ctx, repository.ActivityFilter{
		ClassID:   req.ClassID,
		TeacherID: req.TeacherID,
		SubjectID: req.SubjectID,
		Offset:    req.GetOffset(),
		Limit:     req.GetPageSize(),
	})
	if err != nil {
		s.logger.Error("gagal list kegiatan", zap.Error(err))
		return nil, 0, err
	}

	out := make([]dto.ActivityResponse, len(activities))
	for i := range activities {
		out[i] = toActivityResponse(&activities[i])
	}
	return out, total, nil
}

func (s *activityService) Update(ctx context.Context, teacherID, id string, req *dto.UpdateActivityRequest) (*dto.ActivityResponse, error) {
	activity, err := s.repo.Activity.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrActivityNotFound
		}
		return nil, err
	}
	if activity.TeacherID != teacherID {
		return nil, ErrNotActivityOwner
	}

	if req.Title != nil {
		activity.Title = *req.Title
	}
	if req.Description != nil {
		activity.Description = *req.Description
	}
	if req.DueDate != nil {
		if *req.DueDate == "" {
			activity.DueDate = nil
		} else if t, ok := importer.ParseISODate(*req.DueDate); ok {
			activity.DueDate = &t
		} else {
			return nil, ErrInvalidDate
		}
	}
	if req.TargetStudentIDs != nil {
		if err := s.validateTargets(ctx, activity.ClassID, req.TargetStudentIDs); err != nil {
			return nil, err
		}
		activity.TargetStudentIDs = req.TargetStudentIDs
	}

	activity.Class, activity.Teacher = nil, nil
	if err := s.repo.Activity.Update(ctx, activity); err != nil {
		s.logger.Error("gagal update kegiatan", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	return s.GetByID(ctx, id)
}

func (s *activityService) Delete(ctx context.Context, teacherID, id string) error {
	activity, err := s.repo.Activity.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrActivityNotFound
		}
		return err
	}
	if teacherID != "" && activity.TeacherID != teacherID {
		return ErrNotActivityOwner
	}
	return s.repo.Activity.Delete(ctx, id)
}

// validateTargets checks every targeted student actually sits in the
// class the activity belongs to.
func (s *activityService) validateTargets(ctx context.Context, classID string, targetIDs []string) error {
	if len(targetIDs) == 0 {
		return nil
	}
	students, err := s.repo.Student.ListByClass(ctx, classID)
	if err != nil {
		return err
	}
	inClass := make(map[string]bool, len(students))
	for i := range students {
		inClass[students[i].StudentID] = true
	}
	for _, id := range targetIDs {
		if !inClass[id] {
			return ErrTargetNotInClass
		}
	}
	return nil
}
