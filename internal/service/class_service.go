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

var (
	ErrClassNameExists = errors.New("nama kelas sudah dipakai")
	ErrClassNotEmpty   = errors.New("kelas masih memiliki siswa")
)

// ClassService manages classes and their subject assignments.
type ClassService interface {
	Create(ctx context.Context, req *dto.CreateClassRequest) (*dto.ClassResponse, error)
	GetByID(ctx context.Context, id string) (*dto.ClassResponse, error)
	List(ctx context.Context, req *dto.ClassListRequest) ([]dto.ClassResponse, int64, error)
	Update(ctx context.Context, id string, req *dto.UpdateClassRequest) (*dto.ClassResponse, error)
	Delete(ctx context.Context, id string) error
	AssignSubjects(ctx context.Context, id string, req *dto.AssignSubjectsRequest) (*dto.ClassResponse, error)
	ListStudents(ctx context.Context, id string) ([]dto.StudentResponse, error)
}

type classService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewClassService wires the class service.
func NewClassService(repo *repository.Repository, logger *zap.Logger) ClassService {
	return &classService{repo: repo, logger: logger}
}

func (s *classService) Create(ctx context.Context, req *dto.CreateClassRequest) (*dto.ClassResponse, error) {
	if _, err := s.repo.Class.GetByName(ctx, req.Name); err == nil {
		return nil, ErrClassNameExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	class := &model.Class{
		Name:  req.Name,
		Level: req.Level,
	}
	if req.HomeroomTeacherID != "" {
		if _, err := s.repo.Teacher.GetByID(ctx, req.HomeroomTeacherID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrTeacherNotFound
			}
			return nil, err
		}
		class.HomeroomTeacherID = &req.HomeroomTeacherID
	}

	if err := s.repo.Class.Create(ctx, class); err != nil {
		s.logger.Error("gagal membuat kelas", zap.Error(err))
		return nil, err
	}

	return s.respond(ctx, class)
}

func (s *classService) GetByID(ctx context.Context, id string) (*dto.ClassResponse, error) {
	class, err := s.repo.Class.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrClassNotFound
		}
		return nil, err
	}
	return s.respond(ctx, class)
}

func (s *classService) List(ctx context.Context, req *dto.ClassListRequest) ([]dto.ClassResponse, int64, error) {
	classes, total, err := s.repo.Class.List(ctx, repository.ClassFilter{
		Level:   req.Level,
		Keyword: req.Keyword,
		Offset:  req.GetOffset(),
		Limit:   req.GetPageSize(),
	})
	if err != nil {
		s.logger.Error("gagal list kelas", zap.Error(err))
		return nil, 0, err
	}

	out := make([]dto.ClassResponse, len(classes))
	for i := range classes {
		count, err := s.repo.Student.CountByClass(ctx, classes[i].ClassID)
		if err != nil {
			return nil, 0, err
		}
		out[i] = toClassResponse(&classes[i], int(count))
	}
	return out, total, nil
}

func (s *classService) Update(ctx context.Context, id string, req *dto.UpdateClassRequest) (*dto.ClassResponse, error) {
	class, err := s.repo.Class.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrClassNotFound
		}
		return nil, err
	}

	if req.Name != nil && *req.Name != class.Name {
		if _, err := s.repo.Class.GetByName(ctx, *req.Name); err == nil {
			return nil, ErrClassNameExists
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		class.Name = *req.Name
	}
	if req.Level != nil {
		class.Level = *req.Level
	}
	if req.HomeroomTeacherID != nil {
		if *req.HomeroomTeacherID == "" {
			class.HomeroomTeacherID = nil
			class.HomeroomTeacher = nil
		} else {
			teacher, err := s.repo.Teacher.GetByID(ctx, *req.HomeroomTeacherID)
			if err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return nil, ErrTeacherNotFound
				}
				return nil, err
			}
			class.HomeroomTeacherID = req.HomeroomTeacherID
			class.HomeroomTeacher = teacher
		}
	}

	if err := s.repo.Class.Update(ctx, class); err != nil {
		s.logger.Error("gagal update kelas", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	return s.respond(ctx, class)
}

func (s *classService) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.Class.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrClassNotFound
		}
		return err
	}

	count, err := s.repo.Student.CountByClass(ctx, id)
	if err != nil {
		return err
	}
	if count > 0 {
		return ErrClassNotEmpty
	}
	return s.repo.Class.Delete(ctx, id)
}

func (s *classService) AssignSubjects(ctx context.Context, id string, req *dto.AssignSubjectsRequest) (*dto.ClassResponse, error) {
	class, err := s.repo.Class.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrClassNotFound
		}
		return nil, err
	}

	subjects, err := s.repo.Subject.GetByIDs(ctx, req.SubjectIDs)
	if err != nil {
		return nil, err
	}
	if len(subjects) != len(req.SubjectIDs) {
		return nil, ErrSubjectNotFound
	}

	if err := s.repo.Class.ReplaceSubjects(ctx, class, subjects); err != nil {
		s.logger.Error("gagal assign mapel kelas", zap.String("id", id), zap.Error(err))
		return nil, err
	}
	class.Subjects = subjects

	return s.respond(ctx, class)
}

func (s *classService) ListStudents(ctx context.Context, id string) ([]dto.StudentResponse, error) {
	if _, err := s.repo.Class.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrClassNotFound
		}
		return nil, err
	}

	students, err := s.repo.Student.ListByClass(ctx, id)
	if err != nil {
		return nil, err
	}

	out := make([]dto.StudentResponse, len(students))
	for i := range students {
		out[i] = toStudentResponse(&students[i])
	}
	return out, nil
}

func (s *classService) respond(ctx context.Context, class *model.Class) (*dto.ClassResponse, error) {
	count, err := s.repo.Student.CountByClass(ctx, class.ClassID)
	if err != nil {
		return nil, err
	}
	resp := toClassResponse(class, int(count))
	return &resp, nil
}

func toClassResponse(c *model.Class, studentCount int) dto.ClassResponse {
	return dto.ClassResponse{
		ID:              c.ClassID,
		Name:            c.Name,
		Level:           c.Level,
		HomeroomTeacher: toTeacherBrief(c.HomeroomTeacher),
		Subjects:        toSubjectBriefs(c.Subjects),
		StudentCount:    studentCount,
		CreatedAt:       formatTime(c.CreatedAt),
	}
}
