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

var ErrGradeNotFound = errors.New("nilai tidak ditemukan")

// GradeService records scores and builds per-semester summaries.
type GradeService interface {
	Create(ctx context.Context, teacherID string, req *dto.CreateGradeRequest) (*dto.GradeResponse, error)
	GetByID(ctx context.Context, id string) (*dto.GradeResponse, error)
	List(ctx context.Context, req *dto.GradeListRequest) ([]dto.GradeResponse, int64, error)
	Update(ctx context.Context, id string, req *dto.UpdateGradeRequest) (*dto.GradeResponse, error)
	Delete(ctx context.Context, id string) error
	Summary(ctx context.Context, studentID, semesterID string) (*dto.GradeSummaryResponse, error)
}

type gradeService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewGradeService wires the grade service.
func NewGradeService(repo *repository.Repository, logger *zap.Logger) GradeService {
	return &gradeService{repo: repo, logger: logger}
}

func (s *gradeService) Create(ctx context.Context, teacherID string, req *dto.CreateGradeRequest) (*dto.GradeResponse, error) {
	if _, err := s.repo.Student.GetByID(ctx, req.StudentID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrStudentNotFound
		}
		return nil, err
	}
	if _, err := s.repo.Subject.GetByID(ctx, req.SubjectID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSubjectNotFound
		}
		return nil, err
	}
	if _, err := s.repo.Semester.GetByID(ctx, req.SemesterID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSemesterNotFound
		}
		return nil, err
	}

	grade := &model.Grade{
		StudentID:  req.StudentID,
		SubjectID:  req.SubjectID,
		TeacherID:  teacherID,
		SemesterID: req.SemesterID,
		Kind:       req.Kind,
		Score:      req.Score,
		Notes:      req.Notes,
	}
	if err := s.repo.Grade.Create(ctx, grade); err != nil {
		s.logger.Error("gagal menyimpan nilai", zap.Error(err))
		return nil, err
	}

	return s.GetByID(ctx, grade.GradeID)
}

func (s *gradeService) GetByID(ctx context.Context, id string) (*dto.GradeResponse, error) {
	grade, err := s.repo.Grade.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrGradeNotFound
		}
		return nil, err
	}
	resp := toGradeResponse(grade)
	return &resp, nil
}

func (s *gradeService) List(ctx context.Context, req *dto.GradeListRequest) ([]dto.GradeResponse, int64, error) {
	grades, total, err := s.repo.Grade.List(ctx, repository.GradeFilter{
		StudentID:  req.StudentID,
		ClassID:    req.ClassID,
		SubjectID:  req.SubjectID,
		SemesterID: req.SemesterID,
		Kind:       req.Kind,
		Offset:     req.GetOffset(),
		Limit:      req.GetPageSize(),
	})
	if err != nil {
		s.logger.Error("gagal list nilai", zap.Error(err))
		return nil, 0, err
	}

	out := make([]dto.GradeResponse, len(grades))
	for i := range grades {
		out[i] = toGradeResponse(&grades[i])
	}
	return out, total, nil
}

func (s *gradeService) Update(ctx context.Context, id string, req *dto.UpdateGradeRequest) (*dto.GradeResponse, error) {
	grade, err := s.repo.Grade.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrGradeNotFound
		}
		return nil, err
	}

	if req.Kind != nil {
		grade.Kind = *req.Kind
	}
	if req.Score != nil {
		grade.Score = *req.Score
	}
	if req.Notes != nil {
		grade.Notes = *req.Notes
	}

	grade.Student, grade.Subject, grade.Semester = nil, nil, nil
	if err := s.repo.Grade.Update(ctx, grade); err != nil {
		s.logger.Error("gagal update nilai", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	return s.GetByID(ctx, id)
}

func (s *gradeService) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.Grade.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrGradeNotFound
		}
		return err
	}
	return s.repo.Grade.Delete(ctx, id)
}

// Summary averages tugas and ulangan per subject and lays uts/uas
// beside them; the subject average weighs tugas 30%, ulangan 20%,
// uts 20%, uas 30%.
func (s *gradeService) Summary(ctx context.Context, studentID, semesterID string) (*dto.GradeSummaryResponse, error) {
	student, err := s.repo.Student.GetByID(ctx, studentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrStudentNotFound
		}
		return nil, err
	}
	semester, err := s.repo.Semester.GetByID(ctx, semesterID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSemesterNotFound
		}
		return nil, err
	}

	grades, err := s.repo.Grade.ListByStudentSemester(ctx, studentID, semesterID)
	if err != nil {
		return nil, err
	}

	type bucket struct {
		subject              *model.Subject
		tugasSum, ulanganSum float64
		tugasN, ulanganN     int
		uts, uas             float64
		hasUTS, hasUAS       bool
	}

	buckets := make(map[string]*bucket)
	order := []string{}
	for i := range grades {
		g := &grades[i]
		b, ok := buckets[g.SubjectID]
		if !ok {
			b = &bucket{subject: g.Subject}
			buckets[g.SubjectID] = b
			order = append(order, g.SubjectID)
		}
		switch g.Kind {
		case model.GradeAssignment:
			b.tugasSum += g.Score
			b.tugasN++
		case model.GradeQuiz:
			b.ulanganSum += g.Score
			b.ulanganN++
		case model.GradeMidterm:
			b.uts = g.Score
			b.hasUTS = true
		case model.GradeFinal:
			b.uas = g.Score
			b.hasUAS = true
		}
	}

	resp := &dto.GradeSummaryResponse{
		Student:  *toStudentBrief(student),
		Semester: *toSemesterBrief(semester),
	}
	for _, id := range order {
		b := buckets[id]
		row := dto.GradeSummaryRow{}
		if b.subject != nil {
			row.Subject = *toSubjectBrief(b.subject)
		}
		if b.tugasN > 0 {
			row.Assignment = round2(b.tugasSum / float64(b.tugasN))
		}
		if b.ulanganN > 0 {
			row.Quiz = round2(b.ulanganSum / float64(b.ulanganN))
		}
		row.Midterm = b.uts
		row.Final = b.uas
		row.Average = round2(0.3*row.Assignment + 0.2*row.Quiz + 0.2*row.Midterm + 0.3*row.Final)
		resp.Rows = append(resp.Rows, row)
	}
	return resp, nil
}

func round2(v float64) float64 {
	return float64(int(v*100+0.5)) / 100
}
