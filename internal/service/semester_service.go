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
	ErrSemesterNotFound = errors.New("semester tidak ditemukan")
	ErrSemesterExists   = errors.New("semester sudah ada untuk tahun ajaran tersebut")
	ErrPeriodNotFound   = errors.New("jam pelajaran tidak ditemukan")
	ErrPeriodExists     = errors.New("nomor jam pelajaran sudah dipakai")
	ErrNoActiveSemester = errors.New("belum ada semester aktif")
	ErrSemesterActive   = errors.New("semester aktif tidak dapat dihapus")
)

// SemesterService manages semesters, the single active-semester switch,
// and teaching periods.
type SemesterService interface {
	Create(ctx context.Context, req *dto.CreateSemesterRequest) (*dto.SemesterResponse, error)
	GetByID(ctx context.Context, id string) (*dto.SemesterResponse, error)
	GetActive(ctx context.Context) (*dto.SemesterResponse, error)
	List(ctx context.Context) ([]dto.SemesterResponse, error)
	Update(ctx context.Context, id string, req *dto.UpdateSemesterRequest) (*dto.SemesterResponse, error)
	Delete(ctx context.Context, id string) error
	Activate(ctx context.Context, id string) (*dto.SemesterResponse, error)

	CreatePeriod(ctx context.Context, req *dto.CreatePeriodRequest) (*dto.PeriodResponse, error)
	ListPeriods(ctx context.Context) ([]dto.PeriodResponse, error)
	UpdatePeriod(ctx context.Context, id string, req *dto.UpdatePeriodRequest) (*dto.PeriodResponse, error)
	DeletePeriod(ctx context.Context, id string) error
}

type semesterService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewSemesterService wires the semester service.
func NewSemesterService(repo *repository.Repository, logger *zap.Logger) SemesterService {
	return &semesterService{repo: repo, logger: logger}
}

func (s *semesterService) Create(ctx context.Context, req *dto.CreateSemesterRequest) (*dto.SemesterResponse, error) {
	existing, err := s.repo.Semester.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	for i := range existing {
		if existing[i].Name == req.Name && existing[i].AcademicYear == req.AcademicYear {
			return nil, ErrSemesterExists
		}
	}

	semester := &model.Semester{
		Name:         req.Name,
		AcademicYear: req.AcademicYear,
	}
	if err := s.repo.Semester.Create(ctx, semester); err != nil {
		s.logger.Error("gagal membuat semester", zap.Error(err))
		return nil, err
	}

	resp := toSemesterResponse(semester)
	return &resp, nil
}

func (s *semesterService) GetByID(ctx context.Context, id string) (*dto.SemesterResponse, error) {
	semester, err := s.repo.Semester.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSemesterNotFound
		}
		return nil, err
	}
	resp := toSemesterResponse(semester)
	return &resp, nil
}

func (s *semesterService) GetActive(ctx context.Context) (*dto.SemesterResponse, error) {
	semester, err := s.repo.Semester.GetActive(ctx)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNoActiveSemester
		}
		return nil, err
	}
	resp := toSemesterResponse(semester)
	return &resp, nil
}

func (s *semesterService) List(ctx context.Context) ([]dto.SemesterResponse, error) {
	semesters, err := s.repo.Semester.ListAll(ctx)
	if err != nil {
		s.logger.Error("gagal list semester", zap.Error(err))
		return nil, err
	}

	out := make([]dto.SemesterResponse, len(semesters))
	for i := range semesters {
		out[i] = toSemesterResponse(&semesters[i])
	}
	return out, nil
}

func (s *semesterService) Update(ctx context.Context, id string, req *dto.UpdateSemesterRequest) (*dto.SemesterResponse, error) {
	semester, err := s.repo.Semester.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSemesterNotFound
		}
		return nil, err
	}

	if req.Name != nil {
		semester.Name = *req.Name
	}
	if req.AcademicYear != nil {
		semester.AcademicYear = *req.AcademicYear
	}

	if err := s.repo.Semester.Update(ctx, semester); err != nil {
		s.logger.Error("gagal update semester", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	resp := toSemesterResponse(semester)
	return &resp, nil
}

func (s *semesterService) Delete(ctx context.Context, id string) error {
	semester, err := s.repo.Semester.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrSemesterNotFound
		}
		return err
	}
	if semester.IsActive {
		return ErrSemesterActive
	}
	return s.repo.Semester.Delete(ctx, id)
}

func (s *semesterService) Activate(ctx context.Context, id string) (*dto.SemesterResponse, error) {
	if err := s.repo.Semester.Activate(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSemesterNotFound
		}
		s.logger.Error("gagal aktivasi semester", zap.String("id", id), zap.Error(err))
		return nil, err
	}
	return s.GetByID(ctx, id)
}

// ── periods ──

func (s *semesterService) CreatePeriod(ctx context.Context, req *dto.CreatePeriodRequest) (*dto.PeriodResponse, error) {
	if _, err := s.repo.Period.GetByNumber(ctx, req.Number); err == nil {
		return nil, ErrPeriodExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	period := &model.Period{
		Number:    req.Number,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
	}
	if err := s.repo.Period.Create(ctx, period); err != nil {
		s.logger.Error("gagal membuat jam pelajaran", zap.Error(err))
		return nil, err
	}

	resp := toPeriodResponse(period)
	return &resp, nil
}

func (s *semesterService) ListPeriods(ctx context.Context) ([]dto.PeriodResponse, error) {
	periods, err := s.repo.Period.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]dto.PeriodResponse, len(periods))
	for i := range periods {
		out[i] = toPeriodResponse(&periods[i])
	}
	return out, nil
}

func (s *semesterService) UpdatePeriod(ctx context.Context, id string, req *dto.UpdatePeriodRequest) (*dto.PeriodResponse, error) {
	period, err := s.repo.Period.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPeriodNotFound
		}
		return nil, err
	}

	if req.Number != nil && *req.Number != period.Number {
		if _, err := s.repo.Period.GetByNumber(ctx, *req.Number); err == nil {
			return nil, ErrPeriodExists
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		period.Number = *req.Number
	}
	if req.StartTime != nil {
		period.StartTime = *req.StartTime
	}
	if req.EndTime != nil {
		period.EndTime = *req.EndTime
	}

	if err := s.repo.Period.Update(ctx, period); err != nil {
		return nil, err
	}

	resp := toPeriodResponse(period)
	return &resp, nil
}

func (s *semesterService) DeletePeriod(ctx context.Context, id string) error {
	if _, err := s.repo.Period.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrPeriodNotFound
		}
		return err
	}
	return s.repo.Period.Delete(ctx, id)
}
