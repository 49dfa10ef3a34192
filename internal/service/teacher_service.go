package service

import (
	"context"
	"errors"
	"io"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"siakad/backend/config"
	"siakad/backend/internal/dto"
	"siakad/backend/internal/importer"
	"siakad/backend/internal/model"
	"siakad/backend/internal/repository"
)

var (
	ErrTeacherNotFound = errors.New("guru tidak ditemukan")
	ErrNIPExists       = errors.New("NIP sudah terdaftar")
	ErrSubjectNotFound = errors.New("mata pelajaran tidak ditemukan")
)

// TeacherService manages teacher records and the teacher Excel import.
type TeacherService interface {
	Create(ctx context.Context, req *dto.CreateTeacherRequest) (*dto.TeacherResponse, error)
	GetByID(ctx context.Context, id string) (*dto.TeacherResponse, error)
	List(ctx context.Context, req *dto.TeacherListRequest) ([]dto.TeacherResponse, int64, error)
	Update(ctx context.Context, id string, req *dto.UpdateTeacherRequest) (*dto.TeacherResponse, error)
	Delete(ctx context.Context, id string) error
	GetByUserID(ctx context.Context, userID string) (*dto.TeacherResponse, error)
	Import(ctx context.Context, file io.Reader) (*dto.ImportResponse, error)
}

type teacherService struct {
	cfg    *config.Config
	repo   *repository.Repository
	logger *zap.Logger
}

// NewTeacherService wires the teacher service.
func NewTeacherService(cfg *config.Config, repo *repository.Repository, logger *zap.Logger) TeacherService {
	return &teacherService{cfg: cfg, repo: repo, logger: logger}
}

func (s *teacherService) Create(ctx context.Context, req *dto.CreateTeacherRequest) (*dto.TeacherResponse, error) {
	if _, err := s.repo.Teacher.GetByNIP(ctx, req.NIP); err == nil {
		return nil, ErrNIPExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	var subjects []model.Subject
	if len(req.SubjectIDs) > 0 {
		var err error
		subjects, err = s.repo.Subject.GetByIDs(ctx, req.SubjectIDs)
		if err != nil {
			return nil, err
		}
		if len(subjects) != len(req.SubjectIDs) {
			return nil, ErrSubjectNotFound
		}
	}

	teacher := &model.Teacher{
		NIP:   req.NIP,
		Name:  req.Name,
		Phone: req.Phone,
	}

	err := s.repo.Transaction(ctx, func(tx *repository.Repository) error {
		if req.Email != "" {
			userID, err := s.provisionAccount(ctx, tx, req.Name, req.Email, req.NIP)
			if err != nil {
				return err
			}
			teacher.UserID = &userID
		}
		if err := tx.Teacher.Create(ctx, teacher); err != nil {
			return err
		}
		if len(subjects) > 0 {
			return tx.Teacher.ReplaceSubjects(ctx, teacher, subjects)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	teacher.Subjects = subjects
	resp := toTeacherResponse(teacher)
	return &resp, nil
}

func (s *teacherService) GetByID(ctx context.Context, id string) (*dto.TeacherResponse, error) {
	teacher, err := s.repo.Teacher.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTeacherNotFound
		}
		return nil, err
	}
	resp := toTeacherResponse(teacher)
	return &resp, nil
}

// GetByUserID resolves the teacher record behind a login account.
func (s *teacherService) GetByUserID(ctx context.Context, userID string) (*dto.TeacherResponse, error) {
	teacher, err := s.repo.Teacher.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTeacherNotFound
		}
		return nil, err
	}
	resp := toTeacherResponse(teacher)
	return &resp, nil
}

func (s *teacherService) List(ctx context.Context, req *dto.TeacherListRequest) ([]dto.TeacherResponse, int64, error) {
	teachers, total, err := s.repo.Teacher.List(ctx, repository.TeacherFilter{
		SubjectID: req.SubjectID,
		Keyword:   req.Keyword,
		Offset:    req.GetOffset(),
		Limit:     req.GetPageSize(),
	})
	if err != nil {
		s.logger.Error("gagal list guru", zap.Error(err))
		return nil, 0, err
	}

	out := make([]dto.TeacherResponse, len(teachers))
	for i := range teachers {
		out[i] = toTeacherResponse(&teachers[i])
	}
	return out, total, nil
}

func (s *teacherService) Update(ctx context.Context, id string, req *dto.UpdateTeacherRequest) (*dto.TeacherResponse, error) {
	teacher, err := s.repo.Teacher.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTeacherNotFound
		}
		return nil, err
	}

	if req.Name != nil {
		teacher.Name = *req.Name
	}
	if req.Phone != nil {
		teacher.Phone = *req.Phone
	}

	if req.SubjectIDs != nil {
		subjects, err := s.repo.Subject.GetByIDs(ctx, req.SubjectIDs)
		if err != nil {
			return nil, err
		}
		if len(subjects) != len(req.SubjectIDs) {
			return nil, ErrSubjectNotFound
		}
		if err := s.repo.Teacher.ReplaceSubjects(ctx, teacher, subjects); err != nil {
			return nil, err
		}
		teacher.Subjects = subjects
	}

	if err := s.repo.Teacher.Update(ctx, teacher); err != nil {
		s.logger.Error("gagal update guru", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	resp := toTeacherResponse(teacher)
	return &resp, nil
}

func (s *teacherService) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.Teacher.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrTeacherNotFound
		}
		return err
	}
	return s.repo.Teacher.Delete(ctx, id)
}

// Import reads a teacher sheet; one transaction per row.
func (s *teacherService) Import(ctx context.Context, file io.Reader) (*dto.ImportResponse, error) {
	rows, err := importer.ParseSheet(file, s.cfg.Import.MaxRows)
	if err != nil {
		return nil, err
	}

	subjects, err := s.repo.Subject.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	subjectRefs := importer.NewReferenceList()
	for i := range subjects {
		subjectRefs.Add(subjects[i].Name, subjects[i].SubjectID)
		subjectRefs.Add(subjects[i].Code, subjects[i].SubjectID)
	}
	subjectByID := make(map[string]model.Subject, len(subjects))
	for i := range subjects {
		subjectByID[subjects[i].SubjectID] = subjects[i]
	}

	var result importer.Result
	for _, raw := range rows {
		if raw.Empty() {
			result.Record(importer.RowOutcome{Skipped: true})
			continue
		}
		result.Record(s.importRow(ctx, raw, subjectRefs, subjectByID))
	}

	result.Total = len(rows)
	s.logger.Info("import guru selesai",
		zap.Int("total", result.Total),
		zap.Int("success", result.Success),
		zap.Int("failed", result.Failed),
		zap.Int("skipped", result.Skipped))

	return &dto.ImportResponse{
		Total:   result.Total,
		Success: result.Success,
		Failed:  result.Failed,
		Skipped: result.Skipped,
		Errors:  result.Errors,
	}, nil
}

func (s *teacherService) importRow(ctx context.Context, raw importer.RawRow, subjectRefs *importer.ReferenceList, subjectByID map[string]model.Subject) importer.RowOutcome {
	rec, missing := importer.TeacherSchema.Normalize(raw)
	if rec == nil {
		return importer.RowOutcome{
			Err: importer.RowError(raw.Number, "kolom wajib kosong: %s", missing[0]),
		}
	}

	teacher := &model.Teacher{
		NIP:   rec.Get(importer.KeyNIP),
		Name:  rec.Get(importer.KeyName),
		Phone: rec.Get(importer.KeyPhone),
	}

	// The mapel cell may carry several subjects, comma separated.
	var subjects []model.Subject
	if cell := rec.Get(importer.KeySubject); cell != "" {
		for _, name := range strings.Split(cell, ",") {
			name = strings.TrimSpace(name)
			if name == "" {
				continue
			}
			id, ok := subjectRefs.Resolve(name)
			if !ok {
				return importer.RowOutcome{Err: importer.NotFoundError(rec.Row, "Mata pelajaran", name)}
			}
			subjects = append(subjects, subjectByID[id])
		}
	}

	err := s.repo.Transaction(ctx, func(tx *repository.Repository) error {
		if _, err := tx.Teacher.GetByNIP(ctx, teacher.NIP); err == nil {
			return ErrNIPExists
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		if email := rec.Get(importer.KeyEmail); email != "" {
			userID, err := s.provisionAccount(ctx, tx, teacher.Name, email, teacher.NIP)
			if err != nil {
				return err
			}
			teacher.UserID = &userID
		}
		if err := tx.Teacher.Create(ctx, teacher); err != nil {
			return err
		}
		if len(subjects) > 0 {
			return tx.Teacher.ReplaceSubjects(ctx, teacher, subjects)
		}
		return nil
	})

	switch {
	case err == nil:
		return importer.RowOutcome{}
	case errors.Is(err, ErrNIPExists):
		return importer.RowOutcome{
			Err: importer.RowError(rec.Row, "NIP sudah terdaftar: %s", teacher.NIP),
		}
	case errors.Is(err, ErrEmailExists):
		return importer.RowOutcome{
			Err: importer.RowError(rec.Row, "email sudah terdaftar: %s", rec.Get(importer.KeyEmail)),
		}
	default:
		s.logger.Error("gagal menyimpan baris import guru",
			zap.Int("row", rec.Row), zap.Error(err))
		return importer.RowOutcome{
			Err: importer.RowError(rec.Row, "gagal menyimpan data"),
		}
	}
}

func (s *teacherService) provisionAccount(ctx context.Context, tx *repository.Repository, name, email, initialPassword string) (string, error) {
	if _, err := tx.User.GetByEmail(ctx, email); err == nil {
		return "", ErrEmailExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return "", err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(initialPassword), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}

	user := &model.User{
		Name:               name,
		Email:              email,
		PasswordHash:       string(hash),
		Role:               model.RoleTeacher,
		MustChangePassword: true,
	}
	if err := tx.User.Create(ctx, user); err != nil {
		return "", err
	}
	return user.UserID, nil
}
