package service

import (
	"context"
	"errors"
	"io"

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
	ErrStudentNotFound = errors.New("siswa tidak ditemukan")
	ErrNISExists       = errors.New("NIS sudah terdaftar")
	ErrClassNotFound   = errors.New("kelas tidak ditemukan")
)

// StudentService manages student records and the student Excel import.
type StudentService interface {
	Create(ctx context.Context, req *dto.CreateStudentRequest) (*dto.StudentResponse, error)
	GetByID(ctx context.Context, id string) (*dto.StudentResponse, error)
	List(ctx context.Context, req *dto.StudentListRequest) ([]dto.StudentResponse, int64, error)
	Update(ctx context.Context, id string, req *dto.UpdateStudentRequest) (*dto.StudentResponse, error)
	Delete(ctx context.Context, id string) error
	Import(ctx context.Context, file io.Reader) (*dto.ImportResponse, error)
}

type studentService struct {
	cfg    *config.Config
	repo   *repository.Repository
	logger *zap.Logger
}

// NewStudentService wires the student service.
func NewStudentService(cfg *config.Config, repo *repository.Repository, logger *zap.Logger) StudentService {
	return &studentService{cfg: cfg, repo: repo, logger: logger}
}

func (s *studentService) Create(ctx context.Context, req *dto.CreateStudentRequest) (*dto.StudentResponse, error) {
	if _, err := s.repo.Student.GetByNIS(ctx, req.NIS); err == nil {
		return nil, ErrNISExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	student := &model.Student{
		NIS:           req.NIS,
		Name:          req.Name,
		Gender:        req.Gender,
		GuardianName:  req.GuardianName,
		GuardianPhone: req.GuardianPhone,
	}
	if req.ClassID != "" {
		if _, err := s.repo.Class.GetByID(ctx, req.ClassID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrClassNotFound
			}
			return nil, err
		}
		student.ClassID = &req.ClassID
	}
	if req.BirthDate != "" {
		if t, ok := importer.ParseISODate(req.BirthDate); ok {
			student.BirthDate = &t
		}
	}

	err := s.repo.Transaction(ctx, func(tx *repository.Repository) error {
		if req.Email != "" {
			userID, err := s.provisionAccount(ctx, tx, req.Name, req.Email, req.NIS)
			if err != nil {
				return err
			}
			student.UserID = &userID
		}
		return tx.Student.Create(ctx, student)
	})
	if err != nil {
		return nil, err
	}

	resp := toStudentResponse(student)
	return &resp, nil
}

func (s *studentService) GetByID(ctx context.Context, id string) (*dto.StudentResponse, error) {
	student, err := s.repo.Student.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrStudentNotFound
		}
		return nil, err
	}
	resp := toStudentResponse(student)
	return &resp, nil
}

func (s *studentService) List(ctx context.Context, req *dto.StudentListRequest) ([]dto.StudentResponse, int64, error) {
	students, total, err := s.repo.Student.List(ctx, repository.StudentFilter{
		ClassID: req.ClassID,
		Keyword: req.Keyword,
		Offset:  req.GetOffset(),
		Limit:   req.GetPageSize(),
	})
	if err != nil {
		s.logger.Error("gagal list siswa", zap.Error(err))
		return nil, 0, err
	}

	out := make([]dto.StudentResponse, len(students))
	for i := range students {
		out[i] = toStudentResponse(&students[i])
	}
	return out, total, nil
}

func (s *studentService) Update(ctx context.Context, id string, req *dto.UpdateStudentRequest) (*dto.StudentResponse, error) {
	student, err := s.repo.Student.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrStudentNotFound
		}
		return nil, err
	}

	if req.Name != nil {
		student.Name = *req.Name
	}
	if req.Gender != nil {
		student.Gender = *req.Gender
	}
	if req.BirthDate != nil {
		if t, ok := importer.ParseISODate(*req.BirthDate); ok {
			student.BirthDate = &t
		}
	}
	if req.ClassID != nil {
		if *req.ClassID == "" {
			student.ClassID = nil
		} else {
			if _, err := s.repo.Class.GetByID(ctx, *req.ClassID); err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return nil, ErrClassNotFound
				}
				return nil, err
			}
			student.ClassID = req.ClassID
		}
	}
	if req.GuardianName != nil {
		student.GuardianName = *req.GuardianName
	}
	if req.GuardianPhone != nil {
		student.GuardianPhone = *req.GuardianPhone
	}

	student.Class = nil // stale preload, let the response reload lazily
	if err := s.repo.Student.Update(ctx, student); err != nil {
		s.logger.Error("gagal update siswa", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	resp := toStudentResponse(student)
	return &resp, nil
}

func (s *studentService) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.Student.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrStudentNotFound
		}
		return err
	}
	return s.repo.Student.Delete(ctx, id)
}

// Import reads a student sheet and writes each row in its own
// transaction, so one bad row never poisons the rest.
func (s *studentService) Import(ctx context.Context, file io.Reader) (*dto.ImportResponse, error) {
	rows, err := importer.ParseSheet(file, s.cfg.Import.MaxRows)
	if err != nil {
		return nil, err
	}

	classes, err := s.repo.Class.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	classRefs := importer.NewReferenceList()
	for i := range classes {
		classRefs.Add(classes[i].Name, classes[i].ClassID)
	}

	var result importer.Result
	for _, raw := range rows {
		if raw.Empty() {
			result.Record(importer.RowOutcome{Skipped: true})
			continue
		}
		result.Record(s.importRow(ctx, raw, classRefs))
	}

	result.Total = len(rows)
	s.logger.Info("import siswa selesai",
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

func (s *studentService) importRow(ctx context.Context, raw importer.RawRow, classRefs *importer.ReferenceList) importer.RowOutcome {
	rec, missing := importer.StudentSchema.Normalize(raw)
	if rec == nil {
		return importer.RowOutcome{
			Err: importer.RowError(raw.Number, "kolom wajib kosong: %s", missing[0]),
		}
	}

	student := &model.Student{
		NIS:           rec.Get(importer.KeyNIS),
		Name:          rec.Get(importer.KeyName),
		Gender:        normalizeGender(rec.Get(importer.KeyGender)),
		GuardianName:  rec.Get(importer.KeyGuardian),
		GuardianPhone: rec.Get(importer.KeyGuardianTel),
	}

	if className := rec.Get(importer.KeyClass); className != "" {
		classID, ok := classRefs.Resolve(className)
		if !ok {
			return importer.RowOutcome{Err: importer.NotFoundError(rec.Row, "Kelas", className)}
		}
		student.ClassID = &classID
	}

	// An unreadable birth date imports as empty; the row itself goes
	// through.
	if cell := rec.Get(importer.KeyBirthDate); cell != "" {
		if t, ok := importer.ParseISODate(importer.NormalizeDate(cell)); ok {
			student.BirthDate = &t
		}
	}

	err := s.repo.Transaction(ctx, func(tx *repository.Repository) error {
		if _, err := tx.Student.GetByNIS(ctx, student.NIS); err == nil {
			return ErrNISExists
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		if email := rec.Get(importer.KeyEmail); email != "" {
			userID, err := s.provisionAccount(ctx, tx, student.Name, email, student.NIS)
			if err != nil {
				return err
			}
			student.UserID = &userID
		}
		return tx.Student.Create(ctx, student)
	})

	switch {
	case err == nil:
		return importer.RowOutcome{}
	case errors.Is(err, ErrNISExists):
		return importer.RowOutcome{
			Err: importer.RowError(rec.Row, "NIS sudah terdaftar: %s", student.NIS),
		}
	case errors.Is(err, ErrEmailExists):
		return importer.RowOutcome{
			Err: importer.RowError(rec.Row, "email sudah terdaftar: %s", rec.Get(importer.KeyEmail)),
		}
	default:
		s.logger.Error("gagal menyimpan baris import siswa",
			zap.Int("row", rec.Row), zap.Error(err))
		return importer.RowOutcome{
			Err: importer.RowError(rec.Row, "gagal menyimpan data"),
		}
	}
}

// provisionAccount creates the login account for an imported person.
// The identity number doubles as the initial password and must be
// changed at first login.
func (s *studentService) provisionAccount(ctx context.Context, tx *repository.Repository, name, email, initialPassword string) (string, error) {
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
		Role:               model.RoleStudent,
		MustChangePassword: true,
	}
	if err := tx.User.Create(ctx, user); err != nil {
		return "", err
	}
	return user.UserID, nil
}

// normalizeGender folds the spellings sheets use into L/P.
func normalizeGender(cell string) string {
	switch cell {
	case "L", "l", "Laki-laki", "laki-laki", "LAKI-LAKI", "Laki - laki", "M":
		return "L"
	case "P", "p", "Perempuan", "perempuan", "PEREMPUAN", "F":
		return "P"
	}
	return ""
}
