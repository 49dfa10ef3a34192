package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"siakad/backend/config"
	"siakad/backend/internal/dto"
	"siakad/backend/internal/importer"
	"siakad/backend/internal/model"
	"siakad/backend/internal/repository"
)

var (
	ErrScheduleNotFound = errors.New("jadwal tidak ditemukan")
	ErrTeacherConflict  = errors.New("guru sudah mengajar di jam tersebut")
	ErrClassConflict    = errors.New("kelas sudah memiliki pelajaran di jam tersebut")
)

// dayNumbers resolves the day column of schedule sheets. Keys are in
// the canonical form produced by normalizeDayKey, so spellings like
// "Jum'at", "JUM AT" and "jumat." all land on 5.
var dayNumbers = map[string]int{
	"senin": 1, "selasa": 2, "rabu": 3, "kamis": 4, "jumat": 5, "sabtu": 6,
	"monday": 1, "tuesday": 2, "wednesday": 3, "thursday": 4, "friday": 5, "saturday": 6,
	"1": 1, "2": 2, "3": 3, "4": 4, "5": 5, "6": 6,
}

// normalizeDayKey lower-cases a day cell and strips the separators and
// apostrophes spreadsheets sprinkle into day names.
func normalizeDayKey(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	return strings.Map(func(r rune) rune {
		switch r {
		case ' ', '\'', '’', '.', '-':
			return -1
		}
		return r
	}, s)
}

// ScheduleService manages teaching slots, their conflict checks and the
// schedule Excel import.
type ScheduleService interface {
	Create(ctx context.Context, req *dto.CreateScheduleRequest) (*dto.ScheduleResponse, error)
	GetByID(ctx context.Context, id string) (*dto.ScheduleResponse, error)
	List(ctx context.Context, req *dto.ScheduleListRequest) ([]dto.ScheduleResponse, int64, error)
	Update(ctx context.Context, id string, req *dto.UpdateScheduleRequest) (*dto.ScheduleResponse, error)
	Delete(ctx context.Context, id string) error
	Import(ctx context.Context, file io.Reader) (*dto.ImportResponse, error)
}

type scheduleService struct {
	cfg    *config.Config
	repo   *repository.Repository
	logger *zap.Logger
}

// NewScheduleService wires the schedule service.
func NewScheduleService(cfg *config.Config, repo *repository.Repository, logger *zap.Logger) ScheduleService {
	return &scheduleService{cfg: cfg, repo: repo, logger: logger}
}

func (s *scheduleService) Create(ctx context.Context, req *dto.CreateScheduleRequest) (*dto.ScheduleResponse, error) {
	schedule := &model.Schedule{
		TeacherID:    req.TeacherID,
		ClassID:      req.ClassID,
		SubjectID:    req.SubjectID,
		DayOfWeek:    req.DayOfWeek,
		PeriodID:     req.PeriodID,
		SemesterID:   req.SemesterID,
		AcademicYear: req.AcademicYear,
	}

	if err := s.validateRefs(ctx, schedule); err != nil {
		return nil, err
	}
	if err := s.checkConflicts(ctx, schedule, ""); err != nil {
		return nil, err
	}

	if err := s.repo.Schedule.Create(ctx, schedule); err != nil {
		s.logger.Error("gagal membuat jadwal", zap.Error(err))
		return nil, err
	}

	return s.GetByID(ctx, schedule.ScheduleID)
}

func (s *scheduleService) GetByID(ctx context.Context, id string) (*dto.ScheduleResponse, error) {
	schedule, err := s.repo.Schedule.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrScheduleNotFound
		}
		return nil, err
	}
	resp := toScheduleResponse(schedule)
	return &resp, nil
}

func (s *scheduleService) List(ctx context.Context, req *dto.ScheduleListRequest) ([]dto.ScheduleResponse, int64, error) {
	schedules, total, err := s.repo.Schedule.List(ctx, repository.ScheduleFilter{
		TeacherID:    req.TeacherID,
		ClassID:      req.ClassID,
		SubjectID:    req.SubjectID,
		SemesterID:   req.SemesterID,
		DayOfWeek:    req.DayOfWeek,
		AcademicYear: req.AcademicYear,
		Offset:       req.GetOffset(),
		Limit:        req.GetPageSize(),
	})
	if err != nil {
		s.logger.Error("gagal list jadwal", zap.Error(err))
		return nil, 0, err
	}

	out := make([]dto.ScheduleResponse, len(schedules))
	for i := range schedules {
		out[i] = toScheduleResponse(&schedules[i])
	}
	return out, total, nil
}

func (s *scheduleService) Update(ctx context.Context, id string, req *dto.UpdateScheduleRequest) (*dto.ScheduleResponse, error) {
	schedule, err := s.repo.Schedule.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrScheduleNotFound
		}
		return nil, err
	}

	if req.TeacherID != nil {
		schedule.TeacherID = *req.TeacherID
	}
	if req.ClassID != nil {
		schedule.ClassID = *req.ClassID
	}
	if req.SubjectID != nil {
		schedule.SubjectID = *req.SubjectID
	}
	if req.DayOfWeek != nil {
		schedule.DayOfWeek = *req.DayOfWeek
	}
	if req.PeriodID != nil {
		schedule.PeriodID = *req.PeriodID
	}

	if err := s.validateRefs(ctx, schedule); err != nil {
		return nil, err
	}
	// The slot being edited must not collide with itself.
	if err := s.checkConflicts(ctx, schedule, schedule.ScheduleID); err != nil {
		return nil, err
	}

	// Drop stale preloads before the guarded column update.
	schedule.Teacher, schedule.Class, schedule.Subject = nil, nil, nil
	schedule.Period, schedule.Semester = nil, nil

	if err := s.repo.Schedule.Update(ctx, schedule); err != nil {
		s.logger.Error("gagal update jadwal", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	return s.GetByID(ctx, id)
}

func (s *scheduleService) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.Schedule.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrScheduleNotFound
		}
		return err
	}
	return s.repo.Schedule.Delete(ctx, id)
}

// Import reads a schedule sheet; every reference column is resolved by
// name, then the row passes the same conflict checks as the API.
func (s *scheduleService) Import(ctx context.Context, file io.Reader) (*dto.ImportResponse, error) {
	rows, err := importer.ParseSheet(file, s.cfg.Import.MaxRows)
	if err != nil {
		return nil, err
	}

	refs, err := s.loadReferences(ctx)
	if err != nil {
		return nil, err
	}

	var result importer.Result
	for _, raw := range rows {
		if raw.Empty() {
			result.Record(importer.RowOutcome{Skipped: true})
			continue
		}
		result.Record(s.importRow(ctx, raw, refs))
	}

	result.Total = len(rows)
	s.logger.Info("import jadwal selesai",
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

// scheduleRefs snapshots every lookup table an import run needs.
type scheduleRefs struct {
	teachers  *importer.ReferenceList
	classes   *importer.ReferenceList
	subjects  *importer.ReferenceList
	semesters *importer.ReferenceList

	periodByNumber map[int]string
	semesterYear   map[string]string // semester id → academic year
	activeSemester *model.Semester
}

func (s *scheduleService) loadReferences(ctx context.Context) (*scheduleRefs, error) {
	refs := &scheduleRefs{
		teachers:       importer.NewReferenceList(),
		classes:        importer.NewReferenceList(),
		subjects:       importer.NewReferenceList(),
		semesters:      importer.NewReferenceList(),
		periodByNumber: make(map[int]string),
		semesterYear:   make(map[string]string),
	}

	teachers, _, err := s.repo.Teacher.List(ctx, repository.TeacherFilter{Limit: 10000})
	if err != nil {
		return nil, err
	}
	for i := range teachers {
		refs.teachers.Add(teachers[i].Name, teachers[i].TeacherID)
		refs.teachers.Add(teachers[i].NIP, teachers[i].TeacherID)
	}

	classes, err := s.repo.Class.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	for i := range classes {
		refs.classes.Add(classes[i].Name, classes[i].ClassID)
	}

	subjects, err := s.repo.Subject.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	for i := range subjects {
		refs.subjects.Add(subjects[i].Name, subjects[i].SubjectID)
		refs.subjects.Add(subjects[i].Code, subjects[i].SubjectID)
	}

	semesters, err := s.repo.Semester.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	for i := range semesters {
		sem := &semesters[i]
		refs.semesters.Add(fmt.Sprintf("%s %s", sem.Name, sem.AcademicYear), sem.SemesterID)
		refs.semesters.Add(sem.Name, sem.SemesterID)
		refs.semesterYear[sem.SemesterID] = sem.AcademicYear
		if sem.IsActive {
			refs.activeSemester = sem
		}
	}

	periods, err := s.repo.Period.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	for i := range periods {
		refs.periodByNumber[periods[i].Number] = periods[i].PeriodID
	}

	return refs, nil
}

func (s *scheduleService) importRow(ctx context.Context, raw importer.RawRow, refs *scheduleRefs) importer.RowOutcome {
	rec, missing := importer.ScheduleSchema.Normalize(raw)
	if rec == nil {
		return importer.RowOutcome{
			Err: importer.RowError(raw.Number, "kolom wajib kosong: %s", missing[0]),
		}
	}

	teacherID, ok := refs.teachers.Resolve(rec.Get(importer.KeyTeacher))
	if !ok {
		return importer.RowOutcome{Err: importer.NotFoundError(rec.Row, "Guru", rec.Get(importer.KeyTeacher))}
	}
	classID, ok := refs.classes.Resolve(rec.Get(importer.KeyClass))
	if !ok {
		return importer.RowOutcome{Err: importer.NotFoundError(rec.Row, "Kelas", rec.Get(importer.KeyClass))}
	}
	subjectID, ok := refs.subjects.Resolve(rec.Get(importer.KeySubject))
	if !ok {
		return importer.RowOutcome{Err: importer.NotFoundError(rec.Row, "Mata pelajaran", rec.Get(importer.KeySubject))}
	}

	day, ok := dayNumbers[normalizeDayKey(rec.Get(importer.KeyDay))]
	if !ok {
		return importer.RowOutcome{Err: importer.RowError(rec.Row, "hari tidak valid: %s", rec.Get(importer.KeyDay))}
	}

	periodNumber, err := strconv.Atoi(rec.Get(importer.KeyPeriod))
	if err != nil {
		return importer.RowOutcome{Err: importer.RowError(rec.Row, "jam ke tidak valid: %s", rec.Get(importer.KeyPeriod))}
	}
	periodID, ok := refs.periodByNumber[periodNumber]
	if !ok {
		return importer.RowOutcome{Err: importer.NotFoundError(rec.Row, "Jam ke", rec.Get(importer.KeyPeriod))}
	}

	// Semester names in sheets are loose: "Ganjil", "Semester Ganjil
	// 2024" and the like all resolve against the catalogue. A blank
	// cell falls back to the active semester.
	var semesterID string
	if cell := rec.Get(importer.KeySemester); cell != "" {
		semesterID, ok = refs.semesters.ResolveLoose(cell)
		if !ok {
			return importer.RowOutcome{Err: importer.NotFoundError(rec.Row, "Semester", cell)}
		}
	} else {
		if refs.activeSemester == nil {
			return importer.RowOutcome{Err: importer.RowError(rec.Row, "semester kosong dan belum ada semester aktif")}
		}
		semesterID = refs.activeSemester.SemesterID
	}

	academicYear := rec.Get(importer.KeyAcademicYear)
	if academicYear == "" {
		academicYear = refs.semesterYear[semesterID]
	}

	schedule := &model.Schedule{
		TeacherID:    teacherID,
		ClassID:      classID,
		SubjectID:    subjectID,
		DayOfWeek:    day,
		PeriodID:     periodID,
		SemesterID:   semesterID,
		AcademicYear: academicYear,
	}

	err = s.repo.Transaction(ctx, func(tx *repository.Repository) error {
		key := conflictKey(schedule, "")
		if n, err := tx.Schedule.CountTeacherConflict(ctx, key); err != nil {
			return err
		} else if n > 0 {
			return ErrTeacherConflict
		}
		if n, err := tx.Schedule.CountClassConflict(ctx, key); err != nil {
			return err
		} else if n > 0 {
			return ErrClassConflict
		}
		return tx.Schedule.Create(ctx, schedule)
	})

	switch {
	case err == nil:
		return importer.RowOutcome{}
	case errors.Is(err, ErrTeacherConflict), errors.Is(err, ErrClassConflict):
		return importer.RowOutcome{Err: importer.RowError(rec.Row, "%s", err.Error())}
	default:
		s.logger.Error("gagal menyimpan baris import jadwal",
			zap.Int("row", rec.Row), zap.Error(err))
		return importer.RowOutcome{Err: importer.RowError(rec.Row, "gagal menyimpan data")}
	}
}

func (s *scheduleService) validateRefs(ctx context.Context, sch *model.Schedule) error {
	if _, err := s.repo.Teacher.GetByID(ctx, sch.TeacherID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrTeacherNotFound
		}
		return err
	}
	if _, err := s.repo.Class.GetByID(ctx, sch.ClassID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrClassNotFound
		}
		return err
	}
	if _, err := s.repo.Subject.GetByID(ctx, sch.SubjectID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrSubjectNotFound
		}
		return err
	}
	if _, err := s.repo.Period.GetByID(ctx, sch.PeriodID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrPeriodNotFound
		}
		return err
	}
	if _, err := s.repo.Semester.GetByID(ctx, sch.SemesterID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrSemesterNotFound
		}
		return err
	}
	return nil
}

func (s *scheduleService) checkConflicts(ctx context.Context, sch *model.Schedule, excludeID string) error {
	key := conflictKey(sch, excludeID)
	if n, err := s.repo.Schedule.CountTeacherConflict(ctx, key); err != nil {
		return err
	} else if n > 0 {
		return ErrTeacherConflict
	}
	if n, err := s.repo.Schedule.CountClassConflict(ctx, key); err != nil {
		return err
	} else if n > 0 {
		return ErrClassConflict
	}
	return nil
}

func conflictKey(sch *model.Schedule, excludeID string) repository.ConflictKey {
	return repository.ConflictKey{
		TeacherID:    sch.TeacherID,
		ClassID:      sch.ClassID,
		DayOfWeek:    sch.DayOfWeek,
		PeriodID:     sch.PeriodID,
		SemesterID:   sch.SemesterID,
		AcademicYear: sch.AcademicYear,
		ExcludeID:    excludeID,
	}
}
