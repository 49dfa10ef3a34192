package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"siakad/backend/internal/dto"
	"siakad/backend/internal/importer"
	"siakad/backend/internal/model"
	"siakad/backend/internal/repository"
)

var (
	ErrAttendanceInvalidRange = errors.New("rentang tanggal tidak valid")
	ErrInvalidDate            = errors.New("tanggal tidak valid")
)

// Attendance write actions, reported back to the caller.
const (
	ActionCreated = "created"
	ActionUpdated = "updated"
)

// AttendanceService records attendance. Posting the same
// (student, subject, date) tuple again by the same teacher updates the
// existing row instead of duplicating it; the response says which
// happened.
type AttendanceService interface {
	Record(ctx context.Context, teacherID string, req *dto.RecordAttendanceRequest) (*dto.AttendanceResponse, error)
	RecordBulk(ctx context.Context, teacherID string, req *dto.BulkAttendanceRequest) (*dto.BulkAttendanceResponse, error)
	List(ctx context.Context, req *dto.AttendanceListRequest) ([]dto.AttendanceResponse, int64, error)
	Recap(ctx context.Context, req *dto.RecapRequest) (*dto.RecapResponse, error)
}

type attendanceService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewAttendanceService wires the attendance service.
func NewAttendanceService(repo *repository.Repository, logger *zap.Logger) AttendanceService {
	return &attendanceService{repo: repo, logger: logger}
}

func (s *attendanceService) Record(ctx context.Context, teacherID string, req *dto.RecordAttendanceRequest) (*dto.AttendanceResponse, error) {
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

	date, ok := importer.ParseISODate(req.Date)
	if !ok {
		return nil, ErrInvalidDate
	}

	att, action, err := s.upsert(ctx, s.repo, teacherID, req.StudentID, req.SubjectID, date, req.Status, req.Notes)
	if err != nil {
		return nil, err
	}

	resp := toAttendanceResponse(att, action)
	return &resp, nil
}

func (s *attendanceService) RecordBulk(ctx context.Context, teacherID string, req *dto.BulkAttendanceRequest) (*dto.BulkAttendanceResponse, error) {
	if _, err := s.repo.Subject.GetByID(ctx, req.SubjectID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSubjectNotFound
		}
		return nil, err
	}

	date, ok := importer.ParseISODate(req.Date)
	if !ok {
		return nil, ErrInvalidDate
	}

	out := &dto.BulkAttendanceResponse{}

	// The whole sitting commits or rolls back together: a half-saved
	// class register is worse than a failed request.
	err := s.repo.Transaction(ctx, func(tx *repository.Repository) error {
		for _, entry := range req.Entries {
			if _, err := tx.Student.GetByID(ctx, entry.StudentID); err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return ErrStudentNotFound
				}
				return err
			}

			att, action, err := s.upsert(ctx, tx, teacherID, entry.StudentID, req.SubjectID, date, entry.Status, entry.Notes)
			if err != nil {
				return err
			}
			if action == ActionCreated {
				out.Created++
			} else {
				out.Updated++
			}
			out.Rows = append(out.Rows, toAttendanceResponse(att, action))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (s *attendanceService) upsert(ctx context.Context, repo *repository.Repository, teacherID, studentID, subjectID string, date time.Time, status, notes string) (*model.Attendance, string, error) {
	key := repository.AttendanceKey{
		StudentID: studentID,
		SubjectID: subjectID,
		TeacherID: teacherID,
		Date:      date,
	}

	existing, err := repo.Attendance.FindByKey(ctx, key)
	switch {
	case err == nil:
		existing.Status = status
		existing.Notes = notes
		if err := repo.Attendance.Update(ctx, existing); err != nil {
			return nil, "", err
		}
		return existing, ActionUpdated, nil

	case errors.Is(err, gorm.ErrRecordNotFound):
		att := &model.Attendance{
			StudentID: studentID,
			SubjectID: subjectID,
			TeacherID: teacherID,
			Date:      date,
			Status:    status,
			Notes:     notes,
		}
		if err := repo.Attendance.Create(ctx, att); err != nil {
			return nil, "", err
		}
		return att, ActionCreated, nil

	default:
		return nil, "", err
	}
}

func (s *attendanceService) List(ctx context.Context, req *dto.AttendanceListRequest) ([]dto.AttendanceResponse, int64, error) {
	filter := repository.AttendanceFilter{
		StudentID: req.StudentID,
		ClassID:   req.ClassID,
		SubjectID: req.SubjectID,
		Status:    req.Status,
		Offset:    req.GetOffset(),
		Limit:     req.GetPageSize(),
	}
	if req.DateFrom != "" {
		if t, ok := importer.ParseISODate(req.DateFrom); ok {
			filter.DateFrom = &t
		}
	}
	if req.DateTo != "" {
		if t, ok := importer.ParseISODate(req.DateTo); ok {
			filter.DateTo = &t
		}
	}

	rows, total, err := s.repo.Attendance.List(ctx, filter)
	if err != nil {
		s.logger.Error("gagal list absensi", zap.Error(err))
		return nil, 0, err
	}

	out := make([]dto.AttendanceResponse, len(rows))
	for i := range rows {
		out[i] = toAttendanceResponse(&rows[i], "")
	}
	return out, total, nil
}

// Recap totals each student's H/S/I/A inside the range. Students with
// no rows still appear, all zero.
func (s *attendanceService) Recap(ctx context.Context, req *dto.RecapRequest) (*dto.RecapResponse, error) {
	from, okFrom := importer.ParseISODate(req.DateFrom)
	to, okTo := importer.ParseISODate(req.DateTo)
	if !okFrom || !okTo || to.Before(from) {
		return nil, ErrAttendanceInvalidRange
	}

	if _, err := s.repo.Class.GetByID(ctx, req.ClassID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrClassNotFound
		}
		return nil, err
	}

	students, err := s.repo.Student.ListByClass(ctx, req.ClassID)
	if err != nil {
		return nil, err
	}
	rows, err := s.repo.Attendance.ListByClassRange(ctx, req.ClassID, from, to)
	if err != nil {
		return nil, err
	}

	byStudent := make(map[string]*dto.RecapRow, len(students))
	order := make([]string, 0, len(students))
	for i := range students {
		byStudent[students[i].StudentID] = &dto.RecapRow{Student: *toStudentBrief(&students[i])}
		order = append(order, students[i].StudentID)
	}

	for i := range rows {
		row, ok := byStudent[rows[i].StudentID]
		if !ok {
			continue // student left the class mid-range
		}
		switch rows[i].Status {
		case model.AttendancePresent:
			row.Present++
		case model.AttendanceSick:
			row.Sick++
		case model.AttendanceExcused:
			row.Excused++
		case model.AttendanceAbsent:
			row.Absent++
		}
	}

	resp := &dto.RecapResponse{
		ClassID:  req.ClassID,
		DateFrom: req.DateFrom,
		DateTo:   req.DateTo,
	}
	for _, id := range order {
		resp.Rows = append(resp.Rows, *byStudent[id])
	}
	return resp, nil
}
