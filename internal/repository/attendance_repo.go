package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"siakad/backend/internal/model"
)

// AttendanceFilter narrows List queries.
type AttendanceFilter struct {
	StudentID string
	ClassID   string
	SubjectID string
	Status    string
	DateFrom  *time.Time
	DateTo    *time.Time
	Offset    int
	Limit     int
}

// AttendanceKey identifies the row an upsert targets.
type AttendanceKey struct {
	StudentID string
	SubjectID string
	TeacherID string
	Date      time.Time
}

// AttendanceRepository is the attendance data-access interface.
type AttendanceRepository interface {
	Create(ctx context.Context, att *model.Attendance) error
	Update(ctx context.Context, att *model.Attendance) error
	// FindByKey fetches the row a repeated posting would duplicate.
	FindByKey(ctx context.Context, key AttendanceKey) (*model.Attendance, error)
	List(ctx context.Context, f AttendanceFilter) ([]model.Attendance, int64, error)
	// ListByClassRange returns every row for a class's students inside
	// [from, to], for recap aggregation.
	ListByClassRange(ctx context.Context, classID string, from, to time.Time) ([]model.Attendance, error)
}

type attendanceRepo struct {
	db *gorm.DB
}

// NewAttendanceRepo builds the GORM-backed AttendanceRepository.
func NewAttendanceRepo(db *gorm.DB) AttendanceRepository {
	return &attendanceRepo{db: db}
}

func (r *attendanceRepo) Create(ctx context.Context, att *model.Attendance) error {
	return r.db.WithContext(ctx).Create(att).Error
}

func (r *attendanceRepo) Update(ctx context.Context, att *model.Attendance) error {
	return r.db.WithContext(ctx).Save(att).Error
}

func (r *attendanceRepo) FindByKey(ctx context.Context, key AttendanceKey) (*model.Attendance, error) {
	var att model.Attendance
	err := r.db.WithContext(ctx).
		Where("student_id = ? AND subject_id = ? AND teacher_id = ? AND date = ?",
			key.StudentID, key.SubjectID, key.TeacherID, key.Date).
		First(&att).Error
	if err != nil {
		return nil, err
	}
	return &att, nil
}

func (r *attendanceRepo) List(ctx context.Context, f AttendanceFilter) ([]model.Attendance, int64, error) {
	var rows []model.Attendance
	var total int64

	db := r.db.WithContext(ctx).Model(&model.Attendance{})
	if f.StudentID != "" {
		db = db.Where("attendance.student_id = ?", f.StudentID)
	}
	if f.ClassID != "" {
		db = db.Joins("JOIN students s ON s.student_id = attendance.student_id").
			Where("s.class_id = ?", f.ClassID)
	}
	if f.SubjectID != "" {
		db = db.Where("attendance.subject_id = ?", f.SubjectID)
	}
	if f.Status != "" {
		db = db.Where("attendance.status = ?", f.Status)
	}
	if f.DateFrom != nil {
		db = db.Where("attendance.date >= ?", *f.DateFrom)
	}
	if f.DateTo != nil {
		db = db.Where("attendance.date <= ?", *f.DateTo)
	}

	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	if err := db.Preload("Student").
		Preload("Subject").
		Offset(f.Offset).Limit(f.Limit).
		Order("attendance.date DESC").
		Find(&rows).Error; err != nil {
		return nil, 0, err
	}
	return rows, total, nil
}

func (r *attendanceRepo) ListByClassRange(ctx context.Context, classID string, from, to time.Time) ([]model.Attendance, error) {
	var rows []model.Attendance
	err := r.db.WithContext(ctx).
		Joins("JOIN students s ON s.student_id = attendance.student_id").
		Where("s.class_id = ? AND attendance.date BETWEEN ? AND ?", classID, from, to).
		Preload("Student").
		Find(&rows).Error
	return rows, err
}
