package repository

import (
	"context"

	"gorm.io/gorm"
)

// Repository aggregates every data-access interface behind one entry
// point. Services receive this aggregate; handlers never touch it.
type Repository struct {
	User         UserRepository
	Student      StudentRepository
	Teacher      TeacherRepository
	Class        ClassRepository
	Subject      SubjectRepository
	Semester     SemesterRepository
	Period       PeriodRepository
	Schedule     ScheduleRepository
	Attendance   AttendanceRepository
	Grade        GradeRepository
	LessonPlan   LessonPlanRepository
	Activity     ActivityRepository
	Announcement AnnouncementRepository

	db *gorm.DB
}

// NewRepository builds the aggregate over one GORM handle.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{
		User:         NewUserRepo(db),
		Student:      NewStudentRepo(db),
		Teacher:      NewTeacherRepo(db),
		Class:        NewClassRepo(db),
		Subject:      NewSubjectRepo(db),
		Semester:     NewSemesterRepo(db),
		Period:       NewPeriodRepo(db),
		Schedule:     NewScheduleRepo(db),
		Attendance:   NewAttendanceRepo(db),
		Grade:        NewGradeRepo(db),
		LessonPlan:   NewLessonPlanRepo(db),
		Activity:     NewActivityRepo(db),
		Announcement: NewAnnouncementRepo(db),
		db:           db,
	}
}

// Transaction runs fn inside one database transaction, handing it a
// Repository bound to the transaction handle. Import services call this
// once per row so a failed row rolls back alone.
func (r *Repository) Transaction(ctx context.Context, fn func(tx *Repository) error) error {
	if r.db == nil {
		// Mock aggregates in tests have no handle; run fn directly.
		return fn(r)
	}
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(NewRepository(tx))
	})
}
