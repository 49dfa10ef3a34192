package service

import (
	"go.uber.org/zap"

	"siakad/backend/config"
	"siakad/backend/internal/notifier"
	"siakad/backend/internal/repository"
	"siakad/backend/pkg/jwt"
	"siakad/backend/pkg/redis"
)

// Service aggregates every business-logic entry point. Handlers receive
// this aggregate; repositories stay behind it.
type Service struct {
	Auth         AuthService
	User         UserService
	Student      StudentService
	Teacher      TeacherService
	Class        ClassService
	Subject      SubjectService
	Semester     SemesterService
	Schedule     ScheduleService
	Attendance   AttendanceService
	Grade        GradeService
	LessonPlan   LessonPlanService
	Activity     ActivityService
	Announcement AnnouncementService
	Export       ExportService
}

// NewService wires the aggregate.
func NewService(
	cfg *config.Config,
	repo *repository.Repository,
	jwtMgr *jwt.Manager,
	rdb *redis.Client,
	logger *zap.Logger,
) *Service {
	push := notifier.NewRedisNotifier(rdb, cfg.Notify.Queue, logger)

	return &Service{
		Auth:         NewAuthService(cfg, repo, jwtMgr, rdb, logger),
		User:         NewUserService(repo, logger),
		Student:      NewStudentService(cfg, repo, logger),
		Teacher:      NewTeacherService(cfg, repo, logger),
		Class:        NewClassService(repo, logger),
		Subject:      NewSubjectService(repo, logger),
		Semester:     NewSemesterService(repo, logger),
		Schedule:     NewScheduleService(cfg, repo, logger),
		Attendance:   NewAttendanceService(repo, logger),
		Grade:        NewGradeService(repo, logger),
		LessonPlan:   NewLessonPlanService(repo, logger),
		Activity:     NewActivityService(repo, logger),
		Announcement: NewAnnouncementService(repo, push, logger),
		Export:       NewExportService(repo, logger),
	}
}
