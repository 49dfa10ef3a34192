package handler

import "siakad/backend/internal/service"

// Handler aggregates every HTTP handler.
type Handler struct {
	Auth         *AuthHandler
	User         *UserHandler
	Student      *StudentHandler
	Teacher      *TeacherHandler
	Class        *ClassHandler
	Subject      *SubjectHandler
	Semester     *SemesterHandler
	Schedule     *ScheduleHandler
	Attendance   *AttendanceHandler
	Grade        *GradeHandler
	LessonPlan   *LessonPlanHandler
	Activity     *ActivityHandler
	Announcement *AnnouncementHandler
	Export       *ExportHandler
}

// NewHandler wires the aggregate from the service aggregate.
func NewHandler(svc *service.Service) *Handler {
	return &Handler{
		Auth:         NewAuthHandler(svc.Auth),
		User:         NewUserHandler(svc.User),
		Student:      NewStudentHandler(svc.Student),
		Teacher:      NewTeacherHandler(svc.Teacher),
		Class:        NewClassHandler(svc.Class),
		Subject:      NewSubjectHandler(svc.Subject),
		Semester:     NewSemesterHandler(svc.Semester),
		Schedule:     NewScheduleHandler(svc.Schedule),
		Attendance:   NewAttendanceHandler(svc.Attendance, svc.Teacher),
		Grade:        NewGradeHandler(svc.Grade, svc.Teacher),
		LessonPlan:   NewLessonPlanHandler(svc.LessonPlan, svc.Teacher),
		Activity:     NewActivityHandler(svc.Activity, svc.Teacher),
		Announcement: NewAnnouncementHandler(svc.Announcement),
		Export:       NewExportHandler(svc.Export),
	}
}
