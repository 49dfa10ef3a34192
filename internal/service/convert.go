package service

import (
	"time"

	"siakad/backend/internal/dto"
	"siakad/backend/internal/model"
)

// ── model → DTO converters shared across services ──

const dateLayout = "2006-01-02"

func formatTime(t time.Time) string {
	return t.Format(time.RFC3339)
}

func formatDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(dateLayout)
}

func strOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func toUserResponse(u *model.User) dto.UserResponse {
	return dto.UserResponse{
		ID:                 u.UserID,
		Name:               u.Name,
		Email:              u.Email,
		Role:               u.Role,
		MustChangePassword: u.MustChangePassword,
		CreatedAt:          formatTime(u.CreatedAt),
	}
}

func toStudentBrief(s *model.Student) *dto.StudentBrief {
	if s == nil {
		return nil
	}
	return &dto.StudentBrief{ID: s.StudentID, NIS: s.NIS, Name: s.Name}
}

func toTeacherBrief(t *model.Teacher) *dto.TeacherBrief {
	if t == nil {
		return nil
	}
	return &dto.TeacherBrief{ID: t.TeacherID, NIP: t.NIP, Name: t.Name}
}

func toClassBrief(c *model.Class) *dto.ClassBrief {
	if c == nil {
		return nil
	}
	return &dto.ClassBrief{ID: c.ClassID, Name: c.Name, Level: c.Level}
}

func toSubjectBrief(s *model.Subject) *dto.SubjectBrief {
	if s == nil {
		return nil
	}
	return &dto.SubjectBrief{ID: s.SubjectID, Code: s.Code, Name: s.Name}
}

func toSubjectBriefs(subjects []model.Subject) []dto.SubjectBrief {
	if len(subjects) == 0 {
		return nil
	}
	out := make([]dto.SubjectBrief, len(subjects))
	for i := range subjects {
		out[i] = *toSubjectBrief(&subjects[i])
	}
	return out
}

func toSemesterBrief(s *model.Semester) *dto.SemesterBrief {
	if s == nil {
		return nil
	}
	return &dto.SemesterBrief{ID: s.SemesterID, Name: s.Name, AcademicYear: s.AcademicYear}
}

func toPeriodBrief(p *model.Period) *dto.PeriodBrief {
	if p == nil {
		return nil
	}
	return &dto.PeriodBrief{ID: p.PeriodID, Number: p.Number, StartTime: p.StartTime, EndTime: p.EndTime}
}

func toStudentResponse(s *model.Student) dto.StudentResponse {
	return dto.StudentResponse{
		ID:            s.StudentID,
		NIS:           s.NIS,
		Name:          s.Name,
		Gender:        s.Gender,
		BirthDate:     formatDate(s.BirthDate),
		ClassID:       strOrEmpty(s.ClassID),
		Class:         toClassBrief(s.Class),
		GuardianName:  s.GuardianName,
		GuardianPhone: s.GuardianPhone,
		UserID:        strOrEmpty(s.UserID),
		CreatedAt:     formatTime(s.CreatedAt),
	}
}

func toTeacherResponse(t *model.Teacher) dto.TeacherResponse {
	return dto.TeacherResponse{
		ID:        t.TeacherID,
		NIP:       t.NIP,
		Name:      t.Name,
		Phone:     t.Phone,
		UserID:    strOrEmpty(t.UserID),
		Subjects:  toSubjectBriefs(t.Subjects),
		CreatedAt: formatTime(t.CreatedAt),
	}
}

func toSubjectResponse(s *model.Subject) dto.SubjectResponse {
	return dto.SubjectResponse{
		ID:        s.SubjectID,
		Code:      s.Code,
		Name:      s.Name,
		CreatedAt: formatTime(s.CreatedAt),
	}
}

func toSemesterResponse(s *model.Semester) dto.SemesterResponse {
	return dto.SemesterResponse{
		ID:           s.SemesterID,
		Name:         s.Name,
		AcademicYear: s.AcademicYear,
		IsActive:     s.IsActive,
		CreatedAt:    formatTime(s.CreatedAt),
	}
}

func toPeriodResponse(p *model.Period) dto.PeriodResponse {
	return dto.PeriodResponse{
		ID:        p.PeriodID,
		Number:    p.Number,
		StartTime: p.StartTime,
		EndTime:   p.EndTime,
	}
}

func toScheduleResponse(s *model.Schedule) dto.ScheduleResponse {
	return dto.ScheduleResponse{
		ID:           s.ScheduleID,
		Teacher:      toTeacherBrief(s.Teacher),
		Class:        toClassBrief(s.Class),
		Subject:      toSubjectBrief(s.Subject),
		DayOfWeek:    s.DayOfWeek,
		DayName:      model.DayNames[s.DayOfWeek],
		Period:       toPeriodBrief(s.Period),
		Semester:     toSemesterBrief(s.Semester),
		AcademicYear: s.AcademicYear,
		CreatedAt:    formatTime(s.CreatedAt),
	}
}

func toAttendanceResponse(a *model.Attendance, action string) dto.AttendanceResponse {
	return dto.AttendanceResponse{
		ID:        a.AttendanceID,
		Student:   toStudentBrief(a.Student),
		Subject:   toSubjectBrief(a.Subject),
		TeacherID: a.TeacherID,
		Date:      a.Date.Format(dateLayout),
		Status:    a.Status,
		Notes:     a.Notes,
		Action:    action,
	}
}

func toGradeResponse(g *model.Grade) dto.GradeResponse {
	return dto.GradeResponse{
		ID:        g.GradeID,
		Student:   toStudentBrief(g.Student),
		Subject:   toSubjectBrief(g.Subject),
		Semester:  toSemesterBrief(g.Semester),
		TeacherID: g.TeacherID,
		Kind:      g.Kind,
		Score:     g.Score,
		Notes:     g.Notes,
		CreatedAt: formatTime(g.CreatedAt),
	}
}

func toLessonPlanResponse(p *model.LessonPlan) dto.LessonPlanResponse {
	resp := dto.LessonPlanResponse{
		ID:         p.LessonPlanID,
		Teacher:    toTeacherBrief(p.Teacher),
		Subject:    toSubjectBrief(p.Subject),
		Class:      toClassBrief(p.Class),
		Title:      p.Title,
		FileURL:    p.FileURL,
		Status:     p.Status,
		ReviewNote: p.ReviewNote,
		ReviewedBy: strOrEmpty(p.ReviewedBy),
		CreatedAt:  formatTime(p.CreatedAt),
	}
	if p.ReviewedAt != nil {
		resp.ReviewedAt = formatTime(*p.ReviewedAt)
	}
	return resp
}

func toActivityResponse(a *model.ClassActivity) dto.ActivityResponse {
	return dto.ActivityResponse{
		ID:               a.ActivityID,
		Class:            toClassBrief(a.Class),
		Teacher:          toTeacherBrief(a.Teacher),
		SubjectID:        strOrEmpty(a.SubjectID),
		Title:            a.Title,
		Description:      a.Description,
		DueDate:          formatDate(a.DueDate),
		TargetStudentIDs: a.TargetStudentIDs,
		CreatedAt:        formatTime(a.CreatedAt),
	}
}

func toAnnouncementResponse(a *model.Announcement) dto.AnnouncementResponse {
	resp := dto.AnnouncementResponse{
		ID:        a.AnnouncementID,
		Title:     a.Title,
		Body:      a.Body,
		Audience:  a.Audience,
		ClassID:   strOrEmpty(a.ClassID),
		CreatedBy: strOrEmpty(a.CreatedBy),
		CreatedAt: formatTime(a.CreatedAt),
	}
	if a.PublishedAt != nil {
		resp.PublishedAt = formatTime(*a.PublishedAt)
	}
	return resp
}
