package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"siakad/backend/internal/model"
	"siakad/backend/internal/repository"
	pkgerrors "siakad/backend/pkg/errors"
)

// Map-backed repository doubles. Slices keep insertion order so list
// assertions stay deterministic.

func newMockRepository() *repository.Repository {
	students := &mockStudentRepo{}
	return &repository.Repository{
		User:         &mockUserRepo{},
		Student:      students,
		Teacher:      &mockTeacherRepo{},
		Class:        &mockClassRepo{},
		Subject:      &mockSubjectRepo{},
		Semester:     &mockSemesterRepo{},
		Period:       &mockPeriodRepo{},
		Schedule:     &mockScheduleRepo{},
		Attendance:   &mockAttendanceRepo{students: students},
		Grade:        &mockGradeRepo{},
		LessonPlan:   &mockLessonPlanRepo{},
		Activity:     &mockActivityRepo{},
		Announcement: &mockAnnouncementRepo{},
	}
}

func newID() string { return uuid.New().String() }

// ── users ──

type mockUserRepo struct {
	rows []*model.User
}

func (m *mockUserRepo) Create(_ context.Context, u *model.User) error {
	if u.UserID == "" {
		u.UserID = newID()
	}
	m.rows = append(m.rows, u)
	return nil
}

func (m *mockUserRepo) GetByID(_ context.Context, id string) (*model.User, error) {
	for _, u := range m.rows {
		if u.UserID == id {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockUserRepo) GetByEmail(_ context.Context, email string) (*model.User, error) {
	for _, u := range m.rows {
		if strings.EqualFold(u.Email, email) {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockUserRepo) Update(_ context.Context, u *model.User) error {
	for i, row := range m.rows {
		if row.UserID == u.UserID {
			m.rows[i] = u
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (m *mockUserRepo) Delete(_ context.Context, id string) error {
	for i, row := range m.rows {
		if row.UserID == id {
			m.rows = append(m.rows[:i], m.rows[i+1:]...)
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (m *mockUserRepo) List(_ context.Context, f repository.UserFilter) ([]model.User, int64, error) {
	var out []model.User
	for _, u := range m.rows {
		if f.Role != "" && u.Role != f.Role {
			continue
		}
		out = append(out, *u)
	}
	return out, int64(len(out)), nil
}

// ── students ──

type mockStudentRepo struct {
	rows []*model.Student
}

func (m *mockStudentRepo) Create(_ context.Context, s *model.Student) error {
	if s.StudentID == "" {
		s.StudentID = newID()
	}
	m.rows = append(m.rows, s)
	return nil
}

func (m *mockStudentRepo) GetByID(_ context.Context, id string) (*model.Student, error) {
	for _, s := range m.rows {
		if s.StudentID == id {
			return s, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockStudentRepo) GetByNIS(_ context.Context, nis string) (*model.Student, error) {
	for _, s := range m.rows {
		if s.NIS == nis {
			return s, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockStudentRepo) GetByUserID(_ context.Context, userID string) (*model.Student, error) {
	for _, s := range m.rows {
		if s.UserID != nil && *s.UserID == userID {
			return s, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockStudentRepo) Update(_ context.Context, s *model.Student) error {
	for i, row := range m.rows {
		if row.StudentID == s.StudentID {
			m.rows[i] = s
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (m *mockStudentRepo) Delete(_ context.Context, id string) error {
	for i, row := range m.rows {
		if row.StudentID == id {
			m.rows = append(m.rows[:i], m.rows[i+1:]...)
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (m *mockStudentRepo) List(_ context.Context, f repository.StudentFilter) ([]model.Student, int64, error) {
	var out []model.Student
	for _, s := range m.rows {
		if f.ClassID != "" && (s.ClassID == nil || *s.ClassID != f.ClassID) {
			continue
		}
		out = append(out, *s)
	}
	return out, int64(len(out)), nil
}

func (m *mockStudentRepo) ListByClass(_ context.Context, classID string) ([]model.Student, error) {
	var out []model.Student
	for _, s := range m.rows {
		if s.ClassID != nil && *s.ClassID == classID {
			out = append(out, *s)
		}
	}
	return out, nil
}

func (m *mockStudentRepo) CountByClass(_ context.Context, classID string) (int64, error) {
	var n int64
	for _, s := range m.rows {
		if s.ClassID != nil && *s.ClassID == classID {
			n++
		}
	}
	return n, nil
}

// ── teachers ──

type mockTeacherRepo struct {
	rows []*model.Teacher
}

func (m *mockTeacherRepo) Create(_ context.Context, t *model.Teacher) error {
	if t.TeacherID == "" {
		t.TeacherID = newID()
	}
	m.rows = append(m.rows, t)
	return nil
}

func (m *mockTeacherRepo) GetByID(_ context.Context, id string) (*model.Teacher, error) {
	for _, t := range m.rows {
		if t.TeacherID == id {
			return t, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockTeacherRepo) GetByNIP(_ context.Context, nip string) (*model.Teacher, error) {
	for _, t := range m.rows {
		if t.NIP == nip {
			return t, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockTeacherRepo) GetByUserID(_ context.Context, userID string) (*model.Teacher, error) {
	for _, t := range m.rows {
		if t.UserID != nil && *t.UserID == userID {
			return t, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockTeacherRepo) Update(_ context.Context, t *model.Teacher) error {
	for i, row := range m.rows {
		if row.TeacherID == t.TeacherID {
			m.rows[i] = t
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (m *mockTeacherRepo) Delete(_ context.Context, id string) error {
	for i, row := range m.rows {
		if row.TeacherID == id {
			m.rows = append(m.rows[:i], m.rows[i+1:]...)
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (m *mockTeacherRepo) List(_ context.Context, _ repository.TeacherFilter) ([]model.Teacher, int64, error) {
	out := make([]model.Teacher, 0, len(m.rows))
	for _, t := range m.rows {
		out = append(out, *t)
	}
	return out, int64(len(out)), nil
}

func (m *mockTeacherRepo) ReplaceSubjects(_ context.Context, t *model.Teacher, subjects []model.Subject) error {
	t.Subjects = subjects
	return nil
}

// ── classes ──

type mockClassRepo struct {
	rows []*model.Class
}

func (m *mockClassRepo) Create(_ context.Context, c *model.Class) error {
	if c.ClassID == "" {
		c.ClassID = newID()
	}
	m.rows = append(m.rows, c)
	return nil
}

func (m *mockClassRepo) GetByID(_ context.Context, id string) (*model.Class, error) {
	for _, c := range m.rows {
		if c.ClassID == id {
			return c, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockClassRepo) GetByName(_ context.Context, name string) (*model.Class, error) {
	for _, c := range m.rows {
		if c.Name == name {
			return c, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockClassRepo) Update(_ context.Context, c *model.Class) error {
	for i, row := range m.rows {
		if row.ClassID == c.ClassID {
			m.rows[i] = c
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (m *mockClassRepo) Delete(_ context.Context, id string) error {
	for i, row := range m.rows {
		if row.ClassID == id {
			m.rows = append(m.rows[:i], m.rows[i+1:]...)
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (m *mockClassRepo) List(_ context.Context, _ repository.ClassFilter) ([]model.Class, int64, error) {
	out := make([]model.Class, 0, len(m.rows))
	for _, c := range m.rows {
		out = append(out, *c)
	}
	return out, int64(len(out)), nil
}

func (m *mockClassRepo) ListAll(_ context.Context) ([]model.Class, error) {
	out := make([]model.Class, 0, len(m.rows))
	for _, c := range m.rows {
		out = append(out, *c)
	}
	return out, nil
}

func (m *mockClassRepo) ReplaceSubjects(_ context.Context, c *model.Class, subjects []model.Subject) error {
	c.Subjects = subjects
	return nil
}

// ── subjects ──

type mockSubjectRepo struct {
	rows []*model.Subject
}

func (m *mockSubjectRepo) Create(_ context.Context, s *model.Subject) error {
	if s.SubjectID == "" {
		s.SubjectID = newID()
	}
	m.rows = append(m.rows, s)
	return nil
}

func (m *mockSubjectRepo) GetByID(_ context.Context, id string) (*model.Subject, error) {
	for _, s := range m.rows {
		if s.SubjectID == id {
			return s, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockSubjectRepo) GetByCode(_ context.Context, code string) (*model.Subject, error) {
	for _, s := range m.rows {
		if s.Code == code {
			return s, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockSubjectRepo) GetByName(_ context.Context, name string) (*model.Subject, error) {
	for _, s := range m.rows {
		if s.Name == name {
			return s, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockSubjectRepo) GetByIDs(_ context.Context, ids []string) ([]model.Subject, error) {
	var out []model.Subject
	for _, id := range ids {
		for _, s := range m.rows {
			if s.SubjectID == id {
				out = append(out, *s)
				break
			}
		}
	}
	return out, nil
}

func (m *mockSubjectRepo) Update(_ context.Context, s *model.Subject) error {
	for i, row := range m.rows {
		if row.SubjectID == s.SubjectID {
			m.rows[i] = s
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (m *mockSubjectRepo) Delete(_ context.Context, id string) error {
	for i, row := range m.rows {
		if row.SubjectID == id {
			m.rows = append(m.rows[:i], m.rows[i+1:]...)
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (m *mockSubjectRepo) List(_ context.Context, _ repository.SubjectFilter) ([]model.Subject, int64, error) {
	out := make([]model.Subject, 0, len(m.rows))
	for _, s := range m.rows {
		out = append(out, *s)
	}
	return out, int64(len(out)), nil
}

func (m *mockSubjectRepo) ListAll(_ context.Context) ([]model.Subject, error) {
	out := make([]model.Subject, 0, len(m.rows))
	for _, s := range m.rows {
		out = append(out, *s)
	}
	return out, nil
}

// ── semesters ──

type mockSemesterRepo struct {
	rows []*model.Semester
}

func (m *mockSemesterRepo) Create(_ context.Context, s *model.Semester) error {
	if s.SemesterID == "" {
		s.SemesterID = newID()
	}
	m.rows = append(m.rows, s)
	return nil
}

func (m *mockSemesterRepo) GetByID(_ context.Context, id string) (*model.Semester, error) {
	for _, s := range m.rows {
		if s.SemesterID == id {
			return s, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockSemesterRepo) GetActive(_ context.Context) (*model.Semester, error) {
	for _, s := range m.rows {
		if s.IsActive {
			return s, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockSemesterRepo) Update(_ context.Context, s *model.Semester) error {
	for i, row := range m.rows {
		if row.SemesterID == s.SemesterID {
			m.rows[i] = s
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (m *mockSemesterRepo) Delete(_ context.Context, id string) error {
	for i, row := range m.rows {
		if row.SemesterID == id {
			m.rows = append(m.rows[:i], m.rows[i+1:]...)
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (m *mockSemesterRepo) ListAll(_ context.Context) ([]model.Semester, error) {
	out := make([]model.Semester, 0, len(m.rows))
	for _, s := range m.rows {
		out = append(out, *s)
	}
	return out, nil
}

func (m *mockSemesterRepo) Activate(_ context.Context, id string) error {
	found := false
	for _, s := range m.rows {
		if s.SemesterID == id {
			s.IsActive = true
			found = true
		} else {
			s.IsActive = false
		}
	}
	if !found {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// ── periods ──

type mockPeriodRepo struct {
	rows []*model.Period
}

func (m *mockPeriodRepo) Create(_ context.Context, p *model.Period) error {
	if p.PeriodID == "" {
		p.PeriodID = newID()
	}
	m.rows = append(m.rows, p)
	return nil
}

func (m *mockPeriodRepo) GetByID(_ context.Context, id string) (*model.Period, error) {
	for _, p := range m.rows {
		if p.PeriodID == id {
			return p, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockPeriodRepo) GetByNumber(_ context.Context, number int) (*model.Period, error) {
	for _, p := range m.rows {
		if p.Number == number {
			return p, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockPeriodRepo) Update(_ context.Context, p *model.Period) error {
	for i, row := range m.rows {
		if row.PeriodID == p.PeriodID {
			m.rows[i] = p
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (m *mockPeriodRepo) Delete(_ context.Context, id string) error {
	for i, row := range m.rows {
		if row.PeriodID == id {
			m.rows = append(m.rows[:i], m.rows[i+1:]...)
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (m *mockPeriodRepo) ListAll(_ context.Context) ([]model.Period, error) {
	out := make([]model.Period, 0, len(m.rows))
	for _, p := range m.rows {
		out = append(out, *p)
	}
	return out, nil
}

// ── schedules ──

type mockScheduleRepo struct {
	rows []*model.Schedule
}

func (m *mockScheduleRepo) Create(_ context.Context, s *model.Schedule) error {
	if s.ScheduleID == "" {
		s.ScheduleID = newID()
	}
	if s.Version == 0 {
		s.Version = 1
	}
	m.rows = append(m.rows, s)
	return nil
}

func (m *mockScheduleRepo) GetByID(_ context.Context, id string) (*model.Schedule, error) {
	for _, s := range m.rows {
		if s.ScheduleID == id {
			return s, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockScheduleRepo) Update(_ context.Context, s *model.Schedule) error {
	for i, row := range m.rows {
		if row.ScheduleID == s.ScheduleID {
			if row.Version != s.Version {
				return pkgerrors.ErrOptimisticLock
			}
			s.Version++
			m.rows[i] = s
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (m *mockScheduleRepo) Delete(_ context.Context, id string) error {
	for i, row := range m.rows {
		if row.ScheduleID == id {
			m.rows = append(m.rows[:i], m.rows[i+1:]...)
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (m *mockScheduleRepo) List(_ context.Context, f repository.ScheduleFilter) ([]model.Schedule, int64, error) {
	var out []model.Schedule
	for _, s := range m.rows {
		if f.ClassID != "" && s.ClassID != f.ClassID {
			continue
		}
		if f.TeacherID != "" && s.TeacherID != f.TeacherID {
			continue
		}
		if f.SemesterID != "" && s.SemesterID != f.SemesterID {
			continue
		}
		out = append(out, *s)
	}
	return out, int64(len(out)), nil
}

func (m *mockScheduleRepo) CountTeacherConflict(_ context.Context, key repository.ConflictKey) (int64, error) {
	var n int64
	for _, s := range m.rows {
		if s.ScheduleID == key.ExcludeID {
			continue
		}
		if s.TeacherID == key.TeacherID && s.DayOfWeek == key.DayOfWeek &&
			s.PeriodID == key.PeriodID && s.SemesterID == key.SemesterID &&
			s.AcademicYear == key.AcademicYear {
			n++
		}
	}
	return n, nil
}

func (m *mockScheduleRepo) CountClassConflict(_ context.Context, key repository.ConflictKey) (int64, error) {
	var n int64
	for _, s := range m.rows {
		if s.ScheduleID == key.ExcludeID {
			continue
		}
		if s.ClassID == key.ClassID && s.DayOfWeek == key.DayOfWeek &&
			s.PeriodID == key.PeriodID && s.SemesterID == key.SemesterID &&
			s.AcademicYear == key.AcademicYear {
			n++
		}
	}
	return n, nil
}

// ── attendance ──

type mockAttendanceRepo struct {
	rows     []*model.Attendance
	students *mockStudentRepo
}

func (m *mockAttendanceRepo) Create(_ context.Context, a *model.Attendance) error {
	if a.AttendanceID == "" {
		a.AttendanceID = newID()
	}
	m.rows = append(m.rows, a)
	return nil
}

func (m *mockAttendanceRepo) Update(_ context.Context, a *model.Attendance) error {
	for i, row := range m.rows {
		if row.AttendanceID == a.AttendanceID {
			m.rows[i] = a
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (m *mockAttendanceRepo) FindByKey(_ context.Context, key repository.AttendanceKey) (*model.Attendance, error) {
	for _, a := range m.rows {
		if a.StudentID == key.StudentID && a.SubjectID == key.SubjectID &&
			a.TeacherID == key.TeacherID && a.Date.Equal(key.Date) {
			return a, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockAttendanceRepo) List(_ context.Context, f repository.AttendanceFilter) ([]model.Attendance, int64, error) {
	var out []model.Attendance
	for _, a := range m.rows {
		if f.StudentID != "" && a.StudentID != f.StudentID {
			continue
		}
		if f.SubjectID != "" && a.SubjectID != f.SubjectID {
			continue
		}
		if f.Status != "" && a.Status != f.Status {
			continue
		}
		out = append(out, *a)
	}
	return out, int64(len(out)), nil
}

func (m *mockAttendanceRepo) ListByClassRange(ctx context.Context, classID string, from, to time.Time) ([]model.Attendance, error) {
	inClass := map[string]bool{}
	students, _ := m.students.ListByClass(ctx, classID)
	for i := range students {
		inClass[students[i].StudentID] = true
	}

	var out []model.Attendance
	for _, a := range m.rows {
		if !inClass[a.StudentID] {
			continue
		}
		if a.Date.Before(from) || a.Date.After(to) {
			continue
		}
		out = append(out, *a)
	}
	return out, nil
}

// ── grades ──

type mockGradeRepo struct {
	rows []*model.Grade
}

func (m *mockGradeRepo) Create(_ context.Context, g *model.Grade) error {
	if g.GradeID == "" {
		g.GradeID = newID()
	}
	m.rows = append(m.rows, g)
	return nil
}

func (m *mockGradeRepo) GetByID(_ context.Context, id string) (*model.Grade, error) {
	for _, g := range m.rows {
		if g.GradeID == id {
			return g, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockGradeRepo) Update(_ context.Context, g *model.Grade) error {
	for i, row := range m.rows {
		if row.GradeID == g.GradeID {
			m.rows[i] = g
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (m *mockGradeRepo) Delete(_ context.Context, id string) error {
	for i, row := range m.rows {
		if row.GradeID == id {
			m.rows = append(m.rows[:i], m.rows[i+1:]...)
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (m *mockGradeRepo) List(_ context.Context, f repository.GradeFilter) ([]model.Grade, int64, error) {
	var out []model.Grade
	for _, g := range m.rows {
		if f.StudentID != "" && g.StudentID != f.StudentID {
			continue
		}
		if f.SubjectID != "" && g.SubjectID != f.SubjectID {
			continue
		}
		if f.Kind != "" && g.Kind != f.Kind {
			continue
		}
		if f.SemesterID != "" && g.SemesterID != f.SemesterID {
			continue
		}
		if f.ClassID != "" {
			if g.Student == nil || g.Student.ClassID == nil || *g.Student.ClassID != f.ClassID {
				continue
			}
		}
		out = append(out, *g)
	}
	return out, int64(len(out)), nil
}

func (m *mockGradeRepo) ListByStudentSemester(_ context.Context, studentID, semesterID string) ([]model.Grade, error) {
	var out []model.Grade
	for _, g := range m.rows {
		if g.StudentID == studentID && g.SemesterID == semesterID {
			out = append(out, *g)
		}
	}
	return out, nil
}

// ── lesson plans ──

type mockLessonPlanRepo struct {
	rows []*model.LessonPlan
}

func (m *mockLessonPlanRepo) Create(_ context.Context, p *model.LessonPlan) error {
	if p.LessonPlanID == "" {
		p.LessonPlanID = newID()
	}
	m.rows = append(m.rows, p)
	return nil
}

func (m *mockLessonPlanRepo) GetByID(_ context.Context, id string) (*model.LessonPlan, error) {
	for _, p := range m.rows {
		if p.LessonPlanID == id {
			return p, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockLessonPlanRepo) Update(_ context.Context, p *model.LessonPlan) error {
	for i, row := range m.rows {
		if row.LessonPlanID == p.LessonPlanID {
			m.rows[i] = p
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (m *mockLessonPlanRepo) Delete(_ context.Context, id string) error {
	for i, row := range m.rows {
		if row.LessonPlanID == id {
			m.rows = append(m.rows[:i], m.rows[i+1:]...)
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (m *mockLessonPlanRepo) List(_ context.Context, f repository.LessonPlanFilter) ([]model.LessonPlan, int64, error) {
	var out []model.LessonPlan
	for _, p := range m.rows {
		if f.TeacherID != "" && p.TeacherID != f.TeacherID {
			continue
		}
		if f.Status != "" && p.Status != f.Status {
			continue
		}
		out = append(out, *p)
	}
	return out, int64(len(out)), nil
}

// ── activities ──

type mockActivityRepo struct {
	rows []*model.ClassActivity
}

func (m *mockActivityRepo) Create(_ context.Context, a *model.ClassActivity) error {
	if a.ActivityID == "" {
		a.ActivityID = newID()
	}
	m.rows = append(m.rows, a)
	return nil
}

func (m *mockActivityRepo) GetByID(_ context.Context, id string) (*model.ClassActivity, error) {
	for _, a := range m.rows {
		if a.ActivityID == id {
			return a, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockActivityRepo) Update(_ context.Context, a *model.ClassActivity) error {
	for i, row := range m.rows {
		if row.ActivityID == a.ActivityID {
			m.rows[i] = a
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (m *mockActivityRepo) Delete(_ context.Context, id string) error {
	for i, row := range m.rows {
		if row.ActivityID == id {
			m.rows = append(m.rows[:i], m.rows[i+1:]...)
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (m *mockActivityRepo) List(_ context.Context, f repository.ActivityFilter) ([]model.ClassActivity, int64, error) {
	var out []model.ClassActivity
	for _, a := range m.rows {
		if f.ClassID != "" && a.ClassID != f.ClassID {
			continue
		}
		if f.TeacherID != "" && a.TeacherID != f.TeacherID {
			continue
		}
		out = append(out, *a)
	}
	return out, int64(len(out)), nil
}

// ── announcements ──

type mockAnnouncementRepo struct {
	rows []*model.Announcement
}

func (m *mockAnnouncementRepo) Create(_ context.Context, a *model.Announcement) error {
	if a.AnnouncementID == "" {
		a.AnnouncementID = newID()
	}
	m.rows = append(m.rows, a)
	return nil
}

func (m *mockAnnouncementRepo) GetByID(_ context.Context, id string) (*model.Announcement, error) {
	for _, a := range m.rows {
		if a.AnnouncementID == id {
			return a, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockAnnouncementRepo) Update(_ context.Context, a *model.Announcement) error {
	for i, row := range m.rows {
		if row.AnnouncementID == a.AnnouncementID {
			m.rows[i] = a
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (m *mockAnnouncementRepo) Delete(_ context.Context, id string) error {
	for i, row := range m.rows {
		if row.AnnouncementID == id {
			m.rows = append(m.rows[:i], m.rows[i+1:]...)
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (m *mockAnnouncementRepo) List(_ context.Context, f repository.AnnouncementFilter) ([]model.Announcement, int64, error) {
	var out []model.Announcement
	for _, a := range m.rows {
		if f.Audience != "" && a.Audience != f.Audience {
			continue
		}
		if f.Published != nil {
			published := a.PublishedAt != nil
			if published != *f.Published {
				continue
			}
		}
		out = append(out, *a)
	}
	return out, int64(len(out)), nil
}
