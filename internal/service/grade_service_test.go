package service

import (
	"context"
	"testing"

	"go.uber.org/zap"

	"siakad/backend/internal/dto"
	"siakad/backend/internal/model"
	"siakad/backend/internal/repository"
)

type gradeFixture struct {
	repo     *repository.Repository
	svc      GradeService
	student  *model.Student
	subject  *model.Subject
	semester *model.Semester
}

func newGradeFixture(t *testing.T) *gradeFixture {
	t.Helper()
	ctx := context.Background()
	repo := newMockRepository()

	f := &gradeFixture{
		repo:     repo,
		svc:      NewGradeService(repo, zap.NewNop()),
		student:  &model.Student{NIS: "2024001", Name: "Budi Santoso"},
		subject:  &model.Subject{Code: "MAT", Name: "Matematika"},
		semester: &model.Semester{Name: "Ganjil", AcademicYear: "2024/2025", IsActive: true},
	}
	if err := repo.Student.Create(ctx, f.student); err != nil {
		t.Fatalf("seed student: %v", err)
	}
	if err := repo.Subject.Create(ctx, f.subject); err != nil {
		t.Fatalf("seed subject: %v", err)
	}
	if err := repo.Semester.Create(ctx, f.semester); err != nil {
		t.Fatalf("seed semester: %v", err)
	}
	return f
}

const gradeTeacherID = "b2e6c4d3-0000-0000-0000-00000000abcd"

func (f *gradeFixture) seedGrade(t *testing.T, kind string, score float64) {
	t.Helper()
	grade := &model.Grade{
		StudentID:  f.student.StudentID,
		SubjectID:  f.subject.SubjectID,
		TeacherID:  gradeTeacherID,
		SemesterID: f.semester.SemesterID,
		Kind:       kind,
		Score:      score,
		Subject:    f.subject,
	}
	if err := f.repo.Grade.Create(context.Background(), grade); err != nil {
		t.Fatalf("seed grade: %v", err)
	}
}

func TestGradeCreate(t *testing.T) {
	f := newGradeFixture(t)

	resp, err := f.svc.Create(context.Background(), gradeTeacherID, &dto.CreateGradeRequest{
		StudentID:  f.student.StudentID,
		SubjectID:  f.subject.SubjectID,
		SemesterID: f.semester.SemesterID,
		Kind:       model.GradeAssignment,
		Score:      85,
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if resp.Kind != model.GradeAssignment || resp.Score != 85 {
		t.Errorf("grade = %s/%v, want tugas/85", resp.Kind, resp.Score)
	}
	if resp.TeacherID != gradeTeacherID {
		t.Errorf("teacher = %q, want %q", resp.TeacherID, gradeTeacherID)
	}
}

func TestGradeCreate_UnknownStudent(t *testing.T) {
	f := newGradeFixture(t)

	_, err := f.svc.Create(context.Background(), gradeTeacherID, &dto.CreateGradeRequest{
		StudentID:  "6f000000-0000-0000-0000-000000000000",
		SubjectID:  f.subject.SubjectID,
		SemesterID: f.semester.SemesterID,
		Kind:       model.GradeQuiz,
		Score:      70,
	})
	if err != ErrStudentNotFound {
		t.Errorf("Create err = %v, want ErrStudentNotFound", err)
	}
}

func TestGradeUpdate(t *testing.T) {
	f := newGradeFixture(t)
	ctx := context.Background()

	created, err := f.svc.Create(ctx, gradeTeacherID, &dto.CreateGradeRequest{
		StudentID:  f.student.StudentID,
		SubjectID:  f.subject.SubjectID,
		SemesterID: f.semester.SemesterID,
		Kind:       model.GradeAssignment,
		Score:      60,
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	score := 75.5
	updated, err := f.svc.Update(ctx, created.ID, &dto.UpdateGradeRequest{Score: &score})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated.Score != 75.5 {
		t.Errorf("score = %v, want 75.5", updated.Score)
	}
	if updated.Kind != model.GradeAssignment {
		t.Errorf("kind changed to %q", updated.Kind)
	}
}

func TestGradeDelete_NotFound(t *testing.T) {
	f := newGradeFixture(t)

	if err := f.svc.Delete(context.Background(), "6f000000-0000-0000-0000-000000000000"); err != ErrGradeNotFound {
		t.Errorf("Delete err = %v, want ErrGradeNotFound", err)
	}
}

func TestGradeSummary(t *testing.T) {
	f := newGradeFixture(t)

	// tugas averages to 85, ulangan stays 70, uts 75, uas 80.
	f.seedGrade(t, model.GradeAssignment, 80)
	f.seedGrade(t, model.GradeAssignment, 90)
	f.seedGrade(t, model.GradeQuiz, 70)
	f.seedGrade(t, model.GradeMidterm, 75)
	f.seedGrade(t, model.GradeFinal, 80)

	resp, err := f.svc.Summary(context.Background(), f.student.StudentID, f.semester.SemesterID)
	if err != nil {
		t.Fatalf("Summary: %v", err)
	}

	if resp.Student.NIS != "2024001" {
		t.Errorf("student = %q, want 2024001", resp.Student.NIS)
	}
	if len(resp.Rows) != 1 {
		t.Fatalf("rows = %d, want 1", len(resp.Rows))
	}

	row := resp.Rows[0]
	if row.Subject.Code != "MAT" {
		t.Errorf("subject = %q, want MAT", row.Subject.Code)
	}
	if row.Assignment != 85 || row.Quiz != 70 || row.Midterm != 75 || row.Final != 80 {
		t.Errorf("components = %v/%v/%v/%v, want 85/70/75/80",
			row.Assignment, row.Quiz, row.Midterm, row.Final)
	}
	// 0.3*85 + 0.2*70 + 0.2*75 + 0.3*80
	if row.Average != 78.5 {
		t.Errorf("average = %v, want 78.5", row.Average)
	}
}

func TestGradeSummary_EmptySemester(t *testing.T) {
	f := newGradeFixture(t)

	resp, err := f.svc.Summary(context.Background(), f.student.StudentID, f.semester.SemesterID)
	if err != nil {
		t.Fatalf("Summary: %v", err)
	}
	if len(resp.Rows) != 0 {
		t.Errorf("rows = %d, want 0", len(resp.Rows))
	}
}

func TestGradeList_FilterByKind(t *testing.T) {
	f := newGradeFixture(t)

	f.seedGrade(t, model.GradeAssignment, 80)
	f.seedGrade(t, model.GradeQuiz, 70)

	rows, total, err := f.svc.List(context.Background(), &dto.GradeListRequest{Kind: model.GradeQuiz})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if total != 1 || len(rows) != 1 || rows[0].Kind != model.GradeQuiz {
		t.Errorf("got %d rows (total %d), want exactly the ulangan row", len(rows), total)
	}
}
