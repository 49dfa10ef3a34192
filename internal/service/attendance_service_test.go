package service

import (
	"context"
	"testing"

	"go.uber.org/zap"

	"siakad/backend/internal/dto"
	"siakad/backend/internal/model"
	"siakad/backend/internal/repository"
)

type attendanceFixture struct {
	repo    *repository.Repository
	svc     AttendanceService
	class   *model.Class
	subject *model.Subject
	budi    *model.Student
	siti    *model.Student
}

func newAttendanceFixture(t *testing.T) *attendanceFixture {
	t.Helper()
	ctx := context.Background()
	repo := newMockRepository()

	f := &attendanceFixture{
		repo:    repo,
		svc:     NewAttendanceService(repo, zap.NewNop()),
		class:   &model.Class{Name: "7A", Level: 7},
		subject: &model.Subject{Code: "MAT", Name: "Matematika"},
	}
	if err := repo.Class.Create(ctx, f.class); err != nil {
		t.Fatalf("seed class: %v", err)
	}
	if err := repo.Subject.Create(ctx, f.subject); err != nil {
		t.Fatalf("seed subject: %v", err)
	}

	f.budi = &model.Student{NIS: "2024001", Name: "Budi Santoso", ClassID: &f.class.ClassID}
	f.siti = &model.Student{NIS: "2024002", Name: "Siti Aminah", ClassID: &f.class.ClassID}
	for _, s := range []*model.Student{f.budi, f.siti} {
		if err := repo.Student.Create(ctx, s); err != nil {
			t.Fatalf("seed student: %v", err)
		}
	}
	return f
}

const attendanceTeacherID = "a1d5b3c2-0000-0000-0000-00000000abcd"

func TestAttendanceRecord_CreateThenUpdate(t *testing.T) {
	f := newAttendanceFixture(t)
	ctx := context.Background()

	req := &dto.RecordAttendanceRequest{
		StudentID: f.budi.StudentID,
		SubjectID: f.subject.SubjectID,
		Date:      "2024-09-02",
		Status:    model.AttendancePresent,
	}

	first, err := f.svc.Record(ctx, attendanceTeacherID, req)
	if err != nil {
		t.Fatalf("Record: %v", err)
	}
	if first.Action != ActionCreated {
		t.Errorf("action = %q, want %q", first.Action, ActionCreated)
	}

	// The same tuple again corrects the row in place.
	req.Status = model.AttendanceSick
	req.Notes = "surat dokter"
	second, err := f.svc.Record(ctx, attendanceTeacherID, req)
	if err != nil {
		t.Fatalf("second Record: %v", err)
	}
	if second.Action != ActionUpdated {
		t.Errorf("action = %q, want %q", second.Action, ActionUpdated)
	}
	if second.ID != first.ID {
		t.Error("update produced a new row instead of reusing the existing one")
	}
	if second.Status != model.AttendanceSick || second.Notes != "surat dokter" {
		t.Errorf("row = %q/%q, want S/surat dokter", second.Status, second.Notes)
	}

	rows, total, err := f.svc.List(ctx, &dto.AttendanceListRequest{StudentID: f.budi.StudentID})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if total != 1 || len(rows) != 1 {
		t.Errorf("rows = %d (total %d), want 1", len(rows), total)
	}
}

func TestAttendanceRecord_InvalidDate(t *testing.T) {
	f := newAttendanceFixture(t)

	_, err := f.svc.Record(context.Background(), attendanceTeacherID, &dto.RecordAttendanceRequest{
		StudentID: f.budi.StudentID,
		SubjectID: f.subject.SubjectID,
		Date:      "02-09-2024",
		Status:    model.AttendancePresent,
	})
	if err != ErrInvalidDate {
		t.Errorf("Record err = %v, want ErrInvalidDate", err)
	}
}

func TestAttendanceRecordBulk(t *testing.T) {
	f := newAttendanceFixture(t)
	ctx := context.Background()

	// Budi already has a row for the day; the bulk post updates his and
	// creates Siti's.
	if _, err := f.svc.Record(ctx, attendanceTeacherID, &dto.RecordAttendanceRequest{
		StudentID: f.budi.StudentID,
		SubjectID: f.subject.SubjectID,
		Date:      "2024-09-02",
		Status:    model.AttendancePresent,
	}); err != nil {
		t.Fatalf("Record: %v", err)
	}

	resp, err := f.svc.RecordBulk(ctx, attendanceTeacherID, &dto.BulkAttendanceRequest{
		SubjectID: f.subject.SubjectID,
		Date:      "2024-09-02",
		Entries: []dto.BulkAttendanceEntry{
			{StudentID: f.budi.StudentID, Status: model.AttendanceExcused},
			{StudentID: f.siti.StudentID, Status: model.AttendancePresent},
		},
	})
	if err != nil {
		t.Fatalf("RecordBulk: %v", err)
	}

	if resp.Created != 1 || resp.Updated != 1 {
		t.Errorf("created=%d updated=%d, want 1/1", resp.Created, resp.Updated)
	}
	if len(resp.Rows) != 2 {
		t.Fatalf("rows = %d, want 2", len(resp.Rows))
	}
	if resp.Rows[0].Action != ActionUpdated || resp.Rows[1].Action != ActionCreated {
		t.Errorf("actions = %q/%q, want updated/created", resp.Rows[0].Action, resp.Rows[1].Action)
	}
}

func TestAttendanceRecordBulk_UnknownStudent(t *testing.T) {
	f := newAttendanceFixture(t)

	_, err := f.svc.RecordBulk(context.Background(), attendanceTeacherID, &dto.BulkAttendanceRequest{
		SubjectID: f.subject.SubjectID,
		Date:      "2024-09-02",
		Entries: []dto.BulkAttendanceEntry{
			{StudentID: "6f000000-0000-0000-0000-000000000000", Status: model.AttendancePresent},
		},
	})
	if err != ErrStudentNotFound {
		t.Errorf("RecordBulk err = %v, want ErrStudentNotFound", err)
	}
}

func TestAttendanceRecap(t *testing.T) {
	f := newAttendanceFixture(t)
	ctx := context.Background()

	for _, rec := range []struct {
		date, status string
	}{
		{"2024-09-02", model.AttendancePresent},
		{"2024-09-03", model.AttendancePresent},
		{"2024-09-04", model.AttendanceAbsent},
		{"2024-09-30", model.AttendanceSick}, // outside the range
	} {
		if _, err := f.svc.Record(ctx, attendanceTeacherID, &dto.RecordAttendanceRequest{
			StudentID: f.budi.StudentID,
			SubjectID: f.subject.SubjectID,
			Date:      rec.date,
			Status:    rec.status,
		}); err != nil {
			t.Fatalf("Record: %v", err)
		}
	}

	resp, err := f.svc.Recap(ctx, &dto.RecapRequest{
		ClassID:  f.class.ClassID,
		DateFrom: "2024-09-01",
		DateTo:   "2024-09-07",
	})
	if err != nil {
		t.Fatalf("Recap: %v", err)
	}

	if len(resp.Rows) != 2 {
		t.Fatalf("rows = %d, want 2", len(resp.Rows))
	}

	budi := resp.Rows[0]
	if budi.Student.NIS != "2024001" {
		t.Fatalf("first row is %q, want 2024001", budi.Student.NIS)
	}
	if budi.Present != 2 || budi.Absent != 1 || budi.Sick != 0 || budi.Excused != 0 {
		t.Errorf("budi = H%d S%d I%d A%d, want H2 S0 I0 A1",
			budi.Present, budi.Sick, budi.Excused, budi.Absent)
	}

	// Students without rows still appear, all zero.
	siti := resp.Rows[1]
	if siti.Present+siti.Sick+siti.Excused+siti.Absent != 0 {
		t.Errorf("siti has counts %+v, want all zero", siti)
	}
}

func TestAttendanceRecap_InvalidRange(t *testing.T) {
	f := newAttendanceFixture(t)

	_, err := f.svc.Recap(context.Background(), &dto.RecapRequest{
		ClassID:  f.class.ClassID,
		DateFrom: "2024-09-07",
		DateTo:   "2024-09-01",
	})
	if err != ErrAttendanceInvalidRange {
		t.Errorf("Recap err = %v, want ErrAttendanceInvalidRange", err)
	}
}
