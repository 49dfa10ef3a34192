package service

import (
	"bytes"
	"context"
	"testing"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"siakad/backend/config"
	"siakad/backend/internal/dto"
	"siakad/backend/internal/model"
	"siakad/backend/internal/repository"
)

func testConfig() *config.Config {
	return &config.Config{
		Import: config.ImportConfig{MaxRows: 1000},
	}
}

// buildSheet writes an in-memory xlsx: the first slice is the header
// row, the rest are data rows.
func buildSheet(t *testing.T, rows [][]string) *bytes.Buffer {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	for r, row := range rows {
		for c, cell := range row {
			name, err := excelize.CoordinatesToCellName(c+1, r+1)
			if err != nil {
				t.Fatalf("CoordinatesToCellName: %v", err)
			}
			if err := f.SetCellStr(sheet, name, cell); err != nil {
				t.Fatalf("SetCellStr: %v", err)
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		t.Fatalf("WriteToBuffer: %v", err)
	}
	return buf
}

func seedClass(t *testing.T, repo *repository.Repository, name string, level int) *model.Class {
	t.Helper()
	class := &model.Class{Name: name, Level: level}
	if err := repo.Class.Create(context.Background(), class); err != nil {
		t.Fatalf("seed class: %v", err)
	}
	return class
}

func TestStudentImport_UnknownClassFailsRow(t *testing.T) {
	repo := newMockRepository()
	seedClass(t, repo, "7A", 7)
	svc := NewStudentService(testConfig(), repo, zap.NewNop())

	sheet := buildSheet(t, [][]string{
		{"Nama", "NIS", "Kelas"},
		{"Budi Santoso", "2024001", "7A"},
		{"Siti Aminah", "2024002", "9Z"},
	})

	resp, err := svc.Import(context.Background(), sheet)
	if err != nil {
		t.Fatalf("Import: %v", err)
	}

	if resp.Success != 1 {
		t.Errorf("success = %d, want 1", resp.Success)
	}
	if resp.Failed != 1 {
		t.Errorf("failed = %d, want 1", resp.Failed)
	}
	if len(resp.Errors) != 1 || resp.Errors[0] != "Baris 3: Kelas '9Z' tidak ditemukan" {
		t.Errorf("errors = %v, want [Baris 3: Kelas '9Z' tidak ditemukan]", resp.Errors)
	}

	budi, err := repo.Student.GetByNIS(context.Background(), "2024001")
	if err != nil {
		t.Fatalf("imported student missing: %v", err)
	}
	if budi.ClassID == nil {
		t.Error("imported student has no class")
	}
}

func TestStudentImport_DuplicateNISFailsRow(t *testing.T) {
	repo := newMockRepository()
	svc := NewStudentService(testConfig(), repo, zap.NewNop())

	existing := &model.Student{NIS: "2024001", Name: "Budi Santoso"}
	if err := repo.Student.Create(context.Background(), existing); err != nil {
		t.Fatalf("seed student: %v", err)
	}

	sheet := buildSheet(t, [][]string{
		{"Nama", "NIS"},
		{"Budi Santoso", "2024001"},
		{"Siti Aminah", "2024002"},
	})

	resp, err := svc.Import(context.Background(), sheet)
	if err != nil {
		t.Fatalf("Import: %v", err)
	}

	// Re-running an import must not re-insert the existing row; it is
	// reported as a duplicate failure, not silently dropped.
	if resp.Total != 2 || resp.Success != 1 || resp.Failed != 1 {
		t.Errorf("got total=%d success=%d failed=%d, want 2/1/1",
			resp.Total, resp.Success, resp.Failed)
	}
	if len(resp.Errors) != 1 || resp.Errors[0] != "Baris 2: NIS sudah terdaftar: 2024001" {
		t.Errorf("errors = %v, want [Baris 2: NIS sudah terdaftar: 2024001]", resp.Errors)
	}

	students, total, err := repo.Student.List(context.Background(), repository.StudentFilter{Limit: 100})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if total != 2 || len(students) != 2 {
		t.Errorf("student count = %d, want 2 (no duplicate insert)", total)
	}
}

func TestStudentImport_ProvisionsAccount(t *testing.T) {
	repo := newMockRepository()
	svc := NewStudentService(testConfig(), repo, zap.NewNop())

	sheet := buildSheet(t, [][]string{
		{"Nama", "NIS", "Email"},
		{"Budi Santoso", "2024001", "budi@sekolah.sch.id"},
	})

	resp, err := svc.Import(context.Background(), sheet)
	if err != nil {
		t.Fatalf("Import: %v", err)
	}
	if resp.Success != 1 {
		t.Fatalf("success = %d, want 1: %v", resp.Success, resp.Errors)
	}

	user, err := repo.User.GetByEmail(context.Background(), "budi@sekolah.sch.id")
	if err != nil {
		t.Fatalf("provisioned account missing: %v", err)
	}
	if user.Role != model.RoleStudent {
		t.Errorf("role = %q, want %q", user.Role, model.RoleStudent)
	}
	if !user.MustChangePassword {
		t.Error("must_change_password = false, want true")
	}
	// NIS doubles as the initial password.
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("2024001")); err != nil {
		t.Errorf("initial password is not the NIS: %v", err)
	}

	student, err := repo.Student.GetByNIS(context.Background(), "2024001")
	if err != nil {
		t.Fatalf("imported student missing: %v", err)
	}
	if student.UserID == nil || *student.UserID != user.UserID {
		t.Error("student is not linked to the provisioned account")
	}
}

func TestStudentImport_HeaderSynonymsAndDates(t *testing.T) {
	repo := newMockRepository()
	svc := NewStudentService(testConfig(), repo, zap.NewNop())

	sheet := buildSheet(t, [][]string{
		{"NAMA SISWA", "NISN", "JK", "TGL LAHIR"},
		{"Budi Santoso", "2024001", "Laki-laki", "15/08/2011"},
	})

	resp, err := svc.Import(context.Background(), sheet)
	if err != nil {
		t.Fatalf("Import: %v", err)
	}
	if resp.Success != 1 {
		t.Fatalf("success = %d, want 1: %v", resp.Success, resp.Errors)
	}

	student, err := repo.Student.GetByNIS(context.Background(), "2024001")
	if err != nil {
		t.Fatalf("imported student missing: %v", err)
	}
	if student.Gender != "L" {
		t.Errorf("gender = %q, want L", student.Gender)
	}
	if student.BirthDate == nil || student.BirthDate.Format("2006-01-02") != "2011-08-15" {
		t.Errorf("birth date = %v, want 2011-08-15", student.BirthDate)
	}
}

func TestStudentImport_UnreadableBirthDateImportsEmpty(t *testing.T) {
	repo := newMockRepository()
	svc := NewStudentService(testConfig(), repo, zap.NewNop())

	sheet := buildSheet(t, [][]string{
		{"Nama", "NIS", "Tanggal Lahir"},
		{"Budi Santoso", "2024001", "besok lusa"},
	})

	resp, err := svc.Import(context.Background(), sheet)
	if err != nil {
		t.Fatalf("Import: %v", err)
	}

	// A birth date nothing can parse never costs the row; the student
	// lands without one.
	if resp.Success != 1 || resp.Failed != 0 {
		t.Fatalf("got success=%d failed=%d, want 1/0: %v", resp.Success, resp.Failed, resp.Errors)
	}

	student, err := repo.Student.GetByNIS(context.Background(), "2024001")
	if err != nil {
		t.Fatalf("imported student missing: %v", err)
	}
	if student.BirthDate != nil {
		t.Errorf("birth date = %v, want nil", student.BirthDate)
	}
}

func TestStudentImport_BlankRowCountsSkipped(t *testing.T) {
	repo := newMockRepository()
	svc := NewStudentService(testConfig(), repo, zap.NewNop())

	sheet := buildSheet(t, [][]string{
		{"Nama", "NIS"},
		{"Budi Santoso", "2024001"},
		{"", ""},
		{"Siti Aminah", "2024002"},
	})

	resp, err := svc.Import(context.Background(), sheet)
	if err != nil {
		t.Fatalf("Import: %v", err)
	}

	if resp.Total != 3 || resp.Success != 2 || resp.Skipped != 1 {
		t.Errorf("got total=%d success=%d skipped=%d, want 3/2/1: %v",
			resp.Total, resp.Success, resp.Skipped, resp.Errors)
	}
	// Row numbers keep counting past the blank line.
	if _, err := repo.Student.GetByNIS(context.Background(), "2024002"); err != nil {
		t.Errorf("student after the blank row missing: %v", err)
	}
}

func TestStudentCreate_DuplicateNIS(t *testing.T) {
	repo := newMockRepository()
	svc := NewStudentService(testConfig(), repo, zap.NewNop())

	req := &dto.CreateStudentRequest{NIS: "2024001", Name: "Budi Santoso"}
	if _, err := svc.Create(context.Background(), req); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if _, err := svc.Create(context.Background(), req); err != ErrNISExists {
		t.Errorf("second Create err = %v, want ErrNISExists", err)
	}
}

func TestStudentUpdate_UnknownClass(t *testing.T) {
	repo := newMockRepository()
	svc := NewStudentService(testConfig(), repo, zap.NewNop())

	created, err := svc.Create(context.Background(), &dto.CreateStudentRequest{
		NIS: "2024001", Name: "Budi Santoso",
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	missing := "3f2b3e1a-0000-0000-0000-000000000000"
	_, err = svc.Update(context.Background(), created.ID, &dto.UpdateStudentRequest{ClassID: &missing})
	if err != ErrClassNotFound {
		t.Errorf("Update err = %v, want ErrClassNotFound", err)
	}
}
