//go:build integration

package repository_test

import (
	"context"
	"errors"
	"fmt"
	"os"
	"testing"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"siakad/backend/internal/model"
	"siakad/backend/internal/repository"
	pkgerrors "siakad/backend/pkg/errors"
)

// ═══════════════════════════════════════════════════════════
// Test Setup
// ═══════════════════════════════════════════════════════════

var testDB *gorm.DB

func TestMain(m *testing.M) {
	dsn := os.Getenv("TEST_DATABASE_DSN")
	if dsn == "" {
		dsn = "host=localhost port=5433 user=siakad password=siakad_password dbname=siakad_test sslmode=disable TimeZone=Asia/Jakarta"
	}

	var err error
	testDB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "cannot connect to the test database: %v\n", err)
		os.Exit(1)
	}

	err = testDB.AutoMigrate(
		&model.User{},
		&model.Teacher{},
		&model.Class{},
		&model.Student{},
		&model.Subject{},
		&model.Semester{},
		&model.Period{},
		&model.Schedule{},
		&model.Attendance{},
		&model.Grade{},
		&model.LessonPlan{},
		&model.ClassActivity{},
		&model.Announcement{},
	)
	if err != nil {
		fmt.Fprintf(os.Stderr, "AutoMigrate failed: %v\n", err)
		os.Exit(1)
	}

	os.Exit(m.Run())
}

// setupTestData seeds the references a schedule row needs and returns a
// cleanup function. Names carry a nanosecond suffix so parallel runs do
// not trip the unique indexes.
func setupTestData(t *testing.T) (teacher *model.Teacher, class *model.Class, subject *model.Subject, semester *model.Semester, period *model.Period, cleanup func()) {
	t.Helper()
	ctx := context.Background()
	nano := time.Now().UnixNano()

	teacher = &model.Teacher{
		NIP:  fmt.Sprintf("NIP%d", nano),
		Name: "Guru Uji",
	}
	if err := testDB.WithContext(ctx).Create(teacher).Error; err != nil {
		t.Fatalf("seed teacher: %v", err)
	}

	class = &model.Class{
		Name:  fmt.Sprintf("Kelas-%d", nano),
		Level: 7,
	}
	if err := testDB.WithContext(ctx).Create(class).Error; err != nil {
		t.Fatalf("seed class: %v", err)
	}

	subject = &model.Subject{
		Code: fmt.Sprintf("UJI%d", nano),
		Name: "Mata Pelajaran Uji",
	}
	if err := testDB.WithContext(ctx).Create(subject).Error; err != nil {
		t.Fatalf("seed subject: %v", err)
	}

	semester = &model.Semester{
		Name:         fmt.Sprintf("Ganjil-%d", nano),
		AcademicYear: "2024/2025",
	}
	if err := testDB.WithContext(ctx).Create(semester).Error; err != nil {
		t.Fatalf("seed semester: %v", err)
	}

	period = &model.Period{
		Number:    int(nano%30000) + 1,
		StartTime: "07:00",
		EndTime:   "07:40",
	}
	if err := testDB.WithContext(ctx).Create(period).Error; err != nil {
		t.Fatalf("seed period: %v", err)
	}

	cleanup = func() {
		testDB.Unscoped().Where("period_id = ?", period.PeriodID).Delete(&model.Period{})
		testDB.Unscoped().Where("semester_id = ?", semester.SemesterID).Delete(&model.Semester{})
		testDB.Unscoped().Where("subject_id = ?", subject.SubjectID).Delete(&model.Subject{})
		testDB.Unscoped().Where("class_id = ?", class.ClassID).Delete(&model.Class{})
		testDB.Unscoped().Where("teacher_id = ?", teacher.TeacherID).Delete(&model.Teacher{})
	}
	return
}

// ═══════════════════════════════════════════════════════════
// Test: Transaction Rollback / Commit
// ═══════════════════════════════════════════════════════════

func TestTransaction_Rollback(t *testing.T) {
	repo := repository.NewRepository(testDB)
	ctx := context.Background()
	nis := fmt.Sprintf("NIS%d", time.Now().UnixNano())

	boom := errors.New("baris gagal")
	err := repo.Transaction(ctx, func(tx *repository.Repository) error {
		if err := tx.Student.Create(ctx, &model.Student{NIS: nis, Name: "Siswa Uji"}); err != nil {
			return err
		}
		return boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("Transaction err = %v, want the row error back", err)
	}

	if _, err := repo.Student.GetByNIS(ctx, nis); err == nil {
		testDB.Unscoped().Where("nis = ?", nis).Delete(&model.Student{})
		t.Fatal("student survived a rolled-back transaction")
	}
}

func TestTransaction_Commit(t *testing.T) {
	repo := repository.NewRepository(testDB)
	ctx := context.Background()
	nis := fmt.Sprintf("NIS%d", time.Now().UnixNano())

	err := repo.Transaction(ctx, func(tx *repository.Repository) error {
		return tx.Student.Create(ctx, &model.Student{NIS: nis, Name: "Siswa Uji"})
	})
	if err != nil {
		t.Fatalf("Transaction: %v", err)
	}
	defer testDB.Unscoped().Where("nis = ?", nis).Delete(&model.Student{})

	found, err := repo.Student.GetByNIS(ctx, nis)
	if err != nil {
		t.Fatalf("GetByNIS after commit: %v", err)
	}
	if found.NIS != nis {
		t.Errorf("NIS = %q, want %q", found.NIS, nis)
	}
}

// ═══════════════════════════════════════════════════════════
// Test: Partial Unique Indexes (schedule slots, attendance key)
// ═══════════════════════════════════════════════════════════

func TestScheduleSlotUniqueIndexes(t *testing.T) {
	teacher, class, subject, semester, period, cleanup := setupTestData(t)
	defer cleanup()

	repo := repository.NewRepository(testDB)
	ctx := context.Background()

	slot := &model.Schedule{
		TeacherID:    teacher.TeacherID,
		ClassID:      class.ClassID,
		SubjectID:    subject.SubjectID,
		DayOfWeek:    1,
		PeriodID:     period.PeriodID,
		SemesterID:   semester.SemesterID,
		AcademicYear: semester.AcademicYear,
	}
	if err := repo.Schedule.Create(ctx, slot); err != nil {
		t.Fatalf("create slot: %v", err)
	}
	defer testDB.Unscoped().Where("schedule_id = ?", slot.ScheduleID).Delete(&model.Schedule{})

	// Same teacher, same slot, another class: idx_schedules_teacher_slot
	// must reject the insert even without the service-level check.
	otherClass := &model.Class{Name: fmt.Sprintf("Kelas-B-%d", time.Now().UnixNano()), Level: 7}
	if err := testDB.WithContext(ctx).Create(otherClass).Error; err != nil {
		t.Fatalf("seed class: %v", err)
	}
	defer testDB.Unscoped().Where("class_id = ?", otherClass.ClassID).Delete(&model.Class{})

	dup := &model.Schedule{
		TeacherID:    teacher.TeacherID,
		ClassID:      otherClass.ClassID,
		SubjectID:    subject.SubjectID,
		DayOfWeek:    1,
		PeriodID:     period.PeriodID,
		SemesterID:   semester.SemesterID,
		AcademicYear: semester.AcademicYear,
	}
	if err := repo.Schedule.Create(ctx, dup); err == nil {
		testDB.Unscoped().Where("schedule_id = ?", dup.ScheduleID).Delete(&model.Schedule{})
		t.Fatal("duplicate teacher slot was inserted; run 0001_init.up.sql so idx_schedules_teacher_slot exists")
	}
}

func TestAttendanceUpsertKeyIndex(t *testing.T) {
	teacher, class, subject, _, _, cleanup := setupTestData(t)
	defer cleanup()

	repo := repository.NewRepository(testDB)
	ctx := context.Background()

	student := &model.Student{
		NIS:     fmt.Sprintf("NIS%d", time.Now().UnixNano()),
		Name:    "Siswa Uji",
		ClassID: &class.ClassID,
	}
	if err := testDB.WithContext(ctx).Create(student).Error; err != nil {
		t.Fatalf("seed student: %v", err)
	}
	defer testDB.Unscoped().Where("student_id = ?", student.StudentID).Delete(&model.Student{})

	date := time.Date(2024, 9, 2, 0, 0, 0, 0, time.UTC)
	first := &model.Attendance{
		StudentID: student.StudentID,
		SubjectID: subject.SubjectID,
		TeacherID: teacher.TeacherID,
		Date:      date,
		Status:    model.AttendancePresent,
	}
	if err := repo.Attendance.Create(ctx, first); err != nil {
		t.Fatalf("create attendance: %v", err)
	}
	defer testDB.Unscoped().Where("attendance_id = ?", first.AttendanceID).Delete(&model.Attendance{})

	dup := &model.Attendance{
		StudentID: student.StudentID,
		SubjectID: subject.SubjectID,
		TeacherID: teacher.TeacherID,
		Date:      date,
		Status:    model.AttendanceAbsent,
	}
	if err := repo.Attendance.Create(ctx, dup); err == nil {
		testDB.Unscoped().Where("attendance_id = ?", dup.AttendanceID).Delete(&model.Attendance{})
		t.Fatal("duplicate attendance tuple was inserted; run 0001_init.up.sql so idx_attendance_upsert_key exists")
	}

	found, err := repo.Attendance.FindByKey(ctx, repository.AttendanceKey{
		StudentID: student.StudentID,
		SubjectID: subject.SubjectID,
		TeacherID: teacher.TeacherID,
		Date:      date,
	})
	if err != nil {
		t.Fatalf("FindByKey: %v", err)
	}
	if found.Status != model.AttendancePresent {
		t.Errorf("status = %q, want the first write's H", found.Status)
	}
}

// ═══════════════════════════════════════════════════════════
// Test: Optimistic Lock (schedule slots)
// ═══════════════════════════════════════════════════════════

func TestScheduleUpdate_StaleCopyRejected(t *testing.T) {
	teacher, class, subject, semester, period, cleanup := setupTestData(t)
	defer cleanup()

	repo := repository.NewRepository(testDB)
	ctx := context.Background()

	slot := &model.Schedule{
		TeacherID:    teacher.TeacherID,
		ClassID:      class.ClassID,
		SubjectID:    subject.SubjectID,
		DayOfWeek:    3,
		PeriodID:     period.PeriodID,
		SemesterID:   semester.SemesterID,
		AcademicYear: semester.AcademicYear,
	}
	if err := repo.Schedule.Create(ctx, slot); err != nil {
		t.Fatalf("create slot: %v", err)
	}
	defer testDB.Unscoped().Where("schedule_id = ?", slot.ScheduleID).Delete(&model.Schedule{})

	first, err := repo.Schedule.GetByID(ctx, slot.ScheduleID)
	if err != nil {
		t.Fatalf("first GetByID: %v", err)
	}
	second, err := repo.Schedule.GetByID(ctx, slot.ScheduleID)
	if err != nil {
		t.Fatalf("second GetByID: %v", err)
	}

	first.DayOfWeek = 4
	if err := repo.Schedule.Update(ctx, first); err != nil {
		t.Fatalf("first Update: %v", err)
	}

	// The second copy still carries the old version; its write must not
	// silently overwrite the first one.
	second.DayOfWeek = 5
	if err := repo.Schedule.Update(ctx, second); !errors.Is(err, pkgerrors.ErrOptimisticLock) {
		t.Errorf("stale Update err = %v, want ErrOptimisticLock", err)
	}

	current, err := repo.Schedule.GetByID(ctx, slot.ScheduleID)
	if err != nil {
		t.Fatalf("GetByID after updates: %v", err)
	}
	if current.DayOfWeek != 4 {
		t.Errorf("day_of_week = %d, want the first write's 4", current.DayOfWeek)
	}
}

func TestScheduleUpdate_VersionIncrement(t *testing.T) {
	teacher, class, subject, semester, period, cleanup := setupTestData(t)
	defer cleanup()

	repo := repository.NewRepository(testDB)
	ctx := context.Background()

	slot := &model.Schedule{
		TeacherID:    teacher.TeacherID,
		ClassID:      class.ClassID,
		SubjectID:    subject.SubjectID,
		DayOfWeek:    1,
		PeriodID:     period.PeriodID,
		SemesterID:   semester.SemesterID,
		AcademicYear: semester.AcademicYear,
	}
	if err := repo.Schedule.Create(ctx, slot); err != nil {
		t.Fatalf("create slot: %v", err)
	}
	defer testDB.Unscoped().Where("schedule_id = ?", slot.ScheduleID).Delete(&model.Schedule{})

	for day := 2; day <= 4; day++ {
		row, err := repo.Schedule.GetByID(ctx, slot.ScheduleID)
		if err != nil {
			t.Fatalf("GetByID: %v", err)
		}
		row.DayOfWeek = day
		if err := repo.Schedule.Update(ctx, row); err != nil {
			t.Fatalf("Update to day %d: %v", day, err)
		}
	}

	final, err := repo.Schedule.GetByID(ctx, slot.ScheduleID)
	if err != nil {
		t.Fatalf("final GetByID: %v", err)
	}
	if final.Version != 4 {
		t.Errorf("version = %d, want 4 after three updates", final.Version)
	}
}

// ═══════════════════════════════════════════════════════════
// Test: Soft Delete
// ═══════════════════════════════════════════════════════════

func TestSchedule_SoftDelete(t *testing.T) {
	teacher, class, subject, semester, period, cleanup := setupTestData(t)
	defer cleanup()

	repo := repository.NewRepository(testDB)
	ctx := context.Background()

	slot := &model.Schedule{
		TeacherID:    teacher.TeacherID,
		ClassID:      class.ClassID,
		SubjectID:    subject.SubjectID,
		DayOfWeek:    2,
		PeriodID:     period.PeriodID,
		SemesterID:   semester.SemesterID,
		AcademicYear: semester.AcademicYear,
	}
	if err := repo.Schedule.Create(ctx, slot); err != nil {
		t.Fatalf("create slot: %v", err)
	}
	defer testDB.Unscoped().Where("schedule_id = ?", slot.ScheduleID).Delete(&model.Schedule{})

	if err := repo.Schedule.Delete(ctx, slot.ScheduleID); err != nil {
		t.Fatalf("Delete: %v", err)
	}

	if _, err := repo.Schedule.GetByID(ctx, slot.ScheduleID); err == nil {
		t.Fatal("soft-deleted slot still visible to a scoped query")
	}

	var found model.Schedule
	if err := testDB.Unscoped().Where("schedule_id = ?", slot.ScheduleID).First(&found).Error; err != nil {
		t.Fatalf("unscoped lookup: %v", err)
	}
	if found.DeletedAt.Time.IsZero() {
		t.Error("deleted_at not set")
	}
}
