package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	ics "github.com/arran4/golang-ical"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"siakad/backend/internal/model"
	"siakad/backend/internal/repository"
)

var (
	ErrExportNoData         = errors.New("tidak ada data untuk diekspor")
	ErrExportGenerateFailed = errors.New("gagal membuat file Excel")
)

// icsWeeklyCount bounds the repeating calendar events to one semester
// of teaching weeks.
const icsWeeklyCount = 18

// ExportService renders students, teachers, schedules, grades and
// attendance recaps as downloadable files. Excel output comes back as a buffer so the
// handler only sets headers and writes; the ICS export serialises a
// class's weekly timetable as an RFC 5545 calendar.
type ExportService interface {
	StudentsXLSX(ctx context.Context, classID string) (*bytes.Buffer, string, error)
	TeachersXLSX(ctx context.Context) (*bytes.Buffer, string, error)
	ScheduleXLSX(ctx context.Context, classID, semesterID string) (*bytes.Buffer, string, error)
	GradesXLSX(ctx context.Context, classID, semesterID string) (*bytes.Buffer, string, error)
	RecapXLSX(ctx context.Context, classID, dateFrom, dateTo string) (*bytes.Buffer, string, error)
	ScheduleICS(ctx context.Context, classID, semesterID string) (string, string, error)
}

type exportService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewExportService wires the export service.
func NewExportService(repo *repository.Repository, logger *zap.Logger) ExportService {
	return &exportService{repo: repo, logger: logger}
}

// StudentsXLSX exports one class's roster, or the whole school when
// classID is empty.
func (s *exportService) StudentsXLSX(ctx context.Context, classID string) (*bytes.Buffer, string, error) {
	var students []model.Student
	filename := "siswa.xlsx"

	if classID != "" {
		class, err := s.repo.Class.GetByID(ctx, classID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, "", ErrClassNotFound
			}
			return nil, "", err
		}
		students, err = s.repo.Student.ListByClass(ctx, classID)
		if err != nil {
			return nil, "", err
		}
		filename = fmt.Sprintf("siswa_%s.xlsx", class.Name)
	} else {
		var err error
		students, _, err = s.repo.Student.List(ctx, repository.StudentFilter{Limit: 100000})
		if err != nil {
			return nil, "", err
		}
	}
	if len(students) == 0 {
		return nil, "", ErrExportNoData
	}

	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Siswa"
	idx, err := f.NewSheet(sheet)
	if err != nil {
		return nil, "", ErrExportGenerateFailed
	}
	f.SetActiveSheet(idx)
	f.DeleteSheet("Sheet1")

	f.SetColWidth(sheet, "A", "A", 6)
	f.SetColWidth(sheet, "B", "C", 22)
	f.SetColWidth(sheet, "D", "H", 16)

	header := []string{"No", "NIS", "Nama", "L/P", "Tanggal Lahir", "Kelas", "Nama Wali", "No HP Wali"}
	writeHeaderRow(f, sheet, 1, header)

	for i := range students {
		st := &students[i]
		row := i + 2
		className := ""
		if st.Class != nil {
			className = st.Class.Name
		}
		values := []interface{}{
			i + 1, st.NIS, st.Name, st.Gender, formatDate(st.BirthDate),
			className, st.GuardianName, st.GuardianPhone,
		}
		for col, v := range values {
			cellRef, _ := excelize.CoordinatesToCellName(col+1, row)
			f.SetCellValue(sheet, cellRef, v)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		s.logger.Error("gagal serialisasi excel siswa", zap.Error(err))
		return nil, "", ErrExportGenerateFailed
	}
	return buf, filename, nil
}

// TeachersXLSX exports the staff list with their subject assignments.
func (s *exportService) TeachersXLSX(ctx context.Context) (*bytes.Buffer, string, error) {
	teachers, _, err := s.repo.Teacher.List(ctx, repository.TeacherFilter{Limit: 100000})
	if err != nil {
		return nil, "", err
	}
	if len(teachers) == 0 {
		return nil, "", ErrExportNoData
	}

	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Guru"
	idx, err := f.NewSheet(sheet)
	if err != nil {
		return nil, "", ErrExportGenerateFailed
	}
	f.SetActiveSheet(idx)
	f.DeleteSheet("Sheet1")

	f.SetColWidth(sheet, "A", "A", 6)
	f.SetColWidth(sheet, "B", "C", 22)
	f.SetColWidth(sheet, "D", "D", 16)
	f.SetColWidth(sheet, "E", "E", 36)

	writeHeaderRow(f, sheet, 1, []string{"No", "NIP", "Nama", "No HP", "Mata Pelajaran"})

	for i := range teachers {
		tc := &teachers[i]
		row := i + 2
		names := make([]string, len(tc.Subjects))
		for j := range tc.Subjects {
			names[j] = tc.Subjects[j].Name
		}
		values := []interface{}{i + 1, tc.NIP, tc.Name, tc.Phone, strings.Join(names, ", ")}
		for col, v := range values {
			f.SetCellValue(sheet, cellRef(col+1, row), v)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		s.logger.Error("gagal serialisasi excel guru", zap.Error(err))
		return nil, "", ErrExportGenerateFailed
	}
	return buf, "guru.xlsx", nil
}

// ScheduleXLSX exports a class's timetable as a day × period grid.
func (s *exportService) ScheduleXLSX(ctx context.Context, classID, semesterID string) (*bytes.Buffer, string, error) {
	class, err := s.repo.Class.GetByID(ctx, classID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", ErrClassNotFound
		}
		return nil, "", err
	}

	schedules, _, err := s.repo.Schedule.List(ctx, repository.ScheduleFilter{
		ClassID:    classID,
		SemesterID: semesterID,
		Limit:      10000,
	})
	if err != nil {
		return nil, "", err
	}
	if len(schedules) == 0 {
		return nil, "", ErrExportNoData
	}

	periods, err := s.repo.Period.ListAll(ctx)
	if err != nil {
		return nil, "", err
	}

	// slot index: "day:periodID" → cell text
	slots := make(map[string]string, len(schedules))
	for i := range schedules {
		sch := &schedules[i]
		text := ""
		if sch.Subject != nil {
			text = sch.Subject.Name
		}
		if sch.Teacher != nil {
			text += " (" + sch.Teacher.Name + ")"
		}
		slots[fmt.Sprintf("%d:%s", sch.DayOfWeek, sch.PeriodID)] = text
	}

	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Jadwal"
	idx, err := f.NewSheet(sheet)
	if err != nil {
		return nil, "", ErrExportGenerateFailed
	}
	f.SetActiveSheet(idx)
	f.DeleteSheet("Sheet1")

	f.SetColWidth(sheet, "A", "A", 10)
	f.SetColWidth(sheet, "B", "B", 14)
	lastCol, _ := excelize.ColumnNumberToName(2 + len(model.DayNames))
	f.SetColWidth(sheet, "C", lastCol, 26)

	title := fmt.Sprintf("Jadwal Pelajaran %s", class.Name)
	f.SetCellValue(sheet, "A1", title)
	f.MergeCell(sheet, "A1", lastCol+"1")

	header := []string{"Jam ke", "Waktu"}
	for day := 1; day <= 6; day++ {
		header = append(header, model.DayNames[day])
	}
	writeHeaderRow(f, sheet, 2, header)

	sort.Slice(periods, func(i, j int) bool { return periods[i].Number < periods[j].Number })
	for i := range periods {
		p := &periods[i]
		row := i + 3
		f.SetCellValue(sheet, cellRef(1, row), p.Number)
		f.SetCellValue(sheet, cellRef(2, row), p.StartTime+"-"+p.EndTime)
		for day := 1; day <= 6; day++ {
			f.SetCellValue(sheet, cellRef(2+day, row), slots[fmt.Sprintf("%d:%s", day, p.PeriodID)])
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		s.logger.Error("gagal serialisasi excel jadwal", zap.Error(err))
		return nil, "", ErrExportGenerateFailed
	}
	return buf, fmt.Sprintf("jadwal_%s.xlsx", class.Name), nil
}

// GradesXLSX exports all of a class's scores for one semester, one row
// per score so the sheet can be pivoted freely.
func (s *exportService) GradesXLSX(ctx context.Context, classID, semesterID string) (*bytes.Buffer, string, error) {
	class, err := s.repo.Class.GetByID(ctx, classID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", ErrClassNotFound
		}
		return nil, "", err
	}

	grades, _, err := s.repo.Grade.List(ctx, repository.GradeFilter{
		ClassID:    classID,
		SemesterID: semesterID,
		Limit:      100000,
	})
	if err != nil {
		return nil, "", err
	}
	if len(grades) == 0 {
		return nil, "", ErrExportNoData
	}

	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Nilai"
	idx, err := f.NewSheet(sheet)
	if err != nil {
		return nil, "", ErrExportGenerateFailed
	}
	f.SetActiveSheet(idx)
	f.DeleteSheet("Sheet1")

	f.SetColWidth(sheet, "A", "A", 6)
	f.SetColWidth(sheet, "B", "C", 22)
	f.SetColWidth(sheet, "D", "D", 24)
	f.SetColWidth(sheet, "E", "F", 10)

	f.SetCellValue(sheet, "A1", fmt.Sprintf("Daftar Nilai %s", class.Name))
	f.MergeCell(sheet, "A1", "F1")
	writeHeaderRow(f, sheet, 2, []string{"No", "NIS", "Nama", "Mata Pelajaran", "Jenis", "Nilai"})

	for i := range grades {
		g := &grades[i]
		row := i + 3
		nis, name, subjectName := "", "", ""
		if g.Student != nil {
			nis, name = g.Student.NIS, g.Student.Name
		}
		if g.Subject != nil {
			subjectName = g.Subject.Name
		}
		values := []interface{}{i + 1, nis, name, subjectName, g.Kind, g.Score}
		for col, v := range values {
			f.SetCellValue(sheet, cellRef(col+1, row), v)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		s.logger.Error("gagal serialisasi excel nilai", zap.Error(err))
		return nil, "", ErrExportGenerateFailed
	}
	return buf, fmt.Sprintf("nilai_%s.xlsx", class.Name), nil
}

// RecapXLSX exports a class's attendance totals over a date range.
func (s *exportService) RecapXLSX(ctx context.Context, classID, dateFrom, dateTo string) (*bytes.Buffer, string, error) {
	from, err1 := time.Parse(dateLayout, dateFrom)
	to, err2 := time.Parse(dateLayout, dateTo)
	if err1 != nil || err2 != nil || to.Before(from) {
		return nil, "", ErrAttendanceInvalidRange
	}

	class, err := s.repo.Class.GetByID(ctx, classID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", ErrClassNotFound
		}
		return nil, "", err
	}

	students, err := s.repo.Student.ListByClass(ctx, classID)
	if err != nil {
		return nil, "", err
	}
	if len(students) == 0 {
		return nil, "", ErrExportNoData
	}
	rows, err := s.repo.Attendance.ListByClassRange(ctx, classID, from, to)
	if err != nil {
		return nil, "", err
	}

	type tally struct{ h, s, i, a int }
	tallies := make(map[string]*tally, len(students))
	for i := range students {
		tallies[students[i].StudentID] = &tally{}
	}
	for i := range rows {
		t, ok := tallies[rows[i].StudentID]
		if !ok {
			continue
		}
		switch rows[i].Status {
		case model.AttendancePresent:
			t.h++
		case model.AttendanceSick:
			t.s++
		case model.AttendanceExcused:
			t.i++
		case model.AttendanceAbsent:
			t.a++
		}
	}

	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Rekap Absensi"
	idx, err := f.NewSheet(sheet)
	if err != nil {
		return nil, "", ErrExportGenerateFailed
	}
	f.SetActiveSheet(idx)
	f.DeleteSheet("Sheet1")

	f.SetColWidth(sheet, "A", "A", 6)
	f.SetColWidth(sheet, "B", "C", 22)
	f.SetColWidth(sheet, "D", "G", 10)

	f.SetCellValue(sheet, "A1", fmt.Sprintf("Rekap Absensi %s (%s s.d. %s)", class.Name, dateFrom, dateTo))
	f.MergeCell(sheet, "A1", "G1")
	writeHeaderRow(f, sheet, 2, []string{"No", "NIS", "Nama", "Hadir", "Sakit", "Izin", "Alpa"})

	for i := range students {
		st := &students[i]
		t := tallies[st.StudentID]
		row := i + 3
		values := []interface{}{i + 1, st.NIS, st.Name, t.h, t.s, t.i, t.a}
		for col, v := range values {
			f.SetCellValue(sheet, cellRef(col+1, row), v)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		s.logger.Error("gagal serialisasi excel rekap", zap.Error(err))
		return nil, "", ErrExportGenerateFailed
	}
	return buf, fmt.Sprintf("rekap_absensi_%s.xlsx", class.Name), nil
}

// ScheduleICS serialises a class's weekly timetable as an iCalendar
// feed. Each slot becomes a weekly repeating event anchored to its next
// occurrence.
func (s *exportService) ScheduleICS(ctx context.Context, classID, semesterID string) (string, string, error) {
	class, err := s.repo.Class.GetByID(ctx, classID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", "", ErrClassNotFound
		}
		return "", "", err
	}

	schedules, _, err := s.repo.Schedule.List(ctx, repository.ScheduleFilter{
		ClassID:    classID,
		SemesterID: semesterID,
		Limit:      10000,
	})
	if err != nil {
		return "", "", err
	}
	if len(schedules) == 0 {
		return "", "", ErrExportNoData
	}

	loc, err := time.LoadLocation("Asia/Jakarta")
	if err != nil {
		loc = time.UTC
	}
	now := time.Now().In(loc)

	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId("-//siakad//jadwal//ID")

	for i := range schedules {
		sch := &schedules[i]
		if sch.Period == nil {
			continue
		}

		start, end, ok := nextSlotOccurrence(now, sch.DayOfWeek, sch.Period.StartTime, sch.Period.EndTime)
		if !ok {
			continue
		}

		ev := cal.AddEvent(fmt.Sprintf("%s@siakad", sch.ScheduleID))
		ev.SetCreatedTime(now)
		ev.SetDtStampTime(now)
		ev.SetStartAt(start)
		ev.SetEndAt(end)
		if sch.Subject != nil {
			ev.SetSummary(sch.Subject.Name)
		}
		if sch.Teacher != nil {
			ev.SetDescription("Pengajar: " + sch.Teacher.Name)
		}
		ev.SetLocation("Kelas " + class.Name)
		ev.AddRrule(fmt.Sprintf("FREQ=WEEKLY;COUNT=%d", icsWeeklyCount))
	}

	return cal.Serialize(), fmt.Sprintf("jadwal_%s.ics", class.Name), nil
}

// nextSlotOccurrence finds the next calendar date of a weekly slot
// (1=Senin .. 6=Sabtu) and combines it with the period's HH:MM times.
func nextSlotOccurrence(now time.Time, dayOfWeek int, startHHMM, endHHMM string) (time.Time, time.Time, bool) {
	startT, err1 := time.Parse("15:04", startHHMM)
	endT, err2 := time.Parse("15:04", endHHMM)
	if err1 != nil || err2 != nil {
		return time.Time{}, time.Time{}, false
	}

	// time.Weekday has Sunday=0; the timetable has Senin=1 .. Sabtu=6,
	// which matches Monday=1 .. Saturday=6 directly.
	daysAhead := (dayOfWeek - int(now.Weekday()) + 7) % 7
	date := now.AddDate(0, 0, daysAhead)

	start := time.Date(date.Year(), date.Month(), date.Day(), startT.Hour(), startT.Minute(), 0, 0, now.Location())
	end := time.Date(date.Year(), date.Month(), date.Day(), endT.Hour(), endT.Minute(), 0, 0, now.Location())
	return start, end, true
}

// ── excelize helpers ──

func cellRef(col, row int) string {
	ref, _ := excelize.CoordinatesToCellName(col, row)
	return ref
}

func writeHeaderRow(f *excelize.File, sheet string, row int, header []string) {
	style, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11, Color: "#FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#4472C4"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	for col, h := range header {
		ref := cellRef(col+1, row)
		f.SetCellValue(sheet, ref, h)
		f.SetCellStyle(sheet, ref, ref, style)
	}
}
