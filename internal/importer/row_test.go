package importer

import "testing"

func TestNormalize_SynonymPriority(t *testing.T) {
	raw := RawRow{
		Number: 2,
		Cells: map[string]string{
			"nama siswa": "Budi Santoso",
			"nis":        "2024001",
			"kelas":      "7A",
		},
	}

	rec, missing := StudentSchema.Normalize(raw)
	if missing != nil {
		t.Fatalf("unexpected missing fields: %v", missing)
	}
	if rec.Get(KeyName) != "Budi Santoso" {
		t.Errorf("expected name from 'nama siswa' header, got %q", rec.Get(KeyName))
	}
	if rec.Get(KeyClass) != "7A" {
		t.Errorf("expected class 7A, got %q", rec.Get(KeyClass))
	}
	if rec.Row != 2 {
		t.Errorf("expected row 2, got %d", rec.Row)
	}
}

func TestNormalize_FirstNonEmptySynonymWins(t *testing.T) {
	raw := RawRow{
		Number: 3,
		Cells: map[string]string{
			"nama":       "", // empty, so the next synonym is consulted
			"name":       "Siti Rahayu",
			"nis":        "2024002",
			"nama siswa": "ignored",
		},
	}

	rec, missing := StudentSchema.Normalize(raw)
	if missing != nil {
		t.Fatalf("unexpected missing fields: %v", missing)
	}
	if rec.Get(KeyName) != "Siti Rahayu" {
		t.Errorf("expected 'Siti Rahayu' via the second synonym, got %q", rec.Get(KeyName))
	}
}

func TestNormalize_MissingRequired(t *testing.T) {
	raw := RawRow{
		Number: 4,
		Cells: map[string]string{
			"nama":  "Tanpa NIS",
			"kelas": "8B",
		},
	}

	rec, missing := StudentSchema.Normalize(raw)
	if rec != nil {
		t.Fatal("expected no record when a required field is missing")
	}
	if len(missing) != 1 || missing[0] != KeyNIS {
		t.Errorf("expected missing [nis], got %v", missing)
	}
}

func TestNormalize_TrimsValues(t *testing.T) {
	raw := RawRow{
		Number: 2,
		Cells: map[string]string{
			"nama": "  Dewi  ",
			"nis":  " 2024003 ",
		},
	}

	rec, _ := StudentSchema.Normalize(raw)
	if rec == nil {
		t.Fatal("expected a record")
	}
	if rec.Get(KeyName) != "Dewi" {
		t.Errorf("expected trimmed name, got %q", rec.Get(KeyName))
	}
	if rec.Get(KeyNIS) != "2024003" {
		t.Errorf("expected trimmed nis, got %q", rec.Get(KeyNIS))
	}
}

func TestScheduleSchema_Headers(t *testing.T) {
	raw := RawRow{
		Number: 2,
		Cells: map[string]string{
			"guru":         "Pak Ahmad",
			"kelas":        "7A",
			"mapel":        "Matematika",
			"hari":         "Senin",
			"jam ke":       "1",
			"semester":     "Ganjil",
			"tahun ajaran": "2024/2025",
		},
	}

	rec, missing := ScheduleSchema.Normalize(raw)
	if missing != nil {
		t.Fatalf("unexpected missing fields: %v", missing)
	}
	if rec.Get(KeySubject) != "Matematika" {
		t.Errorf("expected subject via 'mapel', got %q", rec.Get(KeySubject))
	}
	if rec.Get(KeyPeriod) != "1" {
		t.Errorf("expected period 1, got %q", rec.Get(KeyPeriod))
	}
}

func TestRawRow_Empty(t *testing.T) {
	if !(RawRow{Cells: map[string]string{"nama": "  ", "nis": ""}}).Empty() {
		t.Error("whitespace-only row should be empty")
	}
	if (RawRow{Cells: map[string]string{"nama": "x"}}).Empty() {
		t.Error("row with content should not be empty")
	}
}

func TestResult_Record(t *testing.T) {
	var res Result
	res.Record(RowOutcome{})
	res.Record(RowOutcome{Err: RowError(3, "NIS sudah terdaftar: %s", "2024001")})
	res.Record(RowOutcome{Skipped: true})

	if res.Success != 1 || res.Failed != 1 || res.Skipped != 1 {
		t.Errorf("unexpected counts: %+v", res)
	}
	if len(res.Errors) != 1 || res.Errors[0] != "Baris 3: NIS sudah terdaftar: 2024001" {
		t.Errorf("unexpected errors: %v", res.Errors)
	}
}

func TestNotFoundError_Format(t *testing.T) {
	got := NotFoundError(3, "Kelas", "9Z")
	want := "Baris 3: Kelas '9Z' tidak ditemukan"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}
