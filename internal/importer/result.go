package importer

import "fmt"

// Result aggregates the outcome of one import request. It is returned
// to the caller and never persisted.
type Result struct {
	Total   int      `json:"total"`
	Success int      `json:"success"`
	Failed  int      `json:"failed"`
	Skipped int      `json:"skipped"`
	Errors  []string `json:"errors,omitempty"`
}

// RowOutcome is the tagged result of processing a single row.
type RowOutcome struct {
	Skipped bool
	Err     string // empty means the row succeeded
}

// Record folds one row outcome into the aggregate.
func (r *Result) Record(o RowOutcome) {
	switch {
	case o.Skipped:
		r.Skipped++
	case o.Err != "":
		r.Failed++
		r.Errors = append(r.Errors, o.Err)
	default:
		r.Success++
	}
}

// RowError formats a per-row failure message: "Baris <n>: <reason>".
func RowError(row int, format string, args ...interface{}) string {
	return fmt.Sprintf("Baris %d: %s", row, fmt.Sprintf(format, args...))
}

// NotFoundError formats the reference-resolution failure for a row,
// e.g. "Baris 3: Kelas '9Z' tidak ditemukan".
func NotFoundError(row int, field, value string) string {
	return RowError(row, "%s '%s' tidak ditemukan", field, value)
}
