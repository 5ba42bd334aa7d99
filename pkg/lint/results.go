package lint

import (
	"fmt"
	"io"
)

// FileReport holds the findings for one record file.
type FileReport struct {
	Filename string
	Errors   []string
	Warnings []string
	Fixes    []string
}

// Clean reports whether the file produced no findings at all.
func (f *FileReport) Clean() bool {
	return len(f.Errors) == 0 && len(f.Warnings) == 0 && len(f.Fixes) == 0
}

// Results is the outcome of one corpus pass: per-file findings in
// processing order, then corpus-wide findings.
type Results struct {
	Files          []*FileReport
	Corpus         []string
	CorpusWarnings []string

	ErrorCount   int
	WarningCount int
	FixCount     int

	byFile map[string]*FileReport
}

func newResults() *Results {
	return &Results{byFile: make(map[string]*FileReport)}
}

// file returns the report for a filename, creating it on first use so
// processing order is preserved.
func (r *Results) file(filename string) *FileReport {
	if report, ok := r.byFile[filename]; ok {
		return report
	}
	report := &FileReport{Filename: filename}
	r.byFile[filename] = report
	r.Files = append(r.Files, report)
	return report
}

func (r *Results) tally() {
	r.ErrorCount = len(r.Corpus)
	r.WarningCount = len(r.CorpusWarnings)
	for _, report := range r.Files {
		r.ErrorCount += len(report.Errors)
		r.WarningCount += len(report.Warnings)
		r.FixCount += len(report.Fixes)
	}
}

// Print writes the grouped-by-file listing and a final count. With verbose
// clean files are listed too.
func (r *Results) Print(w io.Writer, verbose bool) {
	for _, report := range r.Files {
		if report.Clean() && !verbose {
			continue
		}
		fmt.Fprintln(w, report.Filename)
		for _, msg := range report.Errors {
			fmt.Fprintf(w, "  error: %s\n", msg)
		}
		for _, msg := range report.Warnings {
			fmt.Fprintf(w, "  warning: %s\n", msg)
		}
		for _, msg := range report.Fixes {
			fmt.Fprintf(w, "  fixed: %s\n", msg)
		}
	}

	for _, msg := range r.Corpus {
		fmt.Fprintf(w, "error: %s\n", msg)
	}
	for _, msg := range r.CorpusWarnings {
		fmt.Fprintf(w, "warning: %s\n", msg)
	}

	fmt.Fprintf(w, "%d errors, %d warnings, %d fixes\n",
		r.ErrorCount, r.WarningCount, r.FixCount)
}
