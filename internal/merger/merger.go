// Package merger consolidates multiple spreadsheet files into a single
// workbook plus a processing report. The pipeline validates inputs, extracts
// and cleans each sheet, standardizes column names, concatenates and
// deduplicates the data, and writes a styled two-sheet output artifact.
package merger

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/excelmerge/excelmerge/internal/logging"
)

// FileRecord captures per-file processing metadata. It is created during
// extraction and immutable afterwards.
type FileRecord struct {
	Filename       string
	FileSize       int64
	SheetCount     int
	TotalRows      int
	ProcessingTime float64
	Checksum       string
	Errors         []string
	Warnings       []string
}

// SizeMB returns the file size in megabytes rounded to 2 decimals.
func (r FileRecord) SizeMB() float64 {
	return round2(float64(r.FileSize) / 1024 / 1024)
}

// MarshalJSON surfaces the external record shape: size in MB, not bytes.
func (r FileRecord) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Filename       string   `json:"filename"`
		FileSizeMB     float64  `json:"file_size_mb"`
		SheetCount     int      `json:"sheet_count"`
		TotalRows      int      `json:"total_rows"`
		ProcessingTime float64  `json:"processing_time"`
		Checksum       string   `json:"checksum"`
		Errors         []string `json:"errors"`
		Warnings       []string `json:"warnings"`
	}{
		Filename:       r.Filename,
		FileSizeMB:     r.SizeMB(),
		SheetCount:     r.SheetCount,
		TotalRows:      r.TotalRows,
		ProcessingTime: r.ProcessingTime,
		Checksum:       r.Checksum,
		Errors:         emptyIfNil(r.Errors),
		Warnings:       emptyIfNil(r.Warnings),
	})
}

// Result is the terminal artifact of one run. It is either fully populated
// on success or zero-counted with errors on failure, never partial.
type Result struct {
	Success        bool         `json:"success"`
	RunID          string       `json:"run_id"`
	OutputPath     string       `json:"output_path,omitempty"`
	TotalRows      int          `json:"total_rows"`
	TotalColumns   int          `json:"total_columns"`
	ProcessingTime float64      `json:"processing_time"`
	Errors         []string     `json:"errors"`
	Warnings       []string     `json:"warnings"`
	Metadata       []FileRecord `json:"metadata"`
}

// Merger runs one-shot merge operations. Each call to MergeFiles owns its
// own accumulators, so a single Merger is safe to reuse sequentially and
// multiple Mergers can coexist in one process.
type Merger struct {
	outputDir string
	log       *logging.Logger
}

// New creates a Merger writing output artifacts into outputDir (system temp
// location when empty) and logging through the given sink.
func New(outputDir string, log *logging.Logger) *Merger {
	if outputDir == "" {
		outputDir = os.TempDir()
	}
	return &Merger{outputDir: outputDir, log: log}
}

// runState accumulates soft errors, warnings and file records for one run.
type runState struct {
	id       string
	errors   []string
	warnings []string
	records  []FileRecord
}

// MergeFiles merges the given spreadsheet files into one output workbook.
// It always returns a Result and never panics past this point: hard
// pipeline failures and unanticipated panics both convert to a failure
// Result carrying the accumulated errors.
func (m *Merger) MergeFiles(paths []string) (result Result) {
	start := time.Now()
	run := &runState{id: uuid.NewString(), records: []FileRecord{}}

	defer func() {
		if r := recover(); r != nil {
			msg := fmt.Sprintf("Unexpected error during merge operation: %v", r)
			m.log.Error("[run %s] %s", run.id, msg)
			result = m.failure(run, msg, start)
		}
	}()

	m.log.Info("[run %s] Starting merge of %d file(s)", run.id, len(paths))

	res, err := m.run(paths, run, start)
	if err != nil {
		m.log.Error("[run %s] Merge operation failed: %v", run.id, err)
		return m.failure(run, err.Error(), start)
	}
	return res
}

func (m *Merger) run(paths []string, run *runState, start time.Time) (Result, error) {
	if len(paths) == 0 {
		return Result{}, newPipelineError(FailureEmptyInput, "No files provided for merging")
	}
	if len(paths) > MaxFiles {
		return Result{}, newPipelineError(FailureTooManyFiles,
			"Too many files provided. Maximum allowed: %d", MaxFiles)
	}

	var validFiles []string
	for _, path := range paths {
		if _, err := os.Stat(path); err != nil {
			run.errors = append(run.errors, fmt.Sprintf("File not found: %s", path))
			continue
		}
		ok, errs := validateFile(path)
		if !ok {
			name := filepath.Base(path)
			for _, e := range errs {
				run.errors = append(run.errors, fmt.Sprintf("%s: %s", name, e))
			}
			continue
		}
		validFiles = append(validFiles, path)
	}
	if len(validFiles) == 0 {
		return Result{}, newPipelineError(FailureNoValidFiles, "No valid Excel files found")
	}

	var frames []*Frame
	for _, path := range validFiles {
		fileFrames, record, err := m.extractSheets(path)
		if err != nil {
			// Open failure: fatal for this file only.
			run.errors = append(run.errors, err.Error())
			continue
		}
		frames = append(frames, fileFrames...)
		run.records = append(run.records, record)
		run.errors = append(run.errors, record.Errors...)
		run.warnings = append(run.warnings, record.Warnings...)
	}
	if len(frames) == 0 {
		return Result{}, newPipelineError(FailureNoData,
			"No valid data found in any of the provided files")
	}

	merged, err := mergeFrames(frames)
	if err != nil {
		return Result{}, err
	}
	m.log.Info("[run %s] Successfully merged %d frames into %d rows",
		run.id, len(frames), merged.RowCount())

	report := buildReport(run.records, merged.RowCount())

	outputPath := filepath.Join(m.outputDir,
		fmt.Sprintf("merged_excel_files_%s.xlsx", time.Now().Format("20060102_150405")))
	if err := writeWorkbook(merged, report, outputPath); err != nil {
		return Result{}, newPipelineError(FailureWrite, "Error saving Excel file: %v", err)
	}
	m.log.Info("[run %s] Successfully saved merged file to: %s", run.id, outputPath)

	elapsed := time.Since(start).Seconds()
	m.log.Info("[run %s] Merge operation completed successfully in %.2f seconds", run.id, elapsed)

	return Result{
		Success:        true,
		RunID:          run.id,
		OutputPath:     outputPath,
		TotalRows:      merged.RowCount(),
		TotalColumns:   merged.ColumnCount(),
		ProcessingTime: elapsed,
		Errors:         emptyIfNil(run.errors),
		Warnings:       emptyIfNil(run.warnings),
		Metadata:       run.records,
	}, nil
}

// failure assembles the FAILURE-shaped result: accumulated soft errors plus
// the triggering error, zero counts, no output path.
func (m *Merger) failure(run *runState, msg string, start time.Time) Result {
	errs := make([]string, 0, len(run.errors)+1)
	errs = append(errs, run.errors...)
	errs = append(errs, msg)

	return Result{
		Success:        false,
		RunID:          run.id,
		ProcessingTime: time.Since(start).Seconds(),
		Errors:         errs,
		Warnings:       emptyIfNil(run.warnings),
		Metadata:       run.records,
	}
}

func emptyIfNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
