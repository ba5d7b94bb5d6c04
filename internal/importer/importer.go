// ABOUTME: Exercise catalog import from spreadsheet files.
// ABOUTME: Reads XLSX or CSV rows and seeds the Exercises table in one batch.
package importer

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/fitdb/fitdb/internal/models"
	"github.com/fitdb/fitdb/internal/storage"
)

// Config defines where catalog rows come from.
type Config struct {
	// FilePath is the .xlsx or .csv file to read.
	FilePath string
	// SheetName is the Excel sheet to read. Defaults to Sheet1.
	SheetName string
	// StartRow is the 1-based first data row. Defaults to 2, skipping
	// one header row.
	StartRow int
}

// DefaultConfig returns the import configuration for a file with one
// header row on the first sheet.
func DefaultConfig(path string) Config {
	return Config{
		FilePath:  path,
		SheetName: "Sheet1",
		StartRow:  2,
	}
}

// Result holds the outcome of an import: how many rows were read,
// stored, and rejected, with one message per rejected row.
type Result struct {
	TotalProcessed int
	Imported       int
	Skipped        int
	Errors         []string
}

// exerciseColumns is the expected column layout, matching the header
// Name, Type, BodyPart, Instructions, VideoUrl, GifUrl.
var exerciseColumns = []string{"Name", "Type", "BodyPart", "Instructions", "VideoUrl", "GifUrl"}

// ImportExercises reads catalog rows from an Excel or CSV file and
// inserts every valid one in a single batch. Rows that fail validation
// are skipped and reported in the result; a storage failure aborts the
// whole batch.
func ImportExercises(s *storage.Store, cfg Config) (*Result, error) {
	if cfg.SheetName == "" {
		cfg.SheetName = "Sheet1"
	}
	if cfg.StartRow <= 0 {
		cfg.StartRow = 2
	}

	var rows [][]string
	var err error
	if strings.ToLower(filepath.Ext(cfg.FilePath)) == ".csv" {
		rows, err = readCSV(cfg.FilePath)
	} else {
		rows, err = readExcel(cfg.FilePath, cfg.SheetName)
	}
	if err != nil {
		return nil, err
	}

	result := &Result{Errors: make([]string, 0)}
	var batch [][]any

	for i, row := range rows {
		rowNum := i + 1
		if rowNum < cfg.StartRow {
			continue
		}
		if isEmptyRow(row) {
			continue
		}

		result.TotalProcessed++
		values, err := parseRow(row)
		if err != nil {
			result.Skipped++
			result.Errors = append(result.Errors, fmt.Sprintf("row %d: %v", rowNum, err))
			continue
		}
		batch = append(batch, values)
	}

	if len(batch) > 0 {
		if err := s.BulkInsert("Exercises", exerciseColumns, batch); err != nil {
			return nil, fmt.Errorf("import exercises: %w", err)
		}
	}
	result.Imported = len(batch)

	return result, nil
}

// readExcel loads every row of the named sheet.
func readExcel(path, sheet string) ([][]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open excel file: %w", err)
	}
	defer f.Close()

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("read sheet %s: %w", sheet, err)
	}
	return rows, nil
}

// readCSV loads every record of a CSV file. Rows may have a variable
// number of fields; missing trailing cells read as empty.
func readCSV(path string) ([][]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open csv file: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	var rows [][]string
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read csv: %w", err)
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// parseRow validates one catalog row and shapes it for the insert
// batch. Optional cells left blank become NULL.
func parseRow(row []string) ([]any, error) {
	name := strings.TrimSpace(cell(row, 0))
	exType := strings.TrimSpace(cell(row, 1))
	bodyPart := strings.TrimSpace(cell(row, 2))

	if name == "" {
		return nil, fmt.Errorf("name cannot be empty")
	}
	if !models.IsValidExerciseType(exType) {
		return nil, fmt.Errorf("unknown exercise type %q", exType)
	}
	if bodyPart != "" && !models.IsValidBodyPart(bodyPart) {
		return nil, fmt.Errorf("unknown body part %q", bodyPart)
	}

	return []any{
		name,
		exType,
		optional(bodyPart),
		optional(strings.TrimSpace(cell(row, 3))),
		optional(strings.TrimSpace(cell(row, 4))),
		optional(strings.TrimSpace(cell(row, 5))),
	}, nil
}

func cell(row []string, i int) string {
	if i < len(row) {
		return row[i]
	}
	return ""
}

func optional(s string) any {
	if s == "" {
		return nil
	}
	return s
}

func isEmptyRow(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
