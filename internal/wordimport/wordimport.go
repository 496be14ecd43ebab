// Package wordimport reads vocabulary lists from CSV and XLSX files into rows
// for bulk import into a collection.
package wordimport

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/heartmarshall/wortschatz-backend/internal/service/collection"
)

// ErrUnsupportedFormat is returned for files that are neither CSV nor XLSX.
var ErrUnsupportedFormat = errors.New("unsupported file format")

// Config describes the layout of the source table. Column indexes are
// zero-based; a negative index means the column is absent.
type Config struct {
	// Sheet is the XLSX sheet to read; empty means the first sheet.
	Sheet string
	// Comma is the CSV field delimiter.
	Comma      rune
	SkipHeader bool

	TermColumn               int
	TranslationColumn        int
	ExampleColumn            int
	ExampleTranslationColumn int
}

// DefaultConfig reads "term, translation, example, example translation" with
// a header row.
func DefaultConfig() Config {
	return Config{
		Comma:                    ',',
		SkipHeader:               true,
		TermColumn:               0,
		TranslationColumn:        1,
		ExampleColumn:            2,
		ExampleTranslationColumn: 3,
	}
}

// ReadFile picks the reader by file extension.
func ReadFile(path string, cfg Config) ([]collection.WordRow, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv", ".txt":
		return ReadCSV(f, cfg)
	case ".xlsx", ".xlsm":
		return ReadXLSX(f, cfg)
	default:
		return nil, fmt.Errorf("%s: %w", path, ErrUnsupportedFormat)
	}
}

// ReadCSV parses CSV records. Rows may have a variable number of fields.
func ReadCSV(r io.Reader, cfg Config) ([]collection.WordRow, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true
	reader.TrimLeadingSpace = true
	if cfg.Comma != 0 {
		reader.Comma = cfg.Comma
	}

	var records [][]string
	for {
		rec, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read csv: %w", err)
		}
		records = append(records, rec)
	}
	if len(records) > 0 && len(records[0]) > 0 {
		records[0][0] = strings.TrimPrefix(records[0][0], "\ufeff")
	}
	return toRows(records, cfg), nil
}

// ReadXLSX parses the configured sheet of a workbook.
func ReadXLSX(r io.Reader, cfg Config) ([]collection.WordRow, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	sheet := cfg.Sheet
	if sheet == "" {
		sheet = f.GetSheetName(0)
	}
	records, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheet, err)
	}
	return toRows(records, cfg), nil
}

func toRows(records [][]string, cfg Config) []collection.WordRow {
	if cfg.SkipHeader && len(records) > 0 {
		records = records[1:]
	}

	rows := make([]collection.WordRow, 0, len(records))
	for _, rec := range records {
		if blank(rec) {
			continue
		}
		row := collection.WordRow{
			Term:        cell(rec, cfg.TermColumn),
			Translation: cell(rec, cfg.TranslationColumn),
		}
		if german := cell(rec, cfg.ExampleColumn); german != "" {
			row.Examples = []collection.ExampleInput{{
				German:      german,
				Translation: cell(rec, cfg.ExampleTranslationColumn),
			}}
		}
		rows = append(rows, row)
	}
	return rows
}

func cell(rec []string, idx int) string {
	if idx < 0 || idx >= len(rec) {
		return ""
	}
	return strings.TrimSpace(rec[idx])
}

func blank(rec []string) bool {
	for _, v := range rec {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}
