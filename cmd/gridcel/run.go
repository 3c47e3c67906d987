package main

import (
	"encoding/csv"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/gridcel/gridcel/cel"
)

// sheetFlags are the evaluation options shared by the run and view
// commands. Config file keys: delimiter, marker, header, fail_fast.
type sheetFlags struct {
	Delimiter string `help:"Field delimiter." default:","`
	Marker    string `help:"Formula marker character." default:"="`
	Header    bool   `help:"Treat the first record as a header row passed through verbatim." default:"true" negatable:""`
	FailFast  bool   `help:"Stop at the first failing cell." default:"false"`
}

// RunCmd evaluates an input file and writes the rendered grid to the
// output file.
type RunCmd struct {
	sheetFlags

	Input  string `arg:"" help:"Input CSV file." type:"existingfile"`
	Output string `arg:"" help:"Output CSV file." type:"path"`
}

func (c *RunCmd) Run() error {
	if err := checkCSVPath(c.Input); err != nil {
		return err
	}
	if err := checkCSVPath(c.Output); err != nil {
		return err
	}

	delimiter, err := c.delimiterRune()
	if err != nil {
		return err
	}
	marker, err := c.markerRune()
	if err != nil {
		return err
	}

	records, err := readRecords(c.Input, delimiter)
	if err != nil {
		return err
	}
	header, data := splitHeader(records, c.Header)
	slog.Info("loaded input", "file", c.Input, "rows", len(data), "header", c.Header)

	engine := cel.NewEngine(cel.Config{Marker: marker, FailFast: c.FailFast})
	rendered, cellErrs := engine.EvaluateRecords(data)
	for _, cellErr := range cellErrs {
		fmt.Fprintln(os.Stderr, cellErr)
	}

	if err := writeRecords(c.Output, delimiter, header, rendered); err != nil {
		return err
	}
	slog.Info("wrote output", "file", c.Output)

	if len(cellErrs) > 0 {
		return fmt.Errorf("%d cell(s) failed to evaluate", len(cellErrs))
	}
	return nil
}

func (f *sheetFlags) delimiterRune() (rune, error) {
	r, size := utf8.DecodeRuneInString(f.Delimiter)
	if size == 0 || size != len(f.Delimiter) {
		return 0, fmt.Errorf("delimiter must be a single character, got %q", f.Delimiter)
	}
	return r, nil
}

func (f *sheetFlags) markerRune() (rune, error) {
	r, size := utf8.DecodeRuneInString(f.Marker)
	if size == 0 || size != len(f.Marker) {
		return 0, fmt.Errorf("marker must be a single character, got %q", f.Marker)
	}
	return r, nil
}

// checkCSVPath requires a .csv extension and, for existing paths, a
// regular file.
func checkCSVPath(path string) error {
	if !strings.EqualFold(filepath.Ext(path), ".csv") {
		return fmt.Errorf("%s is not a CSV file", path)
	}
	info, err := os.Stat(path)
	if err == nil && !info.Mode().IsRegular() {
		return fmt.Errorf("%s is not a file", path)
	}
	return nil
}

// readRecords reads all records, tolerating ragged rows (the grid pads
// them) and trimming each field of surrounding whitespace.
func readRecords(path string, delimiter rune) ([][]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.Comma = delimiter
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}
	for _, record := range records {
		for i, field := range record {
			record[i] = strings.TrimSpace(field)
		}
	}
	return records, nil
}

func writeRecords(path string, delimiter rune, header []string, records [][]string) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	writer.Comma = delimiter
	if header != nil {
		if err := writer.Write(header); err != nil {
			return fmt.Errorf("write output: %w", err)
		}
	}
	if err := writer.WriteAll(records); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}

// splitHeader peels off the header record when header handling is on. Cell
// addresses are relative to the data rows: with a header, A1 is the first
// record after it.
func splitHeader(records [][]string, header bool) ([]string, [][]string) {
	if !header || len(records) == 0 {
		return nil, records
	}
	return records[0], records[1:]
}
