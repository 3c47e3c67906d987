package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestSplitHeader(t *testing.T) {
	records := [][]string{{"Name", "Salary"}, {"John", "1000"}}

	header, data := splitHeader(records, true)
	if len(header) != 2 || header[0] != "Name" {
		t.Fatalf("header: got %v", header)
	}
	if len(data) != 1 || data[0][0] != "John" {
		t.Fatalf("data: got %v", data)
	}

	header, data = splitHeader(records, false)
	if header != nil {
		t.Fatalf("expected no header, got %v", header)
	}
	if len(data) != 2 {
		t.Fatalf("data: got %v", data)
	}

	if _, data := splitHeader(nil, true); data != nil {
		t.Fatalf("empty input: got %v", data)
	}
}

func TestCheckCSVPath(t *testing.T) {
	if err := checkCSVPath("input.txt"); err == nil {
		t.Fatalf("expected extension error")
	}
	if err := checkCSVPath("missing.csv"); err != nil {
		t.Fatalf("nonexistent output path should pass: %v", err)
	}
	if err := checkCSVPath(t.TempDir() + string(os.PathSeparator) + "sub.CSV"); err != nil {
		t.Fatalf("extension check should be case-insensitive: %v", err)
	}
}

func TestRunCommandEndToEnd(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "in.csv")
	output := filepath.Join(dir, "out.csv")

	source := strings.Join([]string{
		"Name,Salary",
		"John,1000",
		"Jane,2000",
		"Bob,=sum(B1;B2)",
		"Dave,=sum(B3;mul(B2;0.8))",
		"=print(A1),=print(B2)",
	}, "\n") + "\n"
	if err := os.WriteFile(input, []byte(source), 0o644); err != nil {
		t.Fatalf("write input: %v", err)
	}

	cmd := &RunCmd{
		sheetFlags: sheetFlags{Delimiter: ",", Marker: "=", Header: true},
		Input:      input,
		Output:     output,
	}
	if err := cmd.Run(); err != nil {
		t.Fatalf("run: %v", err)
	}

	got, err := os.ReadFile(output)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	want := strings.Join([]string{
		"Name,Salary",
		"John,1000",
		"Jane,2000",
		"Bob,3000",
		"Dave,4600.0",
		"John,2000",
	}, "\n") + "\n"
	if string(got) != want {
		t.Fatalf("output mismatch:\ngot:\n%s\nwant:\n%s", got, want)
	}
}

func TestRunCommandReportsCellErrors(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "in.csv")
	output := filepath.Join(dir, "out.csv")

	if err := os.WriteFile(input, []byte("=div(1;0)\n"), 0o644); err != nil {
		t.Fatalf("write input: %v", err)
	}

	cmd := &RunCmd{
		sheetFlags: sheetFlags{Delimiter: ",", Marker: "=", Header: false},
		Input:      input,
		Output:     output,
	}
	err := cmd.Run()
	if err == nil {
		t.Fatalf("expected an error for the failing cell")
	}
	if !strings.Contains(err.Error(), "1 cell(s) failed") {
		t.Fatalf("unexpected error: %v", err)
	}

	got, readErr := os.ReadFile(output)
	if readErr != nil {
		t.Fatalf("read output: %v", readErr)
	}
	if strings.TrimSpace(string(got)) != "#ERROR!" {
		t.Fatalf("partial output: got %q", got)
	}
}

func TestDelimiterValidation(t *testing.T) {
	flags := sheetFlags{Delimiter: ";;", Marker: "="}
	if _, err := flags.delimiterRune(); err == nil {
		t.Fatalf("expected delimiter error")
	}
	flags = sheetFlags{Delimiter: ";", Marker: "=="}
	if _, err := flags.markerRune(); err == nil {
		t.Fatalf("expected marker error")
	}
}
