package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/michellepace/markdown-to-word/internal/convert"
	"github.com/michellepace/markdown-to-word/pkg/types"
)

func TestPrintReport_RoundTrip(t *testing.T) {
	result := convert.BatchResult{
		Converted: 1,
		Failed:    1,
		Files: []types.FileResult{
			{Source: "x-input/a.md", Output: "x-output/a.docx", Status: types.ConversionDone},
			{Source: "x-input/b.md", Status: types.ConversionFailed, Error: "pandoc failed: exit status 1"},
		},
	}
	run := convert.RunInfo{
		InputPath: "x-input",
		OutputDir: "x-output",
		Pandoc:    "pandoc 3.1.9",
		StartedAt: time.Date(2026, 2, 11, 9, 30, 0, 0, time.UTC),
	}

	path := filepath.Join(t.TempDir(), "report.yaml")
	if err := convert.NewReport(run, result).Save(path); err != nil {
		t.Fatal(err)
	}
	loaded, err := convert.LoadReport(path)
	if err != nil {
		t.Fatal(err)
	}

	var out bytes.Buffer
	if err := printReport(&out, loaded); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got := out.String()
	for _, want := range []string{
		"Input:  x-input",
		"Pandoc: pandoc 3.1.9",
		"x-input/a.md",
		"converted",
		"pandoc failed: exit status 1",
		"1 converted, 0 skipped, 1 failed (total: 2)",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("report output missing %q:\n%s", want, got)
		}
	}
}

func TestPrintReport_OmitsEmptyPandocLine(t *testing.T) {
	var out bytes.Buffer
	r := convert.NewReport(convert.RunInfo{InputPath: "in", OutputDir: "out"}, convert.BatchResult{})
	if err := printReport(&out, r); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.Contains(out.String(), "Pandoc:") {
		t.Errorf("output should omit the pandoc line when the version is unknown:\n%s", out.String())
	}
}
