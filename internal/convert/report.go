// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

import (
	"fmt"
	"os"
	"time"

	"go.yaml.in/yaml/v3"

	"github.com/michellepace/markdown-to-word/pkg/types"
)

// ReportFile is the on-disk YAML record of a batch conversion run. Written
// when a report path is configured, it lets a run be audited later without
// repeating it.
type ReportFile struct {
	Run     RunInfo            `yaml:"run"`
	Files   []types.FileResult `yaml:"files"`
	Summary ReportSummary      `yaml:"summary"`
}

// RunInfo stores the parameters that produced the results.
type RunInfo struct {
	InputPath string    `yaml:"input_path"`
	OutputDir string    `yaml:"output_dir"`
	Pandoc    string    `yaml:"pandoc,omitempty"`
	StartedAt time.Time `yaml:"started_at"`
}

// ReportSummary mirrors the console summary line.
type ReportSummary struct {
	Converted int `yaml:"converted"`
	Skipped   int `yaml:"skipped"`
	Failed    int `yaml:"failed"`
	Total     int `yaml:"total"`
}

// NewReport assembles a report from a finished batch.
func NewReport(run RunInfo, result BatchResult) *ReportFile {
	return &ReportFile{
		Run:   run,
		Files: result.Files,
		Summary: ReportSummary{
			Converted: result.Converted,
			Skipped:   result.Skipped,
			Failed:    result.Failed,
			Total:     result.Total(),
		},
	}
}

// Save writes the report as YAML to path.
func (r *ReportFile) Save(path string) error {
	data, err := yaml.Marshal(r)
	if err != nil {
		return fmt.Errorf("marshaling report: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing report %s: %w", path, err)
	}
	return nil
}

// LoadReport reads a report previously written by Save.
func LoadReport(path string) (*ReportFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading report %s: %w", path, err)
	}
	var r ReportFile
	if err := yaml.Unmarshal(data, &r); err != nil {
		return nil, fmt.Errorf("parsing report %s: %w", path, err)
	}
	return &r, nil
}
