// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// ConversionStatus indicates the outcome of a Markdown-to-Word conversion.
type ConversionStatus string

const (
	ConversionDone    ConversionStatus = "converted"
	ConversionSkipped ConversionStatus = "skipped"
	ConversionFailed  ConversionStatus = "failed"
)

// Document describes one Markdown file queued for conversion.
type Document struct {
	// ID is the file basename without its extension (e.g. "meeting-notes").
	ID string `json:"id" yaml:"id"`

	// MarkdownPath is the path to the source Markdown file.
	MarkdownPath string `json:"markdown_path" yaml:"markdown_path"`

	// DocxPath is the destination path for the generated Word document.
	DocxPath string `json:"docx_path" yaml:"docx_path"`
}

// FileResult records the outcome of a single conversion attempt. It is the
// unit shared by the console reporter, the YAML run report, and the SQLite
// history store.
type FileResult struct {
	// Source is the path to the Markdown file.
	Source string `json:"source" yaml:"source"`

	// Output is the path to the generated .docx, empty when nothing was written.
	Output string `json:"output,omitempty" yaml:"output,omitempty"`

	// Status is the conversion outcome.
	Status ConversionStatus `json:"status" yaml:"status"`

	// Error holds the failure reason when Status is ConversionFailed.
	Error string `json:"error,omitempty" yaml:"error,omitempty"`

	// Duration is the wall-clock time of the conversion attempt.
	Duration time.Duration `json:"duration" yaml:"duration"`
}
