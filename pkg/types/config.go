// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// PandocConfig holds settings for the pandoc invocation.
type PandocConfig struct {
	// Binary is the pandoc executable name or path (default "pandoc").
	Binary string `json:"binary" yaml:"binary"`

	// Wrap is the pandoc --wrap mode. "preserve" keeps the line breaks of
	// the source Markdown in the generated document.
	Wrap string `json:"wrap" yaml:"wrap"`

	// ReferenceDoc is an optional .docx whose styles pandoc applies to the
	// output (--reference-doc).
	ReferenceDoc string `json:"reference_doc,omitempty" yaml:"reference_doc,omitempty"`
}

// ConversionConfig holds settings for a batch conversion run.
type ConversionConfig struct {
	Pandoc PandocConfig `json:"pandoc" yaml:"pandoc"`

	// InputPath is a Markdown file or a directory of Markdown files.
	InputPath string `json:"input_path" yaml:"input_path"`

	// OutputDir is the directory for generated .docx files. Created if absent.
	OutputDir string `json:"output_dir" yaml:"output_dir"`

	// SkipExisting skips files whose .docx output already exists instead of
	// overwriting it.
	SkipExisting bool `json:"skip_existing" yaml:"skip_existing"`

	// HistoryDB is the path to the SQLite conversion log. Empty disables
	// history recording.
	HistoryDB string `json:"history_db,omitempty" yaml:"history_db,omitempty"`

	// ReportPath is an optional path for a YAML run report.
	ReportPath string `json:"report_path,omitempty" yaml:"report_path,omitempty"`
}
