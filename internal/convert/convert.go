// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package convert orchestrates batch Markdown-to-Word conversion: file
// discovery, the per-file pipeline, and the batch summary. The actual
// document conversion is delegated to a Converter (pandoc in production).
package convert

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/michellepace/markdown-to-word/internal/images"
	"github.com/michellepace/markdown-to-word/pkg/types"
)

// Converter turns one Markdown file into a Word document. The pandoc runner
// implements it; tests substitute fakes.
type Converter interface {
	// Convert reads markdownPath and writes a Word document to outputPath.
	// resourceDir is where relative image references resolve.
	Convert(markdownPath, resourceDir, outputPath string) error
}

// Options controls per-file behavior of a batch run.
type Options struct {
	// SkipExisting skips documents whose output already exists instead of
	// overwriting it.
	SkipExisting bool
}

// BatchResult holds the outcome of a batch conversion run.
type BatchResult struct {
	Converted int
	Skipped   int
	Failed    int

	// Files holds the per-file outcomes in processing order.
	Files []types.FileResult
}

// Total returns the total number of documents processed.
func (r BatchResult) Total() int {
	return r.Converted + r.Skipped + r.Failed
}

// HasFailures reports whether any document failed conversion.
func (r BatchResult) HasFailures() bool {
	return r.Failed > 0
}

// Discover resolves inputPath into the list of documents to convert. A
// single file must be Markdown; a directory yields its immediate .md files
// in name order. An empty directory is not an error.
func Discover(inputPath, outputDir string) ([]types.Document, error) {
	info, err := os.Stat(inputPath)
	if err != nil {
		return nil, fmt.Errorf("input path %s: %w", inputPath, err)
	}

	if !info.IsDir() {
		if !isMarkdown(inputPath) {
			return nil, fmt.Errorf("%s is not a Markdown file", inputPath)
		}
		return []types.Document{newDocument(inputPath, outputDir)}, nil
	}

	entries, err := os.ReadDir(inputPath)
	if err != nil {
		return nil, fmt.Errorf("reading input directory %s: %w", inputPath, err)
	}

	var docs []types.Document
	for _, entry := range entries {
		if entry.IsDir() || !isMarkdown(entry.Name()) {
			continue
		}
		docs = append(docs, newDocument(filepath.Join(inputPath, entry.Name()), outputDir))
	}
	return docs, nil
}

func isMarkdown(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".md")
}

func newDocument(markdownPath, outputDir string) types.Document {
	base := strings.TrimSuffix(filepath.Base(markdownPath), filepath.Ext(markdownPath))
	return types.Document{
		ID:           base,
		MarkdownPath: markdownPath,
		DocxPath:     filepath.Join(outputDir, base+".docx"),
	}
}

// ConvertDocument runs the pipeline for a single document: locked-output
// check, remote image rewrite, staging, and the converter invocation. The
// outcome is printed to w as one status line and returned for the report
// and history layers.
func ConvertDocument(c Converter, doc types.Document, opts Options, w io.Writer) types.FileResult {
	start := time.Now()
	result := types.FileResult{Source: doc.MarkdownPath, Status: types.ConversionFailed}

	if opts.SkipExisting {
		if _, err := os.Stat(doc.DocxPath); err == nil {
			fmt.Fprintf(w, "skipped: %s (already exists)\n", doc.ID)
			result.Status = types.ConversionSkipped
			result.Duration = time.Since(start)
			return result
		}
	}

	err := convertOne(c, doc)
	result.Duration = time.Since(start)
	if err != nil {
		result.Error = err.Error()
		fmt.Fprintf(w, "failed:  %s (%v)\n", doc.ID, err)
		return result
	}

	result.Status = types.ConversionDone
	result.Output = doc.DocxPath
	fmt.Fprintf(w, "converted: %s\n", doc.ID)
	return result
}

func convertOne(c Converter, doc types.Document) error {
	if err := outputWritable(doc.DocxPath); err != nil {
		return err
	}

	data, err := os.ReadFile(doc.MarkdownPath)
	if err != nil {
		return fmt.Errorf("reading %s: %w", doc.MarkdownPath, err)
	}

	sourceDir := filepath.Dir(doc.MarkdownPath)
	content, err := images.RewriteRemote(string(data), sourceDir)
	if err != nil {
		return err
	}

	staged, err := stage(content)
	if err != nil {
		return err
	}
	defer os.Remove(staged)

	return c.Convert(staged, sourceDir, doc.DocxPath)
}

// outputWritable checks that an existing output file can be opened for
// writing. Word holds an exclusive lock on documents it has open, which
// would otherwise surface as an opaque converter error.
func outputWritable(path string) error {
	f, err := os.OpenFile(path, os.O_WRONLY, 0)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("unable to write to %s, you probably have it open: %w", path, err)
	}
	return f.Close()
}

// stage writes content to a temporary .md file for the converter to read,
// leaving the source file untouched. The caller removes it after the run.
func stage(content string) (string, error) {
	f, err := os.CreateTemp("", "md2word-*.md")
	if err != nil {
		return "", fmt.Errorf("creating staging file: %w", err)
	}
	if _, err := f.WriteString(content); err != nil {
		f.Close()
		os.Remove(f.Name())
		return "", fmt.Errorf("writing staging file: %w", err)
	}
	if err := f.Close(); err != nil {
		os.Remove(f.Name())
		return "", fmt.Errorf("closing staging file: %w", err)
	}
	return f.Name(), nil
}

// ConvertBatch processes documents sequentially, printing per-file status
// to w and returning a summary. A failure never stops the batch.
func ConvertBatch(c Converter, docs []types.Document, opts Options, w io.Writer) BatchResult {
	var result BatchResult
	for _, doc := range docs {
		fileResult := ConvertDocument(c, doc, opts, w)
		result.Files = append(result.Files, fileResult)
		switch fileResult.Status {
		case types.ConversionDone:
			result.Converted++
		case types.ConversionSkipped:
			result.Skipped++
		case types.ConversionFailed:
			result.Failed++
		}
	}
	fmt.Fprintf(w, "\nBatch summary: %d converted, %d skipped, %d failed (total: %d)\n",
		result.Converted, result.Skipped, result.Failed, result.Total())
	return result
}
