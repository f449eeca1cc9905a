// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package pandoc wraps the pandoc binary behind a small Runner interface.
// All document knowledge (Markdown parsing, DOCX generation, image
// resolution) lives in pandoc; this package only builds the command line
// and reports the exit status.
package pandoc

import (
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/michellepace/markdown-to-word/pkg/types"
)

const defaultBinary = "pandoc"

// Runner provides pandoc operations: checking availability, reading the
// version, and converting a single Markdown file to a Word document.
type Runner interface {
	// Name returns the configured binary name or path.
	Name() string

	// Available reports whether the binary exists on PATH and responds to
	// a version query.
	Available() bool

	// Version returns the first line of `pandoc --version` output.
	Version() (string, error)

	// Convert runs one blocking pandoc invocation turning markdownPath into
	// a Word document at outputPath. resourceDir tells pandoc where to
	// resolve relative image references.
	Convert(markdownPath, resourceDir, outputPath string) error
}

// executor abstracts command execution for testing.
type executor interface {
	LookPath(file string) (string, error)
	RunSilent(name string, args ...string) error
	RunOutput(name string, args ...string) (string, error)
}

// osExecutor is the production executor backed by os/exec.
type osExecutor struct{}

func (o *osExecutor) LookPath(file string) (string, error) {
	return exec.LookPath(file)
}

func (o *osExecutor) RunSilent(name string, args ...string) error {
	return exec.Command(name, args...).Run()
}

func (o *osExecutor) RunOutput(name string, args ...string) (string, error) {
	out, err := exec.Command(name, args...).CombinedOutput()
	return string(out), err
}

var defaultExec = &osExecutor{}

// runner implements Runner for a pandoc binary.
type runner struct {
	cfg  types.PandocConfig
	exec executor
}

// New returns a Runner for the binary named in cfg. An empty binary name
// falls back to "pandoc"; an empty wrap mode falls back to "preserve".
func New(cfg types.PandocConfig) Runner {
	return newRunner(cfg, defaultExec)
}

func newRunner(cfg types.PandocConfig, exec executor) *runner {
	if cfg.Binary == "" {
		cfg.Binary = defaultBinary
	}
	if cfg.Wrap == "" {
		cfg.Wrap = "preserve"
	}
	return &runner{cfg: cfg, exec: exec}
}

func (r *runner) Name() string { return r.cfg.Binary }

func (r *runner) Available() bool {
	if _, err := r.exec.LookPath(r.cfg.Binary); err != nil {
		return false
	}
	return r.exec.RunSilent(r.cfg.Binary, "--version") == nil
}

func (r *runner) Version() (string, error) {
	out, err := r.exec.RunOutput(r.cfg.Binary, "--version")
	if err != nil {
		return "", fmt.Errorf("running %s --version: %w", r.cfg.Binary, err)
	}
	line, _, _ := strings.Cut(out, "\n")
	return strings.TrimSpace(line), nil
}

func (r *runner) Convert(markdownPath, resourceDir, outputPath string) error {
	// Scratch directory for media pandoc extracts (or downloads, when the
	// source still references remote images) during the run.
	mediaDir, err := os.MkdirTemp("", "md2word-media-")
	if err != nil {
		return fmt.Errorf("creating media directory: %w", err)
	}
	defer os.RemoveAll(mediaDir)

	args := []string{
		markdownPath,
		"-o", outputPath,
		"--extract-media=" + mediaDir,
		"--resource-path", resourceDir,
		"--wrap=" + r.cfg.Wrap,
		"-t", "docx",
	}
	if r.cfg.ReferenceDoc != "" {
		args = append(args, "--reference-doc", r.cfg.ReferenceDoc)
	}

	out, err := r.exec.RunOutput(r.cfg.Binary, args...)
	if err != nil {
		if msg := strings.TrimSpace(out); msg != "" {
			return fmt.Errorf("%s failed: %w: %s", r.cfg.Binary, err, msg)
		}
		return fmt.Errorf("%s failed: %w", r.cfg.Binary, err)
	}
	return nil
}

// Detect returns a Runner for cfg after verifying the binary is usable.
func Detect(cfg types.PandocConfig) (Runner, error) {
	return detect(cfg, defaultExec)
}

func detect(cfg types.PandocConfig, exec executor) (Runner, error) {
	r := newRunner(cfg, exec)
	if !r.Available() {
		return nil, fmt.Errorf(
			"pandoc not available: %q not found on PATH or not operational (install it from https://pandoc.org)",
			r.cfg.Binary,
		)
	}
	return r, nil
}
