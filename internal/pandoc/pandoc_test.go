// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pandoc

import (
	"errors"
	"strings"
	"testing"

	"github.com/michellepace/markdown-to-word/pkg/types"
)

// mockExecutor records calls and returns configured responses.
type mockExecutor struct {
	availableBins map[string]bool // binary -> whether LookPath succeeds
	runnableCmds  map[string]bool // "bin arg1 arg2" -> whether RunSilent succeeds
	runOutputFunc func(name string, args []string) (string, error)
	calls         []string
}

func key(name string, args []string) string {
	return name + " " + strings.Join(args, " ")
}

func (m *mockExecutor) LookPath(file string) (string, error) {
	if m.availableBins[file] {
		return "/usr/bin/" + file, nil
	}
	return "", errors.New("not found: " + file)
}

func (m *mockExecutor) RunSilent(name string, args ...string) error {
	k := key(name, args)
	m.calls = append(m.calls, k)
	if m.runnableCmds[k] {
		return nil
	}
	return errors.New("command failed: " + k)
}

func (m *mockExecutor) RunOutput(name string, args ...string) (string, error) {
	m.calls = append(m.calls, key(name, args))
	if m.runOutputFunc != nil {
		return m.runOutputFunc(name, args)
	}
	return "", nil
}

func TestDetect(t *testing.T) {
	tests := []struct {
		name    string
		cfg     types.PandocConfig
		exec    *mockExecutor
		wantBin string
		wantErr bool
	}{
		{
			name: "pandoc on PATH",
			exec: &mockExecutor{
				availableBins: map[string]bool{"pandoc": true},
				runnableCmds:  map[string]bool{"pandoc --version": true},
			},
			wantBin: "pandoc",
		},
		{
			name: "custom binary path",
			cfg:  types.PandocConfig{Binary: "/opt/pandoc/bin/pandoc"},
			exec: &mockExecutor{
				availableBins: map[string]bool{"/opt/pandoc/bin/pandoc": true},
				runnableCmds:  map[string]bool{"/opt/pandoc/bin/pandoc --version": true},
			},
			wantBin: "/opt/pandoc/bin/pandoc",
		},
		{
			name: "binary missing from PATH",
			exec: &mockExecutor{
				availableBins: map[string]bool{},
				runnableCmds:  map[string]bool{},
			},
			wantErr: true,
		},
		{
			name: "binary on PATH but version query fails",
			exec: &mockExecutor{
				availableBins: map[string]bool{"pandoc": true},
				runnableCmds:  map[string]bool{},
			},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := detect(tt.cfg, tt.exec)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				if !strings.Contains(err.Error(), "pandoc not available") {
					t.Errorf("error should mention pandoc not available, got: %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if r.Name() != tt.wantBin {
				t.Errorf("got binary %q, want %q", r.Name(), tt.wantBin)
			}
		})
	}
}

func TestVersion(t *testing.T) {
	exec := &mockExecutor{
		runOutputFunc: func(name string, args []string) (string, error) {
			return "pandoc 3.1.9\nFeatures: +server +lua\n", nil
		},
	}
	r := newRunner(types.PandocConfig{}, exec)

	got, err := r.Version()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "pandoc 3.1.9" {
		t.Errorf("version = %q, want %q", got, "pandoc 3.1.9")
	}
}

func TestVersion_Error(t *testing.T) {
	exec := &mockExecutor{
		runOutputFunc: func(name string, args []string) (string, error) {
			return "", errors.New("exec format error")
		},
	}
	r := newRunner(types.PandocConfig{}, exec)

	if _, err := r.Version(); err == nil {
		t.Fatal("expected error, got nil")
	}
}

func TestConvert_ArgumentOrder(t *testing.T) {
	exec := &mockExecutor{}
	r := newRunner(types.PandocConfig{Wrap: "preserve"}, exec)

	if err := r.Convert("notes.md", "/docs", "out/notes.docx"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(exec.calls) != 1 {
		t.Fatalf("expected 1 invocation, got %d", len(exec.calls))
	}

	call := exec.calls[0]
	for _, want := range []string{
		"pandoc notes.md -o out/notes.docx",
		"--extract-media=",
		"--resource-path /docs",
		"--wrap=preserve",
		"-t docx",
	} {
		if !strings.Contains(call, want) {
			t.Errorf("invocation %q missing %q", call, want)
		}
	}
	if strings.Contains(call, "--reference-doc") {
		t.Errorf("invocation %q should not carry --reference-doc", call)
	}
}

func TestConvert_ReferenceDoc(t *testing.T) {
	exec := &mockExecutor{}
	r := newRunner(types.PandocConfig{ReferenceDoc: "styles.docx"}, exec)

	if err := r.Convert("notes.md", "/docs", "out/notes.docx"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(exec.calls[0], "--reference-doc styles.docx") {
		t.Errorf("invocation %q missing reference doc", exec.calls[0])
	}
}

func TestConvert_FailureIncludesPandocOutput(t *testing.T) {
	exec := &mockExecutor{
		runOutputFunc: func(name string, args []string) (string, error) {
			return "pandoc: broken.md: openBinaryFile: does not exist\n", errors.New("exit status 1")
		},
	}
	r := newRunner(types.PandocConfig{}, exec)

	err := r.Convert("broken.md", "/docs", "out/broken.docx")
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if !strings.Contains(err.Error(), "pandoc failed") {
		t.Errorf("error should name the binary, got: %v", err)
	}
	if !strings.Contains(err.Error(), "openBinaryFile") {
		t.Errorf("error should carry pandoc's output, got: %v", err)
	}
}

func TestConvert_EmptyWrapDefaultsToPreserve(t *testing.T) {
	exec := &mockExecutor{}
	r := newRunner(types.PandocConfig{}, exec)

	if err := r.Convert("notes.md", "/docs", "out/notes.docx"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(exec.calls[0], "--wrap=preserve") {
		t.Errorf("invocation %q should default to --wrap=preserve", exec.calls[0])
	}
}
