package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDetectDataDirFrom(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	if err := os.Mkdir(filepath.Join(root, "repo"), 0o755); err != nil {
		t.Fatalf("failed to create repo directory: %v", err)
	}
	nested := filepath.Join(root, "repo", "sub")
	err := os.Mkdir(nested, 0o755)
	if err != nil {
		t.Fatalf("failed to create nested directory: %v", err)
	}
	if err := os.Mkdir(filepath.Join(root, ".tasks"), 0o755); err != nil {
		t.Fatalf("failed to create tasks directory: %v", err)
	}

	dataDir, err := DetectDataDirFrom(nested)
	if err != nil {
		t.Fatalf("DetectDataDirFrom() error = %v", err)
	}
	if dataDir != filepath.Join(root, ".tasks") {
		t.Fatalf("detected %q, expected grandparent .tasks", dataDir)
	}
}

func TestDetectDataDirFromPrefersNearest(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	nested := filepath.Join(root, "repo")
	for _, dir := range []string{filepath.Join(root, TasksDir), filepath.Join(nested, TasksDir)} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			t.Fatalf("failed to create %s: %v", dir, err)
		}
	}

	dataDir, err := DetectDataDirFrom(nested)
	if err != nil {
		t.Fatalf("DetectDataDirFrom() error = %v", err)
	}
	if dataDir != filepath.Join(nested, TasksDir) {
		t.Fatalf("detected %q, expected nearest .tasks", dataDir)
	}
}

func TestDetectDataDirFromMissing(t *testing.T) {
	t.Parallel()

	base := filepath.Join(t.TempDir(), "a", "b", "c")
	if err := os.MkdirAll(base, 0o755); err != nil {
		t.Fatalf("failed to create base: %v", err)
	}
	_, err := DetectDataDirFrom(base)
	missing, ok := err.(*MissingDataDirError)
	if !ok {
		t.Fatalf("DetectDataDirFrom() error = %v, expected MissingDataDirError", err)
	}
	if missing.BaseDir != base {
		t.Fatalf("BaseDir = %q, expected %q", missing.BaseDir, base)
	}
}
