// Package testutil provides common test helpers for the pyctx project.
package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// TempProject creates a temporary project directory.
func TempProject(t *testing.T) string {
	t.Helper()
	return t.TempDir()
}

// WriteVenv creates a virtual environment skeleton (bin/activate + bin/python)
// under projectDir/venvDir, enough for detection to succeed.
func WriteVenv(t *testing.T, projectDir, venvDir string) string {
	t.Helper()

	binDir := filepath.Join(projectDir, venvDir, "bin")
	if err := os.MkdirAll(binDir, 0755); err != nil {
		t.Fatalf("WriteVenv: mkdir failed: %v", err)
	}
	if err := os.WriteFile(filepath.Join(binDir, "activate"), []byte("# venv activation script\n"), 0644); err != nil {
		t.Fatalf("WriteVenv: write activate failed: %v", err)
	}
	if err := os.WriteFile(filepath.Join(binDir, "python"), []byte("#!/bin/sh\n"), 0755); err != nil {
		t.Fatalf("WriteVenv: write python failed: %v", err)
	}

	return filepath.Join(projectDir, venvDir)
}

// WriteSetupScript creates a setup script in the project directory.
func WriteSetupScript(t *testing.T, projectDir, name string) string {
	t.Helper()

	path := filepath.Join(projectDir, name)
	if err := os.WriteFile(path, []byte("#!/bin/sh\necho setup\n"), 0755); err != nil {
		t.Fatalf("WriteSetupScript: write failed: %v", err)
	}
	return path
}

// WriteManifest creates a dependency manifest in the project directory.
func WriteManifest(t *testing.T, projectDir, name string) string {
	t.Helper()

	path := filepath.Join(projectDir, name)
	if err := os.WriteFile(path, []byte("requests==2.32.0\npandas\n"), 0644); err != nil {
		t.Fatalf("WriteManifest: write failed: %v", err)
	}
	return path
}

// WriteInterpreter creates a fake executable interpreter at root/rel and
// returns its path. Parent directories are created as needed.
func WriteInterpreter(t *testing.T, root, rel string) string {
	t.Helper()

	path := filepath.Join(root, rel)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("WriteInterpreter: mkdir failed: %v", err)
	}
	if err := os.WriteFile(path, []byte("#!/bin/sh\n"), 0755); err != nil {
		t.Fatalf("WriteInterpreter: write failed: %v", err)
	}
	return path
}

// TempConfigFile creates a temporary config.toml with the given content
// and returns its path. The file is automatically cleaned up.
func TempConfigFile(t *testing.T, content string) string {
	t.Helper()

	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")

	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("TempConfigFile: write failed: %v", err)
	}

	return path
}

// TempCacheFile creates a temporary cache.json with the given content
// and returns its path.
func TempCacheFile(t *testing.T, content string) string {
	t.Helper()

	dir := t.TempDir()
	path := filepath.Join(dir, "cache.json")

	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("TempCacheFile: write failed: %v", err)
	}

	return path
}
