package utils

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// WriteArtifact atomically writes name inside dir, creating dir when needed,
// and returns the full path. Readers never observe a partially written file.
func WriteArtifact(dir, name string, data []byte) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create output dir: %w", err)
	}
	tmp, err := os.CreateTemp(dir, "."+name+".*.tmp")
	if err != nil {
		return "", fmt.Errorf("create temp file for %s: %w", name, err)
	}
	defer os.Remove(tmp.Name())
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return "", fmt.Errorf("write %s: %w", name, err)
	}
	if err := tmp.Close(); err != nil {
		return "", fmt.Errorf("write %s: %w", name, err)
	}
	if err := os.Chmod(tmp.Name(), 0o644); err != nil {
		return "", fmt.Errorf("chmod %s: %w", name, err)
	}
	path := filepath.Join(dir, name)
	if err := os.Rename(tmp.Name(), path); err != nil {
		return "", fmt.Errorf("atomic rename %s: %w", name, err)
	}
	return path, nil
}

// WriteCSVArtifact encodes a header plus records as CSV and writes it with WriteArtifact.
func WriteCSVArtifact(dir, name string, header []string, records [][]string) (string, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(header); err != nil {
		return "", fmt.Errorf("encode %s: %w", name, err)
	}
	if err := w.WriteAll(records); err != nil {
		return "", fmt.Errorf("encode %s: %w", name, err)
	}
	return WriteArtifact(dir, name, buf.Bytes())
}

// WriteJSONArtifact writes v as indented JSON with a trailing newline.
func WriteJSONArtifact(dir, name string, v any) (string, error) {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal %s: %w", name, err)
	}
	return WriteArtifact(dir, name, append(b, '\n'))
}
