package table

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// LoadOptions controls how a source file becomes a Table.
type LoadOptions struct {
	// Delimiter for CSV. If 0, chosen from the file extension (tab for .tsv, comma otherwise).
	Delimiter rune
	// SheetName selects an XLSX sheet by name (case-insensitive).
	SheetName string
	// SheetIndex is a 1-based XLSX sheet index, used when SheetName is empty.
	SheetIndex int
}

// Loader reads one file format into a Table.
type Loader interface {
	CanLoad(filename string) bool
	Load(path string, opt LoadOptions) (*Table, error)
}

var registry []Loader

// Register adds a loader implementation to the registry.
func Register(l Loader) {
	registry = append(registry, l)
}

// ErrUnsupported indicates a format no loader accepts.
var ErrUnsupported = errors.New("unsupported table format")

// LoadFile selects a loader based on filename and reads the whole file into memory.
// Unknown extensions are read as comma-separated text.
func LoadFile(path string, opt LoadOptions) (*Table, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("stat input: %w", err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%s is a directory: %w", path, ErrUnsupported)
	}
	for _, l := range registry {
		if l.CanLoad(path) {
			return l.Load(path, opt)
		}
	}
	return csvLoader{}.Load(path, opt)
}

// Stem returns the file name without directory and extension, used to name output folders.
func Stem(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

func init() {
	Register(csvLoader{})
	Register(xlsxLoader{})
}
