package table

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

type csvLoader struct{}

func (csvLoader) CanLoad(filename string) bool {
	name := strings.ToLower(filename)
	return strings.HasSuffix(name, ".csv") || strings.HasSuffix(name, ".tsv")
}

func (csvLoader) Load(path string, opt LoadOptions) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open csv: %w", err)
	}
	defer f.Close()
	delim := opt.Delimiter
	if delim == 0 {
		delim = sniffDelimiter(path)
	}
	return ReadCSV(f, filepath.Base(path), delim)
}

// ReadCSV reads a delimited stream whose first record is the header.
// An empty stream yields a table with no columns and no rows.
func ReadCSV(src io.Reader, name string, delim rune) (*Table, error) {
	r := csv.NewReader(src)
	r.ReuseRecord = true
	r.FieldsPerRecord = -1
	if delim != 0 {
		r.Comma = delim
	}

	header, err := r.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return New(name, nil, nil), nil
		}
		return nil, fmt.Errorf("read header: %w", err)
	}
	t := New(name, header, nil)
	for {
		rec, err := r.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, fmt.Errorf("read row %d: %w", t.Len()+1, err)
		}
		t.Append(rec)
	}
	return t, nil
}

func sniffDelimiter(path string) rune {
	if strings.HasSuffix(strings.ToLower(path), ".tsv") {
		return '\t'
	}
	return ','
}
