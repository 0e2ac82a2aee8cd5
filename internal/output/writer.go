package output

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/KaramelBytes/tabstat/internal/analysis"
	"github.com/KaramelBytes/tabstat/internal/table"
	"github.com/KaramelBytes/tabstat/internal/utils"
)

const (
	summaryFileName  = "summary.md"
	manifestFileName = "run.json"
)

// Manifest records what a run produced.
type Manifest struct {
	ID                 string    `json:"id"`
	Source             string    `json:"source"`
	Engine             string    `json:"engine"`
	Rows               int       `json:"rows"`
	NumericColumns     []string  `json:"numeric_columns"`
	CategoricalColumns []string  `json:"categorical_columns"`
	Level1             []string  `json:"level1"`
	Level2             []string  `json:"level2"`
	Dir                string    `json:"dir"`
	Files              []string  `json:"files"`
	StartedAt          time.Time `json:"started_at"`
	DurationMs         int64     `json:"duration_ms"`
}

// Dir returns <root>/<source stem>/<engine>.
func Dir(root, source, engine string) string {
	return filepath.Join(root, table.Stem(source), engine)
}

// Write serializes every result table of rep as CSV into dir, followed by the
// Markdown summary and the run manifest.
func Write(dir, source string, rep *analysis.Report, started time.Time) (*Manifest, error) {
	m := &Manifest{
		ID:                 uuid.NewString(),
		Source:             source,
		Engine:             rep.Engine,
		Rows:               rep.Rows,
		NumericColumns:     nonNil(rep.Numeric),
		CategoricalColumns: nonNil(rep.Categorical),
		Dir:                dir,
		StartedAt:          started,
	}
	if rep.Level1 != nil {
		m.Level1 = rep.Level1.Columns
	}
	if rep.Level2 != nil {
		m.Level2 = rep.Level2.Columns
	}
	for _, rt := range rep.Tables() {
		p, err := WriteTable(dir, rt)
		if err != nil {
			return nil, err
		}
		m.Files = append(m.Files, filepath.Base(p))
	}
	if _, err := utils.WriteArtifact(dir, summaryFileName, []byte(rep.Markdown())); err != nil {
		return nil, fmt.Errorf("write summary: %w", err)
	}
	m.Files = append(m.Files, summaryFileName)

	m.DurationMs = time.Since(started).Milliseconds()
	if _, err := utils.WriteJSONArtifact(dir, manifestFileName, m); err != nil {
		return nil, fmt.Errorf("write manifest: %w", err)
	}
	return m, nil
}

// WriteTable writes rt as <dir>/<name>.csv and returns the path. Absent
// fields become blank cells.
func WriteTable(dir string, rt *analysis.ResultTable) (string, error) {
	p, err := utils.WriteCSVArtifact(dir, rt.Name+".csv", rt.Header, rt.Records())
	if err != nil {
		return "", fmt.Errorf("write %s: %w", rt.Name, err)
	}
	return p, nil
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
