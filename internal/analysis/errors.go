package analysis

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNoGroupingColumns is returned when a grouping level lists no columns.
var ErrNoGroupingColumns = errors.New("grouping level has no columns")

// ErrUnknownEngine is returned for an engine name that is not registered.
var ErrUnknownEngine = errors.New("unknown summarizer engine")

// ConfigError reports a grouping column that does not exist in the table.
type ConfigError struct {
	Level     string
	Column    string
	Available []string
}

func (e *ConfigError) Error() string {
	if len(e.Available) == 0 {
		return fmt.Sprintf("%s grouping column %q not found (table has no columns)", e.Level, e.Column)
	}
	return fmt.Sprintf("%s grouping column %q not found.\nAvailable columns: %s",
		e.Level, e.Column, strings.Join(e.Available, ", "))
}
