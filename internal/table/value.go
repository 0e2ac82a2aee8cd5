package table

import (
	"math"
	"strconv"
	"strings"
)

// Kind tags how a raw cell was interpreted.
type Kind int

const (
	Missing Kind = iota
	Number
	Text
)

func (k Kind) String() string {
	switch k {
	case Missing:
		return "missing"
	case Number:
		return "number"
	case Text:
		return "text"
	default:
		return "unknown"
	}
}

// Value is a parsed cell. Raw keeps the original text.
type Value struct {
	Kind Kind
	Num  float64
	Raw  string
}

// Parse interprets a raw cell. Blank (after trimming) is Missing, a real number
// is Number, anything else is Text. NaN spellings are Text.
func Parse(raw string) Value {
	s := strings.TrimSpace(raw)
	if s == "" {
		return Value{Kind: Missing, Raw: raw}
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) {
		return Value{Kind: Text, Raw: raw}
	}
	return Value{Kind: Number, Num: f, Raw: raw}
}

// IsMissing reports whether the value is blank.
func (v Value) IsMissing() bool { return v.Kind == Missing }
