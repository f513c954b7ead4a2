package codelabel

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for source lookup.
var (
	// ErrUnknownLanguage indicates a language outside Go, Python, JavaScript.
	ErrUnknownLanguage = errors.New("codelabel: unknown language")

	// ErrUnknownSource indicates no embedded source exists for the algorithm id.
	ErrUnknownSource = errors.New("codelabel: unknown source")
)

// Language identifies the language of a reference source.
type Language string

const (
	Go         Language = "go"
	Python     Language = "python"
	JavaScript Language = "javascript"
)

// Languages lists every language a reference source is shipped in.
var Languages = []Language{Go, Python, JavaScript}

// ParseLanguage maps a user-supplied name (case-insensitive; "js" and "py"
// accepted) to a Language.
func ParseLanguage(s string) (Language, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "go", "golang":
		return Go, nil
	case "python", "py":
		return Python, nil
	case "javascript", "js":
		return JavaScript, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownLanguage, s)
}

// Parsed is an annotated source with its markers removed.
type Parsed struct {
	// Clean is the source with every marker comment stripped.
	Clean string `json:"code"`
	// Lines maps each label to its 0-based line in Clean. A label that is
	// repeated maps to its last occurrence.
	Lines map[string]int `json:"labels"`
}

// Line returns the line for label and whether it is present.
func (p Parsed) Line(label string) (int, bool) {
	n, ok := p.Lines[label]
	return n, ok
}
