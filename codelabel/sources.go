package codelabel

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"slices"
	"strings"
)

//go:embed sources
var sourceFS embed.FS

// Raw returns the annotated reference source of algorithm id in lang.
func Raw(id string, lang Language) (string, error) {
	if !slices.Contains(Languages, lang) {
		return "", fmt.Errorf("%w: %q", ErrUnknownLanguage, lang)
	}
	b, err := sourceFS.ReadFile(path.Join("sources", id, string(lang)+".txt"))
	if err != nil {
		return "", fmt.Errorf("%w: %s/%s", ErrUnknownSource, id, lang)
	}
	return string(b), nil
}

// Source returns the parsed reference source of algorithm id in lang.
func Source(id string, lang Language) (Parsed, error) {
	raw, err := Raw(id, lang)
	if err != nil {
		return Parsed{}, err
	}
	return Parse(raw), nil
}

// IDs lists the algorithm ids that have embedded sources, sorted.
func IDs() []string {
	entries, err := fs.ReadDir(sourceFS, "sources")
	if err != nil {
		return nil
	}
	var ids []string
	for _, e := range entries {
		if e.IsDir() && !strings.HasPrefix(e.Name(), ".") {
			ids = append(ids, e.Name())
		}
	}
	slices.Sort(ids)
	return ids
}
