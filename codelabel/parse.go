package codelabel

import (
	"regexp"
	"strings"
)

// Marker forms, tried in this order on every line.
var markers = []*regexp.Regexp{
	regexp.MustCompile(`//\s*@label:(\w+)`),
	regexp.MustCompile(`#\s*@label:(\w+)`),
	regexp.MustCompile(`/\*\s*@label:(\w+)\s*\*/`),
}

// Parse strips label markers from raw and indexes the annotated lines.
// Only the first marker found on a line is honored.
func Parse(raw string) Parsed {
	lines := strings.Split(raw, "\n")
	out := Parsed{Lines: make(map[string]int)}

	for i, line := range lines {
		for _, re := range markers {
			loc := re.FindStringSubmatchIndex(line)
			if loc == nil {
				continue
			}
			out.Lines[line[loc[2]:loc[3]]] = i
			lines[i] = strings.TrimRight(line[:loc[0]]+line[loc[1]:], " \t")
			break
		}
	}

	out.Clean = strings.Join(lines, "\n")
	return out
}
