package lyrics

import "strings"

// Line is one rendered row of a lyrics document. Blank lines are spacers
// between stanzas and carry no text.
type Line struct {
	Text    string
	IsBlank bool
}

// Document holds the raw lyric text and its rendered line sequence.
type Document struct {
	RawText string
	Lines   []Line
}

// Parse splits raw text into trimmed lines. Runs of blank lines between
// content collapse into a single spacer; blank lines before the first
// content line produce nothing.
func Parse(raw string) Document {
	rows := strings.Split(raw, "\n")
	lines := make([]Line, 0, len(rows))
	for i, row := range rows {
		text := strings.TrimSpace(row)
		if text != "" {
			lines = append(lines, Line{Text: text})
			continue
		}
		if i > 0 && strings.TrimSpace(rows[i-1]) != "" {
			lines = append(lines, Line{IsBlank: true})
		}
	}
	return Document{RawText: raw, Lines: lines}
}

// Stanzas groups content lines between spacers.
func (d Document) Stanzas() [][]string {
	var out [][]string
	var current []string
	for _, line := range d.Lines {
		if line.IsBlank {
			if len(current) > 0 {
				out = append(out, current)
				current = nil
			}
			continue
		}
		current = append(current, line.Text)
	}
	if len(current) > 0 {
		out = append(out, current)
	}
	return out
}
