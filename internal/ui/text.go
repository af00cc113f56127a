package ui

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// truncate shortens s to at most width display cells, marking the cut.
// Width is measured in terminal cells so wide Urdu and CJK glyphs fit.
func truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if runewidth.StringWidth(s) <= width {
		return s
	}
	if width == 1 {
		return "…"
	}
	return runewidth.Truncate(s, width, "…")
}

// truncateMiddle keeps both ends of s, useful for file paths.
func truncateMiddle(s string, width int) string {
	if runewidth.StringWidth(s) <= width || width < 5 {
		return truncate(s, width)
	}
	keep := width - 1
	head := keep / 2
	tail := keep - head
	left := runewidth.Truncate(s, head, "")

	runes := []rune(s)
	i, used := len(runes), 0
	for i > 0 {
		w := runewidth.RuneWidth(runes[i-1])
		if used+w > tail {
			break
		}
		used += w
		i--
	}
	right := string(runes[i:])
	return left + "…" + right
}

// alignment of a lyric line inside the panel.
type alignment int

const (
	alignLeft alignment = iota
	alignCenter
	alignRight
)

// place pads s to width cells with the given alignment. Lines wider than
// width are truncated.
func place(s string, width int, align alignment) string {
	s = truncate(s, width)
	gap := width - runewidth.StringWidth(s)
	if gap <= 0 {
		return s
	}
	switch align {
	case alignRight:
		return strings.Repeat(" ", gap) + s
	case alignCenter:
		left := gap / 2
		return strings.Repeat(" ", left) + s + strings.Repeat(" ", gap-left)
	default:
		return s + strings.Repeat(" ", gap)
	}
}

// wrap breaks s into rows no wider than width cells, splitting at spaces
// where possible.
func wrap(s string, width int) []string {
	if width <= 0 {
		return nil
	}
	if runewidth.StringWidth(s) <= width {
		return []string{s}
	}
	var rows []string
	var row strings.Builder
	rowWidth := 0
	flush := func() {
		rows = append(rows, row.String())
		row.Reset()
		rowWidth = 0
	}
	for _, word := range strings.Fields(s) {
		ww := runewidth.StringWidth(word)
		if rowWidth > 0 && rowWidth+1+ww > width {
			flush()
		}
		for ww > width {
			head := runewidth.Truncate(word, width, "")
			if head == "" {
				break
			}
			if rowWidth > 0 {
				flush()
			}
			rows = append(rows, head)
			word = strings.TrimPrefix(word, head)
			ww = runewidth.StringWidth(word)
		}
		if word == "" {
			continue
		}
		if rowWidth > 0 {
			row.WriteByte(' ')
			rowWidth++
		}
		row.WriteString(word)
		rowWidth += ww
	}
	if rowWidth > 0 {
		flush()
	}
	return rows
}
