package ui

import (
	"strings"
	"testing"

	"github.com/mattn/go-runewidth"
	"github.com/stretchr/testify/require"

	"github.com/bayaz-archive/bayaz/internal/catalog"
	"github.com/bayaz-archive/bayaz/internal/lyrics"
)

func TestTruncate(t *testing.T) {
	tests := []struct {
		in    string
		width int
		want  string
	}{
		{"Kalam", 10, "Kalam"},
		{"Kalam", 5, "Kalam"},
		{"Kalam-e-Iqbal", 6, "Kalam…"},
		{"Kalam", 1, "…"},
		{"Kalam", 0, ""},
	}
	for _, tt := range tests {
		require.Equal(t, tt.want, truncate(tt.in, tt.width), "truncate(%q, %d)", tt.in, tt.width)
	}
}

func TestTruncateMiddle(t *testing.T) {
	got := truncateMiddle("/home/user/.local/state/bayaz/bayaz.log", 15)
	require.Equal(t, 15, runewidth.StringWidth(got))
	require.True(t, strings.HasPrefix(got, "/home/u"))
	require.True(t, strings.HasSuffix(got, "aaz.log") || strings.HasSuffix(got, "yaz.log"))
	require.Contains(t, got, "…")
}

func TestPlace(t *testing.T) {
	require.Equal(t, "ab    ", place("ab", 6, alignLeft))
	require.Equal(t, "    ab", place("ab", 6, alignRight))
	require.Equal(t, "  ab  ", place("ab", 6, alignCenter))
	require.Equal(t, "abcd…", place("abcdefgh", 5, alignRight))
}

func TestWrap(t *testing.T) {
	require.Equal(t, []string{"short"}, wrap("short", 10))
	require.Equal(t, []string{"dil dil", "pakistan"}, wrap("dil dil pakistan", 8))
	require.Equal(t, []string{"abcd", "efgh"}, wrap("abcdefgh", 4))
	require.Nil(t, wrap("x", 0))
}

func TestLayoutLyrics(t *testing.T) {
	lines := []lyrics.Line{{Text: "ab"}, {IsBlank: true}, {Text: "cd"}}

	t.Run("urdu right aligned with wide leading", func(t *testing.T) {
		got := layoutLyrics(lines, lyrics.StyleFor(catalog.LangUrdu), 6)
		require.Equal(t, []string{"    ab", "      ", "      ", "    cd", "      "}, got)
	})

	t.Run("english left aligned and tight", func(t *testing.T) {
		got := layoutLyrics(lines, lyrics.StyleFor(catalog.LangEnglish), 6)
		require.Equal(t, []string{"ab    ", "      ", "cd    "}, got)
	})

	t.Run("other centered", func(t *testing.T) {
		got := layoutLyrics(lines, lyrics.StyleFor(catalog.LangOther), 6)
		require.Equal(t, []string{"  ab  ", "      ", "  cd  "}, got)
	})

	t.Run("long lines wrap", func(t *testing.T) {
		got := layoutLyrics([]lyrics.Line{{Text: "one two three"}}, lyrics.StyleFor(catalog.LangEnglish), 7)
		require.Equal(t, []string{"one two", "three  "}, got)
	})

	require.Nil(t, layoutLyrics(lines, lyrics.Style{}, 0))
}

func TestListOffset(t *testing.T) {
	require.Equal(t, 0, listOffset(0, 5, 20))
	require.Equal(t, 0, listOffset(4, 5, 20))
	require.Equal(t, 1, listOffset(5, 5, 20))
	require.Equal(t, 15, listOffset(19, 5, 20))
	require.Equal(t, 0, listOffset(2, 5, 3))
}
