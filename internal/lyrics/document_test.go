package lyrics

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParse(t *testing.T) {
	cases := []struct {
		name string
		raw  string
		want []Line
	}{
		{
			name: "collapses blank run",
			raw:  "A\n\n\nB",
			want: []Line{{Text: "A"}, {IsBlank: true}, {Text: "B"}},
		},
		{
			name: "leading blanks dropped",
			raw:  "\n\nA",
			want: []Line{{Text: "A"}},
		},
		{
			name: "single blank between stanzas",
			raw:  "Line1\n\nLine2",
			want: []Line{{Text: "Line1"}, {IsBlank: true}, {Text: "Line2"}},
		},
		{
			name: "trims whitespace and carriage returns",
			raw:  "  one \r\n\t\r\n two\r\n",
			want: []Line{{Text: "one"}, {IsBlank: true}, {Text: "two"}, {IsBlank: true}},
		},
		{
			name: "whitespace-only lines count as blank",
			raw:  "a\n   \n \nb",
			want: []Line{{Text: "a"}, {IsBlank: true}, {Text: "b"}},
		},
		{
			name: "empty input",
			raw:  "",
			want: []Line{},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			doc := Parse(tc.raw)
			if doc.RawText != tc.raw {
				t.Fatalf("RawText = %q, want %q", doc.RawText, tc.raw)
			}
			if diff := cmp.Diff(tc.want, doc.Lines); diff != "" {
				t.Fatalf("Parse(%q) mismatch (-want +got):\n%s", tc.raw, diff)
			}
		})
	}
}

func TestDocumentStanzas(t *testing.T) {
	doc := Parse("a\nb\n\n\nc\n\n")
	want := [][]string{{"a", "b"}, {"c"}}
	if diff := cmp.Diff(want, doc.Stanzas()); diff != "" {
		t.Fatalf("Stanzas mismatch (-want +got):\n%s", diff)
	}
}
