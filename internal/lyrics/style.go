package lyrics

import "github.com/bayaz-archive/bayaz/internal/catalog"

type Font int

const (
	FontDefault Font = iota
	FontCompactSerif
	FontRTLSerif
)

type Size int

const (
	SizeNormal Size = iota
	SizeSmall
)

type LineHeight int

const (
	LineHeightNormal LineHeight = iota
	LineHeightTight
	LineHeightWide
)

// Style is the typography applied to every line of a lyrics document.
type Style struct {
	Font       Font
	Size       Size
	LineHeight LineHeight
}

// StyleFor returns the lyric typography for a song language.
func StyleFor(lang catalog.Lang) Style {
	switch lang {
	case catalog.LangEnglish:
		return Style{Font: FontCompactSerif, Size: SizeSmall, LineHeight: LineHeightTight}
	case catalog.LangUrdu:
		return Style{Font: FontRTLSerif, Size: SizeNormal, LineHeight: LineHeightWide}
	default:
		return Style{}
	}
}

// RightToLeft reports whether lines should be aligned for a right-to-left script.
func (s Style) RightToLeft() bool {
	return s.Font == FontRTLSerif
}

// CSS carries the web values the site uses for the same style.
type CSS struct {
	FontFamily string
	FontSize   string
	LineHeight string
}

// CSS returns the site's font family, size, and leading for the style.
// Empty fields inherit the page defaults.
func (s Style) CSS() CSS {
	css := CSS{LineHeight: "2.5"}
	switch s.Font {
	case FontCompactSerif:
		css.FontFamily = "'Comfortaa', cursive, sans-serif"
	case FontRTLSerif:
		css.FontFamily = "'Noto Nastaliq Urdu', serif, Arial, sans-serif"
	}
	if s.Size == SizeSmall {
		css.FontSize = "13px"
	}
	if s.LineHeight == LineHeightTight {
		css.LineHeight = "2.3"
	}
	return css
}
