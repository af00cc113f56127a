package catalog

import (
	"errors"
	"fmt"
	"strings"
)

// Lang selects the typography used when a song's lyrics are rendered.
type Lang int

const (
	LangOther Lang = iota
	LangEnglish
	LangUrdu
)

// ParseLang maps a catalog language tag to a Lang. Unknown tags are LangOther.
func ParseLang(tag string) Lang {
	switch strings.ToLower(strings.TrimSpace(tag)) {
	case "english":
		return LangEnglish
	case "urdu":
		return LangUrdu
	default:
		return LangOther
	}
}

func (l Lang) String() string {
	switch l {
	case LangEnglish:
		return "english"
	case LangUrdu:
		return "urdu"
	default:
		return "other"
	}
}

// ErrInvalidSong is returned when a catalog record is missing a required field.
var ErrInvalidSong = errors.New("invalid song")

// SongSummary is one catalog entry. Values are never mutated after load.
type SongSummary struct {
	Name      string
	Writer    string
	Singer    string
	Lang      Lang
	LyricsRef string
}

// Validate reports which required field is blank, if any.
func (s SongSummary) Validate() error {
	switch {
	case strings.TrimSpace(s.Name) == "":
		return fmt.Errorf("%w: name is empty", ErrInvalidSong)
	case strings.TrimSpace(s.Writer) == "":
		return fmt.Errorf("%w: writer is empty", ErrInvalidSong)
	case strings.TrimSpace(s.Singer) == "":
		return fmt.Errorf("%w: singer is empty", ErrInvalidSong)
	}
	return nil
}

// Record is the external catalog format shared by catalog files and the
// catalog service.
type Record struct {
	Name       string `json:"name" yaml:"name"`
	Writer     string `json:"writer" yaml:"writer"`
	Singer     string `json:"singer" yaml:"singer"`
	Lang       string `json:"lang" yaml:"lang"`
	LyricsFile string `json:"lyricsFile" yaml:"lyricsFile"`
}

// Song converts the record to a SongSummary without validating it.
func (r Record) Song() SongSummary {
	return SongSummary{
		Name:      strings.TrimSpace(r.Name),
		Writer:    strings.TrimSpace(r.Writer),
		Singer:    strings.TrimSpace(r.Singer),
		Lang:      ParseLang(r.Lang),
		LyricsRef: strings.TrimSpace(r.LyricsFile),
	}
}
