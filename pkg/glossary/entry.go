package glossary

import (
	"regexp"
	"strings"
	"time"
)

var spacesRx = regexp.MustCompile(`\s+`)

// NormalizeTerm builds the unique key of a term: trimmed, single spaced, lower case.
func NormalizeTerm(term string) string {
	term = strings.TrimSpace(term)
	term = spacesRx.ReplaceAllString(term, " ")

	return strings.ToLower(term)
}

type Entry struct {
	Key            string    `db:"term_key" json:"key"`
	Term           string    `db:"term" json:"term"`
	TranslatedTerm string    `db:"translated_term" json:"translated_term"`
	Definition     string    `db:"definition" json:"definition"`
	Category       string    `db:"category" json:"category,omitempty"`
	Source         string    `db:"source" json:"source,omitempty"`
	UpdatedAt      time.Time `db:"updated_at" json:"updated_at"`
}

func NewEntry(term, translated, definition string) Entry {
	e := Entry{
		Term:           term,
		TranslatedTerm: translated,
		Definition:     definition,
	}
	e.Normalize()

	return e
}

// Normalize trims all fields, collapses spaces in the display term and fills the key.
func (e *Entry) Normalize() {
	e.Term = spacesRx.ReplaceAllString(strings.TrimSpace(e.Term), " ")
	e.TranslatedTerm = strings.TrimSpace(e.TranslatedTerm)
	e.Definition = strings.TrimSpace(e.Definition)
	e.Category = strings.TrimSpace(e.Category)
	e.Source = strings.TrimSpace(e.Source)
	e.Key = NormalizeTerm(e.Term)
}

func (e *Entry) IsValid() bool {
	return e != nil && NormalizeTerm(e.Term) != ""
}

// Merge dedupes lists by key, the first occurrence wins.
func Merge(lists ...[]Entry) []Entry {
	var out []Entry
	seen := map[string]bool{}

	for _, list := range lists {
		for _, e := range list {
			e.Normalize()
			if e.Key == "" || seen[e.Key] {
				continue
			}
			seen[e.Key] = true
			out = append(out, e)
		}
	}

	return out
}
