package document

import "unicode/utf8"

const (
	maxTitleRunes      = 200
	maxDefinitionRunes = 500
)

// contentBudget shares maxChars runes between all user supplied and stored text of a document.
// A non-positive limit disables it.
type contentBudget struct {
	limit    int
	left     int
	original int
	kept     int
}

func newContentBudget(limit int) *contentBudget {
	return &contentBudget{limit: limit, left: limit}
}

// take clamps s to the remaining budget and, when max is positive, to max runes.
func (b *contentBudget) take(s string, max int) string {
	allowed := max
	if b.limit > 0 && (allowed <= 0 || allowed > b.left) {
		allowed = b.left
	}

	if b.limit > 0 && allowed <= 0 {
		b.original += utf8.RuneCountInString(s)
		return ""
	}

	c := Clamp(s, allowed)
	b.original += c.OriginalChars
	b.kept += c.KeptChars
	if b.limit > 0 {
		b.left -= c.KeptChars
	}

	return c.Text
}

func (b *contentBudget) truncated() bool {
	return b.kept < b.original
}
