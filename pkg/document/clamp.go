package document

import (
	"unicode"
)

// backoffShare is the tail of the cut text searched for a word boundary.
const backoffShare = 10

type Clamped struct {
	Text          string
	Truncated     bool
	OriginalChars int
	KeptChars     int
}

// Clamp cuts text to at most maxChars runes. The cut moves back to the last whitespace
// inside the final tenth of the kept part when there is one, trailing spaces are dropped.
func Clamp(text string, maxChars int) Clamped {
	runes := []rune(text)
	res := Clamped{
		Text:          text,
		OriginalChars: len(runes),
		KeptChars:     len(runes),
	}

	if maxChars <= 0 || len(runes) <= maxChars {
		return res
	}

	cut := maxChars
	lowest := maxChars - maxChars/backoffShare
	for i := maxChars; i > lowest && i > 0; i-- {
		if unicode.IsSpace(runes[i]) {
			cut = i
			break
		}
	}

	kept := runes[:cut]
	for len(kept) > 0 && unicode.IsSpace(kept[len(kept)-1]) {
		kept = kept[:len(kept)-1]
	}

	res.Text = string(kept)
	res.Truncated = true
	res.KeptChars = len(kept)

	return res
}
