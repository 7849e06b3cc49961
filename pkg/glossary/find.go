package glossary

import (
	"context"
	"regexp"
	"strings"

	"github.com/pkg/errors"
)

const (
	DefaultFindLimit = 64
	maxNgram         = 4
)

var nonWordRx = regexp.MustCompile(`[^A-Za-z0-9\-\s]+`)

// Candidates lists the normalised 1..4 word n-grams of text in the order they start,
// longer n-grams first at the same position. Words consist of latin letters, digits and hyphens.
// The position order is what keeps FindInText results in reading order, so when the limit
// cuts the list the terms kept are the earliest in the text, not all single words first.
func Candidates(text string) []string {
	words := strings.Fields(nonWordRx.ReplaceAllString(text, " "))

	var res []string
	seen := map[string]bool{}
	for i := range words {
		for n := maxNgram; n >= 1; n-- {
			if i+n > len(words) {
				continue
			}

			key := NormalizeTerm(strings.Join(words[i:i+n], " "))
			if key == "" || seen[key] {
				continue
			}
			seen[key] = true
			res = append(res, key)
		}
	}

	return res
}

// FindInText returns glossary entries mentioned in text in order of first appearance, without duplicates.
func FindInText(ctx context.Context, s Store, text string, limit int) ([]Entry, error) {
	if limit <= 0 {
		limit = DefaultFindLimit
	}

	candidates := Candidates(text)
	if len(candidates) == 0 {
		return nil, nil
	}

	found, err := s.GetMany(ctx, candidates)
	if err != nil {
		return nil, errors.Wrap(err, "failed to detect glossary terms")
	}

	byKey := make(map[string]Entry, len(found))
	for _, e := range found {
		byKey[e.Key] = e
	}

	var res []Entry
	for _, key := range candidates {
		e, ok := byKey[key]
		if !ok {
			continue
		}

		res = append(res, e)
		if len(res) >= limit {
			break
		}
	}

	return res, nil
}
