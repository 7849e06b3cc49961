package glossary

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCandidates(t *testing.T) {
	c := Candidates("The Odds-Ratio, (p-value)!")

	assert.Equal(t, []string{
		"the odds-ratio p-value",
		"the odds-ratio",
		"the",
		"odds-ratio p-value",
		"odds-ratio",
		"p-value",
	}, c)

	assert.Empty(t, Candidates("  تورم  ... "))
}

func TestFindInText(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	_, err := s.BulkUpsert(ctx, SeedEntries())
	require.NoError(t, err)

	text := "A randomized clinical trial reported the odds ratio; bias and BIAS again, and a cohort study."
	found, err := FindInText(ctx, s, text, 0)
	require.NoError(t, err)

	var terms []string
	for _, e := range found {
		terms = append(terms, e.Term)
	}
	assert.Equal(t, []string{"Randomized Clinical Trial", "Odds Ratio", "Bias", "Cohort Study"}, terms)

	// the limit keeps the earliest mentions, single words do not jump ahead
	limited, err := FindInText(ctx, s, text, 2)
	require.NoError(t, err)
	require.Len(t, limited, 2)
	assert.Equal(t, "Randomized Clinical Trial", limited[0].Term)
	assert.Equal(t, "Odds Ratio", limited[1].Term)

	none, err := FindInText(ctx, s, "nothing medical here", 0)
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestSeed(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	n, err := Seed(ctx, s)
	require.NoError(t, err)
	assert.Equal(t, 15, n)

	n, err = Seed(ctx, s)
	require.NoError(t, err)
	assert.Zero(t, n)
}
