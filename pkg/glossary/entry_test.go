package glossary

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeTerm(t *testing.T) {
	assert.Equal(t, "odds ratio", NormalizeTerm("  Odds \t  RATIO\n"))
	assert.Equal(t, "", NormalizeTerm(" \n "))
	assert.Equal(t, "p-value", NormalizeTerm("P-Value"))
}

func TestNewEntry(t *testing.T) {
	e := NewEntry("  Cohort   Study ", " دراسة أترابية ", " def ")

	assert.Equal(t, "cohort study", e.Key)
	assert.Equal(t, "Cohort Study", e.Term)
	assert.Equal(t, "دراسة أترابية", e.TranslatedTerm)
	assert.Equal(t, "def", e.Definition)
	assert.True(t, e.IsValid())
	assert.False(t, (&Entry{Term: "  "}).IsValid())
}

func TestMerge(t *testing.T) {
	res := Merge(
		[]Entry{{Term: "Bias", Definition: "first"}, {Term: " "}},
		[]Entry{{Term: "bias", Definition: "second"}, {Term: "Validity"}},
	)

	if assert.Len(t, res, 2) {
		assert.Equal(t, "first", res[0].Definition)
		assert.Equal(t, "validity", res[1].Key)
	}
}

func TestSeedEntries(t *testing.T) {
	seed := SeedEntries()

	assert.Len(t, seed, 15)
	assert.Len(t, Merge(seed), 15)
	for _, e := range seed {
		assert.NotEmpty(t, e.TranslatedTerm, e.Term)
		assert.NotEmpty(t, e.Definition, e.Term)
		assert.Equal(t, SeedSource, e.Source)
	}
}
