package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFirstStr(t *testing.T) {
	row := map[string]interface{}{
		"English": "  Edema ",
		"ar":      "",
		"arabic":  "تورم",
		"def":     12,
	}

	assert.Equal(t, "Edema", FirstStr(row, "term", "english"))
	assert.Equal(t, "تورم", FirstStr(row, "ar", "arabic"))
	assert.Equal(t, "12", FirstStr(row, "definition", "def"))
	assert.Equal(t, "", FirstStr(row, "category"))
}

func TestShorten(t *testing.T) {
	assert.Equal(t, "abc", Shorten("abc", 3))
	assert.Equal(t, "ab…", Shorten("abcd", 3))
	assert.Equal(t, "تو…", Shorten("تورمات", 3))
	assert.Equal(t, "abc", Shorten("abc", 0))
}

func TestGetType(t *testing.T) {
	type entry struct{}

	assert.Equal(t, "*entry", GetType(&entry{}))
	assert.Equal(t, "[]entry", GetType([]entry{}))
	assert.Equal(t, "nil", GetType(nil))
}
