package utils

import (
	"fmt"
	"strings"
)

func ParseStr(rawVal interface{}) string {
	if rawVal == nil {
		return ""
	}

	if rawStr, ok := rawVal.(string); ok {
		return rawStr
	}

	return fmt.Sprint(rawVal)
}

// FirstStr returns the first non-empty string value found under any of the keys.
// Keys are matched case-insensitively.
func FirstStr(keyValues map[string]interface{}, keys ...string) string {
	lowered := make(map[string]interface{}, len(keyValues))
	for k, v := range keyValues {
		lowered[strings.ToLower(strings.TrimSpace(k))] = v
	}

	for _, key := range keys {
		rawVal, ok := lowered[strings.ToLower(key)]
		if !ok {
			continue
		}

		val := strings.TrimSpace(ParseStr(rawVal))
		if val != "" {
			return val
		}
	}

	return ""
}

// Shorten cuts s to at most maxRunes runes adding an ellipsis.
func Shorten(s string, maxRunes int) string {
	runes := []rune(s)
	if maxRunes <= 0 || len(runes) <= maxRunes {
		return s
	}

	if maxRunes == 1 {
		return "…"
	}

	return string(runes[:maxRunes-1]) + "…"
}
