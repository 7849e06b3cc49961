package storage

import "strings"

// GenerateCacheKey builds keys like "v1/glossary/entry/edema".
// version is bumped when the stored model changes incompatibly.
func GenerateCacheKey(version, domain, kind string, uniqueParts ...string) string {
	parts := []string{
		version,
		strings.ToLower(domain),
		strings.ToLower(kind),
	}

	parts = append(parts, uniqueParts...)

	return strings.Join(parts, "/")
}
