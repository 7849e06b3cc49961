package hydrate

import (
	"fmt"
	"strings"
	"time"
)

type Summary struct {
	Sources       []string
	FailedSources []string
	Read          int
	Skipped       int
	Upserted      int
	Failed        int
	StartedAt     time.Time
	FinishedAt    time.Time
}

func (s *Summary) String() string {
	res := fmt.Sprintf(
		"sources: %d, read: %d, skipped: %d, upserted: %d, failed: %d, took: %s",
		len(s.Sources),
		s.Read,
		s.Skipped,
		s.Upserted,
		s.Failed,
		s.FinishedAt.Sub(s.StartedAt).Round(time.Millisecond),
	)

	if len(s.FailedSources) > 0 {
		res += ", failed sources: " + strings.Join(s.FailedSources, ", ")
	}

	return res
}
