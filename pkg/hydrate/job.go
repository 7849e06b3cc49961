package hydrate

import (
	"context"
	"time"

	"medStudyBot/pkg/errs"
	"medStudyBot/pkg/glossary"
	"medStudyBot/pkg/metrics"

	"github.com/cenkalti/backoff/v4"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

type Recorder interface {
	Record(ctx context.Context, sum *Summary) error
}

// Job loads sources into the glossary. It only upserts, stale entries are kept.
type Job struct {
	store      glossary.Store
	fetcher    Fetcher
	recorder   Recorder
	batchSize  int
	newBackOff func() backoff.BackOff
	now        func() time.Time
}

func NewJob(store glossary.Store, fetcher Fetcher, recorder Recorder, cfg *Config) *Job {
	return &Job{
		store:     store,
		fetcher:   fetcher,
		recorder:  recorder,
		batchSize: cfg.BatchSize,
		newBackOff: func() backoff.BackOff {
			b := backoff.NewExponentialBackOff()
			b.MaxElapsedTime = cfg.MaxRetryElapsed
			return b
		},
		now: time.Now,
	}
}

// Run never stops on a failing source or batch: failures are logged and counted in the summary.
func (j *Job) Run(ctx context.Context, sources []string) (*Summary, error) {
	log := logrus.WithContext(ctx)

	sum := &Summary{Sources: sources, StartedAt: j.now()}

	var lists [][]glossary.Entry
	for _, src := range sources {
		entries, err := j.load(ctx, src)
		if err != nil {
			log.Errorf("skipping source %q: %v", src, err)
			sum.FailedSources = append(sum.FailedSources, src)
			continue
		}

		log.Infof("read %d entries from %q", len(entries), src)
		sum.Read += len(entries)
		lists = append(lists, entries)
	}

	unique := glossary.Merge(lists...)
	sum.Skipped = sum.Read - len(unique)

	for start := 0; start < len(unique); start += j.batchSize {
		if err := ctx.Err(); err != nil {
			sum.Failed += len(unique) - start
			break
		}

		end := start + j.batchSize
		if end > len(unique) {
			end = len(unique)
		}

		n, err := j.upsertBatch(ctx, unique[start:end])
		if err != nil {
			log.Errorf("failed to upsert entries %d-%d: %v", start, end, err)
			sum.Failed += end - start
			continue
		}

		sum.Upserted += n
		log.Debugf("upserted entries %d-%d", start, end)
	}

	sum.FinishedAt = j.now()

	metrics.AddHydrated("upserted", sum.Upserted)
	metrics.AddHydrated("skipped", sum.Skipped)
	metrics.AddHydrated("failed", sum.Failed)

	if j.recorder != nil {
		if err := j.recorder.Record(ctx, sum); err != nil {
			log.Warnf("failed to record hydration run: %v", err)
		}
	}

	if len(sources) > 0 && len(sum.FailedSources) == len(sources) {
		return sum, errors.Errorf("none of %d sources could be read", len(sources))
	}

	return sum, nil
}

func (j *Job) load(ctx context.Context, src string) ([]glossary.Entry, error) {
	raw, err := j.fetcher.Fetch(ctx, src)
	if err != nil {
		return nil, err
	}

	return Parse(src, raw)
}

func (j *Job) upsertBatch(ctx context.Context, batch []glossary.Entry) (int, error) {
	var n int
	op := func() error {
		var err error
		n, err = j.store.BulkUpsert(ctx, batch)
		if err != nil && !errs.IsRetryable(err) {
			return backoff.Permanent(err)
		}

		return err
	}

	err := backoff.Retry(op, backoff.WithContext(j.newBackOff(), ctx))

	return n, err
}
