package hydrate

import (
	"medStudyBot/pkg/glossary"
	"medStudyBot/pkg/storage"

	"gorm.io/gorm"
)

// BuildJob loads the config, a positive batchSize overrides HYDRATE_BATCH_SIZE.
// cache may be nil.
func BuildJob(store glossary.Store, orm *gorm.DB, cache storage.Client, batchSize int) (*Job, *Config, error) {
	cfg, err := LoadConfig()
	if err != nil {
		return nil, nil, err
	}

	if batchSize > 0 {
		cfg.BatchSize = batchSize
	}

	e := cfg.Validate()
	if e.HasErrors() {
		return nil, nil, e
	}

	fetcher := SourceFetcher{Cache: cache, CacheTTL: cfg.CacheTTL}

	return NewJob(store, fetcher, NewRunStore(orm), cfg), cfg, nil
}
