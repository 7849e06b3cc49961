package hydrate

import (
	"context"
	"strings"
	"time"

	"medStudyBot/pkg/errs"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type Run struct {
	ID         int64     `gorm:"column:id;primaryKey" json:"id"`
	Sources    string    `gorm:"column:sources" json:"sources"`
	Read       int       `gorm:"column:read_count" json:"read"`
	Skipped    int       `gorm:"column:skipped" json:"skipped"`
	Upserted   int       `gorm:"column:upserted" json:"upserted"`
	Failed     int       `gorm:"column:failed" json:"failed"`
	StartedAt  time.Time `gorm:"column:started_at" json:"started_at"`
	FinishedAt time.Time `gorm:"column:finished_at" json:"finished_at"`
}

func (Run) TableName() string {
	return "hydration_runs"
}

// RunStore keeps the history of hydration runs.
type RunStore struct {
	db *gorm.DB
}

func NewRunStore(db *gorm.DB) *RunStore {
	return &RunStore{db: db}
}

func (s *RunStore) Record(ctx context.Context, sum *Summary) error {
	run := Run{
		Sources:    strings.Join(sum.Sources, "\n"),
		Read:       sum.Read,
		Skipped:    sum.Skipped,
		Upserted:   sum.Upserted,
		Failed:     sum.Failed,
		StartedAt:  sum.StartedAt.UTC(),
		FinishedAt: sum.FinishedAt.UTC(),
	}

	err := s.db.WithContext(ctx).Create(&run).Error
	if err != nil {
		return errs.Wrapf(errs.KindStorage, err, "failed to record hydration run")
	}

	return nil
}

// Last returns the latest run or nil when nothing ran yet.
func (s *RunStore) Last(ctx context.Context) (*Run, error) {
	var r Run
	err := s.db.WithContext(ctx).Order("id DESC").Take(&r).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, errs.Wrapf(errs.KindStorage, err, "failed to read last hydration run")
	}

	return &r, nil
}
