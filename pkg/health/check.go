package health

import (
	"context"
	"sync"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

const DefaultTimeout = 3 * time.Second

// ErrMissing marks an optional dependency which is not configured.
var ErrMissing = errors.New("not configured")

type CheckFunc func(ctx context.Context) error

type Check struct {
	Name string
	Fn   CheckFunc
}

// Configured reports ErrMissing for an empty value.
func Configured(name, value string) Check {
	return Check{
		Name: name,
		Fn: func(context.Context) error {
			if value == "" {
				return ErrMissing
			}
			return nil
		},
	}
}

type Result struct {
	Name    string
	Err     error
	Elapsed time.Duration
}

func (r Result) OK() bool {
	return r.Err == nil
}

func (r Result) Missing() bool {
	return errors.Is(r.Err, ErrMissing)
}

type Checker struct {
	checks  []Check
	timeout time.Duration
}

func NewChecker(timeout time.Duration, checks ...Check) *Checker {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	return &Checker{checks: checks, timeout: timeout}
}

func (c *Checker) Add(checks ...Check) {
	c.checks = append(c.checks, checks...)
}

// Run executes all checks concurrently, results keep the order of the checks.
func (c *Checker) Run(ctx context.Context) []Result {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	results := make([]Result, len(c.checks))

	var wg sync.WaitGroup
	for i := range c.checks {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()

			check := c.checks[i]
			start := time.Now()
			err := check.Fn(ctx)
			results[i] = Result{Name: check.Name, Err: err, Elapsed: time.Since(start)}

			if err != nil && !errors.Is(err, ErrMissing) {
				logrus.WithContext(ctx).Warnf("health check %q failed: %v", check.Name, err)
			}
		}(i)
	}
	wg.Wait()

	return results
}

// Healthy is false when any check failed, missing optional dependencies do not count.
func Healthy(results []Result) bool {
	for _, r := range results {
		if !r.OK() && !r.Missing() {
			return false
		}
	}

	return true
}
