package telegraph

import (
	"context"
	"net/http"
	"strings"
	"time"

	"medStudyBot/pkg/document"
	"medStudyBot/pkg/errs"
	"medStudyBot/pkg/metrics"
	"medStudyBot/pkg/rest"
	"medStudyBot/pkg/utils"

	"github.com/cenkalti/backoff/v4"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"
)

const (
	maxTitleRunes  = 256
	floodWaitError = "FLOOD_WAIT"
)

var ErrNotConfigured = errors.New("publishing not configured")

type Page struct {
	Title string
	Path  string
	URL   string
	Nodes []interface{}
}

type createPageRequest struct {
	AccessToken   string        `json:"access_token"`
	Title         string        `json:"title"`
	AuthorName    string        `json:"author_name,omitempty"`
	Content       []interface{} `json:"content"`
	ReturnContent bool          `json:"return_content"`
}

type createPageResponse struct {
	OK     bool   `json:"ok"`
	Error  string `json:"error"`
	Result struct {
		Path  string `json:"path"`
		URL   string `json:"url"`
		Title string `json:"title"`
	} `json:"result"`
}

// APIError is an ok=false answer of the Telegraph API.
type APIError struct {
	Code string
}

func (e *APIError) Error() string {
	return "telegraph error: " + e.Code
}

func (e *APIError) Temporary() bool {
	return strings.HasPrefix(e.Code, floodWaitError)
}

// Client publishes documents as Telegraph pages. It is safe for concurrent use.
type Client struct {
	cfg        *Config
	limiter    *rate.Limiter
	http       *http.Client
	newBackOff func() backoff.BackOff
}

func NewClient(cfg *Config) (*Client, error) {
	e := cfg.Validate()
	if e.HasErrors() {
		return nil, e
	}

	return &Client{
		cfg:     cfg,
		limiter: rate.NewLimiter(rate.Limit(cfg.RatePerSecond), cfg.Burst),
		http:    &http.Client{Timeout: 20 * time.Second},
		newBackOff: func() backoff.BackOff {
			b := backoff.NewExponentialBackOff()
			b.MaxElapsedTime = cfg.MaxRetryElapsed
			return b
		},
	}, nil
}

func (c *Client) IsConfigured() bool {
	return c.cfg.IsConfigured()
}

func (c *Client) Publish(ctx context.Context, doc document.Document) (page *Page, err error) {
	defer func() {
		metrics.IncPublish(err)
	}()

	if !c.cfg.IsConfigured() {
		return nil, errs.Permanent(errs.KindPublish, ErrNotConfigured)
	}

	title := strings.TrimSpace(doc.Title)
	if title == "" {
		title = document.DefaultTitle
	}

	req := createPageRequest{
		AccessToken: c.cfg.AccessToken,
		Title:       utils.Shorten(title, maxTitleRunes),
		AuthorName:  c.cfg.AuthorName,
		Content:     Nodes(doc),
	}

	var resp createPageResponse
	attempt := 0
	op := func() error {
		attempt++
		resp = createPageResponse{}

		if err := c.limiter.Wait(ctx); err != nil {
			return backoff.Permanent(err)
		}
		metrics.IncPublishAttempt()

		err := rest.NewRequester(strings.TrimRight(c.cfg.APIURL, "/")+"/createPage", &resp).
			WithPOST().
			WithInput(req).
			WithClient(c.http).
			Request(ctx)
		if err == nil && !resp.OK {
			err = &APIError{Code: resp.Error}
		}
		if err == nil {
			return nil
		}

		if !isTransient(ctx, err) {
			return backoff.Permanent(err)
		}

		logrus.WithContext(ctx).Warnf("telegraph attempt %d failed: %v", attempt, err)

		return err
	}

	err = backoff.Retry(op, backoff.WithContext(c.newBackOff(), ctx))
	if err != nil {
		if isTransient(ctx, err) {
			return nil, errs.Wrapf(errs.KindPublish, err, "failed to publish %q after %d attempts", title, attempt)
		}

		return nil, errs.Permanent(errs.KindPublish, errors.Wrapf(err, "failed to publish %q", title))
	}

	logrus.WithContext(ctx).Infof("published %q to %s", title, resp.Result.URL)

	return &Page{
		Title: title,
		Path:  resp.Result.Path,
		URL:   resp.Result.URL,
		Nodes: req.Content,
	}, nil
}

// isTransient treats network failures, 429, 5xx and flood waits as worth a retry.
func isTransient(ctx context.Context, err error) bool {
	if ctx.Err() != nil {
		return false
	}

	var se *rest.StatusError
	if errors.As(err, &se) {
		return se.Temporary()
	}

	var ae *APIError
	if errors.As(err, &ae) {
		return ae.Temporary()
	}

	return true
}
