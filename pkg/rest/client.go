package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"medStudyBot/pkg/storage"
	"medStudyBot/pkg/utils"

	"github.com/pkg/errors"
	logging "github.com/sirupsen/logrus"
)

const (
	defaultRequestCacheValidity = time.Hour
	defaultTimeout              = 30 * time.Second
	maxLoggedBody               = 512
	maxErrorBody                = 2048
)

// StatusError is returned for non 2xx responses.
type StatusError struct {
	Code int
	Body string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("bad response code %d: %s", e.Code, e.Body)
}

func (e *StatusError) Temporary() bool {
	return e.Code == http.StatusTooManyRequests || e.Code >= http.StatusInternalServerError
}

type Requester struct {
	method        string
	url           string
	apiKey        string
	headers       map[string]string
	input         interface{}
	output        interface{}
	db            storage.Client
	cacheValidity time.Duration
	cacheKey      string
	client        *http.Client
}

// NewRequester creates a GET request decoding the JSON response into target.
// A *[]byte target receives the raw body.
func NewRequester(url string, target interface{}) *Requester {
	return &Requester{
		method:        http.MethodGet,
		url:           url,
		output:        target,
		headers:       map[string]string{},
		cacheValidity: defaultRequestCacheValidity,
		client:        &http.Client{Timeout: defaultTimeout},
	}
}

func (r *Requester) WithMethod(m string) *Requester {
	r.method = m
	return r
}

func (r *Requester) WithPOST() *Requester {
	r.method = http.MethodPost
	return r
}

func (r *Requester) WithCache(key string, c storage.Client, validity time.Duration) *Requester {
	r.db = c
	if validity > 0 {
		r.cacheValidity = validity
	}
	r.cacheKey = key
	return r
}

func (r *Requester) WithInput(i interface{}) *Requester {
	r.input = i
	return r
}

func (r *Requester) WithBearer(key string) *Requester {
	r.apiKey = key
	return r
}

func (r *Requester) WithHeader(name, value string) *Requester {
	r.headers[name] = value
	return r
}

func (r *Requester) WithClient(c *http.Client) *Requester {
	if c != nil {
		r.client = c
	}
	return r
}

func (r *Requester) addHeaders(httpReq *http.Request) {
	if r.apiKey != "" {
		httpReq.Header.Set("Authorization", "Bearer "+r.apiKey)
	}

	if r.input != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}

	for name, value := range r.headers {
		httpReq.Header.Set(name, value)
	}
}

func (r *Requester) getCacheKey() string {
	if r.cacheKey == "" {
		return r.url
	}

	return r.cacheKey
}

func (r *Requester) Request(ctx context.Context) error {
	log := logging.WithContext(ctx)

	if r.db != nil {
		found, err := r.db.Load(ctx, r.getCacheKey(), r.output)
		if err != nil {
			log.Warnf("failed to read cached response for %q: %v", r.url, err)
		} else if found {
			log.Debugf("using cached response for %q", r.url)
			return nil
		}
	}

	var bodyReader io.Reader
	if r.input != nil {
		requestBody, err := json.Marshal(r.input)
		if err != nil {
			return errors.Wrap(err, "failed to create an http request body")
		}

		bodyReader = bytes.NewBuffer(requestBody)
		log.Debugf("http request, url: %q, method: %s, body: %q", r.url, r.method, utils.Shorten(string(requestBody), maxLoggedBody))
	} else {
		log.Debugf("http request, url: %q, method: %s", r.url, r.method)
	}

	httpReq, err := http.NewRequestWithContext(ctx, r.method, r.url, bodyReader)
	if err != nil {
		return errors.Wrap(err, "failed to create an http request")
	}

	r.addHeaders(httpReq)

	err = r.request(ctx, httpReq)
	if err != nil {
		return err
	}

	if r.db != nil {
		err := r.db.Save(ctx, r.getCacheKey(), r.output, r.cacheValidity)
		if err != nil {
			log.Warnf("failed to cache response for %q: %v", r.url, err)
		}
	}

	return nil
}

func (r *Requester) request(ctx context.Context, httpReq *http.Request) error {
	log := logging.WithContext(ctx)

	resp, err := r.client.Do(httpReq)
	if err != nil {
		return errors.Wrapf(err, "failed to call %s %q", httpReq.Method, r.url)
	}

	defer resp.Body.Close()

	responseBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return errors.Wrapf(err, "failed to read response of %q", r.url)
	}

	log.Debugf("response %d from %q: %q", resp.StatusCode, r.url, utils.Shorten(string(responseBody), maxLoggedBody))

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return errors.WithStack(&StatusError{
			Code: resp.StatusCode,
			Body: utils.Shorten(string(responseBody), maxErrorBody),
		})
	}

	if raw, ok := r.output.(*[]byte); ok {
		*raw = responseBody
		return nil
	}

	err = json.Unmarshal(responseBody, r.output)
	if err != nil {
		return errors.Wrapf(err, "failed to decode response of %q into %s", r.url, utils.GetType(r.output))
	}

	return nil
}
