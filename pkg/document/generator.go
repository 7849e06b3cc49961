package document

import (
	"bytes"
	"context"
	"regexp"
	"strings"
	"time"

	"medStudyBot/pkg/errs"
	"medStudyBot/pkg/metrics"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

const (
	PDFMime     = "application/pdf"
	pdfMagic    = "%PDF-"
	maxSlugLen  = 48
	defaultSlug = "document"
)

var slugRx = regexp.MustCompile(`[^a-z0-9]+`)

// Generator renders documents into PDF artifacts. Failures are returned as render errors and never retried.
type Generator struct {
	engine  Engine
	author  string
	timeout time.Duration
	now     func() time.Time
}

func NewGenerator(engine Engine, author string, timeout time.Duration) *Generator {
	return &Generator{
		engine:  engine,
		author:  author,
		timeout: timeout,
		now:     time.Now,
	}
}

func (g *Generator) Render(ctx context.Context, doc Document) (art *Artifact, err error) {
	start := time.Now()
	defer func() {
		metrics.ObserveRender(err, doc.Truncated, time.Since(start))
	}()

	html, err := RenderHTML(doc, g.author, g.now())
	if err != nil {
		return nil, errs.Wrapf(errs.KindRender, err, "failed to prepare %q", doc.Title)
	}

	if g.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.timeout)
		defer cancel()
	}

	data, err := g.engine.Render(ctx, html)
	if err != nil {
		return nil, errs.Wrapf(errs.KindRender, err, "failed to render %q", doc.Title)
	}

	if !bytes.HasPrefix(data, []byte(pdfMagic)) {
		return nil, errs.Wrapf(errs.KindRender, errors.New("output is not a pdf"), "failed to render %q", doc.Title)
	}

	logrus.WithContext(ctx).Infof("rendered %q into %d bytes", doc.Title, len(data))

	return &Artifact{
		Name: FileName(doc.Title),
		MIME: PDFMime,
		Data: data,
	}, nil
}

// FileName gives "<slug>_<8 hex>.pdf", non latin titles fall back to "document".
func FileName(title string) string {
	slug := strings.Trim(slugRx.ReplaceAllString(strings.ToLower(title), "_"), "_")
	if len(slug) > maxSlugLen {
		slug = strings.TrimRight(slug[:maxSlugLen], "_")
	}
	if slug == "" {
		slug = defaultSlug
	}

	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:8]

	return slug + "_" + suffix + ".pdf"
}
