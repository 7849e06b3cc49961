package document

import (
	"bytes"
	"context"

	wkhtml "github.com/SebastiaanKlippert/go-wkhtmltopdf"
	"github.com/pkg/errors"
)

// Engine converts an HTML page into PDF bytes.
type Engine interface {
	Render(ctx context.Context, html []byte) ([]byte, error)
}

type WkhtmltopdfEngine struct {
	title string
}

// NewWkhtmltopdfEngine points the wrapper at binPath, an empty path means a lookup in PATH.
func NewWkhtmltopdfEngine(binPath, title string) *WkhtmltopdfEngine {
	if binPath != "" {
		wkhtml.SetPath(binPath)
	}

	return &WkhtmltopdfEngine{title: title}
}

// Available reports whether the wkhtmltopdf binary can be found.
func (e *WkhtmltopdfEngine) Available() error {
	_, err := wkhtml.NewPDFGenerator()
	return errors.Wrap(err, "wkhtmltopdf is not available")
}

func (e *WkhtmltopdfEngine) Render(ctx context.Context, html []byte) ([]byte, error) {
	pdfg, err := wkhtml.NewPDFGenerator()
	if err != nil {
		return nil, errors.Wrap(err, "failed to init wkhtmltopdf")
	}

	pdfg.PageSize.Set(wkhtml.PageSizeA4)
	pdfg.Orientation.Set(wkhtml.OrientationPortrait)
	pdfg.MarginTop.Set(15)
	pdfg.MarginBottom.Set(15)
	pdfg.Title.Set(e.title)

	page := wkhtml.NewPageReader(bytes.NewReader(html))
	page.Encoding.Set("UTF-8")
	page.FooterCenter.Set("[page] / [topage]")
	page.FooterFontSize.Set(8)
	pdfg.AddPage(page)

	err = pdfg.CreateContext(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "wkhtmltopdf failed")
	}

	return pdfg.Bytes(), nil
}
