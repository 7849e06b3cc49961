package document

import (
	"bytes"
	"embed"
	"html/template"
	"time"
	"unicode"

	"github.com/microcosm-cc/bluemonday"
	"github.com/pkg/errors"
)

//go:embed templates/document.html.tmpl
var templatesFS embed.FS

var (
	basicPolicy = newBasicPolicy()

	documentTmpl = template.Must(
		template.New("document.html.tmpl").
			Funcs(template.FuncMap{
				"dir":    textDir,
				"basic":  basicHTML,
				"blocks": groupBlocks,
			}).
			ParseFS(templatesFS, "templates/document.html.tmpl"),
	)
)

// newBasicPolicy allows inline emphasis and lists, everything else is stripped.
func newBasicPolicy() *bluemonday.Policy {
	p := bluemonday.NewPolicy()
	p.AllowElements("b", "strong", "i", "em", "ul", "ol", "li", "br", "sup", "sub")

	return p
}

func basicHTML(s string) template.HTML {
	return template.HTML(basicPolicy.Sanitize(s))
}

func textDir(s string) string {
	for _, r := range s {
		switch {
		case unicode.In(r, unicode.Arabic, unicode.Hebrew):
			return "rtl"
		case unicode.IsLetter(r):
			return "ltr"
		}
	}

	return "ltr"
}

type blockGroup struct {
	List  bool
	Text  string
	Items []string
}

// groupBlocks joins consecutive bullets into one list.
func groupBlocks(blocks []Block) []blockGroup {
	var res []blockGroup
	for _, b := range blocks {
		if b.Kind == Bullet {
			if n := len(res); n > 0 && res[n-1].List {
				res[n-1].Items = append(res[n-1].Items, b.Text)
				continue
			}
			res = append(res, blockGroup{List: true, Items: []string{b.Text}})
			continue
		}

		res = append(res, blockGroup{Text: b.Text})
	}

	return res
}

type htmlView struct {
	Doc           Document
	Lang          string
	Author        string
	Date          string
	ContentsTitle string
	GlossaryTitle string
}

// RenderHTML produces the page handed to the PDF engine.
func RenderHTML(doc Document, author string, now time.Time) ([]byte, error) {
	view := htmlView{
		Doc:           doc,
		Lang:          "ar",
		Author:        author,
		Date:          now.Format("2006-01-02"),
		ContentsTitle: "Contents · المحتويات",
		GlossaryTitle: "Glossary · المصطلحات الطبية",
	}

	var buf bytes.Buffer
	if err := documentTmpl.Execute(&buf, view); err != nil {
		return nil, errors.Wrapf(err, "failed to build html for %q", doc.Title)
	}

	return buf.Bytes(), nil
}
