package telegraph

import (
	"strings"

	"medStudyBot/pkg/document"

	"github.com/microcosm-cc/bluemonday"
)

const glossaryHeading = "📚 المصطلحات الطبية"

var stripPolicy = bluemonday.StrictPolicy()

// Node is an element of the Telegraph content tree, children are strings or *Node.
type Node struct {
	Tag      string            `json:"tag"`
	Attrs    map[string]string `json:"attrs,omitempty"`
	Children []interface{}     `json:"children,omitempty"`
}

func el(tag string, children ...interface{}) *Node {
	return &Node{Tag: tag, Children: children}
}

func plain(s string) string {
	return strings.TrimSpace(html2text(stripPolicy.Sanitize(s)))
}

// html2text undoes the entity escaping of the sanitizer, Telegraph escapes text itself.
func html2text(s string) string {
	return strings.NewReplacer("&amp;", "&", "&lt;", "<", "&gt;", ">", "&#34;", `"`, "&#39;", "'").Replace(s)
}

// Nodes converts a document into Telegraph content: h3/h4 headings, paragraphs, bullet lists
// and the glossary as one "• term - translation: definition" paragraph per entry.
func Nodes(doc document.Document) []interface{} {
	var nodes []interface{}

	if doc.Subtitle != "" {
		nodes = append(nodes, el("p", el("em", doc.Subtitle)))
	}

	if doc.Notice != "" {
		nodes = append(nodes, el("blockquote", doc.Notice))
	}

	for _, sec := range doc.Sections {
		tag := "h3"
		if sec.Level == 3 {
			tag = "h4"
		}
		nodes = append(nodes, el(tag, sec.Heading))

		var list *Node
		for _, b := range sec.Blocks {
			text := plain(b.Text)
			if text == "" {
				continue
			}

			if b.Kind == document.Bullet {
				if list == nil {
					list = el("ul")
					nodes = append(nodes, list)
				}
				list.Children = append(list.Children, el("li", text))
				continue
			}

			list = nil
			nodes = append(nodes, el("p", text))
		}
	}

	if len(doc.Glossary) > 0 {
		nodes = append(nodes, el("h3", glossaryHeading))
		for _, e := range doc.Glossary {
			line := "• " + e.Term
			if e.TranslatedTerm != "" {
				line += " — " + e.TranslatedTerm
			}
			if e.Definition != "" {
				line += ": " + e.Definition
			}
			nodes = append(nodes, el("p", line))
		}
	}

	return nodes
}
