package document

import (
	"fmt"
	"regexp"
	"strings"

	"medStudyBot/pkg/glossary"
	"medStudyBot/pkg/i18n"
)

const DefaultTitle = "Medical Study Page"

var (
	numberedRx     = regexp.MustCompile(`^\d+[.)]\s+`)
	bulletPrefixes = []string{"- ", "• ", "* "}
)

type Formatter struct {
	maxChars int
	t        i18n.Localizer
}

func NewFormatter(maxChars int, t i18n.Localizer) *Formatter {
	return &Formatter{maxChars: maxChars, t: t}
}

func (f *Formatter) MaxChars() int {
	return f.maxChars
}

// FormatEntry builds a one page document for a glossary entry. The definition is the body,
// so entry documents carry no glossary table.
func (f *Formatter) FormatEntry(e glossary.Entry) Document {
	b := newContentBudget(f.maxChars)

	doc := Document{
		Title:    b.take(e.Term, maxTitleRunes),
		Subtitle: b.take(e.TranslatedTerm, maxTitleRunes),
	}

	sec := Section{ID: sectionID(1, 0), Heading: f.t.T("term.definition"), Level: 2}
	if def := b.take(e.Definition, 0); def != "" {
		sec.Blocks = append(sec.Blocks, Block{Kind: Paragraph, Text: def})
	}
	if category := b.take(e.Category, maxTitleRunes); category != "" {
		sec.Blocks = append(sec.Blocks, Block{Kind: Paragraph, Text: f.t.T("term.category") + ": " + category})
	}
	doc.Sections = []Section{sec}

	f.finish(&doc, b)

	return doc
}

// FormatTopic parses a study text: "#"/"##" lines open level 2 sections, "###" lines level 3,
// "- ", "• ", "* " and numbered lines are bullets, other lines are paragraphs.
// Title, text and glossary share the MaxChars budget in that order.
func (f *Formatter) FormatTopic(title, text string, entries []glossary.Entry) Document {
	b := newContentBudget(f.maxChars)

	title = b.take(strings.TrimSpace(title), maxTitleRunes)
	if title == "" {
		title = DefaultTitle
	}

	doc := Document{
		Title:    title,
		Sections: parseSections(title, b.take(strings.TrimSpace(text), 0)),
	}

	for _, e := range entries {
		term := b.take(e.Term, maxTitleRunes)
		translated := b.take(e.TranslatedTerm, maxTitleRunes)
		definition := b.take(e.Definition, maxDefinitionRunes)
		if term == "" {
			continue
		}

		e.Term, e.TranslatedTerm, e.Definition = term, translated, definition
		doc.Glossary = append(doc.Glossary, e)
	}

	f.finish(&doc, b)

	return doc
}

func (f *Formatter) finish(doc *Document, b *contentBudget) {
	doc.Truncated = b.truncated()
	doc.OriginalChars = b.original
	doc.KeptChars = b.kept
	if doc.Truncated {
		doc.Notice = f.t.T("common.truncated", b.kept, b.original)
	}

	for _, s := range doc.Sections {
		doc.TOC = append(doc.TOC, TOCItem{ID: s.ID, Heading: s.Heading, Level: s.Level})
	}
}

func sectionID(n, m int) string {
	if m == 0 {
		return fmt.Sprintf("sec2_%d", n)
	}

	return fmt.Sprintf("sec3_%d_%d", n, m)
}

func parseSections(title, text string) []Section {
	var (
		sections []Section
		n, m     int
	)

	current := func() *Section {
		if len(sections) == 0 {
			n++
			sections = append(sections, Section{ID: sectionID(n, 0), Heading: title, Level: 2})
		}
		return &sections[len(sections)-1]
	}

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		if heading, level, ok := parseHeading(line); ok {
			if level == 2 || n == 0 {
				n++
				m = 0
				if level == 3 {
					sections = append(sections, Section{ID: sectionID(n, 0), Heading: title, Level: 2})
				}
			}
			if level == 2 {
				sections = append(sections, Section{ID: sectionID(n, 0), Heading: heading, Level: 2})
				continue
			}

			m++
			sections = append(sections, Section{ID: sectionID(n, m), Heading: heading, Level: 3})
			continue
		}

		sec := current()
		if item, ok := parseBullet(line); ok {
			sec.Blocks = append(sec.Blocks, Block{Kind: Bullet, Text: item})
			continue
		}

		sec.Blocks = append(sec.Blocks, Block{Kind: Paragraph, Text: line})
	}

	return sections
}

func parseHeading(line string) (string, int, bool) {
	switch {
	case strings.HasPrefix(line, "### "):
		return strings.TrimSpace(line[4:]), 3, true
	case strings.HasPrefix(line, "## "):
		return strings.TrimSpace(line[3:]), 2, true
	case strings.HasPrefix(line, "# "):
		return strings.TrimSpace(line[2:]), 2, true
	}

	return "", 0, false
}

func parseBullet(line string) (string, bool) {
	for _, p := range bulletPrefixes {
		if strings.HasPrefix(line, p) {
			return strings.TrimSpace(strings.TrimPrefix(line, p)), true
		}
	}

	if loc := numberedRx.FindStringIndex(line); loc != nil {
		return strings.TrimSpace(line[loc[1]:]), true
	}

	return "", false
}
