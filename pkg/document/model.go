package document

import "medStudyBot/pkg/glossary"

type BlockKind uint

const (
	Paragraph BlockKind = iota
	Bullet
)

type Block struct {
	Kind BlockKind
	Text string
}

type Section struct {
	ID      string
	Heading string
	Level   int
	Blocks  []Block
}

type TOCItem struct {
	ID      string
	Heading string
	Level   int
}

// Document is the renderable form of a glossary entry or a study topic.
type Document struct {
	Title    string
	Subtitle string
	Sections []Section
	Glossary []glossary.Entry
	TOC      []TOCItem

	Truncated     bool
	OriginalChars int
	KeptChars     int
	// Notice is set for truncated documents and shown to the reader.
	Notice string
}

// Artifact is a rendered file ready to be sent.
type Artifact struct {
	Name string
	MIME string
	Data []byte
}
