package telegraph

import (
	"encoding/json"
	"strings"
	"testing"
	"unicode/utf8"

	"medStudyBot/pkg/document"
	"medStudyBot/pkg/glossary"
	"medStudyBot/pkg/i18n"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNodes(t *testing.T) {
	doc := document.Document{
		Title:    "Study",
		Subtitle: "دراسة",
		Notice:   "truncated",
		Sections: []document.Section{
			{ID: "sec2_1", Heading: "Designs", Level: 2, Blocks: []document.Block{
				{Kind: document.Paragraph, Text: "<b>Cohort</b> & case-control"},
				{Kind: document.Bullet, Text: "one"},
				{Kind: document.Bullet, Text: "two"},
				{Kind: document.Paragraph, Text: "<script></script>"},
			}},
			{ID: "sec3_1_1", Heading: "Detail", Level: 3},
		},
		Glossary: []glossary.Entry{glossary.NewEntry("Bias", "انحياز", "error")},
	}

	raw, err := json.Marshal(Nodes(doc))
	require.NoError(t, err)

	assert.JSONEq(t, `[
		{"tag":"p","children":[{"tag":"em","children":["دراسة"]}]},
		{"tag":"blockquote","children":["truncated"]},
		{"tag":"h3","children":["Designs"]},
		{"tag":"p","children":["Cohort & case-control"]},
		{"tag":"ul","children":[{"tag":"li","children":["one"]},{"tag":"li","children":["two"]}]},
		{"tag":"h4","children":["Detail"]},
		{"tag":"h3","children":["📚 المصطلحات الطبية"]},
		{"tag":"p","children":["• Bias — انحياز: error"]}
	]`, string(raw))
}

func textRunes(nodes []interface{}) int {
	total := 0
	for _, n := range nodes {
		switch v := n.(type) {
		case string:
			total += utf8.RuneCountInString(v)
		case *Node:
			total += textRunes(v.Children)
		}
	}

	return total
}

func TestNodesStayWithinLimit(t *testing.T) {
	tr, err := i18n.NewTranslator(i18n.LocalesFS, "en")
	require.NoError(t, err)
	f := document.NewFormatter(100, tr)

	long := strings.Repeat("d", 4499)

	entryNodes := Nodes(f.FormatEntry(glossary.NewEntry("Edema", "تورم", long)))
	raw, err := json.Marshal(entryNodes)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), strings.Repeat("d", 92))
	assert.Less(t, len(raw), 1000)

	topic := f.FormatTopic("Notes", "Edema again.", []glossary.Entry{glossary.NewEntry("Edema", "تورم", long)})
	topicNodes := Nodes(topic)
	raw, err = json.Marshal(topicNodes)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), strings.Repeat("d", 75))

	// headings, notice and glossary decoration come on top of the content
	overhead := utf8.RuneCountInString(topic.Notice + glossaryHeading + topic.Sections[0].Heading + "• " + " — " + ": ")
	assert.LessOrEqual(t, textRunes(topicNodes), 100+overhead)
}
