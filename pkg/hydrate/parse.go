package hydrate

import (
	"bufio"
	"bytes"
	"encoding/json"
	"path"
	"strings"

	"medStudyBot/pkg/glossary"
	"medStudyBot/pkg/utils"

	"github.com/pkg/errors"
)

var (
	termFields        = []string{"term", "english", "en"}
	translationFields = []string{"arabic", "ar", "translated_term", "translated"}
	definitionFields  = []string{"definition", "def"}
	categoryFields    = []string{"category"}
)

// Parse reads a JSON array of objects or a plain word list, one term per line.
// JSON is detected by a .json extension or a leading '[' or '{'.
func Parse(name string, data []byte) ([]glossary.Entry, error) {
	data = bytes.TrimPrefix(data, []byte("\xef\xbb\xbf"))
	trimmed := bytes.TrimSpace(data)

	isJSON := strings.EqualFold(path.Ext(stripQuery(name)), ".json") ||
		bytes.HasPrefix(trimmed, []byte("[")) ||
		bytes.HasPrefix(trimmed, []byte("{"))

	if isJSON {
		return parseJSON(name, trimmed)
	}

	return parseWordlist(name, data)
}

func stripQuery(name string) string {
	if i := strings.IndexAny(name, "?#"); i >= 0 {
		return name[:i]
	}

	return name
}

func parseJSON(name string, data []byte) ([]glossary.Entry, error) {
	var rows []map[string]interface{}

	if bytes.HasPrefix(data, []byte("{")) {
		var wrapped struct {
			Entries []map[string]interface{} `json:"entries"`
		}
		if err := json.Unmarshal(data, &wrapped); err != nil {
			return nil, errors.Wrapf(err, "failed to parse json source %q", name)
		}
		rows = wrapped.Entries
	} else if err := json.Unmarshal(data, &rows); err != nil {
		return nil, errors.Wrapf(err, "failed to parse json source %q", name)
	}

	res := make([]glossary.Entry, 0, len(rows))
	for _, row := range rows {
		res = append(res, glossary.Entry{
			Term:           utils.FirstStr(row, termFields...),
			TranslatedTerm: utils.FirstStr(row, translationFields...),
			Definition:     utils.FirstStr(row, definitionFields...),
			Category:       utils.FirstStr(row, categoryFields...),
			Source:         name,
		})
	}

	return res, nil
}

func parseWordlist(name string, data []byte) ([]glossary.Entry, error) {
	var res []glossary.Entry

	sc := bufio.NewScanner(bytes.NewReader(data))
	sc.Buffer(make([]byte, 64*1024), 1024*1024)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		res = append(res, glossary.Entry{Term: line, Source: name})
	}

	if err := sc.Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to read word list %q", name)
	}

	return res, nil
}
