package telegram

import (
	"bytes"
	"context"
	"html"
	"strings"
	"unicode/utf8"

	"medStudyBot/pkg/msg"
	"medStudyBot/pkg/utils"

	"github.com/microcosm-cc/bluemonday"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"gopkg.in/telebot.v3"
)

const (
	maxMessageRunes = 4000
	maxCaptionRunes = 1024
)

var plainPolicy = bluemonday.StrictPolicy()

// htmlToPlain drops markup and entities so a long HTML reply can be cut at any rune.
func htmlToPlain(text string) string {
	return html.UnescapeString(plainPolicy.Sanitize(text))
}

type sendFunc func(to telebot.Recipient, what interface{}, opts ...interface{}) (*telebot.Message, error)

type responseSender struct {
	send sendFunc
}

func parseMode(resp *msg.Response) telebot.ParseMode {
	switch resp.Options.GetFormat() {
	case msg.OutputFormatMarkdown1:
		return telebot.ModeMarkdown
	case msg.OutputFormatMarkdown2:
		return telebot.ModeMarkdownV2
	case msg.OutputFormatHTML:
		return telebot.ModeHTML
	default:
		return telebot.ModeDefault
	}
}

func linkMarkup(resp *msg.Response) *telebot.ReplyMarkup {
	buttons := resp.Options.GetLinkButtons()
	if len(buttons) == 0 {
		return nil
	}

	m := &telebot.ReplyMarkup{}
	rows := make([]telebot.Row, 0, len(buttons))
	for _, b := range buttons {
		rows = append(rows, m.Row(m.URL(b.Text, b.Link)))
	}
	m.Inline(rows...)

	return m
}

func (s *responseSender) Send(ctx context.Context, to telebot.Recipient, resp *msg.Response) error {
	log := logrus.WithContext(ctx)

	if resp == nil || (resp.Message == "" && resp.Document == nil) {
		log.Info("response message is empty, will send nothing to the sender")
		return nil
	}

	text := resp.Message
	if resp.Type == msg.Error {
		text = "❗" + text
	}

	opts := &telebot.SendOptions{
		ParseMode:   parseMode(resp),
		ReplyMarkup: linkMarkup(resp),
	}

	if resp.Document != nil {
		doc := &telebot.Document{
			File:     telebot.FromReader(bytes.NewReader(resp.Document.Data)),
			FileName: resp.Document.FileName,
			MIME:     resp.Document.MIME,
			Caption:  utils.Shorten(text, maxCaptionRunes),
		}

		if _, err := s.send(to, doc, opts); err != nil {
			return errors.Wrapf(err, "failed to send document %q", resp.Document.FileName)
		}
		log.Debugf("sent document %q of %d bytes", resp.Document.FileName, len(resp.Document.Data))

		return nil
	}

	mode := opts.ParseMode
	if mode == telebot.ModeHTML && utf8.RuneCountInString(text) > maxMessageRunes {
		text = htmlToPlain(text)
		mode = telebot.ModeDefault
	}

	chunks := splitMessage(text, maxMessageRunes)
	for i, chunk := range chunks {
		chunkOpts := &telebot.SendOptions{ParseMode: mode}
		if i == len(chunks)-1 {
			chunkOpts.ReplyMarkup = opts.ReplyMarkup
		}

		if _, err := s.send(to, chunk, chunkOpts); err != nil {
			return errors.Wrapf(err, "failed to send message chunk %d of %d", i+1, len(chunks))
		}
	}

	return nil
}

// splitMessage cuts text into chunks of at most maxRunes, preferring line breaks in the last two thirds of a chunk.
func splitMessage(text string, maxRunes int) []string {
	runes := []rune(text)
	if len(runes) <= maxRunes {
		return []string{text}
	}

	var chunks []string
	for len(runes) > 0 {
		if len(runes) <= maxRunes {
			chunks = append(chunks, string(runes))
			break
		}

		cut := maxRunes
		if idx := lastIndexRune(runes[:maxRunes], '\n'); idx > maxRunes/3 {
			cut = idx
		}

		chunks = append(chunks, strings.TrimSpace(string(runes[:cut])))
		runes = []rune(strings.TrimSpace(string(runes[cut:])))
	}

	return chunks
}

func lastIndexRune(runes []rune, r rune) int {
	for i := len(runes) - 1; i >= 0; i-- {
		if runes[i] == r {
			return i
		}
	}

	return -1
}
