package study

import (
	"context"
	"strings"

	"medStudyBot/pkg/document"
	"medStudyBot/pkg/errs"
	"medStudyBot/pkg/glossary"
	"medStudyBot/pkg/help"
	"medStudyBot/pkg/i18n"
	"medStudyBot/pkg/msg"
	"medStudyBot/pkg/telegraph"
	"medStudyBot/pkg/utils"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

const maxErrorReason = 200

type Renderer interface {
	Render(ctx context.Context, doc document.Document) (*document.Artifact, error)
}

type Publisher interface {
	Publish(ctx context.Context, doc document.Document) (*telegraph.Page, error)
}

// Deps are shared by the document handlers.
type Deps struct {
	Store     glossary.Store
	Formatter *document.Formatter
	Renderer  Renderer
	Publisher Publisher
	T         i18n.Localizer
}

// splitTopic takes the first line as title and the rest as text. A single line is the text itself.
func splitTopic(arg string) (title, text string) {
	arg = strings.TrimSpace(arg)

	first, rest, found := strings.Cut(arg, "\n")
	if !found || strings.TrimSpace(rest) == "" {
		return document.DefaultTitle, arg
	}

	return strings.TrimSpace(first), strings.TrimSpace(rest)
}

func withNotice(text string, doc document.Document) string {
	if doc.Truncated {
		return text + "\n" + doc.Notice
	}

	return text
}

func (d *Deps) topicDocument(ctx context.Context, title, text string) document.Document {
	clamped := document.Clamp(text, d.Formatter.MaxChars())

	entries, err := glossary.FindInText(ctx, d.Store, clamped.Text, glossary.DefaultFindLimit)
	if err != nil {
		logrus.WithContext(ctx).Warnf("continuing without glossary: %v", err)
	}

	return d.Formatter.FormatTopic(title, text, entries)
}

func (d *Deps) renderFailed(err error) (*msg.Response, error) {
	return msg.NewErrorResponse(d.T.T("render.failed")), err
}

type PDFHandler struct {
	*Deps
}

func (h *PDFHandler) GetHelp(context.Context, *msg.Request) help.Result {
	return help.Result{Text: h.T.T("help.pdf")}
}

func (h *PDFHandler) Handle(ctx context.Context, req *msg.Request) (*msg.Response, error) {
	term := req.Arg()
	if glossary.NormalizeTerm(term) == "" {
		return msg.NewSuccessResponse(h.T.T("pdf.usage")), nil
	}

	entry, err := h.Store.Get(ctx, term)
	if err != nil {
		return msg.NewErrorResponse(h.T.T("common.storage_failed")), err
	}
	if entry == nil {
		return msg.NewSuccessResponse(h.T.T("term.not_found", term)), nil
	}

	doc := h.Formatter.FormatEntry(*entry)

	art, err := h.Renderer.Render(ctx, doc)
	if err != nil {
		return h.renderFailed(err)
	}

	return documentResponse(withNotice(h.T.T("pdf.caption", entry.Term), doc), art), nil
}

type StudyPDFHandler struct {
	*Deps
}

func (h *StudyPDFHandler) GetHelp(context.Context, *msg.Request) help.Result {
	return help.Result{Text: h.T.T("help.studypdf")}
}

func (h *StudyPDFHandler) Handle(ctx context.Context, req *msg.Request) (*msg.Response, error) {
	title, text := splitTopic(req.Arg())
	if text == "" {
		return msg.NewSuccessResponse(h.T.T("studypdf.usage")), nil
	}

	doc := h.topicDocument(ctx, title, text)

	art, err := h.Renderer.Render(ctx, doc)
	if err != nil {
		return h.renderFailed(err)
	}

	return documentResponse(withNotice(h.T.T("studypdf.caption", doc.Title), doc), art), nil
}

func documentResponse(caption string, art *document.Artifact) *msg.Response {
	return &msg.Response{
		Message: caption,
		Type:    msg.Success,
		Document: &msg.Attachment{
			FileName: art.Name,
			MIME:     art.MIME,
			Data:     art.Data,
		},
	}
}

// PublishHandler publishes a glossary entry (single line) or a study topic (title and text) to Telegraph.
type PublishHandler struct {
	*Deps
}

func (h *PublishHandler) GetHelp(context.Context, *msg.Request) help.Result {
	return help.Result{Text: h.T.T("help.publish")}
}

func (h *PublishHandler) Handle(ctx context.Context, req *msg.Request) (*msg.Response, error) {
	arg := strings.TrimSpace(req.Arg())
	if arg == "" {
		return msg.NewSuccessResponse(h.T.T("publish.usage")), nil
	}

	var doc document.Document
	if !strings.Contains(arg, "\n") {
		entry, err := h.Store.Get(ctx, arg)
		if err != nil {
			return msg.NewErrorResponse(h.T.T("common.storage_failed")), err
		}
		if entry == nil {
			return msg.NewSuccessResponse(h.T.T("term.not_found", arg)), nil
		}
		doc = h.Formatter.FormatEntry(*entry)
	} else {
		title, text := splitTopicStrict(arg)
		doc = h.topicDocument(ctx, title, text)
	}

	page, err := h.Publisher.Publish(ctx, doc)
	if err != nil {
		return h.publishFailed(err)
	}

	opts := (&msg.Options{}).WithLinkButton(h.T.T("publish.button"), page.URL)

	return &msg.Response{
		Message: withNotice(h.T.T("publish.done", page.URL), doc),
		Type:    msg.Success,
		Options: opts,
	}, nil
}

func splitTopicStrict(arg string) (string, string) {
	first, rest, _ := strings.Cut(arg, "\n")

	return strings.TrimSpace(first), strings.TrimSpace(rest)
}

func (h *PublishHandler) publishFailed(err error) (*msg.Response, error) {
	switch {
	case errors.Is(err, telegraph.ErrNotConfigured):
		return msg.NewErrorResponse(h.T.T("publish.not_configured")), nil
	case errs.IsPermanent(err):
		reason := utils.Shorten(errors.Cause(err).Error(), maxErrorReason)
		return msg.NewErrorResponse(h.T.T("publish.failed", reason)), err
	default:
		return msg.NewErrorResponse(h.T.T("publish.unavailable")), err
	}
}
