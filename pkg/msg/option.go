package msg

type OutputFormat uint

const (
	OutputFormatUndefined OutputFormat = iota
	OutputFormatMarkdown1
	OutputFormatMarkdown2
	OutputFormatHTML
)

type LinkButton struct {
	Text string
	Link string
}

type Options struct {
	OutputFormat OutputFormat
	LinkButtons  []LinkButton
}

func (o *Options) WithFormat(f OutputFormat) *Options {
	o.OutputFormat = f

	return o
}

func (o *Options) WithLinkButton(text, link string) *Options {
	o.LinkButtons = append(o.LinkButtons, LinkButton{Text: text, Link: link})

	return o
}

func (o *Options) GetFormat() OutputFormat {
	if o == nil {
		return OutputFormatUndefined
	}

	return o.OutputFormat
}

func (o *Options) GetLinkButtons() []LinkButton {
	if o == nil {
		return nil
	}

	return o.LinkButtons
}
