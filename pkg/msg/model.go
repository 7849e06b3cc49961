package msg

import (
	"fmt"
)

type Sender struct {
	ID        string
	UserID    int64
	FirstName string
	LastName  string
}

func (s *Sender) GetID() string {
	if s == nil {
		return ""
	}

	if s.ID == "" && s.UserID != 0 {
		return fmt.Sprint(s.UserID)
	}

	return s.ID
}

func (s *Sender) GetUserID() int64 {
	if s == nil {
		return 0
	}

	return s.UserID
}

type Request struct {
	Platform string
	ID       string
	ChatID   int64
	Sender   *Sender
	Message  string
	Meta     map[string]interface{}
}

// Arg returns the text after the command word, or the whole message for plain text.
func (r *Request) Arg() string {
	_, arg := ParseCommand(r.Message)

	return arg
}

type Type uint

const (
	Undefined Type = iota
	Success
	Error
)

// Attachment is a binary file sent together with the response text.
type Attachment struct {
	FileName string
	MIME     string
	Data     []byte
}

type Response struct {
	Message  string
	Type     Type
	Options  *Options
	Document *Attachment
}

func NewSuccessResponse(text string) *Response {
	return &Response{Message: text, Type: Success}
}

func NewErrorResponse(text string) *Response {
	return &Response{Message: text, Type: Error}
}

func NewHTMLResponse(html string) *Response {
	return &Response{
		Message: html,
		Type:    Success,
		Options: (&Options{}).WithFormat(OutputFormatHTML),
	}
}
