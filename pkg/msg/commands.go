package msg

import (
	"strings"
)

const CommandPrefix = "/"

type Command uint

const (
	CommandNone Command = iota
	CommandUnknown
	CommandStart
	CommandHelp
	CommandTerm
	CommandTerms
	CommandPDF
	CommandStudyPDF
	CommandPublish
	CommandMyID
	CommandHealth
	CommandStats
	CommandAddTerm
)

type commandSpec struct {
	name    string
	aliases []string
}

var commandTable = map[Command]commandSpec{
	CommandStart:    {name: "start"},
	CommandHelp:     {name: "help"},
	CommandTerm:     {name: "term", aliases: []string{"t", "define"}},
	CommandTerms:    {name: "terms", aliases: []string{"detect"}},
	CommandPDF:      {name: "pdf"},
	CommandStudyPDF: {name: "studypdf", aliases: []string{"study"}},
	CommandPublish:  {name: "publish", aliases: []string{"web"}},
	CommandMyID:     {name: "myid"},
	CommandHealth:   {name: "health"},
	CommandStats:    {name: "stats"},
	CommandAddTerm:  {name: "addterm", aliases: []string{"setterm"}},
}

var commandsByWord = func() map[string]Command {
	res := make(map[string]Command)
	for cmd, spec := range commandTable {
		res[spec.name] = cmd
		for _, alias := range spec.aliases {
			res[alias] = cmd
		}
	}

	return res
}()

func (c Command) String() string {
	switch c {
	case CommandNone:
		return "text"
	case CommandUnknown:
		return "unknown"
	}

	return commandTable[c].name
}

// Usage returns the command as the user types it, e.g. "/term".
func (c Command) Usage() string {
	return CommandPrefix + c.String()
}

func IsCommand(msg string) bool {
	return strings.HasPrefix(strings.TrimSpace(msg), CommandPrefix)
}

// ParseCommand splits "/term@SomeBot edema" into CommandTerm and "edema".
// Plain text yields CommandNone and the trimmed text.
func ParseCommand(msg string) (Command, string) {
	msg = strings.TrimSpace(msg)
	if !IsCommand(msg) {
		return CommandNone, msg
	}

	word, arg := msg, ""
	if i := strings.IndexAny(msg, " \t\n"); i >= 0 {
		word, arg = msg[:i], strings.TrimSpace(msg[i+1:])
	}

	word = strings.TrimPrefix(word, CommandPrefix)
	if at := strings.Index(word, "@"); at >= 0 {
		word = word[:at]
	}

	cmd, ok := commandsByWord[strings.ToLower(word)]
	if !ok {
		return CommandUnknown, arg
	}

	return cmd, arg
}
