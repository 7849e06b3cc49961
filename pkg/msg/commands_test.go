package msg

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseCommand(t *testing.T) {
	cases := []struct {
		in  string
		cmd Command
		arg string
	}{
		{in: "/term edema", cmd: CommandTerm, arg: "edema"},
		{in: "  /T@MedBot   odds ratio ", cmd: CommandTerm, arg: "odds ratio"},
		{in: "/define bias", cmd: CommandTerm, arg: "bias"},
		{in: "/studypdf Title\nline one", cmd: CommandStudyPDF, arg: "Title\nline one"},
		{in: "/web edema", cmd: CommandPublish, arg: "edema"},
		{in: "/stats", cmd: CommandStats, arg: ""},
		{in: "/setterm Edema | تورم", cmd: CommandAddTerm, arg: "Edema | تورم"},
		{in: "/nope x", cmd: CommandUnknown, arg: "x"},
		{in: " incidence and prevalence ", cmd: CommandNone, arg: "incidence and prevalence"},
	}

	for _, c := range cases {
		cmd, arg := ParseCommand(c.in)
		assert.Equal(t, c.cmd, cmd, c.in)
		assert.Equal(t, c.arg, arg, c.in)
	}
}

func TestCommandNames(t *testing.T) {
	assert.Equal(t, "/term", CommandTerm.Usage())
	assert.Equal(t, "text", CommandNone.String())
	assert.Equal(t, "unknown", CommandUnknown.String())
	assert.True(t, IsCommand(" /help"))
	assert.False(t, IsCommand("help"))
}
