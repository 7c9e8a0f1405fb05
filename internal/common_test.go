package internal

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanonicalize(t *testing.T) {
	assert.Equal(t, "a\r\nb\r\nc", Canonicalize("a\nb\r\nc"))
	assert.Equal(t, "", Canonicalize(""))
	assert.Equal(t, "\r\n\r\n", Canonicalize("\n\n"))
}

func TestTrimEachLine(t *testing.T) {
	assert.Equal(t, "a\nb\nc", TrimEachLine("a  \nb\t\nc"))
	assert.Equal(t, "a\nb", TrimEachLine("a \r\nb"))
}

func TestDashEscape(t *testing.T) {
	escaped := DashEscape("plain\n-dash\n--double\nFrom the mailer\nFromage")
	assert.Equal(t, "plain\n- -dash\n- --double\n- From the mailer\nFromage", escaped)
}

func TestDashUnescape(t *testing.T) {
	unescaped := DashUnescape("plain\n- -dash\n- From the mailer\n-untouched")
	assert.Equal(t, "plain\n-dash\nFrom the mailer\n-untouched", unescaped)
}

func TestDashEscapeRoundTrip(t *testing.T) {
	bodies := []string{
		"simple body",
		"-starts with dash\nmiddle\n-----almost a marker",
		"From here\nto there",
		"",
	}
	for _, body := range bodies {
		assert.Equal(t, body, DashUnescape(DashEscape(body)))
	}
}
