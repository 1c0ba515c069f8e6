package worklog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractCommands_JiraStyleSingleLine(t *testing.T) {
	t.Parallel()

	commands := ExtractCommands("FOO-1: 1h 15m")

	require.Len(t, commands, 1)
	assert.Equal(t, Command{Ticket: "FOO-1", Minutes: 75}, commands[0])
}

func TestExtractCommands_JiraStyleMultiLine(t *testing.T) {
	t.Parallel()

	commands := ExtractCommands("FOO-1: 1h 30m\nBAR-2: 45m")

	require.Len(t, commands, 2)
	assert.Equal(t, Command{Ticket: "FOO-1", Minutes: 90}, commands[0])
	assert.Equal(t, Command{Ticket: "BAR-2", Minutes: 45}, commands[1])
}

func TestExtractCommands_JiraStyleMinutesWithoutHours(t *testing.T) {
	t.Parallel()

	commands := ExtractCommands("BAR-2: 45m")

	require.Len(t, commands, 1)
	assert.Equal(t, Command{Ticket: "BAR-2", Minutes: 45}, commands[0])
}

func TestExtractCommands_JiraStyleLeadingWhitespace(t *testing.T) {
	t.Parallel()

	commands := ExtractCommands("Fix the widget\n  FOO-9: 2h 00m")

	require.Len(t, commands, 1)
	assert.Equal(t, Command{Ticket: "FOO-9", Minutes: 120}, commands[0])
}

func TestExtractCommands_JiraStyleWinsOverHashStyle(t *testing.T) {
	t.Parallel()

	// One Jira-style line anywhere in the message disables the hash-style
	// dialect for the whole commit.
	commands := ExtractCommands("FOO-1: 1h 30m\n#time 2:00")

	require.Len(t, commands, 1)
	assert.Equal(t, Command{Ticket: "FOO-1", Minutes: 90}, commands[0])
}

func TestExtractCommands_HashStyleWithTicket(t *testing.T) {
	t.Parallel()

	commands := ExtractCommands("FOO-23: Fix stuff\n\n#time 0:15")

	require.Len(t, commands, 1)
	assert.Equal(t, Command{Ticket: "FOO-23", Minutes: 15}, commands[0])
}

func TestExtractCommands_HashStyleWithoutTicket(t *testing.T) {
	t.Parallel()

	commands := ExtractCommands("Fix stuff\n#time 1h 00m")

	require.Len(t, commands, 1)
	assert.Equal(t, Command{Ticket: "", Minutes: 60}, commands[0])
}

func TestExtractCommands_HashStyleMultipleLinesShareTicket(t *testing.T) {
	t.Parallel()

	commands := ExtractCommands("FOO-7: Fix stuff\n\n#time 0:30\n#time 1h 00m")

	require.Len(t, commands, 2)
	assert.Equal(t, Command{Ticket: "FOO-7", Minutes: 30}, commands[0])
	assert.Equal(t, Command{Ticket: "FOO-7", Minutes: 60}, commands[1])
}

func TestExtractCommands_HashStyleIndentedLine(t *testing.T) {
	t.Parallel()

	// Lines are stripped before the prefix check.
	commands := ExtractCommands("Fix stuff\n   #time 0:45")

	require.Len(t, commands, 1)
	assert.Equal(t, Command{Ticket: "", Minutes: 45}, commands[0])
}

func TestExtractCommands_HashStyleUnparseableFragment(t *testing.T) {
	t.Parallel()

	// An unparseable fragment still yields a command, with zero minutes.
	commands := ExtractCommands("Fix stuff\n#time ages")

	require.Len(t, commands, 1)
	assert.Equal(t, Command{Ticket: "", Minutes: 0}, commands[0])
}

func TestExtractCommands_NoCommands(t *testing.T) {
	t.Parallel()

	assert.Empty(t, ExtractCommands("Refactor parser for better error messages"))
	assert.Empty(t, ExtractCommands(""))
	assert.Empty(t, ExtractCommands("#time"))
}

func TestTicketFromFirstLine(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "FOO-23", ticketFromFirstLine("FOO-23: Fix stuff"))
	assert.Equal(t, "", ticketFromFirstLine("no colon here"))
	assert.Equal(t, "a", ticketFromFirstLine("a:b:c"))
}
