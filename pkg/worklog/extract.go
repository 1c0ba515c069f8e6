package worklog

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	jiraLinePattern = regexp.MustCompile(`(?i)^\s*([\w-]+):(?:\s*(\d+)h)?\s+(\d{2})m`)
	hashLinePattern = regexp.MustCompile(`^#time (.*)$`)
)

// Command is a single time command extracted from a commit message.
type Command struct {
	Ticket  string // Empty when no ticket identifier was found.
	Minutes int
}

// ExtractCommands scans a stripped commit message for time commands.
//
// The Jira-style dialect is tried first: every line of the shape
// "IDENT: [Nh ]MMm" contributes one command. When at least one line matched,
// the hash-style dialect is not consulted at all for this message.
//
// The hash-style dialect matches lines beginning (after stripping) with
// "#time "; the remainder of the line is fed to ParseDuration. All such
// commands share the message's ticket: the text before the first ":" on the
// first line, or none when the first line has no colon.
func ExtractCommands(message string) []Command {
	if commands := extractJiraStyle(message); len(commands) > 0 {
		return commands
	}

	return extractHashStyle(message)
}

func extractJiraStyle(message string) []Command {
	var commands []Command

	for _, line := range strings.Split(message, "\n") {
		m := jiraLinePattern.FindStringSubmatch(line)
		if m == nil {
			continue
		}

		minutes, _ := strconv.Atoi(m[3])
		if m[2] != "" {
			hours, _ := strconv.Atoi(m[2])
			minutes += hours * minutesPerHour
		}

		commands = append(commands, Command{Ticket: m[1], Minutes: minutes})
	}

	return commands
}

func extractHashStyle(message string) []Command {
	lines := strings.Split(message, "\n")
	ticket := ticketFromFirstLine(lines[0])

	var commands []Command

	for _, line := range lines {
		m := hashLinePattern.FindStringSubmatch(strings.TrimSpace(line))
		if m == nil {
			continue
		}

		commands = append(commands, Command{Ticket: ticket, Minutes: ParseDuration(m[1])})
	}

	return commands
}

// ticketFromFirstLine resolves the hash-style ticket identifier: the text
// before the first colon on the message's first line.
func ticketFromFirstLine(first string) string {
	idx := strings.Index(first, ":")
	if idx < 0 {
		return ""
	}

	return first[:idx]
}
