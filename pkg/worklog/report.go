package worklog

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// Serialization format constants.
const (
	// FormatText is the plain day-grouped listing written to stdout by default.
	FormatText = "text"
	// FormatJSON is machine-readable indented JSON.
	FormatJSON = "json"
	// FormatYAML is machine-readable YAML.
	FormatYAML = "yaml"
	// FormatTable is a terminal summary table with per-day and grand totals.
	FormatTable = "table"
	// FormatPlot is an interactive HTML bar chart.
	FormatPlot = "plot"
)

// ErrUnsupportedFormat indicates the requested output format is not supported.
var ErrUnsupportedFormat = errors.New("unsupported format")

// SupportedFormats returns the canonical output formats.
func SupportedFormats() []string {
	return []string{FormatText, FormatJSON, FormatYAML, FormatTable, FormatPlot}
}

// NormalizeFormat canonicalizes a user-provided output format string.
func NormalizeFormat(format string) string {
	return strings.ToLower(strings.TrimSpace(format))
}

// ValidateFormat checks whether a format is supported, returning the
// canonical spelling.
func ValidateFormat(format string) (string, error) {
	normalized := NormalizeFormat(format)
	for _, candidate := range SupportedFormats() {
		if normalized == candidate {
			return normalized, nil
		}
	}

	return "", fmt.Errorf("%w: %s", ErrUnsupportedFormat, format)
}

// Clock renders minutes as H:M without zero padding.
func Clock(minutes int) string {
	return fmt.Sprintf("%d:%d", minutes/minutesPerHour, minutes%minutesPerHour)
}

// TicketEntry is the logged time for one ticket on one day.
type TicketEntry struct {
	Ticket  string `json:"ticket"  yaml:"ticket"`
	Minutes int    `json:"minutes" yaml:"minutes"`
	Clock   string `json:"clock"   yaml:"clock"`
}

// DayEntry groups the logged time of one calendar day.
type DayEntry struct {
	Date    string        `json:"date"          yaml:"date"`
	Unix    int64         `json:"unix"          yaml:"unix"`
	Minutes int           `json:"total_minutes" yaml:"total_minutes"`
	Tickets []TicketEntry `json:"tickets"       yaml:"tickets"`
}

// ReportStats carries run-level counters into the report.
type ReportStats struct {
	CommitsSeen    int
	CommitsMatched int
}

// Report is the flattened, deterministic report model: days ascending,
// tickets sorted with the no-ticket bucket last.
type Report struct {
	Days           []DayEntry `json:"days"            yaml:"days"`
	TotalMinutes   int        `json:"total_minutes"   yaml:"total_minutes"`
	CommitsSeen    int        `json:"commits_seen"    yaml:"commits_seen"`
	CommitsMatched int        `json:"commits_matched" yaml:"commits_matched"`
}

// BuildReport flattens an aggregate into the report model. The empty-string
// ticket sentinel is substituted with NoTicketLabel here, so every serializer
// sees the final label.
func BuildReport(aggregate Aggregate, stats ReportStats) *Report {
	report := &Report{
		Days:           make([]DayEntry, 0, len(aggregate)),
		CommitsSeen:    stats.CommitsSeen,
		CommitsMatched: stats.CommitsMatched,
	}

	for _, day := range aggregate.Days() {
		entry := DayEntry{
			Date: day.String(),
			Unix: day.Unix(),
		}

		for ticket, minutes := range aggregate[day] {
			label := ticket
			if label == "" {
				label = NoTicketLabel
			}

			entry.Tickets = append(entry.Tickets, TicketEntry{
				Ticket:  label,
				Minutes: minutes,
				Clock:   Clock(minutes),
			})
			entry.Minutes += minutes
		}

		sortTickets(entry.Tickets)

		report.TotalMinutes += entry.Minutes
		report.Days = append(report.Days, entry)
	}

	return report
}

// sortTickets orders entries alphabetically with the no-ticket bucket last.
// Ticket order within a day is not part of the output contract; sorting just
// keeps machine output deterministic.
func sortTickets(tickets []TicketEntry) {
	sort.Slice(tickets, func(i, j int) bool {
		if (tickets[i].Ticket == NoTicketLabel) != (tickets[j].Ticket == NoTicketLabel) {
			return tickets[j].Ticket == NoTicketLabel
		}

		return tickets[i].Ticket < tickets[j].Ticket
	})
}

// Serialize writes the report in the requested format.
func (r *Report) Serialize(format string, writer io.Writer) error {
	switch NormalizeFormat(format) {
	case FormatText:
		return r.writeText(writer)
	case FormatJSON:
		encoder := json.NewEncoder(writer)
		encoder.SetIndent("", "  ")

		err := encoder.Encode(r)
		if err != nil {
			return fmt.Errorf("json encode: %w", err)
		}

		return nil
	case FormatYAML:
		err := yaml.NewEncoder(writer).Encode(r)
		if err != nil {
			return fmt.Errorf("yaml encode: %w", err)
		}

		return nil
	case FormatTable:
		return r.writeTable(writer)
	case FormatPlot:
		return r.writePlot(writer)
	default:
		return fmt.Errorf("%w: %s", ErrUnsupportedFormat, format)
	}
}

// writeText renders the day-grouped listing: a DD.MM.YYYY header underlined
// with "=" of the same length, then "TICKET: H:M" per ticket.
func (r *Report) writeText(writer io.Writer) error {
	for _, day := range r.Days {
		_, err := fmt.Fprintf(writer, "%s\n%s\n", day.Date, strings.Repeat("=", len(day.Date)))
		if err != nil {
			return fmt.Errorf("write day header: %w", err)
		}

		for _, ticket := range day.Tickets {
			_, err = fmt.Fprintf(writer, "%s: %s\n", ticket.Ticket, ticket.Clock)
			if err != nil {
				return fmt.Errorf("write ticket line: %w", err)
			}
		}
	}

	return nil
}
