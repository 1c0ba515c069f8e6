package worklog

import (
	"fmt"
	"io"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
)

var (
	dayCellColor    = color.New(color.FgCyan, color.Bold)
	totalsCellColor = color.New(color.FgGreen)
)

// writeTable renders a terminal summary table with per-day subtotals and a
// grand total footer. Colors honor the global fatih/color switch, which the
// CLI wires to --no-color and NO_COLOR.
func (r *Report) writeTable(writer io.Writer) error {
	tbl := table.NewWriter()
	tbl.SetOutputMirror(writer)
	tbl.SetStyle(table.StyleLight)
	tbl.Style().Options.SeparateRows = false

	tbl.AppendHeader(table.Row{"Day", "Ticket", "Clock", "Minutes"})

	for _, day := range r.Days {
		for i, ticket := range day.Tickets {
			date := ""
			if i == 0 {
				date = dayCellColor.Sprint(day.Date)
			}

			tbl.AppendRow(table.Row{date, ticket.Ticket, ticket.Clock, ticket.Minutes})
		}

		if len(day.Tickets) > 1 {
			tbl.AppendRow(table.Row{
				"",
				totalsCellColor.Sprint("day total"),
				totalsCellColor.Sprint(Clock(day.Minutes)),
				totalsCellColor.Sprint(humanize.Comma(int64(day.Minutes))),
			})
		}
	}

	tbl.AppendFooter(table.Row{
		"Total",
		fmt.Sprintf("%d/%d commits", r.CommitsMatched, r.CommitsSeen),
		Clock(r.TotalMinutes),
		humanize.Comma(int64(r.TotalMinutes)),
	})

	tbl.Render()

	return nil
}
