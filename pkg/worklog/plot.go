package worklog

import (
	"fmt"
	"io"
	"sort"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
)

const (
	plotStackName = "total"
	fullZoomPct   = 100
)

// writePlot renders an interactive HTML page with one stacked bar per day
// and one series per ticket, minutes on the y axis.
func (r *Report) writePlot(writer io.Writer) error {
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title:    "Logged Time",
			Subtitle: "Minutes per ticket per day",
			Left:     "2%",
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithLegendOpts(opts.Legend{
			Show: opts.Bool(true),
			Type: "scroll",
			Top:  "5px",
			Left: "40%",
		}),
		charts.WithDataZoomOpts(opts.DataZoom{Type: "slider", Start: 0, End: fullZoomPct}, opts.DataZoom{Type: "inside"}),
		charts.WithXAxisOpts(opts.XAxis{Name: "Day"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "Minutes"}),
	)

	xLabels := make([]string, len(r.Days))
	for i, day := range r.Days {
		xLabels[i] = day.Date
	}

	bar.SetXAxis(xLabels)

	for _, ticket := range r.ticketLabels() {
		data := make([]opts.BarData, len(r.Days))

		for i, day := range r.Days {
			value := 0

			for _, entry := range day.Tickets {
				if entry.Ticket == ticket {
					value = entry.Minutes

					break
				}
			}

			data[i] = opts.BarData{Value: value}
		}

		bar.AddSeries(ticket, data, charts.WithBarChartOpts(opts.BarChart{Stack: plotStackName}))
	}

	err := bar.Render(writer)
	if err != nil {
		return fmt.Errorf("render chart: %w", err)
	}

	return nil
}

// ticketLabels collects the distinct ticket labels across all days, sorted.
func (r *Report) ticketLabels() []string {
	seen := make(map[string]bool)

	var labels []string

	for _, day := range r.Days {
		for _, entry := range day.Tickets {
			if !seen[entry.Ticket] {
				seen[entry.Ticket] = true

				labels = append(labels, entry.Ticket)
			}
		}
	}

	sort.Strings(labels)

	return labels
}
