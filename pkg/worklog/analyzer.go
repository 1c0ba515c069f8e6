package worklog

import (
	"strings"

	"github.com/Sumatoshi-tech/timefang/pkg/gitlib"
)

// CommitLike is the subset of a commit the worklog analyzer reads.
// Real commits come from gitlib; tests use in-memory fakes.
type CommitLike interface {
	Hash() string
	Message() string
	Author() gitlib.Signature
}

// Context provides information about the current commit being consumed.
type Context struct {
	Commit CommitLike
	Index  int
}

// Analyzer extracts time commands from commit messages and folds them into a
// day x ticket aggregate. The aggregate is the only mutable state and is
// built fresh per run.
type Analyzer struct {
	aggregate Aggregate
	commits   int
	matched   int
}

// NewAnalyzer creates an initialized worklog analyzer.
func NewAnalyzer() *Analyzer {
	analyzer := &Analyzer{}
	_ = analyzer.Initialize(nil)

	return analyzer
}

// Name returns the analyzer identifier.
func (a *Analyzer) Name() string {
	return "worklog"
}

// Description returns a human-readable description of the analyzer.
func (a *Analyzer) Description() string {
	return "Aggregates time-tracking commands from commit messages per day and ticket."
}

// Initialize prepares the analyzer for a fresh run. The repository handle is
// unused: the analyzer only ever reads the commits it is fed.
func (a *Analyzer) Initialize(_ *gitlib.Repository) error {
	a.aggregate = NewAggregate()
	a.commits = 0
	a.matched = 0

	return nil
}

// Consume processes a single commit. Commits whose message contains no time
// command contribute nothing.
func (a *Analyzer) Consume(ctx *Context) error {
	a.commits++

	commands := ExtractCommands(strings.TrimSpace(ctx.Commit.Message()))
	if len(commands) == 0 {
		return nil
	}

	a.matched++
	day := DayOf(ctx.Commit.Author().When.Unix())

	for _, command := range commands {
		a.aggregate.Add(Observation{
			Ticket:  command.Ticket,
			Day:     day,
			Minutes: command.Minutes,
		})
	}

	return nil
}

// Aggregate exposes the accumulation built so far.
func (a *Analyzer) Aggregate() Aggregate {
	return a.aggregate
}

// Finalize flattens the aggregate into the report model.
func (a *Analyzer) Finalize() (*Report, error) {
	return BuildReport(a.aggregate, ReportStats{
		CommitsSeen:    a.commits,
		CommitsMatched: a.matched,
	}), nil
}
