package worklog

import "slices"

// NoTicketLabel is the rendered label for commits that logged time without a
// discoverable ticket identifier.
const NoTicketLabel = "No Ticket"

// Observation is a single (ticket, day, minutes) fact extracted from one
// commit. Immutable once created.
type Observation struct {
	Ticket  string // Empty for the no-ticket sentinel.
	Day     DayKey
	Minutes int
}

// Aggregate maps day -> ticket -> cumulative minutes. Entries are created
// lazily on first contribution and never removed; values never go negative.
// It is built by a single-writer fold and is not safe for concurrent writes.
type Aggregate map[DayKey]map[string]int

// NewAggregate returns an empty aggregate.
func NewAggregate() Aggregate {
	return make(Aggregate)
}

// Add folds one observation into the aggregate, summing duplicate
// (day, ticket) pairs. Summation is commutative, so arrival order does not
// affect the final totals.
func (a Aggregate) Add(obs Observation) {
	tickets := a[obs.Day]
	if tickets == nil {
		tickets = make(map[string]int)
		a[obs.Day] = tickets
	}

	tickets[obs.Ticket] += obs.Minutes
}

// Days returns the day keys in ascending chronological order.
func (a Aggregate) Days() []DayKey {
	days := make([]DayKey, 0, len(a))
	for day := range a {
		days = append(days, day)
	}

	slices.Sort(days)

	return days
}

// Minutes returns the accumulated minutes for a (day, ticket) pair.
func (a Aggregate) Minutes(day DayKey, ticket string) int {
	return a[day][ticket]
}
