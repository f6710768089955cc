package domain

// Part identifies one of the three standup draft fields.
type Part string

const (
	PartYesterday Part = "yesterday"
	PartToday     Part = "today"
	PartBlockers  Part = "blockers"
)

// PartOrder is the fixed order parts are reviewed and validated in.
var PartOrder = []Part{PartYesterday, PartToday, PartBlockers}

// UnsetSentinel is shown in a review for parts that haven't been staged yet.
const UnsetSentinel = "<unset>"

// DateLayout is the calendar date format used in the statuses table and commands.
const DateLayout = "2006-01-02"

// Weekday numbers with Monday=0 through Sunday=6
const (
	Monday    = 0
	Tuesday   = 1
	Wednesday = 2
	Thursday  = 3
	Friday    = 4
	Saturday  = 5
	Sunday    = 6
)

// IsWorkday reports whether the given weekday (Monday=0) falls on Monday-Friday.
func IsWorkday(weekday int) bool {
	return weekday >= Monday && weekday <= Friday
}
