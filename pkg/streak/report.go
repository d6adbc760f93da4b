package streak

import "fmt"

// State is a snapshot of the account streak, fetched per run and never cached
type State struct {
	FreezeCount   int
	ExtendedToday bool
	SiteStreak    int
	XPToday       int
	XPGoal        int
}

// Report is the status summary of a run
type Report struct {
	RunID    string
	Username string
	State    State
}

// Lines returns the four summary lines
func (r Report) Lines() []string {
	extended := "no"
	if r.State.ExtendedToday {
		extended = "yes"
	}
	return []string{
		"Streak extended today: " + extended,
		fmt.Sprintf("Streak days: %d", r.State.SiteStreak),
		fmt.Sprintf("XP today: %d (goal: %d)", r.State.XPToday, r.State.XPGoal),
		fmt.Sprintf("Number streaks on ice: %d", r.State.FreezeCount),
	}
}
