package model

// Stats summarizes task progress across the active store.
type Stats struct {
	Complete   int
	InProgress int
	Pending    int
	Notes      int
}

// Total returns the number of tasks counted.
func (s Stats) Total() int {
	return s.Complete + s.InProgress + s.Pending
}

// Percent returns the share of complete tasks, rounded down. Zero tasks is 0%.
func (s Stats) Percent() int {
	if s.Total() == 0 {
		return 0
	}
	return s.Complete * 100 / s.Total()
}

// DateGroup is one day of the timeline.
type DateGroup struct {
	Date string
	IDs  []int
}
