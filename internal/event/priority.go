package event

import "fmt"

// Priority orders handlers within a HandlerList. Lower priorities run first,
// so Highest gets the final say and Monitor only observes the outcome.
type Priority uint8

const (
	PriorityLowest Priority = iota
	PriorityLow
	PriorityNormal
	PriorityHigh
	PriorityHighest
	// PriorityMonitor handlers must not change the event
	PriorityMonitor
)

var priorityNames = [...]string{"LOWEST", "LOW", "NORMAL", "HIGH", "HIGHEST", "MONITOR"}

func (p Priority) Valid() bool {
	return int(p) < len(priorityNames)
}

func (p Priority) String() string {
	if !p.Valid() {
		return fmt.Sprintf("Priority(%d)", uint8(p))
	}
	return priorityNames[p]
}
