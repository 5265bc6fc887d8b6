package tracking

import "time"

// TimedExecution tracks run duration and delegates to Tracker.
type TimedExecution struct {
	tracker   *Tracker
	startTime time.Time
}

// Start creates a new TimedExecution. A nil tracker is allowed; Record
// becomes a no-op.
func Start(tracker *Tracker) *TimedExecution {
	return &TimedExecution{
		tracker:   tracker,
		startTime: time.Now(),
	}
}

// Record stores the snapshot with elapsed duration filled in.
func (te *TimedExecution) Record(s Snapshot) error {
	if te.tracker == nil {
		return nil
	}
	s.DurationMs = time.Since(te.startTime).Milliseconds()
	return te.tracker.Record(s)
}
