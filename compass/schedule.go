package compass

// Schedule fires once every Interval ticks. The first tick always fires.
type Schedule struct {
	Interval int
	elapsed  int
	started  bool
}

func NewSchedule(interval int) *Schedule {
	return &Schedule{Interval: interval}
}

// Tick advances the schedule by one tick and reports whether it is due.
func (s *Schedule) Tick() bool {
	if !s.started {
		s.started = true
		s.elapsed = 0
		return true
	}
	s.elapsed++
	if s.elapsed < s.Interval {
		return false
	}
	s.elapsed = 0
	return true
}

// Reset makes the next Tick fire immediately.
func (s *Schedule) Reset() {
	s.started = false
	s.elapsed = 0
}
