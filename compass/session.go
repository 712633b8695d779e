package compass

import "sync/atomic"

var generation atomic.Uint64

// NextGeneration returns a value no peer entity has carried before. Every
// entity that stands for a peer takes one when it is created, so a peer
// re-created under the same ID replaces its bubble on the next reconcile.
func NextGeneration() uint64 {
	return generation.Add(1)
}

// Session drives a tracker for one play session: reconciles run on the
// schedule, disconnects and resets apply straight away.
type Session struct {
	Tracker  *Tracker
	schedule *Schedule
}

func NewSession(reconcileInterval int) *Session {
	return &Session{
		Tracker:  NewTracker(),
		schedule: NewSchedule(reconcileInterval),
	}
}

// Tick advances the reconcile schedule by one game tick. When a reconcile is
// due it runs against connected and reports how many bubbles changed.
func (s *Session) Tick(connected []Peer) (changed int, reconciled bool) {
	if !s.schedule.Tick() {
		return 0, false
	}
	return s.Tracker.Reconcile(connected), true
}

// PeerLeft drops the bubble of a disconnected peer.
func (s *Session) PeerLeft(id PeerID) {
	s.Tracker.OnDisconnect(id)
}

// Reset drops every bubble. The next Tick reconciles immediately.
func (s *Session) Reset() {
	s.Tracker.OnSessionReset()
	s.schedule.Reset()
}
