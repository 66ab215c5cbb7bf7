package session

// scope owns the pending timers of one task. Cancelling a scope stops every
// timer it still holds, including reset timers armed from inside callbacks.
// All methods are called with the session mutex held.
type scope struct {
	timers map[Timer]struct{}
}

func newScope() *scope {
	return &scope{timers: make(map[Timer]struct{})}
}

func (sc *scope) track(t Timer) {
	sc.timers[t] = struct{}{}
}

// release drops t after it fired. It reports false when t was cancelled in
// the meantime, in which case the callback must not run.
func (sc *scope) release(t Timer) bool {
	if _, ok := sc.timers[t]; !ok {
		return false
	}
	delete(sc.timers, t)
	return true
}

func (sc *scope) cancel() {
	for t := range sc.timers {
		t.Stop()
		delete(sc.timers, t)
	}
}

func (sc *scope) pending() int {
	return len(sc.timers)
}
