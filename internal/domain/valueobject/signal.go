package valueobject

// Signal is the immutable output of one detector. Points is the additive
// contribution in the heuristic strategy; for the external feed it is the
// score the result is forced to.
type Signal struct {
	kind      SignalKind
	points    int
	triggered bool
	reason    string
}

// NewSignal builds a triggered signal.
func NewSignal(kind SignalKind, points int, reason string) Signal {
	return Signal{kind: kind, points: points, triggered: true, reason: reason}
}

// Quiet builds a signal that did not fire.
func Quiet(kind SignalKind) Signal {
	return Signal{kind: kind}
}

func (s Signal) Kind() SignalKind { return s.kind }
func (s Signal) Points() int      { return s.points }
func (s Signal) Triggered() bool  { return s.triggered }
func (s Signal) Reason() string   { return s.reason }
