package rangeset

// Span is the block of generator indexes one Range occupies: dense, 0-based
// positions of a population's members in ascending GID order. Left and
// Right are both inclusive.
type Span struct {
	Left  uint64
	Right uint64
}

// Len returns the number of generator indexes covered by the span.
func (s Span) Len() uint64 {
	return s.Right - s.Left + 1
}

// Spans translates the set into generator-index space: the span of range i
// starts at the cumulative length of ranges 0..i and covers Len(i) indexes.
//
// The mapping is purely additive and derived from the RangeSet alone, so
// every process recomputes it identically without communication.
func (rs RangeSet) Spans() []Span {
	spans := make([]Span, len(rs))

	var cum uint64
	for i, r := range rs {
		spans[i] = Span{Left: cum, Right: cum + r.Len() - 1}
		cum += r.Len()
	}

	return spans
}
