package series

import "iter"

// gap is a pending run of gap-fill timestamps. remaining counts the samples
// still to emit starting at next.
type gap struct {
	next      int64
	delta     int64
	remaining uint64
}

// newGap covers startExclusive+delta through endExclusive-delta inclusive.
// The span is computed in unsigned arithmetic so times near the int64 limits
// cannot wrap into a huge forward gap.
func newGap(startExclusive, endExclusive, delta int64) gap {
	if delta <= 0 || endExclusive <= startExclusive {
		return gap{}
	}

	span := uint64(endExclusive) - uint64(startExclusive)
	steps := span / uint64(delta)
	if steps < 2 {
		return gap{}
	}

	return gap{
		next:      startExclusive + delta,
		delta:     delta,
		remaining: steps - 1,
	}
}

func (g *gap) empty() bool {
	return g.remaining == 0
}

func (g *gap) pop() Sample {
	s := Sample{Time: g.next, Value: NoData, Filled: true}
	g.remaining--
	if g.remaining > 0 {
		g.next += g.delta
	}
	return s
}

// GapFill yields a NoData sample for every step of delta strictly between
// startExclusive and endExclusive, in increasing order. Nothing is yielded
// when delta is not positive or endExclusive is not after startExclusive.
func GapFill(startExclusive, endExclusive, delta int64) iter.Seq[Sample] {
	return func(yield func(Sample) bool) {
		g := newGap(startExclusive, endExclusive, delta)
		for !g.empty() {
			if !yield(g.pop()) {
				return
			}
		}
	}
}
