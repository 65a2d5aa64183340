package chain

// MatchPoint computes the first chain position (inclusive) at which the
// prior chain and the prospective chain diverge. Positions before the
// result are unchanged ancestors; the result is len(prospective) when
// nothing diverged.
//
// The walk runs leaf to root. A position diverges when no prior handler
// existed there, when the prior handler's name differs, or when the
// prospective handler is dynamic and an unconsumed positional context
// remains - contexts are consumed leaf-most first, and a handler that
// receives an explicit context is always treated as changed, even when
// the supplied context is identical to the previously bound one.
func MatchPoint(prospective []Descriptor, prior Snapshot, contexts int) int {
	matchPoint := len(prospective)
	remaining := contexts

	for i := len(prospective) - 1; i >= 0; i-- {
		d := prospective[i]
		if i >= len(prior) || prior[i].Name != d.Name {
			matchPoint = i
		}
		if d.Dynamic && remaining > 0 {
			remaining--
			matchPoint = i
		}
	}
	return matchPoint
}
