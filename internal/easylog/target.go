package easylog

// Target is the prefix of a chain chosen for logging.
// Index is in [0, Chain.Len()).
type Target struct {
	Chain Chain
	Index int
}

// String returns the expression to log.
func (t Target) String() string {
	return t.Chain.Prefix(t.Index)
}

// SelectTarget picks the chain prefix the cursor is on.
//
// Segment i covers the closed interval [current, next] relative to start,
// where next adds the segment length plus its trailing dot (none for the
// last segment). The first interval containing the cursor wins, so a
// cursor on a dot or just after it resolves to the segment on its left.
// A cursor outside every interval logs the full chain.
func SelectTarget(chain Chain, start, cursor int) Target {
	if len(chain) <= 1 {
		return Target{Chain: chain}
	}

	rel := cursor - start
	current := 0
	for i, seg := range chain {
		next := current + len(seg)
		if i < len(chain)-1 {
			next++
		}
		if rel >= current && rel <= next {
			return Target{Chain: chain, Index: i}
		}
		current = next
	}

	return Target{Chain: chain, Index: len(chain) - 1}
}
