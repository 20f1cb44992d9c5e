package qd

// Type is the canonical fingerprint of a QuasiDecomposition: how many of
// each kind of part it holds, plus the size of what's left over. Two
// decompositions that differ only in which tiles fill each slot collapse to
// the same Type, which is what keeps the per-block search space bounded —
// the search dedupes on Type, not on the full Parts slice.
type Type struct {
	NumTriplets              int
	NumSequences             int
	NumPairs                 int
	NumPartials              int
	NumIncompletablePartials int
	RemainderSize            int
}

// CreateFromQD builds a Type fingerprint from a concrete decomposition.
// Whether a partial sequence counts as completable was already decided
// against the knowledge base at the moment the search committed to it (see
// enumerator.go), so CreateFromQD just tallies flags.
func CreateFromQD(qd QuasiDecomposition) Type {
	var t Type
	for _, p := range qd.Parts {
		switch p.Kind {
		case Triplet:
			t.NumTriplets++
		case Sequence:
			t.NumSequences++
		case Pair:
			t.NumPairs++
		case PartialSequence:
			if p.Incompletable {
				t.NumIncompletablePartials++
			} else {
				t.NumPartials++
			}
		}
	}
	t.RemainderSize = qd.Remainder.Total()
	return t
}

// Add returns the componentwise sum of t and other. Combining block types
// this way is valid only because the per-hand 4-melds-plus-a-pair cap is
// applied once, in Cost, after every block has been folded together — never
// per block.
func (t Type) Add(other Type) Type {
	return Type{
		NumTriplets:             t.NumTriplets + other.NumTriplets,
		NumSequences:            t.NumSequences + other.NumSequences,
		NumPairs:                t.NumPairs + other.NumPairs,
		NumPartials:             t.NumPartials + other.NumPartials,
		NumIncompletablePartials: t.NumIncompletablePartials + other.NumIncompletablePartials,
		RemainderSize:           t.RemainderSize + other.RemainderSize,
	}
}

// Cost evaluates the standard-shape deficiency formula on a (normally
// whole-hand) Type: a complete hand is 4 melds plus 1 pair for the head.
// Every meld is worth 2 steps, every partial (including a spare pair beyond
// the one used as the head) is worth 1, capped at 4 meld-or-partial slots
// plus the head. Incompletable partials don't appear here at all: they are
// dead weight, no better than remainder. A complete hand floors at 0: the
// deficiency never goes negative, it just means no more tiles are needed.
func (t Type) Cost() int {
	melds := t.NumTriplets + t.NumSequences
	if melds > 4 {
		melds = 4
	}

	hasHeadPair := t.NumPairs > 0
	extraPairs := 0
	if hasHeadPair {
		extraPairs = t.NumPairs - 1
	}

	partialSlots := t.NumPartials + extraPairs
	if melds+partialSlots > 4 {
		partialSlots = 4 - melds
	}

	headBonus := 0
	if hasHeadPair {
		headBonus = 1
	}

	cost := 8 - 2*melds - partialSlots - headBonus
	if cost < 0 {
		cost = 0
	}
	return cost
}
