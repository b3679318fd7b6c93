package advanced

import (
	"math/big"
	"sort"
)

// The two drivers. CheckInjectivity answers for one fixed Pythagorean angle;
// CheckInjectivityRange sweeps hinge angles upward from it, maintaining a
// certified-injective bracket.

// constAngle is a bracket endpoint with a fixed exact cosine and sine.
type constAngle struct {
	cos, sin QuadExpr
}

func (a constAngle) CosExpr(t Translation) QuadExpr { return a.cos }
func (a constAngle) SinExpr(t Translation) QuadExpr { return a.sin }

// angleZero is the lower search bound (cos 1).
func angleZero() Angle {
	return constAngle{
		cos: QuadRat(big.NewRat(1, 1)),
		sin: QuadRat(new(big.Rat)),
	}
}

// angleQuarterPi is the upper search bound: π/4, whose cosine and sine are
// both exactly sqrt(2)/2.
func angleQuarterPi() Angle {
	root2Over2 := NewQuad(new(big.Rat), big.NewRat(1, 2), big.NewRat(2, 1))
	return constAngle{cos: root2Over2, sin: root2Over2}
}

// SearchBracket is the open interval (GL, GU) of angles certified injective
// so far. GL is fixed; GU only ever shrinks, and is threaded through the
// sweep as an explicit accumulator.
type SearchBracket struct {
	GL, GU Angle
}

func (b SearchBracket) Inside(h *HingeAngle, t Translation) bool {
	return exceedsStrictly(h, b.GL, t) && exceedsStrictly(b.GU, h, t)
}

type RangeStatus int

const (
	// RangeBounded: hinge angles inside the bracket were found and certified.
	RangeBounded RangeStatus = iota
	// RangeOpen: no hinge angle fell inside the bracket; no finite boundary
	// was found.
	RangeOpen
	// RangeNonInjective: the base angle itself already glues two points; the
	// sweep never started.
	RangeNonInjective
)

// RangeResult distinguishes "nothing found" from "already broken", which a
// bare empty collection cannot.
type RangeResult struct {
	Status RangeStatus
	// Witness is the colliding pair when Status is RangeNonInjective.
	Witness *PointPair
	// Hinges holds the accepted hinge angles that survived bracket
	// tightening, sorted by increasing angle.
	Hinges []*HingeAngle
	// Upper is the hinge that last tightened the bracket, if any.
	Upper *HingeAngle
}

// CheckInjectivity reports every pair of 4-neighbors in the set that the
// digitized motion maps to the same image point. An empty result certifies
// the restriction of the motion to the set is injective.
func CheckInjectivity(pyth *PythagoreanAngle, t Translation, set PointSet) []PointPair {
	pairs := []PointPair{}
	for _, p := range set.Sorted() {
		pairs = append(pairs, collisions(pyth, t, p, set)...)
	}
	return pairs
}

// CheckInjectivityRange walks each point's hinge angles upward from the base
// angle, certifying each one inside the bracket and shrinking the upper
// bound whenever a hinge breaks injectivity. Points are processed in a fixed
// order because the bracket is shared across them.
func CheckInjectivityRange(pyth *PythagoreanAngle, t Translation, set PointSet) RangeResult {
	bracket := SearchBracket{GL: angleZero(), GU: angleQuarterPi()}
	var accepted []*HingeAngle
	var upper *HingeAngle

	for _, p := range set.Sorted() {
		// The base angle must be clean at this point before sweeping above it.
		if pairs := collisions(pyth, t, p, set); len(pairs) > 0 {
			return RangeResult{Status: RangeNonInjective, Witness: &pairs[0]}
		}

		h, ok := ClosestUpperHinge(p, pyth, t)
		if !ok {
			continue
		}
		for bracket.Inside(h, t) {
			if sweepViolates(h, t, p, set) {
				bracket.GU = h
				upper = h
				break
			}
			accepted = append(accepted, h)
			next, ok := ClosestUpperHinge(p, h, t)
			if !ok {
				break
			}
			h = next
		}
		// Hinges accepted for earlier points may have been invalidated by a
		// tighter bound.
		accepted = filterInside(accepted, bracket, t)
	}

	sort.SliceStable(accepted, func(i, j int) bool {
		return CompareQuad(accepted[i].CosExpr(t), accepted[j].CosExpr(t)) > 0
	})
	status := RangeBounded
	if len(accepted) == 0 {
		status = RangeOpen
	}
	return RangeResult{Status: status, Hinges: accepted, Upper: upper}
}

func filterInside(hinges []*HingeAngle, bracket SearchBracket, t Translation) []*HingeAngle {
	kept := hinges[:0]
	for _, h := range hinges {
		if bracket.Inside(h, t) {
			kept = append(kept, h)
		}
	}
	return kept
}
