// Exact injectivity certification of digitized rigid motions on the plane.
//
// A rigid motion here is a rotation by a Pythagorean angle followed by a
// rational translation and rounding to the integer grid. This package
// decides, for a finite set of lattice points, whether two 4-neighbors are
// mapped to the same digitized image, and computes the interval of rotation
// angles around the base angle for which the restriction stays injective.
// Every decision is made in exact integer/rational arithmetic; floating
// point never influences a verdict.
package digirot

import (
	"math/big"

	"github.com/halfgrid/digirot/advanced"
)

type Point = advanced.Point
type PointPair = advanced.PointPair
type HingeAngle = advanced.HingeAngle
type RangeResult = advanced.RangeResult
type RangeStatus = advanced.RangeStatus

const (
	RangeBounded      = advanced.RangeBounded
	RangeOpen         = advanced.RangeOpen
	RangeNonInjective = advanced.RangeNonInjective
)

// CheckInjectivity reports the pairs of 4-neighboring points in the set that
// the digitized motion for generators (p, q) and translation (t1, t2) maps
// to the same image. An empty result means the restriction to the set is
// injective at that angle.
//
// Generators must be coprime and of opposite parity; translation components
// must be exact rationals.
func CheckInjectivity(p, q int, t1, t2 *big.Rat, points []Point) (result []PointPair, err error) {
	defer func() {
		recoveredErr := advanced.HandleCheckPanicRecover(recover())
		if recoveredErr != nil {
			result = nil
			err = recoveredErr
		}
	}()
	pyth, trans, set, err := validateArgs(p, q, t1, t2, points)
	if err != nil {
		return nil, err
	}
	return advanced.CheckInjectivity(pyth, trans, set), nil
}

// CheckInjectivityRange sweeps hinge angles upward from the base angle and
// returns the certified-injective picture: the accepted hinge angles inside
// the final bracket, the hinge that bounded it (if any), or the witnessing
// pair when the base angle is already non-injective.
func CheckInjectivityRange(p, q int, t1, t2 *big.Rat, points []Point) (result RangeResult, err error) {
	defer func() {
		recoveredErr := advanced.HandleCheckPanicRecover(recover())
		if recoveredErr != nil {
			result = RangeResult{}
			err = recoveredErr
		}
	}()
	pyth, trans, set, err := validateArgs(p, q, t1, t2, points)
	if err != nil {
		return RangeResult{}, err
	}
	return advanced.CheckInjectivityRange(pyth, trans, set), nil
}

func validateArgs(p, q int, t1, t2 *big.Rat, points []Point) (*advanced.PythagoreanAngle, advanced.Translation, advanced.PointSet, error) {
	pyth, err := advanced.NewPythagoreanAngle(p, q)
	if err != nil {
		return nil, advanced.Translation{}, nil, err
	}
	trans, err := advanced.NewTranslation(t1, t2)
	if err != nil {
		return nil, advanced.Translation{}, nil, err
	}
	return pyth, trans, advanced.NewPointSet(points), nil
}
