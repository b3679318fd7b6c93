package advanced

import (
	"fmt"
	"math/big"
	"sort"

	"github.com/pkg/errors"
)

// Validation failures on caller-supplied arguments. These are fatal to the
// call that received them; the recoverable "this angle doesn't exist"
// outcomes inside the search are reported by value instead (see search.go).
var (
	ErrInvalidTripleGenerators = errors.New("invalid Pythagorean triple generators")
	ErrInvalidTranslation      = errors.New("invalid translation vector")
	ErrInvalidHingeAngle       = errors.New("invalid hinge angle")
	ErrNoValidHinge            = errors.New("no valid hinge angle for point")
	ErrPointNotInSet           = errors.New("point not in set")
)

type Point struct {
	X, Y int
}

func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// A pair of lattice points witnessing non-injectivity: both map to the same
// digitized image.
type PointPair struct {
	A, B Point
}

type PointSet map[Point]struct{}

func NewPointSet(points []Point) PointSet {
	set := make(PointSet, len(points))
	for _, p := range points {
		set[p] = struct{}{}
	}
	return set
}

func (set PointSet) Contains(p Point) bool {
	_, ok := set[p]
	return ok
}

// Sorted returns the points in a fixed order. The range sweep carries a
// shared shrinking bound across points, so iteration order must be
// deterministic.
func (set PointSet) Sorted() []Point {
	points := make([]Point, 0, len(set))
	for p := range set {
		points = append(points, p)
	}
	sort.Slice(points, func(i, j int) bool {
		if points[i].X != points[j].X {
			return points[i].X < points[j].X
		}
		return points[i].Y < points[j].Y
	})
	return points
}

// An exact rational translation. Components are copied on construction;
// callers cannot mutate a Translation after handing it to the checker.
type Translation struct {
	T1, T2 *big.Rat
}

func NewTranslation(t1, t2 *big.Rat) (Translation, error) {
	if t1 == nil || t2 == nil {
		return Translation{}, errors.Wrap(ErrInvalidTranslation, "nil component")
	}
	return Translation{
		T1: new(big.Rat).Set(t1),
		T2: new(big.Rat).Set(t2),
	}, nil
}

// Component along the axis selected by a hinge's axis flag: 0 is t1, 1 is t2.
func (t Translation) Component(s int) *big.Rat {
	if s == 0 {
		return t.T1
	}
	return t.T2
}

// A rotation by arccos(2pq/(p²+q²)), which has rational sine and cosine.
// Generators must be coprime and of opposite parity.
type PythagoreanAngle struct {
	P, Q int
}

func NewPythagoreanAngle(p, q int) (*PythagoreanAngle, error) {
	if gcd(abs(p), abs(q)) != 1 {
		return nil, errors.Wrapf(ErrInvalidTripleGenerators, "gcd(%d,%d) != 1", p, q)
	}
	if (p-q)%2 == 0 {
		return nil, errors.Wrapf(ErrInvalidTripleGenerators, "%d and %d have the same parity", p, q)
	}
	return &PythagoreanAngle{P: p, Q: q}, nil
}

func (a *PythagoreanAngle) CosExpr(t Translation) QuadExpr {
	c := int64(a.P*a.P + a.Q*a.Q)
	return QuadRat(big.NewRat(int64(2*a.P*a.Q), c))
}

func (a *PythagoreanAngle) SinExpr(t Translation) QuadExpr {
	c := int64(a.P*a.P + a.Q*a.Q)
	return QuadRat(big.NewRat(int64(abs(a.P*a.P-a.Q*a.Q)), c))
}

func (a *PythagoreanAngle) String() string {
	return fmt.Sprintf("Pythagorean(%d,%d)", a.P, a.Q)
}

func gcd(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
