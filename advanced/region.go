package advanced

import (
	"math/big"

	"github.com/pkg/errors"
)

// Remainder-space machinery. The remainder map sends a lattice point to its
// fractional offset from the digitized image; a digitized rotation glues two
// neighbors together exactly when one of them lands in a small axis-aligned
// rectangle of remainder space. Membership is decided exactly: the remainder
// and the rectangle bounds share the angle's radicand.

// Neighbor directions, in the order the region table is built.
const (
	dirRight = iota
	dirUp
	dirLeft
	dirDown
)

var neighborOffsets = [4]Point{
	{1, 0},
	{0, 1},
	{-1, 0},
	{0, -1},
}

// A half-open interval [Lo, Hi) of exact values.
type Interval struct {
	Lo, Hi QuadExpr
}

func (iv Interval) Contains(v QuadExpr) bool {
	return qSub(v, iv.Lo).Sign() >= 0 && qSub(v, iv.Hi).Sign() < 0
}

// A rectangle in remainder space.
type Region struct {
	X, Y Interval
}

func (r Region) Contains(x, y QuadExpr) bool {
	return r.X.Contains(x) && r.Y.Contains(y)
}

// NonInjectiveRegions builds the four rectangles for an angle with the given
// exact cosine and sine, indexed by the neighbor direction they witness. The
// left and down rectangles are the point-symmetric images of right and up;
// they are spelled out here because the single-angle check tests a full
// 4-neighborhood.
func NonInjectiveRegions(cos, sin QuadExpr) [4]Region {
	half := QuadRat(big.NewRat(1, 2))
	negHalf := QuadRat(big.NewRat(-1, 2))
	return [4]Region{
		dirRight: {
			X: Interval{negHalf, qSub(half, cos)},
			Y: Interval{negHalf, qSub(half, sin)},
		},
		dirUp: {
			X: Interval{qSub(sin, half), half},
			Y: Interval{negHalf, qSub(half, cos)},
		},
		dirLeft: {
			X: Interval{qSub(cos, half), half},
			Y: Interval{qSub(sin, half), half},
		},
		dirDown: {
			X: Interval{negHalf, qSub(half, sin)},
			Y: Interval{qSub(cos, half), half},
		},
	}
}

// RemainderMap is the exact fractional offset of the rotated-translated
// point from its digitized image, componentwise in [−1/2, 1/2), along with
// the image itself.
func RemainderMap(angle Angle, t Translation, p Point) (QuadExpr, QuadExpr, Point) {
	ix, iy := rotatedImage(p, angle, t)
	n1 := RoundQuad(ix)
	n2 := RoundQuad(iy)
	rx := qShift(ix, big.NewRat(int64(-n1), 1))
	ry := qShift(iy, big.NewRat(int64(-n2), 1))
	return rx, ry, Point{n1, n2}
}

// Neighborhood returns p followed by its 4-neighbors that are present in the
// set. The set is never modified. Asking about an absent point is a caller
// error.
func Neighborhood(set PointSet, p Point) ([]Point, error) {
	if !set.Contains(p) {
		return nil, errors.Wrapf(ErrPointNotInSet, "%v", p)
	}
	result := []Point{p}
	for _, off := range neighborOffsets {
		n := Point{p.X + off.X, p.Y + off.Y}
		if set.Contains(n) {
			result = append(result, n)
		}
	}
	return result, nil
}

// collisions returns every pair (p, neighbor) glued together by the angle,
// checking the full 4-neighborhood.
func collisions(angle Angle, t Translation, p Point, set PointSet) []PointPair {
	neighbors, err := Neighborhood(set, p)
	if err != nil {
		fatalf("%v", err)
	}
	rx, ry, _ := RemainderMap(angle, t, p)
	regions := NonInjectiveRegions(angle.CosExpr(t), angle.SinExpr(t))

	var pairs []PointPair
	for _, n := range neighbors[1:] {
		dir := directionOf(p, n)
		if regions[dir].Contains(rx, ry) {
			pairs = append(pairs, PointPair{A: p, B: n})
		}
	}
	return pairs
}

// sweepViolates is the cheaper variant used inside the angle sweep: only the
// right and up rectangles are tested, since the symmetric pair is covered
// when the neighboring point is itself swept.
func sweepViolates(angle Angle, t Translation, p Point, set PointSet) bool {
	rx, ry, _ := RemainderMap(angle, t, p)
	regions := NonInjectiveRegions(angle.CosExpr(t), angle.SinExpr(t))
	for _, dir := range []int{dirRight, dirUp} {
		off := neighborOffsets[dir]
		if !set.Contains(Point{p.X + off.X, p.Y + off.Y}) {
			continue
		}
		if regions[dir].Contains(rx, ry) {
			return true
		}
	}
	return false
}

func directionOf(p, n Point) int {
	for dir, off := range neighborOffsets {
		if n.X-p.X == off.X && n.Y-p.Y == off.Y {
			return dir
		}
	}
	fatalf("%v is not a neighbor of %v", n, p)
	return -1
}
