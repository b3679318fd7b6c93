package advanced

import (
	"fmt"
	"math"
	"math/big"
)

// QuadExpr is an exact algebraic value of the form A + B·sqrt(C) with A, B, C
// rational and C non-negative. Every angle comparison in the package reduces
// to sign tests on these; no square root is ever evaluated numerically for a
// decision. big.Rat keeps all components in lowest terms, so a QuadExpr is
// always in canonical form before it reaches a rounding or equality test.
type QuadExpr struct {
	A, B, C *big.Rat
}

// NewQuad builds a normalized expression. A vanishing radical term collapses
// to a pure rational, so equal values always have equal representations.
func NewQuad(a, b, c *big.Rat) QuadExpr {
	if c.Sign() < 0 {
		fatalf("negative radicand %v", c)
	}
	if b.Sign() == 0 || c.Sign() == 0 {
		return QuadExpr{A: a, B: zeroRat(), C: zeroRat()}
	}
	return QuadExpr{A: a, B: b, C: c}
}

// QuadRat wraps a plain rational.
func QuadRat(a *big.Rat) QuadExpr {
	return QuadExpr{A: a, B: zeroRat(), C: zeroRat()}
}

// Sign reports the exact sign of the value.
func (e QuadExpr) Sign() int {
	return signLinPlusRad(e.A, e.B, e.C)
}

// Approx gives a float approximation. Debug drawing and the rounding seed
// only; never used for a verdict.
func (e QuadExpr) Approx() float64 {
	a, _ := e.A.Float64()
	b, _ := e.B.Float64()
	c, _ := e.C.Float64()
	return a + b*math.Sqrt(c)
}

func (e QuadExpr) String() string {
	if e.B.Sign() == 0 {
		return e.A.RatString()
	}
	return fmt.Sprintf("%s + %s√%s", e.A.RatString(), e.B.RatString(), e.C.RatString())
}

// signLinPlusRad is the exact sign of a + b·sqrt(c), c ≥ 0. The four sign
// combinations of (a, b) are distinct cases; only when the signs disagree is
// the comparison reduced to the rational inequality a² vs b²·c. Squaring an
// inequality is order-preserving only for agreeing signs, which is exactly
// why the cases cannot be collapsed.
func signLinPlusRad(a, b, c *big.Rat) int {
	if c.Sign() < 0 {
		fatalf("negative radicand %v", c)
	}
	if b.Sign() == 0 || c.Sign() == 0 {
		return a.Sign()
	}
	sa, sb := a.Sign(), b.Sign()
	if sa == 0 {
		return sb
	}
	if sa == sb {
		return sa
	}
	aa := new(big.Rat).Mul(a, a)
	bbc := new(big.Rat).Mul(new(big.Rat).Mul(b, b), c)
	switch aa.Cmp(bbc) {
	case 0:
		return 0
	case 1:
		return sa
	default:
		return sb
	}
}

// radicalDiffSign is the exact sign of b1·sqrt(c1) − b2·sqrt(c2).
func radicalDiffSign(b1, c1, b2, c2 *big.Rat) int {
	s1 := radTermSign(b1, c1)
	s2 := radTermSign(b2, c2)
	if s1 != s2 {
		if s1 > s2 {
			return 1
		}
		return -1
	}
	if s1 == 0 {
		return 0
	}
	q1 := new(big.Rat).Mul(new(big.Rat).Mul(b1, b1), c1)
	q2 := new(big.Rat).Mul(new(big.Rat).Mul(b2, b2), c2)
	return s1 * q1.Cmp(q2)
}

func radTermSign(b, c *big.Rat) int {
	if c.Sign() == 0 {
		return 0
	}
	return b.Sign()
}

// CompareQuad is the exact three-way comparison of two expressions,
// returning the sign of e1 − e2. A shared radicand reduces to a single
// linear-plus-radical sign. Otherwise: the radical difference is signed
// first; if the linear difference agrees (or one side vanishes) the answer
// is immediate; a genuine disagreement is settled by squaring, which leaves
// one cross radical 2·B1·B2·sqrt(C1·C2) and lands back in signLinPlusRad.
func CompareQuad(e1, e2 QuadExpr) int {
	if e1.C.Cmp(e2.C) == 0 {
		return signLinPlusRad(
			new(big.Rat).Sub(e1.A, e2.A),
			new(big.Rat).Sub(e1.B, e2.B),
			e1.C,
		)
	}

	d := new(big.Rat).Sub(e1.A, e2.A)
	sR := radicalDiffSign(e1.B, e1.C, e2.B, e2.C)
	if sR == 0 {
		return d.Sign()
	}
	if d.Sign() == 0 || d.Sign() == sR {
		return sR
	}

	// d and the radical difference R disagree in sign, so the verdict is
	// |d| vs |R|, i.e. the sign of d² − R². Expanding R² leaves the single
	// cross radical below.
	m := new(big.Rat).Mul(d, d)
	m.Sub(m, new(big.Rat).Mul(new(big.Rat).Mul(e1.B, e1.B), e1.C))
	m.Sub(m, new(big.Rat).Mul(new(big.Rat).Mul(e2.B, e2.B), e2.C))
	cross := new(big.Rat).Mul(e1.B, e2.B)
	cross.Mul(cross, big.NewRat(2, 1))
	rad := new(big.Rat).Mul(e1.C, e2.C)

	switch signLinPlusRad(m, cross, rad) {
	case 0:
		return 0
	case 1:
		return d.Sign()
	default:
		return sR
	}
}

// RoundQuad rounds to the nearest integer with remainder in [−1/2, 1/2),
// i.e. floor(v + 1/2). A float seed proposes the answer and exact sign tests
// certify it, nudging if the approximation landed on the wrong side of a
// half-grid boundary.
func RoundQuad(e QuadExpr) int {
	n := int(math.Floor(e.Approx() + 0.5))
	for i := 0; ; i++ {
		if i > 64 {
			fatalf("rounding of %v did not converge", e)
		}
		// v + 1/2 − n must be ≥ 0
		lo := new(big.Rat).Add(e.A, big.NewRat(1, 2))
		lo.Sub(lo, new(big.Rat).SetInt64(int64(n)))
		if signLinPlusRad(lo, e.B, e.C) < 0 {
			n--
			continue
		}
		// v − 1/2 − n must be < 0
		hi := new(big.Rat).Sub(e.A, big.NewRat(1, 2))
		hi.Sub(hi, new(big.Rat).SetInt64(int64(n)))
		if signLinPlusRad(hi, e.B, e.C) >= 0 {
			n++
			continue
		}
		return n
	}
}

// Arithmetic helpers for expressions over a common radicand. Rotated
// coordinates are linear combinations of one angle's cosine and sine, which
// share a radicand, so these never need to merge distinct radicals.

func qAdd(e1, e2 QuadExpr) QuadExpr {
	c := commonRadicand(e1, e2)
	return NewQuad(
		new(big.Rat).Add(e1.A, e2.A),
		new(big.Rat).Add(e1.B, e2.B),
		c,
	)
}

func qSub(e1, e2 QuadExpr) QuadExpr {
	return qAdd(e1, qNeg(e2))
}

func qNeg(e QuadExpr) QuadExpr {
	return QuadExpr{
		A: new(big.Rat).Neg(e.A),
		B: new(big.Rat).Neg(e.B),
		C: e.C,
	}
}

func qScale(e QuadExpr, r *big.Rat) QuadExpr {
	return NewQuad(
		new(big.Rat).Mul(e.A, r),
		new(big.Rat).Mul(e.B, r),
		e.C,
	)
}

func qScaleInt(e QuadExpr, n int) QuadExpr {
	return qScale(e, new(big.Rat).SetInt64(int64(n)))
}

func qShift(e QuadExpr, r *big.Rat) QuadExpr {
	return QuadExpr{
		A: new(big.Rat).Add(e.A, r),
		B: e.B,
		C: e.C,
	}
}

func commonRadicand(e1, e2 QuadExpr) *big.Rat {
	if e1.B.Sign() == 0 || e1.C.Sign() == 0 {
		return e2.C
	}
	if e2.B.Sign() == 0 || e2.C.Sign() == 0 {
		return e1.C
	}
	if e1.C.Cmp(e2.C) != 0 {
		fatalf("mixed radicands %v and %v", e1.C, e2.C)
	}
	return e1.C
}

func zeroRat() *big.Rat {
	return new(big.Rat)
}
