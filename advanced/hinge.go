package advanced

import (
	"fmt"
	"math/big"

	"github.com/logrusorgru/aurora"

	"github.com/halfgrid/digirot/dbg"
)

// An Angle is anything the comparator and the search can rotate by: a
// Pythagorean base angle, a hinge angle, or a constant bracket endpoint.
// Cosine and sine of one angle always share a radicand.
type Angle interface {
	CosExpr(t Translation) QuadExpr
	SinExpr(t Translation) QuadExpr
}

// HingeAngle is the critical angle at which the rotated-and-translated point
// (P1, P2) lands exactly on the half-grid line x = K + 1/2 (S = 0) or
// y = K + 1/2 (S = 1). Its cosine is generally irrational. The tuple is a
// value; nothing ever mutates one after construction.
type HingeAngle struct {
	P1, P2 int
	K      int
	S      int // axis flag: 0 selects t1 and a vertical line, 1 selects t2 and a horizontal one
}

// lambda is the signed distance K + 1/2 − t_S of the critical line from the
// rotation center along the hinge's axis.
func (h *HingeAngle) lambda(t Translation) *big.Rat {
	l := big.NewRat(int64(2*h.K+1), 2)
	return l.Sub(l, t.Component(h.S))
}

func (h *HingeAngle) rsq() *big.Rat {
	return new(big.Rat).SetInt64(int64(h.P1*h.P1 + h.P2*h.P2))
}

func (h *HingeAngle) radicand(t Translation) *big.Rat {
	l := h.lambda(t)
	return new(big.Rat).Sub(h.rsq(), new(big.Rat).Mul(l, l))
}

// Valid reports whether the hinge describes a real angle: the critical line
// must be within reach of the point's orbit, and at least one of the two
// line-orbit intersections must be reachable by a rotation in [0, π). An
// out-of-reach line is an expected outcome ("this candidate angle does not
// exist"), not a failure, so it is reported by value.
func (h *HingeAngle) Valid(t Translation) bool {
	if h.P1 == 0 && h.P2 == 0 {
		return false
	}
	if h.radicand(t).Sign() < 0 {
		return false
	}
	_, _, ok := h.cosSin(t)
	return ok
}

// cosSin is the exact cosine and sine of the hinge. The critical line meets
// the orbit circle at two intersections: with λ = K + 1/2 − t_S,
// r² = P1² + P2² and l = sqrt(r² − λ²), the image must land on (λ, ±l) for
// S = 0 or (±l, λ) for S = 1, and rotating (P1, P2) onto an image (x, y)
// gives cos = (P1·x + P2·y)/r², sin = (P1·y − P2·x)/r². The two solutions
// share their linear parts and differ only in the sign of the radical term,
// and the pair must be taken from the same intersection or the image leaves
// the line. The crossing a rotation in [0, π) reaches is the one with
// non-negative sine; ok is false when neither intersection has one.
func (h *HingeAngle) cosSin(t Translation) (cos, sin QuadExpr, ok bool) {
	lam := h.lambda(t)
	r2 := h.rsq()
	rad := h.radicand(t)

	linC, radC := h.P2, h.P1
	linS, radS := h.P1, -h.P2
	if h.S == 0 {
		linC, radC = h.P1, h.P2
		linS, radS = -h.P2, h.P1
	}
	aCos := new(big.Rat).Mul(new(big.Rat).SetInt64(int64(linC)), lam)
	aCos.Quo(aCos, r2)
	bCos := big.NewRat(int64(radC), 1)
	bCos.Quo(bCos, r2)
	aSin := new(big.Rat).Mul(new(big.Rat).SetInt64(int64(linS)), lam)
	aSin.Quo(aSin, r2)
	bSin := big.NewRat(int64(radS), 1)
	bSin.Quo(bSin, r2)

	sin = NewQuad(aSin, bSin, rad)
	if sin.Sign() >= 0 {
		return NewQuad(aCos, bCos, rad), sin, true
	}
	// The other intersection.
	sin = NewQuad(aSin, new(big.Rat).Neg(bSin), rad)
	if sin.Sign() < 0 {
		return QuadExpr{}, QuadExpr{}, false
	}
	return NewQuad(aCos, new(big.Rat).Neg(bCos), rad), sin, true
}

func (h *HingeAngle) CosExpr(t Translation) QuadExpr {
	if !h.Valid(t) {
		fatalf("cosine of invalid hinge %v", h)
	}
	cos, _, _ := h.cosSin(t)
	return cos
}

func (h *HingeAngle) SinExpr(t Translation) QuadExpr {
	if !h.Valid(t) {
		fatalf("sine of invalid hinge %v", h)
	}
	_, sin, _ := h.cosSin(t)
	return sin
}

func (h *HingeAngle) String() string {
	return fmt.Sprintf("Hinge %s (%d,%d k=%d s=%d)", h.DbgName(), h.P1, h.P2, h.K, h.S)
}

// DbgName colors by axis so vertical-line and horizontal-line hinges are
// easy to tell apart in sweep traces.
func (h *HingeAngle) DbgName() string {
	name := dbg.Name(h)
	if h.S == 0 {
		return aurora.Cyan(name).String()
	}
	return aurora.Green(name).String()
}
