package advanced

// Angle ordering. Everything here compares cosines: all angles of interest
// live in [0, π), where cosine is strictly decreasing, so "a exceeds b"
// means cos(a) < cos(b). Every decision bottoms out in the exact routines of
// exact.go; no caller re-derives its own comparison.

// ComparePythagorean returns 1 if the Pythagorean angle exceeds the hinge
// angle, 0 otherwise. The hinge's cosine carries the radical root of the
// intersection it actually crosses at, so the verdict is a single quadratic
// comparison against the rational Pythagorean cosine.
func ComparePythagorean(h *HingeAngle, pyth *PythagoreanAngle, t Translation) int {
	if !h.Valid(t) {
		fatalf("comparison with invalid hinge %v", h)
	}
	// α > θ  ⟺  cos θ > cos α
	if CompareQuad(h.CosExpr(t), pyth.CosExpr(t)) > 0 {
		return 1
	}
	return 0
}

// CompareHinges returns -1 when the two hinge angles are exactly equal, 1 if
// g exceeds h, and 0 if h exceeds g. The equality sentinel overlaps the
// ordering codes, so callers must branch on -1 before reading an order out
// of the result.
func CompareHinges(h, g *HingeAngle, t Translation) int {
	if !h.Valid(t) || !g.Valid(t) {
		fatalf("comparison with invalid hinge")
	}
	if *h == *g {
		return -1
	}
	switch CompareQuad(h.CosExpr(t), g.CosExpr(t)) {
	case 0:
		return -1
	case 1: // cos h > cos g, so h is the smaller angle
		return 1
	default:
		return 0
	}
}

// CompareAngles dispatches on the kind of the second angle: a Pythagorean
// descriptor compares via ComparePythagorean, a hinge via CompareHinges. Any
// other Angle falls back to the raw cosine comparison with the same output
// convention as CompareHinges.
func CompareAngles(h *HingeAngle, other Angle, t Translation) int {
	switch o := other.(type) {
	case *PythagoreanAngle:
		return ComparePythagorean(h, o, t)
	case *HingeAngle:
		return CompareHinges(h, o, t)
	default:
		switch CompareQuad(h.CosExpr(t), other.CosExpr(t)) {
		case 0:
			return -1
		case 1:
			return 1
		default:
			return 0
		}
	}
}

// exceedsStrictly reports whether candidate is strictly above base. The
// sweep uses this rather than the public comparison codes because it needs
// strictness even in the equal case.
func exceedsStrictly(candidate, base Angle, t Translation) bool {
	return CompareQuad(candidate.CosExpr(t), base.CosExpr(t)) < 0
}
