package advanced

// rotatedImage is the exact rotated-and-translated position of a lattice
// point: a pair of expressions over the angle's radicand.
func rotatedImage(p Point, angle Angle, t Translation) (QuadExpr, QuadExpr) {
	cos := angle.CosExpr(t)
	sin := angle.SinExpr(t)
	x := qShift(qSub(qScaleInt(cos, p.X), qScaleInt(sin, p.Y)), t.T1)
	y := qShift(qAdd(qScaleInt(sin, p.X), qScaleInt(cos, p.Y)), t.T2)
	return x, y
}

// ClosestUpperHinge finds the smallest hinge angle of p strictly greater
// than cur. ok is false when neither critical line is within reach of the
// point's orbit; that is an expected outcome for points near the rotation
// center and callers skip the point rather than fail.
//
// The rounded image's quadrant tells which way each coordinate is moving
// under a counterclockwise rotation, and therefore which half-grid line each
// coordinate meets next: a decreasing coordinate meets the line below its
// rounded value (k = x − 1), an increasing one the line above (k = x).
func ClosestUpperHinge(p Point, cur Angle, t Translation) (*HingeAngle, bool) {
	ix, iy := rotatedImage(p, cur, t)
	x1 := RoundQuad(ix)
	x2 := RoundQuad(iy)

	var kx, ky, dx, dy int
	switch {
	case x1 >= 0 && x2 >= 0:
		kx, dx = x1-1, -1
		ky, dy = x2, 1
	case x1 < 0 && x2 >= 0:
		kx, dx = x1-1, -1
		ky, dy = x2-1, -1
	case x1 < 0 && x2 < 0:
		kx, dx = x1, 1
		ky, dy = x2-1, -1
	default: // x1 >= 0, x2 < 0
		kx, dx = x1, 1
		ky, dy = x2, 1
	}

	h := candidateAbove(&HingeAngle{P1: p.X, P2: p.Y, K: kx, S: 0}, dx, cur, t)
	g := candidateAbove(&HingeAngle{P1: p.X, P2: p.Y, K: ky, S: 1}, dy, cur, t)

	switch {
	case h == nil && g == nil:
		return nil, false
	case g == nil:
		return h, true
	case h == nil:
		return g, true
	}
	// Both candidates survived; keep the smaller. Equal candidates are the
	// same angle, so either will do.
	switch CompareHinges(h, g, t) {
	case 0:
		return g, true
	default:
		return h, true
	}
}

// candidateAbove validates a hinge candidate and enforces that it is
// strictly above cur. An image sitting exactly on the candidate line yields
// an angle equal to cur (it is the hinge being swept through); the next
// crossing is one line further along the direction of motion.
func candidateAbove(h *HingeAngle, dir int, cur Angle, t Translation) *HingeAngle {
	for i := 0; i < 2; i++ {
		if !h.Valid(t) {
			return nil
		}
		if exceedsStrictly(h, cur, t) {
			return h
		}
		h = &HingeAngle{P1: h.P1, P2: h.P2, K: h.K + dir, S: h.S}
	}
	return nil
}
