package advanced

import (
	"os"

	"github.com/fogleman/gg"
	imgcat "github.com/martinlindhe/imgcat/lib"
)

// Debug rendering of remainder space: the unit square, the four
// non-injective rectangles for the angle, and a dot per point's remainder.
// Approximate floats are fine here; nothing rendered feeds back into a
// decision.

const dbgDrawPadding = 20

func DrawRemainders(angle Angle, t Translation, set PointSet, scale float64) {
	cos := angle.CosExpr(t)
	sin := angle.SinExpr(t)
	regions := NonInjectiveRegions(cos, sin)

	width := int(scale) + dbgDrawPadding*2
	height := int(scale) + dbgDrawPadding*2
	c := gg.NewContext(width, height)
	c.SetRGB(0, 0, 0)
	c.DrawRectangle(0, 0, float64(width), float64(height))
	c.Fill()

	// Flip so the origin is at the bottom left, then map [-1/2, 1/2]² onto
	// the padded canvas.
	c.Translate(0, float64(height))
	c.Scale(1, -1)
	c.Translate(dbgDrawPadding, dbgDrawPadding)
	c.Scale(scale, scale)
	c.Translate(0.5, 0.5)

	c.SetLineWidth(1 / scale)
	c.SetRGB(0.3, 0.3, 0.3)
	c.DrawRectangle(-0.5, -0.5, 1, 1)
	c.Stroke()

	c.SetRGB(0.5, 0, 0)
	for _, r := range regions {
		lox, loy := r.X.Lo.Approx(), r.Y.Lo.Approx()
		hix, hiy := r.X.Hi.Approx(), r.Y.Hi.Approx()
		if hix <= lox || hiy <= loy {
			continue
		}
		c.DrawRectangle(lox, loy, hix-lox, hiy-loy)
	}
	c.Fill()

	c.SetRGB(0, 1, 1)
	for _, p := range set.Sorted() {
		rx, ry, _ := RemainderMap(angle, t, p)
		c.DrawCircle(rx.Approx(), ry.Approx(), 2/scale)
		c.Fill()
	}

	c.SavePNG("/tmp/remainder_map.png")
	imgcat.CatFile("/tmp/remainder_map.png", os.Stdout)
}
